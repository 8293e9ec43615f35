// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultPolicy        = "balanced"

	defaultLogDirectory = "log"
	defaultLogFile      = "avltree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	// smallest values logger.Initialise accepts
	minimumLogCount = 10
	minimumLogSize  = 20000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		observerTag:       "info",
		logger.DefaultTag: "critical",
	}
)

// Operation - one step of the script
type Operation struct {
	Action string `gluamapper:"action" json:"action"`
	Keys   []int  `gluamapper:"keys" json:"keys"`
	Detail bool   `gluamapper:"detail" json:"detail"`
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Policy        string               `gluamapper:"policy" json:"policy"`
	Keys          []int                `gluamapper:"keys" json:"keys"`
	Operations    []Operation          `gluamapper:"operations" json:"operations"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	policy avl.Policy
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}
	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Policy:        defaultPolicy,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    make(map[string]string, len(defaultLogLevels)),
		},
	}

	for tag, level := range defaultLogLevels {
		options.Logging.Levels[tag] = level
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.policy, err = avl.ParsePolicy(options.Policy)
	if err != nil {
		return nil, fmt.Errorf("Policy: %q: %s", options.Policy, err)
	}

	for i := range options.Operations {
		op := &options.Operations[i]
		op.Action = strings.ToLower(strings.TrimSpace(op.Action))
		if !validAction(op.Action) {
			return nil, fmt.Errorf("Operation[%d]: %q: %s", i+1, op.Action, fault.ErrInvalidOperation)
		}
	}

	// ensure absolute data directory
	if options.DataDirectory == "" || options.DataDirectory == "~" {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if options.DataDirectory == "." {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); err != nil {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if options.Logging.Count < minimumLogCount {
		return nil, fmt.Errorf("Logging: count: %d cannot be less than: %d", options.Logging.Count, minimumLogCount)
	}
	if options.Logging.Size < minimumLogSize {
		return nil, fmt.Errorf("Logging: size: %d cannot be less than: %d", options.Logging.Size, minimumLogSize)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); err != nil {
			return nil, err
		}
	}

	// done
	return options, nil
}
