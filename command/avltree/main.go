// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--version] [--watch] --config-file=FILE", program)
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if len(options["config-file"]) != 1 {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0
	watch := len(options["watch"]) > 0

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if verbose {
		theConfiguration.Logging.Console = true
		if nil == theConfiguration.Logging.Levels {
			theConfiguration.Logging.Levels = make(map[string]string)
		}
		theConfiguration.Logging.Levels[observerTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); err != nil {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Debugf("theConfiguration: %v", theConfiguration)

	var output io.Writer = os.Stdout
	if quiet {
		output = ioutil.Discard
	}

	if !watch {
		if !runOnce(theConfiguration, output, log) {
			exitwithstatus.Exit(1)
		}
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherTag))
	if err != nil {
		log.Criticalf("file watcher error: %s", err)
		exitwithstatus.Message("%s: file watcher error: %s", program, err)
	}
	if err = watcher.Start(); err != nil {
		log.Criticalf("file watcher start error: %s", err)
		exitwithstatus.Message("%s: file watcher start error: %s", program, err)
	}
	defer watcher.Stop()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	runOnce(theConfiguration, output, log)

loop:
	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop

		case <-watcher.Remove():
			log.Warn("script removed, stop watching")
			break loop

		case <-watcher.Change():
			c, err := getConfiguration(configurationFile)
			if err != nil {
				log.Errorf("configuration error: %s", err)
				continue loop
			}
			runOnce(c, output, log)
		}
	}
}

// run the script and report; false if the final tree failed its audit
func runOnce(options *Configuration, output io.Writer, log *logger.L) bool {
	tree, err := run(options, output, log)
	if nil != err {
		fault.Criticalf("script failed: %s", err)
		tree.Print(output, true)
		return false
	}
	tree.Print(output, false)
	return true
}
