// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/logger"
)

const (
	fileWatcherTag = "file-watcher"
)

// FileWatcher - signals when the script file is saved or removed
type FileWatcher interface {
	Start() error
	Stop()
	Change() <-chan struct{}
	Remove() <-chan struct{}
}

type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
	shutdown chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if !util.EnsureFileExists(filePath) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
		shutdown: make(chan struct{}),
	}, nil
}

func (w *fileWatcher) Change() <-chan struct{} {
	return w.change
}

func (w *fileWatcher) Remove() <-chan struct{} {
	return w.remove
}

// Start - watch the directory so editors that replace the file by
// rename are still seen
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()
	return nil
}

func (w *fileWatcher) Stop() {
	close(w.shutdown)
	w.watcher.Close()
}

func (w *fileWatcher) loop() {
	for {
		select {
		case <-w.shutdown:
			return

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				continue
			}

			if watcherEventFileRemove(event) {
				// a rename-into-place shows up as remove then create
				if util.EnsureFileExists(w.filePath) {
					sendEvent(w.change)
					continue
				}
				w.log.Errorf("file %s removed", w.filePath)
				sendEvent(w.remove)
				continue
			}

			if watcherEventFileChange(event) {
				w.log.Info("script changed")
				sendEvent(w.change)
			}
		}
	}
}

// drop the event if one is already pending
func sendEvent(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
