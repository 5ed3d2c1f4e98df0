// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/rbtree/fault"
)

const (
	watcherLoggerPrefix = "watcher"
	rewatchAttempts     = 10
	rewatchDelay        = 50 * time.Millisecond
)

// watcher - reports changes to the configuration file
type watcher struct {
	log      *logger.L
	fs       *fsnotify.Watcher
	filePath string
	change   chan struct{}
	remove   chan struct{}
}

func newWatcher(targetFile string, log *logger.L) (*watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrConfigurationFileNotFound
	}

	fs, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	if err := fs.Add(filePath); nil != err {
		fs.Close()
		return nil, err
	}

	return &watcher{
		log:      log,
		fs:       fs,
		filePath: filePath,
		change:   make(chan struct{}, 1),
		remove:   make(chan struct{}, 1),
	}, nil
}

// Run - forward file events until shutdown
func (w *watcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.fs.Close()

	w.log.Infof("watching: %q", w.filePath)

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case err, ok := <-w.fs.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watch error: %s", err)

		case event, ok := <-w.fs.Events:
			if !ok {
				break loop
			}
			w.log.Debugf("file event: %v", event)

			if filepath.Base(event.Name) != filepath.Base(w.filePath) {
				w.log.Debugf("file %s not match, discard event", event.Name)
				continue loop
			}

			if watcherEventFileRemove(event) {
				if w.rewatch() {
					w.log.Infof("file %s replaced", w.filePath)
					w.sendEvent(w.change, "change")
					continue loop
				}
				w.log.Warnf("file %s removed, no further reloads", w.filePath)
				w.sendEvent(w.remove, "remove")
				break loop
			}

			if watcherEventFileChange(event) {
				w.sendEvent(w.change, "change")
			}
		}
	}
	w.log.Info("stopped")
}

// editors save by renaming a new file over the old one, so wait a
// little for the path to reappear and then watch the new file
func (w *watcher) rewatch() bool {
	for i := 0; i < rewatchAttempts; i += 1 {
		if _, err := os.Stat(w.filePath); nil == err {
			_ = w.fs.Remove(w.filePath)
			if err := w.fs.Add(w.filePath); nil != err {
				w.log.Errorf("rewatch error: %s", err)
				return false
			}
			return true
		}
		time.Sleep(rewatchDelay)
	}
	return false
}

// send without blocking, a pending event already covers this one
func (w *watcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
