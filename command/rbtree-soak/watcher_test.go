// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/rbtree/background"
	"github.com/bitmark-inc/rbtree/fault"
)

func TestWatcherEvents(t *testing.T) {
	fileName := writeConfiguration(t, "watched", "return {}\n")

	w, err := newWatcher(fileName, logger.New(watcherLoggerPrefix))
	require.NoError(t, err)

	bg := background.Start(background.Processes{w}, nil)
	defer bg.Stop()

	err = ioutil.WriteFile(fileName, []byte("return { rate = 10 }\n"), 0600)
	require.NoError(t, err)

	select {
	case <-w.change:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not receive change event")
	}

	require.NoError(t, os.Remove(fileName))

	select {
	case <-w.remove:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not receive remove event")
	}
}

func TestWatcherReplacedFile(t *testing.T) {
	fileName := writeConfiguration(t, "replaced", "return {}\n")

	w, err := newWatcher(fileName, logger.New(watcherLoggerPrefix))
	require.NoError(t, err)

	bg := background.Start(background.Processes{w}, nil)
	defer bg.Stop()

	// save the way an editor does: write aside then rename over
	newName := writeConfiguration(t, "replacement", "return { rate = 10 }\n")
	require.NoError(t, os.Rename(newName, fileName))

	select {
	case <-w.change:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not receive change event for replacement")
	}

	// let the remaining rename events settle then clear them
	time.Sleep(500 * time.Millisecond)
	select {
	case <-w.change:
	default:
	}
	assert.Equal(t, 0, len(w.remove), "replacement reported as remove")

	err = ioutil.WriteFile(fileName, []byte("return { rate = 20 }\n"), 0600)
	require.NoError(t, err)

	select {
	case <-w.change:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher stopped following the replaced file")
	}
}

func TestWatcherMissingFile(t *testing.T) {
	_, err := newWatcher(testingDirName+"/absent.conf", logger.New(watcherLoggerPrefix))
	assert.Equal(t, fault.ErrConfigurationFileNotFound, err)
}

func TestSendEvent(t *testing.T) {
	w := &watcher{log: logger.New(watcherLoggerPrefix)}
	ch := make(chan struct{}, 1)

	w.sendEvent(ch, "test")
	assert.Equal(t, 1, len(ch), "event not sent")

	// a full channel discards rather than blocks
	w.sendEvent(ch, "test")
	assert.Equal(t, 1, len(ch), "event not discarded")
}

func TestReload(t *testing.T) {
	fileName := writeConfiguration(t, "reload", "return { workload = { count = 10 }, rounds = 1 }\n")

	conf, err := getConfiguration(fileName)
	require.NoError(t, err)
	s, err := newSoaker(conf)
	require.NoError(t, err)

	w := &watcher{
		log:    logger.New(watcherLoggerPrefix),
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	r := &reloader{
		log:      logger.New("reload"),
		fileName: fileName,
		watcher:  w,
		soaker:   s,
	}
	bg := background.Start(background.Processes{r}, nil)
	defer bg.Stop()

	err = ioutil.WriteFile(fileName, []byte("return { workload = { count = 77 }, rate = 123 }\n"), 0600)
	require.NoError(t, err)
	w.change <- struct{}{}

	deadline := time.Now().Add(5 * time.Second)
	for 77 != s.current().Count && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 77, s.current().Count, "workload not reloaded")
	assert.EqualValues(t, 123, s.limiter.Limit(), "rate not reloaded")
}
