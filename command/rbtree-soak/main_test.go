// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// write a configuration file into a fresh directory under testing
func writeConfiguration(t *testing.T, name string, text string) string {
	dir, err := ioutil.TempDir(testingDirName, name)
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, name+".conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}
