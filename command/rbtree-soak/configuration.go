// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/configuration"
	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/workload"
)

// basic defaults (relative directories are relative to the configuration file)
const (
	defaultKeyCount    = 10000
	defaultDeleteRatio = 0.5
	defaultCheckEvery  = 1
	defaultMemoryStats = 60 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "rbtree-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - the soak daemon settings
type Configuration struct {
	PidFile     string               `gluamapper:"pidfile" json:"pidfile"`
	Workload    workload.Config      `gluamapper:"workload" json:"workload"`
	Rate        int                  `gluamapper:"rate" json:"rate"`                 // operations per second, 0 = unlimited
	Rounds      int                  `gluamapper:"rounds" json:"rounds"`             // 0 = until stopped
	MemoryStats int                  `gluamapper:"memory_stats" json:"memory_stats"` // seconds, 0 = off
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the map is updated by the parser
	levels := make(map[string]string)
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		PidFile: "", // no PidFile by default

		Workload: workload.Config{
			Count:       defaultKeyCount,
			Seed:        0,
			DeleteRatio: defaultDeleteRatio,
			CheckEvery:  defaultCheckEvery,
		},
		Rate:        0,
		Rounds:      0,
		MemoryStats: defaultMemoryStats,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.validate(); nil != err {
		return nil, err
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name: %w", options.Logging.File, fault.ErrInvalidConfiguration)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = ensureAbsolute(dataDirectory, options.PidFile)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(dataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// values that can also change on reload
func (c *Configuration) validate() error {
	if err := c.Workload.Validate(); nil != err {
		return err
	}
	if c.Rate < 0 {
		return fault.ErrInvalidRate
	}
	if c.Rounds < 0 || c.MemoryStats < 0 {
		return fault.ErrInvalidConfiguration
	}
	return nil
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
