// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/background"
	"github.com/bitmark-inc/rbtree/fault"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels[logger.DefaultTag] = "debug"
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %+v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// the rate was validated with the configuration
	s, err := newSoaker(theConfiguration)
	fault.PanicIfError("soak setup", err)

	processes := background.Processes{s}

	// reload the rate and workload when the configuration changes
	w, err := newWatcher(configurationFile, logger.New(watcherLoggerPrefix))
	if nil != err {
		log.Warnf("configuration reload disabled: %s", err)
	} else {
		processes = append(processes, w, &reloader{
			log:      logger.New("reload"),
			fileName: configurationFile,
			watcher:  w,
			soaker:   s,
		})
	}

	if theConfiguration.MemoryStats > 0 {
		processes = append(processes, &memstats{
			log:    logger.New("memory"),
			delay:  time.Duration(theConfiguration.MemoryStats) * time.Second,
			soaker: s,
		})
	}

	bg := background.Start(processes, nil)

	// wait for CTRL-C SIGINT or SIGTERM, a failure or all rounds done
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	status := 0
	select {
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
	case err := <-s.failed:
		log.Criticalf("invariant failure: %s", err)
		status = 1
	case <-s.finished:
		log.Info("all rounds completed")
	}

	log.Info("shutting down…")
	bg.Stop()

	if 0 != status {
		log.Flush()
		exitwithstatus.Exit(status)
	}
}
