// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var (
	logLock sync.Mutex
	log     *logger.L
)

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	logLock.Lock()
	defer logLock.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with the caller's location
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(message)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf("%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	logLock.Lock()
	l := log
	logLock.Unlock()

	if nil == l {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		l.Criticalf(format, arguments...)
		l.Flush() // make sure log file is saved
	}
}
