// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived go routines that can
// all be asked to stop together
package background

import (
	"sync"
)

// Process - type signature for background process
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	shutdown chan struct{}
	finished sync.WaitGroup
	once     sync.Once
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		register.finished.Add(1)
		go func(p Process) {
			defer register.finished.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for them all to
// finish, safe to call more than once
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.finished.Wait()
}

// Done - closed when every process has returned
func (t *T) Done() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		t.finished.Wait()
		close(done)
	}()
	return done
}
