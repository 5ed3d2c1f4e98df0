// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/rbtree/counter"
	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/workload"
)

const (
	soakLoggerPrefix = "soak"
	maxDumpLines     = 10000
)

// totals across all completed rounds
type statistics struct {
	rounds      counter.Counter
	inserted    counter.Counter
	duplicates  counter.Counter
	deleted     counter.Counter
	checks      counter.Counter
	blackHeight counter.Counter
	maxDepth    counter.Counter
}

// soaker - repeatedly runs workload rounds on fresh trees
type soaker struct {
	log       *logger.L
	workload  *logger.L
	limiter   *rate.Limiter
	maxRounds uint64

	sync.Mutex
	conf workload.Config

	stats statistics

	failed   chan error    // receives the first failure
	finished chan struct{} // closed when the round limit is reached
}

func newSoaker(conf *Configuration) (*soaker, error) {
	limiter, err := workload.NewLimiter(conf.Rate)
	if nil != err {
		return nil, err
	}
	return &soaker{
		log:       logger.New(soakLoggerPrefix),
		workload:  logger.New("workload"),
		limiter:   limiter,
		maxRounds: uint64(conf.Rounds),
		conf:      conf.Workload,
		failed:    make(chan error, 1),
		finished:  make(chan struct{}),
	}, nil
}

// update - apply the reloadable parts of a configuration, the
// current round finishes with its original settings except for the
// rate
func (s *soaker) update(conf *Configuration) error {
	if err := workload.SetRate(s.limiter, conf.Rate); nil != err {
		return err
	}
	s.Lock()
	s.conf = conf.Workload
	s.Unlock()
	s.log.Infof("reloaded: rate: %d  workload: %+v", conf.Rate, conf.Workload)
	return nil
}

func (s *soaker) current() workload.Config {
	s.Lock()
	defer s.Unlock()
	return s.conf
}

// Run - background process running rounds until shutdown, failure or
// the round limit
func (s *soaker) Run(args interface{}, shutdown <-chan struct{}) {

	// let a paced round in progress finish quickly
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-shutdown:
			if err := workload.SetRate(s.limiter, 0); nil != err {
				s.log.Errorf("release rate limit error: %s", err)
			}
		case <-stop:
		}
	}()

	for n := uint64(1); 0 == s.maxRounds || n <= s.maxRounds; n += 1 {
		select {
		case <-shutdown:
			s.log.Info("shutdown")
			return
		default:
		}

		tree := rbtree.New()
		result, err := workload.Run(tree, s.current(), s.limiter, s.workload)
		if nil != err {
			s.log.Criticalf("round: %d  failed: %s", n, err)
			s.dump(tree)
			s.failed <- err
			return
		}
		s.record(result)
		s.log.Infof("round: %d  seed: %d  inserted: %d  duplicates: %d  deleted: %d  black height: %d  max depth: %d  elapsed: %s",
			n, result.Seed, result.Inserted, result.Duplicates, result.Deleted, result.BlackHeight, result.MaxDepth, result.Elapsed)
	}
	s.log.Infof("completed: %d rounds", s.maxRounds)
	close(s.finished)
}

func (s *soaker) record(result *workload.Result) {
	s.stats.rounds.Increment()
	s.stats.inserted.Add(uint64(result.Inserted))
	s.stats.duplicates.Add(uint64(result.Duplicates))
	s.stats.deleted.Add(uint64(result.Deleted))
	s.stats.checks.Add(uint64(result.Checks))
	s.stats.blackHeight.Maximum(uint64(result.BlackHeight))
	s.stats.maxDepth.Maximum(uint64(result.MaxDepth))
}

// write the structure of a failed tree to the log
func (s *soaker) dump(tree *rbtree.Tree) {
	report := tree.Check()
	s.log.Criticalf("check: valid: %t  black height: %d  depth: %d..%d  error: %v",
		report.Valid, report.BlackHeight, report.MinDepth, report.MaxDepth, report.Err)

	var buffer bytes.Buffer
	tree.Dump(&buffer)

	scanner := bufio.NewScanner(&buffer)
	n := 0
	for scanner.Scan() {
		n += 1
		if n > maxDumpLines {
			s.log.Critical("dump truncated")
			break
		}
		s.log.Critical(scanner.Text())
	}
	s.log.Flush()
}

// reloader - re-read the configuration whenever the watcher reports
// a change
type reloader struct {
	log      *logger.L
	fileName string
	watcher  *watcher
	soaker   *soaker
}

// Run - background process
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case <-r.watcher.remove:
			r.log.Warnf("configuration: %q removed, keeping current settings", r.fileName)
		case <-r.watcher.change:
			conf, err := getConfiguration(r.fileName)
			if nil != err {
				r.log.Errorf("reload: %q  error: %s", r.fileName, err)
				continue
			}
			if err := r.soaker.update(conf); nil != err {
				r.log.Errorf("reload: %q  error: %s", r.fileName, err)
			}
		}
	}
}
