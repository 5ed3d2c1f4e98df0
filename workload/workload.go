// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
)

//go:generate mockgen -destination=mocks/container.go -package=mocks github.com/bitmark-inc/rbtree/workload Container

// Container - the operations a round exercises, satisfied by *rbtree.Tree
type Container interface {
	Insert(key rbtree.Item, value interface{}) error
	Delete(key rbtree.Item) (interface{}, error)
	Has(key rbtree.Item) bool
	Count() int
	Check() rbtree.Report
}

// Config - parameters of a single round
type Config struct {
	Count       int     `gluamapper:"count" json:"count"`               // keys to insert
	Seed        int64   `gluamapper:"seed" json:"seed"`                 // zero for a time based seed
	DeleteRatio float64 `gluamapper:"delete_ratio" json:"delete_ratio"` // chance of a delete after each insert
	CheckEvery  int     `gluamapper:"check_every" json:"check_every"`   // validate every N operations, zero is the same as one
}

// Result - statistics of a completed round
type Result struct {
	Seed        int64         `json:"seed"`
	Inserted    int           `json:"inserted"`
	Duplicates  int           `json:"duplicates"`
	Deleted     int           `json:"deleted"`
	Checks      int           `json:"checks"`
	BlackHeight int           `json:"max_black_height"`
	MaxDepth    int           `json:"max_depth"`
	Elapsed     time.Duration `json:"elapsed"`
}

// Validate - check the configuration values
func (conf Config) Validate() error {
	if conf.Count <= 0 {
		return fault.ErrInvalidKeyCount
	}
	if conf.DeleteRatio < 0 || conf.DeleteRatio > 1 {
		return fault.ErrInvalidDeleteRatio
	}
	if conf.CheckEvery < 0 {
		return fault.ErrInvalidCheckInterval
	}
	return nil
}

// state of a round in progress
type round struct {
	c       Container
	limiter *rate.Limiter
	every   int
	step    int
	result  *Result

	present map[Uint64Key]struct{}
	deleted map[Uint64Key]struct{}
	live    []Uint64Key // surviving keys in insertion order
}

// Run - perform one round against an initially empty container
//
// every key inserted is deleted again before a successful return, so
// the container is left empty.  On failure the error carries the
// seed, step and operation needed to replay it.
func Run(c Container, conf Config, limiter *rate.Limiter, log *logger.L) (*Result, error) {
	if err := conf.Validate(); nil != err {
		return nil, err
	}
	if 0 != c.Count() {
		return nil, fmt.Errorf("container not empty: %w", fault.ErrWorkloadFailed)
	}

	seed := conf.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	every := conf.CheckEvery
	if 0 == every {
		every = 1
	}

	rnd := rand.New(rand.NewSource(seed))
	start := time.Now()

	r := &round{
		c:       c,
		limiter: limiter,
		every:   every,
		result: &Result{
			Seed: seed,
		},
		present: make(map[Uint64Key]struct{}),
		deleted: make(map[Uint64Key]struct{}),
		live:    make([]Uint64Key, 0, conf.Count),
	}

	if nil != log {
		log.Debugf("round: seed: %d  count: %d  delete ratio: %g", seed, conf.Count, conf.DeleteRatio)
	}

	// keys are drawn from a space four times the count so that
	// duplicates occur regularly
	space := uint64(4 * conf.Count)

	for i := 0; i < conf.Count; i += 1 {
		key := Uint64Key(rnd.Uint64() % space)
		if err := r.insert(key); nil != err {
			return r.result, r.failed("insert", key, err)
		}
		if len(r.live) > 0 && rnd.Float64() < conf.DeleteRatio {
			key := r.live[len(r.live)-1]
			r.live = r.live[:len(r.live)-1]
			if err := r.delete(key); nil != err {
				return r.result, r.failed("delete", key, err)
			}
		}
	}

	if err := r.membership(); nil != err {
		return r.result, fmt.Errorf("seed: %d  after inserts: %w", seed, err)
	}

	if nil != log {
		log.Debugf("round: seed: %d  draining: %d keys", seed, len(r.live))
	}

	rnd.Shuffle(len(r.live), func(i, j int) {
		r.live[i], r.live[j] = r.live[j], r.live[i]
	})
	for _, key := range r.live {
		if err := r.delete(key); nil != err {
			return r.result, r.failed("drain", key, err)
		}
	}
	r.live = r.live[:0]

	if 0 != c.Count() {
		return r.result, fmt.Errorf("seed: %d  count: %d after drain: %w", seed, c.Count(), fault.ErrCountMismatch)
	}
	if err := r.check(true); nil != err {
		return r.result, fmt.Errorf("seed: %d  after drain: %w", seed, err)
	}

	r.result.Elapsed = time.Since(start)

	if nil != log {
		log.Infof("round: seed: %d  inserted: %d  duplicates: %d  deleted: %d  checks: %d  elapsed: %s",
			seed, r.result.Inserted, r.result.Duplicates, r.result.Deleted, r.result.Checks, r.result.Elapsed)
	}
	return r.result, nil
}

// attach the replay details to an error
func (r *round) failed(operation string, key Uint64Key, err error) error {
	return fmt.Errorf("seed: %d  step: %d  %s key: %d: %w", r.result.Seed, r.step, operation, key, err)
}

func (r *round) insert(key Uint64Key) error {
	if err := pace(r.limiter); nil != err {
		return err
	}
	r.step += 1

	err := r.c.Insert(key, uint64(key))
	if _, ok := r.present[key]; ok {
		if !errors.Is(err, fault.ErrDuplicateKey) {
			return fmt.Errorf("duplicate accepted: %v: %w", err, fault.ErrWorkloadFailed)
		}
		r.result.Duplicates += 1
	} else {
		if nil != err {
			return err
		}
		r.present[key] = struct{}{}
		delete(r.deleted, key)
		r.live = append(r.live, key)
		r.result.Inserted += 1
	}

	if len(r.present) != r.c.Count() {
		return fault.ErrCountMismatch
	}
	return r.check(false)
}

func (r *round) delete(key Uint64Key) error {
	if err := pace(r.limiter); nil != err {
		return err
	}
	r.step += 1

	value, err := r.c.Delete(key)
	if nil != err {
		return err
	}
	if v, ok := value.(uint64); !ok || Uint64Key(v) != key {
		return fmt.Errorf("wrong value: %v: %w", value, fault.ErrWorkloadFailed)
	}
	delete(r.present, key)
	r.deleted[key] = struct{}{}
	r.result.Deleted += 1

	if len(r.present) != r.c.Count() {
		return fault.ErrCountMismatch
	}
	return r.check(false)
}

// validate the container, only every n'th step unless forced
func (r *round) check(force bool) error {
	if !force && 0 != r.step%r.every {
		return nil
	}
	report := r.c.Check()
	r.result.Checks += 1
	if !report.Valid {
		if nil == report.Err {
			return fault.ErrWorkloadFailed
		}
		return report.Err
	}
	if report.BlackHeight > r.result.BlackHeight {
		r.result.BlackHeight = report.BlackHeight
	}
	if report.MaxDepth > r.result.MaxDepth {
		r.result.MaxDepth = report.MaxDepth
	}
	return nil
}

// every surviving key is found and every deleted key is not
func (r *round) membership() error {
	for key := range r.present {
		if !r.c.Has(key) {
			return fmt.Errorf("key: %d missing: %w", key, fault.ErrMembership)
		}
	}
	for key := range r.deleted {
		if r.c.Has(key) {
			return fmt.Errorf("deleted key: %d present: %w", key, fault.ErrMembership)
		}
	}
	return nil
}
