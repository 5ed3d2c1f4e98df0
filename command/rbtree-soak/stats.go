// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/rbtree/rbtree"
)

const (
	mega = 1048576
)

// memstats - periodic memory and tree statistics
type memstats struct {
	log    *logger.L
	delay  time.Duration
	soaker *soaker
}

// Run - background process
func (m *memstats) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case <-time.After(m.delay):
		}
		m.report()
	}
}

func (m *memstats) report() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	text, err := json.Marshal(ms)
	if nil != err {
		m.log.Errorf("marshal error: %s", err)
	} else {
		m.log.Debugf("stats: %s", text)
	}
	a := ms.Alloc / mega
	t := ms.TotalAlloc / mega
	s := ms.Sys / mega
	m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

	total, free := rbtree.Allocated()
	m.log.Infof("nodes: %d  free: %d", total, free)

	st := &m.soaker.stats
	m.log.Infof("rounds: %d  inserted: %d  duplicates: %d  deleted: %d  checks: %d  max black height: %d  max depth: %d",
		st.rounds.Uint64(), st.inserted.Uint64(), st.duplicates.Uint64(), st.deleted.Uint64(),
		st.checks.Uint64(), st.blackHeight.Uint64(), st.maxDepth.Uint64())
}
