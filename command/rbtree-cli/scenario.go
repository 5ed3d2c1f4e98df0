// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"
	"strings"

	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/workload"
)

// step - one operation of a scenario and the state it left behind
type step struct {
	Operation string        `json:"operation"`
	Key       uint64        `json:"key"`
	Result    string        `json:"result"`
	Count     int           `json:"count"`
	Check     rbtree.Report `json:"check"`
}

// scenario - record of a completed scenario
type scenario struct {
	Name  string   `json:"name"`
	Steps []step   `json:"steps"`
	Root  string   `json:"root"`
	Keys  []uint64 `json:"keys"`
	Valid bool     `json:"valid"`
}

type scenarioFunc func(s *scenario, tree *rbtree.Tree)

var scenarios = map[string]scenarioFunc{
	"ascending": ascending,
	"evens":     evens,
}

func scenarioNames() string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// run a scenario on an empty tree, every step is validated
func playScenario(name string) (*scenario, *rbtree.Tree, bool) {
	f, ok := scenarios[name]
	if !ok {
		return nil, nil, false
	}
	s := &scenario{
		Name:  name,
		Steps: []step{},
		Valid: true,
	}
	tree := rbtree.New()
	f(s, tree)

	if root := tree.Root(); nil != root {
		s.Root = root.String()
	}
	s.Keys = []uint64{}
	tree.Walk(func(key rbtree.Item, value interface{}) bool {
		s.Keys = append(s.Keys, uint64(key.(workload.Uint64Key)))
		return true
	})
	return s, tree, true
}

func (s *scenario) record(tree *rbtree.Tree, operation string, key uint64, err error) {
	result := "ok"
	if nil != err {
		result = err.Error()
	}
	s.add(tree, operation, key, result)
}

func (s *scenario) add(tree *rbtree.Tree, operation string, key uint64, result string) {
	report := tree.Check()
	if !report.Valid {
		s.Valid = false
	}
	s.Steps = append(s.Steps, step{
		Operation: operation,
		Key:       key,
		Result:    result,
		Count:     tree.Count(),
		Check:     report,
	})
}

func (s *scenario) find(tree *rbtree.Tree, key uint64) {
	result := "absent"
	if tree.Has(workload.Uint64Key(key)) {
		result = "found"
	}
	s.add(tree, "find", key, result)
}

// three ascending keys force a single rotation, then the root is
// deleted
func ascending(s *scenario, tree *rbtree.Tree) {
	for _, k := range []uint64{10, 20, 30} {
		s.record(tree, "insert", k, tree.Insert(workload.Uint64Key(k), k))
	}
	s.find(tree, 20)
	s.find(tree, 25)
	_, err := tree.Delete(workload.Uint64Key(20))
	s.record(tree, "delete", 20, err)
}

// insert 1..100 then delete every even key
func evens(s *scenario, tree *rbtree.Tree) {
	for k := uint64(1); k <= 100; k += 1 {
		s.record(tree, "insert", k, tree.Insert(workload.Uint64Key(k), k))
	}
	for k := uint64(2); k <= 100; k += 2 {
		_, err := tree.Delete(workload.Uint64Key(k))
		s.record(tree, "delete", k, err)
	}
}
