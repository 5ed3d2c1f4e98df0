// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/rbtree/fault"
)

func run(t *testing.T, args ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"rbtree-cli"}, args...))
	return w.String(), e.String(), err
}

func TestScenarioAscending(t *testing.T) {
	s, tree, ok := playScenario("ascending")
	require.True(t, ok, "scenario missing")
	require.True(t, s.Valid, "invalid step: %+v", s.Steps)

	require.Len(t, s.Steps, 6)

	// after the third insert the middle key is the root
	third := s.Steps[2]
	assert.Equal(t, "insert", third.Operation)
	assert.Equal(t, 3, third.Count)
	assert.Equal(t, 1, third.Check.BlackHeight)
	assert.Equal(t, 2, third.Check.MinDepth)
	assert.Equal(t, 2, third.Check.MaxDepth)

	assert.Equal(t, "found", s.Steps[3].Result)
	assert.Equal(t, "absent", s.Steps[4].Result)
	assert.Equal(t, "ok", s.Steps[5].Result)

	assert.Equal(t, "Node(30;Black;p(none);l(10);r(none))", s.Root)
	assert.Equal(t, []uint64{10, 30}, s.Keys)
	assert.Equal(t, 2, tree.Count())
}

func TestScenarioEvens(t *testing.T) {
	s, tree, ok := playScenario("evens")
	require.True(t, ok, "scenario missing")
	assert.True(t, s.Valid, "invalid step")
	assert.Len(t, s.Steps, 150)
	assert.Equal(t, 50, tree.Count())

	require.Len(t, s.Keys, 50)
	for i, k := range s.Keys {
		assert.Equal(t, uint64(2*i+1), k, "wrong key at: %d", i)
	}
	for _, st := range s.Steps {
		assert.Equal(t, "ok", st.Result, "%s %d failed", st.Operation, st.Key)
		assert.True(t, st.Check.MaxDepth <= 2*st.Check.BlackHeight, "depth bound")
	}
}

func TestScenarioUnknown(t *testing.T) {
	_, _, ok := playScenario("descending")
	assert.False(t, ok)

	_, _, err := run(t, "scenario", "descending")
	assert.True(t, errors.Is(err, fault.ErrUnknownScenario), "wrong error: %v", err)

	_, _, err = run(t, "scenario")
	assert.Error(t, err)
}

func TestScenarioCommand(t *testing.T) {
	out, _, err := run(t, "scenario", "ascending")
	require.NoError(t, err)

	s := scenario{}
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "ascending", s.Name)
	assert.Equal(t, []uint64{10, 30}, s.Keys)
}

func TestInsertCommand(t *testing.T) {
	out, _, err := run(t, "insert", "10", "20", "30", "20")
	require.NoError(t, err)

	// JSON summary followed by the tree
	summary := struct {
		Count      int      `json:"count"`
		Duplicates []uint64 `json:"duplicates"`
		Check      struct {
			Valid bool `json:"valid"`
		} `json:"check"`
	}{}
	require.NoError(t, json.NewDecoder(strings.NewReader(out)).Decode(&summary))
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, []uint64{20}, summary.Duplicates)
	assert.True(t, summary.Check.Valid)

	assert.Contains(t, out, "20 Black ^<nil>", "tree missing")

	out, _, err = run(t, "insert", "--data", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "5 Black → v1 ^<nil>", "data missing")
}

func TestInsertCommandErrors(t *testing.T) {
	_, _, err := run(t, "insert")
	assert.True(t, errors.Is(err, fault.ErrInvalidKeyCount), "wrong error: %v", err)

	_, _, err = run(t, "insert", "12", "twelve")
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	out, _, err := run(t, "run", "--count", "500", "--seed", "42", "--delete-ratio", "0.3")
	require.NoError(t, err)

	result := struct {
		Seed       int64 `json:"seed"`
		Inserted   int   `json:"inserted"`
		Duplicates int   `json:"duplicates"`
		Deleted    int   `json:"deleted"`
	}{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, int64(42), result.Seed)
	assert.Equal(t, 500, result.Inserted+result.Duplicates)
	assert.Equal(t, result.Inserted, result.Deleted)

	_, _, err = run(t, "run", "--count", "0")
	assert.Equal(t, fault.ErrInvalidKeyCount, err)

	_, _, err = run(t, "run", "--rate", "-3")
	assert.Equal(t, fault.ErrInvalidRate, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
