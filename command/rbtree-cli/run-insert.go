// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/fault"
	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/workload"
)

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fmt.Errorf("at least one key is required: %w", fault.ErrInvalidKeyCount)
	}

	tree := rbtree.New()
	duplicates := []uint64{}
	for i, s := range c.Args() {
		n, err := strconv.ParseUint(s, 10, 64)
		if nil != err {
			return fmt.Errorf("argument: %d  key: %q  error: %s", i+1, s, err)
		}
		err = tree.Insert(workload.Uint64Key(n), fmt.Sprintf("v%d", i+1))
		if fault.IsErrExists(err) {
			duplicates = append(duplicates, n)
		} else if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "insert: %d  count: %d\n", n, tree.Count())
		}
	}

	out := struct {
		Count      int           `json:"count"`
		Duplicates []uint64      `json:"duplicates"`
		Check      rbtree.Report `json:"check"`
		Error      string        `json:"error,omitempty"`
	}{
		Count:      tree.Count(),
		Duplicates: duplicates,
		Check:      tree.Check(),
	}
	if nil != out.Check.Err {
		out.Error = out.Check.Err.Error()
	}
	if err := printJson(m.w, out); nil != err {
		return err
	}
	tree.Print(m.w, c.Bool("data"))

	if !out.Check.Valid {
		return out.Check.Err
	}
	return nil
}
