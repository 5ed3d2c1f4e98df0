// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/rbtree"
	"github.com/bitmark-inc/rbtree/workload"
)

func runWorkload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	conf := workload.Config{
		Count:       c.Int("count"),
		Seed:        c.Int64("seed"),
		DeleteRatio: c.Float64("delete-ratio"),
		CheckEvery:  c.Int("check-every"),
	}
	if err := conf.Validate(); nil != err {
		return err
	}

	limiter, err := workload.NewLimiter(c.Int("rate"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "workload: %+v\n", conf)
	}

	result, err := workload.Run(rbtree.New(), conf, limiter, nil)
	if nil != err {
		return err
	}

	return printJson(m.w, result)
}
