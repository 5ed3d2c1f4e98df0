// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/rbtree/fault"
)

func runScenario(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.Args().Get(0)
	if "" == name {
		return fmt.Errorf("scenario name is required, one of: %s", scenarioNames())
	}

	s, tree, ok := playScenario(name)
	if !ok {
		return fmt.Errorf("scenario: %q  one of: %s: %w", name, scenarioNames(), fault.ErrUnknownScenario)
	}

	if err := printJson(m.w, s); nil != err {
		return err
	}
	if m.verbose {
		tree.Print(m.e, true)
	}

	if !s.Valid {
		return fault.ErrWorkloadFailed
	}
	return nil
}
