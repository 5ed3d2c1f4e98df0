// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Report - result of a full consistency check
//
// depths count nodes, the root is at depth 1 and a leaf depth is the
// depth of any node with a missing child.  BlackHeight is the number
// of black nodes from the root down to any missing child.  A leaf
// depth here is one more than the Node.Depth of the same node.
type Report struct {
	Valid       bool  `json:"valid"`
	BlackHeight int   `json:"black_height"`
	MinDepth    int   `json:"min_depth"`
	MaxDepth    int   `json:"max_depth"`
	Err         error `json:"-"`
}

// Check - verify every red-black, ordering and linkage property of
// the tree; read only
func (tree *Tree) Check() Report {
	if nil == tree.root {
		if 0 != tree.count {
			return Report{Err: fault.ErrCountMismatch}
		}
		return Report{Valid: true}
	}
	if nil != tree.root.up {
		return Report{Err: fault.ErrParentLink}
	}
	if red == tree.root.color {
		return Report{Err: fault.ErrRootNotBlack}
	}

	c := checker{
		blackHeight: -1,
	}
	if err := c.check(tree.root, nil, nil, 0, 1); nil != err {
		return Report{Err: err}
	}

	r := Report{
		BlackHeight: c.blackHeight,
		MinDepth:    c.minDepth,
		MaxDepth:    c.maxDepth,
	}
	if c.nodes != tree.count {
		r.Err = fault.ErrCountMismatch
		return r
	}
	if r.BlackHeight > r.MinDepth || r.MaxDepth > 2*r.BlackHeight {
		r.Err = fault.ErrDepthBound
		return r
	}
	r.Valid = true
	return r
}

// accumulated state of a check
type checker struct {
	blackHeight int
	minDepth    int
	maxDepth    int
	nodes       int
}

// internal: recursive check of a sub-tree whose keys must lie
// strictly between low and high (nil for unbounded)
func (c *checker) check(p *Node, low Item, high Item, blacks int, depth int) error {
	c.nodes += 1

	if nil != low && p.key.Compare(low) <= 0 {
		return fault.ErrKeyOrder
	}
	if nil != high && p.key.Compare(high) >= 0 {
		return fault.ErrKeyOrder
	}

	if black == p.color {
		blacks += 1
	} else if isRed(p.left) || isRed(p.right) {
		return fault.ErrRedViolation
	}

	if nil == p.left || nil == p.right {
		if err := c.leaf(blacks, depth); nil != err {
			return err
		}
	}

	if nil != p.left {
		if p.left.up != p {
			return fault.ErrParentLink
		}
		if err := c.check(p.left, low, p.key, blacks, depth+1); nil != err {
			return err
		}
	}
	if nil != p.right {
		if p.right.up != p {
			return fault.ErrParentLink
		}
		if err := c.check(p.right, p.key, high, blacks, depth+1); nil != err {
			return err
		}
	}
	return nil
}

// internal: a path has reached a missing child
func (c *checker) leaf(blacks int, depth int) error {
	if c.blackHeight < 0 {
		c.blackHeight = blacks
		c.minDepth = depth
		c.maxDepth = depth
		return nil
	}
	if blacks != c.blackHeight {
		return fault.ErrBlackHeight
	}
	if depth < c.minDepth {
		c.minDepth = depth
	}
	if depth > c.maxDepth {
		c.maxDepth = depth
	}
	return nil
}
