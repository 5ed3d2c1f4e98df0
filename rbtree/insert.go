// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Insert - insert a new key and its value into the tree
//
// returns fault.ErrDuplicateKey if the key is already present, the
// tree is not modified in that case
func (tree *Tree) Insert(key Item, value interface{}) error {
	var up *Node
	p := tree.root
	c := 0
	for nil != p {
		up = p
		c = p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return fault.ErrDuplicateKey
		}
	}

	n := newNode(key, value)
	n.up = up
	if nil == up {
		tree.root = n
	} else if c > 0 {
		up.left = n
	} else {
		up.right = n
	}
	tree.count += 1

	tree.insertFixup(n)
	return nil
}

// restore the red-black properties after n was linked in as a red node
//
// n is always red on entry to the loop, so the only possible
// violation is n having a red parent (or n being a red root)
func (tree *Tree) insertFixup(n *Node) {
	for {
		p := n.up
		if nil == p {
			n.color = black
			return
		}
		if black == p.color {
			return
		}

		// p is red so it cannot be the root
		g := p.up

		if p == g.left {
			if u := g.right; isRed(u) {
				p.color = black
				u.color = black
				g.color = red
				n = g
				continue
			}
			if n == p.right {
				// LR: rotate into the LL shape and retry from p
				tree.rotateLeft(p)
				n = p
				continue
			}
			// LL
			g.color = red
			p.color = black
			tree.rotateRight(g)
			return
		}

		if u := g.left; isRed(u) {
			p.color = black
			u.color = black
			g.color = red
			n = g
			continue
		}
		if n == p.left {
			// RL: rotate into the RR shape and retry from p
			tree.rotateRight(p)
			n = p
			continue
		}
		// RR
		g.color = red
		p.color = black
		tree.rotateLeft(g)
		return
	}
}
