// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Delete - removes a specific item from the tree and returns its value
//
// returns fault.ErrKeyNotFound if the key is not present
func (tree *Tree) Delete(key Item) (interface{}, error) {
	q := tree.Search(key)
	if nil == q {
		return nil, fault.ErrKeyNotFound
	}
	value := q.value // preserve the value part

	// x is the position that may be one black short after the
	// removal, up is its parent since x itself can be nil
	var x, up *Node
	removed := q.color

	switch {
	case nil == q.left:
		x = q.right
		up = q.up
		tree.replace(q, q.right)

	case nil == q.right:
		x = q.left
		up = q.up
		tree.replace(q, q.left)

	default:
		// two children: move the in-order successor into q's
		// position and give it q's colour, so the colour actually
		// lost is the successor's own
		s := q.right.first()
		removed = s.color
		x = s.right
		if s.up == q {
			up = s
		} else {
			up = s.up
			tree.replace(s, s.right)
			s.right = q.right
			s.right.up = s
		}
		tree.replace(q, s)
		s.left = q.left
		s.left.up = s
		s.color = q.color
	}

	if black == removed {
		tree.deleteFixup(x, up)
	}
	tree.count -= 1

	freeNode(q) // return deleted node to pool
	return value, nil
}

// resolve a double black at x (possibly nil) whose parent is up
func (tree *Tree) deleteFixup(x *Node, up *Node) {
	for x != tree.root && !isRed(x) {

		if x == up.left {
			w := up.right
			if isRed(w) {
				w.color = black
				up.color = red
				tree.rotateLeft(up)
				w = up.right
			}
			if !isRed(w.left) && !isRed(w.right) {
				// push the deficit up a level
				w.color = red
				x = up
				up = x.up
				continue
			}
			if !isRed(w.right) {
				// close child red, far child black
				w.left.color = black
				w.color = red
				tree.rotateRight(w)
				w = up.right
			}
			// far child red
			w.color = up.color
			up.color = black
			w.right.color = black
			tree.rotateLeft(up)
			x = tree.root
			break
		}

		w := up.left
		if isRed(w) {
			w.color = black
			up.color = red
			tree.rotateRight(up)
			w = up.left
		}
		if !isRed(w.left) && !isRed(w.right) {
			w.color = red
			x = up
			up = x.up
			continue
		}
		if !isRed(w.left) {
			w.right.color = black
			w.color = red
			tree.rotateLeft(w)
			w = up.left
		}
		w.color = up.color
		up.color = black
		w.left.color = black
		tree.rotateRight(up)
		x = tree.root
		break
	}

	if nil != x {
		x.color = black
	}
}
