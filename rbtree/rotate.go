// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// left rotation around p, its right child takes its place
//
//	  |                |
//	  p                r
//	 / \              / \
//	a   r     →      p   c
//	   / \          / \
//	  b   c        a   b
func (tree *Tree) rotateLeft(p *Node) {
	r := p.right
	p.right = r.left
	if nil != r.left {
		r.left.up = p
	}
	tree.replace(p, r)
	r.left = p
	p.up = r
}

// right rotation around p, its left child takes its place
//
//	    |            |
//	    p            l
//	   / \          / \
//	  l   c   →    a   p
//	 / \              / \
//	a   b            b   c
func (tree *Tree) rotateRight(p *Node) {
	l := p.left
	p.left = l.right
	if nil != l.right {
		l.right.up = p
	}
	tree.replace(p, l)
	l.right = p
	p.up = l
}

// put q (possibly nil) into the slot that p occupies under p's
// parent, p's own links are not changed
func (tree *Tree) replace(p *Node, q *Node) {
	up := p.up
	if nil == up {
		tree.root = q
	} else if p == up.left {
		up.left = q
	} else {
		up.right = q
	}
	if nil != q {
		q.up = up
	}
}
