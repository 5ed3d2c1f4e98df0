// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

// Item - a key item must implement the Compare function
//
// Compare returns a negative number when the receiver orders before
// the argument, zero if equal and a positive number if after.  All
// keys in one tree must be of the same type.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

type color bool

const (
	black color = false
	red   color = true
)

func (c color) String() string {
	if red == c {
		return "Red"
	}
	return "Black"
}

// absent children are black leaves
func colorOf(p *Node) color {
	if nil == p {
		return black
	}
	return p.color
}

func isRed(p *Node) bool {
	return red == colorOf(p)
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// IsRed - true for a red node, false for a black one
func (p *Node) IsRed() bool {
	return red == p.color
}

// Depth - get the depth of a node, the root is at depth zero
//
// this counts links from the root, unlike Report which counts nodes
// and so places the root at depth 1
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
