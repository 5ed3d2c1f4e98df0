// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/rbtree/fault"
)

type key int

func (i key) Compare(x interface{}) int {
	j := x.(key)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	}
	return 0
}

// balanced seven node tree: 4 black at the root, 2 and 6 black, the
// leaves red
func sevenTree(t *testing.T) *Tree {
	tree := New()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		require.NoError(t, tree.Insert(key(k), nil))
	}
	r := tree.Check()
	require.True(t, r.Valid, "initial tree: %v", r.Err)
	require.Equal(t, 2, r.BlackHeight, "black height")
	return tree
}

func TestCheckDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tree *Tree)
		err     error
	}{
		{
			name:    "red root",
			corrupt: func(tree *Tree) { tree.root.color = red },
			err:     fault.ErrRootNotBlack,
		},
		{
			name: "red child of red",
			corrupt: func(tree *Tree) {
				tree.root.left.color = red
			},
			err: fault.ErrRedViolation,
		},
		{
			name: "unequal black height",
			corrupt: func(tree *Tree) {
				tree.root.left.left.color = black
			},
			err: fault.ErrBlackHeight,
		},
		{
			name: "key order",
			corrupt: func(tree *Tree) {
				// 3 sits in the left sub-tree of 4, 9 is too large
				tree.root.left.right.key = key(9)
			},
			err: fault.ErrKeyOrder,
		},
		{
			name: "parent link",
			corrupt: func(tree *Tree) {
				tree.root.right.left.up = tree.root
			},
			err: fault.ErrParentLink,
		},
		{
			name: "root parent link",
			corrupt: func(tree *Tree) {
				tree.root.up = tree.root.left
			},
			err: fault.ErrParentLink,
		},
		{
			name: "count",
			corrupt: func(tree *Tree) {
				tree.count += 1
			},
			err: fault.ErrCountMismatch,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tree := sevenTree(t)
			test.corrupt(tree)
			r := tree.Check()
			assert.False(t, r.Valid, "corruption not detected")
			assert.Equal(t, test.err, r.Err, "wrong error")
			assert.True(t, fault.IsErrInvalid(r.Err), "wrong error class")
		})
	}
}

func TestCheckEmptyCountMismatch(t *testing.T) {
	tree := New()
	tree.count = 1
	r := tree.Check()
	assert.False(t, r.Valid, "corruption not detected")
	assert.Equal(t, fault.ErrCountMismatch, r.Err, "wrong error")
}

// a two node tree linked by hand
func TestCheckHandBuilt(t *testing.T) {
	tree := New()
	a := &Node{key: key(1), color: black}
	b := &Node{key: key(2), color: red, up: a}
	a.right = b
	tree.root = a
	tree.count = 2

	// the root has a missing left child so its own depth counts
	r := tree.Check()
	require.True(t, r.Valid, "unexpected: %v", r.Err)
	assert.Equal(t, 1, r.BlackHeight, "black height")
	assert.Equal(t, 1, r.MinDepth, "min depth")
	assert.Equal(t, 2, r.MaxDepth, "max depth")
}

func TestRotationsKeepLinks(t *testing.T) {
	tree := sevenTree(t)

	tree.rotateLeft(tree.root)
	assert.Equal(t, key(6), tree.root.key, "left rotation root")
	assert.Nil(t, tree.root.up, "root parent")
	assert.Equal(t, key(4), tree.root.left.key, "demoted node")
	assert.Equal(t, key(5), tree.root.left.right.key, "inner child moved")
	assert.Equal(t, tree.root.left, tree.root.left.right.up, "inner child parent")

	tree.rotateRight(tree.root)
	assert.Equal(t, key(4), tree.root.key, "right rotation root")
	assert.Equal(t, key(5), tree.root.right.left.key, "inner child restored")
	assert.Equal(t, tree.root.right, tree.root.right.left.up, "inner child parent")

	// colours were not touched so the tree is valid again
	r := tree.Check()
	assert.True(t, r.Valid, "rotations did not restore the tree: %v", r.Err)
}
