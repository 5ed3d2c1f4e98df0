// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"github.com/bitmark-inc/rbtree/fault"
)

// Search - find a specific item, nil if it is not in the tree
func (tree *Tree) Search(key Item) *Node {
	p := tree.root
	for nil != p {
		switch c := p.key.Compare(key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Has - true if the key is in the tree
func (tree *Tree) Has(key Item) bool {
	return nil != tree.Search(key)
}

// Get - fetch the value stored with a key
func (tree *Tree) Get(key Item) (interface{}, error) {
	p := tree.Search(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.value, nil
}
