// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"sync"

	"github.com/bitmark-inc/rbtree/fault"
)

// Node - a node in the tree
type Node struct {
	left  *Node       // left sub-tree
	right *Node       // right sub-tree
	up    *Node       // points to parent node
	key   Item        // key part for ordering
	value interface{} // value part for data storage
	color color       // red or black
}

// global data for allocator
//
// the pool is shared by every tree in the process, the mutex only
// protects the pool itself
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new red node, reuses reclaimed nodes if any are available
func newNode(key Item, value interface{}) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			free := freeNodes
			m.Unlock()
			fault.Criticalf("rbtree: empty pool with free count: %d", free)
			fault.Panic("rbtree: node pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:   key,
			value: value,
			color: red,
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.value = value
	p.color = red
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = nil
	node.value = nil
	node.color = black
	freeNodes += 1

	pool = node
	m.Unlock()
}

// Allocated - number of nodes ever created and the number currently
// waiting in the pool for reuse
func Allocated() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
