// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rbtree - a red-black balanced tree with parent pointers to
// allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Keys are unique.  Inserting a key that is already present returns
// fault.ErrDuplicateKey and leaves the tree untouched, including the
// stored value.
//
// Delete moves nodes rather than copying keys between them, so a node
// obtained from Search, First, Next etc. stays valid while other keys
// are deleted.  A node must not be used after its own key is deleted,
// since it is returned to the allocator for reuse.
package rbtree
