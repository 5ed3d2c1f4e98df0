// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above its parent and the left below,
// returns the maximum depth of the tree
func (tree *Tree) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v %s → %v ^%v\n", tree.key, tree.color, tree.value, up)
	} else {
		fmt.Fprintf(w, "%v %s ^%v\n", tree.key, tree.color, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Dump - one line per node in key order followed by the node count
func (tree *Tree) Dump(w io.Writer) {
	for p := tree.First(); nil != p; p = p.Next() {
		fmt.Fprintln(w, p)
	}
	fmt.Fprintf(w, "%d nodes\n", tree.count)
}

// String - node key and colour with the keys of its immediate links
func (p *Node) String() string {
	return fmt.Sprintf("Node(%v;%s;p(%s);l(%s);r(%s))", p.key, p.color, keyOf(p.up), keyOf(p.left), keyOf(p.right))
}

func keyOf(p *Node) string {
	if nil == p {
		return "none"
	}
	return fmt.Sprint(p.key)
}
