// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rbtree_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/rbtree/rbtree"
)

var traverseList = []stringItem{
	{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
	{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
	{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
	{"4079"}, {"1042"}, {"3579"},
}

// traverse the tree forwards and backwards to check iterators
func TestTraverse(t *testing.T) {

	unique := make(map[string]struct{})
	tree := rbtree.New()
	for _, key := range traverseList {
		unique[key.String()] = struct{}{}
		_ = tree.Insert(key, "data:"+key.String())
	}

	expected := make([]string, 0, len(unique))
	for key := range unique {
		expected = append(expected, key)
	}
	sort.Strings(expected)
	require.Equal(t, len(expected), tree.Count(), "tree count")

	p := tree.First()
	require.NotNil(t, p, "no first item")

	n := 0
	for i := 0; nil != p; i += 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("next item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Next()
	}
	assert.Equal(t, len(expected), n, "forward item count")

	p = tree.Last()
	require.NotNil(t, p, "no last item")

	n = 0
	for i := len(expected) - 1; nil != p; i -= 1 {
		if 0 != p.Key().Compare(stringItem{expected[i]}) {
			t.Fatalf("prev item: actual: %q  expected: %q", p.Key(), expected[i])
		}
		n += 1
		p = p.Prev()
	}
	assert.Equal(t, len(expected), n, "backward item count")

	keys := tree.Keys()
	require.Equal(t, len(expected), len(keys), "keys count")
	for i, k := range keys {
		assert.Equal(t, stringItem{expected[i]}, k, "key: %d", i)
	}
}

func TestWalkStops(t *testing.T) {
	tree := rbtree.New()
	for i := 0; i < 10; i += 1 {
		require.NoError(t, tree.Insert(intItem(i), nil))
	}

	seen := []rbtree.Item{}
	tree.Walk(func(key rbtree.Item, _ interface{}) bool {
		seen = append(seen, key)
		return len(seen) < 3
	})
	assert.Equal(t, []rbtree.Item{intItem(0), intItem(1), intItem(2)}, seen, "walk did not stop")
}

// deleting other keys, including the one just visited, must not
// disturb a node that is still in the tree
func TestDeleteWhileIterating(t *testing.T) {
	tree := rbtree.New()
	for i := 0; i < 50; i += 1 {
		require.NoError(t, tree.Insert(intItem(i), i))
	}

	p := tree.First()
	for nil != p {
		next := p.Next()
		k := p.Key().(intItem)
		if 0 == k%3 {
			_, err := tree.Delete(k)
			require.NoError(t, err)
			requireValid(t, tree)
		}
		if nil != next {
			// identity is preserved, the node still holds its own key
			assert.Equal(t, k+1, next.Key(), "node moved")
			assert.Equal(t, int(k+1), next.Value(), "value moved")
		}
		p = next
	}

	assert.Equal(t, 33, tree.Count(), "wrong count")
	for i := 0; i < 50; i += 1 {
		assert.Equal(t, 0 != i%3, tree.Has(intItem(i)), "membership of: %d", i)
	}
}

func TestNodeDepth(t *testing.T) {
	tree := rbtree.New()
	for i := 1; i <= 7; i += 1 {
		require.NoError(t, tree.Insert(intItem(i), nil))
	}
	r := requireValid(t, tree)

	maximum := uint(0)
	for p := tree.First(); nil != p; p = p.Next() {
		if d := p.Depth(); d > maximum {
			maximum = d
		}
	}
	assert.Equal(t, uint(0), tree.Root().Depth(), "root depth")
	assert.Equal(t, uint(r.MaxDepth-1), maximum, "deepest node")
}
