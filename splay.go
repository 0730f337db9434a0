// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splay implements self-adjusting ordered maps.
// [Tree][K, V] is suitable for ordered types K,
// while [TreeFunc][K, V] supports arbitrary keys and comparison functions.
//
// Every access moves the touched entry to the root of the tree,
// so recently used keys are cheap to reach again and any sequence
// of operations runs in amortized O(log n) time per operation.
// Even a lookup restructures the tree: a Tree is not safe for
// concurrent use, including concurrent reads.
package splay

// The implementation is a bottom-up splay tree with parent links. See:
// https://en.wikipedia.org/wiki/Splay_tree
// Sleator & Tarjan, Self-Adjusting Binary Search Trees, JACM 1985.

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidKey is returned by Insert for a key that does not
// compare equal to itself, such as a floating-point NaN.
// Such a key has no place in a total order.
var ErrInvalidKey = errors.New("splay: key not comparable")

// A Tree is a map[K]V ordered according to K's standard Go ordering.
// The zero value of a Tree is an empty Tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	tree[K, V]
}

// Insert sets the value for key to val, adding key if it is absent.
// Afterward the entry for key is at the root of the tree.
func (m *Tree[K, V]) Insert(key K, val V) error {
	if isNaN(key) {
		return fmt.Errorf("%w: %v", ErrInvalidKey, key)
	}
	x, c := m.locate(key)
	m.insert(x, c, key, val)
	return nil
}

// Find returns the value for key and whether key is present.
// On a miss the entry nearest to key is moved to the root.
func (m *Tree[K, V]) Find(key K) (val V, ok bool) {
	if m == nil || isNaN(key) {
		return
	}
	return m.find(m.locate(key))
}

// Contains reports whether key is present.
func (m *Tree[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Remove deletes key, returning its value and whether it was present.
func (m *Tree[K, V]) Remove(key K) (val V, ok bool) {
	if m == nil || isNaN(key) {
		return
	}
	return m.remove(m.locate(key))
}

// locate returns the node holding key, or the last node visited
// on the way down when key is absent, along with the comparison
// of key against that node's key. It returns nil only for an empty tree.
func (m *Tree[K, V]) locate(key K) (x *node[K, V], c int) {
	x = m.root
	for x != nil {
		switch {
		case key < x.key:
			if x.left == nil {
				return x, -1
			}
			x = x.left
		case key > x.key:
			if x.right == nil {
				return x, +1
			}
			x = x.right
		default:
			return x, 0
		}
	}
	return nil, 0
}

// All returns an iterator over the tree m in key order.
// Iteration does not restructure the tree.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *Tree[K, V]) All() iter.Seq2[K, V] {
	return m.all(m.locate)
}

func (m *Tree[K, V]) verify() error {
	return m.tree.verify(cmp.Compare[K])
}

func isNaN[K cmp.Ordered](key K) bool {
	return key != key
}

// A TreeFunc is a map[K]V ordered according to a comparison function.
// The comparison function must define a total order on the keys:
// cmp(a, b) is negative, zero or positive as a is less than, equal to
// or greater than b.
type TreeFunc[K, V any] struct {
	tree[K, V]
	cmp func(K, K) int
}

// NewTreeFunc returns an empty TreeFunc ordered by cmp.
func NewTreeFunc[K, V any](cmp func(K, K) int) *TreeFunc[K, V] {
	m := new(TreeFunc[K, V])
	m.cmp = cmp
	return m
}

// Insert sets the value for key to val, adding key if it is absent.
// Afterward the entry for key is at the root of the tree.
func (m *TreeFunc[K, V]) Insert(key K, val V) error {
	if m.cmp(key, key) != 0 {
		return fmt.Errorf("%w: %v", ErrInvalidKey, key)
	}
	x, c := m.locate(key)
	m.insert(x, c, key, val)
	return nil
}

// Find returns the value for key and whether key is present.
// On a miss the entry nearest to key is moved to the root.
func (m *TreeFunc[K, V]) Find(key K) (val V, ok bool) {
	if m == nil || m.cmp(key, key) != 0 {
		return
	}
	return m.find(m.locate(key))
}

// Contains reports whether key is present.
func (m *TreeFunc[K, V]) Contains(key K) bool {
	_, ok := m.Find(key)
	return ok
}

// Remove deletes key, returning its value and whether it was present.
func (m *TreeFunc[K, V]) Remove(key K) (val V, ok bool) {
	if m == nil || m.cmp(key, key) != 0 {
		return
	}
	return m.remove(m.locate(key))
}

func (m *TreeFunc[K, V]) locate(key K) (x *node[K, V], c int) {
	x = m.root
	for x != nil {
		c = m.cmp(key, x.key)
		switch {
		case c < 0:
			if x.left == nil {
				return x, c
			}
			x = x.left
		case c > 0:
			if x.right == nil {
				return x, c
			}
			x = x.right
		default:
			return x, 0
		}
	}
	return nil, 0
}

// All returns an iterator over the tree m in key order.
// Iteration does not restructure the tree.
// If m is modified during the iteration, some keys may not be visited.
// No keys will be visited multiple times.
func (m *TreeFunc[K, V]) All() iter.Seq2[K, V] {
	return m.all(m.locate)
}

func (m *TreeFunc[K, V]) verify() error {
	return m.tree.verify(m.cmp)
}
