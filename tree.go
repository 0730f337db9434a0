// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import "iter"

type tree[K, V any] struct {
	root  *node[K, V]
	size  int
	stats Stats
}

// A node is an entry in the splay tree.
// Children are owned by their parent; parent is a back link
// used to walk upward during rotations.
type node[K, V any] struct {
	parent *node[K, V]
	left   *node[K, V]
	right  *node[K, V]
	key    K
	val    V
}

// Stats reports how much restructuring a tree has done.
type Stats struct {
	Rotations uint64 // single rotations performed
	Splays    uint64 // splays that moved an entry to the root
}

// Len returns the number of entries in the tree.
func (t *tree[K, V]) Len() int {
	return t.size
}

// Stats returns the restructuring counters accumulated so far.
func (t *tree[K, V]) Stats() Stats {
	return t.stats
}

// Depth returns the number of entries on the longest root-to-leaf path.
func (t *tree[K, V]) Depth() int {
	type frame struct {
		x     *node[K, V]
		depth int
	}
	if t.root == nil {
		return 0
	}
	d := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		d = max(d, f.depth)
		if f.x.left != nil {
			stack = append(stack, frame{f.x.left, f.depth + 1})
		}
		if f.x.right != nil {
			stack = append(stack, frame{f.x.right, f.depth + 1})
		}
	}
	return d
}

func (x *node[K, V]) isLeft() bool {
	return x.parent != nil && x.parent.left == x
}

func (x *node[K, V]) isRight() bool {
	return x.parent != nil && x.parent.right == x
}

func (t *tree[K, V]) setRoot(x *node[K, V]) {
	t.root = x
	if x != nil {
		x.parent = nil
	}
}

func (x *node[K, V]) setLeft(y *node[K, V]) {
	x.left = y
	if y != nil {
		y.parent = x
	}
}

func (x *node[K, V]) setRight(y *node[K, V]) {
	x.right = y
	if y != nil {
		y.parent = x
	}
}

// replaceChild puts x in the slot of p that holds old.
// A nil p means old is the root.
func (t *tree[K, V]) replaceChild(p, old, x *node[K, V]) {
	switch {
	case p == nil:
		if t.root != old {
			panic("splay: corrupt tree")
		}
		t.setRoot(x)
	case p.left == old:
		p.setLeft(x)
	case p.right == old:
		p.setRight(x)
	default:
		panic("splay: corrupt tree")
	}
}

// rotateRight lifts x, the left child of y,
// turning (y (x a b) c) into (x a (y b c)).
func (t *tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.parent
	if y == nil || y.left != x {
		panic("splay: corrupt tree")
	}
	t.stats.Rotations++
	// p -> (y (x a b) c)
	p := y.parent
	b := x.right

	y.setLeft(b)
	x.setRight(y)
	t.replaceChild(p, y, x)
}

// rotateLeft lifts y, the right child of x,
// turning (x a (y b c)) into (y (x a b) c).
func (t *tree[K, V]) rotateLeft(y *node[K, V]) {
	x := y.parent
	if x == nil || x.right != y {
		panic("splay: corrupt tree")
	}
	t.stats.Rotations++
	// p -> (x a (y b c))
	p := x.parent
	b := y.left

	x.setRight(b)
	y.setLeft(x)
	t.replaceChild(p, x, y)
}

// rotateUp lifts x over its parent.
func (t *tree[K, V]) rotateUp(x *node[K, V]) {
	if x.isLeft() {
		t.rotateRight(x)
	} else {
		t.rotateLeft(x)
	}
}

// splay moves x to the root.
func (t *tree[K, V]) splay(x *node[K, V]) {
	if x == nil || x.parent == nil {
		return
	}
	t.stats.Splays++
	for p := x.parent; p != nil; p = x.parent {
		switch {
		case p.parent == nil:
			// zig
			t.rotateUp(x)
		case x.isLeft() == p.isLeft():
			// zig-zig
			t.rotateUp(p)
			t.rotateUp(x)
		default:
			// zig-zag
			t.rotateUp(x)
			t.rotateUp(x)
		}
	}
}

// insert stores key, val given the result x, c of locating key.
func (t *tree[K, V]) insert(x *node[K, V], c int, key K, val V) {
	switch {
	case x == nil:
		t.setRoot(&node[K, V]{key: key, val: val})
		t.size = 1
		return
	case c == 0:
		x.val = val
	default:
		y := &node[K, V]{key: key, val: val}
		if c < 0 {
			x.setLeft(y)
		} else {
			x.setRight(y)
		}
		t.size++
		x = y
	}
	t.splay(x)
}

func (t *tree[K, V]) find(x *node[K, V], c int) (val V, ok bool) {
	if x == nil {
		return
	}
	t.splay(x)
	if c != 0 {
		return
	}
	return x.val, true
}

func (t *tree[K, V]) remove(x *node[K, V], c int) (val V, ok bool) {
	if x == nil {
		return
	}
	if c != 0 {
		t.splay(x)
		return
	}
	val = x.val
	t.splay(t.unlink(x))
	return val, true
}

// unlink removes x from the tree and returns the node
// nearest the change, which the caller should splay.
// It returns nil when x was the root with at most one child.
func (t *tree[K, V]) unlink(x *node[K, V]) *node[K, V] {
	var next *node[K, V]
	if x.left == nil || x.right == nil {
		child := x.left
		if child == nil {
			child = x.right
		}
		next = x.parent
		t.replaceChild(x.parent, x, child)
	} else {
		// Promote the in-order successor r, which has no left child.
		r := x.right.min()
		if r == x.right {
			next = r
		} else {
			next = r.parent
			t.replaceChild(r.parent, r, r.right)
			r.setRight(x.right)
		}
		r.setLeft(x.left)
		t.replaceChild(x.parent, x, r)
	}
	t.size--
	x.parent, x.left, x.right = nil, nil, nil
	return next
}

// inTree reports whether x is still linked into t.
func (t *tree[K, V]) inTree(x *node[K, V]) bool {
	return x.parent != nil || t.root == x
}

func (x *node[K, V]) min() *node[K, V] {
	for x != nil && x.left != nil {
		x = x.left
	}
	return x
}

func (x *node[K, V]) max() *node[K, V] {
	for x != nil && x.right != nil {
		x = x.right
	}
	return x
}

// Min returns the smallest key and its value,
// moving that entry to the root.
// If the tree is empty, ok is false.
func (t *tree[K, V]) Min() (key K, val V, ok bool) {
	return t.extreme(t.root.min())
}

// Max returns the largest key and its value,
// moving that entry to the root.
// If the tree is empty, ok is false.
func (t *tree[K, V]) Max() (key K, val V, ok bool) {
	return t.extreme(t.root.max())
}

func (t *tree[K, V]) extreme(x *node[K, V]) (key K, val V, ok bool) {
	if x == nil {
		return
	}
	t.splay(x)
	return x.key, x.val, true
}

// next returns the in-order successor of x, or nil.
func (x *node[K, V]) next() *node[K, V] {
	if x.right == nil {
		for x.isRight() {
			x = x.parent
		}
		return x.parent
	}
	return x.right.min()
}

func (t *tree[K, V]) all(locate func(K) (*node[K, V], int)) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil {
			return
		}
		x := t.root.min()
		for x != nil && yield(x.key, x.val) {
			if t.inTree(x) {
				x = x.next()
				continue
			}
			// x was removed during yield; resume after its key.
			y, c := locate(x.key)
			if y != nil && c >= 0 {
				y = y.next()
			}
			x = y
		}
	}
}
