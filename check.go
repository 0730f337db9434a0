// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"errors"
	"fmt"
)

// verify checks the search-order, parent-link and size invariants
// of the whole tree, reporting the first violation found.
func (t *tree[K, V]) verify(cmp func(K, K) int) error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("splay: empty tree has size %d", t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return errors.New("splay: root has a parent")
	}

	// lo and hi are the nearest ancestors bounding x from below and above.
	type frame struct {
		x, lo, hi *node[K, V]
	}
	n := 0
	stack := []frame{{t.root, nil, nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x := f.x
		if n++; n > t.size {
			return fmt.Errorf("splay: more than %d reachable entries", t.size)
		}
		if f.lo != nil && cmp(f.lo.key, x.key) >= 0 {
			return fmt.Errorf("splay: key %v in right subtree of %v", x.key, f.lo.key)
		}
		if f.hi != nil && cmp(x.key, f.hi.key) >= 0 {
			return fmt.Errorf("splay: key %v in left subtree of %v", x.key, f.hi.key)
		}
		if l := x.left; l != nil {
			if l.parent != x {
				return fmt.Errorf("splay: left child %v of %v has wrong parent", l.key, x.key)
			}
			stack = append(stack, frame{l, f.lo, x})
		}
		if r := x.right; r != nil {
			if r.parent != x {
				return fmt.Errorf("splay: right child %v of %v has wrong parent", r.key, x.key)
			}
			stack = append(stack, frame{r, x, f.hi})
		}
	}
	if n != t.size {
		return fmt.Errorf("splay: size %d, but %d reachable entries", t.size, n)
	}
	return nil
}
