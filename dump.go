// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package splay

import (
	"bytes"
	"fmt"

	"github.com/xlab/treeprint"
)

// Render returns a sideways drawing of the tree for debugging:
// the root on the first line and each child indented beneath its
// parent, tagged L or R. An empty tree renders as the empty string.
// Render does not restructure the tree.
func (t *tree[K, V]) Render() string {
	if t.root == nil {
		return ""
	}
	type frame struct {
		x      *node[K, V]
		branch treeprint.Tree
	}
	root := treeprint.NewWithRoot(label(t.root))
	stack := []frame{{t.root, root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// Branches print in the order they are added.
		if l := f.x.left; l != nil {
			stack = append(stack, frame{l, f.branch.AddMetaBranch("L", label(l))})
		}
		if r := f.x.right; r != nil {
			stack = append(stack, frame{r, f.branch.AddMetaBranch("R", label(r))})
		}
	}
	return root.String()
}

func label[K, V any](x *node[K, V]) string {
	return fmt.Sprintf("%v:%v", x.key, x.val)
}

// Dump returns the tree as a parenthesized expression
// (key:val left right), with nil for missing children.
func (t *tree[K, V]) Dump() string {
	var buf bytes.Buffer
	var walk func(*node[K, V])
	walk = func(x *node[K, V]) {
		if x == nil {
			fmt.Fprintf(&buf, "nil")
			return
		}
		fmt.Fprintf(&buf, "(%v:%v ", x.key, x.val)
		walk(x.left)
		fmt.Fprintf(&buf, " ")
		walk(x.right)
		fmt.Fprintf(&buf, ")")
	}
	walk(t.root)
	return buf.String()
}
