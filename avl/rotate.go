// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly absent sub-tree
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: recompute the stored height from the children
// the children's heights must already be correct
func (p *Node) setHeight() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = lh + 1
	} else {
		p.height = rh + 1
	}
}

// internal: local balance test
func (p *Node) balanced() bool {
	d := height(p.left) - height(p.right)
	return -1 <= d && d <= 1
}

// internal: the taller child of p
// a tie goes to the left child when breakLeft is set, otherwise to
// the right child
func (p *Node) tallestChild(breakLeft bool) *Node {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh || (lh == rh && breakLeft) {
		return p.left
	}
	return p.right
}

// internal: restore balance at z
//
// precondition: z is the only unbalanced node in its subtree and its
// children's heights differ by exactly 2
//
// returns the node rooting the restructured subtree
func (tree *Tree) rebalance(z *Node) *Node {
	y := z.tallestChild(true)
	// a right-hand y breaks its own tie towards the right so the
	// restructuring stays minimal
	x := y.tallestChild(y != z.right)

	if (y == z.left && x == y.left) || (y == z.right && x == y.right) {
		// x, y, z collinear
		tree.singleRotation(y, z)
		return y
	}
	tree.doubleRotation(x, y, z)
	return x
}

// internal: promote y above its parent z
//
// y takes z's place under z's former parent, or becomes the root; z
// adopts y's inner subtree and descends below y; the child slots,
// the parent pointers, heights and statistics of both nodes are all
// consistent again on return
func (tree *Tree) singleRotation(y *Node, z *Node) {
	if nil == z.up {
		y.up = nil
		tree.root = y
	} else {
		makeChild(z.up, y, z.up.left == z)
	}

	rotateLeft := y == z.right
	var t *Node
	if rotateLeft {
		t = y.left
	} else {
		t = y.right
	}
	makeChild(z, t, !rotateLeft) // y's inner subtree moves to z
	makeChild(y, z, rotateLeft)  // z descends below y

	// heights child before parent
	z.setHeight()
	y.setHeight()

	// statistics: z first, as the rotation takes it off the upward
	// path of the edit point, then y and its ancestors
	z.updateStats()
	updateTree(y)
}

// internal: promote x above y and then above z
func (tree *Tree) doubleRotation(x *Node, y *Node, z *Node) {
	tree.singleRotation(x, y)
	tree.singleRotation(x, z)
}

// internal: climb from w towards the root restoring the balance
// invariant after a structural change
//
// the climb stops as soon as a node's height is unchanged by its
// fix: a height-neutral fix cannot alter any ancestor's balance
func (tree *Tree) rebalanceAncestors(w *Node) {
	for nil != w {
		x := w.up
		oldHeight := w.height
		if w.balanced() {
			w.setHeight()
		} else {
			w = tree.rebalance(w)
		}
		if oldHeight == w.height {
			return
		}
		w = x
	}
}
