// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Erase - remove the entry with a specific key
//
// removing a missing key is a no-op, not an error
func (tree *Tree) Erase(key int64) {
	z := tree.eraseNode(key)
	updateTree(z) // statistics from the lowest changed node up to the root
}

// internal: the structural removal followed by the rebalancing walk
//
// returns the removed node's former structural parent, the last node
// visited when the key is absent, or nil when the tree is empty
func (tree *Tree) eraseNode(key int64) *Node {
	w := tree.findLast(key)
	if nil == w || key != w.key {
		return w
	}

	if nil != w.left && nil != w.right {
		// two children: the entry is overwritten with its in-order
		// successor, the minimum of the right subtree, and the
		// successor node, which has at most one child, is the one
		// physically removed
		s := w.right.first()
		w.key = s.key
		w.value = s.value
		w = s
	}

	z := tree.removeNode(w)
	tree.rebalanceAncestors(z)
	return z
}

// internal: splice out a node with at most one child
//
// the sole child, or absence, takes the node's place under its former
// parent, or becomes the new root
func (tree *Tree) removeNode(w *Node) *Node {
	z := w.up
	x := w.left
	if nil == x {
		x = w.right
	}
	makeChild(z, x, nil == z || z.left == w)
	if nil == z {
		tree.root = x
	}
	tree.count -= 1
	freeNode(w) // return deleted node to pool
	return z
}
