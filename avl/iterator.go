// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.left {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if nil == tree {
		return nil
	}
	for nil != tree.right {
		tree = tree.right
	}
	return tree
}

// Next - the in-order successor of a node: the node with the next
// higher key, or nil if this key is the highest
//
// with a right subtree the successor is its minimum; otherwise climb
// the parent links until a node is reached through a left child edge,
// that ancestor is the first with a larger key
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.first()
	}
	z := p
	x := p.up
	for nil != x && z == x.right {
		z = x
		x = x.up
	}
	return x
}

// Prev - the in-order predecessor of a node: the node with the next
// lower key, or nil if this key is the lowest
func (p *Node) Prev() *Node {
	if nil != p.left {
		return p.left.last()
	}
	z := p
	x := p.up
	for nil != x && z == x.left {
		z = x
		x = x.up
	}
	return x
}
