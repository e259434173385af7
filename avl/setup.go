// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// Empty - true if the tree contains no data
func (tree *Tree) Empty() bool {
	return nil == tree.root
}

// Size - number of entries currently in the map
func (tree *Tree) Size() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() int64 {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() int64 {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Height - the stored height of the subtree rooted at this node
func (p *Node) Height() int {
	return p.height
}

// Stats - a copy of the node's current subtree statistics
func (p *Node) Stats() Stats {
	return p.stats
}
