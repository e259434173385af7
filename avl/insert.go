// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Put - insert a new entry or update the value of an existing one
//
// returns the node now holding the entry
func (tree *Tree) Put(key int64, value int64) *Node {
	w := tree.putNode(key, value)
	updateTree(w) // statistics from the affected node up to the root
	return w
}

// internal: the structural edit followed by the rebalancing walk
//
// an existing key only has its value overwritten: no structural
// change, no size change; otherwise a new leaf is wired below the
// last node visited by the search, or becomes the root
func (tree *Tree) putNode(key int64, value int64) *Node {
	w := tree.findLast(key)
	if nil != w && key == w.key {
		w.value = value
		return w
	}

	x := newNode(key, value)
	if nil == w {
		tree.root = x
	} else {
		makeChild(w, x, key < w.key)
	}
	tree.count += 1

	tree.rebalanceAncestors(w) // from the new leaf's structural parent
	return x
}
