// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - locate the node holding a specific key
//
// returns nil if the key is not present; a missing key is a normal
// outcome, not an error
func (tree *Tree) Find(key int64) *Node {
	p := tree.findLast(key)
	if nil != p && key == p.key {
		return p
	}
	return nil
}

// internal: walk from the root towards a key
//
// returns the node holding the key or, when absent, the last node
// visited so that an insert can attach its new leaf directly
func (tree *Tree) findLast(key int64) *Node {
	p := tree.root
	var last *Node
	for nil != p && key != p.key {
		last = p
		if key < p.key {
			p = p.left
		} else {
			p = p.right
		}
	}
	if nil != p {
		return p
	}
	return last
}
