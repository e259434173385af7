// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// a node in the tree
//
// left and right are owning references, up is plain metadata for the
// upward walks and never implies ownership
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	up     *Node // points to parent node
	key    int64 // key part for ordering
	value  int64 // value part for data storage
	height int   // 1 + height of tallest sub-tree, a leaf is 1
	stats  Stats // statistics over this node and all descendants
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key int64, value int64) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			key:    key,
			value:  value,
			height: 1,
			stats:  leafStats(value),
		}
	}
	p := pool
	pool = p.up
	p.key = key
	p.value = value
	p.height = 1
	p.stats = leafStats(value)
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.key = 0
	node.value = 0
	node.height = 0
	node.stats = Stats{}
	freeNodes += 1

	pool = node
	m.Unlock()
}

// link c as the left or right child of p keeping the parent pointer
// consistent; either node may be nil
func makeChild(p *Node, c *Node, isLeft bool) {
	if nil != p {
		if isLeft {
			p.left = c
		} else {
			p.right = c
		}
	}
	if nil != c {
		c.up = p
	}
}
