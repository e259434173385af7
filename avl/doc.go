// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered map from int64 keys to int64 values held in
// a height-balanced (AVL) binary search tree with parent pointers and
// per-subtree statistics
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The structure is maintained in three layers, each built strictly on
// the one below and kept in its own file:
//
//	search.go insert.go delete.go  - plain binary search tree edits
//	rotate.go                      - heights and rebalancing rotations
//	stats.go                       - subtree count/sum/min/max upkeep
//
// A Put or Erase first performs the structural edit, then walks from
// the edit point towards the root fixing heights and rotating where a
// node is out of balance, then walks up again recomputing statistics.
// Every node's statistics are a pure function of its own value and its
// children's statistics, so the walks never need to descend.
package avl
