// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(withStats bool) int {
	return printTree(tree.root, "", root, withStats)
}

// internal print - returns the maximum depth of the tree
func printTree(tree *Node, prefix string, br branch, withStats bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(tree.right, prefix+t, right, withStats)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := "^nil"
	if nil != tree.up {
		up = fmt.Sprintf("^%d", tree.up.key)
	}
	if withStats {
		fmt.Printf("%d → %d %s (%d) {%d,%d,%d,%d}\n",
			tree.key, tree.value, up, tree.height,
			tree.stats.Count, tree.stats.Sum, tree.stats.Min, tree.stats.Max)
	} else {
		fmt.Printf("%d → %d %s\n", tree.key, tree.value, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(tree.left, prefix+t, left, withStats)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
