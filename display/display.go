// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package display - textual renderings of a statistics tree
//
// Formatting is kept apart from the data structure itself: every
// function takes nodes through the read-only accessors and writes to
// an io.Writer supplied by the caller.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/statmap/avl"
)

// number of extra columns per level in the tree layouts
const addSpace = 8

// Entry - a single map entry as "key:value"
func Entry(p *avl.Node) string {
	return fmt.Sprintf("%d:%d", p.Key(), p.Value())
}

// EntryStats - a single map entry as "key:value(height){count,sum,min,max}"
func EntryStats(p *avl.Node) string {
	s := p.Stats()
	return fmt.Sprintf("%d:%d(%d){%d,%d,%d,%d}",
		p.Key(), p.Value(), p.Height(), s.Count, s.Sum, s.Min, s.Max)
}

// Parenthetic - a parenthetic string of the subtree rooted at p
//
// every node renders as [entry](left subtree),(right subtree); an
// absent subtree leaves its parentheses empty
func Parenthetic(w io.Writer, p *avl.Node, withStats bool) {
	if nil == p {
		return
	}
	if withStats {
		fmt.Fprintf(w, "[%s]", EntryStats(p))
	} else {
		fmt.Fprintf(w, "[%s]", Entry(p))
	}
	fmt.Fprint(w, "(")
	Parenthetic(w, p.Left(), withStats)
	fmt.Fprint(w, "),(")
	Parenthetic(w, p.Right(), withStats)
	fmt.Fprint(w, ")")
}

// TreeLayout - an indented tree layout of the subtree rooted at p
// using a reverse in-order traversal, higher keys towards the top
func TreeLayout(w io.Writer, p *avl.Node, space int, withStats bool) {
	if nil == p {
		return
	}
	space += addSpace

	TreeLayout(w, p.Right(), space, withStats)

	fmt.Fprintln(w)
	fmt.Fprint(w, strings.Repeat(" ", space-addSpace))
	if withStats {
		fmt.Fprint(w, EntryStats(p))
	} else {
		fmt.Fprint(w, Entry(p))
	}
	fmt.Fprintln(w)

	TreeLayout(w, p.Left(), space, withStats)
}
