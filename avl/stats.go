// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Stats - the summary of the subtree rooted at a node
//
// every field is a pure function of the node's own value and its
// children's statistics:
//
//	Count = 1 + Count(left) + Count(right)
//	Sum   = value + Sum(left) + Sum(right)
//	Min   = minimum of value and both children's Min
//	Max   = maximum of value and both children's Max
//
// an absent child contributes nothing
type Stats struct {
	Count int
	Sum   int64
	Min   int64
	Max   int64
}

// internal: the statistics of a node without children
func leafStats(value int64) Stats {
	return Stats{
		Count: 1,
		Sum:   value,
		Min:   value,
		Max:   value,
	}
}

// internal: recompute this node's statistics from its current
// children, whose statistics must already be correct
func (p *Node) updateStats() {
	s := leafStats(p.value)
	if l := p.left; nil != l {
		s.Count += l.stats.Count
		s.Sum += l.stats.Sum
		if l.stats.Min < s.Min {
			s.Min = l.stats.Min
		}
		if l.stats.Max > s.Max {
			s.Max = l.stats.Max
		}
	}
	if r := p.right; nil != r {
		s.Count += r.stats.Count
		s.Sum += r.stats.Sum
		if r.stats.Min < s.Min {
			s.Min = r.stats.Min
		}
		if r.stats.Max > s.Max {
			s.Max = r.stats.Max
		}
	}
	p.stats = s
}

// internal: bottom-up statistics walk from the lowest structurally
// changed node to the root, each node recomputed exactly once
func updateTree(w *Node) {
	for p := w; nil != p; p = p.up {
		p.updateStats()
	}
}
