// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

// kangaroo computes the longest-common-extension-with-mismatches from
// text positions i and j (i < j), returning an ordered list of 1-based
// mismatch offsets. The first element is always the sentinel 0,
// representing "mismatch before the arm starts". The walk stops once
// mismatches+1 degenerate disagreements have been recorded at or beyond
// initialGap; disagreements before initialGap are recorded but do not
// consume the budget.
//
// SA-derived LCP respects raw byte equality; IUPAC's degenerate match is
// a coarser relation, so every exact-LCE extension (an RMQ jump) is
// soundly a match, and any extension beyond that requires one explicit
// per-character probe of the match matrix. This is the kangaroo pattern:
// jump, then probe, never re-walk matched bytes.
func (e *engine) kangaroo(i, j, initialGap, mismatches int) []int32 {
	sn := len(e.text)
	half := sn / 2

	locs := []int32{0}
	budget := mismatches
	var realLCE int

	for {
		realLCE += int(e.lce(i+realLCE, j+realLCE))
		if j+realLCE == sn || i+realLCE >= half {
			break
		}
		offset := realLCE + 1
		if !e.mm.Match(e.text[i+realLCE], e.text[j+realLCE]) {
			locs = append(locs, int32(offset))
			if offset >= initialGap {
				budget--
			}
		}
		realLCE++
		if budget < 0 || j+realLCE == sn {
			break
		}
	}
	return locs
}

// lce returns the longest common extension of the suffixes starting at
// i and j of the engine's text, via a single RMQ over the LCP array.
// The two positions are mapped to suffix-array rank order first since
// the RMQ is only valid between the ranks of two suffixes, not their
// raw text positions.
func (e *engine) lce(i, j int) int32 {
	if i == j {
		return int32(len(e.text) - i)
	}
	li, lj := e.inv[i], e.inv[j]
	lo, hi := li, lj
	if lo > hi {
		lo, hi = hi, lo
	}
	idx := e.rmq.query(lo+1, hi)
	return e.lcp[idx]
}
