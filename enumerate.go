// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

// IR is a single inverted-repeat triple: 0-based inclusive indices into
// the original sequence, left <= right, and the number of positions
// strictly between the two arms. The derived arm length is
// (right - left + 1 - gap) / 2.
type IR struct {
	Left, Right, Gap int
}

// mismatchPoint pairs a 1-based offset from kangaroo with its index in
// the mismatch-offset list, used to locate valid IR boundaries.
type mismatchPoint struct {
	offset int32
	idx    int
}

// centersFor returns the inclusive doubled-center range to enumerate:
// spec.md's c ranges over [min_len, s_n - 1 - min_len).
func centersFor(sn, minLen int) (lo, hi int) {
	lo = minLen
	hi = sn - 2 - minLen
	return lo, hi
}

// irsForCenter enumerates every IR centered at the doubled center cc.
// cc/2 is c_real; margin is 0 for integer c_real (odd-length IRs) and
// 0.5 for half-integer c_real (even-length IRs), represented here
// without floating point by tracking cc's parity directly.
func (e *engine) irsForCenter(cc int) []IR {
	n := e.n
	sn := len(e.text)

	var i, j int
	var floorPlusMargin, floorMinusMargin, floor2margin int
	odd := cc%2 != 0 // margin == 0.5
	if !odd {
		half := cc / 2
		i = 1 + half
		j = (2*n + 1) - half
		floorPlusMargin = half
		floorMinusMargin = half
		floor2margin = 0
	} else {
		half := (cc - 1) / 2
		i = 1 + half
		j = (2*n + 1) - half - 1
		floorPlusMargin = half + 1
		floorMinusMargin = half
		floor2margin = 1
	}

	var initialGap int
	if e.params.MaxGap%2 == 1 {
		initialGap = e.params.MaxGap/2 + 1
	} else if odd {
		initialGap = e.params.MaxGap/2 + 1
	} else {
		initialGap = e.params.MaxGap / 2
	}

	if i >= j || j > sn {
		return nil
	}

	locs := e.kangaroo(i, j, initialGap, e.params.Mismatches)

	var starts, ends []mismatchPoint
	for k := 0; k+1 < len(locs); k++ {
		if locs[k+1] != locs[k]+1 {
			starts = append(starts, mismatchPoint{locs[k], k})
			ends = append(ends, mismatchPoint{locs[k+1], k + 1})
		}
	}
	if len(starts) == 0 || len(ends) == 0 {
		return nil
	}

	var irs []IR
	startPtr, endPtr := 0, 0
	mismatches := e.params.Mismatches
	minLen, maxLen := e.params.MinLen, e.params.MaxLen

	diff := func() int {
		return ends[endPtr].idx - starts[startPtr].idx - 1
	}

	for startPtr < len(starts) {
		if endPtr >= len(ends) {
			break
		}
		for diff() > mismatches {
			startPtr++
			if startPtr >= len(starts) {
				return irs
			}
		}
		if int(starts[startPtr].offset) >= initialGap {
			break
		}
		for endPtr < len(ends) && diff() <= mismatches {
			endPtr++
		}

		startOffset := int(starts[startPtr].offset)
		endOffset := int(ends[endPtr-1].offset) - 1
		irLength := endOffset - startOffset

		if irLength >= minLen {
			left := floorPlusMargin - endOffset
			right := floorMinusMargin + endOffset
			gap := 2*startOffset + 1 - floor2margin

			if irLength > maxLen {
				overshoot := irLength - maxLen
				left += overshoot
				right -= overshoot
				truncatedEnd := endOffset - overshoot
				if endPtr >= 2 && int(ends[endPtr-2].offset) == truncatedEnd+1 {
					left++
					right--
				}
			}

			if left >= 0 && right < n && left < right {
				irs = append(irs, IR{Left: left, Right: right, Gap: gap})
			}
		}
		startPtr++
	}
	return irs
}
