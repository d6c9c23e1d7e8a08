// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

// SearchParams bundles the four search parameters that bound an
// inverted-repeat search, plus an optional worker count for the
// data-parallel enumerator variant.
type SearchParams struct {
	MinLen     int
	MaxLen     int
	MaxGap     int
	Mismatches int

	// Workers, when greater than 1, selects the parallel IR enumerator:
	// center indices are sharded across a pool of goroutines and the
	// partial results concatenated before the final sort. A value of 0
	// or 1 runs the serial enumerator.
	Workers int
}

// NewSearchParams validates and constructs a SearchParams. It fails with
// InvalidParameter if min_len < 2, min_len > max_len, or
// mismatches >= min_len.
func NewSearchParams(minLen, maxLen, maxGap, mismatches int) (SearchParams, error) {
	p := SearchParams{MinLen: minLen, MaxLen: maxLen, MaxGap: maxGap, Mismatches: mismatches, Workers: 1}
	if minLen < 2 {
		return SearchParams{}, errf(InvalidParameter, "min_len must be >= 2, got %d", minLen)
	}
	if minLen > maxLen {
		return SearchParams{}, errf(InvalidParameter, "min_len (%d) must be <= max_len (%d)", minLen, maxLen)
	}
	if mismatches >= minLen {
		return SearchParams{}, errf(InvalidParameter, "mismatches (%d) must be < min_len (%d)", mismatches, minLen)
	}
	return p, nil
}

// checkBounds fails with SequenceTooShort if min_len or mismatches is
// not strictly smaller than n, the sequence length. No check is imposed
// on max_gap against n: values above n behave identically to n.
func (p SearchParams) checkBounds(n int) error {
	if p.MinLen >= n {
		return errf(SequenceTooShort, "min_len (%d) must be < sequence length (%d)", p.MinLen, n)
	}
	if p.Mismatches >= n {
		return errf(SequenceTooShort, "mismatches (%d) must be < sequence length (%d)", p.Mismatches, n)
	}
	return nil
}
