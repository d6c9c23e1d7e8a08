// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import "math/bits"

// rmq is a sparse table over an LCP array giving O(1) range-minimum
// queries after O(n log n) preprocessing. table[k][i] holds the index
// in [i, i+2^k) that minimizes lcp, following the standard doubling
// recurrence table[k][i] = argmin(table[k-1][i], table[k-1][i+2^(k-1)]).
type rmq struct {
	lcp   []int32
	table [][]int32
	logs  []int32
}

// newRMQ preprocesses lcp for range-minimum queries.
func newRMQ(lcp []int32) *rmq {
	n := len(lcp)
	logs := make([]int32, n+1)
	for i := 2; i <= n; i++ {
		logs[i] = logs[i/2] + 1
	}

	maxK := 1
	if n > 1 {
		maxK = bits.Len(uint(n)) // ceil-ish upper bound on log2(n)+1
	}
	table := make([][]int32, maxK)
	table[0] = make([]int32, n)
	for i := range table[0] {
		table[0][i] = int32(i)
	}
	for k := 1; k < maxK; k++ {
		span := 1 << uint(k)
		half := span / 2
		table[k] = make([]int32, n-span+1)
		if n-span+1 <= 0 {
			table[k] = nil
			continue
		}
		prev := table[k-1]
		for i := 0; i+span <= n; i++ {
			l := prev[i]
			r := prev[i+half]
			if lcp[r] < lcp[l] {
				table[k][i] = r
			} else {
				table[k][i] = l
			}
		}
	}
	return &rmq{lcp: lcp, table: table, logs: logs}
}

// query returns the index of the minimum lcp value in the inclusive
// range [l, r]. l must be <= r.
func (m *rmq) query(l, r int32) int32 {
	if l == r {
		return l
	}
	length := r - l + 1
	k := m.logs[length]
	span := int32(1) << uint(k)
	a := m.table[k][l]
	b := m.table[k][r-span+1]
	if m.lcp[b] < m.lcp[a] {
		return b
	}
	return a
}
