// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import "sort"

// buildSuffixArray sorts all suffixes of text and returns the
// permutation SA of [0, len(text)) such that SA[i] is the starting
// position of the i-th suffix in lexicographic order.
//
// No third-party Go suffix-array construction library (SA-IS,
// DivSufSort or otherwise) was found anywhere in the retrieved example
// corpus, so this is a direct, from-scratch implementation rather than
// a fabricated dependency: classic O(n log n) prefix doubling, ranking
// suffixes by successively longer power-of-two prefixes and re-sorting
// by the resulting rank pairs with the standard library sort.
func buildSuffixArray(text []byte) []int32 {
	n := len(text)
	sa := make([]int32, n)
	rank := make([]int32, n)
	tmp := make([]int32, n)
	for i := 0; i < n; i++ {
		sa[i] = int32(i)
		rank[i] = int32(text[i])
	}

	less := func(k int32) func(a, b int32) bool {
		return func(a, b int32) bool {
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			ra, rb := int32(-1), int32(-1)
			if a+k < int32(n) {
				ra = rank[a+k]
			}
			if b+k < int32(n) {
				rb = rank[b+k]
			}
			return ra < rb
		}
	}

	for k := int32(1); ; k *= 2 {
		cmp := less(k)
		sort.Slice(sa, func(i, j int) bool { return cmp(sa[i], sa[j]) })

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if cmp(sa[i-1], sa[i]) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)

		if int(rank[sa[n-1]]) == n-1 {
			break
		}
		if int(k) >= n {
			break
		}
	}
	return sa
}

// inverseSuffixArray returns inv such that inv[sa[i]] = i.
func inverseSuffixArray(sa []int32) []int32 {
	inv := make([]int32, len(sa))
	for i, p := range sa {
		inv[p] = int32(i)
	}
	return inv
}
