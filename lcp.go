// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

// buildLCP computes the LCP array of text given its suffix array sa and
// inverse suffix array inv, using Kasai's algorithm: the previous LCP
// length minus one seeds the naive comparison for the next suffix,
// giving O(len(text)) total work. LCP[0] is 0 by definition.
func buildLCP(text []byte, sa, inv []int32) []int32 {
	n := len(text)
	lcp := make([]int32, n)
	var h int32
	for i := 0; i < n; i++ {
		if inv[i] == 0 {
			h = 0
			continue
		}
		j := int(sa[inv[i]-1])
		for i+int(h) < n && j+int(h) < n && text[i+int(h)] == text[j+int(h)] {
			h++
		}
		lcp[inv[i]] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
