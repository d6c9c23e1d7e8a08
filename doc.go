// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package invrep finds inverted repeats (biological palindromes) in a
// nucleotide sequence that may contain degenerate IUPAC characters.
//
// Given a sequence and a set of search parameters, FindIRs builds a
// concatenated double-text of the sequence and its reverse complement,
// constructs a suffix array, inverse suffix array and LCP array over it,
// preprocesses a constant-time range-minimum-query structure, and runs
// the kangaroo algorithm (longest-common-extension with mismatches) over
// every candidate inverted-repeat center to enumerate IR triples.
package invrep
