// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

// The 18-letter IUPAC nucleotide alphabet, lowercase canonical form, plus
// the two sentinel bytes used to bound the double-text. Letters are
// modelled as small bitmasks over the four concrete bases so that the
// degenerate match relation reduces to a bitwise AND, in the same spirit
// as the small fixed lookup tables used for character classes elsewhere
// in the corpus (coregx-coregex/internal/conv).
const (
	baseA = 1 << iota
	baseC
	baseG
	baseT
	sentinelDollar
	sentinelHash
)

// sentinelLeft and sentinelRight are the two bytes appended to the
// double-text. They are chosen outside the IUPAC alphabet so MatchMatrix
// naturally rejects any cross-sentinel pairing.
const (
	sentinelLeft  = '$'
	sentinelRight = '#'
)

var iupacSets = map[byte]uint8{
	'a': baseA,
	'c': baseC,
	'g': baseG,
	't': baseT,
	'u': baseT,
	'r': baseA | baseG,
	'y': baseC | baseT,
	's': baseG | baseC,
	'w': baseA | baseT,
	'k': baseG | baseT,
	'm': baseA | baseC,
	'b': baseC | baseG | baseT,
	'd': baseA | baseG | baseT,
	'h': baseA | baseC | baseT,
	'v': baseA | baseC | baseG,
	'n': baseA | baseC | baseG | baseT,
	'*': baseA | baseC | baseG | baseT,
	'-': baseA | baseC | baseG | baseT,
	sentinelLeft:  sentinelDollar,
	sentinelRight: sentinelHash,
}

// IsIUPAC reports whether b is one of the 18 canonical lowercase IUPAC
// letters (sentinels excluded).
func IsIUPAC(b byte) bool {
	switch b {
	case sentinelLeft, sentinelRight:
		return false
	default:
		_, ok := iupacSets[b]
		return ok
	}
}

// complementTable is a direct byte->byte map, matching spec.B: purines
// and pyrimidines swap, self-complementary degenerate letters map to
// themselves, and gaps/stars collapse to 'n'.
var complementTable = buildComplementTable()

func buildComplementTable() [128]byte {
	var t [128]byte
	pairs := []struct{ a, b byte }{
		{'a', 't'},
		{'c', 'g'},
		{'r', 'y'},
		{'k', 'm'},
		{'b', 'v'},
		{'d', 'h'},
	}
	for _, p := range pairs {
		t[p.a] = p.b
		t[p.b] = p.a
	}
	for _, self := range []byte{'s', 'w', 'n'} {
		t[self] = self
	}
	t['u'] = 'a'
	t['*'] = 'n'
	t['-'] = 'n'
	return t
}

// Complement returns the reverse-complement partner of b. The result is
// unspecified for bytes outside the sanitized alphabet; callers must
// sanitize first.
func Complement(b byte) byte {
	if int(b) >= len(complementTable) {
		return b
	}
	return complementTable[b]
}

// ReverseComplement returns the reverse complement of seq as a new slice.
func ReverseComplement(seq []byte) []byte {
	out := make([]byte, len(seq))
	n := len(seq)
	for i, b := range seq {
		out[n-1-i] = Complement(b)
	}
	return out
}

// MatchMatrix is the symmetric degenerate-match predicate on the
// 20-symbol alphabet (18 IUPAC letters plus the two text sentinels). Two
// letters match iff the sets of concrete bases they encode intersect;
// sentinels match only themselves.
type MatchMatrix struct {
	sets [128]uint8
	ok   [128]bool
}

// NewMatchMatrix builds the match matrix. Construction is O(1): the
// table is a fixed 20-entry lookup, not actually quadratic in storage,
// since the match test itself is a single bitwise AND rather than a
// stored 20x20 table.
func NewMatchMatrix() *MatchMatrix {
	m := &MatchMatrix{}
	for b, set := range iupacSets {
		m.sets[b] = set
		m.ok[b] = true
	}
	return m
}

// Match reports whether bytes x and y are degenerate-compatible.
func (m *MatchMatrix) Match(x, y byte) bool {
	if int(x) >= len(m.sets) || int(y) >= len(m.sets) {
		return false
	}
	return m.sets[x]&m.sets[y] != 0
}

// MatchComplement reports whether x on the left arm matches y on the
// right arm under the cross-complemented relation used during IR
// detection: match(x, complement(y)).
func (m *MatchMatrix) MatchComplement(x, y byte) bool {
	return m.Match(x, Complement(y))
}
