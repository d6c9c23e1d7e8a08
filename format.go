// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import (
	"fmt"
	"strings"
)

// OutputFormat names one of the three rendering shapes an IR list can
// be stringified into.
type OutputFormat string

// The three supported output shapes.
const (
	FormatClassic OutputFormat = "classic"
	FormatCSV     OutputFormat = "csv"
	FormatCustom  OutputFormat = "custom"
)

// OutputConfig carries the parameters echoed into a formatter's header
// block and selects which shape StringifyIRs renders.
type OutputConfig struct {
	Format     OutputFormat
	SeqName    string
	MinLen     int
	MaxLen     int
	MaxGap     int
	Mismatches int
}

const classicFieldWidth = 9

// StringifyIRs renders irs found in seq as (header, body) in cfg.Format.
// offset is added to every 1-based index printed, letting a caller
// report positions relative to a larger enclosing sequence.
func StringifyIRs(cfg OutputConfig, irs []IR, seq []byte, offset int) (header, body string, err error) {
	mm := NewMatchMatrix()
	header = fmt.Sprintf(
		"# sequence: %s (length %d)\n# min_len=%d max_len=%d max_gap=%d mismatches=%d\n# inverted repeats found: %d\n",
		cfg.SeqName, len(seq), cfg.MinLen, cfg.MaxLen, cfg.MaxGap, cfg.Mismatches, len(irs),
	)

	switch cfg.Format {
	case FormatClassic:
		body = classicBody(irs, seq, mm, offset)
	case FormatCSV:
		body = csvBody(irs, seq, mm, offset)
	case FormatCustom:
		body = customBody(irs, seq, mm, offset)
	default:
		return "", "", errf(InvalidOutputFormat, "unknown output format %q", cfg.Format)
	}
	return header, body, nil
}

// arms returns the left arm (in sequence order) and the right arm
// reversed for display, plus their shared length L.
func arms(ir IR, seq []byte) (left, rightReversed []byte, l int) {
	l = (ir.Right - ir.Left + 1 - ir.Gap) / 2
	left = seq[ir.Left : ir.Left+l]
	right := seq[ir.Right-l+1 : ir.Right+1]
	rightReversed = make([]byte, l)
	for i, b := range right {
		rightReversed[l-1-i] = b
	}
	return left, rightReversed, l
}

func matchString(left, rightReversed []byte, mm *MatchMatrix) string {
	var sb strings.Builder
	for i := range left {
		if mm.Match(left[i], Complement(rightReversed[i])) {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func classicBody(irs []IR, seq []byte, mm *MatchMatrix, offset int) string {
	var sb strings.Builder
	for _, ir := range irs {
		left, rightRev, l := arms(ir, seq)
		outerLeft := ir.Left + 1 + offset
		innerLeft := ir.Left + l + offset
		outerRight := ir.Right + 1 + offset
		innerRight := ir.Right - l + 2 + offset

		fmt.Fprintf(&sb, "%-*d%s%*d\n", classicFieldWidth, outerLeft, left, classicFieldWidth, innerLeft)
		fmt.Fprintf(&sb, "%*s%s\n", classicFieldWidth, "", matchString(left, rightRev, mm))
		fmt.Fprintf(&sb, "%-*d%s%*d\n\n", classicFieldWidth, outerRight, rightRev, classicFieldWidth, innerRight)
	}
	return sb.String()
}

func csvBody(irs []IR, seq []byte, mm *MatchMatrix, offset int) string {
	var sb strings.Builder
	sb.WriteString("start_n,end_n,nucleotide,start_ir,end_ir,reverse_complement,matching\n")
	for _, ir := range irs {
		left, rightRev, l := arms(ir, seq)
		startN := ir.Left + 1 + offset
		endN := ir.Left + l + offset
		startIR := ir.Right + 1 + offset
		endIR := ir.Right - l + 2 + offset

		var matching strings.Builder
		for i := range left {
			if mm.Match(left[i], Complement(rightRev[i])) {
				matching.WriteByte('1')
			} else {
				matching.WriteByte('0')
			}
		}
		fmt.Fprintf(&sb, "%d,%d,%s,%d,%d,%s,%s\n", startN, endN, left, startIR, endIR, rightRev, matching.String())
	}
	return sb.String()
}

func customBody(irs []IR, seq []byte, mm *MatchMatrix, offset int) string {
	_ = mm
	var sb strings.Builder
	sb.WriteString("ir_start,motif,gap_motif,reverse_complement\n")
	for _, ir := range irs {
		left, rightRev, l := arms(ir, seq)
		gapMotif := seq[ir.Left+l : ir.Right-l+1]
		fmt.Fprintf(&sb, "%d,%s,%s,%s\n", ir.Left+1+offset, left, gapMotif, rightRev)
	}
	return sb.String()
}
