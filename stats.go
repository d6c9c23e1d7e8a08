// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary is a descriptive summary of a result set, computed with
// gonum/stat the way the rest of this module's host ecosystem already
// depends on gonum for numeric work.
type Summary struct {
	Count        int
	MeanLength   float64
	MedianLength float64
	StdDevLength float64
	MeanGap      float64
}

// Summarize computes length and gap statistics over irs. It returns the
// zero Summary for an empty result set.
func Summarize(irs []IR) Summary {
	if len(irs) == 0 {
		return Summary{}
	}

	lengths := make([]float64, len(irs))
	gaps := make([]float64, len(irs))
	for i, ir := range irs {
		l := float64((ir.Right - ir.Left + 1 - ir.Gap) / 2)
		lengths[i] = l
		gaps[i] = float64(ir.Gap)
	}

	sorted := append([]float64(nil), lengths...)
	sort.Float64s(sorted)

	return Summary{
		Count:        len(irs),
		MeanLength:   stat.Mean(lengths, nil),
		MedianLength: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDevLength: stat.StdDev(lengths, nil),
		MeanGap:      stat.Mean(gaps, nil),
	}
}
