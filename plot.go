// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package invrep

import "github.com/kortschak/invrep/plotting"

// RenderHistogram renders a PNG histogram of irs' lengths to path using
// bins buckets. It is a thin convenience wrapper around the plotting
// subpackage so callers that only need this one plot needn't import it
// directly.
func RenderHistogram(irs []IR, path string, bins int) error {
	lengths := make([]float64, len(irs))
	for i, ir := range irs {
		lengths[i] = float64((ir.Right - ir.Left + 1 - ir.Gap) / 2)
	}
	return plotting.Histogram(lengths, bins, "inverted repeat length distribution", path)
}
