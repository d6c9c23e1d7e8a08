// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotting renders analysis plots over inverted-repeat result
// sets using gonum/plot, the plotting library already depended on by
// this module's host ecosystem.
package plotting

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram renders a histogram of the values in lengths, using bins
// buckets, to a PNG at path. It supplements the analysis tooling the
// Rust original kept in a separate benchmark harness.
func Histogram(lengths []float64, bins int, title, path string) error {
	values := make(plotter.Values, len(lengths))
	copy(values, lengths)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "IR length"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return err
	}
	p.Add(h)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
