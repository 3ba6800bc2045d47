// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
)

// PlottingColourspace is the colourspace the visual colours are displayed in.
var PlottingColourspace = SRGB

// XYZToPlotting converts XYZ values relative to the given illuminant to
// encoded, unclipped, plotting colourspace values.
func XYZToPlotting(xyz Vec3, illuminant XY) Vec3 {
	rgb, err := PlottingColourspace.XYZToRGBAdapted(xyz, illuminant, CAT02)
	if err != nil {
		slog.Error("colour: plotting colourspace conversion", "err", err)
		rgb = PlottingColourspace.XYZToRGB(xyz)
	}
	c := colorful.LinearRgb(rgb[0], rgb[1], rgb[2])
	return Vec3{c.R, c.G, c.B}
}

// XYZToPlottingLinear converts XYZ values relative to the plotting
// colourspace whitepoint to linear plotting colourspace values.
func XYZToPlottingLinear(xyz Vec3) Vec3 {
	return PlottingColourspace.XYZToRGB(xyz)
}

// NormaliseMaximum divides v by its largest component and clips the
// result to [0, 1]. Black is returned unchanged.
func NormaliseMaximum(v Vec3) Vec3 {
	m := v.Max()
	if m > 0 {
		v = v.Scale(1 / m)
	}
	return v.Clip()
}

// Clip returns v with every component clipped to [0, 1].
func (v Vec3) Clip() Vec3 {
	for i := range v {
		v[i] = min(max(v[i], 0), 1)
	}
	return v
}
