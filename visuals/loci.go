// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"fmt"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// PlanckianLocus is the locus of Planckian radiators with labelled
// iso-temperature lines.
type PlanckianLocus struct {
	Base
	CMFSProperty
	MethodProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty
	SamplesProperty

	// Labels are the labelled temperatures, in mireds when Mireds is on.
	// Nil uses [colour.PlanckianLabels] or [colour.PlanckianLabelsMireds],
	// empty draws no iso-temperature lines.
	Labels []float64

	// Mireds labels the iso-temperature lines in mireds instead of kelvin.
	Mireds bool
}

// NewPlanckianLocus returns a new [PlanckianLocus] in the CIE 1931 diagram.
func NewPlanckianLocus(config ...func(v *PlanckianLocus)) (*PlanckianLocus, error) {
	v := &PlanckianLocus{}
	v.init("PlanckianLocus", v.Update)
	v.CMFS = defaultCMFS()
	v.Method = colour.CIE1931
	v.Opacity = 1
	v.Thickness = 1
	v.Samples = 100
	return build(v, config)
}

func (v *PlanckianLocus) Update() error {
	if err := firstError(v.validateCMFS(), v.validateMethod(), v.validateColour(),
		v.validateOpacity(), v.validateThickness(), v.validateSamples()); err != nil {
		return err
	}
	v.clear()
	illuminant := plottingWhitepoint()

	xy, _, err := colour.PlanckianLocus(v.CMFS, v.Samples)
	if err != nil {
		return err
	}
	ij := xyToIJ(v.Method, xy)
	rgb := plottingColours(v.Method, ij, illuminant)
	v.add(lines(geom.AsPositionsXY(geom.Segments(ij), 0),
		v.colours(geom.Segments(rgb), v.Opacity), v.Thickness))

	labels := v.Labels
	if labels == nil {
		labels = colour.PlanckianLabels
		if v.Mireds {
			labels = colour.PlanckianLabelsMireds
		}
	}
	unit := "K"
	if v.Mireds {
		unit = "M"
	}
	for _, l := range labels {
		cct := l
		if v.Mireds {
			cct = colour.MiredToCCT(l)
		}
		line, err := colour.IsoTemperatureLine(cct, v.CMFS, colour.IsoTemperatureDuv, colour.IsoTemperatureSamples)
		if err != nil {
			return fmt.Errorf("iso-temperature line %g%s: %w", l, unit, err)
		}
		lij := xyToIJ(v.Method, line)
		lrgb := plottingColours(v.Method, lij, illuminant)
		v.add(lines(geom.AsPositionsXY(geom.Segments(lij), 0),
			v.colours(geom.Segments(lrgb), v.Opacity), v.Thickness))
		end := lij[len(lij)-1]
		v.add(label(fmt.Sprintf("%d%s", int(l), unit), colour.Vec3{end[0], end[1], 0},
			ColourLight, geom.AnchorBottomLeft, FontSizeMedium))
	}
	return nil
}

// DaylightLocus is the locus of CIE daylight illuminants.
type DaylightLocus struct {
	Base
	MethodProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty
	SamplesProperty

	// Mireds samples the locus uniformly in mireds instead of kelvin.
	Mireds bool
}

// NewDaylightLocus returns a new [DaylightLocus] in the CIE 1931 diagram.
func NewDaylightLocus(config ...func(v *DaylightLocus)) (*DaylightLocus, error) {
	v := &DaylightLocus{}
	v.init("DaylightLocus", v.Update)
	v.Method = colour.CIE1931
	v.Opacity = 1
	v.Thickness = 1
	v.Samples = 100
	return build(v, config)
}

func (v *DaylightLocus) Update() error {
	if err := firstError(v.validateMethod(), v.validateColour(), v.validateOpacity(),
		v.validateThickness(), v.validateSamples()); err != nil {
		return err
	}
	v.clear()
	xy, _, err := colour.DaylightLocus(v.Samples, v.Mireds)
	if err != nil {
		return err
	}
	ij := xyToIJ(v.Method, xy)
	rgb := plottingColours(v.Method, ij, plottingWhitepoint())
	v.add(lines(geom.AsPositionsXY(geom.Segments(ij), 0),
		v.colours(geom.Segments(rgb), v.Opacity), v.Thickness))
	return nil
}

func xyToIJ(m colour.Methods, xy []colour.XY) []colour.XY {
	ij := make([]colour.XY, len(xy))
	for i, p := range xy {
		ij[i] = colour.XYToIJ(m, p)
	}
	return ij
}
