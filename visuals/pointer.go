// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"fmt"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// PointerGamutProperty is a Pointer's gamut dataset.
type PointerGamutProperty struct {
	Dataset *colour.PointerGamut
}

func (p *PointerGamutProperty) validateDataset() error {
	if p.Dataset == nil {
		return fmt.Errorf("pointer's gamut dataset is nil")
	}
	return p.Dataset.Validate()
}

// PointerGamut2D is the boundary and the volume samples of Pointer's
// gamut in a chromaticity diagram.
type PointerGamut2D struct {
	Base
	PointerGamutProperty
	MethodProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty
}

// NewPointerGamut2D returns a new [PointerGamut2D] of the dataset in the
// CIE 1931 diagram.
func NewPointerGamut2D(dataset *colour.PointerGamut, config ...func(v *PointerGamut2D)) (*PointerGamut2D, error) {
	v := &PointerGamut2D{}
	v.init("PointerGamut2D", v.Update)
	v.Dataset = dataset
	v.Method = colour.CIE1931
	v.Opacity = 1
	v.Thickness = 1
	return build(v, config)
}

func (v *PointerGamut2D) Update() error {
	if err := firstError(v.validateDataset(), v.validateMethod(), v.validateColour(),
		v.validateOpacity(), v.validateThickness()); err != nil {
		return err
	}
	v.clear()
	pg := v.Dataset

	boundary := pg.Boundary(v.Method)
	rgb := plottingColours(v.Method, boundary, pg.Illuminant)
	v.add(lines(geom.AsPositionsXY(geom.ClosedSegments(boundary), 0),
		v.colours(geom.ClosedSegments(rgb), v.Opacity), v.Thickness))

	xyz := pg.XYZ()
	ij := make([]colour.XY, len(xyz))
	vrgb := make([]colour.Vec3, len(xyz))
	for i, c := range xyz {
		ij[i] = colour.XYZToIJ(v.Method, c, pg.Illuminant)
		vrgb[i] = colour.XYZToPlotting(c, pg.Illuminant).Clip()
	}
	v.add(points(geom.AsPositionsXY(ij, 0), v.colours(vrgb, v.Opacity), v.Thickness*3))
	return nil
}

// PointerGamut3D is Pointer's gamut as one closed ring per lightness
// level in a colourspace model.
type PointerGamut3D struct {
	Base
	PointerGamutProperty
	ModelProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty
}

// NewPointerGamut3D returns a new [PointerGamut3D] of the dataset in CIE xyY.
func NewPointerGamut3D(dataset *colour.PointerGamut, config ...func(v *PointerGamut3D)) (*PointerGamut3D, error) {
	v := &PointerGamut3D{}
	v.init("PointerGamut3D", v.Update)
	v.Dataset = dataset
	v.Model = colour.ModelXYY
	v.Opacity = 0.5
	v.Thickness = 1
	return build(v, config)
}

func (v *PointerGamut3D) Update() error {
	if err := firstError(v.validateDataset(), v.validateModel(), v.validateColour(),
		v.validateOpacity(), v.validateThickness()); err != nil {
		return err
	}
	v.clear()
	pg := v.Dataset
	var positions []colour.Vec3
	var rgb []colour.Vec3
	for _, ring := range pg.Sections() {
		ps := positionsIn(v.Model, ring, pg.Illuminant)
		cs := make([]colour.Vec3, len(ring))
		for i, c := range ring {
			cs[i] = colour.XYZToPlotting(c, pg.Illuminant).Clip()
		}
		positions = append(positions, geom.ClosedSegments(ps)...)
		rgb = append(rgb, geom.ClosedSegments(cs)...)
	}
	v.add(lines(geom.AsArrayF32Vec3(positions), v.colours(rgb, v.Opacity), v.Thickness))
	return nil
}
