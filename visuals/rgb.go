// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"fmt"
	"math"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// RGBColourspace2D is the primaries triangle and the whitepoint of an
// RGB colourspace in a chromaticity diagram.
type RGBColourspace2D struct {
	Base
	ColourspaceProperty
	MethodProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty
}

// NewRGBColourspace2D returns a new [RGBColourspace2D] of sRGB in the
// CIE 1931 diagram.
func NewRGBColourspace2D(config ...func(v *RGBColourspace2D)) (*RGBColourspace2D, error) {
	v := &RGBColourspace2D{}
	v.init("RGBColourspace2D", v.Update)
	v.Colourspace = colour.SRGB
	v.Method = colour.CIE1931
	v.Opacity = 1
	v.Thickness = 1
	return build(v, config)
}

func (v *RGBColourspace2D) Update() error {
	if err := firstError(v.validateColourspace(), v.validateMethod(), v.validateColour(),
		v.validateOpacity(), v.validateThickness()); err != nil {
		return err
	}
	v.clear()
	cs := v.Colourspace
	illuminant := plottingWhitepoint()

	var ij []colour.XY
	var rgb []colour.Vec3
	for _, p := range cs.Primaries {
		xyz := colour.XYToXYZ(p)
		ij = append(ij, finiteXY(colour.XYZToIJ(v.Method, xyz, illuminant)))
		rgb = append(rgb, colour.NormaliseMaximum(colour.XYZToPlottingLinear(xyz)))
	}
	v.add(lines(geom.AsPositionsXY(geom.ClosedSegments(ij), 0),
		v.colours(geom.ClosedSegments(rgb), v.Opacity), v.Thickness))

	wxyz := colour.XYToXYZ(cs.Whitepoint)
	wp := []colour.XY{finiteXY(colour.XYZToIJ(v.Method, wxyz, illuminant))}
	wrgb := []colour.Vec3{colour.NormaliseMaximum(colour.XYZToPlottingLinear(wxyz))}
	v.add(points(geom.AsPositionsXY(wp, 0), v.colours(wrgb, v.Opacity), v.Thickness*3))
	return nil
}

func finiteXY(p colour.XY) colour.XY {
	for i := range p {
		if math.IsNaN(p[i]) || math.IsInf(p[i], 0) {
			p[i] = 0
		}
	}
	return p
}

// RGBColourspace3D is the gamut solid of an RGB colourspace in a
// colourspace model: the RGB unit cube with every vertex converted.
type RGBColourspace3D struct {
	Base
	ColourspaceProperty
	ModelProperty
	ColourProperty
	OpacityProperty
	MaterialProperty
	WireframeProperty
	SegmentsProperty
}

// NewRGBColourspace3D returns a new [RGBColourspace3D] of sRGB in CIE xyY.
func NewRGBColourspace3D(config ...func(v *RGBColourspace3D)) (*RGBColourspace3D, error) {
	v := &RGBColourspace3D{}
	v.init("RGBColourspace3D", v.Update)
	v.Colourspace = colour.SRGB
	v.Model = colour.ModelXYY
	v.Opacity = 1
	v.Material = geom.MaterialBasic
	v.Segments = 16
	return build(v, config)
}

func (v *RGBColourspace3D) Update() error {
	if err := firstError(v.validateColourspace(), v.validateModel(), v.validateColour(),
		v.validateOpacity(), v.validateMaterial(), v.validateSegments()); err != nil {
		return err
	}
	v.clear()
	ms, err := geom.Cube(v.Segments, v.Segments, v.Segments)
	if err != nil {
		return err
	}
	rgb := make([]colour.Vec3, ms.NumVertex())
	for i := range rgb {
		for k := range 3 {
			rgb[i][k] = float64(ms.Positions[3*i+k]) + 0.5
		}
		rgb[i] = nonZero(rgb[i])
	}
	ms.Positions = geom.AsArrayF32Vec3(rgbPositionsIn(v.Model, rgb, v.Colourspace))
	// the cube normals do not survive the model conversion
	ms.Normals = nil
	ms.Colors = v.colours(rgb, v.Opacity)
	ms.Material = v.Material
	ms.Wireframe = v.Wireframe
	v.add(ms)
	return nil
}

// RGBScatter3D is a point cloud of RGB values of a colourspace in a
// colourspace model.
type RGBScatter3D struct {
	Base
	ColourspaceProperty
	ModelProperty
	ColourProperty
	OpacityProperty
	SizeProperty

	// RGB are the linear RGB values to scatter.
	RGB []colour.Vec3
}

// NewRGBScatter3D returns a new [RGBScatter3D] of sRGB values in CIE xyY.
func NewRGBScatter3D(rgb []colour.Vec3, config ...func(v *RGBScatter3D)) (*RGBScatter3D, error) {
	v := &RGBScatter3D{RGB: rgb}
	v.init("RGBScatter3D", v.Update)
	v.Colourspace = colour.SRGB
	v.Model = colour.ModelXYY
	v.Opacity = 1
	v.Size = 2
	return build(v, config)
}

func (v *RGBScatter3D) Update() error {
	if err := firstError(v.validateColourspace(), v.validateModel(), v.validateColour(),
		v.validateOpacity(), v.validateSize()); err != nil {
		return err
	}
	if len(v.RGB) == 0 {
		return fmt.Errorf("rgb scatter: no RGB values")
	}
	v.clear()
	rgb := make([]colour.Vec3, len(v.RGB))
	for i, c := range v.RGB {
		rgb[i] = nonZero(c)
	}
	positions := rgbPositionsIn(v.Model, rgb, v.Colourspace)
	v.add(points(geom.AsArrayF32Vec3(positions), v.colours(clipped(rgb), v.Opacity), v.Size))
	return nil
}
