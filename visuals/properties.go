// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// ColourProperty is an optional uniform colour. When nil the colours are
// computed from the visual geometry.
type ColourProperty struct {
	Colour *colour.Vec3
}

func (p *ColourProperty) validateColour() error {
	if p.Colour == nil {
		return nil
	}
	for _, c := range p.Colour {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("colour %v must be finite", *p.Colour)
		}
	}
	return nil
}

// colours returns rgba vertex colours: the uniform colour when set,
// otherwise the computed rgb.
func (p *ColourProperty) colours(computed []colour.Vec3, opacity float64) math32.ArrayF32 {
	if p.Colour != nil {
		return geom.Tile(geom.RGBA(*p.Colour, opacity), len(computed))
	}
	return geom.AppendAlpha(computed, opacity)
}

// OpacityProperty is the opacity in [0, 1].
type OpacityProperty struct {
	Opacity float64
}

func (p *OpacityProperty) validateOpacity() error {
	if !(p.Opacity >= 0 && p.Opacity <= 1) {
		return fmt.Errorf("opacity %g must be in [0, 1]", p.Opacity)
	}
	return nil
}

// ThicknessProperty is the line thickness.
type ThicknessProperty struct {
	Thickness float64
}

func (p *ThicknessProperty) validateThickness() error {
	if !(p.Thickness > 0) {
		return fmt.Errorf("thickness %g must be positive", p.Thickness)
	}
	return nil
}

// SizeProperty is the point size or the overall extent of a visual.
type SizeProperty struct {
	Size float64
}

func (p *SizeProperty) validateSize() error {
	if !(p.Size > 0) {
		return fmt.Errorf("size %g must be positive", p.Size)
	}
	return nil
}

// SamplesProperty is the number of samples used to build the geometry.
type SamplesProperty struct {
	Samples int
}

func (p *SamplesProperty) validateSamples() error {
	if p.Samples < 2 {
		return fmt.Errorf("samples %d must be at least 2", p.Samples)
	}
	return nil
}

// SegmentsProperty is the number of segments per side of a primitive.
type SegmentsProperty struct {
	Segments int
}

func (p *SegmentsProperty) validateSegments() error {
	if p.Segments < 1 {
		return fmt.Errorf("segments %d must be at least 1", p.Segments)
	}
	return nil
}

// WireframeProperty draws meshes as edges only.
type WireframeProperty struct {
	Wireframe bool
}

// MethodProperty is the chromaticity diagram method.
type MethodProperty struct {
	Method colour.Methods
}

func (p *MethodProperty) validateMethod() error {
	if p.Method < 0 || p.Method >= colour.MethodsN {
		return fmt.Errorf("invalid chromaticity diagram method %v", p.Method)
	}
	return nil
}

// ModelProperty is the colourspace model positions are expressed in.
type ModelProperty struct {
	Model colour.Models
}

func (p *ModelProperty) validateModel() error {
	if p.Model < 0 || p.Model >= colour.ModelsN {
		return fmt.Errorf("invalid colourspace model %v", p.Model)
	}
	return nil
}

// ColourspaceProperty is an RGB colourspace.
type ColourspaceProperty struct {
	Colourspace *colour.RGBColourspace
}

func (p *ColourspaceProperty) validateColourspace() error {
	if p.Colourspace == nil {
		return fmt.Errorf("colourspace is nil")
	}
	return nil
}

// CMFSProperty is a standard observer.
type CMFSProperty struct {
	CMFS *colour.MultiSpectralDistributions
}

func (p *CMFSProperty) validateCMFS() error {
	if p.CMFS == nil {
		return fmt.Errorf("cmfs is nil")
	}
	return p.CMFS.Validate()
}

// IlluminantProperty is a spectral illuminant.
type IlluminantProperty struct {
	Illuminant *colour.SpectralDistribution
}

func (p *IlluminantProperty) validateIlluminant() error {
	if p.Illuminant == nil {
		return fmt.Errorf("illuminant is nil")
	}
	return p.Illuminant.Validate()
}

// MaterialProperty is the mesh shading model.
type MaterialProperty struct {
	Material geom.MaterialTypes
}

func (p *MaterialProperty) validateMaterial() error {
	if p.Material < 0 || p.Material >= geom.MaterialTypesN {
		return fmt.Errorf("invalid material %v", p.Material)
	}
	return nil
}

// defaultCMFS is the CIE 1931 2 Degree Standard Observer.
func defaultCMFS() *colour.MultiSpectralDistributions {
	cmfs, _ := colour.CMFS(colour.CIE1931Observer)
	return cmfs
}

// positionsIn returns the model positions of XYZ values with the
// lightness axis on z.
func positionsIn(m colour.Models, xyz []colour.Vec3, illuminant colour.XY) []colour.Vec3 {
	ps := make([]colour.Vec3, len(xyz))
	for i, v := range xyz {
		ps[i] = colour.AxisReorder(m, colour.XYZToModel(v, illuminant, m))
	}
	return ps
}

// rgbPositionsIn returns the model positions of RGB values of a colourspace.
// The RGB model keeps the values as they are.
func rgbPositionsIn(m colour.Models, rgb []colour.Vec3, cs *colour.RGBColourspace) []colour.Vec3 {
	if m == colour.ModelRGB {
		return rgb
	}
	xyz := make([]colour.Vec3, len(rgb))
	for i, v := range rgb {
		xyz[i] = cs.RGBToXYZ(v)
	}
	return positionsIn(m, xyz, cs.Whitepoint)
}

// plottingColours returns the normalised display colours of chromaticities.
func plottingColours(m colour.Methods, ij []colour.XY, illuminant colour.XY) []colour.Vec3 {
	cs := make([]colour.Vec3, len(ij))
	for i, p := range ij {
		cs[i] = colour.NormaliseMaximum(colour.XYZToPlotting(colour.IJToXYZ(m, p), illuminant))
	}
	return cs
}

func clipped(vs []colour.Vec3) []colour.Vec3 {
	cs := make([]colour.Vec3, len(vs))
	for i, v := range vs {
		cs[i] = v.Clip()
	}
	return cs
}

func label(text string, position colour.Vec3, c colour.Vec3, anchor geom.Anchors, size float32) *geom.Label {
	return &geom.Label{
		Text:     text,
		Position: math32.Vec3(float32(position[0]), float32(position[1]), float32(position[2])),
		Color:    geom.RGBA(c, 1),
		Anchor:   anchor,
		Size:     size,
	}
}

func lines(positions math32.ArrayF32, colours math32.ArrayF32, thickness float64) *geom.Lines {
	return &geom.Lines{Positions: positions, Colors: colours, Thickness: float32(thickness)}
}

func points(positions math32.ArrayF32, colours math32.ArrayF32, size float64) *geom.Points {
	return &geom.Points{Positions: positions, Colors: colours, Sizes: geom.Fill(float32(size), len(positions)/3)}
}
