// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// Default wavelength labels of the spectral locus per method.
var (
	LabelsCIE1931 = []float64{390, 460, 470, 480, 490, 500, 510, 520, 540, 560, 580, 600, 620, 700}
	LabelsUCS     = []float64{
		420, 440, 450, 460, 470, 480, 490, 500, 510, 520, 530, 540, 550, 560,
		570, 580, 590, 600, 610, 620, 630, 645, 680,
	}
)

// DefaultLabels returns the default wavelength labels of a method.
func DefaultLabels(m colour.Methods) []float64 {
	if m == colour.CIE1931 {
		return LabelsCIE1931
	}
	return LabelsUCS
}

// tickLength is the length of the wavelength ticks in diagram units.
const tickLength = 1.0 / 30

// SpectralLocus2D is the spectral locus of a chromaticity diagram with
// wavelength ticks and labels.
type SpectralLocus2D struct {
	Base
	CMFSProperty
	MethodProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty

	// Labels are the labelled wavelengths. Nil uses [DefaultLabels],
	// empty draws no labels.
	Labels []float64
}

// NewSpectralLocus2D returns a new [SpectralLocus2D] of the CIE 1931
// 2 degree observer in the CIE 1931 diagram.
func NewSpectralLocus2D(config ...func(v *SpectralLocus2D)) (*SpectralLocus2D, error) {
	v := &SpectralLocus2D{}
	v.init("SpectralLocus2D", v.Update)
	v.CMFS = defaultCMFS()
	v.Method = colour.CIE1931
	v.Opacity = 1
	v.Thickness = 1
	return build(v, config)
}

func (v *SpectralLocus2D) validate() error {
	return firstError(v.validateCMFS(), v.validateMethod(), v.validateColour(),
		v.validateOpacity(), v.validateThickness())
}

func (v *SpectralLocus2D) Update() error {
	if err := v.validate(); err != nil {
		return err
	}
	v.clear()
	illuminant := plottingWhitepoint()
	ij := locusIJ(v.CMFS, v.Method, illuminant)
	rgb := plottingColours(v.Method, ij, illuminant)

	v.add(lines(geom.AsPositionsXY(geom.Segments(ij), 0),
		v.colours(geom.Segments(rgb), v.Opacity), v.Thickness))

	labels := v.Labels
	if labels == nil {
		labels = DefaultLabels(v.Method)
	}
	ee := colour.XYToIJ(v.Method, colour.XY{1.0 / 3, 1.0 / 3})
	var ticks, starts []colour.XY
	var tickRGB, startRGB []colour.Vec3
	for _, w := range labels {
		i := slices.Index(v.CMFS.Wavelengths, w)
		if i < 0 {
			continue
		}
		n := locusNormal(ij, i, ee)
		p := ij[i]
		ticks = append(ticks, p, colour.XY{p[0] + n[0], p[1] + n[1]})
		tickRGB = append(tickRGB, rgb[i], rgb[i])
		starts = append(starts, p)
		startRGB = append(startRGB, rgb[i])

		anchor := geom.AnchorCenterLeft
		if n[0] < 0 {
			anchor = geom.AnchorCenterRight
		}
		at := colour.Vec3{p[0] + 1.5*n[0], p[1] + 1.5*n[1], 0}
		v.add(label(strconv.FormatFloat(w, 'f', -1, 64), at, ColourLight, anchor, FontSizeMedium))
	}
	if len(ticks) == 0 {
		return nil
	}
	v.add(lines(geom.AsPositionsXY(ticks, 0), v.colours(tickRGB, v.Opacity), v.Thickness))
	v.add(points(geom.AsPositionsXY(starts, 0), v.colours(startRGB, v.Opacity), v.Thickness*3))
	return nil
}

// locusIJ returns the spectral locus in the given diagram.
func locusIJ(cmfs *colour.MultiSpectralDistributions, m colour.Methods, illuminant colour.XY) []colour.XY {
	ij := make([]colour.XY, len(cmfs.Values))
	for i, v := range cmfs.Values {
		ij[i] = colour.XYZToIJ(m, v, illuminant)
	}
	return ij
}

// locusNormal returns the tick vector at locus point i, normal to the
// locus and pointing away from the equal energy point ee.
func locusNormal(ij []colour.XY, i int, ee colour.XY) colour.XY {
	l, r := max(i-1, 0), min(i+1, len(ij)-1)
	dx, dy := ij[r][0]-ij[l][0], ij[r][1]-ij[l][1]
	n := colour.XY{-dy, dx}
	if (ij[i][0]-ee[0])*n[0]+(ij[i][1]-ee[1])*n[1] < 0 {
		n = colour.XY{dy, -dx}
	}
	d := math.Hypot(n[0], n[1])
	if d == 0 {
		return colour.XY{}
	}
	return colour.XY{n[0] / d * tickLength, n[1] / d * tickLength}
}

// SpectralLocus3D is the spectral locus in a colourspace model.
type SpectralLocus3D struct {
	Base
	CMFSProperty
	ModelProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty
}

// NewSpectralLocus3D returns a new [SpectralLocus3D] of the CIE 1931
// 2 degree observer in CIE xyY.
func NewSpectralLocus3D(config ...func(v *SpectralLocus3D)) (*SpectralLocus3D, error) {
	v := &SpectralLocus3D{}
	v.init("SpectralLocus3D", v.Update)
	v.CMFS = defaultCMFS()
	v.Model = colour.ModelXYY
	v.Opacity = 1
	v.Thickness = 1
	return build(v, config)
}

func (v *SpectralLocus3D) Update() error {
	if err := firstError(v.validateCMFS(), v.validateModel(), v.validateColour(),
		v.validateOpacity(), v.validateThickness()); err != nil {
		return err
	}
	v.clear()
	cs := colour.PlottingColourspace
	positions := positionsIn(v.Model, v.CMFS.Values, cs.Whitepoint)
	rgb := make([]colour.Vec3, len(v.CMFS.Values))
	for i, xyz := range v.CMFS.Values {
		rgb[i] = cs.XYZToRGB(xyz).Clip()
	}
	v.add(lines(geom.AsArrayF32Vec3(geom.Segments(positions)),
		v.colours(geom.Segments(rgb), v.Opacity), v.Thickness))
	return nil
}

// ChromaticityDiagram is the filled area of a chromaticity diagram,
// triangulated from the spectral locus, the whitepoint, the line of
// purples and a regular grid of interior points.
type ChromaticityDiagram struct {
	Base
	CMFSProperty
	MethodProperty
	ColourProperty
	OpacityProperty
	MaterialProperty
	WireframeProperty
	SamplesProperty
}

// NewChromaticityDiagram returns a new [ChromaticityDiagram] of the
// CIE 1931 2 degree observer in the CIE 1931 diagram.
func NewChromaticityDiagram(config ...func(v *ChromaticityDiagram)) (*ChromaticityDiagram, error) {
	v := &ChromaticityDiagram{}
	v.init("ChromaticityDiagram", v.Update)
	v.CMFS = defaultCMFS()
	v.Method = colour.CIE1931
	v.Opacity = 1
	v.Material = geom.MaterialBasic
	v.Samples = 64
	return build(v, config)
}

// minLocusSpacing is the distance under which consecutive locus points are
// merged before triangulation; the long wavelength end of the locus
// collapses to a single chromaticity.
const minLocusSpacing = 1e-4

func (v *ChromaticityDiagram) Update() error {
	if err := firstError(v.validateCMFS(), v.validateMethod(), v.validateColour(),
		v.validateOpacity(), v.validateMaterial(), v.validateSamples()); err != nil {
		return err
	}
	v.clear()
	illuminant := plottingWhitepoint()

	var locus []colour.XY
	for _, p := range locusIJ(v.CMFS, v.Method, illuminant) {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) {
			continue
		}
		if n := len(locus); n > 0 && math.Hypot(p[0]-locus[n-1][0], p[1]-locus[n-1][1]) < minLocusSpacing {
			continue
		}
		locus = append(locus, p)
	}
	if len(locus) < 3 {
		return fmt.Errorf("chromaticity diagram: spectral locus has %d distinct points", len(locus))
	}

	ij := slices.Clone(locus)
	ij = append(ij, colour.XYToIJ(v.Method, illuminant))

	first, last := locus[0], locus[len(locus)-1]
	np := int(math.Hypot(last[0]-first[0], last[1]-first[1]) * float64(v.Samples))
	is, js := geom.Linspace(first[0], last[0], np), geom.Linspace(first[1], last[1], np)
	for k := range is {
		ij = append(ij, colour.XY{is[k], js[k]})
	}

	grid := geom.Linspace(0, 1, v.Samples)
	for _, j := range grid {
		for _, i := range grid {
			if p := (colour.XY{i, j}); geom.Inside(locus, p) {
				ij = append(ij, p)
			}
		}
	}

	tris, err := geom.Triangulate(ij)
	if err != nil {
		return fmt.Errorf("chromaticity diagram: %w", err)
	}
	indices, err := geom.AsArrayU32(tris)
	if err != nil {
		return err
	}
	v.add(&geom.Mesh{
		Positions: geom.AsPositionsXY(ij, 0),
		Colors:    v.colours(plottingColours(v.Method, ij, illuminant), v.Opacity),
		Indices:   indices,
		Wireframe: v.Wireframe,
		Material:  v.Material,
	})
	return nil
}

// ChromaticityDiagramGroup is a [SpectralLocus2D] over a
// [ChromaticityDiagram] sharing one method.
type ChromaticityDiagramGroup struct {
	Base
	MethodProperty

	SpectralLocus *SpectralLocus2D
	Diagram       *ChromaticityDiagram
}

// NewChromaticityDiagramCIE1931 returns the CIE 1931 chromaticity diagram.
// The optional closures configure the spectral locus and the diagram.
func NewChromaticityDiagramCIE1931(locus func(*SpectralLocus2D), diagram func(*ChromaticityDiagram)) (*ChromaticityDiagramGroup, error) {
	return newChromaticityDiagramGroup("ChromaticityDiagramCIE1931", colour.CIE1931, locus, diagram)
}

// NewChromaticityDiagramCIE1960UCS returns the CIE 1960 UCS chromaticity diagram.
func NewChromaticityDiagramCIE1960UCS(locus func(*SpectralLocus2D), diagram func(*ChromaticityDiagram)) (*ChromaticityDiagramGroup, error) {
	return newChromaticityDiagramGroup("ChromaticityDiagramCIE1960UCS", colour.CIE1960UCS, locus, diagram)
}

// NewChromaticityDiagramCIE1976UCS returns the CIE 1976 UCS chromaticity diagram.
func NewChromaticityDiagramCIE1976UCS(locus func(*SpectralLocus2D), diagram func(*ChromaticityDiagram)) (*ChromaticityDiagramGroup, error) {
	return newChromaticityDiagramGroup("ChromaticityDiagramCIE1976UCS", colour.CIE1976UCS, locus, diagram)
}

func newChromaticityDiagramGroup(name string, m colour.Methods, locus func(*SpectralLocus2D), diagram func(*ChromaticityDiagram)) (*ChromaticityDiagramGroup, error) {
	v := &ChromaticityDiagramGroup{}
	v.init(name, v.Update)
	v.Method = m
	var err error
	v.SpectralLocus, err = NewSpectralLocus2D(func(sl *SpectralLocus2D) {
		sl.Method = m
		if locus != nil {
			locus(sl)
		}
	})
	if err != nil {
		return v, err
	}
	v.Diagram, err = NewChromaticityDiagram(func(cd *ChromaticityDiagram) {
		cd.Method = m
		if diagram != nil {
			diagram(cd)
		}
	})
	if err != nil {
		return v, err
	}
	return build(v, nil)
}

func (v *ChromaticityDiagramGroup) Update() error {
	if err := v.validateMethod(); err != nil {
		return err
	}
	v.clear()
	if v.SpectralLocus == nil || v.Diagram == nil {
		return fmt.Errorf("%s: missing spectral locus or diagram", v.Name())
	}
	if err := v.SpectralLocus.BlockUpdate(func() { v.SpectralLocus.Method = v.Method }); err != nil {
		return err
	}
	if err := v.Diagram.BlockUpdate(func() { v.Diagram.Method = v.Method }); err != nil {
		return err
	}
	v.addChild(v.SpectralLocus, v.Diagram)
	return nil
}
