// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds counts the primitives of each type.
func kinds(prims []geom.Primitive) (lines, points, meshes, labels []geom.Primitive) {
	for _, p := range prims {
		switch p.(type) {
		case *geom.Lines:
			lines = append(lines, p)
		case *geom.Points:
			points = append(points, p)
		case *geom.Mesh:
			meshes = append(meshes, p)
		case *geom.Label:
			labels = append(labels, p)
		}
	}
	return
}

func labelTexts(prims []geom.Primitive) []string {
	var texts []string
	for _, p := range prims {
		if lb, ok := p.(*geom.Label); ok {
			texts = append(texts, lb.Text)
		}
	}
	return texts
}

func requireValid(t *testing.T, v Visual) {
	t.Helper()
	prims := Flatten(v)
	require.NotEmpty(t, prims, v.Name())
	require.NoError(t, geom.ValidateAll(prims...), v.Name())
}

func TestAxes(t *testing.T) {
	v, err := NewAxes(func(v *Axes) { v.Model = colour.ModelLab })
	require.NoError(t, err)
	requireValid(t, v)
	ln, _, _, lb := kinds(v.Primitives())
	require.Len(t, ln, 1)
	assert.Equal(t, 6, ln[0].(*geom.Lines).NumVertex())
	assert.Len(t, lb, 3)
	assert.Equal(t, []string{"a*", "b*", "L*"}, labelTexts(v.Primitives()))

	v.SetSize(2)
	bb := v.Primitives()[0].BBox()
	assert.Equal(t, float32(2), bb.Max.X)

	_, err = NewAxes(func(v *Axes) { v.Size = 0 })
	assert.Error(t, err)
	_, err = NewAxes(func(v *Axes) { v.Model = colour.ModelsN })
	assert.Error(t, err)
}

func TestGrid(t *testing.T) {
	v, err := NewGrid(func(v *Grid) { v.Size = 2 })
	require.NoError(t, err)
	requireValid(t, v)
	ln, _, ms, lb := kinds(v.Primitives())
	assert.Len(t, ln, 1)
	require.Len(t, ms, 2)
	assert.True(t, ms[0].(*geom.Mesh).Wireframe)
	assert.Equal(t, 3*3, ms[0].(*geom.Mesh).NumVertex())
	assert.Equal(t, 21*21, ms[1].(*geom.Mesh).NumVertex())
	// major: 0 once, -1 and 1 on both axes; minor: 18 tenths on both axes
	assert.Len(t, lb, 5+36)
	texts := labelTexts(v.Primitives())
	assert.Contains(t, texts, "0 ")
	assert.Contains(t, texts, "-0.5")
	assert.Contains(t, texts, "0.9 ")

	v.SetMinorTickLabels(false)
	_, _, _, lb = kinds(v.Primitives())
	assert.Len(t, lb, 5)

	// odd sizes floor their lower bound
	v, err = NewGrid(func(v *Grid) { v.Size = 5 })
	require.NoError(t, err)
	_, _, _, lb = kinds(v.Primitives())
	// major: 0 once, -3 to 2 on both axes; minor: 45 tenths on both axes
	assert.Len(t, lb, 11+90)
	texts = labelTexts(v.Primitives())
	assert.Contains(t, texts, "-3")
	assert.Contains(t, texts, "-3 ")
	assert.Contains(t, texts, "-2.9")
	assert.NotContains(t, texts, "3")
	assert.NotContains(t, texts, "2.1")

	_, err = NewGrid(func(v *Grid) { v.Size = 0.5 })
	assert.Error(t, err)
}

func TestSpectralLocus2D(t *testing.T) {
	for _, m := range colour.MethodsValues() {
		v, err := NewSpectralLocus2D(func(v *SpectralLocus2D) { v.Method = m })
		require.NoError(t, err, m.String())
		requireValid(t, v)
		ln, pt, _, lb := kinds(v.Primitives())
		require.Len(t, ln, 2)
		assert.Equal(t, 2*(len(v.CMFS.Wavelengths)-1), ln[0].(*geom.Lines).NumVertex())
		assert.Len(t, lb, len(DefaultLabels(m)))
		assert.Equal(t, 2*len(DefaultLabels(m)), ln[1].(*geom.Lines).NumVertex())
		require.Len(t, pt, 1)
		assert.Equal(t, float32(3), pt[0].(*geom.Points).Sizes[0])
	}

	v, err := NewSpectralLocus2D(func(v *SpectralLocus2D) { v.Labels = []float64{520, 1000} })
	require.NoError(t, err)
	assert.Equal(t, []string{"520"}, labelTexts(v.Primitives()))
	ln, _, _, _ := kinds(v.Primitives())
	tick := ln[1].(*geom.Lines).Positions
	ee := 1.0 / 3
	start := math.Hypot(float64(tick[0])-ee, float64(tick[1])-ee)
	end := math.Hypot(float64(tick[3])-ee, float64(tick[4])-ee)
	assert.Greater(t, end, start)
	assert.InDelta(t, tickLength, math.Hypot(float64(tick[3]-tick[0]), float64(tick[4]-tick[1])), 1e-6)

	v.SetLabels([]float64{})
	assert.Len(t, v.Primitives(), 1)

	grey := colour.Vec3{0.5, 0.5, 0.5}
	v.SetColour(&grey).SetOpacity(0.25)
	c := v.Primitives()[0].(*geom.Lines).Colors
	assert.Equal(t, float32(0.5), c[0])
	assert.Equal(t, float32(0.25), c[3])

	_, err = NewSpectralLocus2D(func(v *SpectralLocus2D) { v.CMFS = nil })
	assert.Error(t, err)
	_, err = NewSpectralLocus2D(func(v *SpectralLocus2D) { v.Thickness = -1 })
	assert.Error(t, err)
}

func TestSpectralLocus3D(t *testing.T) {
	for _, m := range colour.ModelsValues() {
		v, err := NewSpectralLocus3D(func(v *SpectralLocus3D) { v.Model = m })
		require.NoError(t, err, m.String())
		requireValid(t, v)
		ln := v.Primitives()[0].(*geom.Lines)
		assert.Equal(t, 2*(len(v.CMFS.Wavelengths)-1), ln.NumVertex(), m.String())
	}
}

func TestChromaticityDiagram(t *testing.T) {
	for _, m := range colour.MethodsValues() {
		v, err := NewChromaticityDiagram(func(v *ChromaticityDiagram) {
			v.Method = m
			v.Samples = 24
		})
		require.NoError(t, err, m.String())
		requireValid(t, v)
		ms := v.Primitives()[0].(*geom.Mesh)
		assert.NotEmpty(t, ms.Indices)
		assert.Zero(t, len(ms.Indices)%3)
		for _, c := range ms.Colors {
			assert.False(t, math.IsNaN(float64(c)))
			assert.GreaterOrEqual(t, c, float32(0))
			assert.LessOrEqual(t, c, float32(1))
		}
	}

	v, err := NewChromaticityDiagram(func(v *ChromaticityDiagram) {
		v.Samples = 16
		v.Wireframe = true
		v.Material = geom.MaterialPhong
	})
	require.NoError(t, err)
	ms := v.Primitives()[0].(*geom.Mesh)
	assert.True(t, ms.Wireframe)
	assert.Equal(t, geom.MaterialPhong, ms.Material)

	_, err = NewChromaticityDiagram(func(v *ChromaticityDiagram) { v.Samples = 1 })
	assert.Error(t, err)
	_, err = NewChromaticityDiagram(func(v *ChromaticityDiagram) { v.Opacity = 2 })
	assert.Error(t, err)
}

func TestChromaticityDiagramGroups(t *testing.T) {
	for m, fn := range map[colour.Methods]func(func(*SpectralLocus2D), func(*ChromaticityDiagram)) (*ChromaticityDiagramGroup, error){
		colour.CIE1931:    NewChromaticityDiagramCIE1931,
		colour.CIE1960UCS: NewChromaticityDiagramCIE1960UCS,
		colour.CIE1976UCS: NewChromaticityDiagramCIE1976UCS,
	} {
		v, err := fn(nil, func(cd *ChromaticityDiagram) {
			cd.Samples = 16
			cd.Opacity = 0.25
		})
		require.NoError(t, err, m.String())
		requireValid(t, v)
		require.Len(t, v.Children(), 2)
		assert.Equal(t, m, v.SpectralLocus.Method)
		assert.Equal(t, m, v.Diagram.Method)
		assert.Equal(t, 0.25, v.Diagram.Opacity)
		assert.Empty(t, v.Primitives())
	}

	v, err := NewChromaticityDiagramCIE1931(nil, func(cd *ChromaticityDiagram) { cd.Samples = 16 })
	require.NoError(t, err)
	v.SetMethod(colour.CIE1976UCS)
	assert.Equal(t, colour.CIE1976UCS, v.Diagram.Method)
}

func TestPlanckianLocus(t *testing.T) {
	v, err := NewPlanckianLocus()
	require.NoError(t, err)
	requireValid(t, v)
	ln, _, _, lb := kinds(v.Primitives())
	assert.Len(t, ln, 1+len(colour.PlanckianLabels))
	assert.Len(t, lb, len(colour.PlanckianLabels))
	assert.Contains(t, labelTexts(v.Primitives()), "2000K")
	assert.Equal(t, 2*(colour.IsoTemperatureSamples-1), ln[1].(*geom.Lines).NumVertex())

	v.SetMireds(true)
	requireValid(t, v)
	assert.Contains(t, labelTexts(v.Primitives()), "0M")
	assert.Contains(t, labelTexts(v.Primitives()), "600M")

	v.SetLabels([]float64{})
	assert.Len(t, v.Primitives(), 1)

	for _, m := range colour.MethodsValues() {
		v.SetMethod(m)
		requireValid(t, v)
	}
}

func TestDaylightLocus(t *testing.T) {
	for _, mireds := range []bool{false, true} {
		v, err := NewDaylightLocus(func(v *DaylightLocus) { v.Mireds = mireds })
		require.NoError(t, err)
		requireValid(t, v)
		assert.Equal(t, 2*(v.Samples-1), v.Primitives()[0].(*geom.Lines).NumVertex())
	}
	_, err := NewDaylightLocus(func(v *DaylightLocus) { v.Samples = 0 })
	assert.Error(t, err)
}

// syntheticPointerGamut has three levels of eight hues.
func syntheticPointerGamut(t *testing.T) *colour.PointerGamut {
	var b strings.Builder
	b.WriteString("L,C,h\n")
	for _, l := range []float64{30, 50, 70} {
		for h := 0; h < 360; h += 45 {
			fmt.Fprintf(&b, "%g,%g,%d\n", l, 20+l/2, h)
		}
	}
	pg, err := colour.LoadPointerGamut(strings.NewReader(b.String()), "synthetic")
	require.NoError(t, err)
	return pg
}

func TestPointerGamut(t *testing.T) {
	pg := syntheticPointerGamut(t)
	for _, m := range colour.MethodsValues() {
		v, err := NewPointerGamut2D(pg, func(v *PointerGamut2D) { v.Method = m })
		require.NoError(t, err)
		requireValid(t, v)
		_, pt, _, _ := kinds(v.Primitives())
		require.Len(t, pt, 1)
		assert.Equal(t, 24, pt[0].(*geom.Points).NumVertex())
	}

	v, err := NewPointerGamut3D(pg)
	require.NoError(t, err)
	requireValid(t, v)
	ln := v.Primitives()[0].(*geom.Lines)
	assert.Equal(t, 3*8*2, ln.NumVertex())
	assert.Equal(t, float32(0.5), ln.Colors[3])

	_, err = NewPointerGamut2D(nil)
	assert.Error(t, err)
	_, err = NewPointerGamut3D(nil)
	assert.Error(t, err)
}

func TestRGBColourspaces(t *testing.T) {
	names := colour.RGBColourspaceNames()
	require.NotEmpty(t, names)
	for _, name := range names {
		cs, err := colour.RGBColourspaceByName(name)
		require.NoError(t, err)

		v2, err := NewRGBColourspace2D(func(v *RGBColourspace2D) { v.Colourspace = cs })
		require.NoError(t, err, name)
		requireValid(t, v2)
		ln, pt, _, _ := kinds(v2.Primitives())
		require.Len(t, ln, 1)
		assert.Equal(t, 6, ln[0].(*geom.Lines).NumVertex(), name)
		require.Len(t, pt, 1)
		assert.Equal(t, 1, pt[0].(*geom.Points).NumVertex(), name)

		for _, m := range []colour.Models{colour.ModelXYY, colour.ModelLab, colour.ModelRGB} {
			v3, err := NewRGBColourspace3D(func(v *RGBColourspace3D) {
				v.Colourspace = cs
				v.Model = m
				v.Segments = 2
			})
			require.NoError(t, err, name)
			requireValid(t, v3)
			ms := v3.Primitives()[0].(*geom.Mesh)
			assert.Equal(t, 6*9, ms.NumVertex(), name)
			assert.Len(t, ms.Indices, 6*4*6, name)
			assert.NotEmpty(t, ms.Edges, name)
			for _, p := range ms.Positions {
				assert.False(t, math.IsNaN(float64(p)), name)
			}
		}
	}

	_, err := NewRGBColourspace2D(func(v *RGBColourspace2D) { v.Colourspace = nil })
	assert.Error(t, err)
	_, err = NewRGBColourspace3D(func(v *RGBColourspace3D) { v.Segments = 0 })
	assert.Error(t, err)
}

func TestRGBColourspace2DColours(t *testing.T) {
	whitepoint := func(name string) []float32 {
		cs, err := colour.RGBColourspaceByName(name)
		require.NoError(t, err)
		v, err := NewRGBColourspace2D(func(v *RGBColourspace2D) { v.Colourspace = cs })
		require.NoError(t, err)
		_, pt, _, _ := kinds(v.Primitives())
		require.Len(t, pt, 1)
		return []float32(pt[0].(*geom.Points).Colors)
	}
	assert.InDeltaSlice(t, []float32{1, 1, 1, 1}, whitepoint("sRGB"), 1e-4)

	// the DCI-P3 whitepoint keeps its green tint in the plotting colourspace
	dci := whitepoint("DCI-P3")
	assert.InDelta(t, 1, dci[1], 1e-6)
	assert.InDelta(t, 0.845, dci[0], 0.01)
	assert.InDelta(t, 0.815, dci[2], 0.01)
}

func TestRGBColourspace3DRGBModel(t *testing.T) {
	v, err := NewRGBColourspace3D(func(v *RGBColourspace3D) {
		v.Model = colour.ModelRGB
		v.Segments = 1
		v.Wireframe = true
	})
	require.NoError(t, err)
	ms := v.Primitives()[0].(*geom.Mesh)
	bb := ms.BBox()
	assert.InDelta(t, 0, bb.Min.X, 1e-6)
	assert.InDelta(t, 1, bb.Max.Z, 1e-6)
	assert.True(t, ms.Wireframe)
	// colours are the RGB positions
	assert.Equal(t, ms.Positions[0], ms.Colors[0])
	assert.Equal(t, ms.Positions[4], ms.Colors[5])
}

func TestRGBScatter3D(t *testing.T) {
	rgb := []colour.Vec3{{0, 0, 0}, {1, 0.5, 0.25}, {0.2, 0.4, 0.6}}
	v, err := NewRGBScatter3D(rgb)
	require.NoError(t, err)
	requireValid(t, v)
	pt := v.Primitives()[0].(*geom.Points)
	assert.Equal(t, 3, pt.NumVertex())
	assert.Equal(t, float32(2), pt.Sizes[0])

	v.SetModel(colour.ModelRGB)
	pt = v.Primitives()[0].(*geom.Points)
	assert.Equal(t, float32(0.5), pt.Positions[4])
	assert.Greater(t, pt.Positions[0], float32(0))

	for _, m := range colour.ModelsValues() {
		v.SetModel(m)
		requireValid(t, v)
	}

	_, err = NewRGBScatter3D(nil)
	assert.Error(t, err)
}

func TestRoschMacAdam(t *testing.T) {
	v, err := NewRoschMacAdam()
	require.NoError(t, err)
	requireValid(t, v)
	bins := 420/RoschMacAdamInterval + 1
	ln := v.Primitives()[0].(*geom.Lines)
	assert.Equal(t, 2*(1+(bins-1)*bins), ln.NumVertex())

	_, err = NewRoschMacAdam(func(v *RoschMacAdam) { v.Illuminant = nil })
	assert.Error(t, err)
}

func TestBlockUpdate(t *testing.T) {
	v, err := NewSpectralLocus2D()
	require.NoError(t, err)
	before := v.Primitives()
	require.NoError(t, v.BlockUpdate(func() {
		v.SetMethod(colour.CIE1960UCS)
		v.SetLabels([]float64{})
		assert.Equal(t, before, v.Primitives())
	}))
	assert.Len(t, v.Primitives(), 1)

	// an invalid value keeps the last primitives
	v.SetOpacity(2)
	assert.Len(t, v.Primitives(), 1)
	assert.Error(t, v.Update())
}
