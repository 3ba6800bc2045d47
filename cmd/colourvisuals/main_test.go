// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/xyz"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/scenefile"
	"github.com/colour-science/colour-visuals/visuals"
	"github.com/gdamore/tcell/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	return &Config{
		Output:      t.TempDir(),
		Width:       64,
		Height:      48,
		Colourspace: "sRGB",
		Model:       "CIE xyY",
		Method:      "CIE 1931",
		Swatches:    4,
		Stripes:     3,
		Samples:     8,
		Wheel:       "Nuke",
		Seed:        16,
		MaxPixels:   64,
	}
}

func TestOutputDir(t *testing.T) {
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	c := &Config{Output: "~/colour-visuals"}
	dir, err := c.outputDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "colour-visuals"), dir)
	assert.DirExists(t, dir)
}

func TestPlotSave(t *testing.T) {
	c := testConfig(t)
	names := map[string]bool{}
	for _, p := range plots(c, nil) {
		assert.False(t, names[p.name], "duplicate plot %s", p.name)
		names[p.name] = true
		if p.name == "RGBColourspace2D" || p.name == "RGBColourspace3D" {
			fn := filepath.Join(c.Output, p.name+".png")
			require.NoError(t, p.save(fn, c.Width, c.Height))
			img, _, err := imagex.Open(fn)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
		}
	}
	assert.True(t, names["ChromaticityDiagramCIE1976UCS"])
	assert.False(t, names["PointerGamut2D"])
}

// scatterValues returns the RGB values of the first scatter of a plot.
func scatterValues(t *testing.T, c *Config, name string) []colour.Vec3 {
	for _, p := range plots(c, nil) {
		if p.name != name {
			continue
		}
		var l visualList
		p.build(&l)
		require.NoError(t, l.err)
		for _, v := range l.visuals {
			if sc, ok := v.(*visuals.RGBScatter3D); ok {
				return sc.RGB
			}
		}
	}
	t.Fatalf("no scatter in plot %s", name)
	return nil
}

func TestPlotSeed(t *testing.T) {
	c := testConfig(t)
	a := scatterValues(t, c, "RGBScatter3D")
	require.Len(t, a, 24*32)
	assert.Equal(t, a, scatterValues(t, c, "RGBScatter3D"))
	for _, v := range a {
		for _, x := range v {
			assert.True(t, x >= 0 && x < 1)
		}
	}
	c.Seed++
	assert.NotEqual(t, a, scatterValues(t, c, "RGBScatter3D"))
}

func TestPlotError(t *testing.T) {
	p := plot{name: "Bad", build: func(l *visualList) {
		l.add(colourspace2D("Display P4", nil))
	}}
	err := p.save(filepath.Join(t.TempDir(), "bad.png"), 8, 8)
	assert.ErrorIs(t, err, colour.ErrUnknownName)
}

func TestPatterns(t *testing.T) {
	c := testConfig(t)
	require.NoError(t, Patterns(c))
	for _, name := range []string{"HueSwatches", "HueStripes", "ColourWheel"} {
		assert.FileExists(t, filepath.Join(c.Output, "Plotting_Pattern"+name+".png"))
	}
	c.Wheel = "Photoshop"
	assert.Error(t, Patterns(c))
}

func TestScatter(t *testing.T) {
	c := testConfig(t)
	assert.Error(t, Scatter(c))

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := range 16 {
		for x := range 16 {
			img.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 16), 128, 255})
		}
	}
	c.Image = filepath.Join(t.TempDir(), "ramp.png")
	f, err := os.Create(c.Image)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	require.NoError(t, Scatter(c))
	assert.FileExists(t, filepath.Join(c.Output, "ramp_Scatter.png"))

	c.Model = "CIE Lub"
	assert.ErrorIs(t, Scatter(c), colour.ErrUnknownName)
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, list(termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))))
	s := buf.String()
	for _, want := range []string{"RGB colourspaces", "Display P3", "CIE Lab", "CIE 1976 UCS", "D65", "PlanckianLocus"} {
		assert.Contains(t, s, want)
	}
}

func TestHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(2, 1)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	drawHalfBlocks(s, img)

	r, _, style, _ := s.GetContent(0, 0)
	assert.Equal(t, '▀', r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)
}

func TestRenderCells(t *testing.T) {
	for m := range colour.MethodsN {
		prims, err := diagram(m, colour.SRGB)
		require.NoError(t, err)
		img := renderCells(prims, 40, 20)
		assert.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	}
}

func TestShow(t *testing.T) {
	scene, err := openScene("")
	require.NoError(t, err)
	sc := xyz.NewScene()
	bb, err := show(sc, scene)
	require.NoError(t, err)
	assert.Equal(t, len(scene.Visuals), sc.NumChildren())
	assert.False(t, bb.IsEmpty())

	// a failing scene leaves the nodes in place
	bad, err := scenefile.Read(bytes.NewBufferString("[[visual]]\ntype = \"Axes\"\nsize = -1\n"), scenefile.TOML)
	require.NoError(t, err)
	_, err = show(sc, bad)
	assert.Error(t, err)
	assert.Equal(t, len(scene.Visuals), sc.NumChildren())
}
