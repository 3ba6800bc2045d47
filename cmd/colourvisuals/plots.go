// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/math32"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/colour-science/colour-visuals/patterns"
	"github.com/colour-science/colour-visuals/raster"
	"github.com/colour-science/colour-visuals/scenefile"
	"github.com/colour-science/colour-visuals/visuals"
)

// Background is the plot background colour.
var Background = color.RGBA{46, 46, 46, 255}

// TiltAngle is the rotation about x of the 3D plots, showing their height.
var TiltAngle float32 = -math32.Pi / 4

// visualList collects visuals, keeping the first construction error.
type visualList struct {
	visuals []visuals.Visual
	err     error
}

func (l *visualList) add(v visuals.Visual, err error) {
	if l.err != nil {
		return
	}
	if err != nil {
		l.err = err
		return
	}
	l.visuals = append(l.visuals, v)
}

// plot is one image of the plots command.
type plot struct {
	name string

	// tilt rotates the visuals by [TiltAngle].
	tilt bool

	build func(l *visualList)
}

// plots returns the plots of the visuals. The Pointer's gamut plots need
// the dataset, given by pg.
func plots(c *Config, pg *colour.PointerGamut) []plot {
	rng := rand.New(rand.NewSource(c.Seed))
	random := func() []colour.Vec3 {
		rgb := make([]colour.Vec3, 24*32)
		for i := range rgb {
			rgb[i] = colour.Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
		}
		return rgb
	}
	translucent := func(cd *visuals.ChromaticityDiagram) { cd.Opacity = 0.25 }
	patternRGB := func(p *patterns.Pattern, err error) []colour.Vec3 {
		if err != nil {
			slog.Error("plots: pattern", "err", err)
			return nil
		}
		return p.RGB()
	}
	scatterRGB := func(l *visualList, rgb []colour.Vec3) {
		l.add(visuals.NewRGBScatter3D(rgb, func(v *visuals.RGBScatter3D) { v.Model = colour.ModelRGB }))
	}

	ps := []plot{
		{"Axes", false, func(l *visualList) {
			l.add(visuals.NewAxes(func(v *visuals.Axes) { v.Model = colour.ModelLab }))
		}},
		{"SpectralLocus2D", false, func(l *visualList) { l.add(visuals.NewSpectralLocus2D()) }},
		{"SpectralLocus3D", true, func(l *visualList) { l.add(visuals.NewSpectralLocus3D()) }},
		{"ChromaticityDiagram", false, func(l *visualList) { l.add(visuals.NewChromaticityDiagram()) }},
		{"ChromaticityDiagramCIE1931", false, func(l *visualList) {
			l.add(visuals.NewChromaticityDiagramCIE1931(nil, translucent))
		}},
		{"ChromaticityDiagramCIE1960UCS", false, func(l *visualList) {
			l.add(visuals.NewChromaticityDiagramCIE1960UCS(nil, translucent))
		}},
		{"ChromaticityDiagramCIE1976UCS", false, func(l *visualList) {
			l.add(visuals.NewChromaticityDiagramCIE1976UCS(nil, translucent))
		}},
		{"PlanckianLocus", false, func(l *visualList) { l.add(visuals.NewPlanckianLocus()) }},
		{"DaylightLocus", false, func(l *visualList) { l.add(visuals.NewDaylightLocus()) }},
		{"Grid", false, func(l *visualList) { l.add(visuals.NewGrid()) }},
		{"RGBColourspace2D", false, func(l *visualList) { l.add(visuals.NewRGBColourspace2D()) }},
		{"RGBColourspace3D", true, func(l *visualList) {
			l.add(visuals.NewRGBColourspace3D(func(v *visuals.RGBColourspace3D) { v.Wireframe = true }))
		}},
		{"RGBScatter3D", true, func(l *visualList) { l.add(visuals.NewRGBScatter3D(random())) }},
		{"RoschMacAdam", true, func(l *visualList) { l.add(visuals.NewRoschMacAdam()) }},
		{"HueSwatches", true, func(l *visualList) {
			scatterRGB(l, patternRGB(patterns.HueSwatches(12, 16)))
		}},
		{"HueStripes", true, func(l *visualList) {
			scatterRGB(l, patternRGB(patterns.HueStripes(6, 64)))
		}},
		{"ColourWheel", true, func(l *visualList) {
			scatterRGB(l, patternRGB(patterns.ColourWheel(64, patterns.WheelColour, true)))
		}},
		{"Visuals_001", true, func(l *visualList) {
			l.add(visuals.NewGrid(func(v *visuals.Grid) { v.Size = 2 }))
			l.add(visuals.NewChromaticityDiagramCIE1931(nil, translucent))
			l.add(colourspace2D("ACEScg", nil))
			l.add(colourspace2D("Display P3", &colour.Vec3{0.5, 0.5, 0.5}))
			l.add(visuals.NewRGBColourspace3D(func(v *visuals.RGBColourspace3D) {
				v.Colourspace = mustColourspace("Display P3")
				v.Opacity = 0.5
				v.Wireframe = true
			}))
			l.add(visuals.NewRGBScatter3D(random(), func(v *visuals.RGBScatter3D) {
				v.Colourspace = mustColourspace("ACEScg")
			}))
		}},
		{"Visuals_002", true, func(l *visualList) {
			l.add(visuals.NewGrid(func(v *visuals.Grid) { v.Size = 2 }))
			l.add(visuals.NewSpectralLocus2D())
			l.add(visuals.NewSpectralLocus3D())
			l.add(colourspace2D("ACEScg", nil))
			l.add(colourspace2D("Display P3", &colour.Vec3{0.5, 0.5, 0.5}))
			l.add(visuals.NewRGBScatter3D(random(), func(v *visuals.RGBScatter3D) {
				v.Colourspace = mustColourspace("ACEScg")
			}))
		}},
		{"Visuals_003", true, func(l *visualList) {
			l.add(visuals.NewGrid(func(v *visuals.Grid) { v.Size = 4 }))
			l.add(visuals.NewSpectralLocus3D(func(v *visuals.SpectralLocus3D) { v.Model = colour.ModelLab }))
			l.add(visuals.NewRGBColourspace3D(func(v *visuals.RGBColourspace3D) {
				v.Colourspace = mustColourspace("Display P3")
				v.Model = colour.ModelLab
				v.Opacity = 0.5
				v.Wireframe = true
				v.Segments = 8
			}))
			l.add(visuals.NewRGBScatter3D(random(), func(v *visuals.RGBScatter3D) {
				v.Colourspace = mustColourspace("Display P3")
				v.Model = colour.ModelLab
			}))
		}},
	}
	if pg != nil {
		ps = append(ps,
			plot{"PointerGamut2D", false, func(l *visualList) { l.add(visuals.NewPointerGamut2D(pg)) }},
			plot{"PointerGamut3D", true, func(l *visualList) { l.add(visuals.NewPointerGamut3D(pg)) }},
		)
	}
	return ps
}

func colourspace2D(name string, c *colour.Vec3) (*visuals.RGBColourspace2D, error) {
	cs, err := colour.RGBColourspaceByName(name)
	if err != nil {
		return nil, err
	}
	return visuals.NewRGBColourspace2D(func(v *visuals.RGBColourspace2D) {
		v.Colourspace = cs
		v.Colour = c
	})
}

// mustColourspace returns a built in colourspace.
func mustColourspace(name string) *colour.RGBColourspace {
	cs, err := colour.RGBColourspaceByName(name)
	if err != nil {
		panic(err)
	}
	return cs
}

// Plots writes an image of every visual, and of example scenes.
func Plots(c *Config) error {
	if err := c.imageSize(); err != nil {
		return err
	}
	dir, err := c.outputDir()
	if err != nil {
		return err
	}
	var pg *colour.PointerGamut
	if c.PointerGamut != "" {
		if pg, err = colour.OpenPointerGamut(c.PointerGamut); err != nil {
			return err
		}
	} else {
		slog.Info("plots: no pointer gamut dataset, skipping its plots")
	}
	for _, p := range plots(c, pg) {
		name := p.name
		if !strings.HasPrefix(name, "Visuals_") {
			name = "Plotting_" + name
		}
		fn := filepath.Join(dir, name+".png")
		if err := p.save(fn, c.Width, c.Height); err != nil {
			return fmt.Errorf("plot %s: %w", p.name, err)
		}
		slog.Info("plots: wrote", "file", fn)
	}
	return nil
}

// save renders the plot into an image file.
func (p *plot) save(filename string, width, height int) error {
	var l visualList
	p.build(&l)
	if l.err != nil {
		return l.err
	}
	var prims []geom.Primitive
	for _, v := range l.visuals {
		prims = append(prims, visuals.Flatten(v)...)
	}
	if p.tilt {
		prims = raster.Tilt(TiltAngle, prims...)
	}
	return savePrimitives(filename, width, height, prims)
}

func savePrimitives(filename string, width, height int, prims []geom.Primitive) error {
	if err := geom.ValidateAll(prims...); err != nil {
		return err
	}
	img := raster.NewImage(width, height, Background)
	raster.Render(img, raster.Fit(prims, width, height, 0.05), prims...)
	return imagex.Save(img, filename)
}

// Patterns writes the hue swatches, hue stripes and colour wheel images.
func Patterns(c *Config) error {
	dir, err := c.outputDir()
	if err != nil {
		return err
	}
	var wheel patterns.WheelMethods
	if err := wheel.SetString(c.Wheel); err != nil {
		return err
	}
	swatches, err := patterns.HueSwatches(c.Swatches, c.Samples)
	if err != nil {
		return err
	}
	stripes, err := patterns.HueStripes(c.Stripes, c.Samples)
	if err != nil {
		return err
	}
	cw, err := patterns.ColourWheel(c.Samples, wheel, true)
	if err != nil {
		return err
	}
	for name, p := range map[string]*patterns.Pattern{
		"HueSwatches": swatches,
		"HueStripes":  stripes,
		"ColourWheel": cw,
	} {
		fn := filepath.Join(dir, "Plotting_Pattern"+name+".png")
		if err := p.Save(fn); err != nil {
			return err
		}
		slog.Info("patterns: wrote", "file", fn)
	}
	return nil
}

// Scatter writes an image of the pixels of [Config.Image] scattered in
// [Config.Model], over the gamut of [Config.Colourspace].
func Scatter(c *Config) error {
	if c.Image == "" {
		return fmt.Errorf("scatter: no image given")
	}
	if err := c.imageSize(); err != nil {
		return err
	}
	cs, err := c.colourspace()
	if err != nil {
		return err
	}
	model, err := colour.ParseModel(c.Model)
	if err != nil {
		return err
	}
	rgb, err := scenefile.OpenRGB(c.Image, c.MaxPixels, cs)
	if err != nil {
		return err
	}
	dir, err := c.outputDir()
	if err != nil {
		return err
	}
	p := plot{name: "Scatter", tilt: true, build: func(l *visualList) {
		l.add(visuals.NewRGBColourspace3D(func(v *visuals.RGBColourspace3D) {
			v.Colourspace = cs
			v.Model = model
			v.Opacity = 0.5
			v.Wireframe = true
		}))
		l.add(visuals.NewRGBScatter3D(rgb, func(v *visuals.RGBScatter3D) {
			v.Colourspace = cs
			v.Model = model
		}))
	}}
	base := strings.TrimSuffix(filepath.Base(c.Image), filepath.Ext(c.Image))
	fn := filepath.Join(dir, base+"_Scatter.png")
	if err := p.save(fn, c.Width, c.Height); err != nil {
		return err
	}
	slog.Info("scatter: wrote", "file", fn, "pixels", len(rgb))
	return nil
}
