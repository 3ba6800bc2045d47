// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/colour-science/colour-visuals/raster"
	"github.com/colour-science/colour-visuals/visuals"
	"github.com/gdamore/tcell/v2"
)

// Preview draws a chromaticity diagram with the gamut of
// [Config.Colourspace] in the terminal. The m key cycles through the
// methods, q or escape quits.
func Preview(c *Config) error {
	method, err := colour.ParseMethod(c.Method)
	if err != nil {
		return err
	}
	cs, err := c.colourspace()
	if err != nil {
		return err
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	prims, err := diagram(method, cs)
	if err != nil {
		return err
	}
	for {
		w, h := s.Size()
		drawHalfBlocks(s, renderCells(prims, w, h))
		s.Show()
		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'm':
				method = (method + 1) % colour.MethodsN
				if prims, err = diagram(method, cs); err != nil {
					return err
				}
			}
		}
	}
}

// diagram returns the primitives of the chromaticity diagram of the
// method with the gamut of cs.
func diagram(method colour.Methods, cs *colour.RGBColourspace) ([]geom.Primitive, error) {
	var l visualList
	l.add(visuals.NewChromaticityDiagram(func(v *visuals.ChromaticityDiagram) {
		v.Method = method
		v.Samples = 64
	}))
	l.add(visuals.NewSpectralLocus2D(func(v *visuals.SpectralLocus2D) {
		v.Method = method
		v.Labels = []float64{}
	}))
	l.add(visuals.NewRGBColourspace2D(func(v *visuals.RGBColourspace2D) {
		v.Method = method
		v.Colourspace = cs
	}))
	if l.err != nil {
		return nil, l.err
	}
	var prims []geom.Primitive
	for _, v := range l.visuals {
		prims = append(prims, visuals.Flatten(v)...)
	}
	return prims, nil
}

// renderCells renders the primitives for a terminal of w by h cells, two
// pixels per cell.
func renderCells(prims []geom.Primitive, w, h int) *image.RGBA {
	w, h = max(w, 1), max(h, 1)
	img := raster.NewImage(w, 2*h, Background)
	raster.Render(img, raster.Fit(prims, w, 2*h, 0.02), prims...)
	return img
}

// drawHalfBlocks draws img with one upper half block per pair of pixel
// rows, the upper pixel in the foreground and the lower one in the
// background.
func drawHalfBlocks(s tcell.Screen, img *image.RGBA) {
	b := img.Bounds()
	for y := 0; 2*y+1 < b.Dy(); y++ {
		for x := range b.Dx() {
			top := img.RGBAAt(b.Min.X+x, b.Min.Y+2*y)
			bottom := img.RGBAAt(b.Min.X+x, b.Min.Y+2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.SetContent(x, y, '▀', nil, style)
		}
	}
}
