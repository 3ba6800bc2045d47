// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package patterns generates hue test patterns: hue swatches, hue stripes
// and colour wheels, as RGB grids that can be scattered or saved as images.
package patterns

//go:generate core generate

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/lucasb-eyer/go-colorful"
)

// Pattern is a row major grid of RGB values, row 0 at the top.
type Pattern struct {
	Width  int
	Height int

	// Pix holds 3 values per pixel.
	Pix []float64
}

// NewPattern returns a black pattern of the given size.
func NewPattern(width, height int) *Pattern {
	return &Pattern{Width: width, Height: height, Pix: make([]float64, 3*width*height)}
}

// At returns the RGB value at column x and row y.
func (p *Pattern) At(x, y int) colour.Vec3 {
	i := 3 * (y*p.Width + x)
	return colour.Vec3{p.Pix[i], p.Pix[i+1], p.Pix[i+2]}
}

// Set sets the RGB value at column x and row y.
func (p *Pattern) Set(x, y int, rgb colour.Vec3) {
	i := 3 * (y*p.Width + x)
	copy(p.Pix[i:i+3], rgb[:])
}

// RGB returns the values as a flat list in row major order.
func (p *Pattern) RGB() []colour.Vec3 {
	rgb := make([]colour.Vec3, p.Width*p.Height)
	for i := range rgb {
		rgb[i] = colour.Vec3(p.Pix[3*i : 3*i+3])
	}
	return rgb
}

// Image returns an 8 bit image of the pattern, clipping values to [0, 1].
func (p *Pattern) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := range p.Height {
		for x := range p.Width {
			c := p.At(x, y).Clip()
			img.SetRGBA(x, y, color.RGBA{to8(c[0]), to8(c[1]), to8(c[2]), 255})
		}
	}
	return img
}

func to8(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// Save saves the pattern as an image, with the format given by the
// filename extension.
func (p *Pattern) Save(filename string) error {
	return imagex.Save(p.Image(), filename)
}

// hsv returns the RGB of hue, saturation and value in [0, 1],
// a hue of 1 wrapping to red.
func hsv(h, s, v float64) colour.Vec3 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	c := colorful.Hsv(h*360, s, v)
	return colour.Vec3{c.R, c.G, c.B}
}

// HueSwatches returns count+1 side by side swatches of samples by samples
// pixels, one per hue in [0, 1], with saturation increasing to the right
// and value increasing downward.
func HueSwatches(count, samples int) (*Pattern, error) {
	if count < 1 || samples < 2 {
		return nil, fmt.Errorf("patterns: hue swatches need count >= 1 and samples >= 2, got %d and %d", count, samples)
	}
	hues := geom.Linspace(0, 1, count+1)
	ramp := geom.Linspace(0, 1, samples)
	p := NewPattern(samples*(count+1), samples)
	for k, h := range hues {
		for y, v := range ramp {
			for x, s := range ramp {
				p.Set(k*samples+x, y, hsv(h, s, v))
			}
		}
	}
	return p, nil
}

// HueStripes returns count+1 fully saturated hue stripes as rows of samples
// pixels, the last hue at the top and value increasing to the right.
func HueStripes(count, samples int) (*Pattern, error) {
	if count < 1 || samples < 2 {
		return nil, fmt.Errorf("patterns: hue stripes need count >= 1 and samples >= 2, got %d and %d", count, samples)
	}
	hues := geom.Linspace(0, 1, count+1)
	ramp := geom.Linspace(0, 1, samples)
	p := NewPattern(samples, count+1)
	for y := range count + 1 {
		h := hues[count-y]
		for x, v := range ramp {
			p.Set(x, y, hsv(h, 1, v))
		}
	}
	return p, nil
}

// WheelMethods are the colour wheel layouts.
type WheelMethods int32 //enums:enum -trim-prefix Wheel -accept-lower

const (
	// WheelColour has red at the bottom and the hue turning clockwise.
	WheelColour WheelMethods = iota

	// WheelNuke is the anti-transposed layout of the Nuke colour wheel.
	WheelNuke
)

// ColourWheel returns a samples by samples colour wheel with hue around
// the centre and saturation increasing outward. With clipCircle the
// pixels outside the unit circle are black.
func ColourWheel(samples int, method WheelMethods, clipCircle bool) (*Pattern, error) {
	if samples < 2 {
		return nil, fmt.Errorf("patterns: colour wheel needs samples >= 2, got %d", samples)
	}
	if method < 0 || method >= WheelMethodsN {
		return nil, fmt.Errorf("patterns: invalid colour wheel method %v", method)
	}
	ramp := geom.Linspace(-1, 1, samples)
	p := NewPattern(samples, samples)
	for r, yy := range ramp {
		for c, xx := range ramp {
			s := math.Hypot(xx, yy)
			var rgb colour.Vec3
			if !clipCircle || s <= 1 {
				rgb = hsv((math.Atan2(xx, yy)+math.Pi)/(2*math.Pi), s, 1)
			}
			x, y := c, r
			if method == WheelNuke {
				x, y = samples-1-r, samples-1-c
			}
			p.Set(x, y, rgb)
		}
	}
	return p, nil
}
