// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws visual primitives into images, looking down the z
// axis with an orthographic camera. It is used to export plots without a
// GPU.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"cogentcore.org/core/math32"
	"github.com/colour-science/colour-visuals/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Camera2D maps the xy world rectangle from Min to Max onto an image of
// Width by Height pixels, with y up.
type Camera2D struct {
	Min, Max math32.Vector2

	Width, Height int
}

// ToPixel returns the pixel coordinates of the world point x, y.
func (c Camera2D) ToPixel(x, y float32) (px, py float32) {
	px = (x - c.Min.X) / (c.Max.X - c.Min.X) * float32(c.Width)
	py = (c.Max.Y - y) / (c.Max.Y - c.Min.Y) * float32(c.Height)
	return
}

// Scale returns the number of pixels per world unit along x.
func (c Camera2D) Scale() float32 {
	return float32(c.Width) / (c.Max.X - c.Min.X)
}

// Fit returns a camera framing the xy bounds of the primitives in an image
// of the given size, with a margin given as a fraction of the bounds size.
// World units have the same size along x and y.
func Fit(prims []geom.Primitive, width, height int, margin float32) Camera2D {
	bb := geom.Bounds(prims...)
	mn, mx := math32.Vec2(bb.Min.X, bb.Min.Y), math32.Vec2(bb.Max.X, bb.Max.Y)
	if bb.IsEmpty() {
		mn, mx = math32.Vec2(0, 0), math32.Vec2(1, 1)
	}
	size := mx.Sub(mn)
	if size.X <= 0 {
		size.X = 1
	}
	if size.Y <= 0 {
		size.Y = 1
	}
	centre := mn.Add(mx).MulScalar(0.5)
	size = size.MulScalar(1 + 2*margin)
	aspect := float32(width) / float32(height)
	if size.X/size.Y < aspect {
		size.X = size.Y * aspect
	} else {
		size.Y = size.X / aspect
	}
	half := size.MulScalar(0.5)
	return Camera2D{Min: centre.Sub(half), Max: centre.Add(half), Width: width, Height: height}
}

// NewImage returns an image filled with the background colour.
func NewImage(width, height int, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return img
}

// Render draws the primitives in order over img.
func Render(img *image.RGBA, cam Camera2D, prims ...geom.Primitive) {
	r := &renderer{img: img, cam: cam}
	for _, p := range prims {
		switch p := p.(type) {
		case *geom.Mesh:
			if p.Wireframe {
				r.edges(p)
			} else {
				r.mesh(p)
			}
		case *geom.Lines:
			r.lines(p.Positions, p.Colors, p.Thickness)
		case *geom.Points:
			r.points(p)
		case *geom.Label:
			r.label(p)
		}
	}
}

type renderer struct {
	img *image.RGBA
	cam Camera2D
	ras *vector.Rasterizer
}

func (r *renderer) pixel(positions math32.ArrayF32, i int) math32.Vector2 {
	x, y := r.cam.ToPixel(positions[3*i], positions[3*i+1])
	return math32.Vec2(x, y)
}

func rgba(colors math32.ArrayF32, i int) math32.Vector4 {
	return math32.Vec4(colors[4*i], colors[4*i+1], colors[4*i+2], colors[4*i+3])
}

// blend composites the straight alpha colour c over the pixel at x, y.
func (r *renderer) blend(x, y int, c math32.Vector4) {
	a := math32.Clamp(c.W, 0, 1)
	if a == 0 {
		return
	}
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4]
	for k, v := range [3]float32{c.X, c.Y, c.Z} {
		dst := float32(p[k]) / 255
		p[k] = uint8(math32.Round((math32.Clamp(v, 0, 1)*a + dst*(1-a)) * 255))
	}
	da := float32(p[3]) / 255
	p[3] = uint8(math32.Round((a + da*(1-a)) * 255))
}

// mesh fills the triangles, interpolating the vertex colours.
func (r *renderer) mesh(ms *geom.Mesh) {
	bounds := r.img.Bounds()
	for t := 0; t+2 < len(ms.Indices); t += 3 {
		ia, ib, ic := int(ms.Indices[t]), int(ms.Indices[t+1]), int(ms.Indices[t+2])
		a, b, c := r.pixel(ms.Positions, ia), r.pixel(ms.Positions, ib), r.pixel(ms.Positions, ic)
		area := edge(a, b, c)
		if area == 0 {
			continue
		}
		ca, cb, cc := rgba(ms.Colors, ia), rgba(ms.Colors, ib), rgba(ms.Colors, ic)
		x0 := max(int(math32.Floor(min(a.X, b.X, c.X))), bounds.Min.X)
		x1 := min(int(math32.Ceil(max(a.X, b.X, c.X))), bounds.Max.X-1)
		y0 := max(int(math32.Floor(min(a.Y, b.Y, c.Y))), bounds.Min.Y)
		y1 := min(int(math32.Ceil(max(a.Y, b.Y, c.Y))), bounds.Max.Y-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				p := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
				wa, wb, wc := edge(b, c, p)/area, edge(c, a, p)/area, edge(a, b, p)/area
				if wa < 0 || wb < 0 || wc < 0 {
					continue
				}
				col := ca.MulScalar(wa).Add(cb.MulScalar(wb)).Add(cc.MulScalar(wc))
				r.blend(x, y, col)
			}
		}
	}
}

// edge is twice the signed area of a, b, p.
func edge(a, b, p math32.Vector2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func (r *renderer) edges(ms *geom.Mesh) {
	var positions, colors math32.ArrayF32
	for _, i := range ms.EdgeIndices() {
		positions = append(positions, ms.Positions[3*i:3*i+3]...)
		colors = append(colors, ms.Colors[4*i:4*i+4]...)
	}
	r.lines(positions, colors, 1)
}

func (r *renderer) rasterizer() *vector.Rasterizer {
	b := r.img.Bounds()
	if r.ras == nil {
		r.ras = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		r.ras.Reset(b.Dx(), b.Dy())
	}
	return r.ras
}

func (r *renderer) fill(ras *vector.Rasterizer, c math32.Vector4) {
	src := image.NewUniform(color.NRGBA64{
		R: to16(c.X), G: to16(c.Y), B: to16(c.Z), A: to16(c.W),
	})
	ras.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

func to16(v float32) uint16 {
	return uint16(math32.Round(math32.Clamp(v, 0, 1) * 0xffff))
}

// lines draws each segment as a quad thickness pixels wide, in the mean
// colour of its ends.
func (r *renderer) lines(positions, colors math32.ArrayF32, thickness float32) {
	half := max(thickness, 1) / 2
	for s := 0; 2*s+1 < len(positions)/3; s++ {
		a, b := r.pixel(positions, 2*s), r.pixel(positions, 2*s+1)
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			d = math32.Vec2(1, 0)
		} else {
			d = d.DivScalar(l)
		}
		n := math32.Vec2(-d.Y, d.X).MulScalar(half)
		// extend the ends so that consecutive segments join
		a, b = a.Sub(d.MulScalar(half)), b.Add(d.MulScalar(half))
		ras := r.rasterizer()
		ras.MoveTo(a.X+n.X, a.Y+n.Y)
		ras.LineTo(b.X+n.X, b.Y+n.Y)
		ras.LineTo(b.X-n.X, b.Y-n.Y)
		ras.LineTo(a.X-n.X, a.Y-n.Y)
		ras.ClosePath()
		c := rgba(colors, 2*s).Add(rgba(colors, 2*s+1)).MulScalar(0.5)
		r.fill(ras, c)
	}
}

const discSides = 16

// points draws each point as a disc of its size in pixels.
func (r *renderer) points(pt *geom.Points) {
	for i := range pt.NumVertex() {
		c := r.pixel(pt.Positions, i)
		radius := max(pt.Sizes[i], 1) / 2
		ras := r.rasterizer()
		for k := range discSides {
			a := 2 * math.Pi * float64(k) / discSides
			x := c.X + radius*float32(math.Cos(a))
			y := c.Y + radius*float32(math.Sin(a))
			if k == 0 {
				ras.MoveTo(x, y)
			} else {
				ras.LineTo(x, y)
			}
		}
		ras.ClosePath()
		r.fill(ras, rgba(pt.Colors, i))
	}
}

// labelFace is the fixed size face used for every label.
var labelFace = basicfont.Face7x13

// label draws the text with its box placed by the anchor.
func (r *renderer) label(lb *geom.Label) {
	x, y := r.cam.ToPixel(lb.Position.X, lb.Position.Y)
	metrics := labelFace.Metrics()
	w := float32(font.MeasureString(labelFace, lb.Text).Round())
	h := float32((metrics.Ascent + metrics.Descent).Round())
	off := lb.Anchor.Offset()
	left := x + off.X*w
	bottom := y - off.Y*h
	c := lb.Color
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(color.NRGBA{to8(c.X), to8(c.Y), to8(c.Z), to8(c.W)}),
		Face: labelFace,
		Dot:  fixed.P(int(math32.Round(left)), int(math32.Round(bottom))-metrics.Descent.Round()),
	}
	d.DrawString(lb.Text)
}

func to8(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}
