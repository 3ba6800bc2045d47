// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"reflect"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformTypes(t *testing.T) {
	f := AsArrayF32([]float64{0.1, 2, -3})
	assert.Equal(t, reflect.Float32, reflect.TypeOf(f).Elem().Kind())
	assert.Equal(t, math32.ArrayF32{0.1, 2, -3}, f)

	v3 := AsArrayF32Vec3([][3]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, math32.ArrayF32{1, 2, 3, 4, 5, 6}, v3)
	v2 := AsArrayF32Vec2([][2]float64{{1, 2}, {3, 4}})
	assert.Equal(t, math32.ArrayF32{1, 2, 3, 4}, v2)
	xy := AsPositionsXY([][2]float64{{1, 2}}, -0.5)
	assert.Equal(t, math32.ArrayF32{1, 2, -0.5}, xy)

	u, err := AsArrayU32([]int{0, 1, 4294967295})
	require.NoError(t, err)
	assert.Equal(t, reflect.Uint32, reflect.TypeOf(u).Elem().Kind())
	assert.Equal(t, math32.ArrayU32{0, 1, 4294967295}, u)
	u8, err := AsArrayU32([]uint8{7})
	require.NoError(t, err)
	assert.Equal(t, math32.ArrayU32{7}, u8)

	_, err = AsArrayU32([]int{1, -1})
	assert.Error(t, err)
	_, err = AsArrayU32([]int64{1 << 40})
	assert.Error(t, err)
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3}, Segments([]int{0, 1, 2, 3}))
	assert.Nil(t, Segments([]int{0}))
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0}, ClosedSegments([]int{0, 1, 2}))
}

func TestColors(t *testing.T) {
	c := AppendAlpha([][3]float64{{1, 0.5, 0}}, 0.25)
	assert.Equal(t, math32.ArrayF32{1, 0.5, 0, 0.25}, c)
	assert.Equal(t, math32.ArrayF32{1, 1, 1, 1, 1, 1, 1, 1}, Tile(Gray(1), 2))
	assert.Equal(t, math32.ArrayF32{2, 2, 2}, Fill(2, 3))
	assert.Equal(t, math32.Vec4(1, 0, 0, 0.5), RGBA([3]float64{1, 0, 0}, 0.5))
}

func TestValidate(t *testing.T) {
	ln := &Lines{
		Positions: math32.ArrayF32{0, 0, 0, 1, 1, 1},
		Colors:    Tile(Gray(1), 2),
		Thickness: 1,
	}
	assert.NoError(t, ln.Validate())
	ln.Thickness = 0
	assert.Error(t, ln.Validate())
	ln.Thickness = 1
	ln.Positions = append(ln.Positions, 2, 2, 2)
	ln.Colors = Tile(Gray(1), 3)
	assert.Error(t, ln.Validate())
	ln.Positions = ln.Positions[:5]
	assert.Error(t, ln.Validate())

	pt := &Points{Positions: math32.ArrayF32{0, 0, 0}, Colors: Tile(Gray(1), 1), Sizes: Fill(1, 1)}
	assert.NoError(t, pt.Validate())
	pt.Sizes = nil
	assert.Error(t, pt.Validate())
	pt.Sizes = Fill(0, 1)
	assert.Error(t, pt.Validate())

	ms, err := Grid(1, 1)
	require.NoError(t, err)
	assert.NoError(t, ms.Validate())
	ms.Indices = append(ms.Indices, 0, 1, 9)
	assert.Error(t, ms.Validate())
	ms.Indices = ms.Indices[:len(ms.Indices)-3]
	ms.Colors = ms.Colors[:4]
	assert.Error(t, ms.Validate())

	lb := &Label{Text: "x", Size: 12}
	assert.NoError(t, lb.Validate())
	lb.Size = 0
	assert.Error(t, lb.Validate())

	assert.Error(t, ValidateAll(ln, lb))
}

func TestGrid(t *testing.T) {
	ms, err := Grid(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 5*3, ms.NumVertex())
	assert.Len(t, ms.Indices, 4*2*6)
	// 3 rows of 4 horizontal edges, 5 columns of 2 vertical edges
	assert.Len(t, ms.Edges, 2*(3*4+5*2))
	bb := ms.BBox()
	assert.Equal(t, math32.Vec3(-0.5, -0.5, 0), bb.Min)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0), bb.Max)
	for i := 0; i < len(ms.Indices); i += 3 {
		a, b, c := vertex2(ms, ms.Indices[i]), vertex2(ms, ms.Indices[i+1]), vertex2(ms, ms.Indices[i+2])
		assert.Greater(t, TriangleArea2(a, b, c), 0.0)
	}

	_, err = Grid(0, 1)
	assert.Error(t, err)
}

func vertex2(ms *Mesh, i uint32) [2]float64 {
	return [2]float64{float64(ms.Positions[3*i]), float64(ms.Positions[3*i+1])}
}

func TestCube(t *testing.T) {
	ms, err := Cube(1, 2, 3)
	require.NoError(t, err)
	require.NoError(t, ms.Validate())
	// faces: yz 2x3, zx 3x1, xy 1x2, two of each
	assert.Equal(t, 2*(3*4+4*2+2*3), ms.NumVertex())
	assert.Len(t, ms.Indices, 2*6*(6+3+2))
	bb := ms.BBox()
	assert.Equal(t, math32.Vec3(-0.5, -0.5, -0.5), bb.Min)
	assert.Equal(t, math32.Vec3(0.5, 0.5, 0.5), bb.Max)

	// outward facing triangles: the normal agrees with the winding
	for i := 0; i < len(ms.Indices); i += 3 {
		p := func(k uint32) math32.Vector3 {
			return math32.Vec3(ms.Positions[3*k], ms.Positions[3*k+1], ms.Positions[3*k+2])
		}
		a, b, c := p(ms.Indices[i]), p(ms.Indices[i+1]), p(ms.Indices[i+2])
		n := b.Sub(a).Cross(c.Sub(a))
		k := ms.Indices[i]
		normal := math32.Vec3(ms.Normals[3*k], ms.Normals[3*k+1], ms.Normals[3*k+2])
		assert.Greater(t, n.Dot(normal), float32(0))
		assert.Greater(t, a.Dot(normal), float32(0))
	}

	_, err = Cube(1, 0, 1)
	assert.Error(t, err)
}

func TestEdgeIndices(t *testing.T) {
	ms := &Mesh{
		Positions: math32.ArrayF32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		Colors:    Tile(Gray(1), 4),
		Indices:   math32.ArrayU32{0, 1, 2, 0, 2, 3},
	}
	assert.Len(t, ms.EdgeIndices(), 2*5)
	ms.Edges = math32.ArrayU32{0, 1}
	assert.Equal(t, math32.ArrayU32{0, 1}, ms.EdgeIndices())
}

func TestTriangulate(t *testing.T) {
	square := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}
	tris, err := Triangulate(square)
	require.NoError(t, err)
	assert.Len(t, tris, 6)
	for _, i := range tris {
		assert.NotEqual(t, 4, i)
	}

	// the boundary stays on the unit square, interior points are jittered
	var pts [][2]float64
	for i, x := range Linspace(0, 1, 6) {
		for j, y := range Linspace(0, 1, 5) {
			p := [2]float64{x, y}
			if i > 0 && i < 5 && j > 0 && j < 4 {
				p[0] += 0.01 * float64((i*7+j*3)%5-2)
				p[1] += 0.01 * float64((i*3+j*5)%7-3)
			}
			pts = append(pts, p)
		}
	}
	pts = append(pts, [2]float64{0.31, 0.47}, [2]float64{0.77, 0.12})
	tris, err = Triangulate(pts)
	require.NoError(t, err)
	require.Zero(t, len(tris)%3)

	area := 0.0
	for i := 0; i < len(tris); i += 3 {
		a, b, c := pts[tris[i]], pts[tris[i+1]], pts[tris[i+2]]
		a2 := TriangleArea2(a, b, c)
		assert.Greater(t, a2, 0.0)
		area += a2 / 2
	}
	assert.InDelta(t, 1, area, 1e-9)

	_, err = Triangulate([][2]float64{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, ErrDegenerate)
	_, err = Triangulate([][2]float64{{0, 0}, {1, 1}, {2, 2}})
	assert.ErrorIs(t, err, ErrDegenerate)
}

// no point lies inside the circumcircle of a triangle
func TestTriangulateEmptyCircumcircles(t *testing.T) {
	var pts [][2]float64
	for i := range 40 {
		a := 2.399963 * float64(i)
		r := 0.1 + 0.02*float64(i)
		pts = append(pts, [2]float64{r * math.Cos(a), r * math.Sin(a)})
	}
	tris, err := Triangulate(pts)
	require.NoError(t, err)
	for i := 0; i < len(tris); i += 3 {
		a, b, c := pts[tris[i]], pts[tris[i+1]], pts[tris[i+2]]
		require.Greater(t, TriangleArea2(a, b, c), 0.0)
		for j, p := range pts {
			if j == tris[i] || j == tris[i+1] || j == tris[i+2] {
				continue
			}
			assert.LessOrEqual(t, inCircle(a, b, c, p), 1e-9, "point %d inside triangle %d", j, i/3)
		}
	}
}

// inCircle is positive when p is inside the circumcircle of the counter
// clockwise triangle abc.
func inCircle(a, b, c, p [2]float64) float64 {
	ax, ay := a[0]-p[0], a[1]-p[1]
	bx, by := b[0]-p[0], b[1]-p[1]
	cx, cy := c[0]-p[0], c[1]-p[1]
	return (ax*ax+ay*ay)*(bx*cy-cx*by) - (bx*bx+by*by)*(ax*cy-cx*ay) + (cx*cx+cy*cy)*(ax*by-bx*ay)
}

func TestInside(t *testing.T) {
	tri := [][2]float64{{0, 0}, {1, 0}, {0, 1}}
	assert.True(t, Inside(tri, [2]float64{0.2, 0.2}))
	assert.False(t, Inside(tri, [2]float64{0.8, 0.8}))
	assert.False(t, Inside(tri, [2]float64{-0.1, 0.5}))
	assert.False(t, Inside(nil, [2]float64{0, 0}))
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{3}, Linspace(3, 4, 1))
	assert.Nil(t, Linspace(0, 1, 0))
}

func TestAnchors(t *testing.T) {
	assert.Equal(t, math32.Vec2(0, -1), AnchorTopLeft.Offset())
	assert.Equal(t, math32.Vec2(-0.5, -0.5), AnchorCenter.Offset())
	assert.Equal(t, math32.Vec2(-1, 0), AnchorBottomRight.Offset())
	var a Anchors
	require.NoError(t, a.SetString("center-right"))
	assert.Equal(t, AnchorCenterRight, a)
	assert.Error(t, a.SetString("middle"))
	assert.Equal(t, "12", Anchors(12).String())
	assert.Len(t, AnchorsValues(), int(AnchorsN))
	assert.Equal(t, "Bottom-Center", AnchorBottomCenter.String())

	var m MaterialTypes
	require.NoError(t, m.UnmarshalText([]byte("phong")))
	assert.Equal(t, MaterialPhong, m)
	assert.Equal(t, "Normal", MaterialNormal.String())
	assert.Equal(t, "MaterialPhong is lit shading.", MaterialPhong.Desc())
	assert.Len(t, m.Values(), int(MaterialTypesN))
	assert.Error(t, m.SetString("Lambert"))
}
