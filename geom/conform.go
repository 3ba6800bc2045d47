// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
)

// AsArrayF32 conforms float64 values to the renderer float type.
func AsArrayF32(vs []float64) math32.ArrayF32 {
	a := make(math32.ArrayF32, len(vs))
	for i, v := range vs {
		a[i] = Float(v)
	}
	return a
}

// AsArrayF32Vec3 conforms triplets to a flat renderer float array.
func AsArrayF32Vec3[V ~[3]float64](vs []V) math32.ArrayF32 {
	a := make(math32.ArrayF32, 0, 3*len(vs))
	for _, v := range vs {
		a = append(a, Float(v[0]), Float(v[1]), Float(v[2]))
	}
	return a
}

// AsArrayF32Vec2 conforms pairs to a flat renderer float array.
func AsArrayF32Vec2[V ~[2]float64](vs []V) math32.ArrayF32 {
	a := make(math32.ArrayF32, 0, 2*len(vs))
	for _, v := range vs {
		a = append(a, Float(v[0]), Float(v[1]))
	}
	return a
}

// AsPositionsXY conforms planar pairs to xyz positions at the given z.
func AsPositionsXY[V ~[2]float64](vs []V, z float64) math32.ArrayF32 {
	a := make(math32.ArrayF32, 0, 3*len(vs))
	for _, v := range vs {
		a = append(a, Float(v[0]), Float(v[1]), Float(z))
	}
	return a
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AsArrayU32 conforms integers to the renderer index type.
// Values that do not fit are an error.
func AsArrayU32[I integer](vs []I) (math32.ArrayU32, error) {
	a := make(math32.ArrayU32, len(vs))
	for i, v := range vs {
		if v < 0 || uint64(v) > math.MaxUint32 {
			return nil, fmt.Errorf("geom: index %d at %d does not fit in uint32", v, i)
		}
		a[i] = Index(v)
	}
	return a, nil
}

// Segments expands a polyline into segment end pairs, so that the n points
// p0, p1, ..., pn-1 become p0, p1, p1, p2, ..., pn-2, pn-1.
func Segments[T any](polyline []T) []T {
	if len(polyline) < 2 {
		return nil
	}
	s := make([]T, 0, 2*(len(polyline)-1))
	for i := 1; i < len(polyline); i++ {
		s = append(s, polyline[i-1], polyline[i])
	}
	return s
}

// ClosedSegments is [Segments] with the last point joined back to the first.
func ClosedSegments[T any](polygon []T) []T {
	if len(polygon) < 2 {
		return nil
	}
	return append(Segments(polygon), polygon[len(polygon)-1], polygon[0])
}

// AppendAlpha conforms rgb triplets to flat rgba with the given alpha.
func AppendAlpha[V ~[3]float64](rgb []V, alpha float64) math32.ArrayF32 {
	a := make(math32.ArrayF32, 0, 4*len(rgb))
	for _, c := range rgb {
		a = append(a, Float(c[0]), Float(c[1]), Float(c[2]), Float(alpha))
	}
	return a
}

// Tile repeats one rgba colour n times.
func Tile(rgba math32.Vector4, n int) math32.ArrayF32 {
	a := make(math32.ArrayF32, 0, 4*n)
	for range n {
		a = append(a, rgba.X, rgba.Y, rgba.Z, rgba.W)
	}
	return a
}

// Fill returns n copies of v.
func Fill(v float32, n int) math32.ArrayF32 {
	a := make(math32.ArrayF32, n)
	for i := range a {
		a[i] = v
	}
	return a
}

// RGBA returns an rgba vector from an rgb triplet and alpha.
func RGBA[V ~[3]float64](rgb V, alpha float64) math32.Vector4 {
	return math32.Vec4(Float(rgb[0]), Float(rgb[1]), Float(rgb[2]), Float(alpha))
}

// Gray returns an opaque gray level.
func Gray(v float32) math32.Vector4 {
	return math32.Vec4(v, v, v, 1)
}
