// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

// ErrDegenerate is returned when points do not span a plane.
var ErrDegenerate = errors.New("geom: degenerate point set")

// Triangulate returns the Delaunay triangulation of planar points as
// counter clockwise index triplets into points. Repeated points are
// only referenced by their first occurrence.
func Triangulate[V ~[2]float64](points []V) ([]int, error) {
	var unique []int
	var pts []delaunay.Point
	seen := make(map[[2]float64]bool, len(points))
	for i, p := range points {
		k := [2]float64(p)
		if seen[k] || math.IsNaN(k[0]) || math.IsNaN(k[1]) {
			continue
		}
		seen[k] = true
		unique = append(unique, i)
		pts = append(pts, delaunay.Point{X: k[0], Y: k[1]})
	}
	if len(unique) < 3 {
		return nil, ErrDegenerate
	}
	tr, err := delaunay.Triangulate(pts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	out := make([]int, 0, len(tr.Triangles))
	for i := 0; i+2 < len(tr.Triangles); i += 3 {
		a, b, c := unique[tr.Triangles[i]], unique[tr.Triangles[i+1]], unique[tr.Triangles[i+2]]
		switch area := TriangleArea2(points[a], points[b], points[c]); {
		case area > 0:
			out = append(out, a, b, c)
		case area < 0:
			out = append(out, a, c, b)
		}
	}
	if len(out) == 0 {
		return nil, ErrDegenerate
	}
	return out, nil
}

// TriangleArea2 returns twice the signed area of triangle abc,
// positive when counter clockwise.
func TriangleArea2[V ~[2]float64](a, b, c V) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}
