// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"slices"

	"cogentcore.org/core/math32"
	"github.com/colour-science/colour-visuals/geom"
)

// Tilt returns copies of the primitives rotated by angle radians about the
// x axis. The triangles of the meshes are sorted back to front so that
// drawing them in order hides the far faces.
func Tilt(angle float32, prims ...geom.Primitive) []geom.Primitive {
	sin, cos := math32.Sin(angle), math32.Cos(angle)
	rotate := func(positions math32.ArrayF32) math32.ArrayF32 {
		if positions == nil {
			return nil
		}
		out := make(math32.ArrayF32, len(positions))
		for i := 0; i+2 < len(positions); i += 3 {
			y, z := positions[i+1], positions[i+2]
			out[i] = positions[i]
			out[i+1] = y*cos - z*sin
			out[i+2] = y*sin + z*cos
		}
		return out
	}
	tilted := make([]geom.Primitive, 0, len(prims))
	for _, p := range prims {
		switch p := p.(type) {
		case *geom.Lines:
			ln := *p
			ln.Positions = rotate(p.Positions)
			tilted = append(tilted, &ln)
		case *geom.Points:
			pt := *p
			pt.Positions = rotate(p.Positions)
			tilted = append(tilted, &pt)
		case *geom.Mesh:
			ms := *p
			ms.Positions = rotate(p.Positions)
			ms.Normals = rotate(p.Normals)
			ms.Indices = BackToFront(ms.Positions, p.Indices)
			tilted = append(tilted, &ms)
		case *geom.Label:
			lb := *p
			y, z := lb.Position.Y, lb.Position.Z
			lb.Position.Y = y*cos - z*sin
			lb.Position.Z = y*sin + z*cos
			tilted = append(tilted, &lb)
		default:
			tilted = append(tilted, p)
		}
	}
	return tilted
}

// BackToFront returns the triangle indices ordered by increasing mean z,
// the drawing order for a camera looking down the z axis.
func BackToFront(positions math32.ArrayF32, indices math32.ArrayU32) math32.ArrayU32 {
	n := len(indices) / 3
	depth := make([]float32, n)
	order := make([]int, n)
	for t := range n {
		order[t] = t
		for _, i := range indices[3*t : 3*t+3] {
			depth[t] += positions[3*i+2]
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case depth[a] < depth[b]:
			return -1
		case depth[a] > depth[b]:
			return 1
		}
		return 0
	})
	sorted := make(math32.ArrayU32, 0, len(indices))
	for _, t := range order {
		sorted = append(sorted, indices[3*t:3*t+3]...)
	}
	return sorted
}
