// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Grid returns a unit plane in xy, centred on the origin and divided into
// width by height segments. Normals point along +z, the triangles are
// counter clockwise and the edges outline every segment quad.
// Colors are opaque white.
func Grid(width, height int) (*Mesh, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("geom: grid segments %dx%d must be at least 1", width, height)
	}
	ms := &Mesh{}
	setPlane(ms, 0, 1, 2, 0, width, height)
	ms.Colors = Tile(Gray(1), ms.NumVertex())
	return ms, nil
}

// Cube returns a unit cube centred on the origin, each face divided into
// the segments of its two axes. Faces do not share vertices so each has
// its own normal. Edges outline every segment quad.
// Colors are opaque white.
func Cube(width, height, depth int) (*Mesh, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, fmt.Errorf("geom: cube segments %dx%dx%d must be at least 1", width, height, depth)
	}
	segs := [3]int{width, height, depth}
	ms := &Mesh{}
	for n := range 3 {
		u, v := (n+1)%3, (n+2)%3
		for _, sign := range []float32{-0.5, 0.5} {
			setPlane(ms, u, v, n, sign, segs[u], segs[v])
		}
	}
	ms.Colors = Tile(Gray(1), ms.NumVertex())
	return ms, nil
}

// setPlane appends a unit square spanning axes u and v at offset on axis n.
// With (u, v, n) cyclic, u cross v is +n, so faces at negative offsets are
// wound the other way to face outward.
func setPlane(ms *Mesh, u, v, n int, offset float32, segU, segV int) {
	base := uint32(ms.NumVertex())
	normal := [3]float32{}
	switch {
	case offset < 0:
		normal[n] = -1
	default:
		normal[n] = 1
	}
	for j := 0; j <= segV; j++ {
		for i := 0; i <= segU; i++ {
			var p [3]float32
			p[u] = float32(i)/float32(segU) - 0.5
			p[v] = float32(j)/float32(segV) - 0.5
			p[n] = offset
			ms.Positions = append(ms.Positions, p[0], p[1], p[2])
			ms.Normals = append(ms.Normals, normal[0], normal[1], normal[2])
		}
	}
	stride := uint32(segU + 1)
	at := func(i, j int) uint32 { return base + uint32(j)*stride + uint32(i) }
	for j := range segV {
		for i := range segU {
			a, b, c, d := at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1)
			if offset < 0 {
				ms.Indices = append(ms.Indices, a, c, b, a, d, c)
			} else {
				ms.Indices = append(ms.Indices, a, b, c, a, c, d)
			}
		}
	}
	for j := 0; j <= segV; j++ {
		for i := range segU {
			ms.Edges = append(ms.Edges, at(i, j), at(i+1, j))
		}
	}
	for i := 0; i <= segU; i++ {
		for j := range segV {
			ms.Edges = append(ms.Edges, at(i, j), at(i, j+1))
		}
	}
}

// Transform applies scale then translation to xyz positions in place.
func Transform(positions math32.ArrayF32, scale, translate math32.Vector3) {
	for i := 0; i+2 < len(positions); i += 3 {
		positions[i] = positions[i]*scale.X + translate.X
		positions[i+1] = positions[i+1]*scale.Y + translate.Y
		positions[i+2] = positions[i+2]*scale.Z + translate.Z
	}
}
