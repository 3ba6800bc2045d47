// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyzvisual

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/colour-science/colour-visuals/visuals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertex(gm *xyz.GenMesh, i uint32) math32.Vector3 {
	return math32.Vec3(gm.Vertex[3*i], gm.Vertex[3*i+1], gm.Vertex[3*i+2])
}

func TestRibbons(t *testing.T) {
	positions := math32.ArrayF32{0, 0, 0, 1, 0, 0}
	colors := math32.ArrayF32{1, 0, 0, 1, 0, 0, 1, 0.5}
	gm := Ribbons("r", positions, colors, 0.1)
	nv, ni, hasColor := gm.MeshSize()
	assert.Equal(t, 8, nv)
	assert.Equal(t, 12, ni)
	assert.True(t, hasColor)
	assert.True(t, gm.Transparent)
	assert.Len(t, gm.Normal, 24)
	assert.Len(t, gm.TexCoord, 16)
	assert.Len(t, gm.Color, 32)

	// every vertex is half the width off the segment axis
	for i := range uint32(8) {
		v := vertex(gm, i)
		assert.InDelta(t, 0.05, math32.Sqrt(v.Y*v.Y+v.Z*v.Z), 1e-6)
	}
	// start colour on the a end, end colour on the b end
	assert.Equal(t, []float32{1, 0, 0, 1}, []float32(gm.Color[0:4]))
	assert.Equal(t, []float32{0, 0, 1, 0.5}, []float32(gm.Color[8:12]))

	vertical := Ribbons("v", math32.ArrayF32{0, 0, 0, 0, 0, 2}, colors, 0.1)
	for i := range uint32(8) {
		v := vertex(vertical, i)
		assert.InDelta(t, 0.05, math32.Sqrt(v.X*v.X+v.Y*v.Y), 1e-6)
	}
}

func TestOctahedra(t *testing.T) {
	positions := math32.ArrayF32{0, 0, 0, 5, 5, 5}
	colors := math32.ArrayF32{1, 1, 1, 1, 0, 0, 0, 1}
	gm := Octahedra("o", positions, colors, math32.ArrayF32{1, 2}, 0.5)
	nv, ni, _ := gm.MeshSize()
	assert.Equal(t, 12, nv)
	assert.Equal(t, 48, ni)
	assert.False(t, gm.Transparent)
	assert.Equal(t, math32.Vec3(6, 5, 5), vertex(gm, 6))

	for f := 0; f < 24; f += 3 {
		a, b, c := vertex(gm, gm.Index[f]), vertex(gm, gm.Index[f+1]), vertex(gm, gm.Index[f+2])
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).DivScalar(3)
		assert.Greater(t, n.Dot(centroid), float32(0), "face %d faces outward", f/3)
	}
}

func TestNormals(t *testing.T) {
	ms, err := geom.Grid(3, 2)
	require.NoError(t, err)
	norms := Normals(ms.Positions, ms.Indices)
	require.Len(t, norms, len(ms.Positions))
	for i := 0; i < len(norms); i += 3 {
		assert.InDelta(t, 0, norms[i], 1e-6)
		assert.InDelta(t, 0, norms[i+1], 1e-6)
		assert.InDelta(t, 1, norms[i+2], 1e-6)
	}

	lone := Normals(math32.ArrayF32{0, 0, 0}, nil)
	assert.Equal(t, math32.ArrayF32{0, 0, 1}, lone)
}

func TestMeshOf(t *testing.T) {
	ms, err := geom.Cube(1, 1, 1)
	require.NoError(t, err)
	ms.Normals = nil
	ms.Material = geom.MaterialNormal
	gm := MeshOf("cube", ms)
	assert.Equal(t, "cube", gm.Name)
	assert.Len(t, gm.Normal, len(ms.Positions))
	for i := range ms.NumVertex() {
		for k := range 3 {
			assert.InDelta(t, gm.Normal[3*i+k]*0.5+0.5, gm.Color[4*i+k], 1e-6)
		}
	}
	// the source mesh is untouched
	assert.Equal(t, float32(1), ms.Colors[0])
}

func TestAdd(t *testing.T) {
	sc := xyz.NewScene()
	axes, err := visuals.NewAxes()
	require.NoError(t, err)

	gp, err := Add(sc, sc, axes)
	require.NoError(t, err)
	assert.Equal(t, "Axes", gp.Name)
	assert.Equal(t, len(axes.Primitives()), gp.NumChildren())
	assert.Equal(t, 1, sc.Meshes.Len())

	_, err = Add(sc, sc, axes)
	require.NoError(t, err)
	assert.Equal(t, 2, sc.Meshes.Len())

	group, err := visuals.NewChromaticityDiagramCIE1931(nil, func(v *visuals.ChromaticityDiagram) {
		v.Samples = 16
	})
	require.NoError(t, err)
	gp, err = Add(sc, sc, group)
	require.NoError(t, err)
	assert.Equal(t, len(group.Children()), gp.NumChildren())

	scatter, err := visuals.NewRGBScatter3D([]colour.Vec3{{0.1, 0.2, 0.3}})
	require.NoError(t, err)
	scatter.AsBase().Primitives()[0].(*geom.Points).Sizes = nil
	_, err = Add(sc, sc, scatter)
	assert.Error(t, err)
}

func TestFrame(t *testing.T) {
	sc := xyz.NewScene()
	Frame(sc, math32.B3(0, 0, 0, 1, 1, 0))
	assert.InDelta(t, 0.5, sc.Camera.Pose.Pos.X, 1e-6)
	assert.InDelta(t, 0.5, sc.Camera.Pose.Pos.Y, 1e-6)
	assert.Greater(t, sc.Camera.Pose.Pos.Z, float32(1))
}
