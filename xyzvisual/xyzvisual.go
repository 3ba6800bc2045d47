// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzvisual adds visuals to an [xyz.Scene], turning their lines,
// points, meshes and labels into solids and text nodes.
package xyzvisual

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/text/text"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/colour-science/colour-visuals/visuals"
)

// Scale factors from visual units to scene units.
var (
	// LineWidth is the ribbon width per unit of line thickness.
	LineWidth float32 = 1.0 / 500

	// PointSize is the octahedron radius per unit of point size.
	PointSize float32 = 1.0 / 1000

	// LabelScale is the text scale per font point.
	LabelScale float32 = 1.0 / 1200
)

// Add adds a group named after the visual to parent, holding one node per
// primitive and one sub group per child visual. The meshes are added to sc
// under unique names.
func Add(sc *xyz.Scene, parent tree.Node, v visuals.Visual) (*xyz.Group, error) {
	gp := xyz.NewGroup(parent)
	gp.SetName(v.Name())
	for i, p := range v.Primitives() {
		if err := p.Validate(); err != nil {
			return gp, fmt.Errorf("%s: %w", v.Name(), err)
		}
		addPrimitive(sc, gp, fmt.Sprintf("%s-%d", v.Name(), i), p)
	}
	for _, c := range v.Children() {
		if _, err := Add(sc, gp, c); err != nil {
			return gp, err
		}
	}
	return gp, nil
}

func addPrimitive(sc *xyz.Scene, gp *xyz.Group, name string, p geom.Primitive) {
	switch p := p.(type) {
	case *geom.Lines:
		sld := addSolid(sc, gp, name, Ribbons(name, p.Positions, p.Colors, p.Thickness*LineWidth))
		unlit(sld)
	case *geom.Points:
		sld := addSolid(sc, gp, name, Octahedra(name, p.Positions, p.Colors, p.Sizes, PointSize))
		unlit(sld)
	case *geom.Mesh:
		if p.Wireframe {
			pos, cols := edgeSegments(p)
			sld := addSolid(sc, gp, name, Ribbons(name, pos, cols, LineWidth))
			unlit(sld)
			return
		}
		sld := addSolid(sc, gp, name, MeshOf(name, p))
		sld.Material.CullBack = false
		if p.Material == geom.MaterialBasic {
			unlit(sld)
		}
	case *geom.Label:
		addLabel(gp, name, p)
	}
}

func addSolid(sc *xyz.Scene, gp *xyz.Group, name string, ms *xyz.GenMesh) *xyz.Solid {
	sc.AddMeshUnique(ms)
	sld := xyz.NewSolid(gp)
	sld.SetName(name)
	sld.SetMesh(ms).SetColor(color.RGBA{255, 255, 255, 255})
	return sld
}

// unlit turns off the specular highlights and back face culling.
func unlit(sld *xyz.Solid) {
	sld.SetShiny(0).SetReflective(0)
	sld.Material.CullBack = false
}

func addLabel(gp *xyz.Group, name string, lb *geom.Label) *xyz.Text2D {
	txt := xyz.NewText2D(gp)
	txt.SetName(name)
	txt.Text = lb.Text
	c := lb.Color
	txt.Styles.Color = colors.Uniform(color.RGBA{to8(c.X), to8(c.Y), to8(c.Z), to8(c.W)})
	col, row := int(lb.Anchor)%3, int(lb.Anchor)/3
	aligns := [3]text.Aligns{text.Start, text.Center, text.End}
	txt.Styles.Text.Align = aligns[col]
	txt.Styles.Text.AlignV = aligns[row]
	txt.Pose.Pos = lb.Position
	txt.Pose.Scale.SetScalar(lb.Size * LabelScale)
	return txt
}

func to8(v float32) uint8 {
	return uint8(math32.Round(math32.Clamp(v, 0, 1) * 255))
}

// MeshOf returns the [xyz.GenMesh] of a triangle mesh, computing smooth
// normals when the mesh has none. [geom.MaterialNormal] meshes are
// coloured by their normals.
func MeshOf(name string, ms *geom.Mesh) *xyz.GenMesh {
	n := ms.NumVertex()
	gm := &xyz.GenMesh{
		Vertex:   append(math32.ArrayF32(nil), ms.Positions...),
		Normal:   ms.Normals,
		TexCoord: make(math32.ArrayF32, 2*n),
		Color:    append(math32.ArrayF32(nil), ms.Colors...),
		Index:    append(math32.ArrayU32(nil), ms.Indices...),
	}
	gm.Name = name
	if len(gm.Normal) != len(gm.Vertex) {
		gm.Normal = Normals(gm.Vertex, gm.Index)
	}
	if ms.Material == geom.MaterialNormal {
		for i := range n {
			for k := range 3 {
				gm.Color[4*i+k] = gm.Normal[3*i+k]*0.5 + 0.5
			}
		}
	}
	setColor(gm)
	return gm
}

func setColor(gm *xyz.GenMesh) {
	gm.HasColor = len(gm.Color) > 0
	for i := 3; i < len(gm.Color); i += 4 {
		if gm.Color[i] < 1 {
			gm.Transparent = true
			return
		}
	}
}

// Normals returns the area weighted vertex normals of a triangle mesh.
// Vertices on no triangle get +z.
func Normals(positions math32.ArrayF32, indices math32.ArrayU32) math32.ArrayF32 {
	norms := make(math32.ArrayF32, len(positions))
	at := func(i uint32) math32.Vector3 {
		return math32.Vec3(positions[3*i], positions[3*i+1], positions[3*i+2])
	}
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		pa := at(a)
		fn := at(b).Sub(pa).Cross(at(c).Sub(pa))
		for _, i := range []uint32{a, b, c} {
			norms[3*i] += fn.X
			norms[3*i+1] += fn.Y
			norms[3*i+2] += fn.Z
		}
	}
	for i := 0; i+2 < len(norms); i += 3 {
		v := math32.Vec3(norms[i], norms[i+1], norms[i+2])
		l := v.Length()
		if l == 0 {
			v = math32.Vec3(0, 0, 1)
		} else {
			v = v.DivScalar(l)
		}
		norms[i], norms[i+1], norms[i+2] = v.X, v.Y, v.Z
	}
	return norms
}

// Ribbons returns line segments as two crossed quads each, so that the
// lines stay visible from every direction. positions holds the segment
// ends and colors their rgba values.
func Ribbons(name string, positions, colors math32.ArrayF32, width float32) *xyz.GenMesh {
	gm := &xyz.GenMesh{}
	gm.Name = name
	half := width / 2
	for s := 0; s+5 < len(positions); s += 6 {
		a := math32.Vec3(positions[s], positions[s+1], positions[s+2])
		b := math32.Vec3(positions[s+3], positions[s+4], positions[s+5])
		ca := colors[4*(s/3) : 4*(s/3)+4]
		cb := colors[4*(s/3+1) : 4*(s/3+1)+4]
		d := b.Sub(a)
		if l := d.Length(); l > 0 {
			d = d.DivScalar(l)
		} else {
			d = math32.Vec3(1, 0, 0)
		}
		u := d.Cross(math32.Vec3(0, 0, 1))
		if u.Length() < 1e-3 {
			u = d.Cross(math32.Vec3(1, 0, 0))
		}
		u = u.Normal()
		w := d.Cross(u).Normal()
		quad(gm, a, b, u.MulScalar(half), w, ca, cb)
		quad(gm, a, b, w.MulScalar(half), u, ca, cb)
	}
	setColor(gm)
	return gm
}

// quad appends the quad from a to b offset by ±off, facing norm.
func quad(gm *xyz.GenMesh, a, b, off, norm math32.Vector3, ca, cb []float32) {
	base := uint32(len(gm.Vertex) / 3)
	for _, p := range []math32.Vector3{a.Sub(off), a.Add(off), b.Add(off), b.Sub(off)} {
		gm.Vertex = append(gm.Vertex, p.X, p.Y, p.Z)
		gm.Normal = append(gm.Normal, norm.X, norm.Y, norm.Z)
		gm.TexCoord = append(gm.TexCoord, 0, 0)
	}
	gm.Color = append(gm.Color, ca...)
	gm.Color = append(gm.Color, ca...)
	gm.Color = append(gm.Color, cb...)
	gm.Color = append(gm.Color, cb...)
	gm.Index = append(gm.Index, base, base+1, base+2, base, base+2, base+3)
}

var octahedron = [6]math32.Vector3{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
}

// octahedronFaces are CCW seen from outside.
var octahedronFaces = [8][3]uint32{
	{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
	{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
}

// Octahedra returns one octahedron per point, of radius size times scale.
func Octahedra(name string, positions, colors, sizes math32.ArrayF32, scale float32) *xyz.GenMesh {
	gm := &xyz.GenMesh{}
	gm.Name = name
	for i := 0; 3*i+2 < len(positions); i++ {
		c := math32.Vec3(positions[3*i], positions[3*i+1], positions[3*i+2])
		r := sizes[i] * scale
		base := uint32(len(gm.Vertex) / 3)
		for _, v := range octahedron {
			p := c.Add(v.MulScalar(r))
			gm.Vertex = append(gm.Vertex, p.X, p.Y, p.Z)
			gm.Normal = append(gm.Normal, v.X, v.Y, v.Z)
			gm.TexCoord = append(gm.TexCoord, 0, 0)
			gm.Color = append(gm.Color, colors[4*i:4*i+4]...)
		}
		for _, f := range octahedronFaces {
			gm.Index = append(gm.Index, base+f[0], base+f[1], base+f[2])
		}
	}
	setColor(gm)
	return gm
}

// edgeSegments returns the positions and colours of the mesh edges as
// line segment ends.
func edgeSegments(ms *geom.Mesh) (positions, colors math32.ArrayF32) {
	for _, i := range ms.EdgeIndices() {
		positions = append(positions, ms.Positions[3*i:3*i+3]...)
		colors = append(colors, ms.Colors[4*i:4*i+4]...)
	}
	return positions, colors
}

// Frame sets the background, adds the default lights and points the
// camera at the centre of bb from the +z side, far enough to see all of it.
func Frame(sc *xyz.Scene, bb math32.Box3) {
	sc.Background = colors.Scheme.Surface
	xyz.NewAmbient(sc, "ambient", 0.5, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 1, xyz.DirectSun)
	dir.Pos.Set(0, 2, 1)

	if bb.IsEmpty() {
		bb = math32.B3(-1, -1, -1, 1, 1, 1)
	}
	centre := bb.Min.Add(bb.Max).MulScalar(0.5)
	size := bb.Max.Sub(bb.Min)
	dist := max(size.X, size.Y, size.Z) * 1.5
	sc.Camera.Pose.Pos = centre.Add(math32.Vec3(0, 0, max(dist, 0.5)))
	sc.Camera.LookAt(centre, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")
}
