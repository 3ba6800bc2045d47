// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
)

// Lines are independent line segments: consecutive pairs of positions
// are the two ends of one segment.
type Lines struct {

	// Positions are xyz triplets.
	Positions math32.ArrayF32

	// Colors are per vertex rgba quadruplets.
	Colors math32.ArrayF32

	// Thickness is the line width in renderer units.
	Thickness float32
}

// NumVertex returns the number of vertices.
func (ln *Lines) NumVertex() int { return len(ln.Positions) / 3 }

func (ln *Lines) Validate() error {
	if err := validateVertices("lines", ln.Positions, ln.Colors); err != nil {
		return err
	}
	if ln.NumVertex()%2 != 0 {
		return fmt.Errorf("lines: %d vertices is not an even number of segment ends", ln.NumVertex())
	}
	if ln.Thickness <= 0 {
		return fmt.Errorf("lines: thickness %g must be positive", ln.Thickness)
	}
	return nil
}

func (ln *Lines) BBox() math32.Box3 { return BBox(ln.Positions) }

// Points is a point cloud.
type Points struct {

	// Positions are xyz triplets.
	Positions math32.ArrayF32

	// Colors are per vertex rgba quadruplets.
	Colors math32.ArrayF32

	// Sizes are per vertex point sizes.
	Sizes math32.ArrayF32
}

// NumVertex returns the number of vertices.
func (pt *Points) NumVertex() int { return len(pt.Positions) / 3 }

func (pt *Points) Validate() error {
	if err := validateVertices("points", pt.Positions, pt.Colors); err != nil {
		return err
	}
	if len(pt.Sizes) != pt.NumVertex() {
		return fmt.Errorf("points: %d sizes for %d vertices", len(pt.Sizes), pt.NumVertex())
	}
	for _, s := range pt.Sizes {
		if s <= 0 {
			return fmt.Errorf("points: size %g must be positive", s)
		}
	}
	return nil
}

func (pt *Points) BBox() math32.Box3 { return BBox(pt.Positions) }

// Mesh is an indexed triangle mesh.
type Mesh struct {

	// Positions are xyz triplets.
	Positions math32.ArrayF32

	// Normals are optional xyz triplets, one per vertex.
	Normals math32.ArrayF32

	// Colors are per vertex rgba quadruplets.
	Colors math32.ArrayF32

	// Indices are vertex index triplets, one per triangle.
	Indices math32.ArrayU32

	// Edges are optional vertex index pairs drawn when Wireframe is on.
	// When empty the triangle edges are used.
	Edges math32.ArrayU32

	// Wireframe draws the edges instead of the faces.
	Wireframe bool

	// Material is the shading model.
	Material MaterialTypes
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int { return len(ms.Positions) / 3 }

func (ms *Mesh) Validate() error {
	if err := validateVertices("mesh", ms.Positions, ms.Colors); err != nil {
		return err
	}
	n := ms.NumVertex()
	if len(ms.Normals) != 0 && len(ms.Normals) != len(ms.Positions) {
		return fmt.Errorf("mesh: %d normal values for %d vertices", len(ms.Normals), n)
	}
	if len(ms.Indices)%3 != 0 {
		return fmt.Errorf("mesh: %d indices is not a multiple of 3", len(ms.Indices))
	}
	if len(ms.Edges)%2 != 0 {
		return fmt.Errorf("mesh: %d edge indices is not a multiple of 2", len(ms.Edges))
	}
	if err := validateIndices("mesh", ms.Indices, n); err != nil {
		return err
	}
	if err := validateIndices("mesh edges", ms.Edges, n); err != nil {
		return err
	}
	if ms.Material < 0 || ms.Material >= MaterialTypesN {
		return fmt.Errorf("mesh: invalid material %v", ms.Material)
	}
	return nil
}

func (ms *Mesh) BBox() math32.Box3 { return BBox(ms.Positions) }

// EdgeIndices returns the wireframe edges: [Mesh.Edges] when set,
// otherwise the unique edges of the triangles.
func (ms *Mesh) EdgeIndices() math32.ArrayU32 {
	if len(ms.Edges) > 0 {
		return ms.Edges
	}
	type edge struct{ a, b uint32 }
	seen := make(map[edge]bool, len(ms.Indices))
	var edges math32.ArrayU32
	for t := 0; t+2 < len(ms.Indices); t += 3 {
		for k := range 3 {
			a, b := ms.Indices[t+k], ms.Indices[t+(k+1)%3]
			if a > b {
				a, b = b, a
			}
			if seen[edge{a, b}] {
				continue
			}
			seen[edge{a, b}] = true
			edges = append(edges, a, b)
		}
	}
	return edges
}

// Label is a text annotation.
type Label struct {

	// Text is the label string.
	Text string

	// Position is the anchor point.
	Position math32.Vector3

	// Color is rgba in 0-1.
	Color math32.Vector4

	// Anchor is where the text sits relative to Position.
	Anchor Anchors

	// Size is the font size in points.
	Size float32
}

func (lb *Label) Validate() error {
	if lb.Size <= 0 {
		return fmt.Errorf("label %q: size %g must be positive", lb.Text, lb.Size)
	}
	if lb.Anchor < 0 || lb.Anchor >= AnchorsN {
		return fmt.Errorf("label %q: invalid anchor %v", lb.Text, lb.Anchor)
	}
	return nil
}

func (lb *Label) BBox() math32.Box3 {
	bb := math32.B3Empty()
	bb.ExpandByPoint(lb.Position)
	return bb
}

// BBox returns the bounding box of xyz position triplets.
func BBox(positions math32.ArrayF32) math32.Box3 {
	bb := math32.B3Empty()
	for i := 0; i+2 < len(positions); i += 3 {
		bb.ExpandByPoint(math32.Vec3(positions[i], positions[i+1], positions[i+2]))
	}
	return bb
}

// Bounds returns the union of the bounding boxes of the primitives.
func Bounds(prims ...Primitive) math32.Box3 {
	bb := math32.B3Empty()
	for _, p := range prims {
		pb := p.BBox()
		if !pb.IsEmpty() {
			bb.ExpandByBox(pb)
		}
	}
	return bb
}

// ValidateAll validates all primitives and joins their errors.
func ValidateAll(prims ...Primitive) error {
	var errs []error
	for _, p := range prims {
		errs = append(errs, p.Validate())
	}
	return errors.Join(errs...)
}

func validateVertices(kind string, positions, colors math32.ArrayF32) error {
	if len(positions)%3 != 0 {
		return fmt.Errorf("%s: %d position values is not a multiple of 3", kind, len(positions))
	}
	n := len(positions) / 3
	if len(colors) != 4*n {
		return fmt.Errorf("%s: %d color values for %d vertices, expected %d", kind, len(colors), n, 4*n)
	}
	return nil
}

func validateIndices(kind string, indices math32.ArrayU32, n int) error {
	for _, i := range indices {
		if int(i) >= n {
			return fmt.Errorf("%s: index %d out of range for %d vertices", kind, i, n)
		}
	}
	return nil
}
