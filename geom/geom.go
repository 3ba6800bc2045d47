// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the renderer facing buffers produced by visuals:
// line segments, point clouds, triangle meshes and text labels, along with
// helpers that conform float64 colour science data to the float32 and
// uint32 layouts a GPU renderer expects.
package geom

//go:generate core generate

import "cogentcore.org/core/math32"

// Float is the renderer floating point type.
type Float = float32

// Index is the renderer index type.
type Index = uint32

// Primitive is a renderable buffer set.
type Primitive interface {

	// Validate checks that the buffers have consistent shapes.
	Validate() error

	// BBox returns the bounding box of the positions.
	BBox() math32.Box3
}

// MaterialTypes are the shading models of a [Mesh].
type MaterialTypes int32 //enums:enum -trim-prefix Material -accept-lower

const (
	// MaterialBasic is unlit vertex colour shading.
	MaterialBasic MaterialTypes = iota

	// MaterialPhong is lit shading.
	MaterialPhong

	// MaterialNormal shades by surface normal.
	MaterialNormal
)

// Anchors position a [Label] relative to its anchor point.
type Anchors int32 //enums:enum -accept-lower -line-comment

const (
	AnchorTopLeft      Anchors = iota // Top-Left
	AnchorTopCenter                   // Top-Center
	AnchorTopRight                    // Top-Right
	AnchorCenterLeft                  // Center-Left
	AnchorCenter                      // Center
	AnchorCenterRight                 // Center-Right
	AnchorBottomLeft                  // Bottom-Left
	AnchorBottomCenter                // Bottom-Center
	AnchorBottomRight                 // Bottom-Right
)

// Offset returns the lower left corner of the label box relative to the
// anchor point, as a fraction of the box size. y is up.
func (a Anchors) Offset() math32.Vector2 {
	if a < 0 || a >= AnchorsN {
		a = AnchorCenter
	}
	col, row := int(a)%3, int(a)/3
	return math32.Vec2(float32(-col)*0.5, float32(row)*0.5-1)
}
