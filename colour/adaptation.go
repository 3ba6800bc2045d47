// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"fmt"
	"strings"
)

// Adaptations are the von Kries chromatic adaptation transforms.
type Adaptations int32 //enums:enum -accept-lower -line-comment

const (
	// CAT02 is the CIECAM02 chromatic adaptation transform.
	CAT02 Adaptations = iota

	// Bradford is the Bradford chromatic adaptation transform.
	Bradford

	// NoAdaptation skips chromatic adaptation.
	NoAdaptation // None
)

var adaptationMatrices = [...]Matrix3{
	CAT02: {
		{0.7328, 0.4296, -0.1624},
		{-0.7036, 1.6975, 0.0061},
		{0.0030, 0.0136, 0.9834},
	},
	Bradford: {
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	},
}

// ParseAdaptation returns the transform with the given case insensitive
// name.
func ParseAdaptation(s string) (Adaptations, error) {
	var a Adaptations
	if err := a.SetString(strings.ToLower(strings.TrimSpace(s))); err != nil {
		return a, unknownName("chromatic adaptation transform", s, enumNames(AdaptationsValues()))
	}
	return a, nil
}

// AdaptationMatrix returns the matrix adapting XYZ values from the source
// to the target whitepoint with the given transform.
func AdaptationMatrix(source, target XY, cat Adaptations) (Matrix3, error) {
	if cat == NoAdaptation || source == target {
		return Identity3, nil
	}
	if cat < 0 || int(cat) >= len(adaptationMatrices) {
		return Matrix3{}, fmt.Errorf("chromatic adaptation: invalid transform %v", cat)
	}
	m := adaptationMatrices[cat]
	inv, err := m.Inverse()
	if err != nil {
		return Matrix3{}, err
	}
	src := m.MulVec(XYToXYZ(source))
	dst := m.MulVec(XYToXYZ(target))
	d := Diagonal(Vec3{dst[0] / src[0], dst[1] / src[1], dst[2] / src[2]})
	return inv.Mul(d.Mul(m)), nil
}

// Adapt adapts XYZ values from the source to the target whitepoint.
func Adapt(xyz Vec3, source, target XY, cat Adaptations) (Vec3, error) {
	m, err := AdaptationMatrix(source, target, cat)
	if err != nil {
		return Vec3{}, err
	}
	return m.MulVec(xyz), nil
}
