// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import "strings"

// Methods are the chromaticity diagram methods.
type Methods int32 //enums:enum -accept-lower -line-comment

const (
	// CIE1931 is the CIE 1931 xy chromaticity diagram.
	CIE1931 Methods = iota // CIE 1931

	// CIE1960UCS is the CIE 1960 UCS uv chromaticity diagram.
	CIE1960UCS // CIE 1960 UCS

	// CIE1976UCS is the CIE 1976 UCS u'v' chromaticity diagram.
	CIE1976UCS // CIE 1976 UCS
)

// ParseMethod returns the method with the given case insensitive name.
func ParseMethod(s string) (Methods, error) {
	var m Methods
	if err := m.SetString(strings.ToLower(strings.TrimSpace(s))); err != nil {
		return m, unknownName("chromaticity diagram method", s, enumNames(MethodsValues()))
	}
	return m, nil
}

// XYZToXY returns the CIE xy chromaticity of XYZ, or the given
// illuminant chromaticity for black.
func XYZToXY(xyz Vec3, illuminant XY) XY {
	s := xyz[0] + xyz[1] + xyz[2]
	if s == 0 {
		return illuminant
	}
	return XY{xyz[0] / s, xyz[1] / s}
}

// XYToXYZ returns the XYZ values of xy with Y = 1.
func XYToXYZ(xy XY) Vec3 {
	return XYYToXYZ(Vec3{xy[0], xy[1], 1})
}

// XYZToXYY converts XYZ to CIE xyY, with the illuminant chromaticity for black.
func XYZToXYY(xyz Vec3, illuminant XY) Vec3 {
	xy := XYZToXY(xyz, illuminant)
	return Vec3{xy[0], xy[1], xyz[1]}
}

// XYYToXYZ converts CIE xyY to XYZ.
func XYYToXYZ(xyY Vec3) Vec3 {
	if xyY[1] == 0 {
		return Vec3{}
	}
	x, y, Y := xyY[0], xyY[1], xyY[2]
	return Vec3{x * Y / y, Y, (1 - x - y) * Y / y}
}

// XYToUV converts CIE xy to CIE 1960 UCS uv.
func XYToUV(xy XY) XY {
	d := -2*xy[0] + 12*xy[1] + 3
	return XY{4 * xy[0] / d, 6 * xy[1] / d}
}

// UVToXY converts CIE 1960 UCS uv to CIE xy.
func UVToXY(uv XY) XY {
	d := 2*uv[0] - 8*uv[1] + 4
	return XY{3 * uv[0] / d, 2 * uv[1] / d}
}

// XYToUpVp converts CIE xy to CIE 1976 UCS u'v'.
func XYToUpVp(xy XY) XY {
	d := -2*xy[0] + 12*xy[1] + 3
	return XY{4 * xy[0] / d, 9 * xy[1] / d}
}

// UpVpToXY converts CIE 1976 UCS u'v' to CIE xy.
func UpVpToXY(uv XY) XY {
	d := 6*uv[0] - 16*uv[1] + 12
	return XY{9 * uv[0] / d, 4 * uv[1] / d}
}

// XYToIJ converts CIE xy to the coordinates of the given diagram method.
func XYToIJ(m Methods, xy XY) XY {
	switch m {
	case CIE1960UCS:
		return XYToUV(xy)
	case CIE1976UCS:
		return XYToUpVp(xy)
	}
	return xy
}

// IJToXY converts coordinates of the given diagram method to CIE xy.
func IJToXY(m Methods, ij XY) XY {
	switch m {
	case CIE1960UCS:
		return UVToXY(ij)
	case CIE1976UCS:
		return UpVpToXY(ij)
	}
	return ij
}

// XYZToIJ converts XYZ to the coordinates of the given diagram method,
// using the illuminant chromaticity for black.
func XYZToIJ(m Methods, xyz Vec3, illuminant XY) XY {
	return XYToIJ(m, XYZToXY(xyz, illuminant))
}

// IJToXYZ converts coordinates of the given diagram method to XYZ with Y = 1.
func IJToXYZ(m Methods, ij XY) Vec3 {
	return XYToXYZ(IJToXY(m, ij))
}
