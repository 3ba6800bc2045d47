// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"fmt"
	"math"
)

// RGBColourspace is an additive RGB colourspace defined by the
// chromaticities of its primaries and whitepoint.
type RGBColourspace struct {

	// Name is the colourspace name.
	Name string

	// Primaries are the xy chromaticities of the red, green and blue primaries.
	Primaries [3]XY

	// Whitepoint is the xy chromaticity of the whitepoint.
	Whitepoint XY

	// WhitepointName is the name of the whitepoint illuminant.
	WhitepointName string

	// Encode is the encoding colour component transfer function,
	// nil for linear encodings.
	Encode func(v float64) float64 `json:"-"`

	// Decode is the decoding colour component transfer function,
	// nil for linear encodings.
	Decode func(v float64) float64 `json:"-"`

	// matrixRGBToXYZ is the normalised primary matrix.
	matrixRGBToXYZ Matrix3

	// matrixXYZToRGB is the inverse of the normalised primary matrix.
	matrixXYZToRGB Matrix3
}

// NewRGBColourspace returns a new colourspace, deriving its normalised
// primary matrix from the primaries and whitepoint.
func NewRGBColourspace(name string, primaries [3]XY, whitepoint XY, whitepointName string, encode, decode func(float64) float64) (*RGBColourspace, error) {
	cs := &RGBColourspace{Name: name, Primaries: primaries, Whitepoint: whitepoint, WhitepointName: whitepointName, Encode: encode, Decode: decode}
	npm, err := NormalisedPrimaryMatrix(primaries, whitepoint)
	if err != nil {
		return nil, fmt.Errorf("RGB colourspace %q: %w", name, err)
	}
	inv, err := npm.Inverse()
	if err != nil {
		return nil, fmt.Errorf("RGB colourspace %q: %w", name, err)
	}
	cs.matrixRGBToXYZ = npm
	cs.matrixXYZToRGB = inv
	return cs, nil
}

// NormalisedPrimaryMatrix returns the matrix converting linear RGB values
// to XYZ for the given primaries and whitepoint (SMPTE RP 177).
func NormalisedPrimaryMatrix(primaries [3]XY, whitepoint XY) (Matrix3, error) {
	var p Matrix3
	for j, xy := range primaries {
		if xy[1] == 0 {
			return Matrix3{}, fmt.Errorf("primary %d has y = 0", j)
		}
		c := XYToXYZ(xy)
		p[0][j], p[1][j], p[2][j] = c[0], c[1], c[2]
	}
	if whitepoint[1] == 0 {
		return Matrix3{}, fmt.Errorf("whitepoint has y = 0")
	}
	s, err := p.Solve(XYToXYZ(whitepoint))
	if err != nil {
		return Matrix3{}, err
	}
	return p.Mul(Diagonal(s)), nil
}

// MatrixRGBToXYZ returns the normalised primary matrix.
func (cs *RGBColourspace) MatrixRGBToXYZ() Matrix3 {
	return cs.matrixRGBToXYZ
}

// MatrixXYZToRGB returns the inverse normalised primary matrix.
func (cs *RGBColourspace) MatrixXYZToRGB() Matrix3 {
	return cs.matrixXYZToRGB
}

// RGBToXYZ converts linear RGB values to XYZ relative to the colourspace
// whitepoint.
func (cs *RGBColourspace) RGBToXYZ(rgb Vec3) Vec3 {
	return cs.matrixRGBToXYZ.MulVec(rgb)
}

// XYZToRGB converts XYZ values relative to the colourspace whitepoint to
// linear RGB values.
func (cs *RGBColourspace) XYZToRGB(xyz Vec3) Vec3 {
	return cs.matrixXYZToRGB.MulVec(xyz)
}

// XYZToRGBAdapted converts XYZ values relative to the given illuminant to
// linear RGB values, chromatically adapting them to the whitepoint.
func (cs *RGBColourspace) XYZToRGBAdapted(xyz Vec3, illuminant XY, cat Adaptations) (Vec3, error) {
	m, err := AdaptationMatrix(illuminant, cs.Whitepoint, cat)
	if err != nil {
		return Vec3{}, err
	}
	return cs.matrixXYZToRGB.Mul(m).MulVec(xyz), nil
}

// RGBToXYZAdapted converts linear RGB values to XYZ values relative to the
// given illuminant.
func (cs *RGBColourspace) RGBToXYZAdapted(rgb Vec3, illuminant XY, cat Adaptations) (Vec3, error) {
	m, err := AdaptationMatrix(cs.Whitepoint, illuminant, cat)
	if err != nil {
		return Vec3{}, err
	}
	return m.Mul(cs.matrixRGBToXYZ).MulVec(rgb), nil
}

// EncodeRGB applies the encoding transfer function, if any.
func (cs *RGBColourspace) EncodeRGB(rgb Vec3) Vec3 {
	if cs.Encode == nil {
		return rgb
	}
	return Vec3{cs.Encode(rgb[0]), cs.Encode(rgb[1]), cs.Encode(rgb[2])}
}

// DecodeRGB applies the decoding transfer function, if any.
func (cs *RGBColourspace) DecodeRGB(rgb Vec3) Vec3 {
	if cs.Decode == nil {
		return rgb
	}
	return Vec3{cs.Decode(rgb[0]), cs.Decode(rgb[1]), cs.Decode(rgb[2])}
}

func (cs *RGBColourspace) String() string {
	return cs.Name
}

var colourspaces = newRegistry[*RGBColourspace]("RGB colourspace")

// RGBColourspaceByName returns the named RGB colourspace.
// The name is case insensitive.
func RGBColourspaceByName(name string) (*RGBColourspace, error) {
	return colourspaces.get(name)
}

// RegisterRGBColourspace adds an RGB colourspace, replacing any with the same name.
func RegisterRGBColourspace(cs *RGBColourspace) {
	colourspaces.add(cs.Name, cs)
}

// RGBColourspaceNames returns the names of the known RGB colourspaces, sorted.
func RGBColourspaceNames() []string {
	return colourspaces.list()
}

// SRGB is the IEC 61966-2-1 sRGB colourspace, also used as the plotting
// colourspace.
var SRGB = mustColourspace("sRGB",
	[3]XY{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}, D65, "D65",
	EncodeSRGB, DecodeSRGB)

func init() {
	d65 := D65
	aces := XY{0.32168, 0.33767}
	RegisterRGBColourspace(SRGB)
	for _, cs := range []*RGBColourspace{
		mustColourspace("Adobe RGB (1998)", [3]XY{{0.64, 0.33}, {0.21, 0.71}, {0.15, 0.06}}, d65, "D65",
			gamma(563.0/256), gamma(256.0/563)),
		mustColourspace("ITU-R BT.709", [3]XY{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}, d65, "D65",
			EncodeBT709, DecodeBT709),
		mustColourspace("ITU-R BT.2020", [3]XY{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}}, d65, "D65",
			EncodeBT709, DecodeBT709),
		mustColourspace("DCI-P3", [3]XY{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}}, XY{0.314, 0.351}, "DCI-P3",
			gamma(2.6), gamma(1/2.6)),
		mustColourspace("Display P3", [3]XY{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}}, d65, "D65",
			EncodeSRGB, DecodeSRGB),
		mustColourspace("ACES2065-1", [3]XY{{0.7347, 0.2653}, {0.0, 1.0}, {0.0001, -0.0770}}, aces, "ACES", nil, nil),
		mustColourspace("ACEScg", [3]XY{{0.713, 0.293}, {0.165, 0.830}, {0.128, 0.044}}, aces, "ACES", nil, nil),
		mustColourspace("ProPhoto RGB", [3]XY{{0.7347, 0.2653}, {0.1596, 0.8404}, {0.0366, 0.0001}}, XY{0.3457, 0.3585}, "D50",
			EncodeProPhoto, DecodeProPhoto),
		mustColourspace("NTSC (1953)", [3]XY{{0.67, 0.33}, {0.21, 0.71}, {0.14, 0.08}}, XY{0.31006, 0.31616}, "C",
			EncodeBT709, DecodeBT709),
	} {
		RegisterRGBColourspace(cs)
	}
}

func mustColourspace(name string, primaries [3]XY, whitepoint XY, whitepointName string, encode, decode func(float64) float64) *RGBColourspace {
	cs, err := NewRGBColourspace(name, primaries, whitepoint, whitepointName, encode, decode)
	if err != nil {
		panic(err)
	}
	return cs
}

// EncodeSRGB is the IEC 61966-2-1 sRGB inverse electro-optical transfer function.
func EncodeSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// DecodeSRGB is the IEC 61966-2-1 sRGB electro-optical transfer function.
func DecodeSRGB(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// EncodeBT709 is the ITU-R BT.709 opto-electronic transfer function.
func EncodeBT709(v float64) float64 {
	if v < 0.018 {
		return 4.5 * v
	}
	return 1.099*math.Pow(v, 0.45) - 0.099
}

// DecodeBT709 is the inverse ITU-R BT.709 opto-electronic transfer function.
func DecodeBT709(v float64) float64 {
	if v < 0.081 {
		return v / 4.5
	}
	return math.Pow((v+0.099)/1.099, 1/0.45)
}

// EncodeProPhoto is the ROMM RGB encoding colour component transfer function.
func EncodeProPhoto(v float64) float64 {
	if v < 1.0/512 {
		return 16 * v
	}
	return math.Pow(v, 1/1.8)
}

// DecodeProPhoto is the ROMM RGB decoding colour component transfer function.
func DecodeProPhoto(v float64) float64 {
	if v < 16.0/512 {
		return v / 16
	}
	return math.Pow(v, 1.8)
}

// gamma returns a sign preserving power function with the given exponent.
func gamma(exponent float64) func(float64) float64 {
	return func(v float64) float64 {
		return math.Copysign(math.Pow(math.Abs(v), exponent), v)
	}
}
