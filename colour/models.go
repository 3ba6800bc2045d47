// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Models are the colourspace models the visuals can be displayed in.
type Models int32 //enums:enum -accept-lower -line-comment

const (
	// ModelXYZ is CIE XYZ.
	ModelXYZ Models = iota // CIE XYZ

	// ModelXYY is CIE xyY.
	ModelXYY // CIE xyY

	// ModelLab is CIE L*a*b*.
	ModelLab // CIE Lab

	// ModelLCHab is the cylindrical form of CIE L*a*b*.
	ModelLCHab // CIE LCHab

	// ModelLuv is CIE L*u*v*.
	ModelLuv // CIE Luv

	// ModelLCHuv is the cylindrical form of CIE L*u*v*.
	ModelLCHuv // CIE LCHuv

	// ModelUCS is CIE 1960 UCS.
	ModelUCS // CIE UCS

	// ModelUVW is CIE 1964 U*V*W*.
	ModelUVW // CIE UVW

	// ModelIPT is Ebner and Fairchild (1998) IPT.
	ModelIPT // IPT

	// ModelOklab is Ottosson (2020) Oklab.
	ModelOklab // Oklab

	// ModelJzazbz is Safdar et al. (2017) Jzazbz.
	ModelJzazbz // Jzazbz

	// ModelICtCp is ITU-R BT.2100 ICtCp.
	ModelICtCp // ICtCp

	// ModelRGB is linear RGB. Visuals built from RGB values use them
	// directly, XYZ values are converted to linear sRGB.
	ModelRGB // RGB
)

var modelAxisLabels = [ModelsN][3]string{
	{"X", "Y", "Z"},
	{"x", "y", "Y"},
	{"L*", "a*", "b*"},
	{"L*", "C*ab", "hab"},
	{"L*", "u*", "v*"},
	{"L*", "C*uv", "huv"},
	{"U", "V", "W"},
	{"U*", "V*", "W*"},
	{"I", "P", "T"},
	{"L", "a", "b"},
	{"Jz", "az", "bz"},
	{"I", "Ct", "Cp"},
	{"R", "G", "B"},
}

// ParseModel returns the model with the given case insensitive name.
func ParseModel(s string) (Models, error) {
	var m Models
	if err := m.SetString(strings.ToLower(strings.TrimSpace(s))); err != nil {
		return m, unknownName("colourspace model", s, enumNames(ModelsValues()))
	}
	return m, nil
}

// LightnessFirst returns whether the first component of the model is its
// lightness axis.
func (m Models) LightnessFirst() bool {
	switch m {
	case ModelLab, ModelLCHab, ModelLuv, ModelLCHuv, ModelIPT, ModelOklab, ModelJzazbz, ModelICtCp:
		return true
	}
	return false
}

// AxisReorder moves the lightness axis of lightness first models to the
// last (vertical) component. It is the identity for the other models.
func AxisReorder(m Models, v Vec3) Vec3 {
	if !m.LightnessFirst() {
		return v
	}
	return Vec3{v[1], v[2], v[0]}
}

// AxisLabels returns the labels of the model axes, reordered like
// [AxisReorder].
func AxisLabels(m Models) [3]string {
	if m < 0 || m >= ModelsN {
		return [3]string{"X", "Y", "Z"}
	}
	l := modelAxisLabels[m]
	if m.LightnessFirst() {
		return [3]string{l[1], l[2], l[0]}
	}
	return l
}

// polar returns the lightness, chroma and hue of opponent coordinates, with
// the hue in [0, 1).
func polar(l, a, b float64) Vec3 {
	h := math.Atan2(b, a) / (2 * math.Pi)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return Vec3{l, math.Hypot(a, b), h}
}

// XYZToModel converts XYZ tristimulus values relative to the given
// illuminant chromaticity to the given model. Jzazbz and ICtCp are
// normalised so that their lightness for XYZ (1, 1, 1) is 1.
func XYZToModel(xyz Vec3, illuminant XY, m Models) Vec3 {
	switch m {
	case ModelXYY:
		return XYZToXYY(xyz, illuminant)
	case ModelLab:
		l, a, b := colorful.XyzToLabWhiteRef(xyz[0], xyz[1], xyz[2], whiteRef(illuminant))
		return Vec3{l, a, b}
	case ModelLCHab:
		l, a, b := colorful.XyzToLabWhiteRef(xyz[0], xyz[1], xyz[2], whiteRef(illuminant))
		return polar(l, a, b)
	case ModelLuv:
		l, u, v := colorful.XyzToLuvWhiteRef(xyz[0], xyz[1], xyz[2], whiteRef(illuminant))
		return Vec3{l, u, v}
	case ModelLCHuv:
		l, u, v := colorful.XyzToLuvWhiteRef(xyz[0], xyz[1], xyz[2], whiteRef(illuminant))
		return polar(l, u, v)
	case ModelUCS:
		return XYZToUCS(xyz)
	case ModelUVW:
		return XYZToUVW(xyz, illuminant)
	case ModelIPT:
		return XYZToIPT(xyz)
	case ModelOklab:
		return XYZToOklab(xyz)
	case ModelJzazbz:
		return XYZToJzazbz(xyz).Scale(1 / jzazbzWhite)
	case ModelICtCp:
		return XYZToICtCp(xyz, illuminant).Scale(1 / ictcpWhite)
	case ModelRGB:
		rgb, err := SRGB.XYZToRGBAdapted(xyz, illuminant, CAT02)
		if err != nil {
			return SRGB.XYZToRGB(xyz)
		}
		return rgb
	}
	return xyz
}

// whiteRef returns the XYZ white reference of a chromaticity, with Y = 1.
func whiteRef(xy XY) [3]float64 {
	return XYToXYZ(xy)
}

// XYZToUCS converts XYZ to CIE 1960 UCS UVW.
func XYZToUCS(xyz Vec3) Vec3 {
	x, y, z := xyz[0], xyz[1], xyz[2]
	return Vec3{2 * x / 3, y, (-x + 3*y + z) / 2}
}

// XYZToUVW converts XYZ to CIE 1964 U*V*W* relative to the illuminant.
// Values are computed for Y in [0, 100] and scaled back to [0, 1].
func XYZToUVW(xyz Vec3, illuminant XY) Vec3 {
	uv := XYToUV(XYZToXY(xyz, illuminant))
	uv0 := XYToUV(illuminant)
	w := 25*math.Cbrt(xyz[1]*100) - 17
	return Vec3{13 * w * (uv[0] - uv0[0]), 13 * w * (uv[1] - uv0[1]), w}.Scale(0.01)
}

var (
	iptXYZToLMS = Matrix3{
		{0.4002, 0.7075, -0.0807},
		{-0.2280, 1.1500, 0.0612},
		{0.0000, 0.0000, 0.9184},
	}
	iptLMSToIPT = Matrix3{
		{0.4000, 0.4000, 0.2000},
		{4.4550, -4.8510, 0.3960},
		{0.8056, 0.3572, -1.1628},
	}
)

// XYZToIPT converts D65 relative XYZ to IPT.
func XYZToIPT(xyz Vec3) Vec3 {
	lms := iptXYZToLMS.MulVec(xyz)
	for i, v := range lms {
		lms[i] = math.Copysign(math.Pow(math.Abs(v), 0.43), v)
	}
	return iptLMSToIPT.MulVec(lms)
}

var (
	oklabXYZToLMS = Matrix3{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	oklabLMSToLab = Matrix3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
)

// XYZToOklab converts D65 relative XYZ to Oklab.
func XYZToOklab(xyz Vec3) Vec3 {
	lms := oklabXYZToLMS.MulVec(xyz)
	for i, v := range lms {
		lms[i] = math.Cbrt(v)
	}
	return oklabLMSToLab.MulVec(lms)
}

const (
	jzB  = 1.15
	jzG  = 0.66
	jzN  = 2610.0 / 16384
	jzP  = 1.7 * 2523.0 / 32
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11

	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 128
	pqC3 = 2392.0 / 128
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
)

var (
	jzXYZToLMS = Matrix3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jzLMSToIzazbz = Matrix3{
		{0.5, 0.5, 0},
		{3.524000, -4.066708, 0.542708},
		{0.199076, 1.096799, -1.295875},
	}

	// jzazbzWhite is the Jz of XYZ (1, 1, 1).
	jzazbzWhite = XYZToJzazbz(Vec3{1, 1, 1})[0]
)

// pqEncode is the SMPTE ST 2084 inverse EOTF for luminance in cd/m2,
// with the given exponents.
func pqEncode(v, m1, m2 float64) float64 {
	y := math.Pow(max(v, 0)/10000, m1)
	return math.Pow((pqC1+pqC2*y)/(1+pqC3*y), m2)
}

// XYZToJzazbz converts absolute D65 XYZ, in cd/m2, to Jzazbz.
func XYZToJzazbz(xyz Vec3) Vec3 {
	x, y, z := xyz[0], xyz[1], xyz[2]
	xp := jzB*x - (jzB-1)*z
	yp := jzG*y - (jzG-1)*x
	lms := jzXYZToLMS.MulVec(Vec3{xp, yp, z})
	for i, v := range lms {
		lms[i] = pqEncode(v, jzN, jzP)
	}
	izazbz := jzLMSToIzazbz.MulVec(lms)
	iz := izazbz[0]
	jz := (1+jzD)*iz/(1+jzD*iz) - jzD0
	return Vec3{jz, izazbz[1], izazbz[2]}
}

var (
	ictcpRGBToLMS = Matrix3{
		{1688.0 / 4096, 2146.0 / 4096, 262.0 / 4096},
		{683.0 / 4096, 2951.0 / 4096, 462.0 / 4096},
		{99.0 / 4096, 309.0 / 4096, 3688.0 / 4096},
	}
	ictcpLMSToICtCp = Matrix3{
		{2048.0 / 4096, 2048.0 / 4096, 0},
		{6610.0 / 4096, -13613.0 / 4096, 7003.0 / 4096},
		{17933.0 / 4096, -17390.0 / 4096, -543.0 / 4096},
	}

	// ictcpWhite is the I of XYZ (1, 1, 1) relative to D65.
	ictcpWhite = XYZToICtCp(Vec3{1, 1, 1}, D65)[0]
)

// bt2020 is the ITU-R BT.2020 colourspace used by ICtCp, independent of
// the colourspace registry.
var bt2020 = mustColourspace("ITU-R BT.2020",
	[3]XY{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}}, XY{0.31270, 0.32900}, "D65",
	EncodeBT709, DecodeBT709)

// XYZToICtCp converts XYZ relative to the illuminant to ICtCp, through
// linear ITU-R BT.2020 with 1 = 1 cd/m2.
func XYZToICtCp(xyz Vec3, illuminant XY) Vec3 {
	rgb, err := bt2020.XYZToRGBAdapted(xyz, illuminant, CAT02)
	if err != nil {
		rgb = bt2020.XYZToRGB(xyz)
	}
	lms := ictcpRGBToLMS.MulVec(rgb)
	for i, v := range lms {
		lms[i] = pqEncode(v, pqM1, pqM2)
	}
	return ictcpLMSToICtCp.MulVec(lms)
}
