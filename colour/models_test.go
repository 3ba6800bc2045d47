// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelNames(t *testing.T) {
	assert.Len(t, ModelsValues(), int(ModelsN))
	for _, m := range ModelsValues() {
		p, err := ParseModel(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, p)
	}
	m, err := ParseModel("cie lab")
	require.NoError(t, err)
	assert.Equal(t, ModelLab, m)
	m, err = ParseModel("Cie LAB")
	require.NoError(t, err)
	assert.Equal(t, ModelLab, m)
	assert.Equal(t, "ICtCp", ModelICtCp.String())

	for _, unsupported := range []string{"OSA UCS", "DIN99", "hdr-CIELAB", "CAM16-UCS"} {
		_, err := ParseModel(unsupported)
		assert.ErrorIs(t, err, ErrUnknownName, unsupported)
	}
	_, err = ParseModel("CIE Lba")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "CIE Lab"`)
}

func TestAxisReorder(t *testing.T) {
	v := Vec3{1, 2, 3}
	assert.Equal(t, Vec3{2, 3, 1}, AxisReorder(ModelLab, v))
	assert.Equal(t, Vec3{2, 3, 1}, AxisReorder(ModelJzazbz, v))
	assert.Equal(t, v, AxisReorder(ModelXYY, v))
	assert.Equal(t, v, AxisReorder(ModelXYZ, v))

	assert.Equal(t, [3]string{"a*", "b*", "L*"}, AxisLabels(ModelLab))
	assert.Equal(t, [3]string{"x", "y", "Y"}, AxisLabels(ModelXYY))
	assert.Equal(t, [3]string{"Ct", "Cp", "I"}, AxisLabels(ModelICtCp))
	assert.Equal(t, [3]string{"X", "Y", "Z"}, AxisLabels(Models(-1)))
}

func TestXYZToModelWhite(t *testing.T) {
	white := XYToXYZ(D65)

	lab := XYZToModel(white, D65, ModelLab)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, lab[:], 1e-9)

	luv := XYZToModel(white, D65, ModelLuv)
	assert.InDeltaSlice(t, []float64{1, 0, 0}, luv[:], 1e-9)

	lch := XYZToModel(white, D65, ModelLCHab)
	assert.InDelta(t, 1, lch[0], 1e-9)
	assert.InDelta(t, 0, lch[1], 1e-9)

	xyY := XYZToModel(white, D65, ModelXYY)
	assert.InDeltaSlice(t, []float64{D65[0], D65[1], 1}, xyY[:], 1e-12)

	ok := XYZToModel(white, D65, ModelOklab)
	assert.InDelta(t, 1, ok[0], 1e-3)
	assert.InDelta(t, 0, ok[1], 1e-3)
	assert.InDelta(t, 0, ok[2], 1e-3)

	ipt := XYZToModel(white, D65, ModelIPT)
	assert.InDelta(t, 1, ipt[0], 0.01)
	assert.InDelta(t, 0, ipt[1], 0.01)
	assert.InDelta(t, 0, ipt[2], 0.01)

	uvw := XYZToModel(white, D65, ModelUVW)
	assert.InDelta(t, 0, uvw[0], 1e-12)
	assert.InDelta(t, 0, uvw[1], 1e-12)
	assert.InDelta(t, (25*math.Cbrt(100)-17)/100, uvw[2], 1e-12)

	rgb := XYZToModel(white, D65, ModelRGB)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, rgb[:], 1e-9)

	assert.Equal(t, white, XYZToModel(white, D65, ModelXYZ))
}

func TestXYZToModelHue(t *testing.T) {
	red := SRGB.RGBToXYZ(Vec3{1, 0, 0})

	lch := XYZToModel(red, D65, ModelLCHab)
	assert.InDelta(t, 0.5324, lch[0], 0.001)
	assert.InDelta(t, 1.0455, lch[1], 0.002)
	assert.InDelta(t, 0.1111, lch[2], 0.001)

	lchuv := XYZToModel(red, D65, ModelLCHuv)
	assert.InDelta(t, 0.5324, lchuv[0], 0.001)
	assert.InDelta(t, 0.0338, lchuv[2], 0.001)

	// hues below the a axis wrap into [0, 1)
	blue := XYZToModel(SRGB.RGBToXYZ(Vec3{0, 0, 1}), D65, ModelLCHab)
	assert.InDelta(t, 306.29/360, blue[2], 0.002)

	lab := XYZToModel(red, D65, ModelLab)
	assert.InDelta(t, math.Hypot(lab[1], lab[2]), lch[1], 1e-12)
}

func TestXYZToICtCpLuminance(t *testing.T) {
	// 1 is 1 cd/m2, whose PQ value is about 0.1499
	ictcp := XYZToICtCp(XYToXYZ(D65), D65)
	assert.InDelta(t, 0.1499, ictcp[0], 0.001)
	assert.InDelta(t, 0, ictcp[1], 0.001)
	assert.InDelta(t, 0, ictcp[2], 0.001)
}

func TestXYZToModelNormalised(t *testing.T) {
	one := Vec3{1, 1, 1}
	jz := XYZToModel(one, D65, ModelJzazbz)
	assert.InDelta(t, 1, jz[0], 1e-9)
	ictcp := XYZToModel(one, D65, ModelICtCp)
	assert.InDelta(t, 1, ictcp[0], 1e-9)

	// Lightness is monotonic in luminance.
	for _, m := range []Models{ModelLab, ModelLuv, ModelIPT, ModelOklab, ModelJzazbz, ModelICtCp} {
		dark := XYZToModel(XYToXYZ(D65).Scale(0.2), D65, m)
		light := XYZToModel(XYToXYZ(D65).Scale(0.8), D65, m)
		assert.Less(t, dark[0], light[0], m.String())
	}
}

func TestXYZToUCS(t *testing.T) {
	ucs := XYZToUCS(Vec3{0.3, 0.6, 0.9})
	assert.InDeltaSlice(t, []float64{0.2, 0.6, (-0.3 + 1.8 + 0.9) / 2}, ucs[:], 1e-12)
}

func TestPlotting(t *testing.T) {
	white := XYZToPlotting(XYToXYZ(D65), D65)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, white[:], 1e-9)

	d50, err := Whitepoint("D50")
	require.NoError(t, err)
	adapted := XYZToPlotting(XYToXYZ(d50), d50)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, adapted[:], 1e-6)

	n := NormaliseMaximum(Vec3{0.5, 0.25, -0.1})
	assert.InDeltaSlice(t, []float64{1, 0.5, 0}, n[:], 1e-12)
	assert.Equal(t, Vec3{}, NormaliseMaximum(Vec3{}))
	assert.Equal(t, Vec3{1, 0, 0.5}, Vec3{2, -1, 0.5}.Clip())
}
