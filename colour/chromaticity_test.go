// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods(t *testing.T) {
	for _, m := range MethodsValues() {
		p, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, p)
	}
	m, err := ParseMethod("cie 1976 ucs")
	require.NoError(t, err)
	assert.Equal(t, CIE1976UCS, m)

	_, err = ParseMethod("CIE 1976")
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Equal(t, "7", Methods(7).String())
	assert.Equal(t, "CIE1931 is the CIE 1931 xy chromaticity diagram.", CIE1931.Desc())

	var u Methods
	require.NoError(t, u.UnmarshalText([]byte("CIE 1960 UCS")))
	assert.Equal(t, CIE1960UCS, u)
	b, err := u.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "CIE 1960 UCS", string(b))
}

func TestChromaticityRoundTrip(t *testing.T) {
	for _, xy := range []XY{D65, {0.64, 0.33}, {0.15, 0.06}, {0.2, 0.7}} {
		for _, m := range MethodsValues() {
			back := IJToXY(m, XYToIJ(m, xy))
			assert.InDelta(t, xy[0], back[0], 1e-12, m.String())
			assert.InDelta(t, xy[1], back[1], 1e-12, m.String())
		}
	}
	// u = u', v' = 1.5 v
	uv := XYToUV(D65)
	upvp := XYToUpVp(D65)
	assert.InDelta(t, uv[0], upvp[0], 1e-12)
	assert.InDelta(t, uv[1]*1.5, upvp[1], 1e-12)
	assert.InDelta(t, 0.1978, uv[0], 1e-4)
	assert.InDelta(t, 0.3122, uv[1], 1e-4)
}

func TestXYZChromaticity(t *testing.T) {
	assert.Equal(t, D65, XYZToXY(Vec3{}, D65))
	xyz := XYToXYZ(D65)
	assert.InDelta(t, 0.95046, xyz[0], 1e-4)
	assert.Equal(t, 1.0, xyz[1])
	assert.InDelta(t, 1.08906, xyz[2], 1e-4)

	xyY := XYZToXYY(Vec3{0.5, 0.25, 0.25}, D65)
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, xyY[:], 1e-12)
	back := XYYToXYZ(xyY)
	assert.InDeltaSlice(t, []float64{0.5, 0.25, 0.25}, back[:], 1e-12)
	assert.Equal(t, Vec3{}, XYYToXYZ(Vec3{0.3, 0, 1}))

	ij := XYZToIJ(CIE1960UCS, Vec3{}, D65)
	assert.Equal(t, XYToUV(D65), ij)
	xyz = IJToXYZ(CIE1976UCS, XYToUpVp(D65))
	assert.InDelta(t, 1, xyz[1], 1e-12)
	assert.InDelta(t, 0.95046, xyz[0], 1e-4)
}

func TestMatrix(t *testing.T) {
	m := Matrix3{{2, 0, 0}, {0, 4, 0}, {1, 0, 1}}
	inv, err := m.Inverse()
	require.NoError(t, err)
	id := m.Mul(inv)
	for i := range 3 {
		for j := range 3 {
			assert.InDelta(t, Identity3[i][j], id[i][j], 1e-12)
		}
	}
	x, err := m.Solve(Vec3{2, 4, 3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 2}, x[:], 1e-12)

	_, err = Matrix3{}.Inverse()
	assert.Error(t, err)
}

func TestAdaptation(t *testing.T) {
	d50, err := Whitepoint("D50")
	require.NoError(t, err)
	for _, cat := range []Adaptations{CAT02, Bradford} {
		got, err := Adapt(XYToXYZ(d50), d50, D65, cat)
		require.NoError(t, err)
		want := XYToXYZ(D65)
		assert.InDeltaSlice(t, want[:], got[:], 1e-9, cat.String())
	}
	m, err := AdaptationMatrix(D65, D65, CAT02)
	require.NoError(t, err)
	assert.Equal(t, Identity3, m)
	m, err = AdaptationMatrix(d50, D65, NoAdaptation)
	require.NoError(t, err)
	assert.Equal(t, Identity3, m)
	_, err = AdaptationMatrix(d50, D65, Adaptations(9))
	assert.Error(t, err)

	var a Adaptations
	require.NoError(t, a.SetString("bradford"))
	assert.Equal(t, Bradford, a)
	assert.Error(t, a.SetString("von kries"))
	a, err = ParseAdaptation(" None ")
	require.NoError(t, err)
	assert.Equal(t, NoAdaptation, a)
	_, err = ParseAdaptation("von kries")
	assert.ErrorIs(t, err, ErrUnknownName)
}
