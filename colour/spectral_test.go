// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpectralShape(t *testing.T) {
	ss := SpectralShape{Start: 360, End: 780, Interval: 1}
	assert.Equal(t, 421, ss.Len())
	wl := ss.Wavelengths()
	assert.Equal(t, 360.0, wl[0])
	assert.Equal(t, 780.0, wl[len(wl)-1])
	assert.Equal(t, 85, SpectralShape{Start: 360, End: 780, Interval: 5}.Len())
	assert.Equal(t, 0, SpectralShape{Start: 780, End: 360, Interval: 5}.Len())
	assert.Equal(t, "(360, 780, 1)", ss.String())
}

func TestValueAt(t *testing.T) {
	sd := &SpectralDistribution{Name: "ramp", Wavelengths: []float64{400, 500, 600}, Values: []float64{0, 1, 3}}
	require.NoError(t, sd.Validate())
	assert.Equal(t, 0.0, sd.ValueAt(400))
	assert.InDelta(t, 0.5, sd.ValueAt(450), 1e-12)
	assert.InDelta(t, 2.0, sd.ValueAt(550), 1e-12)
	assert.Equal(t, 3.0, sd.ValueAt(600))
	assert.Equal(t, 0.0, sd.ValueAt(350))
	assert.Equal(t, 0.0, sd.ValueAt(650))

	a := sd.Align(SpectralShape{Start: 400, End: 600, Interval: 50})
	assert.Equal(t, []float64{400, 450, 500, 550, 600}, a.Wavelengths)
	assert.InDeltaSlice(t, []float64{0, 0.5, 1, 2, 3}, a.Values, 1e-12)
}

func TestValidate(t *testing.T) {
	sd := &SpectralDistribution{Name: "bad", Wavelengths: []float64{400, 500}, Values: []float64{1}}
	assert.Error(t, sd.Validate())
	sd = &SpectralDistribution{Name: "bad", Wavelengths: []float64{500, 400}, Values: []float64{1, 2}}
	assert.Error(t, sd.Validate())
	sd = &SpectralDistribution{Name: "bad", Wavelengths: []float64{400, 400}, Values: []float64{1, 2}}
	assert.Error(t, sd.Validate())
}

func TestMultiSpectralTrim(t *testing.T) {
	cmfs, err := CMFS(CIE1931Observer)
	require.NoError(t, err)
	tr := cmfs.Trim(380, 700)
	assert.Len(t, tr.Wavelengths, 321)
	assert.Equal(t, 380.0, tr.Wavelengths[0])
	assert.Equal(t, 700.0, tr.Wavelengths[len(tr.Wavelengths)-1])
	assert.Equal(t, cmfs.ValueAt(555), tr.ValueAt(555))
}

func TestObservers(t *testing.T) {
	assert.Equal(t, []string{CIE1931Observer, CIE1964Observer}, CMFSNames())
	for _, name := range CMFSNames() {
		cmfs, err := CMFS(name)
		require.NoError(t, err)
		require.NoError(t, cmfs.Validate())
		assert.Equal(t, DefaultShape, cmfs.Shape())
		for _, v := range cmfs.Values {
			assert.GreaterOrEqual(t, v[0], 0.0)
			assert.GreaterOrEqual(t, v[1], 0.0)
			assert.GreaterOrEqual(t, v[2], 0.0)
		}
		// photopic peak
		peak := 0
		for i, v := range cmfs.Values {
			if v[1] > cmfs.Values[peak][1] {
				peak = i
			}
		}
		assert.InDelta(t, 555, cmfs.Wavelengths[peak], 10)
	}

	cmfs, err := CMFS("cie 1931 2 degree standard observer")
	require.NoError(t, err)
	assert.Equal(t, CIE1931Observer, cmfs.Name)
}

func TestUnknownNames(t *testing.T) {
	_, err := CMFS("CIE 1931 2 Degree Standard Observr")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), CIE1931Observer)

	_, err = Illuminant("zz")
	require.ErrorIs(t, err, ErrUnknownName)
	assert.True(t, strings.Contains(err.Error(), "must be one of"))
}

func TestIlluminants(t *testing.T) {
	e, err := Illuminant("E")
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.ValueAt(555))

	a, err := Illuminant("a")
	require.NoError(t, err)
	assert.InDelta(t, 100, a.ValueAt(560), 1e-9)
	assert.Greater(t, a.ValueAt(700), a.ValueAt(400))

	wp, err := Whitepoint("D65")
	require.NoError(t, err)
	assert.Equal(t, D65, wp)
	assert.Contains(t, WhitepointNames(), "DCI-P3")

	custom := &SpectralDistribution{Name: "Flat 2", Wavelengths: []float64{360, 780}, Values: []float64{2, 2}}
	require.NoError(t, RegisterIlluminant(custom))
	got, err := Illuminant("flat 2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.ValueAt(500))
	assert.Error(t, RegisterIlluminant(&SpectralDistribution{Name: "empty"}))
}

func TestBlackbody(t *testing.T) {
	_, err := Blackbody(-1, DefaultShape)
	assert.Error(t, err)
	sd, err := Blackbody(5000, DefaultShape)
	require.NoError(t, err)
	assert.InDelta(t, 1, sd.ValueAt(560), 1e-12)
	inf, err := Blackbody(MiredToCCT(0), DefaultShape)
	require.NoError(t, err)
	assert.InDelta(t, 1, inf.ValueAt(560), 1e-12)
	assert.Greater(t, inf.ValueAt(400), inf.ValueAt(700))
}

func TestTristimulus(t *testing.T) {
	cmfs, err := CMFS(CIE1931Observer)
	require.NoError(t, err)
	e, err := Illuminant("E")
	require.NoError(t, err)

	xyz, err := EmissionToXYZ(e, cmfs)
	require.NoError(t, err)
	assert.InDelta(t, 1, xyz[1], 1e-12)
	xy := XYZToXY(xyz, D65)
	assert.InDelta(t, 1.0/3, xy[0], 0.01)
	assert.InDelta(t, 1.0/3, xy[1], 0.01)

	white := IlluminantE(DefaultShape)
	xyz, err = SDToXYZ(white, cmfs, e)
	require.NoError(t, err)
	assert.InDelta(t, 1, xyz[1], 1e-12)

	_, err = SDToXYZ(nil, cmfs, e)
	assert.Error(t, err)
}
