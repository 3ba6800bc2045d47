// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"fmt"
	"math"
)

const (
	// PlanckianMinCCT is the lowest temperature of the Planckian locus, in kelvin.
	PlanckianMinCCT = 1000

	// PlanckianMaxCCT is the highest temperature of the Planckian locus, in kelvin.
	PlanckianMaxCCT = 100000

	// DaylightMinCCT is the lowest temperature of the daylight locus, in kelvin.
	DaylightMinCCT = 4000

	// DaylightMaxCCT is the highest temperature of the daylight locus, in kelvin.
	DaylightMaxCCT = 25000

	// IsoTemperatureDuv is the default half length of the iso-temperature
	// lines, in CIE 1960 UCS units.
	IsoTemperatureDuv = 0.05

	// IsoTemperatureSamples is the default number of points of an
	// iso-temperature line.
	IsoTemperatureSamples = 20
)

var (
	// PlanckianLabels are the default iso-temperature line temperatures, in kelvin.
	PlanckianLabels = []float64{1e6 / 600, 2000, 2500, 3000, 4000, 6000, 1e6 / 100}

	// PlanckianLabelsMireds are the default iso-temperature line temperatures, in mireds.
	PlanckianLabelsMireds = []float64{0, 100, 200, 300, 400, 500, 600}
)

// MiredToCCT converts a micro reciprocal degree to kelvin, with 0 mired
// being an infinite temperature.
func MiredToCCT(m float64) float64 {
	if m == 0 {
		return math.Inf(1)
	}
	return 1e6 / m
}

// CCTToMired converts kelvin to micro reciprocal degrees.
func CCTToMired(t float64) float64 {
	if math.IsInf(t, 1) {
		return 0
	}
	return 1e6 / t
}

// CCTToXYZ returns the XYZ values, with Y = 1, of a Planckian radiator at
// temperature t in kelvin, integrated with the given colour matching
// functions.
func CCTToXYZ(t float64, cmfs *MultiSpectralDistributions) (Vec3, error) {
	if cmfs == nil {
		return Vec3{}, fmt.Errorf("CCTToXYZ: nil colour matching functions")
	}
	sd, err := Blackbody(t, cmfs.Shape())
	if err != nil {
		return Vec3{}, err
	}
	return EmissionToXYZ(sd, cmfs)
}

// CCTToUV returns the CIE 1960 UCS chromaticity of a Planckian radiator.
func CCTToUV(t float64, cmfs *MultiSpectralDistributions) (XY, error) {
	xyz, err := CCTToXYZ(t, cmfs)
	if err != nil {
		return XY{}, err
	}
	return XYToUV(XYZToXY(xyz, D65)), nil
}

// PlanckianLocus returns the CIE 1931 chromaticities of the Planckian
// locus, sampled uniformly in mireds between [PlanckianMinCCT] and
// [PlanckianMaxCCT], with the corresponding temperatures.
func PlanckianLocus(cmfs *MultiSpectralDistributions, samples int) ([]XY, []float64, error) {
	if samples < 2 {
		return nil, nil, fmt.Errorf("Planckian locus: samples must be at least 2, got %d", samples)
	}
	m0, m1 := CCTToMired(PlanckianMinCCT), CCTToMired(PlanckianMaxCCT)
	xy := make([]XY, samples)
	ccts := make([]float64, samples)
	for i := range samples {
		t := MiredToCCT(m0 + (m1-m0)*float64(i)/float64(samples-1))
		xyz, err := CCTToXYZ(t, cmfs)
		if err != nil {
			return nil, nil, err
		}
		xy[i] = XYZToXY(xyz, D65)
		ccts[i] = t
	}
	return xy, ccts, nil
}

// IsoTemperatureLine returns n CIE 1931 chromaticities along the line
// normal to the Planckian locus at temperature t, in CIE 1960 UCS, from
// -duv to +duv. Positive distances are above the locus.
func IsoTemperatureLine(t float64, cmfs *MultiSpectralDistributions, duv float64, n int) ([]XY, error) {
	if n < 2 {
		return nil, fmt.Errorf("iso-temperature line: samples must be at least 2, got %d", n)
	}
	uv, err := CCTToUV(t, cmfs)
	if err != nil {
		return nil, err
	}
	// The tangent is estimated in the direction of decreasing temperature.
	uv2, err := CCTToUV(MiredToCCT(CCTToMired(t)+0.5), cmfs)
	if err != nil {
		return nil, err
	}
	du, dv := uv2[0]-uv[0], uv2[1]-uv[1]
	l := math.Hypot(du, dv)
	if l == 0 {
		return nil, fmt.Errorf("iso-temperature line: degenerate locus at %gK", t)
	}
	nu, nv := -dv/l, du/l
	if nv < 0 {
		nu, nv = -nu, -nv
	}
	line := make([]XY, n)
	for i := range n {
		d := -duv + 2*duv*float64(i)/float64(n-1)
		line[i] = UVToXY(XY{uv[0] + nu*d, uv[1] + nv*d})
	}
	return line, nil
}

// DaylightXY returns the CIE daylight chromaticity at temperature t,
// defined between [DaylightMinCCT] and [DaylightMaxCCT].
func DaylightXY(t float64) (XY, error) {
	if t < DaylightMinCCT || t > DaylightMaxCCT {
		return XY{}, fmt.Errorf("daylight locus: temperature %gK outside [%d, %d]", t, DaylightMinCCT, DaylightMaxCCT)
	}
	t2, t3 := t*t, t*t*t
	var x float64
	if t <= 7000 {
		x = -4.6070e9/t3 + 2.9678e6/t2 + 0.09911e3/t + 0.244063
	} else {
		x = -2.0064e9/t3 + 1.9018e6/t2 + 0.24748e3/t + 0.237040
	}
	return XY{x, -3*x*x + 2.87*x - 0.275}, nil
}

// DaylightLocus returns the CIE 1931 chromaticities of the daylight locus,
// sampled uniformly in kelvin, or in mireds when mireds is set, with the
// corresponding temperatures.
func DaylightLocus(samples int, mireds bool) ([]XY, []float64, error) {
	if samples < 2 {
		return nil, nil, fmt.Errorf("daylight locus: samples must be at least 2, got %d", samples)
	}
	xy := make([]XY, samples)
	ccts := make([]float64, samples)
	for i := range samples {
		f := float64(i) / float64(samples-1)
		var t float64
		if mireds {
			m0, m1 := CCTToMired(DaylightMinCCT), CCTToMired(DaylightMaxCCT)
			t = MiredToCCT(m0 + (m1-m0)*f)
		} else {
			t = DaylightMinCCT + (DaylightMaxCCT-DaylightMinCCT)*f
		}
		t = min(max(t, DaylightMinCCT), DaylightMaxCCT)
		c, err := DaylightXY(t)
		if err != nil {
			return nil, nil, err
		}
		xy[i] = c
		ccts[i] = t
	}
	return xy, ccts, nil
}
