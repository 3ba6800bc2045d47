// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"fmt"
	"math"
)

const (
	// planckC2 is the second radiation constant in m.K.
	planckC2 = 1.4388e-2

	// cieAC2 is the second radiation constant used by the CIE
	// definition of illuminant A, in nm.K.
	cieAC2 = 1.435e7
)

var illuminants = newRegistry[*SpectralDistribution]("illuminant")

var whitepoints = newRegistry[XY]("illuminant chromaticity")

func init() {
	illuminants.add("E", IlluminantE(DefaultShape))
	illuminants.add("A", IlluminantA(DefaultShape))

	// CIE 1931 2 Degree Standard Observer chromaticity coordinates.
	for _, wp := range []struct {
		name string
		xy   XY
	}{
		{"A", XY{0.44757, 0.40745}},
		{"C", XY{0.31006, 0.31616}},
		{"D50", XY{0.34570, 0.35850}},
		{"D55", XY{0.33242, 0.34743}},
		{"D60", XY{0.32168, 0.33767}},
		{"D65", XY{0.31270, 0.32900}},
		{"D75", XY{0.29902, 0.31485}},
		{"E", XY{1.0 / 3, 1.0 / 3}},
		{"ACES", XY{0.32168, 0.33767}},
		{"DCI-P3", XY{0.31400, 0.35100}},
	} {
		whitepoints.add(wp.name, wp.xy)
	}
}

// D65 is the chromaticity of CIE Illuminant D65, the whitepoint of the
// plotting colourspace.
var D65 = XY{0.31270, 0.32900}

// Illuminant returns the named illuminant spectral distribution.
// The name is case insensitive.
func Illuminant(name string) (*SpectralDistribution, error) {
	return illuminants.get(name)
}

// RegisterIlluminant adds a user supplied illuminant spectral distribution,
// replacing any with the same name.
func RegisterIlluminant(sd *SpectralDistribution) error {
	if err := sd.Validate(); err != nil {
		return err
	}
	illuminants.add(sd.Name, sd)
	return nil
}

// IlluminantNames returns the names of the known illuminant spectral
// distributions.
func IlluminantNames() []string {
	return illuminants.list()
}

// Whitepoint returns the CIE 1931 chromaticity coordinates of the named
// illuminant.
func Whitepoint(name string) (XY, error) {
	return whitepoints.get(name)
}

// WhitepointNames returns the names of the known illuminant chromaticities.
func WhitepointNames() []string {
	return whitepoints.list()
}

// IlluminantE returns the equal energy illuminant over the given shape.
func IlluminantE(shape SpectralShape) *SpectralDistribution {
	wl := shape.Wavelengths()
	sd := &SpectralDistribution{Name: "E", Wavelengths: wl, Values: make([]float64, len(wl))}
	for i := range sd.Values {
		sd.Values[i] = 1
	}
	return sd
}

// IlluminantA returns CIE Illuminant A, normalised to 100 at 560 nm.
func IlluminantA(shape SpectralShape) *SpectralDistribution {
	wl := shape.Wavelengths()
	sd := &SpectralDistribution{Name: "A", Wavelengths: wl, Values: make([]float64, len(wl))}
	norm := math.Expm1(cieAC2 / (2848 * 560))
	for i, w := range wl {
		sd.Values[i] = 100 * math.Pow(560/w, 5) * norm / math.Expm1(cieAC2/(2848*w))
	}
	return sd
}

// Blackbody returns the spectral radiance of a Planckian radiator at
// temperature t in kelvin, normalised to 1 at 560 nm. An infinite
// temperature uses the Rayleigh-Jeans limit.
func Blackbody(t float64, shape SpectralShape) (*SpectralDistribution, error) {
	if t <= 0 || math.IsNaN(t) {
		return nil, fmt.Errorf("blackbody: temperature must be positive, got %g", t)
	}
	wl := shape.Wavelengths()
	sd := &SpectralDistribution{Name: fmt.Sprintf("%gK Blackbody", t), Wavelengths: wl, Values: make([]float64, len(wl))}
	ref := planck(560, t)
	for i, w := range wl {
		sd.Values[i] = planck(w, t) / ref
	}
	return sd, nil
}

// planck returns the relative spectral radiance at wavelength w in nm.
func planck(w, t float64) float64 {
	l := w * 1e-9
	if math.IsInf(t, 1) {
		return math.Pow(l, -4)
	}
	return math.Pow(l, -5) / math.Expm1(planckC2/(l*t))
}
