// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colour provides the colour science used by the visuals:
// spectral data, standard observers, illuminants, tristimulus integration,
// chromaticity diagram methods, colourspace models, RGB colourspaces,
// temperature loci and object colour solids.
package colour

//go:generate core generate

import (
	"fmt"
	"math"
	"sort"
)

// Vec3 is a colour triplet, e.g., CIE XYZ tristimulus values or RGB.
type Vec3 [3]float64

// XY is a chromaticity coordinate pair.
type XY [2]float64

// Scale returns the triplet multiplied by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Max returns the largest component.
func (v Vec3) Max() float64 {
	return max(v[0], v[1], v[2])
}

// SpectralShape is a regular wavelength domain in nm.
type SpectralShape struct {
	Start    float64
	End      float64
	Interval float64
}

// Len returns the number of wavelengths in the shape.
func (ss SpectralShape) Len() int {
	if ss.Interval <= 0 || ss.End < ss.Start {
		return 0
	}
	return int(math.Floor((ss.End-ss.Start)/ss.Interval+1e-9)) + 1
}

// Wavelengths returns the wavelengths of the shape.
func (ss SpectralShape) Wavelengths() []float64 {
	n := ss.Len()
	wl := make([]float64, n)
	for i := range wl {
		wl[i] = ss.Start + float64(i)*ss.Interval
	}
	return wl
}

func (ss SpectralShape) String() string {
	return fmt.Sprintf("(%g, %g, %g)", ss.Start, ss.End, ss.Interval)
}

// SpectralDistribution is a single valued spectral distribution,
// e.g., an illuminant or a reflectance.
type SpectralDistribution struct {
	Name        string
	Wavelengths []float64
	Values      []float64
}

// MultiSpectralDistributions is a three valued spectral distribution,
// typically colour matching functions.
type MultiSpectralDistributions struct {
	Name        string
	Wavelengths []float64
	Values      []Vec3
}

// Shape returns the spectral shape of the distribution, assuming a
// regular interval.
func (sd *SpectralDistribution) Shape() SpectralShape {
	return shapeOf(sd.Wavelengths)
}

// Shape returns the spectral shape of the distributions, assuming a
// regular interval.
func (ms *MultiSpectralDistributions) Shape() SpectralShape {
	return shapeOf(ms.Wavelengths)
}

func shapeOf(wl []float64) SpectralShape {
	switch len(wl) {
	case 0:
		return SpectralShape{}
	case 1:
		return SpectralShape{Start: wl[0], End: wl[0], Interval: 1}
	}
	return SpectralShape{Start: wl[0], End: wl[len(wl)-1], Interval: wl[1] - wl[0]}
}

// Validate checks that wavelengths are strictly increasing and match the values.
func (sd *SpectralDistribution) Validate() error {
	if len(sd.Wavelengths) != len(sd.Values) {
		return fmt.Errorf("spectral distribution %q: %d wavelengths for %d values", sd.Name, len(sd.Wavelengths), len(sd.Values))
	}
	return validateWavelengths(sd.Name, sd.Wavelengths)
}

// Validate checks that wavelengths are strictly increasing and match the values.
func (ms *MultiSpectralDistributions) Validate() error {
	if len(ms.Wavelengths) != len(ms.Values) {
		return fmt.Errorf("multi spectral distributions %q: %d wavelengths for %d values", ms.Name, len(ms.Wavelengths), len(ms.Values))
	}
	return validateWavelengths(ms.Name, ms.Wavelengths)
}

func validateWavelengths(name string, wl []float64) error {
	if len(wl) < 2 {
		return fmt.Errorf("spectral data %q: need at least 2 wavelengths, have %d", name, len(wl))
	}
	if !sort.Float64sAreSorted(wl) {
		return fmt.Errorf("spectral data %q: wavelengths are not increasing", name)
	}
	for i := 1; i < len(wl); i++ {
		if wl[i] == wl[i-1] {
			return fmt.Errorf("spectral data %q: duplicate wavelength %g", name, wl[i])
		}
	}
	return nil
}

// ValueAt returns the linearly interpolated value at wavelength w,
// zero outside of the domain.
func (sd *SpectralDistribution) ValueAt(w float64) float64 {
	i, f, ok := locate(sd.Wavelengths, w)
	if !ok {
		return 0
	}
	if f == 0 {
		return sd.Values[i]
	}
	return sd.Values[i]*(1-f) + sd.Values[i+1]*f
}

// ValueAt returns the linearly interpolated values at wavelength w,
// zero outside of the domain.
func (ms *MultiSpectralDistributions) ValueAt(w float64) Vec3 {
	i, f, ok := locate(ms.Wavelengths, w)
	if !ok {
		return Vec3{}
	}
	if f == 0 {
		return ms.Values[i]
	}
	a, b := ms.Values[i], ms.Values[i+1]
	return Vec3{a[0]*(1-f) + b[0]*f, a[1]*(1-f) + b[1]*f, a[2]*(1-f) + b[2]*f}
}

// locate returns the interval index and fractional position of w.
func locate(wl []float64, w float64) (int, float64, bool) {
	n := len(wl)
	if n == 0 || w < wl[0] || w > wl[n-1] {
		return 0, 0, false
	}
	i := sort.SearchFloat64s(wl, w)
	if i < n && wl[i] == w {
		return i, 0, true
	}
	i--
	return i, (w - wl[i]) / (wl[i+1] - wl[i]), true
}

// Align returns a copy of the distribution resampled to the given shape.
func (sd *SpectralDistribution) Align(shape SpectralShape) *SpectralDistribution {
	wl := shape.Wavelengths()
	out := &SpectralDistribution{Name: sd.Name, Wavelengths: wl, Values: make([]float64, len(wl))}
	for i, w := range wl {
		out.Values[i] = sd.ValueAt(w)
	}
	return out
}

// Align returns a copy of the distributions resampled to the given shape.
func (ms *MultiSpectralDistributions) Align(shape SpectralShape) *MultiSpectralDistributions {
	wl := shape.Wavelengths()
	out := &MultiSpectralDistributions{Name: ms.Name, Wavelengths: wl, Values: make([]Vec3, len(wl))}
	for i, w := range wl {
		out.Values[i] = ms.ValueAt(w)
	}
	return out
}

// Trim returns a copy limited to the wavelengths within [start, end].
func (ms *MultiSpectralDistributions) Trim(start, end float64) *MultiSpectralDistributions {
	out := &MultiSpectralDistributions{Name: ms.Name}
	for i, w := range ms.Wavelengths {
		if w < start || w > end {
			continue
		}
		out.Wavelengths = append(out.Wavelengths, w)
		out.Values = append(out.Values, ms.Values[i])
	}
	return out
}
