// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import "math"

const (
	// CIE1931Observer is the name of the CIE 1931 2 Degree Standard Observer.
	CIE1931Observer = "CIE 1931 2 Degree Standard Observer"

	// CIE1964Observer is the name of the CIE 1964 10 Degree Standard Observer.
	CIE1964Observer = "CIE 1964 10 Degree Standard Observer"
)

// DefaultShape is the spectral shape of the built-in observers.
var DefaultShape = SpectralShape{Start: 360, End: 780, Interval: 1}

var observers = newRegistry[*MultiSpectralDistributions]("standard observer")

func init() {
	observers.add(CIE1931Observer, sampleObserver(CIE1931Observer, cmfsCIE1931))
	observers.add(CIE1964Observer, sampleObserver(CIE1964Observer, cmfsCIE1964))
}

// CMFS returns the named standard observer colour matching functions.
// The name is case insensitive.
func CMFS(name string) (*MultiSpectralDistributions, error) {
	return observers.get(name)
}

// RegisterCMFS adds user supplied colour matching functions, e.g., loaded
// with [LoadMultiSpectralDistributions], replacing any with the same name.
func RegisterCMFS(ms *MultiSpectralDistributions) error {
	if err := ms.Validate(); err != nil {
		return err
	}
	observers.add(ms.Name, ms)
	return nil
}

// CMFSNames returns the names of the known standard observers.
func CMFSNames() []string {
	return observers.list()
}

func sampleObserver(name string, fn func(w float64) Vec3) *MultiSpectralDistributions {
	wl := DefaultShape.Wavelengths()
	ms := &MultiSpectralDistributions{Name: name, Wavelengths: wl, Values: make([]Vec3, len(wl))}
	for i, w := range wl {
		ms.Values[i] = fn(w)
	}
	return ms
}

// lobe is a piecewise gaussian with different widths on either side of mu.
func lobe(w, mu, sigma1, sigma2 float64) float64 {
	s := sigma1
	if w >= mu {
		s = sigma2
	}
	t := (w - mu) / s
	return math.Exp(-0.5 * t * t)
}

// cmfsCIE1931 is the multi-lobe fit of the CIE 1931 2 degree colour
// matching functions (Wyman, Sloan and Shirley, 2013).
func cmfsCIE1931(w float64) Vec3 {
	x := 1.056*lobe(w, 599.8, 37.9, 31.0) + 0.362*lobe(w, 442.0, 16.0, 26.7) - 0.065*lobe(w, 501.1, 20.4, 26.2)
	y := 0.821*lobe(w, 568.8, 46.9, 40.5) + 0.286*lobe(w, 530.9, 16.3, 31.1)
	z := 1.217*lobe(w, 437.0, 11.8, 36.0) + 0.681*lobe(w, 459.0, 26.0, 13.8)
	return Vec3{x, y, z}
}

// cmfsCIE1964 is the single-lobe fit of the CIE 1964 10 degree colour
// matching functions (Wyman, Sloan and Shirley, 2013).
func cmfsCIE1964(w float64) Vec3 {
	sq := func(v float64) float64 { return v * v }
	x := 0.398*math.Exp(-1250*sq(math.Log((w+570.1)/1014))) + 1.132*math.Exp(-234*sq(math.Log((1338-w)/743.5)))
	y := 1.011 * math.Exp(-0.5*sq((w-556.1)/46.14))
	z := 2.060 * math.Exp(-32*sq(math.Log((w-265.8)/180.4)))
	return Vec3{x, y, z}
}
