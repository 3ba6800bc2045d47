// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"errors"
	"fmt"
)

// PulseWaves returns the cyclic square pulse reflectances of the given
// number of bins: all zeros, then every rotation of the pulses of widths
// 1 to bins-1, then all ones.
func PulseWaves(bins int) [][]float64 {
	waves := make([][]float64, 0, 2+(bins-1)*bins)
	waves = append(waves, make([]float64, bins))
	for width := 1; width < bins; width++ {
		for offset := range bins {
			w := make([]float64, bins)
			for k := range width {
				w[(offset+k)%bins] = 1
			}
			waves = append(waves, w)
		}
	}
	ones := make([]float64, bins)
	for i := range ones {
		ones[i] = 1
	}
	return append(waves, ones)
}

// XYZOuterSurface returns the XYZ values of the outer surface of the
// object colour solid, i.e., the Rösch-MacAdam colour solid, for the
// given observer and illuminant, with the colour matching functions
// aligned to interval nm. The values are normalised so that the perfect
// reflector has Y = 1.
func XYZOuterSurface(cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution, interval float64) ([]Vec3, error) {
	if cmfs == nil || illuminant == nil {
		return nil, errors.New("XYZ outer surface: nil spectral data")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("XYZ outer surface: interval must be positive, got %g", interval)
	}
	shape := cmfs.Shape()
	aligned := cmfs.Align(SpectralShape{Start: shape.Start, End: shape.End, Interval: interval})
	bins := len(aligned.Wavelengths)
	if bins < 2 {
		return nil, fmt.Errorf("XYZ outer surface: need at least 2 bins, have %d", bins)
	}
	weights := make([]Vec3, bins)
	k := 0.0
	for i, w := range aligned.Wavelengths {
		s := illuminant.ValueAt(w)
		weights[i] = aligned.Values[i].Scale(s)
		k += weights[i][1]
	}
	if k == 0 {
		return nil, errors.New("XYZ outer surface: illuminant has no luminance over the observer domain")
	}
	waves := PulseWaves(bins)
	xyz := make([]Vec3, len(waves))
	for i, wave := range waves {
		var v Vec3
		for j, r := range wave {
			if r == 0 {
				continue
			}
			v[0] += weights[j][0]
			v[1] += weights[j][1]
			v[2] += weights[j][2]
		}
		xyz[i] = v.Scale(1 / k)
	}
	return xyz, nil
}
