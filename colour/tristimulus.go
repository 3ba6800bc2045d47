// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import "errors"

// SDToXYZ returns the tristimulus values of the reflectance sd under the
// given illuminant, normalised so that a perfect reflector has Y = 1.
// The integration uses the wavelengths of the colour matching functions.
func SDToXYZ(sd *SpectralDistribution, cmfs *MultiSpectralDistributions, illuminant *SpectralDistribution) (Vec3, error) {
	if sd == nil || cmfs == nil || illuminant == nil {
		return Vec3{}, errors.New("SDToXYZ: nil spectral data")
	}
	var xyz Vec3
	k := 0.0
	for i, w := range cmfs.Wavelengths {
		s := illuminant.ValueAt(w)
		r := sd.ValueAt(w)
		c := cmfs.Values[i]
		xyz[0] += r * s * c[0]
		xyz[1] += r * s * c[1]
		xyz[2] += r * s * c[2]
		k += s * c[1]
	}
	if k == 0 {
		return Vec3{}, errors.New("SDToXYZ: illuminant has no luminance over the observer domain")
	}
	return xyz.Scale(1 / k), nil
}

// EmissionToXYZ returns the tristimulus values of a light source spectral
// distribution, normalised to Y = 1.
func EmissionToXYZ(sd *SpectralDistribution, cmfs *MultiSpectralDistributions) (Vec3, error) {
	if sd == nil || cmfs == nil {
		return Vec3{}, errors.New("EmissionToXYZ: nil spectral data")
	}
	var xyz Vec3
	for i, w := range cmfs.Wavelengths {
		s := sd.ValueAt(w)
		c := cmfs.Values[i]
		xyz[0] += s * c[0]
		xyz[1] += s * c[1]
		xyz[2] += s * c[2]
	}
	if xyz[1] == 0 {
		return Vec3{}, errors.New("EmissionToXYZ: spectral distribution has no luminance")
	}
	return xyz.Scale(1 / xyz[1]), nil
}
