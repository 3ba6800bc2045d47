// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// RoschMacAdamInterval is the wavelength interval, in nm, of the square
// pulse reflectances of the Rösch-MacAdam solid.
const RoschMacAdamInterval = 5

// RoschMacAdam is the Rösch-MacAdam colour solid, the outer surface of
// all object colours under an illuminant.
type RoschMacAdam struct {
	Base
	CMFSProperty
	IlluminantProperty
	ModelProperty
	ColourProperty
	OpacityProperty
	ThicknessProperty
}

// NewRoschMacAdam returns a new [RoschMacAdam] of the CIE 1931 2 degree
// observer under illuminant E in CIE xyY.
func NewRoschMacAdam(config ...func(v *RoschMacAdam)) (*RoschMacAdam, error) {
	v := &RoschMacAdam{}
	v.init("RoschMacAdam", v.Update)
	v.CMFS = defaultCMFS()
	v.Illuminant, _ = colour.Illuminant("E")
	v.Model = colour.ModelXYY
	v.Opacity = 1
	v.Thickness = 1
	return build(v, config)
}

func (v *RoschMacAdam) Update() error {
	if err := firstError(v.validateCMFS(), v.validateIlluminant(), v.validateModel(),
		v.validateColour(), v.validateOpacity(), v.validateThickness()); err != nil {
		return err
	}
	v.clear()
	xyz, err := colour.XYZOuterSurface(v.CMFS, v.Illuminant, RoschMacAdamInterval)
	if err != nil {
		return err
	}
	cs := colour.PlottingColourspace
	rgb := make([]colour.Vec3, len(xyz))
	for i := range xyz {
		xyz[i] = nonZero(xyz[i])
		rgb[i] = cs.XYZToRGB(xyz[i]).Clip()
	}
	positions := positionsIn(v.Model, xyz, cs.Whitepoint)
	v.add(lines(geom.AsArrayF32Vec3(geom.Segments(positions)),
		v.colours(geom.Segments(rgb), v.Opacity), v.Thickness))
	return nil
}
