// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"cogentcore.org/core/math32"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// Axes is a red, green and blue xyz axes visual labelled with the
// axis names of a colourspace model.
type Axes struct {
	Base
	ModelProperty
	SizeProperty
}

// NewAxes returns new [Axes] in CIE xyY with unit size.
func NewAxes(config ...func(v *Axes)) (*Axes, error) {
	v := &Axes{}
	v.init("Axes", v.Update)
	v.Model = colour.ModelXYY
	v.Size = 1
	return build(v, config)
}

var axesColours = [3]colour.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func (v *Axes) Update() error {
	if err := firstError(v.validateModel(), v.validateSize()); err != nil {
		return err
	}
	v.clear()
	s := float32(v.Size)
	ln := &geom.Lines{
		Positions: math32.ArrayF32{0, 0, 0, s, 0, 0, 0, 0, 0, 0, s, 0, 0, 0, 0, 0, 0, s},
		Thickness: 2,
	}
	for _, c := range axesColours {
		ln.Colors = append(ln.Colors, geom.Tile(geom.RGBA(c, 1), 2)...)
	}
	v.add(ln)

	names := colour.AxisLabels(v.Model)
	for i, name := range names {
		var p colour.Vec3
		p[i] = 1.1 * v.Size
		v.add(label(name, p, axesColours[i], geom.AnchorCenter, FontSizeMedium*2))
	}
	return nil
}
