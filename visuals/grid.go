// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"fmt"
	"strconv"

	"cogentcore.org/core/math32"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// Grid is a ground plane grid in xy with major unit lines, minor tenth
// lines, x and y axes and tick labels.
type Grid struct {
	Base
	SizeProperty

	MajorGridColour colour.Vec3
	MinorGridColour colour.Vec3

	MajorTickLabels      bool
	MajorTickLabelColour colour.Vec3

	MinorTickLabels      bool
	MinorTickLabelColour colour.Vec3
}

// NewGrid returns a new [Grid] spanning 20 units.
func NewGrid(config ...func(v *Grid)) (*Grid, error) {
	v := &Grid{
		MajorGridColour:      colour.Vec3{0.5, 0.5, 0.5},
		MinorGridColour:      colour.Vec3{0.25, 0.25, 0.25},
		MajorTickLabels:      true,
		MajorTickLabelColour: colour.Vec3{0.75, 0.75, 0.75},
		MinorTickLabels:      true,
		MinorTickLabelColour: colour.Vec3{0.5, 0.5, 0.5},
	}
	v.init("Grid", v.Update)
	v.Size = 20
	return build(v, config)
}

func (v *Grid) Update() error {
	if err := v.validateSize(); err != nil {
		return err
	}
	size := int(v.Size)
	if size < 1 {
		return fmt.Errorf("grid size %g must be at least 1", v.Size)
	}
	v.clear()
	s := float32(size)

	for _, g := range []struct {
		segments int
		rgb      colour.Vec3
		z        float32
	}{
		{size, v.MajorGridColour, 0},
		{size * 10, v.MinorGridColour, -1e-3},
	} {
		ms, err := geom.Grid(g.segments, g.segments)
		if err != nil {
			return err
		}
		geom.Transform(ms.Positions, math32.Vec3(s, s, 1), math32.Vec3(0, 0, g.z))
		ms.Colors = geom.Tile(geom.RGBA(g.rgb, 1), ms.NumVertex())
		ms.Wireframe = true
		v.add(ms)
	}

	h := s / 2
	v.add(&geom.Lines{
		Positions: math32.ArrayF32{0, 0, 0, h, 0, 0, 0, 0, 0, 0, h, 0},
		Colors:    append(geom.Tile(math32.Vec4(1, 0, 0, 1), 2), geom.Tile(math32.Vec4(0, 1, 0, 1), 2)...),
		Thickness: 2,
	})

	// odd sizes have one more negative tick
	lo, hi := -(size+1)/2, size/2
	if v.MajorTickLabels {
		for i := lo; i <= hi; i++ {
			x := float64(i)
			if i == 0 {
				v.add(label("0 ", colour.Vec3{0, 0, 1e-3}, v.MajorTickLabelColour, geom.AnchorTopRight, FontSizeMedium))
				continue
			}
			v.add(label(strconv.Itoa(i), colour.Vec3{x, 0, 1e-3}, v.MajorTickLabelColour, geom.AnchorTopCenter, FontSizeMedium))
			v.add(label(strconv.Itoa(i)+" ", colour.Vec3{0, x, 1e-3}, v.MajorTickLabelColour, geom.AnchorCenterRight, FontSizeMedium))
		}
	}
	if v.MinorTickLabels {
		for k := lo * 10; k <= hi*10; k++ {
			if k%10 == 0 {
				continue
			}
			x := float64(k) / 10
			text := strconv.FormatFloat(x, 'f', 1, 64)
			v.add(label(text, colour.Vec3{x, 0, 1e-3}, v.MinorTickLabelColour, geom.AnchorTopCenter, FontSizeSmall))
			v.add(label(text+" ", colour.Vec3{0, x, 1e-3}, v.MinorTickLabelColour, geom.AnchorCenterRight, FontSizeSmall))
		}
	}
	return nil
}
