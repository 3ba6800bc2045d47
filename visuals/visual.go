// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visuals provides colour science visuals: chromaticity diagrams,
// RGB colourspace gamuts, loci and scatter plots expressed as renderer
// buffers. Visuals are built with a New function that takes optional
// configuration closures, and can be changed afterwards with chaining
// setters that rebuild the buffers.
package visuals

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// Visual is a colour science visual.
type Visual interface {

	// Name returns the visual name.
	Name() string

	// Update validates the properties and rebuilds the primitives.
	Update() error

	// Primitives returns the primitives of this visual, not
	// including those of its children.
	Primitives() []geom.Primitive

	// Children returns the sub-visuals of a compound visual.
	Children() []Visual

	// AsBase returns the [Base] of the visual.
	AsBase() *Base
}

// Base provides the core implementation of the [Visual] interface.
type Base struct {
	name       string
	primitives []geom.Primitive
	children   []Visual
	update     func() error
	blocked    bool
}

func (b *Base) init(name string, update func() error) {
	b.name = name
	b.update = update
}

func (b *Base) AsBase() *Base { return b }

func (b *Base) Name() string { return b.name }

func (b *Base) Primitives() []geom.Primitive { return b.primitives }

func (b *Base) Children() []Visual { return b.children }

// BlockUpdate calls fn with updates disabled, so that several properties
// can be set at once, then updates the visual.
func (b *Base) BlockUpdate(fn func()) error {
	b.blocked = true
	fn()
	b.blocked = false
	return b.update()
}

// changed is called by the setters.
func (b *Base) changed() {
	if b.blocked || b.update == nil {
		return
	}
	errors.Log(b.update())
}

func (b *Base) clear() {
	b.primitives = nil
	b.children = nil
}

func (b *Base) add(prims ...geom.Primitive) {
	b.primitives = append(b.primitives, prims...)
}

func (b *Base) addChild(children ...Visual) {
	b.children = append(b.children, children...)
}

// Flatten returns the primitives of the visual and all of its children.
func Flatten(v Visual) []geom.Primitive {
	prims := append([]geom.Primitive(nil), v.Primitives()...)
	for _, c := range v.Children() {
		prims = append(prims, Flatten(c)...)
	}
	return prims
}

// Style colours and font sizes shared by the visuals.
var (
	ColourLight = colour.Vec3{0.9, 0.9, 0.9}
	ColourDark  = colour.Vec3{0.18, 0.18, 0.18}

	FontSizeSmall  float32 = 9
	FontSizeMedium float32 = 12
)

// epsilon replaces zeros before model conversions.
const epsilon = 2.220446049250313e-16

// plottingWhitepoint is the whitepoint of the plotting colourspace.
func plottingWhitepoint() colour.XY {
	return colour.PlottingColourspace.Whitepoint
}

// build runs the configuration closures and the first update.
func build[T Visual](v T, config []func(T)) (T, error) {
	b := v.AsBase()
	b.blocked = true
	for _, fn := range config {
		fn(v)
	}
	b.blocked = false
	if err := v.Update(); err != nil {
		slog.Debug("visual rejected", "visual", v.Name(), "err", err)
		return v, err
	}
	return v, nil
}

// firstError returns the first non nil error.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func nonZero(v colour.Vec3) colour.Vec3 {
	for i := range v {
		if v[i] == 0 {
			v[i] = epsilon
		}
	}
	return v
}
