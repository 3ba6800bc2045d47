// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/colour-science/colour-visuals/visuals"
)

// DefaultMaxPixels is the default bound on the scattered pixels of an
// RGB image.
const DefaultMaxPixels = 4096

// Item is a built visual with its scene placement.
type Item struct {
	Name     string
	Position [3]float64
	Visual   visuals.Visual
}

// constructor builds a visual, calling set on it or on each of its
// sub-visuals before the first update.
type constructor func(spec *VisualSpec, sc *Scene, set func(v any, strict bool) error) (visuals.Visual, error)

// newVisual returns a constructor of a single visual.
func newVisual[T visuals.Visual](fn func(...func(T)) (T, error)) constructor {
	return func(_ *VisualSpec, _ *Scene, set func(any, bool) error) (visuals.Visual, error) {
		var serr error
		v, err := fn(func(v T) { serr = set(v, true) })
		return v, firstError(serr, err)
	}
}

// newGroup returns a constructor of a chromaticity diagram group, setting
// each property on the sub-visuals that have it.
func newGroup(fn func(func(*visuals.SpectralLocus2D), func(*visuals.ChromaticityDiagram)) (*visuals.ChromaticityDiagramGroup, error)) constructor {
	return func(_ *VisualSpec, _ *Scene, set func(any, bool) error) (visuals.Visual, error) {
		var lerr, derr error
		v, err := fn(func(v *visuals.SpectralLocus2D) { lerr = set(v, false) },
			func(v *visuals.ChromaticityDiagram) { derr = set(v, false) })
		return v, firstError(lerr, derr, err)
	}
}

var constructors = map[string]constructor{
	"Axes":                          newVisual(visuals.NewAxes),
	"Grid":                          newVisual(visuals.NewGrid),
	"SpectralLocus2D":               newVisual(visuals.NewSpectralLocus2D),
	"SpectralLocus3D":               newVisual(visuals.NewSpectralLocus3D),
	"ChromaticityDiagram":           newVisual(visuals.NewChromaticityDiagram),
	"ChromaticityDiagramCIE1931":    newGroup(visuals.NewChromaticityDiagramCIE1931),
	"ChromaticityDiagramCIE1960UCS": newGroup(visuals.NewChromaticityDiagramCIE1960UCS),
	"ChromaticityDiagramCIE1976UCS": newGroup(visuals.NewChromaticityDiagramCIE1976UCS),
	"PlanckianLocus":                newVisual(visuals.NewPlanckianLocus),
	"DaylightLocus":                 newVisual(visuals.NewDaylightLocus),
	"RGBColourspace2D":              newVisual(visuals.NewRGBColourspace2D),
	"RGBColourspace3D":              newVisual(visuals.NewRGBColourspace3D),
	"RoschMacAdam":                  newVisual(visuals.NewRoschMacAdam),
	"PointerGamut2D": func(spec *VisualSpec, sc *Scene, set func(any, bool) error) (visuals.Visual, error) {
		pg, err := sc.pointerGamut(spec)
		if err != nil {
			return nil, err
		}
		var serr error
		v, err := visuals.NewPointerGamut2D(pg, func(v *visuals.PointerGamut2D) { serr = set(v, true) })
		return v, firstError(serr, err)
	},
	"PointerGamut3D": func(spec *VisualSpec, sc *Scene, set func(any, bool) error) (visuals.Visual, error) {
		pg, err := sc.pointerGamut(spec)
		if err != nil {
			return nil, err
		}
		var serr error
		v, err := visuals.NewPointerGamut3D(pg, func(v *visuals.PointerGamut3D) { serr = set(v, true) })
		return v, firstError(serr, err)
	},
	"RGBScatter3D": func(spec *VisualSpec, sc *Scene, set func(any, bool) error) (visuals.Visual, error) {
		if spec.RGB == "" {
			return nil, fmt.Errorf("RGBScatter3D needs an rgb image path")
		}
		maxPixels := DefaultMaxPixels
		if spec.MaxPixels != nil {
			maxPixels = *spec.MaxPixels
		}
		rgb, err := OpenRGB(sc.path(spec.RGB), maxPixels, colour.SRGB)
		if err != nil {
			return nil, err
		}
		var serr error
		v, err := visuals.NewRGBScatter3D(rgb, func(v *visuals.RGBScatter3D) { serr = set(v, true) })
		return v, firstError(serr, err)
	},
}

// Types returns the sorted visual type names.
func Types() []string {
	return slices.Sorted(maps.Keys(constructors))
}

func constructorOf(typ string) (constructor, error) {
	for name, c := range constructors {
		if strings.EqualFold(name, typ) {
			return c, nil
		}
	}
	return nil, colour.UnknownNameError("visual type", typ, Types())
}

func (sc *Scene) pointerGamut(spec *VisualSpec) (*colour.PointerGamut, error) {
	if spec.PointerGamut == "" {
		return nil, fmt.Errorf("%s needs a pointer_gamut dataset path", spec.Type)
	}
	return colour.OpenPointerGamut(sc.path(spec.PointerGamut))
}

// Build builds the visuals of the scene in order.
func (sc *Scene) Build() ([]Item, error) {
	items := make([]Item, 0, len(sc.Visuals))
	for i := range sc.Visuals {
		spec, err := sc.Resolved(i)
		if err != nil {
			return nil, err
		}
		item, err := sc.build(&spec)
		if err != nil {
			return nil, fmt.Errorf("scenefile: visual %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (sc *Scene) build(spec *VisualSpec) (Item, error) {
	item := Item{Name: spec.Name}
	if spec.Position != nil {
		item.Position = *spec.Position
	}
	c, err := constructorOf(spec.Type)
	if err != nil {
		return item, err
	}
	fields, err := spec.fields()
	if err != nil {
		return item, err
	}
	set := func(v any, strict bool) error {
		return setFields(v, fields, strict)
	}
	item.Visual, err = c(spec, sc, set)
	if err != nil {
		return item, err
	}
	if item.Name == "" {
		item.Name = item.Visual.Name()
	}
	return item, nil
}

// fields returns the visual field values of the set properties, by
// field name.
func (spec *VisualSpec) fields() (map[string]any, error) {
	fields := map[string]any{}
	var err error
	if spec.Method != "" {
		if fields["Method"], err = colour.ParseMethod(spec.Method); err != nil {
			return nil, err
		}
	}
	if spec.Model != "" {
		if fields["Model"], err = colour.ParseModel(spec.Model); err != nil {
			return nil, err
		}
	}
	if spec.Colourspace != "" {
		if fields["Colourspace"], err = colour.RGBColourspaceByName(spec.Colourspace); err != nil {
			return nil, err
		}
	}
	if spec.CMFS != "" {
		if fields["CMFS"], err = colour.CMFS(spec.CMFS); err != nil {
			return nil, err
		}
	}
	if spec.Illuminant != "" {
		if fields["Illuminant"], err = colour.Illuminant(spec.Illuminant); err != nil {
			return nil, err
		}
	}
	if spec.Material != "" {
		var m geom.MaterialTypes
		if err := m.SetString(spec.Material); err != nil {
			return nil, err
		}
		fields["Material"] = m
	}
	if spec.Colour != nil {
		c := colour.Vec3(*spec.Colour)
		fields["Colour"] = &c
	}
	optional := map[string]any{
		"Opacity":   spec.Opacity,
		"Thickness": spec.Thickness,
		"Size":      spec.Size,
		"Samples":   spec.Samples,
		"Segments":  spec.Segments,
		"Wireframe": spec.Wireframe,
		"Mireds":    spec.Mireds,
		"Labels":    spec.Labels,
	}
	for name, p := range optional {
		if rv := reflect.ValueOf(p); !rv.IsNil() {
			fields[name] = rv.Elem().Interface()
		}
	}
	return fields, nil
}

// setFields sets the named fields of the visual pointed to by v. Strict
// setting fails on a field the visual does not have.
func setFields(v any, fields map[string]any, strict bool) error {
	rv := reflect.ValueOf(v).Elem()
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanSet() {
			if strict {
				return fmt.Errorf("%s has no %s property", rv.Type().Name(), strings.ToLower(name))
			}
			continue
		}
		val := reflect.ValueOf(fields[name])
		if !val.Type().AssignableTo(f.Type()) {
			return fmt.Errorf("%s property %s is a %v, not a %v", rv.Type().Name(), strings.ToLower(name), val.Type(), f.Type())
		}
		f.Set(val)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
