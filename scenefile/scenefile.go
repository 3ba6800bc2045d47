// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads scenes of visuals from TOML or YAML files.
//
// A scene lists visuals by type, each with optional properties that
// override the scene defaults:
//
//	background = [0.18, 0.18, 0.18]
//
//	[defaults]
//	method = "CIE 1976 UCS"
//
//	[[visual]]
//	type = "ChromaticityDiagram"
//	samples = 128
//
//	[[visual]]
//	type = "RGBColourspace2D"
//	colourspace = "Display P3"
//	position = [0, 0, 0.01]
package scenefile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the scene file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FormatOf returns the format of a file from its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("scenefile: %q is not a .toml, .yaml or .yml file", filename)
}

// Scene is a list of visuals over a background.
type Scene struct {

	// Background is the rgb background colour.
	Background colour.Vec3 `toml:"background" yaml:"background"`

	// Defaults are the properties of every visual that does not set them.
	Defaults VisualSpec `toml:"defaults" yaml:"defaults"`

	// Visuals are the visuals of the scene, in drawing order.
	Visuals []VisualSpec `toml:"visual" yaml:"visuals"`

	// dir resolves the relative paths of the visuals.
	dir string
}

// VisualSpec describes one visual. Unset properties keep the defaults of
// the scene, then those of the visual type.
type VisualSpec struct {

	// Type is the visual type name, e.g. "PlanckianLocus".
	Type string `toml:"type" yaml:"type"`

	// Name is the scene node name, the type when empty.
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Position offsets the visual in the scene.
	Position *[3]float64 `toml:"position,omitempty" yaml:"position,omitempty"`

	Method      string      `toml:"method,omitempty" yaml:"method,omitempty"`
	Model       string      `toml:"model,omitempty" yaml:"model,omitempty"`
	Colourspace string      `toml:"colourspace,omitempty" yaml:"colourspace,omitempty"`
	CMFS        string      `toml:"cmfs,omitempty" yaml:"cmfs,omitempty"`
	Illuminant  string      `toml:"illuminant,omitempty" yaml:"illuminant,omitempty"`
	Material    string      `toml:"material,omitempty" yaml:"material,omitempty"`
	Colour      *[3]float64 `toml:"colour,omitempty" yaml:"colour,omitempty"`
	Opacity     *float64    `toml:"opacity,omitempty" yaml:"opacity,omitempty"`
	Thickness   *float64    `toml:"thickness,omitempty" yaml:"thickness,omitempty"`
	Size        *float64    `toml:"size,omitempty" yaml:"size,omitempty"`
	Samples     *int        `toml:"samples,omitempty" yaml:"samples,omitempty"`
	Segments    *int        `toml:"segments,omitempty" yaml:"segments,omitempty"`
	Wireframe   *bool       `toml:"wireframe,omitempty" yaml:"wireframe,omitempty"`
	Mireds      *bool       `toml:"mireds,omitempty" yaml:"mireds,omitempty"`
	Labels      *[]float64  `toml:"labels,omitempty" yaml:"labels,omitempty"`

	// PointerGamut is the path of a Pointer's gamut CSV file.
	PointerGamut string `toml:"pointer_gamut,omitempty" yaml:"pointer_gamut,omitempty"`

	// RGB is the path of an image whose pixels are scattered.
	RGB string `toml:"rgb,omitempty" yaml:"rgb,omitempty"`

	// MaxPixels bounds the number of scattered pixels.
	MaxPixels *int `toml:"max_pixels,omitempty" yaml:"max_pixels,omitempty"`
}

// Read decodes a scene in the given format, rejecting unknown keys.
func Read(r io.Reader, format Formats) (*Scene, error) {
	sc := &Scene{Background: colour.Vec3{0.18, 0.18, 0.18}}
	var err error
	switch format {
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(sc)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(sc)
		if err == io.EOF {
			err = nil
		}
	default:
		err = fmt.Errorf("invalid format %d", format)
	}
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	return sc, nil
}

// Open reads the scene file, with the format given by its extension.
// Relative paths in the scene are resolved against the file directory.
func Open(filename string) (*Scene, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := Read(bytes.NewReader(b), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	sc.dir = filepath.Dir(filename)
	return sc, nil
}

// Save writes the scene file, with the format given by its extension.
func (sc *Scene) Save(filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	var b []byte
	switch format {
	case TOML:
		b, err = toml.Marshal(sc)
	case YAML:
		b, err = yaml.Marshal(sc)
	}
	if err != nil {
		return fmt.Errorf("scenefile: %w", err)
	}
	return os.WriteFile(filename, b, 0666)
}

// Resolved returns the spec of visual i with the scene defaults filled in.
func (sc *Scene) Resolved(i int) (VisualSpec, error) {
	var vs VisualSpec
	if err := copier.CopyWithOption(&vs, &sc.Defaults, copier.Option{DeepCopy: true}); err != nil {
		return vs, err
	}
	err := copier.CopyWithOption(&vs, &sc.Visuals[i], copier.Option{IgnoreEmpty: true, DeepCopy: true})
	return vs, err
}

func (sc *Scene) path(p string) string {
	if p == "" || filepath.IsAbs(p) || sc.dir == "" {
		return p
	}
	return filepath.Join(sc.dir, p)
}
