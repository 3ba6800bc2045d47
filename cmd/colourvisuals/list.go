// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/scenefile"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// List prints the known colourspaces, models, observers, illuminants and
// visual types.
func List(c *Config) error {
	return list(termenv.NewOutput(os.Stdout))
}

func list(out *termenv.Output) error {
	bold := func(s string) string { return out.String(s).Bold().String() }
	section := func(title string) {
		fmt.Fprintf(out, "\n%s\n", bold(title))
	}

	section("RGB colourspaces")
	for _, name := range colour.RGBColourspaceNames() {
		cs, err := colour.RGBColourspaceByName(name)
		if err != nil {
			return err
		}
		var sw strings.Builder
		for _, p := range cs.Primaries {
			sw.WriteString(swatch(out, colour.XYToXYZ(p)))
		}
		fmt.Fprintf(out, "  %s %-20s %s\n", sw.String(), name, cs.WhitepointName)
	}

	section("Models")
	for _, m := range colour.ModelsValues() {
		axes := colour.AxisLabels(m)
		fmt.Fprintf(out, "  %-12s %s\n", m, strings.Join(axes[:], " "))
	}

	section("Chromaticity methods")
	for _, m := range colour.MethodsValues() {
		fmt.Fprintf(out, "  %s\n", m)
	}

	section("Observers")
	for _, name := range colour.CMFSNames() {
		fmt.Fprintf(out, "  %s\n", name)
	}

	section("Illuminants")
	for _, name := range colour.IlluminantNames() {
		fmt.Fprintf(out, "  %s\n", name)
	}

	section("Whitepoints")
	for _, name := range colour.WhitepointNames() {
		xy, err := colour.Whitepoint(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s %-8s %.5f %.5f\n", swatch(out, colour.XYToXYZ(xy)), name, xy[0], xy[1])
	}

	section("Visual types")
	for _, name := range scenefile.Types() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

// swatch returns two spaces with the normalised plotting colour of xyz as
// background.
func swatch(out *termenv.Output, xyz colour.Vec3) string {
	rgb := colour.PlottingColourspace.EncodeRGB(colour.NormaliseMaximum(colour.XYZToPlottingLinear(xyz)))
	c := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Clamped()
	return out.String("  ").Background(out.Color(c.Hex())).String()
}
