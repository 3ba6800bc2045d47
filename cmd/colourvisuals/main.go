// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colourvisuals shows colour science visuals in a 3D scene viewer,
// and exports them as images.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/core/cli"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
)

// Config is the configuration of the colourvisuals command. It can be set
// in a colourvisuals.toml file and overridden with flags.
type Config struct {

	// Scene is the TOML or YAML scene file to view. A default scene is
	// shown when it is empty.
	Scene string `cmd:"view" posarg:"0" required:"-"`

	// Image is the image whose pixels are scattered.
	Image string `cmd:"scatter" posarg:"0" required:"-"`

	// Output is the directory the images are written to.
	Output string `flag:"o,output" default:"~/colour-visuals"`

	// Width is the image width in pixels.
	Width int `default:"960"`

	// Height is the image height in pixels.
	Height int `default:"540"`

	// PointerGamut is the path of a Pointer's gamut CSV dataset. The
	// Pointer's gamut plots are skipped without it.
	PointerGamut string

	// Colourspace is the RGB colourspace of the scatter and preview
	// commands.
	Colourspace string `default:"sRGB"`

	// Model is the colourspace model of the scatter command.
	Model string `default:"CIE xyY"`

	// Method is the chromaticity diagram method of the preview command.
	Method string `default:"CIE 1931"`

	// Swatches is the number of hue swatches.
	Swatches int `cmd:"patterns" default:"12"`

	// Stripes is the number of hue stripes.
	Stripes int `cmd:"patterns" default:"6"`

	// Samples is the pattern size in pixels.
	Samples int `cmd:"patterns" default:"256"`

	// Wheel is the colour wheel method, Colour or Nuke.
	Wheel string `cmd:"patterns" default:"Colour"`

	// Seed seeds the random RGB values of the plots.
	Seed int64 `cmd:"plots" default:"16"`

	// MaxPixels bounds the number of scattered pixels.
	MaxPixels int `cmd:"scatter" default:"4096"`

	// Profile writes a CPU profile to the output directory.
	Profile bool
}

func main() {
	opts := cli.DefaultOptions("colourvisuals", "Colour science visuals: chromaticity diagrams, RGB colourspace gamuts, loci and scatter plots.")
	opts.DefaultFiles = []string{"colourvisuals.toml"}
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: profiled(View), Name: "view", Root: true,
			Doc: "View opens the scene file in a 3D viewer, reloading it when it changes."},
		&cli.Cmd[*Config]{Func: profiled(Plots), Name: "plots",
			Doc: "Plots writes an image of every visual, and of example scenes."},
		&cli.Cmd[*Config]{Func: profiled(Patterns), Name: "patterns",
			Doc: "Patterns writes the hue swatches, hue stripes and colour wheel images."},
		&cli.Cmd[*Config]{Func: profiled(List), Name: "list",
			Doc: "List prints the known colourspaces, models, observers, illuminants and visual types."},
		&cli.Cmd[*Config]{Func: profiled(Preview), Name: "preview",
			Doc: "Preview draws a chromaticity diagram in the terminal."},
		&cli.Cmd[*Config]{Func: profiled(Scatter), Name: "scatter",
			Doc: "Scatter writes an image of the pixels of an image scattered in a colourspace model."},
	)
}

// profiled wraps a command so that it is CPU profiled when
// [Config.Profile] is set.
func profiled(fn func(c *Config) error) func(c *Config) error {
	return func(c *Config) error {
		if c.Profile {
			dir, err := c.outputDir()
			if err != nil {
				return err
			}
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.Quiet).Stop()
		}
		return fn(c)
	}
}

// outputDir returns the output directory with ~ expanded, creating it.
func (c *Config) outputDir() (string, error) {
	dir, err := homedir.Expand(c.Output)
	if err != nil {
		return "", fmt.Errorf("output %q: %w", c.Output, err)
	}
	return dir, os.MkdirAll(dir, 0755)
}

func (c *Config) colourspace() (*colour.RGBColourspace, error) {
	return colour.RGBColourspaceByName(c.Colourspace)
}

func (c *Config) imageSize() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("image size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}
