// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
	"github.com/colour-science/colour-visuals/scenefile"
	"github.com/colour-science/colour-visuals/visuals"
	"github.com/colour-science/colour-visuals/xyzvisual"
)

// DefaultScene is the scene shown when no scene file is given.
const DefaultScene = `
background = [0.18, 0.18, 0.18]

[[visual]]
type = "Grid"
size = 2

[[visual]]
type = "ChromaticityDiagramCIE1931"
opacity = 0.25

[[visual]]
type = "RGBColourspace2D"
colourspace = "ACEScg"

[[visual]]
type = "RGBColourspace3D"
colourspace = "Display P3"
opacity = 0.5
wireframe = true

[[visual]]
type = "SpectralLocus3D"
`

// View opens [Config.Scene] in a 3D scene viewer, reloading it when the
// file changes.
func View(c *Config) error {
	scene, err := openScene(c.Scene)
	if err != nil {
		return err
	}
	b := core.NewBody("Colour Visuals")
	se := xyzcore.NewSceneEditor(b)
	se.UpdateWidget()
	sc := se.SceneXYZ()
	bb, err := show(sc, scene)
	if err != nil {
		return err
	}
	xyzvisual.Frame(sc, bb)
	sc.Background = background(scene.Background)

	if c.Scene != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			errors.Log(scenefile.Watch(ctx, c.Scene, func(scene *scenefile.Scene, err error) {
				if err != nil {
					slog.Error("view: reading scene", "err", err)
					return
				}
				se.AsyncLock()
				defer se.AsyncUnlock()
				if _, err := show(sc, scene); err != nil {
					slog.Error("view: building scene", "err", err)
					return
				}
				sc.Background = background(scene.Background)
				sc.Update()
				se.NeedsRender()
				slog.Info("view: reloaded", "file", c.Scene)
			}))
		}()
	}
	b.RunMainWindow()
	return nil
}

// openScene reads the scene file, or the default scene when filename is
// empty.
func openScene(filename string) (*scenefile.Scene, error) {
	if filename == "" {
		return scenefile.Read(strings.NewReader(DefaultScene), scenefile.TOML)
	}
	return scenefile.Open(filename)
}

// show replaces the nodes of sc with the visuals of the scene, returning
// their bounding box. sc is left unchanged when a visual fails to build.
func show(sc *xyz.Scene, scene *scenefile.Scene) (math32.Box3, error) {
	items, err := scene.Build()
	if err != nil {
		return math32.Box3{}, err
	}
	var prims []geom.Primitive
	for _, it := range items {
		prims = append(prims, visuals.Flatten(it.Visual)...)
	}
	if err := geom.ValidateAll(prims...); err != nil {
		return math32.Box3{}, err
	}
	sc.DeleteChildren()
	sc.DeleteUnusedMeshes()
	for _, it := range items {
		gp, err := xyzvisual.Add(sc, sc, it.Visual)
		if err != nil {
			return math32.Box3{}, err
		}
		gp.SetName(it.Name)
		p := it.Position
		gp.Pose.Pos.Set(float32(p[0]), float32(p[1]), float32(p[2]))
	}
	return geom.Bounds(prims...), nil
}

func background(rgb colour.Vec3) image.Image {
	c := rgb.Clip()
	return colors.Uniform(color.RGBA{uint8(c[0]*255 + 0.5), uint8(c[1]*255 + 0.5), uint8(c[2]*255 + 0.5), 255})
}
