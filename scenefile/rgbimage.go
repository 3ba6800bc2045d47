// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"image"
	_ "image/gif"
	"io"
	"math"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/colour-science/colour-visuals/colour"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// OpenRGB returns the linear RGB values of the pixels of an image file,
// decoded with the transfer function of cs. Images with more than
// maxPixels pixels are first downsampled.
func OpenRGB(filename string, maxPixels int, cs *colour.RGBColourspace) ([]colour.Vec3, error) {
	if maxPixels < 1 {
		return nil, fmt.Errorf("rgb image: max pixels %d must be at least 1", maxPixels)
	}
	if err := checkImage(filename); err != nil {
		return nil, err
	}
	img, err := imgio.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("rgb image %s: %w", filename, err)
	}
	return ImageRGB(img, maxPixels, cs), nil
}

// checkImage returns an error when the file header is not that of an
// image.
func checkImage(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("rgb image %s: %w", filename, err)
	}
	if !filetype.IsImage(head[:n]) {
		return fmt.Errorf("rgb image %s: not an image", filename)
	}
	return nil
}

// ImageRGB returns the linear RGB values of the pixels of img in row major
// order, downsampling it to at most maxPixels pixels.
func ImageRGB(img image.Image, maxPixels int, cs *colour.RGBColourspace) []colour.Vec3 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w*h > maxPixels {
		f := math.Sqrt(float64(maxPixels) / float64(w*h))
		w = max(int(float64(w)*f), 1)
		h = max(int(float64(h)*f), 1)
		img = transform.Resize(img, w, h, transform.Linear)
		b = img.Bounds()
	}
	rgb := make([]colour.Vec3, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			c := colour.Vec3{float64(r) / 0xffff, float64(g) / 0xffff, float64(bl) / 0xffff}
			rgb = append(rgb, cs.DecodeRGB(c))
		}
	}
	return rgb
}
