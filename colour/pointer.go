// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fogleman/delaunay"
	"github.com/lucasb-eyer/go-colorful"
)

// PointerIlluminant is the chromaticity of the illuminant Pointer's gamut
// was measured under, CIE Illuminant C.
var PointerIlluminant = XY{0.31006, 0.31616}

// PointerGamut is Pointer's gamut of real surface colours, as CIE LCHab
// rows grouped by lightness level.
type PointerGamut struct {

	// Illuminant is the chromaticity of the illuminant of the dataset.
	Illuminant XY

	// Volume are the L*, C*ab, hab rows with L* and C*ab in [0, 100] and
	// hab in degrees, ordered by lightness level then hue.
	Volume []Vec3

	// Levels is the number of lightness levels.
	Levels int
}

// LoadPointerGamut reads Pointer's gamut from CSV rows of L*, C*ab, hab.
// Rows must be grouped by lightness, with the same number of hues per level.
func LoadPointerGamut(r io.Reader, name string) (*PointerGamut, error) {
	rows, err := readRows(r, name, 3)
	if err != nil {
		return nil, err
	}
	pg := &PointerGamut{Illuminant: PointerIlluminant, Volume: make([]Vec3, len(rows))}
	for i, row := range rows {
		pg.Volume[i] = Vec3{row[0], row[1], row[2]}
		if i == 0 || row[0] != rows[i-1][0] {
			pg.Levels++
		}
	}
	return pg, pg.Validate()
}

// OpenPointerGamut loads Pointer's gamut from a CSV file.
func OpenPointerGamut(filename string) (*PointerGamut, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPointerGamut(f, filename)
}

// Validate checks that the volume splits into equally sized levels.
func (pg *PointerGamut) Validate() error {
	if pg.Levels <= 0 || len(pg.Volume) == 0 {
		return fmt.Errorf("Pointer's gamut: empty volume")
	}
	if len(pg.Volume)%pg.Levels != 0 {
		return fmt.Errorf("Pointer's gamut: %d rows do not split into %d levels", len(pg.Volume), pg.Levels)
	}
	n := pg.Hues()
	for l := range pg.Levels {
		level := pg.Volume[l*n : (l+1)*n]
		for _, v := range level {
			if v[0] != level[0][0] {
				return fmt.Errorf("Pointer's gamut: level %d mixes lightness %g and %g", l, level[0][0], v[0])
			}
		}
	}
	return nil
}

// Hues returns the number of hues per lightness level.
func (pg *PointerGamut) Hues() int {
	if pg.Levels == 0 {
		return 0
	}
	return len(pg.Volume) / pg.Levels
}

// XYZ returns the XYZ values of the volume rows, relative to the dataset
// illuminant.
func (pg *PointerGamut) XYZ() []Vec3 {
	wref := whiteRef(pg.Illuminant)
	xyz := make([]Vec3, len(pg.Volume))
	for i, v := range pg.Volume {
		l, a, b := colorful.HclToLab(v[2], v[1]/100, v[0]/100)
		x, y, z := colorful.LabToXyzWhiteRef(l, a, b, wref)
		xyz[i] = Vec3{x, y, z}
	}
	return xyz
}

// Sections returns the XYZ rings of each lightness level.
func (pg *PointerGamut) Sections() [][]Vec3 {
	xyz := pg.XYZ()
	n := pg.Hues()
	sections := make([][]Vec3, pg.Levels)
	for l := range sections {
		sections[l] = xyz[l*n : (l+1)*n]
	}
	return sections
}

// Boundary returns the convex hull of the volume chromaticities in the
// given diagram method, counter clockwise.
func (pg *PointerGamut) Boundary(m Methods) []XY {
	xyz := pg.XYZ()
	ij := make([]XY, len(xyz))
	for i, v := range xyz {
		ij[i] = XYZToIJ(m, v, pg.Illuminant)
	}
	return convexHull(ij)
}

// convexHull returns the convex hull of points counter clockwise from the
// lowest point in x then y, without collinear or repeated points. Fewer than
// three distinct or collinear points give their extremes.
func convexHull(points []XY) []XY {
	ps := slices.Clone(points)
	slices.SortFunc(ps, func(a, b XY) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	ps = slices.Compact(ps)
	if len(ps) < 3 {
		return ps
	}
	extremes := []XY{ps[0], ps[len(ps)-1]}
	dp := make([]delaunay.Point, len(ps))
	for i, p := range ps {
		dp[i] = delaunay.Point{X: p[0], Y: p[1]}
	}
	tr, err := delaunay.Triangulate(dp)
	if err != nil {
		return extremes
	}
	cross := func(o, a, b XY) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	hull := make([]XY, len(tr.ConvexHull))
	area := 0.0
	for i, p := range tr.ConvexHull {
		hull[i] = XY{p.X, p.Y}
	}
	for i := 2; i < len(hull); i++ {
		area += cross(hull[0], hull[i-1], hull[i])
	}
	if area < 0 {
		slices.Reverse(hull)
	}
	var out []XY
	for i, p := range hull {
		prev, next := hull[(i+len(hull)-1)%len(hull)], hull[(i+1)%len(hull)]
		if cross(prev, p, next) > 0 {
			out = append(out, p)
		}
	}
	if len(out) < 3 {
		return extremes
	}
	first := 0
	for i, p := range out {
		if p[0] < out[first][0] || (p[0] == out[first][0] && p[1] < out[first][1]) {
			first = i
		}
	}
	return slices.Concat(out[first:], out[:first])
}
