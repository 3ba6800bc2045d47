// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Inside reports whether p is inside the polygon using the even-odd rule.
// The polygon is implicitly closed.
func Inside[V ~[2]float64](polygon []V, p V) bool {
	in := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := polygon[i], polygon[j]
		if (a[1] > p[1]) == (b[1] > p[1]) {
			continue
		}
		x := a[0] + (p[1]-a[1])*(b[0]-a[0])/(b[1]-a[1])
		if p[0] < x {
			in = !in
		}
	}
	return in
}

// Linspace returns n evenly spaced values over [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	vs := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range vs {
		vs[i] = start + float64(i)*step
	}
	vs[n-1] = stop
	return vs
}
