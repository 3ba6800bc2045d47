// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulseWaves(t *testing.T) {
	waves := PulseWaves(4)
	require.Len(t, waves, 2+3*4)
	assert.Equal(t, []float64{0, 0, 0, 0}, waves[0])
	assert.Equal(t, []float64{1, 1, 1, 1}, waves[len(waves)-1])
	assert.Equal(t, []float64{1, 0, 0, 0}, waves[1])
	assert.Equal(t, []float64{0, 1, 0, 0}, waves[2])
	// width 2 rotated by 3 wraps around
	assert.Equal(t, []float64{1, 0, 0, 1}, waves[1+4+3])
	for i, w := range waves[1 : len(waves)-1] {
		sum := 0.0
		for _, v := range w {
			sum += v
		}
		assert.Equal(t, float64(i/4+1), sum)
	}
}

func TestXYZOuterSurface(t *testing.T) {
	cmfs, err := CMFS(CIE1931Observer)
	require.NoError(t, err)
	e, err := Illuminant("E")
	require.NoError(t, err)

	xyz, err := XYZOuterSurface(cmfs, e, 20)
	require.NoError(t, err)
	bins := DefaultShape.Len()/20 + 1
	require.Len(t, xyz, 2+(bins-1)*bins)
	assert.Equal(t, Vec3{}, xyz[0])
	assert.InDelta(t, 1, xyz[len(xyz)-1][1], 1e-12)
	for _, v := range xyz {
		assert.GreaterOrEqual(t, v[1], 0.0)
		assert.LessOrEqual(t, v[1], 1+1e-12)
	}

	_, err = XYZOuterSurface(cmfs, e, 0)
	assert.Error(t, err)
	_, err = XYZOuterSurface(nil, e, 5)
	assert.Error(t, err)
}
