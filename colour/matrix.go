// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colour

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a row major 3x3 matrix.
type Matrix3 [3][3]float64

// Identity3 is the 3x3 identity matrix.
var Identity3 = Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// MulVec returns m * v.
func (m Matrix3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns m * o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				out[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return out
}

// Diagonal returns the diagonal matrix of v.
func Diagonal(v Vec3) Matrix3 {
	return Matrix3{{v[0], 0, 0}, {0, v[1], 0}, {0, 0, v[2]}}
}

// dense returns m as a gonum matrix.
func (m Matrix3) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func fromDense(d mat.Matrix) Matrix3 {
	var m Matrix3
	for i := range 3 {
		for j := range 3 {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

// Inverse returns the inverse of m, or an error if m is singular.
func (m Matrix3) Inverse() (Matrix3, error) {
	if m.Det() == 0 {
		return Matrix3{}, errors.New("matrix inverse: singular matrix")
	}
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		return Matrix3{}, fmt.Errorf("matrix inverse: %w", err)
	}
	return fromDense(&inv), nil
}

// Det returns the determinant of m.
func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Solve returns x such that m * x = b.
func (m Matrix3) Solve(b Vec3) (Vec3, error) {
	if m.Det() == 0 {
		return Vec3{}, errors.New("matrix solve: singular matrix")
	}
	var x mat.VecDense
	if err := x.SolveVec(m.dense(), mat.NewVecDense(3, b[:])); err != nil {
		return Vec3{}, fmt.Errorf("matrix solve: %w", err)
	}
	return Vec3{x.AtVec(0), x.AtVec(1), x.AtVec(2)}, nil
}
