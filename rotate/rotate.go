// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rotate builds the two rotation layers a member stiffness passes
// through on its way from local axes to the global assembled system: the
// member's own local-to-global rotation, and the oblique-support rotation
// that re-expresses an end's DOFs in support-local axes.
package rotate

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/staframe/model"
)

// Member returns the 6x6 block-diagonal local-to-global rotation R(θ) for a
// member whose local x-axis makes angle theta (radians) with global X.
// u_local = R * u_global.
func Member(theta float64) [][]float64 {
	c, s := math.Cos(theta), math.Sin(theta)
	r := la.MatAlloc(6, 6)
	r[0][0], r[0][1] = c, s
	r[1][0], r[1][1] = -s, c
	r[2][2] = 1
	r[3][3], r[3][4] = c, s
	r[4][3], r[4][4] = -s, c
	r[5][5] = 1
	return r
}

// block3 writes a 3x3 block of a 6x6 matrix starting at (row, col).
func block3(dst [][]float64, row, col int, b [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			dst[row+i][col+j] = b[i][j]
		}
	}
}

// identity3 and rot3 are the two possible per-end 3x3 blocks of RI: the
// identity for a non-oblique end, or a rotation of -angle for an oblique
// support.
func identity3() [3][3]float64 {
	return [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func rot3(angle float64) [3][3]float64 {
	c, s := math.Cos(-angle), math.Sin(-angle)
	return [3][3]float64{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// endBlock returns the 3x3 RI block for one member end at node n: a
// rotation of -SupportAngle if the node has exactly one translational
// restraint (an oblique support), else the identity.
func endBlock(n *model.Node) [3][3]float64 {
	if n.Oblique() {
		return rot3(n.SupportAngle)
	}
	return identity3()
}

// Support returns the 6x6 block-diagonal oblique-support rotation RI for a
// member between nodes ni and nj.
func Support(ni, nj *model.Node) [][]float64 {
	ri := la.MatAlloc(6, 6)
	block3(ri, 0, 0, endBlock(ni))
	block3(ri, 3, 3, endBlock(nj))
	return ri
}

// Combined returns R*RI folded into a single 6x6 matrix, since every caller
// in the solver needs the product of the two rotation layers together.
func Combined(theta float64, ni, nj *model.Node) [][]float64 {
	r := Member(theta)
	ri := Support(ni, nj)
	out := la.MatAlloc(6, 6)
	la.MatMul(out, 1, r, ri)
	return out
}
