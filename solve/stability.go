// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import "math"

// stabilityEps is the threshold below which an axial force or bending
// stiffness is treated as zero, falling back to the ordinary linear beam
// coefficients.
const stabilityEps = 1e-9

// Stability returns the Galambos stability-function coefficients C, S for a
// member of length L and bending stiffness EI carrying axial force p
// (positive = tension, negative = compression). As p -> 0 this reduces to
// the linear Euler-Bernoulli values C=4, S=2.
func Stability(p, EI, L float64) (C, S float64) {
	if math.Abs(p) < stabilityEps || EI < stabilityEps {
		return 4, 2
	}

	betaL := math.Sqrt(math.Abs(p)/EI) * L
	bl2 := betaL * betaL

	var c, s float64
	if p < 0 {
		c = (1 - betaL/math.Tan(betaL)) / bl2
		s = (betaL/math.Sin(betaL) - 1) / bl2
	} else {
		c = (betaL/math.Tanh(betaL) - 1) / bl2
		s = (1 - betaL/math.Sinh(betaL)) / bl2
	}

	denom := c*c - s*s
	return c / denom, s / denom
}
