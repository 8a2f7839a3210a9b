// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import "github.com/cpmech/gosl/la"

// LocalStiffness builds the member-local 6x6 stiffness matrix for a member
// of elastic modulus E, area A, inertia I, length L, given the stability
// coefficients C, S (4 and 2 for the ordinary Euler-Bernoulli beam) and an
// axial force P that directly augments the transverse term (the
// geometric-stiffness contribution of the non-linear solver; pass 0 for the
// linear solver).
func LocalStiffness(E, A, I, L, C, S, P float64) [][]float64 {
	a0 := E * A / L
	a1 := 2*E*I*(C+S)/(L*L*L) + P/L
	a2 := E * I * (C + S) / (L * L)
	a3 := C * E * I / L
	a4 := S * E * I / L

	k := la.MatAlloc(6, 6)

	k[0][0], k[0][3] = a0, -a0
	k[3][0], k[3][3] = -a0, a0

	k[1][1], k[1][2], k[1][4], k[1][5] = a1, a2, -a1, a2
	k[2][1], k[2][2], k[2][4], k[2][5] = a2, a3, -a2, a4
	k[4][1], k[4][2], k[4][4], k[4][5] = -a1, -a2, a1, -a2
	k[5][1], k[5][2], k[5][4], k[5][5] = a2, a4, -a2, a3

	return k
}
