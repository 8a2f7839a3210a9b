// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

// Result bundles the raw output of one solve across every case: member
// end-forces and end-displacements in the rotated-local frame, and nodal
// reactions in support-local axes (rotated to global at the end).
type Result struct {
	// Fe[case][member] is the 6-vector of member end-forces, net of the
	// equivalent fixed-end load vector.
	Fe [][][6]float64

	// D[case][member] is the 6-vector of member end-displacements.
	D [][][6]float64

	// FR[case][node] is the (Rx, Ry, Mz) reaction at a restrained node.
	FR [][][3]float64
}

func newResult(ncases, nmembers, nnodes int) *Result {
	r := &Result{
		Fe: make([][][6]float64, ncases),
		D:  make([][][6]float64, ncases),
		FR: make([][][3]float64, ncases),
	}
	for c := 0; c < ncases; c++ {
		r.Fe[c] = make([][6]float64, nmembers)
		r.D[c] = make([][6]float64, nmembers)
		r.FR[c] = make([][3]float64, nnodes)
	}
	return r
}

// NonlinearReport summarizes the fixed-point iteration's convergence for one
// case of the non-linear solve.
type NonlinearReport struct {
	Converged  bool
	Iterations int
	Residual   float64
}
