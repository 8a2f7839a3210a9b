// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import "github.com/cpmech/gosl/chk"

// solveTridiagonal solves A*x = rhs by the Thomas algorithm, where A is
// tridiagonal with main diagonal diag and constant off-diagonal entries
// off (both the sub- and super-diagonal), in place of the dense inverse
// the original source uses for the same finite-difference system.
func solveTridiagonal(diag []float64, off float64, rhs []float64) ([]float64, error) {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)

	if diag[0] == 0 {
		return nil, chk.Err("tridiagonal system is singular at row 0")
	}
	cp[0] = off / diag[0]
	dp[0] = rhs[0] / diag[0]

	for i := 1; i < n; i++ {
		m := diag[i] - off*cp[i-1]
		if m == 0 {
			return nil, chk.Err("tridiagonal system is singular at row %d", i)
		}
		if i < n-1 {
			cp[i] = off / m
		}
		dp[i] = (rhs[i] - off*dp[i-1]) / m
	}

	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x, nil
}
