// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// solveDense solves K*x = F by Gaussian elimination with partial pivoting,
// operating on copies so the caller's matrix and vector are left untouched.
// A direct factorization is used here in place of a dense matrix inverse,
// for numerical stability on the typically small-to-moderate systems this
// solver assembles.
func solveDense(K [][]float64, F []float64) ([]float64, error) {
	n := len(F)
	a := make([][]float64, n)
	for i := range a {
		a[i] = append([]float64(nil), K[i]...)
	}
	b := append([]float64(nil), F...)

	for col := 0; col < n; col++ {
		piv := col
		largest := math.Abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(a[r][col]); v > largest {
				largest = v
				piv = r
			}
		}
		if largest < 1e-12 {
			return nil, chk.Err("singular stiffness matrix at equation %d", col)
		}
		if piv != col {
			a[col], a[piv] = a[piv], a[col]
			b[col], b[piv] = b[piv], b[col]
		}
		for r := col + 1; r < n; r++ {
			factor := a[r][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= factor * a[col][c]
			}
			b[r] -= factor * b[col]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}
	return x, nil
}
