// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve assembles and solves the global stiffness system: equivalent
// member loads, the linear direct-stiffness solve, and the non-linear
// Galambos stability-function solve.
package solve

import "github.com/cpmech/staframe/model"

// ComboFactors returns the coefficient vector of length len(m.LoadCases) that
// linearly combines the raw load cases for case index n. For n < len(raw
// cases) this is the standard basis vector e_n; otherwise it is the factor
// vector of combination n-len(raw cases).
func ComboFactors(m *model.Model, n int) []float64 {
	nc := len(m.LoadCases)
	if n < nc {
		c := make([]float64, nc)
		c[n] = 1
		return c
	}
	return m.Combinations[n-nc].Factors
}
