// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"context"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/staframe/model"
	"github.com/cpmech/staframe/topology"
)

// DefaultMaxIterations and DefaultTolerance are the non-linear solver's
// default fixed-point iteration budget and convergence tolerance.
const (
	DefaultMaxIterations = 20
	DefaultTolerance     = 1e-3
)

// SolveNonlinear runs the geometrically non-linear (Galambos stability
// function) solve for every case of m. It fixed-point iterates the
// per-member axial force, starting from zero, rebuilding the member
// stiffness each iteration, until the axial-force vector's change drops
// below tol or maxIter iterations are used. maxIter<=0 or tol<=0 fall back
// to DefaultMaxIterations/DefaultTolerance.
func SolveNonlinear(ctx context.Context, m *model.Model, maxIter int, tol float64) (*Result, []NonlinearReport, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	top := topology.Build(m)
	ncases := m.NCases()
	result := newResult(ncases, len(m.Members), len(m.Nodes))
	reports := make([]NonlinearReport, ncases)

	for n := 0; n < ncases; n++ {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		coeffs := ComboFactors(m, n)
		p := make([]float64, len(m.Members))

		var (
			d, fe     [][6]float64
			fr        [][3]float64
			converged bool
			residual  float64
			iter      int
		)

		for iter = 0; iter < maxIter; iter++ {
			kf := func(mi int, mb *model.Member, mat *model.Material, sec *model.Section) [][]float64 {
				EI := mat.E * sec.Inertia
				C, S := Stability(p[mi], EI, mb.Length)
				return LocalStiffness(mat.E, sec.Area, sec.Inertia, mb.Length, C, S, p[mi])
			}

			K, F, globals := assembleCase(m, top, coeffs, kf)
			u, err := solveDense(K, F)
			if err != nil {
				return nil, nil, err
			}
			d, fe = extractMemberEnds(m, top, u, globals)
			fr = extractReactions(m, top, coeffs, globals, fe)

			pNew := make([]float64, len(m.Members))
			for mi := range m.Members {
				pNew[mi] = fe[mi][3]
			}

			delta := make([]float64, len(p))
			la.VecAdd2(delta, 1, pNew, -1, p)
			residual = la.VecNorm(delta)
			p = pNew

			if residual < tol {
				converged = true
				iter++
				break
			}
		}

		result.D[n] = d
		result.Fe[n] = fe
		result.FR[n] = fr
		reports[n] = NonlinearReport{Converged: converged, Iterations: iter, Residual: residual}
	}

	return result, reports, nil
}
