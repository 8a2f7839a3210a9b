// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"context"

	"github.com/cpmech/staframe/model"
	"github.com/cpmech/staframe/topology"
)

// linearStiffness is the stiffnessFunc for the linear solver: the ordinary
// Euler-Bernoulli beam (C=4, S=2), no axial-force coupling.
func linearStiffness(mi int, mb *model.Member, mat *model.Material, sec *model.Section) [][]float64 {
	return LocalStiffness(mat.E, sec.Area, sec.Inertia, mb.Length, 4, 2, 0)
}

// SolveLinear runs the linear direct-stiffness solve for every case of m
// (raw load cases followed by combinations), returning member end-forces
// and -displacements and nodal reactions for each.
func SolveLinear(ctx context.Context, m *model.Model) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	top := topology.Build(m)
	ncases := m.NCases()
	result := newResult(ncases, len(m.Members), len(m.Nodes))

	for n := 0; n < ncases; n++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		coeffs := ComboFactors(m, n)
		K, F, globals := assembleCase(m, top, coeffs, linearStiffness)

		u, err := solveDense(K, F)
		if err != nil {
			return nil, err
		}

		d, fe := extractMemberEnds(m, top, u, globals)
		fr := extractReactions(m, top, coeffs, globals, fe)

		result.D[n] = d
		result.Fe[n] = fe
		result.FR[n] = fr
	}

	return result, nil
}
