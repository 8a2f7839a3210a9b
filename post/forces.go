// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"github.com/cpmech/staframe/model"
	"github.com/cpmech/staframe/solve"
)

// InternalForces reconstructs the axial, shear and bending-moment diagrams
// for every member of every case, sampled at the stations disp already
// carries. For runType Linear, N and V are the two end values held
// constant; M is sampled through the uniform-load quadratic. For
// NonLinear, M and V couple the member's axial force with the deflected
// shape's transverse displacement and rotation, and N is still the two end
// values.
func InternalForces(m *model.Model, r *solve.Result, disp []MemberCurve, runType RunType) ([]MemberDiagram, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	diagrams := make([]MemberDiagram, 0, len(disp))
	for _, curve := range disp {
		mb := m.Members[curve.Member]
		coeffs := solve.ComboFactors(m, curve.Case)
		qx, qy := solve.CombinedLocalLoad(mb, coeffs)

		fe := r.Fe[curve.Case][curve.Member]
		n0, n1 := -fe[0], fe[3]
		v0, v1 := fe[1], -fe[4]
		mo0, mo1 := -fe[2], fe[5]

		x := curve.X
		nStations := len(x)
		N := make([]float64, nStations)
		V := make([]float64, nStations)
		M := make([]float64, nStations)
		for i := range N {
			if i == nStations-1 {
				N[i] = n1
			} else {
				N[i] = n0
			}
		}

		switch runType {
		case Linear:
			for i, xi := range x {
				M[i] = mo0 + v0*xi + 0.5*qy*xi*xi
				if i == nStations-1 {
					V[i] = v1
				} else {
					V[i] = v0
				}
			}
		default: // NonLinear
			v0curve := curve.V[0]
			for i := 0; i < nStations-1; i++ {
				xi := x[i]
				M[i] = mo0 + v0*xi + 0.5*qy*xi*xi + (n0+0.5*qx)*(curve.V[i]-v0curve)
				V[i] = v0 + qy*xi + 0.5*qx*(curve.V[i]-v0curve) - 0.5*qx*xi*curve.R[i]
			}
			M[nStations-1] = mo1
			V[nStations-1] = v1
		}

		diagrams = append(diagrams, MemberDiagram{Case: curve.Case, Member: curve.Member, X: x, N: N, V: V, M: M})
	}
	return diagrams, nil
}
