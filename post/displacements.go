// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"github.com/cpmech/staframe/model"
	"github.com/cpmech/staframe/solve"
)

// LinearStations is the station count used by the direct-integration
// elastic curve. The original source computes an adaptive count here too,
// then unconditionally overrides it to 20 before use (see DESIGN.md); this
// keeps the literal, exercised value.
const LinearStations = 20

// minNonlinearStations and maxNonlinearStations bound the finite-difference
// mesh density used by DisplacementsNonlinear, scaled by member length.
const (
	minNonlinearStations = 100
	maxNonlinearStations = 1000
)

// DisplacementsLinear reconstructs the direct-integration elastic curve for
// every member of every case in r: the axial displacement is linear between
// end values, and the transverse displacement/rotation are found by
// analytically integrating the uniform-load beam equation from the
// member's end rotation/displacement and end force/moment.
func DisplacementsLinear(m *model.Model, r *solve.Result) ([]MemberCurve, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var curves []MemberCurve
	for c := range r.D {
		coeffs := solve.ComboFactors(m, c)
		for mi, mb := range m.Members {
			mat := m.Material(mb.Material)
			sec := m.Section(mb.Section)
			EI := mat.E * sec.Inertia
			_, qy := solve.CombinedLocalLoad(mb, coeffs)

			d := r.D[c][mi]
			fe := r.Fe[c][mi]
			L := mb.Length
			M0, V0 := -fe[2], fe[1]

			n := LinearStations
			x := make([]float64, n+1)
			u := make([]float64, n+1)
			v := make([]float64, n+1)
			rot := make([]float64, n+1)
			for i := 0; i <= n; i++ {
				xi := L * float64(i) / float64(n)
				x[i] = xi
				u[i] = d[0] + (d[3]-d[0])*xi/L
				v[i] = d[1] + d[2]*xi + (M0*xi*xi/2+V0*xi*xi*xi/6+qy*xi*xi*xi*xi/24)/EI
				rot[i] = d[2] + (V0*xi*xi/2+qy*xi*xi*xi/6)/EI
			}
			curves = append(curves, MemberCurve{Case: c, Member: mi, X: x, U: u, V: v, R: rot})
		}
	}
	return curves, nil
}

// nonlinearStations returns the finite-difference mesh size for a member of
// length L: max(100, L/20), capped at 1000.
func nonlinearStations(L float64) int {
	n := int(L / 20)
	if n < minNonlinearStations {
		n = minNonlinearStations
	}
	if n > maxNonlinearStations {
		n = maxNonlinearStations
	}
	return n
}

// DisplacementsNonlinear reconstructs the member deflection curve by finite
// differences, coupling the member's axial force into the governing
// transverse-equilibrium coefficient (the geometric-stiffness effect on the
// deflected shape itself, not just the end stiffness). The axial
// displacement remains linear between end values, as in the linear path.
func DisplacementsNonlinear(m *model.Model, r *solve.Result) ([]MemberCurve, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var curves []MemberCurve
	for c := range r.D {
		coeffs := solve.ComboFactors(m, c)
		for mi, mb := range m.Members {
			mat := m.Material(mb.Material)
			sec := m.Section(mb.Section)
			EI := mat.E * sec.Inertia
			qx, qy := solve.CombinedLocalLoad(mb, coeffs)

			d := r.D[c][mi]
			fe := r.Fe[c][mi]
			L := mb.Length
			N, V0, M0 := fe[0], fe[1], -fe[2]

			nsteps := nonlinearStations(L)
			h := L / float64(nsteps)
			nn := nsteps - 1 // number of interior stations

			x := make([]float64, nn)
			for i := 0; i < nn; i++ {
				x[i] = float64(i+1) * h
			}

			// F drives the transverse displacement, Fp drives the rotation;
			// both get an end correction pulling in the known boundary
			// displacement/rotation.
			F := make([]float64, nn)
			Fp := make([]float64, nn)
			for i := 0; i < nn; i++ {
				F[i] = M0 + V0*x[i] + qy*x[i]*x[i]/2
				Fp[i] = V0 + qy*x[i]
			}
			F[0] -= EI * d[1] / (h * h)
			F[nn-1] -= EI * d[4] / (h * h)
			Fp[0] -= EI * d[2] / (h * h)
			Fp[nn-1] -= EI * d[5] / (h * h)

			a, b := EI/(h*h), N-2*EI/(h*h)
			diag := make([]float64, nn)
			for i := 0; i < nn; i++ {
				diag[i] = b + qx*x[i]/2
			}

			v, err := solveTridiagonal(diag, a, F)
			if err != nil {
				return nil, err
			}
			rot, err := solveTridiagonal(diag, a, Fp)
			if err != nil {
				return nil, err
			}

			allX := make([]float64, nsteps+1)
			allU := make([]float64, nsteps+1)
			allV := make([]float64, nsteps+1)
			allR := make([]float64, nsteps+1)
			allX[0], allU[0], allV[0], allR[0] = 0, d[0], d[1], d[2]
			for i := 0; i < nn; i++ {
				allX[i+1] = x[i]
				allU[i+1] = d[0] + (d[3]-d[0])*x[i]/L
				allV[i+1] = v[i]
				allR[i+1] = rot[i]
			}
			allX[nsteps], allU[nsteps], allV[nsteps], allR[nsteps] = L, d[3], d[4], d[5]

			curves = append(curves, MemberCurve{Case: c, Member: mi, X: allX, U: allU, V: allV, R: allR})
		}
	}
	return curves, nil
}
