// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"

	"github.com/cpmech/staframe/model"
)

// localDistributed converts a member's (qx, qy) load into member-local
// axes. qtype 0 means (qx, qy) are given in global axes and must be
// rotated by the member's angle theta; qtype 1 means they are already
// local.
func localDistributed(qx, qy, qtype, theta float64) (qxLocal, qyLocal float64) {
	if qtype == 0 {
		c, s := math.Cos(theta), math.Sin(theta)
		return qx*c + qy*s, -qx*s + qy*c
	}
	return qx, qy
}

// combinedDistributed returns the combo-weighted member-local distributed
// load, summed across raw load cases.
func combinedDistributed(mb *model.Member, coeffs []float64) (qx, qy float64) {
	for raw, c := range coeffs {
		if c == 0 {
			continue
		}
		lx, ly := localDistributed(mb.Qx[raw], mb.Qy[raw], mb.QType[raw], mb.Angle)
		qx += c * lx
		qy += c * ly
	}
	return qx, qy
}

// combinedThermal returns the combo-weighted top/bottom fiber temperatures.
func combinedThermal(mb *model.Member, coeffs []float64) (tsup, tinf float64) {
	for raw, c := range coeffs {
		if c == 0 {
			continue
		}
		tsup += c * mb.Tsup[raw]
		tinf += c * mb.Tinf[raw]
	}
	return tsup, tinf
}

// CombinedLocalLoad returns the combo-weighted member-local distributed
// load (qx, qy), for use by post-processing's direct-integration and
// finite-difference displacement/force reconstructions.
func CombinedLocalLoad(mb *model.Member, coeffs []float64) (qx, qy float64) {
	return combinedDistributed(mb, coeffs)
}

// fqVec is the equivalent fixed-end force vector of a uniform member-local
// distributed load (qx, qy) over length L.
func fqVec(qx, qy, L float64) [6]float64 {
	return [6]float64{
		qx * L / 2, qy * L / 2, qy * L * L / 12,
		qx * L / 2, qy * L / 2, -qy * L * L / 12,
	}
}

// ftVec is the thermal equivalent fixed-end force vector from top/bottom
// fiber temperatures. The sign on the end moment term follows the
// linear-solver convention (see DESIGN.md): both solvers share this
// formula.
func ftVec(alpha, E, A, I, tsup, tinf, ysup, yinf float64) [6]float64 {
	h := ysup + yinf
	t0 := (tsup*ysup + tinf*yinf) / h
	dt := tsup - tinf
	return [6]float64{
		-alpha * E * A * t0, 0, alpha * E * I * dt / h,
		alpha * E * A * t0, 0, -alpha * E * I * dt / h,
	}
}

// fimpVec is the equivalent fixed-end force vector for a member's intrinsic
// initial imperfection: tensile pre-strain e (times L) and mid-span
// camber f. It is independent of load case or combination.
func fimpVec(e, f, E, A, I, L float64) [6]float64 {
	return [6]float64{
		e * E * A / L, 0, 8 * E * I * f / (L * L),
		-e * E * A / L, 0, -8 * E * I * f / (L * L),
	}
}

// MemberLocalLoad returns the member-local equivalent fixed-end force
// vector F0L = Fq + FT + Fimp for case n (combo factors coeffs), combining
// the per-case distributed/thermal loads and the member's constant
// imperfection.
func MemberLocalLoad(mb *model.Member, mat *model.Material, sec *model.Section, coeffs []float64) [6]float64 {
	qx, qy := combinedDistributed(mb, coeffs)
	tsup, tinf := combinedThermal(mb, coeffs)

	fq := fqVec(qx, qy, mb.Length)
	ft := ftVec(mat.Alpha, mat.E, sec.Area, sec.Inertia, tsup, tinf, sec.Ysup, sec.Yinf)
	fimp := fimpVec(mb.Tensile, mb.Curvature, mat.E, sec.Area, sec.Inertia, mb.Length)

	var total [6]float64
	for i := 0; i < 6; i++ {
		total[i] = fq[i] + ft[i] + fimp[i]
	}
	return total
}

// NodalForce returns the rotated (Px, Py) and raw Mz of node n for case
// coeffs, combined across raw load cases.
func NodalForce(n *model.Node, coeffs []float64) (px, py, mz float64) {
	for raw, c := range coeffs {
		if c == 0 {
			continue
		}
		angle := n.Pangle[raw]
		ca, sa := math.Cos(angle), math.Sin(angle)
		px += c * (n.Px[raw]*ca - n.Py[raw]*sa)
		py += c * (n.Px[raw]*sa + n.Py[raw]*ca)
		mz += c * n.Mz[raw]
	}
	return px, py, mz
}
