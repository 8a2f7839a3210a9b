// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/staframe/model"
	"github.com/cpmech/staframe/rotate"
	"github.com/cpmech/staframe/topology"
)

// stiffnessFunc builds a member's local 6x6 stiffness matrix; the linear
// solver always asks for C=4, S=2, P=0, while the non-linear solver
// supplies the current iterate's axial force and its stability
// coefficients.
type stiffnessFunc func(mi int, mb *model.Member, mat *model.Material, sec *model.Section) [][]float64

// memberGlobals holds, per member and case, the quantities the assembly
// pass and the post-solve extraction both need.
type memberGlobals struct {
	Combined [][]float64 // R*RI, 6x6
	Klocal   [][]float64
	Kglob    [][]float64 // RIt*Rt*Klocal*R*RI
	F0local  [6]float64
}

// assembleCase builds the dense global K and RHS F for one case.
func assembleCase(m *model.Model, top *topology.Topology, coeffs []float64, kf stiffnessFunc) ([][]float64, []float64, []memberGlobals) {
	K := la.MatAlloc(top.NDOF, top.NDOF)
	F := make([]float64, top.NDOF)
	globals := make([]memberGlobals, len(m.Members))

	for mi, mb := range m.Members {
		ni, nj := m.Nodes[mb.NodeI], m.Nodes[mb.NodeJ]
		mat := m.Material(mb.Material)
		sec := m.Section(mb.Section)

		comb := rotate.Combined(mb.Angle, ni, nj)
		kl := kf(mi, mb, mat, sec)
		kg := la.MatAlloc(6, 6)
		la.MatTrMul3(kg, 1, comb, kl, comb)

		f0 := MemberLocalLoad(mb, mat, sec, coeffs)
		f0global := make([]float64, 6)
		la.MatTrVecMulAdd(f0global, 1, comb, f0[:])

		dof := top.MemberDOF[mi]
		for a := 0; a < 6; a++ {
			ra := dof[a]
			if ra < 0 {
				continue
			}
			F[ra] += f0global[a]
			for b := 0; b < 6; b++ {
				rb := dof[b]
				if rb < 0 {
					continue
				}
				K[ra][rb] += kg[a][b]
			}
		}

		globals[mi] = memberGlobals{Combined: comb, Klocal: kl, Kglob: kg, F0local: f0}
	}

	reducePrescribedDisplacements(m, top, F, globals)
	addNodalForces(m, top, coeffs, F)
	addSprings(m, top, K)

	return K, F, globals
}

// reducePrescribedDisplacements subtracts Fd = Kglob*ud from the RHS at
// every free DOF a member touches, where ud carries the node's prescribed
// displacement at each of that member's restrained end components.
func reducePrescribedDisplacements(m *model.Model, top *topology.Topology, F []float64, globals []memberGlobals) {
	for mi, mb := range m.Members {
		ni, nj := m.Nodes[mb.NodeI], m.Nodes[mb.NodeJ]
		dof := top.MemberDOF[mi]

		var ud [6]float64
		any := false
		set := func(idx int, v float64) {
			if dof[idx] == -1 {
				ud[idx] = v
				any = true
			}
		}
		set(0, ni.PDispl[0])
		set(1, ni.PDispl[1])
		set(2, ni.PDispl[2])
		set(3, nj.PDispl[0])
		set(4, nj.PDispl[1])
		set(5, nj.PDispl[2])
		if !any {
			continue
		}

		fd := make([]float64, 6)
		la.MatVecMul(fd, 1, globals[mi].Kglob, ud[:])
		for a := 0; a < 6; a++ {
			if ra := dof[a]; ra >= 0 {
				F[ra] -= fd[a]
			}
		}
	}
}

// addNodalForces scatters each node's combo-weighted (Px, Py, Mz) into the
// RHS, rotating (Px, Py) by Pangle first. A nodal moment at a hinged node
// is applied to every rotation DOF the hinge introduced.
func addNodalForces(m *model.Model, top *topology.Topology, coeffs []float64, F []float64) {
	for i, n := range m.Nodes {
		px, py, mz := NodalForce(n, coeffs)
		base := top.NodeStart[i]
		if d := top.DOF[base]; d >= 0 {
			F[d] += px
		}
		if d := top.DOF[base+1]; d >= 0 {
			F[d] += py
		}
		nrot := 1 + top.NodeExtras[i] + top.NodeInt[i]
		for k := 0; k < nrot; k++ {
			if d := top.DOF[base+2+k]; d >= 0 {
				F[d] += mz
			}
		}
	}
}

// addSprings adds each node's elastic spring stiffness to the diagonal of
// its (free) translation/rotation entries.
func addSprings(m *model.Model, top *topology.Topology, K [][]float64) {
	for i, n := range m.Nodes {
		base := top.NodeStart[i]
		if d := top.DOF[base]; d >= 0 {
			K[d][d] += n.Springs[0]
		}
		if d := top.DOF[base+1]; d >= 0 {
			K[d][d] += n.Springs[1]
		}
		if d := top.DOF[base+2]; d >= 0 {
			K[d][d] += n.Springs[2]
		}
	}
}

// extractMemberEnds computes, for every member, the end-displacement and
// end-force 6-vectors in the member-local (rotated) frame, from the
// assembled reduced solution u.
func extractMemberEnds(m *model.Model, top *topology.Topology, u []float64, globals []memberGlobals) (d, fe [][6]float64) {
	d = make([][6]float64, len(m.Members))
	fe = make([][6]float64, len(m.Members))

	for mi, mb := range m.Members {
		ni, nj := m.Nodes[mb.NodeI], m.Nodes[mb.NodeJ]
		dof := top.MemberDOF[mi]

		var uFull [6]float64
		comps := [6]struct {
			dof int
			val float64
		}{
			{dof[0], ni.PDispl[0]}, {dof[1], ni.PDispl[1]}, {dof[2], ni.PDispl[2]},
			{dof[3], nj.PDispl[0]}, {dof[4], nj.PDispl[1]}, {dof[5], nj.PDispl[2]},
		}
		for i, c := range comps {
			if c.dof >= 0 {
				uFull[i] = u[c.dof]
			} else {
				uFull[i] = c.val
			}
		}

		dl := make([]float64, 6)
		la.MatVecMul(dl, 1, globals[mi].Combined, uFull[:])
		for i := 0; i < 6; i++ {
			d[mi][i] = dl[i]
		}

		// Fe_local = Klocal*d_local - F0_local. This is algebraically
		// identical to R*RI*(Kglob*uFull) - F0_local (Kglob = RIt*Rt*Klocal*R*RI
		// and R, RI are orthogonal) but avoids redundant matrix products.
		fl := make([]float64, 6)
		la.MatVecMul(fl, 1, globals[mi].Klocal, dl)
		for i := 0; i < 6; i++ {
			fe[mi][i] = fl[i] - globals[mi].F0local[i]
		}
	}
	return d, fe
}

// extractReactions accumulates support reactions at every restrained
// physical slot, subtracts the applied nodal forces at those slots (per
// the linear-solver convention), and rotates (Rx, Ry) back to global axes.
func extractReactions(m *model.Model, top *topology.Topology, coeffs []float64, globals []memberGlobals, fe [][6]float64) [][3]float64 {
	fr := make([][3]float64, len(m.Nodes))

	for mi, mb := range m.Members {
		fassembled := make([]float64, 6)
		la.MatTrVecMulAdd(fassembled, 1, globals[mi].Combined, fe[mi][:])

		dof := top.MemberDOF[mi]
		addReaction(fr, mb.NodeI, 0, dof[0], fassembled[0])
		addReaction(fr, mb.NodeI, 1, dof[1], fassembled[1])
		addReaction(fr, mb.NodeI, 2, dof[2], fassembled[2])
		addReaction(fr, mb.NodeJ, 0, dof[3], fassembled[3])
		addReaction(fr, mb.NodeJ, 1, dof[4], fassembled[4])
		addReaction(fr, mb.NodeJ, 2, dof[5], fassembled[5])
	}

	for i, n := range m.Nodes {
		px, py, mz := NodalForce(n, coeffs)
		base := top.NodeStart[i]
		if top.DOF[base] == -1 {
			fr[i][0] -= px
		}
		if top.DOF[base+1] == -1 {
			fr[i][1] -= py
		}
		if top.DOF[base+2] == -1 {
			fr[i][2] -= mz
		}
	}

	for i, n := range m.Nodes {
		if n.SupportAngle == 0 {
			continue
		}
		c, s := math.Cos(-n.SupportAngle), math.Sin(-n.SupportAngle)
		rx, ry := fr[i][0], fr[i][1]
		fr[i][0] = rx*c - ry*s
		fr[i][1] = rx*s + ry*c
	}

	return fr
}

func addReaction(fr [][3]float64, node, comp, dofVal int, value float64) {
	if dofVal == -1 {
		fr[node][comp] += value
	}
}
