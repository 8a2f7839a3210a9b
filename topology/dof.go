// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topology maps a model's physical nodes, members and hinges to the
// reduced vector of unknown degrees of freedom that the solver assembles
// against. Equation numbering is a deterministic, single forward pass over
// nodes and members in ascending index order, mirroring a direct-stiffness
// equation-numbering sweep.
package topology

import "github.com/cpmech/staframe/model"

// Topology holds the DOF layout built from a Model. DOF holds one entry per
// physical slot (3 per node plus hinge extras), each either a global
// equation number in [0, NDOF) or -1 if the slot is restrained.
type Topology struct {
	NDOF int
	DOF  []int

	// NodeStart[i] is the slot index of node i's X-translation entry; Y is
	// NodeStart[i]+1, and the base rotation entry is NodeStart[i]+2.
	NodeStart []int

	// NodeExtras, NodeInt are DOFextras/DOFint per node, retained for
	// diagnostics and for scattering a nodal moment into every rotation DOF
	// of a hinged node.
	NodeExtras []int
	NodeInt    []int

	// MemberDOF[m] is the 6-entry [Xi, Yi, Ri, Xj, Yj, Rj] DOF index vector
	// for member m, each entry a global equation number or -1.
	MemberDOF [][6]int
}

// Build computes the DOF layout for m. The model must already have valid
// Length/Angle fields (see model.Model.Validate).
func Build(m *model.Model) *Topology {
	nnodes := len(m.Nodes)
	nmembers := len(m.Members)

	nelem := make([]int, nnodes)
	for _, mb := range m.Members {
		nelem[mb.NodeI]++
		nelem[mb.NodeJ]++
	}

	extras := make([]int, nnodes)
	for i, n := range m.Nodes {
		if n.Hinge == 1 && nelem[i] > 0 {
			extras[i] = nelem[i] - 1
		}
	}

	dofint := make([]int, nnodes)
	for _, mb := range m.Members {
		if mb.ReleaseStart == 1 {
			dofint[mb.NodeI]++
		}
		if mb.ReleaseEnd == 1 {
			dofint[mb.NodeJ]++
		}
	}
	for i, n := range m.Nodes {
		if n.Hinge == 1 || nelem[i] <= 1 {
			dofint[i] = 0
		}
	}
	for i := range m.Nodes {
		if dofint[i] > 0 && dofint[i] == nelem[i] {
			extras[i] = nelem[i] - 1
			dofint[i] = 0
		}
	}

	nodeStart := make([]int, nnodes)
	slots := 0
	for i := range m.Nodes {
		nodeStart[i] = slots
		slots += 3 + extras[i] + dofint[i]
	}

	dof := make([]int, slots)
	for i, n := range m.Nodes {
		base := nodeStart[i]
		dof[base] = freeOrFixed(n.Restr[0] == 1)
		dof[base+1] = freeOrFixed(n.Restr[1] == 1)
		nrot := 1 + extras[i] + dofint[i]
		rotFixed := n.Restr[2] == 1 && extras[i] == 0 && dofint[i] == 0
		dof[base+2] = freeOrFixed(rotFixed)
		for k := 1; k < nrot; k++ {
			dof[base+2+k] = 0 // placeholder, always free; numbered below
		}
	}

	ndof := 0
	for i := range dof {
		if dof[i] == 0 {
			dof[i] = ndof
			ndof++
		} else {
			dof[i] = -1
		}
	}

	mdone := make([]int, nnodes)
	mintdone := make([]int, nnodes)
	memberDOF := make([][6]int, nmembers)
	for mi, mb := range m.Members {
		memberDOF[mi][0] = dof[nodeStart[mb.NodeI]]
		memberDOF[mi][1] = dof[nodeStart[mb.NodeI]+1]
		memberDOF[mi][2] = rotationSlot(dof, nodeStart, extras, dofint, mdone, mintdone, mb.NodeI, mb.ReleaseStart)

		memberDOF[mi][3] = dof[nodeStart[mb.NodeJ]]
		memberDOF[mi][4] = dof[nodeStart[mb.NodeJ]+1]
		memberDOF[mi][5] = rotationSlot(dof, nodeStart, extras, dofint, mdone, mintdone, mb.NodeJ, mb.ReleaseEnd)
	}

	return &Topology{
		NDOF:       ndof,
		DOF:        dof,
		NodeStart:  nodeStart,
		NodeExtras: extras,
		NodeInt:    dofint,
		MemberDOF:  memberDOF,
	}
}

// freeOrFixed is an internal placeholder: 0 marks a slot as free (to be
// numbered in the pass that follows), 1 marks it fixed.
func freeOrFixed(fixed bool) int {
	if fixed {
		return 1
	}
	return 0
}

// rotationSlot returns the global equation number (or -1) that a member end
// at node with the given release flag should use, consuming a hinge slot
// from mdone/mintdone as needed. Nodal-hinge extras take priority over
// member-internal releases, matching the promotion rule in Build.
func rotationSlot(dof []int, nodeStart, extras, dofint, mdone, mintdone []int, node, release int) int {
	base := nodeStart[node] + 2
	switch {
	case extras[node] > 0:
		if mdone[node] < extras[node] {
			slot := base + 1 + mdone[node]
			mdone[node]++
			return dof[slot]
		}
		return dof[base]
	case dofint[node] > 0 && release == 1:
		if mintdone[node] < dofint[node] {
			slot := base + 1 + mintdone[node]
			mintdone[node]++
			return dof[slot]
		}
		return dof[base]
	default:
		return dof[base]
	}
}
