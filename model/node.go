// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// Node is the start/end point of one or more members. A node may carry
// support restraints, elastic springs, prescribed displacements and a
// rotational hinge, plus one applied nodal force per load case.
type Node struct {
	X, Y float64 // position in the global Cartesian frame

	// Restr holds the restraint flags (Rx, Ry, Rz), each 0 (free) or 1 (fixed).
	Restr [3]int

	// SupportAngle rotates the support-local frame, in radians.
	SupportAngle float64

	// Springs holds elastic spring stiffnesses (Kx, Ky, Kz) in support-local axes.
	Springs [3]float64

	// PDispl holds prescribed displacements (dx, dy, rz) in support-local axes,
	// applied on fixed DOFs.
	PDispl [3]float64

	// Hinge releases rotational continuity for every member but one at this
	// node (0 or 1).
	Hinge int

	// Per load case applied force components: Px, Py, Mz, Pangle (radians,
	// rotates Px/Py before assembly).
	Px, Py, Mz, Pangle []float64
}

// NewNode returns a Node positioned at (x, y) with nc zeroed load cases.
func NewNode(x, y float64, nc int) *Node {
	return &Node{
		X: x, Y: y,
		Px:     make([]float64, nc),
		Py:     make([]float64, nc),
		Mz:     make([]float64, nc),
		Pangle: make([]float64, nc),
	}
}

// AddCase appends a zeroed load case slot.
func (n *Node) AddCase() {
	n.Px = append(n.Px, 0)
	n.Py = append(n.Py, 0)
	n.Mz = append(n.Mz, 0)
	n.Pangle = append(n.Pangle, 0)
}

// RemoveCase deletes the i-th load case slot.
func (n *Node) RemoveCase(i int) {
	n.Px = append(n.Px[:i], n.Px[i+1:]...)
	n.Py = append(n.Py[:i], n.Py[i+1:]...)
	n.Mz = append(n.Mz[:i], n.Mz[i+1:]...)
	n.Pangle = append(n.Pangle[:i], n.Pangle[i+1:]...)
}

// Fixed reports whether direction d (0=X, 1=Y, 2=Z) is restrained.
func (n *Node) Fixed(d int) bool { return n.Restr[d] != 0 }

// Oblique reports whether this node has exactly one translational restraint,
// i.e. its support rotation matrix is -SupportAngle instead of the identity
// (a zero SupportAngle then yields the identity anyway).
func (n *Node) Oblique() bool {
	return n.Restr[0]+n.Restr[1] == 1
}
