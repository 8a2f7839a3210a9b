// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "math"

// Member is a prismatic linear structural element connecting two nodes.
type Member struct {
	NodeI, NodeJ int    // end node indices
	Material     string // material name, resolved by lookup
	Section      string // section name, resolved by lookup

	// ReleaseStart, ReleaseEnd are the internal-hinge release flags (0/1) at
	// each end (member.nlib in the original notation).
	ReleaseStart, ReleaseEnd int

	// Tensile is the axial pre-strain times length (e·L); Curvature is the
	// mid-span camber amplitude (f).
	Tensile, Curvature float64

	// Per load case distributed load components (qx, qy) and their frame
	// (QType: 0 global, 1 local), plus top/bottom fiber temperatures.
	Qx, Qy, QType []float64
	Tsup, Tinf    []float64

	// Length, Angle are derived from the node coordinates by Update.
	Length, Angle float64
}

// NewMember returns a Member between nodes i and j with nc zeroed load cases.
func NewMember(i, j int, material, section string, nc int) *Member {
	return &Member{
		NodeI: i, NodeJ: j,
		Material: material, Section: section,
		Qx:    make([]float64, nc),
		Qy:    make([]float64, nc),
		QType: make([]float64, nc),
		Tsup:  make([]float64, nc),
		Tinf:  make([]float64, nc),
	}
}

// AddCase appends a zeroed load case slot.
func (m *Member) AddCase() {
	m.Qx = append(m.Qx, 0)
	m.Qy = append(m.Qy, 0)
	m.QType = append(m.QType, 0)
	m.Tsup = append(m.Tsup, 0)
	m.Tinf = append(m.Tinf, 0)
}

// RemoveCase deletes the i-th load case slot.
func (m *Member) RemoveCase(i int) {
	m.Qx = append(m.Qx[:i], m.Qx[i+1:]...)
	m.Qy = append(m.Qy[:i], m.Qy[i+1:]...)
	m.QType = append(m.QType[:i], m.QType[i+1:]...)
	m.Tsup = append(m.Tsup[:i], m.Tsup[i+1:]...)
	m.Tinf = append(m.Tinf[:i], m.Tinf[i+1:]...)
}

// Update recomputes Length and Angle from the given node coordinates. It
// must be called whenever node positions change.
func (m *Member) Update(ni, nj *Node) {
	m.Length, m.Angle = distance(ni.X, ni.Y, nj.X, nj.Y), findAngle(ni.X, ni.Y, nj.X, nj.Y)
}

// distance returns the euclidean distance between two points.
func distance(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return math.Sqrt(dx*dx + dy*dy)
}

// findAngle returns the angle in radians of the vector from (x1,y1) to
// (x2,y2), in [0, 2π), with the vertical cases (π/2, 3π/2) handled
// explicitly to avoid dividing by a zero run.
func findAngle(x1, y1, x2, y2 float64) float64 {
	if x2 == x1 {
		if y2 > y1 {
			return math.Pi / 2
		}
		return 3 * math.Pi / 2
	}
	theta := math.Atan(math.Abs((y2 - y1) / (x2 - x1)))
	if x2 > x1 {
		if y2 >= y1 {
			return theta
		}
		return 2*math.Pi - theta
	}
	if y2 >= y1 {
		return math.Pi - theta
	}
	return math.Pi + theta
}
