// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package post reconstructs member displacement curves and internal-force
// diagrams from a solve.Result, and scans them for per-member envelopes.
package post

// MemberCurve is one member's sampled displacement curve (axial u,
// transverse v, rotation r, all in the member-local frame) for one case.
type MemberCurve struct {
	Case, Member int
	X            []float64
	U, V, R      []float64
}

// MemberDiagram is one member's sampled internal-force diagram (axial N,
// shear V, moment M) for one case.
type MemberDiagram struct {
	Case, Member int
	X            []float64
	N, V, M      []float64
}

// RunType selects which displacement reconstruction a diagram was built
// from, matching the two solvers' distinct sampling and coupling.
type RunType int

const (
	// Linear diagrams come from the direct-integration elastic curve.
	Linear RunType = iota
	// NonLinear diagrams come from the finite-difference curve and couple
	// axial force into the moment/shear reconstruction.
	NonLinear
)

// Scope selects which case indices an envelope scan considers.
type Scope int

const (
	// ScopeAll scans every raw load case and every combination.
	ScopeAll Scope = iota
	// ScopeLoadCases scans only raw load cases.
	ScopeLoadCases
	// ScopeCombinations scans only combinations.
	ScopeCombinations
)

// ValueCase pairs an extreme value with the case index it occurred at.
type ValueCase struct {
	Value float64
	Case  int
}

// Envelope bundles the per-member max/min (value, case) tuples for the
// three internal-force components.
type Envelope struct {
	MaxN, MaxV, MaxM ValueCase
	MinN, MinV, MinM ValueCase
}
