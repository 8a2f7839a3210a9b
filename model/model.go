// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the in-memory structural model: nodes, members,
// materials, sections, load cases and combinations. It is pure data with
// invariants; topology/solving live in sibling packages.
package model

import "github.com/cpmech/gosl/chk"

// Model is the geometry/model store: the single source of truth read by a
// solve. Mutations must only occur between solves; a solve reads it as
// read-only.
type Model struct {
	Nodes        []*Node
	Members      []*Member
	Materials    []*Material
	Sections     []*Section
	LoadCases    []*LoadCase
	Combinations []*Combination
}

// New returns an empty Model.
func New() *Model {
	return &Model{}
}

// NCases returns len(LoadCases) + len(Combinations), the total number of
// case indices a solve produces results for.
func (m *Model) NCases() int {
	return len(m.LoadCases) + len(m.Combinations)
}

// AddLoadCase appends a new load case, extending every node's and member's
// per-case arrays to match.
func (m *Model) AddLoadCase(name string) {
	m.LoadCases = append(m.LoadCases, &LoadCase{Name: name})
	for _, n := range m.Nodes {
		n.AddCase()
	}
	for _, mb := range m.Members {
		mb.AddCase()
	}
	for _, c := range m.Combinations {
		c.Factors = append(c.Factors, 0)
	}
}

// RemoveLoadCase deletes the i-th load case, contracting every node's and
// member's per-case arrays and every combination's factor vector to match.
func (m *Model) RemoveLoadCase(i int) {
	m.LoadCases = append(m.LoadCases[:i], m.LoadCases[i+1:]...)
	for _, n := range m.Nodes {
		n.RemoveCase(i)
	}
	for _, mb := range m.Members {
		mb.RemoveCase(i)
	}
	for _, c := range m.Combinations {
		c.Factors = append(c.Factors[:i], c.Factors[i+1:]...)
	}
}

// Material returns the named material, or nil if not found.
func (m *Model) Material(name string) *Material {
	for _, mat := range m.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Section returns the named section, or nil if not found.
func (m *Model) Section(name string) *Section {
	for _, s := range m.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// UpdateGeometry recomputes every member's Length and Angle from its nodes'
// current coordinates. Must be called after any node position edit and
// before a solve.
func (m *Model) UpdateGeometry() error {
	for idx, mb := range m.Members {
		if mb.NodeI < 0 || mb.NodeI >= len(m.Nodes) || mb.NodeJ < 0 || mb.NodeJ >= len(m.Nodes) {
			return chk.Err("member %d references an out-of-range node index (%d, %d)", idx, mb.NodeI, mb.NodeJ)
		}
		mb.Update(m.Nodes[mb.NodeI], m.Nodes[mb.NodeJ])
	}
	return nil
}

// Validate checks the model invariants: positive member length and
// resolvable material/section references, consistent per-case array
// lengths. It calls UpdateGeometry first so Length/Angle are current.
func (m *Model) Validate() error {
	if err := m.UpdateGeometry(); err != nil {
		return err
	}
	for idx, mb := range m.Members {
		if mb.Length <= 0 {
			return chk.Err("member %d has non-positive length (nodes %d and %d coincide)", idx, mb.NodeI, mb.NodeJ)
		}
		if m.Material(mb.Material) == nil {
			return chk.Err("member %d references unknown material %q", idx, mb.Material)
		}
		sec := m.Section(mb.Section)
		if sec == nil {
			return chk.Err("member %d references unknown section %q", idx, mb.Section)
		}
		if sec.Ysup+sec.Yinf <= 0 {
			return chk.Err("section %q has ysup+yinf <= 0; thermal terms are undefined", sec.Name)
		}
		if len(mb.Qx) != len(m.LoadCases) {
			return chk.Err("member %d has %d load-case entries, want %d", idx, len(mb.Qx), len(m.LoadCases))
		}
	}
	for idx, n := range m.Nodes {
		if len(n.Px) != len(m.LoadCases) {
			return chk.Err("node %d has %d load-case entries, want %d", idx, len(n.Px), len(m.LoadCases))
		}
	}
	for idx, c := range m.Combinations {
		if len(c.Factors) != len(m.LoadCases) {
			return chk.Err("combination %d (%q) has %d factors, want %d", idx, c.Name, len(c.Factors), len(m.LoadCases))
		}
	}
	return nil
}
