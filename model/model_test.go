// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"testing"
)

func simplySupportedBeam() *Model {
	m := New()
	m.AddLoadCase("q")
	n1 := NewNode(0, 0, 1)
	n1.Restr = [3]int{1, 1, 0}
	n2 := NewNode(10, 0, 1)
	n2.Restr = [3]int{0, 1, 0}
	m.Nodes = append(m.Nodes, n1, n2)
	m.Materials = append(m.Materials, NewMaterial("steel", 1e6, 1e-5))
	m.Sections = append(m.Sections, Generic("generic", 1e3, 1, 0.1, 0.1))
	mb := NewMember(0, 1, "steel", "generic", 1)
	mb.Qy[0] = -1
	mb.QType[0] = 1
	m.Members = append(m.Members, mb)
	return m
}

func TestValidateOK(t *testing.T) {
	m := simplySupportedBeam()
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Members[0].Length; math.Abs(got-10) > 1e-12 {
		t.Fatalf("length = %v, want 10", got)
	}
}

func TestValidateZeroLengthMember(t *testing.T) {
	m := simplySupportedBeam()
	m.Nodes[1].X, m.Nodes[1].Y = 0, 0
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for zero-length member")
	}
}

func TestValidateUnknownMaterial(t *testing.T) {
	m := simplySupportedBeam()
	m.Members[0].Material = "nope"
	if err := m.Validate(); err == nil {
		t.Fatal("expected error for unknown material")
	}
}

func TestAddRemoveLoadCase(t *testing.T) {
	m := simplySupportedBeam()
	m.AddLoadCase("wind")
	if m.NCases() != 2 {
		t.Fatalf("NCases = %d, want 2", m.NCases())
	}
	if len(m.Nodes[0].Px) != 2 || len(m.Members[0].Qx) != 2 {
		t.Fatal("per-case arrays not extended")
	}
	m.RemoveLoadCase(0)
	if m.NCases() != 1 {
		t.Fatalf("NCases = %d, want 1", m.NCases())
	}
}

func TestFindAngleVertical(t *testing.T) {
	if got := findAngle(0, 0, 0, 5); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("angle = %v, want pi/2", got)
	}
	if got := findAngle(0, 5, 0, 0); math.Abs(got-3*math.Pi/2) > 1e-12 {
		t.Fatalf("angle = %v, want 3pi/2", got)
	}
}
