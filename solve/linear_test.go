// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/staframe/model"
)

// simplySupportedBeam builds the S1 scenario: simply supported beam of
// length 10 under a uniform downward local load qy=-1.
func simplySupportedBeam() *model.Model {
	m := model.New()
	m.AddLoadCase("q")
	n1 := model.NewNode(0, 0, 1)
	n1.Restr = [3]int{1, 1, 0}
	n2 := model.NewNode(10, 0, 1)
	n2.Restr = [3]int{0, 1, 0}
	m.Nodes = append(m.Nodes, n1, n2)
	m.Materials = append(m.Materials, model.NewMaterial("steel", 1e6, 1e-5))
	m.Sections = append(m.Sections, model.Generic("generic", 1e3, 1, 0.1, 0.1))
	mb := model.NewMember(0, 1, "steel", "generic", 1)
	mb.Qy[0] = -1
	mb.QType[0] = 1
	m.Members = append(m.Members, mb)
	return m
}

func TestLinearSimplySupportedBeamReactions(t *testing.T) {
	m := simplySupportedBeam()
	res, err := SolveLinear(context.Background(), m)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	// total load = 1*10 = 10 downward, split evenly between the two
	// vertical reactions.
	r1y := res.FR[0][0][1]
	r2y := res.FR[0][1][1]
	if math.Abs(r1y-5) > 1e-6 || math.Abs(r2y-5) > 1e-6 {
		t.Fatalf("reactions = %v, %v, want 5, 5", r1y, r2y)
	}
	if math.Abs(res.FR[0][0][0]) > 1e-9 {
		t.Fatalf("horizontal reaction at pin = %v, want 0", res.FR[0][0][0])
	}
}

func TestLinearSimplySupportedBeamMoment(t *testing.T) {
	m := simplySupportedBeam()
	res, err := SolveLinear(context.Background(), m)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	// both ends are pinned, so the end moment vanishes; the sagging moment
	// lives between the supports.
	m0 := res.Fe[0][0][2]
	if math.Abs(m0) > 1e-6 {
		t.Fatalf("end moment = %v, want 0 for a simply supported beam", m0)
	}
}

// thermalGradientBeam builds the S6 scenario.
func thermalGradientBeam() (*model.Model, *model.Material, *model.Section) {
	m := model.New()
	m.AddLoadCase("t")
	n1 := model.NewNode(0, 0, 1)
	n1.Restr = [3]int{1, 1, 0}
	n2 := model.NewNode(10, 0, 1)
	n2.Restr = [3]int{0, 1, 0}
	m.Nodes = append(m.Nodes, n1, n2)
	mat := model.NewMaterial("steel", 1e6, 1e-5)
	sec := model.Generic("generic", 1e3, 1, 0.05, 0.05)
	m.Materials = append(m.Materials, mat)
	m.Sections = append(m.Sections, sec)
	mb := model.NewMember(0, 1, "steel", "generic", 1)
	mb.Tsup[0] = 10
	mb.Tinf[0] = -10
	m.Members = append(m.Members, mb)
	return m, mat, sec
}

func TestLinearThermalGradient(t *testing.T) {
	m, mat, sec := thermalGradientBeam()
	res, err := SolveLinear(context.Background(), m)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	h := sec.Ysup + sec.Yinf
	dt := 20.0
	wantM := mat.Alpha * mat.E * sec.Inertia * dt / h

	m0 := -res.Fe[0][0][2]
	m1 := res.Fe[0][0][5]
	if math.Abs(math.Abs(m0)-wantM) > 1e-6 {
		t.Fatalf("|end moment 0| = %v, want %v", math.Abs(m0), wantM)
	}
	if math.Abs(m0-m1) > 1e-6 {
		t.Fatalf("end moments differ: %v vs %v, want a constant moment", m0, m1)
	}
	if math.Abs(res.FR[0][0][1]) > 1e-9 || math.Abs(res.FR[0][1][1]) > 1e-9 {
		t.Fatal("expected no vertical reactions from a pure thermal gradient")
	}
}
