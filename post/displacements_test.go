// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"context"
	"math"
	"testing"

	"github.com/cpmech/staframe/model"
	"github.com/cpmech/staframe/solve"
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

func TestDisplacementsLinearEndpointsMatchSolve(t *testing.T) {
	m := simplySupportedBeam()
	res, err := solve.SolveLinear(context.Background(), m)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	curves, err := DisplacementsLinear(m, res)
	if err != nil {
		t.Fatalf("displacements: %v", err)
	}
	if len(curves) != 1 {
		t.Fatalf("len(curves) = %d, want 1", len(curves))
	}
	c := curves[0]
	d := res.D[0][0]
	if len(c.X) != LinearStations+1 {
		t.Fatalf("len(X) = %d, want %d", len(c.X), LinearStations+1)
	}
	if math.Abs(c.X[0]) > 1e-12 || math.Abs(c.X[len(c.X)-1]-m.Members[0].Length) > 1e-9 {
		t.Fatalf("station range = [%v, %v], want [0, %v]", c.X[0], c.X[len(c.X)-1], m.Members[0].Length)
	}
	if math.Abs(c.V[0]-d[1]) > 1e-9 || math.Abs(c.V[len(c.V)-1]-d[4]) > 1e-6 {
		t.Fatalf("V endpoints = %v, %v, want %v, %v", c.V[0], c.V[len(c.V)-1], d[1], d[4])
	}
	// the beam is symmetric under a uniform load, so the mid-span deflection
	// should be the curve's extreme value.
	mid := len(c.V) / 2
	for _, v := range c.V {
		if math.Abs(v) > math.Abs(c.V[mid])+1e-9 {
			t.Fatalf("mid-span deflection %v is not the extreme of %v", c.V[mid], c.V)
		}
	}
}

func TestDisplacementsNonlinearEndpointsMatchSolve(t *testing.T) {
	m := simplySupportedBeam()
	res, reports, err := solve.SolveNonlinear(context.Background(), m, solve.DefaultMaxIterations, solve.DefaultTolerance)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !reports[0].Converged {
		t.Fatalf("expected convergence, report = %+v", reports[0])
	}
	curves, err := DisplacementsNonlinear(m, res)
	if err != nil {
		t.Fatalf("displacements: %v", err)
	}
	c := curves[0]
	d := res.D[0][0]
	L := m.Members[0].Length
	wantStations := nonlinearStations(L) + 1
	if len(c.X) != wantStations {
		t.Fatalf("len(X) = %d, want %d", len(c.X), wantStations)
	}
	if math.Abs(c.X[0]) > 1e-12 || math.Abs(c.X[len(c.X)-1]-L) > 1e-9 {
		t.Fatalf("station range = [%v, %v], want [0, %v]", c.X[0], c.X[len(c.X)-1], L)
	}
	if math.Abs(c.V[0]-d[1]) > 1e-9 || math.Abs(c.V[len(c.V)-1]-d[4]) > 1e-6 {
		t.Fatalf("V endpoints = %v, %v, want %v, %v", c.V[0], c.V[len(c.V)-1], d[1], d[4])
	}
}
