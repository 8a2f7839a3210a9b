// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"math"
	"testing"
)

func TestScaleOfZeroIsOne(t *testing.T) {
	if scaleOf(0) != 1 {
		t.Fatalf("scaleOf(0) = %v, want 1", scaleOf(0))
	}
}

func TestScaleOfMapsMaxTo20(t *testing.T) {
	got := scaleOf(4)
	want := 5.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("scaleOf(4) = %v, want %v", got, want)
	}
	if math.Abs(got*4-scaleExtent) > 1e-9 {
		t.Fatalf("scaleOf(4)*4 = %v, want %v", got*4, scaleExtent)
	}
}

func TestForceScalesUsesLargestAcrossMembers(t *testing.T) {
	diagrams := []MemberDiagram{
		{N: []float64{1, -2}, V: []float64{3}, M: []float64{-10}},
		{N: []float64{5}, V: []float64{-8}, M: []float64{4}},
	}
	axial, shear, moment := ForceScales(diagrams)
	if math.Abs(axial-scaleExtent/5) > 1e-9 {
		t.Fatalf("axial scale = %v, want %v", axial, scaleExtent/5)
	}
	if math.Abs(shear-scaleExtent/8.0) > 1e-9 {
		t.Fatalf("shear scale = %v, want %v", shear, scaleExtent/8.0)
	}
	if math.Abs(moment-scaleExtent/10) > 1e-9 {
		t.Fatalf("moment scale = %v, want %v", moment, scaleExtent/10)
	}
}
