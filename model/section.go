// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "math"

// SectionType identifies which constructor produced a Section, and is also
// the typeId used by the line-oriented serialization format.
type SectionType int

const (
	SectionGeneric SectionType = iota
	SectionCircle
	SectionRectangle
	SectionSymmetricI
	SectionAsymmetricI
)

// Section is a cross-section: its moments of inertia, area, and distances
// from the centroid to the top/bottom fibers.
type Section struct {
	Name       string
	Type       SectionType
	Parameters []float64 // constructor parameters, in file-format order

	Inertia    float64 // I
	Area       float64 // A
	Ysup, Yinf float64 // distances from centroid to top/bottom fibers
}

// Generic builds a section from directly supplied properties.
func Generic(name string, inertia, area, ysup, yinf float64) *Section {
	return &Section{
		Name: name, Type: SectionGeneric,
		Parameters: []float64{inertia, area, ysup, yinf},
		Inertia:    inertia, Area: area, Ysup: ysup, Yinf: yinf,
	}
}

// Circle builds a solid (Dint=0) or tubular circular section.
func Circle(name string, dext, dint float64) *Section {
	s := &Section{Name: name, Type: SectionCircle, Parameters: []float64{dext, dint}}
	s.Inertia = math.Pi * (math.Pow(dext, 4) - math.Pow(dint, 4)) / 64
	s.Area = math.Pi * (dext*dext - dint*dint) / 4
	s.Ysup, s.Yinf = dext/2, dext/2
	return s
}

// Rectangle builds a rectangular section of width b and height h.
func Rectangle(name string, b, h float64) *Section {
	s := &Section{Name: name, Type: SectionRectangle, Parameters: []float64{b, h}}
	s.Inertia = (b * h * h * h) / 12
	s.Area = b * h
	s.Ysup, s.Yinf = h/2, h/2
	return s
}

// SymmetricI builds a symmetric I-shape section: flange width bf, flange
// thickness tf, web depth d, web thickness t.
func SymmetricI(name string, bf, tf, d, t float64) *Section {
	s := &Section{Name: name, Type: SectionSymmetricI, Parameters: []float64{bf, tf, d, t}}
	s.Inertia = (bf*math.Pow(d+2*tf, 3) - (bf-t)*math.Pow(d, 3)) / 12
	s.Area = 2*bf*tf + d*t
	s.Ysup, s.Yinf = tf+d/2, tf+d/2
	return s
}

// AsymmetricI builds an asymmetric I-shape section with independent top
// (bf1, tf1) and bottom (bf2, tf2) flanges, web depth d, web thickness t.
//
// Some implementations of this formula are known to drop the moment of
// inertia term for one of the three parallel-axis contributions. This one
// sums all three correctly: Σ(IN_k + A_k·(G_k - yg)²).
func AsymmetricI(name string, bf1, tf1, bf2, tf2, d, t float64) *Section {
	s := &Section{Name: name, Type: SectionAsymmetricI, Parameters: []float64{bf1, tf1, bf2, tf2, d, t}}

	area := [3]float64{bf1 * tf1, t * d, bf2 * tf2}
	centroid := [3]float64{tf1 / 2, tf1 + d/2, tf1 + d + tf2/2}
	inertia := [3]float64{
		(bf1 * math.Pow(tf1, 3)) / 12,
		(t * math.Pow(d, 3)) / 12,
		(bf2 * math.Pow(tf2, 3)) / 12,
	}

	s.Area = area[0] + area[1] + area[2]
	yg := (area[0]*centroid[0] + area[1]*centroid[1] + area[2]*centroid[2]) / s.Area

	s.Inertia = 0
	for k := 0; k < 3; k++ {
		dc := centroid[k] - yg
		s.Inertia += inertia[k] + area[k]*dc*dc
	}

	s.Yinf = yg
	s.Ysup = tf1 + d + tf2 - yg
	return s
}
