// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import "math"

// ScaleFactors holds the display-scaling constants for a diagram drawing:
// a quantity is drawn at coef*value so the largest magnitude maps to a
// fixed 20-unit extent. A factor is 1 when every value is zero.
type ScaleFactors struct {
	Displacement float64
	Axial        float64
	Shear        float64
	Moment       float64
}

const scaleExtent = 20

// DisplacementScale returns the scale factor for a set of member
// displacement curves, taken over both the axial and transverse
// components across every member and case.
func DisplacementScale(curves []MemberCurve) float64 {
	var maxAbs float64
	for _, c := range curves {
		maxAbs = math.Max(maxAbs, maxAbsOf(c.U))
		maxAbs = math.Max(maxAbs, maxAbsOf(c.V))
	}
	return scaleOf(maxAbs)
}

// ForceScales returns the scale factors for a set of internal-force
// diagrams, one component at a time, across every member and case.
func ForceScales(diagrams []MemberDiagram) (axial, shear, moment float64) {
	var maxN, maxV, maxM float64
	for _, d := range diagrams {
		maxN = math.Max(maxN, maxAbsOf(d.N))
		maxV = math.Max(maxV, maxAbsOf(d.V))
		maxM = math.Max(maxM, maxAbsOf(d.M))
	}
	return scaleOf(maxN), scaleOf(maxV), scaleOf(maxM)
}

func scaleOf(maxAbs float64) float64 {
	if maxAbs == 0 {
		return 1
	}
	return math.Abs(scaleExtent / maxAbs)
}

func maxAbsOf(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}
	return m
}
