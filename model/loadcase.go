// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// LoadCase is a named slot; all per-case arrays on nodes/members are
// index-aligned with the model's LoadCases slice.
type LoadCase struct {
	Name string
}

// Combination linearly combines the raw load cases with Factors, one per
// load case, index-aligned with the model's LoadCases slice.
type Combination struct {
	Name    string
	Factors []float64
}
