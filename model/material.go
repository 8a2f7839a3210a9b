// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// Material holds the constitutive parameters shared by every member that
// references it by name.
type Material struct {
	Name  string
	E     float64 // elastic modulus
	Alpha float64 // thermal expansion coefficient
}

// NewMaterial returns a Material with the given elastic modulus and thermal
// expansion coefficient.
func NewMaterial(name string, e, alpha float64) *Material {
	return &Material{Name: name, E: e, Alpha: alpha}
}
