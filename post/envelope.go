// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package post

import (
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/staframe/model"
)

// Envelopes scans diagrams, grouped by member, and for each of the three
// internal-force components records the governing (value, case) extremes
// across the cases scope selects. Within a case, a component's own extreme
// station is used (not a fixed station), matching a per-member governing
// envelope rather than a per-station one.
//
// diagrams must come from a single call to InternalForces (one runType);
// mixing linear and non-linear diagrams in one scan is the caller's error
// to avoid.
func Envelopes(m *model.Model, diagrams []MemberDiagram, scope Scope) (max, min []Envelope) {
	nraw := len(m.LoadCases)
	ncombo := len(m.Combinations)

	inScope := func(c int) bool {
		switch scope {
		case ScopeLoadCases:
			return c < nraw
		case ScopeCombinations:
			return c >= nraw && c < nraw+ncombo
		default:
			return c < nraw+ncombo
		}
	}

	max = make([]Envelope, len(m.Members))
	min = make([]Envelope, len(m.Members))
	started := make([]bool, len(m.Members))

	for _, d := range diagrams {
		if !inScope(d.Case) {
			continue
		}
		mi := d.Member
		minN, maxN := utl.DblArgMinMax(d.N)
		minV, maxV := utl.DblArgMinMax(d.V)
		minM, maxM := utl.DblArgMinMax(d.M)

		if !started[mi] {
			max[mi] = Envelope{
				MaxN: ValueCase{d.N[maxN], d.Case},
				MaxV: ValueCase{d.V[maxV], d.Case},
				MaxM: ValueCase{d.M[maxM], d.Case},
			}
			min[mi] = Envelope{
				MinN: ValueCase{d.N[minN], d.Case},
				MinV: ValueCase{d.V[minV], d.Case},
				MinM: ValueCase{d.M[minM], d.Case},
			}
			started[mi] = true
			continue
		}

		if d.N[maxN] > max[mi].MaxN.Value {
			max[mi].MaxN = ValueCase{d.N[maxN], d.Case}
		}
		if d.V[maxV] > max[mi].MaxV.Value {
			max[mi].MaxV = ValueCase{d.V[maxV], d.Case}
		}
		if d.M[maxM] > max[mi].MaxM.Value {
			max[mi].MaxM = ValueCase{d.M[maxM], d.Case}
		}
		if d.N[minN] < min[mi].MinN.Value {
			min[mi].MinN = ValueCase{d.N[minN], d.Case}
		}
		if d.V[minV] < min[mi].MinV.Value {
			min[mi].MinV = ValueCase{d.V[minV], d.Case}
		}
		if d.M[minM] < min[mi].MinM.Value {
			min[mi].MinM = ValueCase{d.M[minM], d.Case}
		}
	}
	return max, min
}

