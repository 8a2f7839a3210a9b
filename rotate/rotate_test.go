// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rotate

import (
	"math"
	"testing"

	"github.com/cpmech/staframe/model"
)

func TestMemberRotationOrthogonal(t *testing.T) {
	r := Member(math.Pi / 6)
	// R * Rt should be the identity: sum_k R[i][k]*R[j][k] == delta_ij.
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var sum float64
			for k := 0; k < 6; k++ {
				sum += r[i][k] * r[j][k]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(sum-want) > 1e-9 {
				t.Fatalf("R*Rt[%d][%d] = %v, want %v", i, j, sum, want)
			}
		}
	}
}

func TestMemberRotationZeroIsIdentity(t *testing.T) {
	r := Member(0)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(r[i][j]-want) > 1e-12 {
				t.Fatalf("R(0)[%d][%d] = %v, want %v", i, j, r[i][j], want)
			}
		}
	}
}

func TestSupportIdentityWhenNotOblique(t *testing.T) {
	ni := model.NewNode(0, 0, 0)
	ni.Restr = [3]int{1, 1, 0}
	nj := model.NewNode(1, 0, 0)
	ri := Support(ni, nj)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(ri[i][j]-want) > 1e-12 {
				t.Fatalf("RI[%d][%d] = %v, want identity %v", i, j, ri[i][j], want)
			}
		}
	}
}

func TestSupportObliqueRotatesOneEnd(t *testing.T) {
	ni := model.NewNode(0, 0, 0)
	ni.Restr = [3]int{1, 0, 0}
	ni.SupportAngle = math.Pi / 4
	nj := model.NewNode(1, 0, 0)
	ri := Support(ni, nj)
	if math.Abs(ri[0][0]-math.Cos(-math.Pi/4)) > 1e-9 {
		t.Fatalf("RI[0][0] = %v, want cos(-pi/4)", ri[0][0])
	}
	// the non-oblique end stays identity
	if ri[3][3] != 1 || ri[4][4] != 1 || ri[3][4] != 0 {
		t.Fatalf("non-oblique end block not identity: %v %v %v", ri[3][3], ri[4][4], ri[3][4])
	}
}
