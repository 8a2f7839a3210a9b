// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/staframe/model"
	"github.com/cpmech/staframe/post"
	"github.com/cpmech/staframe/solve"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	nonlinear := flag.Bool("nonlinear", false, "use the Galambos stability-function solver instead of the linear solver")
	maxIter := flag.Int("maxiter", solve.DefaultMaxIterations, "non-linear fixed-point iteration budget")
	tol := flag.Float64("tol", solve.DefaultTolerance, "non-linear convergence tolerance")
	scope := flag.String("scope", "all", "envelope scope: all, cases, combos")
	flag.Parse()

	io.PfWhite("\nstaframe -- planar structural-frame analyzer\n\n")

	if flag.NArg() < 1 {
		chk.Panic("please provide a model file. Ex.: staframe model.txt")
	}
	fnamepath := flag.Arg(0)

	m, err := model.LoadFile(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}
	if err := m.Validate(); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("> model loaded: %d nodes, %d members, %d load cases, %d combinations\n",
		len(m.Nodes), len(m.Members), len(m.LoadCases), len(m.Combinations))

	ctx := context.Background()
	var result *solve.Result
	runType := post.Linear

	if *nonlinear {
		io.Pf("> running non-linear (Galambos) solve\n")
		var reports []solve.NonlinearReport
		result, reports, err = solve.SolveNonlinear(ctx, m, *maxIter, *tol)
		if err != nil {
			chk.Panic("%v", err)
		}
		for c, r := range reports {
			if !r.Converged {
				io.PfYel("  case %d did not converge: %d iterations, residual %g\n", c, r.Iterations, r.Residual)
			}
		}
		runType = post.NonLinear
	} else {
		io.Pf("> running linear solve\n")
		result, err = solve.SolveLinear(ctx, m)
		if err != nil {
			chk.Panic("%v", err)
		}
	}

	var curves []post.MemberCurve
	if *nonlinear {
		curves, err = post.DisplacementsNonlinear(m, result)
	} else {
		curves, err = post.DisplacementsLinear(m, result)
	}
	if err != nil {
		chk.Panic("%v", err)
	}

	diagrams, err := post.InternalForces(m, result, curves, runType)
	if err != nil {
		chk.Panic("%v", err)
	}

	var envScope post.Scope
	switch *scope {
	case "cases":
		envScope = post.ScopeLoadCases
	case "combos":
		envScope = post.ScopeCombinations
	default:
		envScope = post.ScopeAll
	}
	maxEnv, minEnv := post.Envelopes(m, diagrams, envScope)

	printReactions(m, result)
	printEnvelopes(m, maxEnv, minEnv)

	io.PfGreen("\n> done\n")
}

// printReactions lists the support reaction at every restrained node, for
// every case. extractReactions already rotates oblique-support reactions
// back to global axes, so Rx/Ry here are global components.
func printReactions(m *model.Model, r *solve.Result) {
	io.Pf("\nreactions:\n")
	for c := range r.FR {
		for ni, n := range m.Nodes {
			if n.Restr[0] == 0 && n.Restr[1] == 0 && n.Restr[2] == 0 {
				continue
			}
			fr := r.FR[c][ni]
			io.Pf("  case %2d  node %3d  Rx=%12.4f  Ry=%12.4f  Mz=%12.4f\n", c, ni, fr[0], fr[1], fr[2])
		}
	}
}

// printEnvelopes lists the governing max/min internal-force extremes for
// every member.
func printEnvelopes(m *model.Model, max, min []post.Envelope) {
	io.Pf("\nenvelopes:\n")
	for mi := range m.Members {
		io.Pf("  member %3d  N: [%10.4f (case %d), %10.4f (case %d)]  V: [%10.4f (case %d), %10.4f (case %d)]  M: [%10.4f (case %d), %10.4f (case %d)]\n",
			mi,
			min[mi].MinN.Value, min[mi].MinN.Case, max[mi].MaxN.Value, max[mi].MaxN.Case,
			min[mi].MinV.Value, min[mi].MinV.Case, max[mi].MaxV.Value, max[mi].MaxV.Case,
			min[mi].MinM.Value, min[mi].MinM.Case, max[mi].MaxM.Value, max[mi].MaxM.Case,
		)
	}
}
