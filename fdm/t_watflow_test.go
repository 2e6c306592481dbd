// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosoil/msoil"
)

// testModel returns the default van Genuchten model
func testModel(tst *testing.T) msoil.Model {
	mdl, err := msoil.New("vg")
	if err != nil {
		tst.Fatalf("New failed: %v\n", err)
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Fatalf("Init failed: %v\n", err)
	}
	return mdl
}

func Test_watflow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("watflow01. uniform steady state is a fixed point")

	sim := testSim()
	sim.Htop = -100
	sim.Hini = -100
	sim.Qbot = 0
	sim.Tpot = 0
	mdl := testModel(tst)

	s, err := NewState(sim, mdl)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	wat := NewWatFlow(sim, mdl)
	nit, conv, err := wat.Step(s)
	if err != nil {
		tst.Errorf("Step failed: %v\n", err)
		return
	}
	if !conv {
		tst.Errorf("steady state did not converge\n")
		return
	}
	if chk.Verbose {
		io.Pforan("nit = %d\n", nit)
	}

	// head field remains uniform and unchanged
	θref := mdl.Content(-100)
	for i := 0; i < sim.NumNP; i++ {
		chk.Scalar(tst, io.Sf("h[%d]", i), 1e-12, s.H[i], -100)
		chk.Scalar(tst, io.Sf("θ[%d]", i), 1e-12, s.Theta[i], θref)
	}

	// the sink cache is set on success
	if s.Sink == nil {
		tst.Errorf("sink cache not set\n")
	}
}

func Test_watflow02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("watflow02. determinism: identical state gives identical output")

	sim := testSim()
	sim.Htop = -50
	sim.Hini = -100
	sim.Dt = 0.01
	mdl := testModel(tst)

	run := func() *State {
		s, err := NewState(sim, mdl)
		if err != nil {
			tst.Fatalf("NewState failed: %v\n", err)
		}
		wat := NewWatFlow(sim, mdl)
		_, _, err = wat.Step(s)
		if err != nil {
			tst.Fatalf("Step failed: %v\n", err)
		}
		return s
	}
	s1 := run()
	s2 := run()
	chk.Vector(tst, "h", 1e-17, s1.H, s2.H)
	chk.Vector(tst, "θ", 1e-17, s1.Theta, s2.Theta)
}

func Test_watflow03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("watflow03. wetting step honours the surface Dirichlet head")

	sim := testSim()
	sim.Htop = -50
	sim.Hini = -100
	sim.Dt = 0.01
	mdl := testModel(tst)

	s, err := NewState(sim, mdl)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	wat := NewWatFlow(sim, mdl)
	_, _, err = wat.Step(s)
	if err != nil {
		tst.Errorf("Step failed: %v\n", err)
		return
	}

	// the surface node carries the Dirichlet value exactly
	chk.Scalar(tst, "h[0]", 1e-13, s.H[0], -50)

	// all fields stay finite
	for i := 0; i < sim.NumNP; i++ {
		if math.IsNaN(s.H[i]) || math.IsInf(s.H[i], 0) {
			tst.Errorf("head at node %d is not finite: %v\n", i, s.H[i])
			return
		}
	}
	if chk.Verbose {
		io.Pforan("h = %v\n", s.H)
	}
}
