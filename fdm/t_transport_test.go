// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_solute01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solute01. pure diffusion relaxes to the boundary value")

	// uniform heads: zero flux, no advection; no sink; equal Dirichlet
	// values at both ends
	sim := testSim()
	sim.NumNP = 5
	sim.Dz = 1.0
	sim.Dt = 1.0
	sim.Dm = 10.0
	sim.Tpot = 0
	ctop := 1.0
	sim.Ctop = &ctop
	sim.BcCbot = "dirichlet"
	sim.Cbot = 1.0
	mdl := testModel(tst)

	s, err := NewState(sim, mdl)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	sol := NewSoluteTransport(sim, mdl)
	for i := 0; i < 200; i++ {
		if err := sol.Step(s); err != nil {
			tst.Errorf("Step failed: %v\n", err)
			return
		}
	}
	if chk.Verbose {
		io.Pforan("c = %v\n", s.C)
	}
	for i := 0; i < sim.NumNP; i++ {
		chk.Scalar(tst, io.Sf("c[%d]", i), 1e-8, s.C[i], 1.0)
	}
}

func Test_solute02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solute02. absent Dirichlet values persist the prior ones")

	sim := testSim()
	sim.NumNP = 5
	sim.Ctop = nil
	sim.BcCbot = "neumann"
	sim.Tpot = 0
	mdl := testModel(tst)

	s, err := NewState(sim, mdl)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	s.C = []float64{0.7, 0.2, 0.2, 0.2, 0.3}
	sol := NewSoluteTransport(sim, mdl)
	for i := 0; i < 5; i++ {
		if err := sol.Step(s); err != nil {
			tst.Errorf("Step failed: %v\n", err)
			return
		}
	}

	// boundary nodes keep their prior values
	chk.Scalar(tst, "c[0]", 1e-14, s.C[0], 0.7)
	chk.Scalar(tst, "c[4]", 1e-14, s.C[4], 0.3)
}

func Test_temper01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("temper01. conduction relaxes to the boundary value")

	sim := testSim()
	sim.NumNP = 5
	sim.Tini = 5.0
	ttop := 20.0
	sim.Ttop = &ttop
	sim.BcTbot = "dirichlet"
	sim.Tbot = 20.0
	sim.Tpot = 0
	mdl := testModel(tst)

	s, err := NewState(sim, mdl)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	het := NewHeatTransport(sim, mdl)
	for i := 0; i < 500; i++ {
		if err := het.Step(s); err != nil {
			tst.Errorf("Step failed: %v\n", err)
			return
		}
	}
	if chk.Verbose {
		io.Pforan("T = %v\n", s.Temp)
	}
	for i := 0; i < sim.NumNP; i++ {
		chk.Scalar(tst, io.Sf("T[%d]", i), 1e-6, s.Temp[i], 20.0)
	}
}

func Test_temper02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("temper02. lazy initialisation at the ambient temperature")

	sim := testSim()
	sim.NumNP = 5
	sim.Ttop = nil
	sim.BcTbot = "neumann"
	mdl := testModel(tst)

	s, err := NewState(sim, mdl)
	if err != nil {
		tst.Errorf("NewState failed: %v\n", err)
		return
	}
	het := NewHeatTransport(sim, mdl)
	if err := het.Step(s); err != nil {
		tst.Errorf("Step failed: %v\n", err)
		return
	}
	for i := 0; i < sim.NumNP; i++ {
		chk.Scalar(tst, io.Sf("T[%d]", i), 1e-12, s.Temp[i], 20.0)
	}
}
