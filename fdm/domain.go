// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fdm implements the finite-difference solvers for transient
// unsaturated water flow, solute transport and heat transport in a 1D
// soil column, and the time-stepping driver that sequences them
package fdm

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosoil/inp"
	"github.com/cpmech/gosoil/msoil"
)

// State holds the mutable per-node fields of one soil column. It is owned
// exclusively by the Solver and handed to one physics solver at a time;
// each solver reads prior-step fields and overwrites its own field in place
// at the end of a successful step.
type State struct {
	Time  float64   // simulated time
	H     []float64 // matric head at nodes
	Theta []float64 // water content at nodes
	C     []float64 // concentration at nodes; nil until solute transport runs
	Temp  []float64 // temperature at nodes; nil until heat transport runs
	Sink  []float64 // root-water-uptake sink at nodes [1/T]; nil when absent

	// SinkGiven distinguishes a caller-supplied sink (a persistent override)
	// from the transient per-step cache built by the water solver
	SinkGiven bool
}

// NewState allocates and initialises the state: heads from the profile
// initialiser and content derived from heads via the material model.
// Concentration and temperature are lazily initialised by their solvers.
func NewState(sim *inp.Simulation, mdl msoil.Model) (o *State, err error) {
	if sim.NumNP < 3 {
		return nil, chk.Err("grid needs at least one interior node. NumNP=%d is invalid", sim.NumNP)
	}
	o = new(State)
	o.H = sim.InitialHeads()
	o.Theta = make([]float64, sim.NumNP)
	for i, h := range o.H {
		o.Theta[i] = mdl.Content(h)
	}
	return
}

// SetSink installs a caller-supplied sink array as a persistent override;
// the sink profile builder returns it unchanged every step. An array whose
// length does not match the grid is rejected, leaving the state untouched.
func (o *State) SetSink(s []float64) error {
	if len(s) != len(o.H) {
		return chk.Err("sink array has %d values but the grid has %d nodes", len(s), len(o.H))
	}
	o.Sink = s
	o.SinkGiven = true
	return nil
}

// interfaceFluxes computes the Darcy flux at the NumNP-1 interfaces from the
// head field:  q_{i+1/2} = -K_{i+1/2}・(h_{i+1}-h_i)/dz  with the arithmetic
// mean conductivity at the interface
func interfaceFluxes(h, kcond []float64, dz float64) (q []float64) {
	n := len(h)
	q = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		ki := 0.5 * (kcond[i] + kcond[i+1])
		q[i] = -ki * (h[i+1] - h[i]) / dz
	}
	return
}
