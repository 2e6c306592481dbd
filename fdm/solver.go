// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosoil/inp"
	"github.com/cpmech/gosoil/msoil"
)

// TimeLevel is the compact per-step record: boundary and mid-column head samples
type TimeLevel struct {
	Step int     `json:"step"`  // step number, starting at 1
	T    float64 `json:"t"`     // simulated time after the step
	Htop float64 `json:"h_top"` // head at the surface node
	Hmid float64 `json:"h_mid"` // head at the mid-column node
	Hbot float64 `json:"h_bot"` // head at the bottom node
}

// Profile is one full nodal snapshot of a field
type Profile struct {
	T    float64   `json:"t"`
	Vals []float64 `json:"vals"`
}

// Results is the append-only bundle collected over a run and handed to the
// output collaborator. It is returned also after an aborted run, holding
// everything collected up to the failure.
type Results struct {
	Status         string      `json:"status"`                   // run-status message
	Messages       []string    `json:"messages,omitempty"`       // failure diagnostics tagged with simulated time
	NotConverged   int         `json:"not_converged"`            // steps whose Newton iteration exhausted its budget
	TimeLevels     []TimeLevel `json:"time_levels"`              // compact per-step series
	Heads          []Profile   `json:"heads,omitempty"`          // full nodal head series
	Concentrations []Profile   `json:"concentrations,omitempty"` // full nodal concentration series
	Temperatures   []Profile   `json:"temperatures,omitempty"`   // full nodal temperature series
}

// Ok tells whether the run completed without aborting
func (o *Results) Ok() bool { return len(o.Messages) == 0 }

// Solver drives the time loop, invoking water flow (always), solute
// transport and heat transport (when enabled) in that fixed order each
// step, because the transport solves depend on the flux and content fields
// the water solve just produced. Any solver failure aborts the run
// immediately; results collected up to that point are preserved.
type Solver struct {

	// input
	Sim     *inp.Simulation
	Mdl     msoil.Model
	Verbose bool

	// state and solvers
	State *State
	Wat   *WatFlow
	Sol   *SoluteTransport
	Het   *HeatTransport
}

// NewSolver allocates the state and the enabled physics solvers
func NewSolver(sim *inp.Simulation, mdl msoil.Model) (o *Solver, err error) {
	o = new(Solver)
	o.Sim = sim
	o.Mdl = mdl
	o.State, err = NewState(sim, mdl)
	if err != nil {
		return nil, err
	}
	o.Wat = NewWatFlow(sim, mdl)
	if sim.LChem {
		o.Sol = NewSoluteTransport(sim, mdl)
	}
	if sim.LTemp {
		o.Het = NewHeatTransport(sim, mdl)
	}
	return
}

// Run runs the simulation until t_end and returns the collected results
func (o *Solver) Run() (res *Results) {

	res = new(Results)
	s := o.State
	step := 0
	for s.Time < o.Sim.Tend-1e-12 {
		step++

		// the sink built last step is a transient cache; only a
		// caller-supplied sink survives across steps
		if !s.SinkGiven {
			s.Sink = nil
		}

		// water flow (mandatory)
		nit, conv, err := o.Wat.Step(s)
		if err != nil {
			res.Messages = append(res.Messages, io.Sf("t=%g: water flow failed: %v", s.Time, err))
			break
		}
		if !conv {
			res.NotConverged++
			if o.Verbose {
				io.Pfred("t=%g: water flow did not converge after %d iterations\n", s.Time, nit)
			}
		}

		// solute transport
		if o.Sol != nil {
			if err := o.Sol.Step(s); err != nil {
				res.Messages = append(res.Messages, io.Sf("t=%g: solute transport failed: %v", s.Time, err))
				break
			}
		}

		// heat transport
		if o.Het != nil {
			if err := o.Het.Step(s); err != nil {
				res.Messages = append(res.Messages, io.Sf("t=%g: heat transport failed: %v", s.Time, err))
				break
			}
		}

		// advance time
		s.Time += o.Sim.Dt
		if o.Verbose {
			io.Pf("%13.6f\r", s.Time)
		}

		// compact per-step record
		n := o.Sim.NumNP
		res.TimeLevels = append(res.TimeLevels, TimeLevel{
			Step: step,
			T:    s.Time,
			Htop: s.H[0],
			Hmid: s.H[n/2],
			Hbot: s.H[n-1],
		})

		// full nodal snapshots
		if step%o.Sim.SaveEvery == 0 {
			res.Heads = append(res.Heads, Profile{s.Time, cloneVec(s.H)})
			if o.Sol != nil {
				res.Concentrations = append(res.Concentrations, Profile{s.Time, cloneVec(s.C)})
			}
			if o.Het != nil {
				res.Temperatures = append(res.Temperatures, Profile{s.Time, cloneVec(s.Temp)})
			}
		}
	}

	// status
	if res.Ok() {
		res.Status = io.Sf("simulation completed successfully: %d steps up to t=%g", step, s.Time)
	} else {
		res.Status = io.Sf("simulation aborted at step %d (t=%g)", step, s.Time)
	}
	return
}

// cloneVec returns an owned copy of a nodal array
func cloneVec(v []float64) []float64 {
	u := make([]float64, len(v))
	copy(u, v)
	return u
}
