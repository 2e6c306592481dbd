// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gosoil/inp"
	"github.com/cpmech/gosoil/msoil"
	"github.com/cpmech/gosoil/num"
)

// SoluteTransport advances the concentration over one time step for
//  ∂(θc)/∂t = -∂(qc)/∂z + ∂/∂z(D・∂c/∂z) - S・c
// with implicit dispersion, semi-implicit donor-cell upwind advection and
// first-order removal by the root-uptake sink. The head and content fields
// must already have been advanced by the water-flow solver; the equation is
// then linear and needs a single tridiagonal solve per step.
type SoluteTransport struct {

	// input
	sim *inp.Simulation
	mdl msoil.Model

	// scratch
	kk         []float64 // conductivity at nodes
	cold       []float64 // prior-step concentration
	lo, di, up []float64 // tridiagonal bands
	rhs        []float64
}

// NewSoluteTransport returns a new solute-transport solver
func NewSoluteTransport(sim *inp.Simulation, mdl msoil.Model) (o *SoluteTransport) {
	o = new(SoluteTransport)
	o.sim = sim
	o.mdl = mdl
	n := sim.NumNP
	o.kk = make([]float64, n)
	o.cold = make([]float64, n)
	o.lo = make([]float64, n)
	o.di = make([]float64, n)
	o.up = make([]float64, n)
	o.rhs = make([]float64, n)
	return
}

// Step advances the concentration field, overwriting the state's C in place.
// A nil concentration field is zero-initialised first.
func (o *SoluteTransport) Step(s *State) (err error) {

	// auxiliary
	n := o.sim.NumNP
	dz := o.sim.Dz
	dt := o.sim.Dt
	dz2 := dz * dz

	// lazy initialisation
	if s.C == nil {
		s.C = make([]float64, n)
	}
	copy(o.cold, s.C)

	// interface fluxes and dispersion from the advanced head field
	for i := 0; i < n; i++ {
		o.kk[i] = o.mdl.Cond(s.H[i])
	}
	q := interfaceFluxes(s.H, o.kk, dz)
	D := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		θint := 0.5 * (s.Theta[i] + s.Theta[i+1])
		D[i] = o.sim.AlphaL*math.Abs(q[i])/math.Max(θint, 1e-12) + o.sim.Dm
	}

	// sink profile (normally the cache left by the water solver)
	S := BuildSink(o.sim, s)

	// interior rows: time term, implicit dispersion, donor-cell advection,
	// first-order removal
	la.VecFill(o.lo, 0)
	la.VecFill(o.di, 0)
	la.VecFill(o.up, 0)
	la.VecFill(o.rhs, 0)
	for i := 1; i < n-1; i++ {
		DL := D[i-1]
		DR := D[i]
		o.lo[i] = -DL / dz2
		o.up[i] = -DR / dz2
		o.di[i] = s.Theta[i]/dt + DL/dz2 + DR/dz2 + S[i]
		o.rhs[i] = s.Theta[i] * o.cold[i] / dt

		// upwind: a non-negative interface flux routes from the left node,
		// a negative one from the right node
		qR := q[i]
		qL := q[i-1]
		if qR >= 0 {
			o.di[i] += qR / dz
		} else {
			o.up[i] += qR / dz
		}
		if qL >= 0 {
			o.lo[i] -= qL / dz
		} else {
			o.di[i] -= qL / dz
		}
	}

	// top boundary: Dirichlet when a value is configured, otherwise the
	// prior value is persisted (a deliberate approximation, not a true
	// flux condition)
	o.di[0] = 1.0
	if o.sim.Ctop != nil {
		o.rhs[0] = *o.sim.Ctop
	} else {
		o.rhs[0] = o.cold[0]
	}

	// bottom boundary: Dirichlet when requested, else the prior value as a
	// zero-gradient approximation
	o.di[n-1] = 1.0
	if o.sim.BcCbot == "dirichlet" {
		o.rhs[n-1] = o.sim.Cbot
	} else {
		o.rhs[n-1] = o.cold[n-1]
	}

	// solve
	cnew, err := num.SolveTridiag(o.lo, o.di, o.up, o.rhs)
	if err != nil {
		return
	}
	copy(s.C, cnew)
	return
}
