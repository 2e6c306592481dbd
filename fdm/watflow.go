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

// WatFlow advances matric head and water content over one time step by
// solving the mixed-form Richards equation
//  ∂θ/∂t = -∂q/∂z - S    with    q = -K(h)・∂h/∂z
// subject to a Dirichlet head at the surface node and a Neumann flux at the
// bottom node. The nonlinear system is solved by Newton iteration over a
// tridiagonal linearisation; the sink-term derivative is omitted from the
// Jacobian (quasi-Newton), which affects the convergence rate only.
type WatFlow struct {

	// input
	sim *inp.Simulation
	mdl msoil.Model

	// scratch
	h, θ, kk, cc []float64 // iterate head/content, conductivity and capacity at nodes
	lo, di, up   []float64 // tridiagonal bands
	rr           []float64 // residual
}

// NewWatFlow returns a new water-flow solver
func NewWatFlow(sim *inp.Simulation, mdl msoil.Model) (o *WatFlow) {
	o = new(WatFlow)
	o.sim = sim
	o.mdl = mdl
	n := sim.NumNP
	o.h = make([]float64, n)
	o.θ = make([]float64, n)
	o.kk = make([]float64, n)
	o.cc = make([]float64, n)
	o.lo = make([]float64, n)
	o.di = make([]float64, n)
	o.up = make([]float64, n)
	o.rr = make([]float64, n)
	return
}

// Step advances the state from the previous time level to the new one.
//  Output:
//   nit       -- number of Newton iterations run
//   converged -- whether ‖Δh‖∞ < TolH was met within the iteration budget;
//                on budget exhaustion the last iterate is still accepted
//                (a warning condition, not fatal)
// On success the state's H, Theta and Sink fields are overwritten in place.
func (o *WatFlow) Step(s *State) (nit int, converged bool, err error) {

	// auxiliary
	n := o.sim.NumNP
	dz := o.sim.Dz
	dt := o.sim.Dt
	dz2 := dz * dz

	// sink profile, fixed over the Newton loop
	S := BuildSink(o.sim, s)

	// start iterating from the previous-step head
	copy(o.h, s.H)
	for i := 0; i < n; i++ {
		o.θ[i] = o.mdl.Content(o.h[i])
	}

	// Newton loop
	for nit = 0; nit < o.sim.MaxIt; nit++ {

		// material functions at the current iterate
		for i := 0; i < n; i++ {
			o.kk[i] = o.mdl.Cond(o.h[i])
			o.cc[i] = o.mdl.Capacity(o.h[i])
		}

		// interior rows: residual and linearisation
		la.VecFill(o.lo, 0)
		la.VecFill(o.di, 0)
		la.VecFill(o.up, 0)
		la.VecFill(o.rr, 0)
		for i := 1; i < n-1; i++ {
			kR := 0.5 * (o.kk[i] + o.kk[i+1])
			kL := 0.5 * (o.kk[i] + o.kk[i-1])
			qR := -kR * (o.h[i+1] - o.h[i]) / dz
			qL := -kL * (o.h[i] - o.h[i-1]) / dz
			o.lo[i] = -kL / dz2
			o.up[i] = -kR / dz2
			o.di[i] = o.cc[i]/dt + kL/dz2 + kR/dz2
			o.rr[i] = (o.θ[i]-s.Theta[i])/dt + (qR-qL)/dz + S[i]
		}

		// boundary rows override the interior assembly
		o.di[0] = 1.0
		o.rr[0] = o.h[0] - o.sim.Htop
		o.di[n-1] = 1.0
		o.rr[n-1] = (o.h[n-1]-o.h[n-2])/dz + o.sim.Qbot/math.Max(o.kk[n-1], 1e-12)

		// solve for the head increment: J・Δh = -r
		for i := 0; i < n; i++ {
			o.rr[i] = -o.rr[i]
		}
		dh, e := num.SolveTridiag(o.lo, o.di, o.up, o.rr)
		if e != nil {
			return nit, false, e
		}

		// update iterate
		for i := 0; i < n; i++ {
			o.h[i] += dh[i]
			o.θ[i] = o.mdl.Content(o.h[i])
		}

		// convergence on the increment infinity-norm
		if la.VecLargest(dh, 1) < o.sim.TolH {
			nit++
			converged = true
			break
		}
	}

	// accept the last iterate
	copy(s.H, o.h)
	copy(s.Theta, o.θ)
	s.Sink = S
	return
}
