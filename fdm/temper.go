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

// HeatTransport advances the temperature over one time step for
//  ∂(C_th・T)/∂t = ∂/∂z(λ_eff・∂T/∂z) - ρ_w・c_w・∂(qT)/∂z
// with conduction through an effective thermal conductivity mixing the dry
// and saturated endpoints by effective saturation, thermal dispersion by the
// water flux, and donor-cell upwind advection. The hydraulic fields are in
// the cm/day basis; they are converted to SI (m, s) before assembly since
// the thermal properties are given in SI units.
type HeatTransport struct {

	// input
	sim *inp.Simulation
	mdl msoil.Model

	// scratch
	kk         []float64 // hydraulic conductivity at nodes
	told       []float64 // prior-step temperature
	cth        []float64 // volumetric heat capacity at nodes [J/m³/K]
	lo, di, up []float64 // tridiagonal bands
	rhs        []float64
}

// NewHeatTransport returns a new heat-transport solver
func NewHeatTransport(sim *inp.Simulation, mdl msoil.Model) (o *HeatTransport) {
	o = new(HeatTransport)
	o.sim = sim
	o.mdl = mdl
	n := sim.NumNP
	o.kk = make([]float64, n)
	o.told = make([]float64, n)
	o.cth = make([]float64, n)
	o.lo = make([]float64, n)
	o.di = make([]float64, n)
	o.up = make([]float64, n)
	o.rhs = make([]float64, n)
	return
}

// Step advances the temperature field, overwriting the state's Temp in
// place. A nil temperature field is initialised to the ambient value first.
func (o *HeatTransport) Step(s *State) (err error) {

	// auxiliary
	n := o.sim.NumNP
	sim := o.sim

	// lazy initialisation at ambient temperature
	if s.Temp == nil {
		s.Temp = make([]float64, n)
		for i := 0; i < n; i++ {
			s.Temp[i] = sim.Tini
		}
	}
	copy(o.told, s.Temp)

	// convert grid and step to SI
	dz := sim.Dz / 100.0         // m
	dt := sim.Dt * 24.0 * 3600.0 // s
	dz2 := dz * dz

	// interface fluxes in cm/day, then in m/s
	for i := 0; i < n; i++ {
		o.kk[i] = o.mdl.Cond(s.H[i])
	}
	q := interfaceFluxes(s.H, o.kk, sim.Dz)
	for i := range q {
		q[i] *= 1.0 / 100.0 / (24.0 * 3600.0)
	}

	// effective thermal conductivity at interfaces: dry/saturated mixing by
	// effective saturation plus mechanical dispersion by the water flux
	qr, qs := o.mdl.Qr(), o.mdl.Qs()
	lam := make([]float64, n)
	for i := 0; i < n; i++ {
		se := (s.Theta[i] - qr) / math.Max(qs-qr, 1e-12)
		if se < 0 {
			se = 0
		}
		if se > 1 {
			se = 1
		}
		lam[i] = sim.LambdaDry + (sim.LambdaSat-sim.LambdaDry)*se
	}
	lamEff := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		lamEff[i] = 0.5*(lam[i]+lam[i+1]) + sim.RhoW*sim.Cw*sim.AlphaT*math.Abs(q[i])
	}

	// volumetric heat capacity: solids occupy (1-Qs), water occupies θ
	for i := 0; i < n; i++ {
		o.cth[i] = sim.RhoS*sim.Cs*(1.0-qs) + sim.RhoW*sim.Cw*s.Theta[i]
	}

	// interior rows: time term, implicit conduction, donor-cell advection
	la.VecFill(o.lo, 0)
	la.VecFill(o.di, 0)
	la.VecFill(o.up, 0)
	la.VecFill(o.rhs, 0)
	adv := sim.RhoW * sim.Cw / dz
	for i := 1; i < n-1; i++ {
		kL := lamEff[i-1]
		kR := lamEff[i]
		o.lo[i] = -kL / dz2
		o.up[i] = -kR / dz2
		o.di[i] = o.cth[i]/dt + kL/dz2 + kR/dz2
		o.rhs[i] = o.cth[i] * o.told[i] / dt

		qR := q[i]
		qL := q[i-1]
		if qR >= 0 {
			o.di[i] += adv * qR
		} else {
			o.up[i] += adv * qR
		}
		if qL >= 0 {
			o.lo[i] -= adv * qL
		} else {
			o.di[i] -= adv * qL
		}
	}

	// top boundary: Dirichlet when a value is configured, otherwise the
	// prior value is persisted
	o.di[0] = 1.0
	if sim.Ttop != nil {
		o.rhs[0] = *sim.Ttop
	} else {
		o.rhs[0] = o.told[0]
	}

	// bottom boundary: Dirichlet when requested, else the prior value as a
	// zero-gradient approximation
	o.di[n-1] = 1.0
	if sim.BcTbot == "dirichlet" {
		o.rhs[n-1] = sim.Tbot
	} else {
		o.rhs[n-1] = o.told[n-1]
	}

	// solve
	tnew, err := num.SolveTridiag(o.lo, o.di, o.up, o.rhs)
	if err != nil {
		return
	}
	copy(s.Temp, tnew)
	return
}
