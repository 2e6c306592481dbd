// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdm

import (
	"math"

	"github.com/cpmech/gosoil/inp"
)

// FeddesAlpha computes the pressure-stress response α(h) ∈ [0,1] from the
// four thresholds h1 > h2 > h3 > h4 (all negative under suction):
// zero above h1 (anoxia), ramping up to 1 between h1 and h2, 1 between h2
// and h3, ramping down to 0 between h3 and h4, zero below h4
func FeddesAlpha(h, h1, h2, h3, h4 float64) float64 {
	switch {
	case h >= h1:
		return 0
	case h >= h2:
		return (h1 - h) / (h1 - h2 + 1e-12)
	case h >= h3:
		return 1
	case h >= h4:
		return (h - h4) / (h3 - h4 + 1e-12)
	}
	return 0
}

// BuildSink returns the volumetric root-water-uptake rate per node [1/T],
// distributing the potential transpiration Tpot [L/T] over the root zone
// with the pressure-stress response evaluated at the current heads:
//  S_i = Tpot・β_i・α(h_i) / dz
//  Notes:
//   an already-present sink array on the state is returned unchanged;
//   uptake is off (all zeros) unless the sinkf selector is set;
//   a beta_root of the wrong length falls back to a uniform band over the
//   top round(z_root/dz) nodes, the full profile when z_root ≤ 0;
//   absent stress thresholds mean α ≡ 1
func BuildSink(sim *inp.Simulation, s *State) []float64 {

	// caller-override semantics
	if s.Sink != nil {
		return s.Sink
	}

	numnp := len(s.H)
	S := make([]float64, numnp)
	if !sim.SinkF || math.Abs(sim.Tpot) < 1e-12 {
		return S
	}

	// root distribution
	beta := sim.BetaRoot
	if len(beta) != numnp {
		zroot := sim.Zroot
		if zroot <= 0 {
			zroot = float64(numnp) * sim.Dz
		}
		nroot := int(math.Round(zroot / sim.Dz))
		if nroot < 1 {
			nroot = 1
		}
		if nroot > numnp {
			nroot = numnp
		}
		beta = make([]float64, numnp)
		for i := 0; i < nroot; i++ {
			beta[i] = 1.0 / float64(nroot)
		}
	}

	// stress response
	for i := 0; i < numnp; i++ {
		alpha := 1.0
		if len(sim.Feddes) == 4 {
			alpha = FeddesAlpha(s.H[i], sim.Feddes[0], sim.Feddes[1], sim.Feddes[2], sim.Feddes[3])
		}
		S[i] = sim.Tpot * beta[i] * alpha / math.Max(sim.Dz, 1e-12)
	}
	return S
}
