// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msoil implements constitutive models for water retention and
// hydraulic conductivity of unsaturated soils
package msoil

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Eps is the smallest suction magnitude considered; |h| is floored at this
// value to avoid division/power singularities at h = 0
const Eps = 1e-12

// Model defines the functions of matric head h consumed by the flow and
// transport solvers. h is negative under suction.
type Model interface {
	Init(prms fun.Prms) error      // Init initialises this structure
	GetPrms(example bool) fun.Prms // gets (an example) of parameters
	Content(h float64) float64     // Content returns the water content θ(h)
	Capacity(h float64) float64    // Capacity returns the specific capacity C = dθ/dh
	Cond(h float64) float64        // Cond returns the hydraulic conductivity K(h)
	Qr() float64                   // Qr returns the residual water content
	Qs() float64                   // Qs returns the saturated water content
}

// New returns a new material model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in msoil database", name)
	}
	return allocator(), nil
}

// NameFromID maps the legacy integer model ids to model names:
// 0 and 3 => van Genuchten, 2 => Brooks-Corey, anything else => saturated
func NameFromID(id int) string {
	switch id {
	case 0, 3:
		return "vg"
	case 2:
		return "bcorey"
	}
	return "sat"
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// capacity approximates C = dθ/dh by a centered finite difference with a
// small fixed perturbation
func capacity(content func(h float64) float64, h float64) float64 {
	eps := 1e-6
	return (content(h+eps) - content(h-eps)) / (2.0 * eps)
}

// checkPorosity checks the common parameter constraints
func checkPorosity(name string, qr, qs, ks float64) error {
	if qr < 0 || qr >= qs || qs > 1 {
		return chk.Err("%s: content bounds must satisfy 0 ≤ Qr < Qs ≤ 1. Qr=%g, Qs=%g is invalid", name, qr, qs)
	}
	if ks <= 0 {
		return chk.Err("%s: saturated conductivity must be positive. Ks=%g is invalid", name, ks)
	}
	return nil
}
