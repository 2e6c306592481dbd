// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msoil

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// BrooksCorey implements Brooks and Corey's power-law model
//  Se    = (|h|/Hb)^(-Lam)   clamped to [0,1]
//  θ(h)  = Qr + (Qs-Qr)・Se
//  K(h)  = Ks・Se^((2+3・Lam)/Lam)
type BrooksCorey struct {

	// parameters
	qr  float64 // residual water content
	qs  float64 // saturated water content
	ks  float64 // saturated conductivity [length/time]
	lam float64 // pore-size distribution index
	hb  float64 // air-entry (bubbling) head magnitude [length]
}

// add model to factory
func init() {
	allocators["bcorey"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qr":
			o.qr = p.V
		case "qs":
			o.qs = p.V
		case "ks":
			o.ks = p.V
		case "lam":
			o.lam = p.V
		case "hb":
			o.hb = p.V
		default:
			return chk.Err("bcorey: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.lam <= 0 {
		return chk.Err("bcorey: pore-size index must be positive. lam=%g is invalid", o.lam)
	}
	if o.hb <= 0 {
		return chk.Err("bcorey: air-entry head must be positive. hb=%g is invalid", o.hb)
	}
	return checkPorosity("bcorey", o.qr, o.qs, o.ks)
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "qr", V: 0.05},
		&fun.Prm{N: "qs", V: 0.45},
		&fun.Prm{N: "ks", V: 10.0},
		&fun.Prm{N: "lam", V: 0.5},
		&fun.Prm{N: "hb", V: 20.0},
	}
}

// Qr returns the residual water content
func (o BrooksCorey) Qr() float64 { return o.qr }

// Qs returns the saturated water content
func (o BrooksCorey) Qs() float64 { return o.qs }

// se computes the effective saturation, clamped to [0,1]
func (o BrooksCorey) se(h float64) float64 {
	hab := math.Max(math.Abs(h), Eps)
	se := math.Pow(hab/o.hb, -o.lam)
	if se > 1 {
		return 1
	}
	if se < 0 {
		return 0
	}
	return se
}

// Content computes θ(h)
func (o BrooksCorey) Content(h float64) float64 {
	return o.qr + (o.qs-o.qr)*o.se(h)
}

// Capacity computes C = dθ/dh
func (o BrooksCorey) Capacity(h float64) float64 {
	return capacity(o.Content, h)
}

// Cond computes K(h)
func (o BrooksCorey) Cond(h float64) float64 {
	return o.ks * math.Pow(o.se(h), (2.0+3.0*o.lam)/o.lam)
}
