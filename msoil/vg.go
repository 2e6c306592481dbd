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

// VanGen implements the van Genuchten retention curve with the
// Mualem-van Genuchten conductivity closure
//  θ(h)  = Qr + (Qs-Qr)・Se
//  Se    = (1 + (Alfa・|h|)^n)^(-m)   with  m = 1 - 1/n
//  K(h)  = Ks・Se^BPar・(1 - (1 - Se^(1/m))^m)²
type VanGen struct {

	// parameters
	qr   float64 // residual water content
	qs   float64 // saturated water content
	alfa float64 // retention scale [1/length]
	n    float64 // retention shape
	ks   float64 // saturated conductivity [length/time]
	bpar float64 // pore-connectivity exponent

	// derived
	m float64 // m = 1 - 1/n
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms fun.Prms) (err error) {
	o.bpar = 0.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qr":
			o.qr = p.V
		case "qs":
			o.qs = p.V
		case "alfa":
			o.alfa = p.V
		case "n":
			o.n = p.V
		case "ks":
			o.ks = p.V
		case "bpar":
			o.bpar = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.n <= 1 {
		return chk.Err("vg: retention shape must satisfy n > 1. n=%g is invalid", o.n)
	}
	if err = checkPorosity("vg", o.qr, o.qs, o.ks); err != nil {
		return
	}
	o.m = 1.0 - 1.0/o.n
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "qr", V: 0.05},
		&fun.Prm{N: "qs", V: 0.45},
		&fun.Prm{N: "alfa", V: 0.01},
		&fun.Prm{N: "n", V: 1.6},
		&fun.Prm{N: "ks", V: 10.0},
		&fun.Prm{N: "bpar", V: 0.5},
	}
}

// Qr returns the residual water content
func (o VanGen) Qr() float64 { return o.qr }

// Qs returns the saturated water content
func (o VanGen) Qs() float64 { return o.qs }

// se computes the effective saturation
func (o VanGen) se(h float64) float64 {
	hab := math.Max(math.Abs(h), Eps)
	return math.Pow(1.0+math.Pow(o.alfa*hab, o.n), -o.m)
}

// Content computes θ(h)
func (o VanGen) Content(h float64) float64 {
	return o.qr + (o.qs-o.qr)*o.se(h)
}

// Capacity computes C = dθ/dh
func (o VanGen) Capacity(h float64) float64 {
	return capacity(o.Content, h)
}

// Cond computes K(h)
func (o VanGen) Cond(h float64) float64 {
	se := o.se(h)
	term := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/o.m), o.m)
	return o.ks * math.Pow(se, o.bpar) * term * term
}
