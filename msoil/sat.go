// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msoil

import (
	"strings"

	"github.com/cpmech/gosl/fun"
)

// Saturated implements the fallback model for unrecognised model ids:
// fully saturated medium with constant content and conductivity
type Saturated struct {
	qr float64 // residual water content
	qs float64 // saturated water content
	ks float64 // saturated conductivity [length/time]
}

// add model to factory
func init() {
	allocators["sat"] = func() Model { return new(Saturated) }
}

// Init initialises model
func (o *Saturated) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "qr":
			o.qr = p.V
		case "qs":
			o.qs = p.V
		case "ks":
			o.ks = p.V
		default:
			// extra retention parameters are allowed so that a material set
			// written for vg or bcorey can fall back to this model
		}
	}
	return checkPorosity("sat", o.qr, o.qs, o.ks)
}

// GetPrms gets (an example) of parameters
func (o Saturated) GetPrms(example bool) fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "qr", V: 0.05},
		&fun.Prm{N: "qs", V: 0.45},
		&fun.Prm{N: "ks", V: 10.0},
	}
}

// Qr returns the residual water content
func (o Saturated) Qr() float64 { return o.qr }

// Qs returns the saturated water content
func (o Saturated) Qs() float64 { return o.qs }

// Content computes θ(h) = Qs
func (o Saturated) Content(h float64) float64 { return o.qs }

// Capacity computes C = dθ/dh = 0
func (o Saturated) Capacity(h float64) float64 { return 0 }

// Cond computes K(h) = Ks
func (o Saturated) Cond(h float64) float64 { return o.ks }
