// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msoil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_vg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg01. van Genuchten retention and conductivity")

	mdl, err := New("vg")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// endpoints
	chk.Scalar(tst, "Qr", 1e-15, mdl.Qr(), 0.05)
	chk.Scalar(tst, "Qs", 1e-15, mdl.Qs(), 0.45)

	// content is monotonically non-decreasing as h → 0⁻
	H := utl.LinSpace(-1e4, 0, 101)
	for i := 1; i < len(H); i++ {
		t0 := mdl.Content(H[i-1])
		t1 := mdl.Content(H[i])
		if t1 < t0 {
			tst.Errorf("content is not monotonic: θ(%g)=%g > θ(%g)=%g\n", H[i-1], t0, H[i], t1)
			return
		}
	}

	// saturated limit
	chk.Scalar(tst, "θ(0)", 1e-8, mdl.Content(0), 0.45)
	chk.Scalar(tst, "K(0)", 1e-8, mdl.Cond(0), 10.0)
	if chk.Verbose {
		io.Pforan("θ(-100) = %v\n", mdl.Content(-100))
		io.Pforan("K(-100) = %v\n", mdl.Cond(-100))
	}

	// capacity: centered difference against a manual slope
	h := -150.0
	dh := 1e-6
	cnum := (mdl.Content(h+dh) - mdl.Content(h-dh)) / (2.0 * dh)
	chk.Scalar(tst, "C(-150)", 1e-12, mdl.Capacity(h), cnum)
}

func Test_vg02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vg02. parameter validation")

	mdl := new(VanGen)

	// unknown parameter
	err := mdl.Init(fun.Prms{&fun.Prm{N: "kx", V: 1}})
	if err == nil {
		tst.Errorf("unknown parameter not detected\n")
		return
	}

	// n must be greater than one
	err = mdl.Init(fun.Prms{
		&fun.Prm{N: "qr", V: 0.05},
		&fun.Prm{N: "qs", V: 0.45},
		&fun.Prm{N: "alfa", V: 0.01},
		&fun.Prm{N: "n", V: 1.0},
		&fun.Prm{N: "ks", V: 10.0},
	})
	if err == nil {
		tst.Errorf("n ≤ 1 not detected\n")
		return
	}

	// Qr < Qs violated
	err = mdl.Init(fun.Prms{
		&fun.Prm{N: "qr", V: 0.5},
		&fun.Prm{N: "qs", V: 0.45},
		&fun.Prm{N: "alfa", V: 0.01},
		&fun.Prm{N: "n", V: 1.6},
		&fun.Prm{N: "ks", V: 10.0},
	})
	if err == nil {
		tst.Errorf("Qr ≥ Qs not detected\n")
		return
	}

	// Ks must be positive
	err = mdl.Init(fun.Prms{
		&fun.Prm{N: "qr", V: 0.05},
		&fun.Prm{N: "qs", V: 0.45},
		&fun.Prm{N: "alfa", V: 0.01},
		&fun.Prm{N: "n", V: 1.6},
		&fun.Prm{N: "ks", V: 0.0},
	})
	if err == nil {
		tst.Errorf("Ks ≤ 0 not detected\n")
	}
}

func Test_bcorey01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bcorey01. Brooks-Corey clamp and power law")

	mdl, err := New("bcorey")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// wetter than air entry: saturated
	chk.Scalar(tst, "θ(-10)", 1e-15, mdl.Content(-10), 0.45)
	chk.Scalar(tst, "K(-10)", 1e-15, mdl.Cond(-10), 10.0)

	// drier than air entry: Se = (|h|/hb)^(-lam)
	h := -80.0
	se := 0.5 // (80/20)^(-0.5) = 1/2
	chk.Scalar(tst, "θ(-80)", 1e-14, mdl.Content(h), 0.05+0.40*se)
	chk.Scalar(tst, "K(-80)", 1e-13, mdl.Cond(h), 0.078125) // Ks・Se^((2+3λ)/λ) = 10・0.5^7

	// monotonic towards saturation
	t0 := mdl.Content(-1000)
	t1 := mdl.Content(-100)
	if t1 < t0 {
		tst.Errorf("content is not monotonic\n")
	}
}

func Test_sat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sat01. saturated fallback and legacy id mapping")

	chk.Strings(tst, "legacy ids", []string{NameFromID(0), NameFromID(3), NameFromID(2), NameFromID(7)},
		[]string{"vg", "vg", "bcorey", "sat"})

	mdl, err := New(NameFromID(7))
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "θ", 1e-15, mdl.Content(-123.0), 0.45)
	chk.Scalar(tst, "C", 1e-15, mdl.Capacity(-123.0), 0)
	chk.Scalar(tst, "K", 1e-15, mdl.Cond(-123.0), 10.0)

	// unknown model name
	_, err = New("hysteresis")
	if err == nil {
		tst.Errorf("unknown model name not detected\n")
	}
}
