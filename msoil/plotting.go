// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msoil

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the retention curve θ(h) and the conductivity K(h) of a model,
// for heads ranging from hmin to hmax
func Plot(o Model, dirout, fname string, hmin, hmax float64, np int) {
	H := utl.LinSpace(hmin, hmax, np)
	Y := make([]float64, np)
	Z := make([]float64, np)
	for i := 0; i < np; i++ {
		Y[i] = o.Content(H[i])
		Z[i] = o.Cond(H[i])
	}
	plt.Subplot(2, 1, 1)
	plt.Plot(H, Y, "'b-', clip_on=0")
	plt.Gll("$h$", "$\\theta$", "")
	plt.Subplot(2, 1, 2)
	plt.Plot(H, Z, "'r-', clip_on=0")
	plt.Gll("$h$", "$K$", "")
	plt.SaveD(dirout, fname)
}
