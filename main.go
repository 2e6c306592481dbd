// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/maseology/mmio"

	"github.com/cpmech/gosoil/fdm"
	"github.com/cpmech/gosoil/inp"
	"github.com/cpmech/gosoil/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "data/flow1d", ".json", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGosoil -- 1D variably-saturated flow, solute and heat transport\n")
		io.Pf("Copyright 2017 The Gosoil Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	tt := mmio.NewTimer()
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}
	mdb, err := inp.ReadMat(sim.Dir, sim.Matfile)
	if err != nil {
		chk.Panic("cannot read materials file:\n%v", err)
	}
	mat := mdb.First()
	if mat == nil {
		chk.Panic("materials file %q holds no materials", sim.Matfile)
	}
	if verbose {
		io.Pf("simulation: %s\n", sim.Desc)
		io.Pf("material:   %s (%s)\n", mat.Name, mat.Model)
	}

	// run simulation
	sol, err := fdm.NewSolver(sim, mat.Mdl)
	if err != nil {
		chk.Panic("cannot allocate solver:\n%v", err)
	}
	sol.Verbose = verbose
	res := sol.Run()
	if verbose {
		tt.Lap("simulation complete")
	}

	// save results
	if err := out.Save(sim.DirOut, res); err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
	if verbose {
		if res.Ok() {
			io.PfGreen("%s\n", res.Status)
		} else {
			io.PfRed("%s\n", res.Status)
		}
		io.Pf("results saved to %s\n", sim.DirOut)
	}
}
