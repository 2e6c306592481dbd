// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosoil/fdm"
)

func Test_save01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("save01. results bundle to disk")

	res := &fdm.Results{
		Status:       "simulation completed successfully: 2 steps up to t=0.2",
		NotConverged: 0,
		TimeLevels: []fdm.TimeLevel{
			{Step: 1, T: 0.1, Htop: -50, Hmid: -100, Hbot: -100},
			{Step: 2, T: 0.2, Htop: -50, Hmid: -99, Hbot: -100},
		},
		Heads: []fdm.Profile{
			{T: 0.1, Vals: []float64{-50, -100, -100}},
			{T: 0.2, Vals: []float64{-50, -99, -100}},
		},
		Temperatures: []fdm.Profile{
			{T: 0.2, Vals: []float64{25, 20, 20}},
		},
	}

	dirout := "/tmp/gosoil/out"
	err := Save(dirout, res)
	if err != nil {
		tst.Errorf("save failed: %v\n", err)
		return
	}

	// every enabled series produced its file
	for _, fn := range []string{"check.log", "time_levels.csv", "nodes.csv", "temperatures.csv", "results.json"} {
		b, err := io.ReadFile(dirout + "/" + fn)
		if err != nil {
			tst.Errorf("cannot read %s: %v\n", fn, err)
			return
		}
		if len(b) == 0 {
			tst.Errorf("%s is empty\n", fn)
			return
		}
	}

	// solute transport was off: no concentrations file
	os.Remove(dirout + "/concentrations.csv")
	Save(dirout, res)
	if _, err := os.Stat(dirout + "/concentrations.csv"); err == nil {
		tst.Errorf("concentrations.csv written for an empty series\n")
	}
}

func Test_save02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("save02. aborted run, empty series")

	res := &fdm.Results{
		Status:   "simulation aborted at step 1 (t=0)",
		Messages: []string{"t=0: water flow failed: singular tridiagonal system: zero pivot at row 0"},
	}

	dirout := "/tmp/gosoil/out2"
	os.Remove(dirout + "/time_levels.csv")
	err := Save(dirout, res)
	if err != nil {
		tst.Errorf("save failed: %v\n", err)
		return
	}

	// log carries the failure message
	b, err := io.ReadFile(dirout + "/check.log")
	if err != nil {
		tst.Errorf("cannot read check.log: %v\n", err)
		return
	}
	if len(b) == 0 {
		tst.Errorf("check.log is empty\n")
	}

	// no series, no CSV
	if _, err := os.Stat(dirout + "/time_levels.csv"); err == nil {
		tst.Errorf("time_levels.csv written for an empty run\n")
	}
}
