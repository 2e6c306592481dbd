// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out saves simulation results to disk: a run-status log, CSV
// series for the compact time levels and the nodal snapshots, and a JSON
// bundle with everything.
package out

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/maseology/mmio"

	"github.com/cpmech/gosoil/fdm"
)

// Save writes all collected results into dirout, creating it if needed.
// Files written:
//   check.log           -- run status, failure messages, convergence summary
//   time_levels.csv     -- step, t, h_top, h_mid, h_bot
//   nodes.csv           -- t followed by one column per node (head snapshots)
//   concentrations.csv  -- idem, concentration snapshots (when present)
//   temperatures.csv    -- idem, temperature snapshots (when present)
//   results.json        -- the full bundle
func Save(dirout string, res *fdm.Results) (err error) {

	// output directory
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return chk.Err("cannot create output directory %q: %v", dirout, err)
	}

	// check.log
	lines := res.Status + "\n"
	for _, msg := range res.Messages {
		lines += msg + "\n"
	}
	lines += io.Sf("steps without convergence: %d\n", res.NotConverged)
	io.WriteFileSD(dirout, "check.log", lines)

	// time_levels.csv
	if len(res.TimeLevels) > 0 {
		nlev := len(res.TimeLevels)
		step := make([]float64, nlev)
		t := make([]float64, nlev)
		htop := make([]float64, nlev)
		hmid := make([]float64, nlev)
		hbot := make([]float64, nlev)
		for i, tl := range res.TimeLevels {
			step[i] = float64(tl.Step)
			t[i] = tl.T
			htop[i] = tl.Htop
			hmid[i] = tl.Hmid
			hbot[i] = tl.Hbot
		}
		mmio.WriteCSV(filepath.Join(dirout, "time_levels.csv"), "step,t,h_top,h_mid,h_bot", step, t, htop, hmid, hbot)
	}

	// nodal snapshot series
	saveProfiles(dirout, "nodes.csv", res.Heads)
	saveProfiles(dirout, "concentrations.csv", res.Concentrations)
	saveProfiles(dirout, "temperatures.csv", res.Temperatures)

	// results.json
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal results: %v", err)
	}
	io.WriteFileSD(dirout, "results.json", string(b))
	return
}

// saveProfiles writes one snapshot series as a CSV with a time column
// followed by one column per node. Does nothing for an empty series.
func saveProfiles(dirout, fname string, series []fdm.Profile) {
	if len(series) == 0 {
		return
	}
	nrow := len(series)
	nnod := len(series[0].Vals)
	header := "t"
	cols := make([][]float64, nnod+1)
	cols[0] = make([]float64, nrow)
	for j := 0; j < nnod; j++ {
		header += io.Sf(",n%d", j+1)
		cols[j+1] = make([]float64, nrow)
	}
	for i, p := range series {
		cols[0][i] = p.T
		for j, v := range p.Vals {
			cols[j+1][i] = v
		}
	}
	mmio.WriteCSV(filepath.Join(dirout, fname), header, cols...)
}
