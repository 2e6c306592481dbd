// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from simulation (.json) and
// material (.mat) files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Simulation holds the grid, time-stepping, boundary-condition and transport
// data for one soil-column run. JSON keys follow the legacy selector naming.
type Simulation struct {

	// global information
	Desc    string `json:"desc"`    // description of simulation
	LUnit   string `json:"lunit"`   // length unit label; e.g. "cm"
	TUnit   string `json:"tunit"`   // time unit label; e.g. "day"
	Matfile string `json:"matfile"` // materials file path (relative to the sim file)
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gosoil

	// process switches
	LWat  bool `json:"lwat"`  // solve water flow (always on; kept for legacy selector compatibility)
	LChem bool `json:"lchem"` // solve solute transport
	LTemp bool `json:"ltemp"` // solve heat transport
	SinkF bool `json:"sinkf"` // root-water-uptake sink active

	// grid
	NumNP int     `json:"NumNP"` // number of nodes; index 0 = surface
	Dz    float64 `json:"dz"`    // uniform node spacing [L]

	// time stepping
	Dt        float64 `json:"dt"`         // time step [T]
	Tend      float64 `json:"t_end"`      // final time [T]
	SaveEvery int     `json:"save_every"` // save full nodal profiles every N steps

	// water flow
	MaxIt    int       `json:"MaxIt"`     // Newton iteration budget
	TolH     float64   `json:"TolH"`      // convergence tolerance on ‖Δh‖∞
	Htop     float64   `json:"h_top"`     // Dirichlet head at the surface [L]
	Qbot     float64   `json:"q_bot"`     // Neumann flux at the bottom [L/T]
	Hini     float64   `json:"h_init"`    // uniform initial head [L]
	Hprofile []float64 `json:"h_profile"` // per-node initial heads (overrides h_init; length must be NumNP)

	// root water uptake
	Tpot     float64   `json:"Tpot"`          // potential transpiration [L/T]
	BetaRoot []float64 `json:"beta_root"`     // root distribution; must sum to 1 over active nodes
	Zroot    float64   `json:"z_root"`        // rooting depth [L]; used when beta_root is absent; ≤ 0 means the full profile
	Feddes   []float64 `json:"feddes_params"` // four pressure-stress thresholds h1 > h2 > h3 > h4 [L]

	// solute transport
	AlphaL  float64  `json:"alphaL"`   // longitudinal dispersivity [L]
	Dm      float64  `json:"Dm"`       // molecular diffusion [L²/T]
	Ctop    *float64 `json:"c_top"`    // Dirichlet concentration at the surface; nil persists the prior value
	BcCbot  string   `json:"bc_c_bot"` // bottom condition: "dirichlet" or "neumann"
	Cbot    float64  `json:"c_bot"`    // bottom concentration for "dirichlet"

	// heat transport (thermal properties in SI units)
	LambdaDry float64  `json:"lambda_dry"` // dry thermal conductivity [W/m/K]
	LambdaSat float64  `json:"lambda_sat"` // saturated thermal conductivity [W/m/K]
	RhoW      float64  `json:"rho_w"`      // water density [kg/m³]
	Cw        float64  `json:"c_w"`        // water specific heat [J/kg/K]
	RhoS      float64  `json:"rho_s"`      // solids density [kg/m³]
	Cs        float64  `json:"c_s"`        // solids specific heat [J/kg/K]
	AlphaT    float64  `json:"alphaT"`     // thermal dispersivity [m]
	Ttop      *float64 `json:"T_top"`      // Dirichlet temperature at the surface; nil persists the prior value
	BcTbot    string   `json:"bc_T_bot"`   // bottom condition: "dirichlet" or "neumann"
	Tbot      float64  `json:"T_bot"`      // bottom temperature for "dirichlet"
	Tini      float64  `json:"T_init"`     // ambient initial temperature [°C]

	// derived
	Dir string `json:"-"` // directory of the sim file
}

// SetDefaults sets default values for all data still at the zero value.
// Defaults follow the legacy implementation. ReadSim applies the defaults
// before decoding so that a key present in the file always wins, even when
// it carries an explicit zero (e.g. a ponded surface with h_top = 0).
func (o *Simulation) SetDefaults() {
	if o.NumNP == 0 {
		o.NumNP = 100
	}
	if o.Dz == 0 {
		o.Dz = 1.0
	}
	if o.Dt == 0 {
		o.Dt = 0.1
	}
	if o.Tend == 0 {
		o.Tend = 1.0
	}
	if o.SaveEvery == 0 {
		o.SaveEvery = 1
	}
	if o.MaxIt == 0 {
		o.MaxIt = 20
	}
	if o.TolH == 0 {
		o.TolH = 1e-6
	}
	if o.Htop == 0 {
		o.Htop = -100.0
	}
	if o.Hini == 0 {
		o.Hini = -100.0
	}
	if o.AlphaL == 0 {
		o.AlphaL = 1.0
	}
	if o.Dm == 0 {
		o.Dm = 1e-3
	}
	if o.BcCbot == "" {
		o.BcCbot = "neumann"
	}
	if o.LambdaDry == 0 {
		o.LambdaDry = 0.25
	}
	if o.LambdaSat == 0 {
		o.LambdaSat = 2.5
	}
	if o.RhoW == 0 {
		o.RhoW = 1000.0
	}
	if o.Cw == 0 {
		o.Cw = 4180.0
	}
	if o.RhoS == 0 {
		o.RhoS = 2650.0
	}
	if o.Cs == 0 {
		o.Cs = 800.0
	}
	if o.AlphaT == 0 {
		o.AlphaT = 0.01
	}
	if o.BcTbot == "" {
		o.BcTbot = "neumann"
	}
	if o.Tbot == 0 {
		o.Tbot = 20.0
	}
	if o.Tini == 0 {
		o.Tini = 20.0
	}
	if o.Matfile == "" {
		o.Matfile = "soils.mat"
	}
	if o.DirOut == "" {
		o.DirOut = "/tmp/gosoil"
	}
	o.LWat = true
}

// Check validates the grid and time-stepping data
func (o *Simulation) Check() (err error) {
	if o.NumNP < 3 {
		return chk.Err("grid needs at least one interior node: NumNP must be ≥ 3. NumNP=%d is invalid", o.NumNP)
	}
	if o.Dz <= 0 {
		return chk.Err("node spacing must be positive. dz=%g is invalid", o.Dz)
	}
	if o.Dt <= 0 {
		return chk.Err("time step must be positive. dt=%g is invalid", o.Dt)
	}
	if o.Tend <= 0 {
		return chk.Err("final time must be positive. t_end=%g is invalid", o.Tend)
	}
	if o.MaxIt < 1 {
		return chk.Err("iteration budget must be at least 1. MaxIt=%d is invalid", o.MaxIt)
	}
	if o.SaveEvery < 1 {
		return chk.Err("save_every must be at least 1. save_every=%d is invalid", o.SaveEvery)
	}
	if len(o.Hprofile) > 0 && len(o.Hprofile) != o.NumNP {
		return chk.Err("initial head profile has %d values but the grid has %d nodes", len(o.Hprofile), o.NumNP)
	}
	if o.BcCbot != "dirichlet" && o.BcCbot != "neumann" {
		return chk.Err("bc_c_bot must be %q or %q. %q is invalid", "dirichlet", "neumann", o.BcCbot)
	}
	if o.BcTbot != "dirichlet" && o.BcTbot != "neumann" {
		return chk.Err("bc_T_bot must be %q or %q. %q is invalid", "dirichlet", "neumann", o.BcTbot)
	}
	return
}

// InitialHeads builds the initial head profile: the per-node profile when
// given, otherwise the uniform initial head at every node
func (o *Simulation) InitialHeads() (h []float64) {
	h = make([]float64, o.NumNP)
	if len(o.Hprofile) == o.NumNP {
		copy(h, o.Hprofile)
		return
	}
	for i := 0; i < o.NumNP; i++ {
		h[i] = o.Hini
	}
	return
}

// ReadSim reads a simulation input file, applies defaults and validates
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode over the defaults: a key present in the file overrides its
	// default even when it carries an explicit zero; an absent key keeps it
	o = new(Simulation)
	o.SetDefaults()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}

	// validation
	o.Dir = filepath.Dir(simfilepath)
	o.LWat = true
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}
