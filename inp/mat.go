// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosoil/msoil"
)

// Material holds one material data set
type Material struct {

	// input
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of constitutive model; e.g. "vg", "bcorey", "sat"
	ID    *int     `json:"id"`    // legacy integer model id; used when "model" is absent
	Prms  fun.Prms `json:"prms"`  // all model parameters for this material

	// derived
	Mdl msoil.Model // allocated and initialised model
}

// MatDb implements a database of materials
type MatDb struct {
	Materials []*Material `json:"materials"` // all materials
}

// First returns the first (active) material. A single material applies
// uniformly to the whole profile; layering is a future extension.
func (o *MatDb) First() *Material {
	if len(o.Materials) < 1 {
		return nil
	}
	return o.Materials[0]
}

// ReadMat reads all materials data from a .mat JSON file and allocates the
// constitutive models; malformed parameter sets are rejected here, not at
// call time
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot parse materials file %q:\n%v", fn, err)
	}
	if len(mdb.Materials) < 1 {
		return nil, chk.Err("materials file %q has no materials", fn)
	}

	// allocate and initialise models
	for _, m := range mdb.Materials {
		name := m.Model
		if name == "" {
			if m.ID == nil {
				return nil, chk.Err("material %q must define either a model name or a legacy id", m.Name)
			}
			name = msoil.NameFromID(*m.ID)
		}
		m.Mdl, err = msoil.New(name)
		if err != nil {
			return nil, err
		}
		err = m.Mdl.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise model of material %q:\n%v", m.Name, err)
		}
	}
	return
}
