// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads the input parameters of a simulation
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/the-liquid-lab/full-layered/grid"
	"github.com/the-liquid-lab/full-layered/hydro"
)

// Params holds all input parameters of a run, read from a JSON .sim file
type Params struct {

	// description
	Desc string `json:"desc"` // description of simulation

	// grid
	Nx    int     `json:"nx"`    // number of columns along x
	Ny    int     `json:"ny"`    // number of columns along y
	Nl    int     `json:"nl"`    // number of layers
	Delta float64 `json:"delta"` // horizontal grid spacing
	Dry   float64 `json:"dry"`   // dry height threshold

	// physics
	Nu                  float64 `json:"nu"`         // vertical kinematic viscosity
	SurfaceStress       bool    `json:"sstress"`    // surface stress corrections
	HorizontalDiffusion bool    `json:"hdiffusion"` // horizontal viscosity correction
	TangentialPasses    int     `json:"tpasses"`    // tangential relaxation passes
	TangentialTol       float64 `json:"ttol"`       // tangential early-exit tolerance (0 = fixed count)

	// run control
	Depth  float64 `json:"depth"`  // initial uniform fluid depth
	Dt     float64 `json:"dt"`     // timestep
	Nsteps int     `json:"nsteps"` // number of timesteps
}

// SetDefault sets default values
func (o *Params) SetDefault() {
	o.Nx, o.Ny, o.Nl = 1, 1, 1
	o.Delta = 1
	o.Dry = 1e-10
	o.SurfaceStress = true
	o.TangentialPasses = 10
	o.Depth = 1
	o.Dt = 1e-3
	o.Nsteps = 1
}

// ReadParams reads all parameters from a .sim JSON file. Panics on missing
// or malformed files.
func ReadParams(fnamepath string) (o *Params) {
	o = new(Params)
	o.SetDefault()
	b := io.ReadFile(fnamepath)
	err := json.Unmarshal(b, o)
	if err != nil {
		chk.Panic("ReadParams: cannot unmarshal parameters file %q", fnamepath)
	}
	return
}

// NewGrid returns the grid defined by the parameters
func (o *Params) NewGrid() *grid.Grid {
	return grid.New(o.Nx, o.Ny, o.Nl, o.Delta, o.Dry)
}

// Config returns the solver configuration defined by the parameters
func (o *Params) Config() (cfg hydro.Config) {
	cfg.Nu = o.Nu
	cfg.SurfaceStress = o.SurfaceStress
	cfg.HorizontalDiffusion = o.HorizontalDiffusion
	cfg.TangentialPasses = o.TangentialPasses
	cfg.TangentialTol = o.TangentialTol
	return
}
