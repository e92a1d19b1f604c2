// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"runtime"

	"gonum.org/v1/gonum/floats"

	"github.com/the-liquid-lab/full-layered/diffusion"
	"github.com/the-liquid-lab/full-layered/grid"
)

// Domain owns the fields of the layered free-surface solver over one grid.
// All per-layer fields are stacked bottom (l=0) to top (l=Nl-1); Hf and Ha
// are face-located (slot c is the left/bottom face of column c).
type Domain struct {

	// geometry and configuration
	Grid *grid.Grid
	Cfg  Config

	// prognostic fields
	Eta grid.Scalar     // free-surface elevation
	Zb  grid.Scalar     // bottom elevation
	H   grid.Layered    // layer heights (≥ 0; dry layers allowed)
	U   grid.VecLayered // horizontal velocity
	W   grid.Layered    // vertical velocity

	// face fields
	Hf grid.VecLayered // face heights
	Ha grid.VecLayered // face acceleration accumulator

	// boundary data. The defaults (all zero) impose free-slip on the free
	// surface and no-slip on the bottom.
	Dut grid.Vector // top slip derivative (Neumann flux at the free surface)
	Ub  grid.Vector // prescribed bottom value of the Navier closure
	Dub grid.Vector // bottom slip derivative; used as the slip length of the Navier closure

	// DuNu is the tangential-stress boundary flux, refined in place by the
	// surface stress update and then copied into Dut
	DuNu grid.Vector

	// HPG is the horizontal pressure-gradient operator adding the
	// contribution of a per-layer pressure field to Ha. When nil, a
	// small-slope default (-∇(hφ) + φ∇z at faces) is used.
	HPG func(phi grid.Layered)

	// scratch
	ws []*diffusion.Workspace // one workspace per worker goroutine
}

// NewDomain allocates a domain with all fields zeroed
func NewDomain(g *grid.Grid, cfg Config) (o *Domain) {
	o = new(Domain)
	o.Grid = g
	o.Cfg = cfg
	o.Eta = g.NewScalar()
	o.Zb = g.NewScalar()
	o.H = g.NewLayered()
	o.U = g.NewVecLayered()
	o.W = g.NewLayered()
	o.Hf = g.NewVecLayered()
	o.Ha = g.NewVecLayered()
	o.Dut = g.NewVector()
	o.Ub = g.NewVector()
	o.Dub = g.NewVector()
	o.DuNu = g.NewVector()
	nw := runtime.GOMAXPROCS(0)
	if nw > g.Ncol() {
		nw = g.Ncol()
	}
	o.ws = make([]*diffusion.Workspace, nw)
	for i := range o.ws {
		o.ws[i] = diffusion.NewWorkspace(g.Nl)
	}
	return
}

// SetUniformDepth fills the layer heights with depth/Nl everywhere, sets
// the free surface accordingly and the matching face heights
func (o *Domain) SetUniformDepth(depth float64) {
	g := o.Grid
	hl := depth / float64(g.Nl)
	o.H.Fill(hl)
	o.Hf.X.Fill(hl)
	o.Hf.Y.Fill(hl)
	for c := 0; c < g.Ncol(); c++ {
		o.Eta[c] = o.Zb[c] + depth
	}
}

// Step advances the viscous kernel by one timestep: tangential surface
// stress (top boundary flux), then the viscous term, then the normal-stress
// acceleration contribution.
func (o *Domain) Step(dt float64) {
	o.UpdateSurfaceStress()
	o.ViscousTerm(dt)
	o.Acceleration()
}

// TotalDepth returns the sum of all layer heights over all columns
func (o *Domain) TotalDepth() (sum float64) {
	for c := 0; c < o.Grid.Ncol(); c++ {
		sum += floats.Sum(o.H[c])
	}
	return
}

// KineticEnergy returns Σ h・(u² + v²)/2 over all columns and layers
func (o *Domain) KineticEnergy() (ke float64) {
	for c := 0; c < o.Grid.Ncol(); c++ {
		for l := 0; l < o.Grid.Nl; l++ {
			ke += o.H[c][l] * (sq(o.U.X[c][l]) + sq(o.U.Y[c][l])) / 2
		}
	}
	return
}

func sq(x float64) float64 { return x * x }
