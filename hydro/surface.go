// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"github.com/the-liquid-lab/full-layered/grid"
	"github.com/the-liquid-lab/full-layered/stress"
)

// UpdateSurfaceStress runs the tangential-stress relaxation and copies the
// result into the top boundary flux consumed by the vertical viscosity
// solve. No-op unless Cfg.SurfaceStress is set.
func (o *Domain) UpdateSurfaceStress() {
	if !o.Cfg.SurfaceStress {
		return
	}
	stress.Tangential(o.Grid, o.Eta, o.U, o.W, o.H,
		o.Cfg.TangentialPasses, o.Cfg.TangentialTol, o.DuNu)
	o.Dut.CopyFrom(o.DuNu)
}

// Acceleration adds the normal-stress pressure-deviation contribution to
// the face acceleration through the pressure-gradient operator. The
// deviation field lives exactly as long as this call. No-op unless
// Cfg.SurfaceStress is set.
func (o *Domain) Acceleration() {
	if !o.Cfg.SurfaceStress {
		return
	}
	phi := stress.Normal(o.Grid, o.Eta, o.U, o.H, o.Dut, o.Cfg.Nu)
	if o.HPG != nil {
		o.HPG(phi)
		return
	}
	o.hpg(phi)
}

// hpg is the default small-slope horizontal pressure-gradient operator:
// for every interior face it adds -∇(hφ) + φ∇z to the face acceleration,
// with z the layer-centre elevation and φ averaged to the face.
func (o *Domain) hpg(phi grid.Layered) {
	g := o.Grid
	for c := 0; c < g.Ncol(); c++ {
		for dim := 0; dim < grid.Ndim; dim++ {
			m := g.Left(c, dim)
			if m == c {
				continue // boundary face
			}
			ha := o.Ha.Comp(dim)
			zc, zm := o.Zb[c], o.Zb[m]
			for l := 0; l < g.Nl; l++ {
				zlc := zc + o.H[c][l]/2
				zlm := zm + o.H[m][l]/2
				ha[c][l] += -(o.H[c][l]*phi[c][l]-o.H[m][l]*phi[m][l])/g.Delta +
					(phi[c][l]+phi[m][l])/2*(zlc-zlm)/g.Delta
				zc += o.H[c][l]
				zm += o.H[m][l]
			}
		}
	}
}
