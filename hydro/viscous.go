// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"sync"

	"github.com/the-liquid-lab/full-layered/diffusion"
	"github.com/the-liquid-lab/full-layered/grid"
)

// ViscousTerm applies vertical viscosity to the velocity field. The
// vertical diffusion must act on the velocity as it existed before the
// pressure-gradient/acceleration term of the current step, so the
// acceleration contribution is first re-applied, the Navier-variant
// vertical solve runs per column per component, the optional horizontal
// viscosity correction follows, and the acceleration contribution is
// subtracted again. No-op when Cfg.Nu ≤ 0.
func (o *Domain) ViscousTerm(dt float64) {
	if o.Cfg.Nu <= 0 {
		return
	}
	o.addAcceleration(dt, +1)

	// vertical solve: columns are independent, one workspace per worker
	g := o.Grid
	ncol := g.Ncol()
	nw := len(o.ws)
	csize := (ncol + nw - 1) / nw
	var wg sync.WaitGroup
	for iw := 0; iw < nw; iw++ {
		lo := iw * csize
		hi := lo + csize
		if hi > ncol {
			hi = ncol
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(ws *diffusion.Workspace, lo, hi int) {
			defer wg.Done()
			for c := lo; c < hi; c++ {
				for dim := 0; dim < grid.Ndim; dim++ {
					ws.NeumannNavier(o.H[c], o.U.Comp(dim)[c], dt, o.Cfg.Nu,
						o.Dut.Comp(dim)[c], o.Ub.Comp(dim)[c], o.Dub.Comp(dim)[c])
				}
			}
		}(o.ws[iw], lo, hi)
	}
	wg.Wait()

	// optional horizontal viscosity correction, with the top boundary flux
	// as the top-flux field
	if o.Cfg.HorizontalDiffusion {
		for dim := 0; dim < grid.Ndim; dim++ {
			diffusion.Horizontal(g, o.U.Comp(dim), o.H, o.Zb, o.Dut.Comp(dim), o.Cfg.Nu, dt)
		}
	}

	o.addAcceleration(dt, -1)
}

// addAcceleration adds sign・dt times the face-acceleration contribution to
// the velocity: u += sign・dt・(ha_left + ha_right)/(hf_left + hf_right + dry).
// The dry floor keeps the division finite over dry columns.
func (o *Domain) addAcceleration(dt, sign float64) {
	g := o.Grid
	for c := 0; c < g.Ncol(); c++ {
		for dim := 0; dim < grid.Ndim; dim++ {
			p := g.Right(c, dim)
			ha := o.Ha.Comp(dim)
			hf := o.Hf.Comp(dim)
			uc := o.U.Comp(dim)
			for l := 0; l < g.Nl; l++ {
				uc[c][l] += sign * dt * (ha[c][l] + ha[p][l]) / (hf[c][l] + hf[p][l] + g.Dry)
			}
		}
	}
}
