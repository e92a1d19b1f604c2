// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stress implements the viscous free-surface stress continuity:
// a normal-stress pressure deviation feeding the momentum update and a
// tangential-stress boundary flux feeding the vertical viscosity solve
package stress

import (
	"github.com/the-liquid-lab/full-layered/grid"
)

// Normal computes the viscous pressure deviation at the free surface of
// every column, from the horizontal gradients of the surface elevation eta
// and of the top-layer velocity u plus its slip correction dut:
//
//	phi = - Σ_dims nu・2・(1+ηx²)/(1-ηx²)・∂x( u|top + h|top/2・dut )
//
// The deviation acts as a near-uniform correction near the interface and is
// replicated to every layer of the column. The returned field's lifetime is
// scoped to one acceleration computation: callers consume it and drop it.
func Normal(g *grid.Grid, eta grid.Scalar, u grid.VecLayered, h grid.Layered, dut grid.Vector, nu float64) grid.Layered {
	top := g.Nl - 1
	twoD := 2 * g.Delta
	phi := g.NewLayered()
	for c := 0; c < g.Ncol(); c++ {
		phi0 := 0.0
		for dim := 0; dim < grid.Ndim; dim++ {
			m, p := g.Left(c, dim), g.Right(c, dim)
			uc := u.Comp(dim)
			dc := dut.Comp(dim)
			etax := (eta[p] - eta[m]) / twoD
			phi0 -= nu * 2 * (1 + etax*etax) / (1 - etax*etax) *
				(uc[p][top] - uc[m][top] + h[p][top]/2*dc[p] - h[m][top]/2*dc[m]) / twoD
		}
		for l := 0; l <= top; l++ {
			phi[c][l] = phi0
		}
	}
	return phi
}
