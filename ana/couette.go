// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the numerical
// kernels
package ana

// CouetteNavier computes the steady velocity profile of a fluid column
// driven by an imposed shear at the free surface, with a Navier slip
// condition at the bottom:
//
//   ∂z(ν ∂z u) = 0,   ∂z u|top = Shear,   u|b = Ub + Lambda・∂z u|b
//
// giving the linear profile
//
//   u(z) = Ub + Shear・(z + Lambda)
//
// which is steady under the implicit vertical diffusion operator for any
// viscosity and timestep.
type CouetteNavier struct {
	Ub     float64 // prescribed bottom value
	Lambda float64 // slip length
	Shear  float64 // imposed shear at the free surface
}

// U returns the steady velocity at elevation z above the bottom
func (o *CouetteNavier) U(z float64) float64 {
	return o.Ub + o.Shear*(z+o.Lambda)
}

// Profile returns the steady velocity at the centres of nl layers of
// heights h, bottom to top
func (o *CouetteNavier) Profile(h []float64) (u []float64) {
	u = make([]float64, len(h))
	z := 0.0
	for l, hl := range h {
		u[l] = o.U(z + hl/2)
		z += hl
	}
	return
}
