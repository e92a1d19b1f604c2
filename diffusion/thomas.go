// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diffusion implements the vertical (implicit, tridiagonal) and
// horizontal (explicit, stencil) diffusion steps of the multilayer solver
package diffusion

// Thomas solves the tridiagonal system M・x = rhs where a, b and c are the
// lower, principal and upper diagonals of M. The forward sweep destroys b
// and rhs; the solution is written into x (x may alias rhs). The pivots
// b[l] must stay away from zero: for the diagonally dominant systems
// assembled here this holds whenever the layer heights are positive; no
// defensive check is made and a zero pivot propagates as ±Inf/NaN.
func Thomas(a, b, c, rhs, x []float64) {
	nl := len(b)
	for l := 1; l < nl; l++ {
		b[l] -= a[l] * c[l-1] / b[l-1]
		rhs[l] -= a[l] * rhs[l-1] / b[l-1]
	}
	x[nl-1] = rhs[nl-1] / b[nl-1]
	for l := nl - 2; l >= 0; l-- {
		x[l] = (rhs[l] - c[l]*x[l+1]) / b[l]
	}
}
