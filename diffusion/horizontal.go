// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"github.com/the-liquid-lab/full-layered/grid"
)

// Horizontal adds an explicit horizontal diffusive increment to every layer
// of the per-layer scalar s, approximating
//
//   h ∂t s = D ∇・(h ∇s)
//
// including corrections for the slope of the layer interfaces. zb is the
// bottom elevation, dst the top-flux field (∂s/∂z at the free surface),
// standing in for the nonexistent layer above the top one. The time
// discretisation is explicit: the caller must limit dt by min(Δ²/D); this
// is not enforced here. Increments are skipped where h ≤ g.Dry. No-op when
// D ≤ 0.
//
// All stencils read the pre-update s: both passes complete before any
// increment is applied, so the update has Jacobi (not Gauss-Seidel)
// semantics.
func Horizontal(g *grid.Grid, s, h grid.Layered, zb, dst grid.Scalar, D, dt float64) {
	if D <= 0 {
		return
	}
	ncol, nl := g.Ncol(), g.Nl
	dd := sq(g.Delta)

	// first pass: per-layer 5-point horizontal Laplacian
	d2s := g.NewLayered()
	for c := 0; c < ncol; c++ {
		for l := 0; l < nl; l++ {
			a := 0.0
			for dim := 0; dim < grid.Ndim; dim++ {
				m, p := g.Left(c, dim), g.Right(c, dim)
				a += s[m][l] - 2*s[c][l] + s[p][l]
			}
			d2s[c][l] = a / dd
		}
	}

	// second pass: per-layer slope correction, carrying the cumulative
	// layer-base elevation zl from the bottom up
	zl := g.NewScalar()
	copy(zl, zb)
	d2sz := g.NewLayered()
	for l := 0; l < nl; l++ {
		for c := 0; c < ncol; c++ {
			b := 0.0
			for dim := 0; dim < grid.Ndim; dim++ {
				m, p := g.Left(c, dim), g.Right(c, dim)
				if l < nl-1 {
					b += (s[p][l] - s[m][l] - s[p][l+1] + s[m][l+1]) * (h[p][l] - h[m][l]) / 4
					b += (s[c][l] - s[c][l+1]) * (h[p][l] - 2*h[c][l] + h[m][l]) / 2
					if l > 0 {
						b -= (s[p][l+1] - s[m][l+1] - s[p][l-1] + s[m][l-1]) * (zl[p] - zl[m]) / 4
						b -= (s[c][l+1] - s[c][l-1]) * (zl[p] - 2*zl[c] + zl[m]) / 2
					}
				} else {
					// top layer: the supplied top flux replaces the layer above
					b += (-dst[p]*h[p][l] + dst[m]*h[m][l]) * (h[p][l] - h[m][l]) / 4
					b += (-dst[c] * h[c][l]) * (h[p][l] - 2*h[c][l] + h[m][l]) / 2
					if l > 0 {
						b -= (s[p][l] + dst[p]*h[p][l] - s[m][l] - dst[m]*h[m][l] - s[p][l-1] + s[m][l-1]) * (zl[p] - zl[m]) / 4
						b -= (s[c][l] + dst[p]*h[p][l] - s[c][l-1]) * (zl[p] - 2*zl[c] + zl[m]) / 2
					}
				}
			}
			d2sz[c][l] = b / dd
		}
		for c := 0; c < ncol; c++ {
			zl[c] += h[c][l]
		}
	}

	// apply: bulk correction plus per-layer slope correction, wet layers only
	for c := 0; c < ncol; c++ {
		for l := 0; l < nl; l++ {
			if h[c][l] > g.Dry {
				s[c][l] += dt * D * d2s[c][l]
			}
		}
	}
	for l := 0; l < nl; l++ {
		for c := 0; c < ncol; c++ {
			if h[c][l] > g.Dry {
				s[c][l] += dt * D * d2sz[c][l] / h[c][l]
			}
		}
	}
}
