// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stress

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/the-liquid-lab/full-layered/grid"
)

// coefficients of the neighbour couplings in the tangential-stress
// relaxation; etaf = ηx/(1-ηx²), hp/h0/hm are the top-layer heights of the
// +1, centre and -1 columns
func tstressA(hp, etaf, delta float64) float64 {
	return hp*hp/(4*delta*delta) + etaf*hp/delta
}

func tstressB(hp, h0, delta float64) float64 {
	return hp * h0 / (4 * delta * delta)
}

func tstressC(h0, hm, etaf, delta float64) float64 {
	return h0*hm/(4*delta*delta) - etaf*hm/delta
}

// Tangential computes the boundary-flux vector field dunu enforcing the
// tangential stress continuity at the free surface, by fixed-point (Jacobi)
// relaxation. The field is zeroed and then refined over a fixed number of
// passes (no convergence test by default); a
// positive tol enables an optional early exit when the largest absolute
// change of a pass falls below it.
//
// Each pass recomputes every column from the vertical velocity w, the
// top-layer horizontal velocity and heights, the surface slope, and the
// neighbouring columns' previous-pass values only: reads come from a
// snapshot of the prior iteration, so columns within a pass are updated
// concurrently without affecting the result.
func Tangential(g *grid.Grid, eta grid.Scalar, u grid.VecLayered, w, h grid.Layered, passes int, tol float64, dunu grid.Vector) {
	ncol := g.Ncol()
	top := g.Nl - 1
	delta := g.Delta
	twoD := 2 * delta

	cur := g.NewVector() // previous pass (starts at zero)
	nxt := g.NewVector()

	nw := runtime.GOMAXPROCS(0)
	if nw > ncol {
		nw = ncol
	}
	csize := (ncol + nw - 1) / nw
	diffs := make([]float64, nw)

	for it := 0; it < passes; it++ {
		var wg sync.WaitGroup
		for iw := 0; iw < nw; iw++ {
			lo := iw * csize
			hi := lo + csize
			if hi > ncol {
				hi = ncol
			}
			if lo >= hi {
				diffs[iw] = 0
				continue
			}
			wg.Add(1)
			go func(iw, lo, hi int) {
				defer wg.Done()
				maxdiff := 0.0
				for c := lo; c < hi; c++ {
					for dim := 0; dim < grid.Ndim; dim++ {
						m, p := g.Left(c, dim), g.Right(c, dim)
						uc := u.Comp(dim)
						pc := cur.Comp(dim)
						etax := (eta[p] - eta[m]) / twoD
						etaf := etax / (1 - etax*etax)
						v := -(w[p][top]-w[m][top])/twoD +
							4*(uc[p][top]-uc[m][top])/twoD*etaf +
							(h[p][top]*uc[p][top]-(h[p][top]+h[c][top])*uc[c][top]+h[c][top]*uc[m][top])/(2*delta*delta) +
							tstressA(h[p][top], etaf, delta)*pc[p] +
							tstressC(h[c][top], h[m][top], etaf, delta)*pc[m] -
							tstressB(h[p][top], h[c][top], delta)*pc[c]
						nxt.Comp(dim)[c] = v
						d := v - pc[c]
						if d < 0 {
							d = -d
						}
						if d > maxdiff {
							maxdiff = d
						}
					}
				}
				diffs[iw] = maxdiff
			}(iw, lo, hi)
		}
		wg.Wait()
		cur, nxt = nxt, cur
		if tol > 0 && floats.Max(diffs) < tol {
			break
		}
	}
	dunu.CopyFrom(cur)
}
