// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_couette01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("couette01. Navier-slip Couette profile")

	sol := CouetteNavier{Ub: 0.2, Lambda: 0.5, Shear: 1.5}

	// slip condition at the bottom: u(0) = Ub + Lambda・∂z u
	chk.Float64(tst, "u(0)", 1e-15, sol.U(0), sol.Ub+sol.Lambda*sol.Shear)

	// constant shear everywhere
	Z := utl.LinSpace(0, 2, 9)
	dz := 1e-6
	for _, z := range Z {
		dudz := (sol.U(z+dz) - sol.U(z-dz)) / (2 * dz)
		chk.Float64(tst, "du/dz", 1e-8, dudz, sol.Shear)
	}

	// layer-centre sampling
	h := []float64{0.5, 0.25, 0.25}
	u := sol.Profile(h)
	chk.Array(tst, "profile", 1e-15, u, []float64{
		sol.U(0.25), sol.U(0.625), sol.U(0.875),
	})
}
