// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func Test_thomas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thomas01. round trip on diagonally dominant systems")

	rng := rand.New(rand.NewSource(1234))
	for _, nl := range []int{1, 2, 5, 50} {

		// random diagonally dominant tridiagonal system
		a := make([]float64, nl)
		b := make([]float64, nl)
		c := make([]float64, nl)
		rhs := make([]float64, nl)
		for l := 0; l < nl; l++ {
			if l > 0 {
				a[l] = -rng.Float64()
			}
			if l < nl-1 {
				c[l] = -rng.Float64()
			}
			b[l] = 2.5 + rng.Float64() // dominant: |a|+|c| ≤ 2 < b
			rhs[l] = 20*rng.Float64() - 10
		}

		// solve on copies (the sweep destroys b and rhs)
		bb := append([]float64(nil), b...)
		rr := append([]float64(nil), rhs...)
		x := make([]float64, nl)
		Thomas(a, bb, c, rr, x)

		// substitute back: M・x must reproduce rhs
		M := mat.NewDense(nl, nl, nil)
		for l := 0; l < nl; l++ {
			M.Set(l, l, b[l])
			if l > 0 {
				M.Set(l, l-1, a[l])
			}
			if l < nl-1 {
				M.Set(l, l+1, c[l])
			}
		}
		var y mat.VecDense
		y.MulVec(M, mat.NewVecDense(nl, x))
		io.Pf("nl=%2d x=%v\n", nl, x)
		chk.Array(tst, io.Sf("M・x (nl=%d)", nl), 1e-12, y.RawVector().Data, rhs)
	}
}

func Test_thomas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("thomas02. known 3x3 solution")

	// [ 2 -1  0 ] [1]   [ 0]
	// [-1  2 -1 ] [2] = [ 0]
	// [ 0 -1  2 ] [3]   [ 4]
	a := []float64{0, -1, -1}
	b := []float64{2, 2, 2}
	c := []float64{-1, -1, 0}
	rhs := []float64{0, 0, 4}
	x := make([]float64, 3)
	Thomas(a, b, c, rhs, x)
	chk.Array(tst, "x", 1e-14, x, []float64{1, 2, 3})
}
