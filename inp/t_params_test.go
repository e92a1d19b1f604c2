// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01. read parameters file")

	prm := ReadParams("data/shear.sim")
	chk.Int(tst, "nx", prm.Nx, 16)
	chk.Int(tst, "ny", prm.Ny, 1)
	chk.Int(tst, "nl", prm.Nl, 8)
	chk.Float64(tst, "delta", 1e-17, prm.Delta, 0.25)
	chk.Float64(tst, "dry", 1e-17, prm.Dry, 1e-10)
	chk.Float64(tst, "nu", 1e-17, prm.Nu, 0.01)
	chk.Int(tst, "tpasses", prm.TangentialPasses, 10)
	chk.Int(tst, "nsteps", prm.Nsteps, 100)
	if !prm.SurfaceStress {
		tst.Errorf("surface stress should be enabled")
	}
	if prm.HorizontalDiffusion {
		tst.Errorf("horizontal diffusion should be disabled by default")
	}

	g := prm.NewGrid()
	chk.Int(tst, "grid ncol", g.Ncol(), 16)
	chk.Int(tst, "grid nl", g.Nl, 8)

	cfg := prm.Config()
	chk.Float64(tst, "cfg nu", 1e-17, cfg.Nu, 0.01)
	chk.Int(tst, "cfg tpasses", cfg.TangentialPasses, 10)
}

func Test_params02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params02. defaults fill missing entries")

	prm := ReadParams("data/minimal.sim")
	chk.Int(tst, "nx", prm.Nx, 4)
	chk.Int(tst, "ny default", prm.Ny, 1)
	chk.Int(tst, "nl default", prm.Nl, 1)
	chk.Float64(tst, "delta default", 1e-17, prm.Delta, 1)
	chk.Float64(tst, "nu default", 1e-17, prm.Nu, 0)
	chk.Int(tst, "tpasses default", prm.TangentialPasses, 10)
	if !prm.SurfaceStress {
		tst.Errorf("surface stress should default to enabled")
	}
}

func Test_params03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params03. missing file panics")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("missing file did not panic")
		}
	}()
	ReadParams("data/no-such-file.sim")
}
