// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/the-liquid-lab/full-layered/hydro"
	"github.com/the-liquid-lab/full-layered/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/shear", ".sim", true)
	verbose := io.ArgToBool(1, true)
	if verbose {
		io.PfWhite("\nFull-Layered -- multilayer free-surface viscous kernel\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}
	prm := inp.ReadParams(fnamepath)

	// domain: uniform depth, top-driven shear profile along x
	g := prm.NewGrid()
	dom := hydro.NewDomain(g, prm.Config())
	dom.SetUniformDepth(prm.Depth)
	for c := 0; c < g.Ncol(); c++ {
		z := 0.0
		for l := 0; l < g.Nl; l++ {
			z += dom.H[c][l]
			dom.U.X[c][l] = z / prm.Depth
		}
	}

	// time loop: the shear relaxes under vertical viscosity
	if verbose {
		io.Pf("%6s%15s%18s%18s\n", "step", "time", "total depth", "kinetic energy")
	}
	t := 0.0
	for n := 0; n < prm.Nsteps; n++ {
		dom.Step(prm.Dt)
		t += prm.Dt
		if verbose && (n%10 == 0 || n == prm.Nsteps-1) {
			io.Pf("%6d%15.6f%18.8e%18.8e\n", n, t, dom.TotalDepth(), dom.KineticEnergy())
		}
	}
	if verbose {
		io.PfGreen("\ndone\n")
	}
}
