// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hydro ties the multilayer kernel together: it owns the fields of
// the layered free-surface solver and runs, each timestep, the surface
// stress update, the viscous term and the acceleration contribution
package hydro

// Config holds the timestep-global coefficients of the viscous kernel.
// These are read-only from the kernel's perspective during a call.
type Config struct {
	Nu                  float64 // vertical kinematic viscosity; 0 (the default) disables the viscous term
	SurfaceStress       bool    // compute the free-surface viscous stress corrections
	HorizontalDiffusion bool    // add the explicit horizontal viscosity correction
	TangentialPasses    int     // fixed pass count of the tangential-stress relaxation
	TangentialTol       float64 // optional early-exit tolerance; 0 keeps the fixed count
}

// SetDefault sets default values: no viscosity, surface stress on,
// horizontal diffusion off, ten tangential passes with no early exit
func (o *Config) SetDefault() {
	o.Nu = 0
	o.SurfaceStress = true
	o.HorizontalDiffusion = false
	o.TangentialPasses = 10
	o.TangentialTol = 0
}
