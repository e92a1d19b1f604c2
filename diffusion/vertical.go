// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diffusion

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Workspace holds the per-column scratch arrays of the vertical implicit
// diffusion solve. One workspace serves any number of columns sequentially;
// concurrent columns need one workspace per goroutine.
type Workspace struct {

	// validation mode (never enabled in production solves)
	Debug    bool    // assert nl ≥ 1, h ≥ 0 and pivots away from zero
	PivotTol float64 // minimum acceptable |pivot| when Debug is on

	// scratchpad
	a, b, c, rhs la.Vector
}

// NewWorkspace returns a workspace with capacity for nl layers. The buffers
// grow automatically if a taller column shows up later.
func NewWorkspace(nl int) *Workspace {
	if nl < 1 {
		chk.Panic("diffusion.NewWorkspace: invalid number of layers nl=%d", nl)
	}
	o := new(Workspace)
	o.buffers(nl)
	return o
}

// buffers returns the four nl-sized scratch slices, growing the backing
// vectors when needed
func (o *Workspace) buffers(nl int) (a, b, c, rhs []float64) {
	if len(o.a) < nl {
		o.a = la.NewVector(nl)
		o.b = la.NewVector(nl)
		o.c = la.NewVector(nl)
		o.rhs = la.NewVector(nl)
	}
	return o.a[:nl], o.b[:nl], o.c[:nl], o.rhs[:nl]
}

// NeumannNeumann advances the per-layer scalar s of one column by one
// implicit vertical diffusion step with diffusivity D, a Neumann condition
// at the free surface (top flux dst = ∂s/∂z|t) and a Neumann condition at
// the bottom (dsb = ∂s/∂z|b). h holds the layer heights, bottom (l=0) to
// top; s is updated in place.
func (o *Workspace) NeumannNeumann(h, s []float64, dt, D, dst, dsb float64) {
	a, b, c, rhs := o.assembleNeumannNeumann(h, s, dt, D, dst, dsb)
	if o.Debug {
		o.validate(h, s, a, b, c)
	}
	Thomas(a, b, c, rhs, s)
}

// NeumannNavier is the variant of NeumannNeumann with a third-order Navier
// slip closure at the bottom: s|b = sb + lambda・∂s/∂z|b, with slip length
// lambda and prescribed bottom value sb.
func (o *Workspace) NeumannNavier(h, s []float64, dt, D, dst, sb, lambda float64) {
	a, b, c, rhs := o.assembleNeumannNavier(h, s, dt, D, dst, sb, lambda)
	if o.Debug {
		o.validate(h, s, a, b, c)
	}
	Thomas(a, b, c, rhs, s)
}

// assembleNeumannNeumann builds the tridiagonal coefficients and right-hand
// side of the Neumann/Neumann variant. The rhs baseline is the
// depth-weighted scalar h_l・s_l.
func (o *Workspace) assembleNeumannNeumann(h, s []float64, dt, D, dst, dsb float64) (a, b, c, rhs []float64) {
	nl := len(h)
	a, b, c, rhs = o.buffers(nl)
	for l := 0; l < nl; l++ {
		rhs[l] = s[l] * h[l]
	}
	for l := 1; l < nl-1; l++ {
		a[l] = -2 * D * dt / (h[l-1] + h[l])
		c[l] = -2 * D * dt / (h[l] + h[l+1])
		b[l] = h[l] - a[l] - c[l]
	}

	// top layer: ghost value s_nl = s_{nl-1} + dst・h_{nl-1}
	if nl > 1 {
		a[nl-1] = -2 * D * dt / (h[nl-2] + h[nl-1])
		b[nl-1] = h[nl-1] - a[nl-1]
	}
	rhs[nl-1] += D * dt * dst

	// bottom layer
	h1 := 0.0 // degenerate zero-thickness layer above when nl == 1
	if nl > 1 {
		h1 = h[1]
	}
	c[0] = -2 * D * dt / (h[0] + h1)
	b[0] = h[0] - c[0]
	rhs[0] -= D * dt * dsb

	// single layer: fold the upper coupling into the diagonal
	if nl == 1 {
		b[0] += c[0]
		rhs[0] += (-c[0]*h[0] - D*dt) * dst
	}
	return
}

// assembleNeumannNavier builds the tridiagonal coefficients and right-hand
// side of the Neumann/Navier variant. Interior and top layers match the
// Neumann/Neumann assembly.
func (o *Workspace) assembleNeumannNavier(h, s []float64, dt, D, dst, sb, lambda float64) (a, b, c, rhs []float64) {
	nl := len(h)
	a, b, c, rhs = o.buffers(nl)
	for l := 0; l < nl; l++ {
		rhs[l] = s[l] * h[l]
	}
	for l := 1; l < nl-1; l++ {
		a[l] = -2 * D * dt / (h[l-1] + h[l])
		c[l] = -2 * D * dt / (h[l] + h[l+1])
		b[l] = h[l] - a[l] - c[l]
	}

	// top layer
	if nl > 1 {
		a[nl-1] = -2 * D * dt / (h[nl-2] + h[nl-1])
		b[nl-1] = h[nl-1] - a[nl-1]
	}
	rhs[nl-1] += D * dt * dst

	// bottom layer: third-order Navier slip closure
	h0 := h[0]
	h1 := 0.0
	if nl > 1 {
		h1 = h[1]
	}
	den := h0*sq(h0+h1) + 2*lambda*(3*h0*h1+2*sq(h0)+sq(h1))
	b[0] = h0 + 2*dt*D*(1/(h0+h1)+(sq(h1)+3*h0*h1+3*sq(h0))/den)
	c[0] = -2 * dt * D * (1/(h0+h1) + sq(h0)/den)
	rhs[0] += 2 * dt * D * sb * (sq(h1) + 3*h0*h1 + 2*sq(h0)) / den

	// single layer: same fold as the Neumann/Neumann variant, reusing the
	// Navier-derived upper coupling
	if nl == 1 {
		b[0] += c[0]
		rhs[0] += (-c[0]*h0 - D*dt) * dst
	}
	return
}

// validate asserts the preconditions of the solve: at least one layer,
// non-negative heights and elimination pivots no closer to zero than
// PivotTol. It simulates the forward sweep on a copy so the arithmetic of
// the production solve is unchanged.
func (o *Workspace) validate(h, s, a, b, c []float64) {
	nl := len(h)
	if nl < 1 {
		chk.Panic("diffusion: column must have at least one layer")
	}
	if len(s) != nl {
		chk.Panic("diffusion: heights and scalar have different lengths: %d != %d", nl, len(s))
	}
	for l := 0; l < nl; l++ {
		if h[l] < 0 {
			chk.Panic("diffusion: negative layer height h[%d]=%g", l, h[l])
		}
	}
	piv := b[0]
	for l := 0; ; l++ {
		if piv < o.PivotTol && piv > -o.PivotTol {
			chk.Panic("diffusion: pivot %d too close to zero: %g", l, piv)
		}
		if l == nl-1 {
			break
		}
		piv = b[l+1] - a[l+1]*c[l]/piv
	}
}

func sq(x float64) float64 { return x * x }
