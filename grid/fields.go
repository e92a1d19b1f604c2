// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Scalar holds one value per column; e.g. the free-surface elevation or a
// boundary-condition component
type Scalar []float64

// Layered holds one value per column per layer: [ncol][nl]
type Layered [][]float64

// Vector holds the horizontal components of a per-column vector field
type Vector struct {
	X, Y Scalar
}

// VecLayered holds the horizontal components of a per-column per-layer
// vector field; e.g. the velocity. Face-located fields (hf, ha) use the
// same container with the convention that slot c is the left/bottom face
// of column c; the right/top face of c is the slot of its +1 neighbour.
type VecLayered struct {
	X, Y Layered
}

// NewScalar allocates a per-column scalar field
func (o *Grid) NewScalar() Scalar { return make(Scalar, o.Ncol()) }

// NewLayered allocates a per-column per-layer field
func (o *Grid) NewLayered() Layered { return utl.Alloc(o.Ncol(), o.Nl) }

// NewVector allocates a per-column vector field
func (o *Grid) NewVector() Vector {
	return Vector{X: o.NewScalar(), Y: o.NewScalar()}
}

// NewVecLayered allocates a per-column per-layer vector field
func (o *Grid) NewVecLayered() VecLayered {
	return VecLayered{X: o.NewLayered(), Y: o.NewLayered()}
}

// Fill sets all entries of s to v
func (o Scalar) Fill(v float64) {
	for c := range o {
		o[c] = v
	}
}

// Fill sets all entries of s to v
func (o Layered) Fill(v float64) {
	for c := range o {
		for l := range o[c] {
			o[c][l] = v
		}
	}
}

// Comp returns the component of the vector field along dim
func (o Vector) Comp(dim int) Scalar {
	switch dim {
	case DimX:
		return o.X
	case DimY:
		return o.Y
	}
	chk.Panic("grid.Vector.Comp: invalid dimension %d", dim)
	return nil
}

// Comp returns the component of the vector field along dim
func (o VecLayered) Comp(dim int) Layered {
	switch dim {
	case DimX:
		return o.X
	case DimY:
		return o.Y
	}
	chk.Panic("grid.VecLayered.Comp: invalid dimension %d", dim)
	return nil
}

// CopyFrom copies the entries of b into o (same grid)
func (o Scalar) CopyFrom(b Scalar) {
	copy(o, b)
}

// CopyFrom copies the entries of b into o (same grid)
func (o Vector) CopyFrom(b Vector) {
	copy(o.X, b.X)
	copy(o.Y, b.Y)
}

// Fill sets both components to v
func (o Vector) Fill(v float64) {
	o.X.Fill(v)
	o.Y.Fill(v)
}
