// Copyright 2021 The Full-Layered Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the structured horizontal grid of columns and the
// field containers used by the multilayer solver
package grid

import (
	"github.com/cpmech/gosl/chk"
)

// Dim indices of the horizontal dimensions
const (
	DimX = 0
	DimY = 1
	Ndim = 2
)

// Grid holds the geometry of a structured 2D horizontal grid of columns.
// Each column carries Nl layers stacked bottom (l=0) to top (l=Nl-1).
// Columns are indexed row-major: c = j*Nx + i.
type Grid struct {
	Nx    int     // number of columns along x
	Ny    int     // number of columns along y
	Nl    int     // number of layers per column
	Delta float64 // horizontal grid spacing (uniform, both dimensions)
	Dry   float64 // height threshold below which a layer is considered dry
}

// New returns a new grid. Panics on invalid dimensions.
func New(nx, ny, nl int, delta, dry float64) *Grid {
	if nx < 1 || ny < 1 || nl < 1 {
		chk.Panic("grid.New: invalid dimensions nx=%d ny=%d nl=%d", nx, ny, nl)
	}
	if delta <= 0 {
		chk.Panic("grid.New: invalid spacing delta=%g", delta)
	}
	if dry < 0 {
		chk.Panic("grid.New: invalid dry threshold dry=%g", dry)
	}
	return &Grid{Nx: nx, Ny: ny, Nl: nl, Delta: delta, Dry: dry}
}

// Ncol returns the number of columns
func (o *Grid) Ncol() int { return o.Nx * o.Ny }

// Cid returns the column index of horizontal position (i,j)
func (o *Grid) Cid(i, j int) int { return j*o.Nx + i }

// IJ returns the horizontal position (i,j) of column c
func (o *Grid) IJ(c int) (i, j int) { return c % o.Nx, c / o.Nx }

// Left returns the column index of the -1 neighbour of c along dim.
// Lookups are clamped at domain edges, giving zero-gradient ghost values
// at the boundaries.
func (o *Grid) Left(c, dim int) int {
	i, j := o.IJ(c)
	switch dim {
	case DimX:
		if i > 0 {
			return c - 1
		}
	case DimY:
		if j > 0 {
			return c - o.Nx
		}
	default:
		chk.Panic("grid.Left: invalid dimension %d", dim)
	}
	return c
}

// Right returns the column index of the +1 neighbour of c along dim,
// clamped at domain edges.
func (o *Grid) Right(c, dim int) int {
	i, j := o.IJ(c)
	switch dim {
	case DimX:
		if i < o.Nx-1 {
			return c + 1
		}
	case DimY:
		if j < o.Ny-1 {
			return c + o.Nx
		}
	default:
		chk.Panic("grid.Right: invalid dimension %d", dim)
	}
	return c
}
