/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'blocking.go' is part of ERT - Ensemble based Reservoir Tool.

   ERT is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   ERT is distributed in the hope that it will be useful, but WITHOUT ANY
   WARRANTY; without even the implied warranty of MERCHANTABILITY or
   FITNESS FOR A PARTICULAR PURPOSE.

   See the GNU General Public License at <http://www.gnu.org/licenses/gpl.html>
   for more details.
*/

package ert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
   Blocking maps scattered observations, typically well logs with
   world coordinates, onto the grid: each observed value is appended
   to the accumulator of the cell (or column, for two dimensional
   blocking) containing it, and the accumulators are then reduced to
   one value per cell with a BlockFunc. The point location is seeded
   with the cell of the previous observation, which makes blocking of
   spatially ordered logs cheap.

   The blocking state lives on the grid and is not safe for concurrent
   use.
*/

// A BlockFunc reduces the values blocked into one cell to a single
// value. It is called with an empty slice for cells which received no
// values.
type BlockFunc func([]float64) float64

// BlockMean returns the mean of the blocked values, or NaN for empty
// cells.
func BlockMean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Sum(values) / float64(len(values))
}

// BlockSum returns the sum of the blocked values.
func BlockSum(values []float64) float64 {
	return floats.Sum(values)
}

// BlockMin returns the smallest blocked value, or NaN for empty cells.
func BlockMin(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Min(values)
}

// BlockMax returns the largest blocked value, or NaN for empty cells.
func BlockMax(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Max(values)
}

// AllocBlocking prepares the grid for blocking in blockDim dimensions;
// 3 blocks values per cell and 2 per (i,j) column. Any values from a
// previous blocking session are discarded.
func (g *Grid) AllocBlocking(blockDim int) {
	switch blockDim {
	case 2:
		g.blockSize = g.nx * g.ny
	case 3:
		g.blockSize = g.size
	default:
		panic(fmt.Sprintf("ert: blocking dimension must be 2 or 3 - got %d", blockDim))
	}
	g.blockDim = blockDim
	g.blockValues = make([][]float64, g.blockSize)
	g.lastBlockIndex = 0
}

// ResetBlocking clears the accumulated values while keeping the
// blocking configuration.
func (g *Grid) ResetBlocking() {
	if g.blockDim == 0 {
		panic("ert: blocking has not been allocated")
	}
	for i := range g.blockValues {
		g.blockValues[i] = g.blockValues[i][:0]
	}
	g.lastBlockIndex = 0
}

func (g *Grid) assertBlockDim(blockDim int) {
	if g.blockDim != blockDim {
		panic(fmt.Sprintf("ert: blocking dimension is %d - expected %d", g.blockDim, blockDim))
	}
}

// BlockValue3D blocks one observed value into the cell containing the
// point (x,y,z) and reports whether such a cell was found.
func (g *Grid) BlockValue3D(x, y, z, value float64) bool {
	g.assertBlockDim(3)
	globalIndex := g.GlobalIndexFromXYZ(x, y, z, g.lastBlockIndex)
	if globalIndex < 0 {
		return false
	}
	g.blockValues[globalIndex] = append(g.blockValues[globalIndex], value)
	g.lastBlockIndex = globalIndex
	return true
}

// columnFromXY returns the i + j*nx index of the column whose
// uppermost cell footprint contains the map plane point (x,y), or -1.
// The scan starts at the column of the previous hit.
func (g *Grid) columnFromXY(x, y float64) int {
	for index := 0; index < g.blockSize; index++ {
		columnIndex := (index + g.lastBlockIndex) % g.blockSize
		if g.cells[columnIndex].layerContains(x, y, 0) {
			return columnIndex
		}
	}
	return -1
}

// BlockValue2D blocks one observed value into the column containing
// the map plane point (x,y) and reports whether such a column was
// found.
func (g *Grid) BlockValue2D(x, y, value float64) bool {
	g.assertBlockDim(2)
	columnIndex := g.columnFromXY(x, y)
	if columnIndex < 0 {
		return false
	}
	g.blockValues[columnIndex] = append(g.blockValues[columnIndex], value)
	g.lastBlockIndex = columnIndex
	return true
}

// BlockedValue3D reduces the values blocked into cell (i,j,k).
func (g *Grid) BlockedValue3D(i, j, k int, f BlockFunc) float64 {
	g.assertBlockDim(3)
	return f(g.blockValues[g.GlobalIndex(i, j, k)])
}

// BlockedValue2D reduces the values blocked into column (i,j).
func (g *Grid) BlockedValue2D(i, j int, f BlockFunc) float64 {
	g.assertBlockDim(2)
	return f(g.blockValues[g.GlobalIndex(i, j, 0)])
}

// BlockCount3D returns the number of values blocked into cell (i,j,k).
func (g *Grid) BlockCount3D(i, j, k int) int {
	g.assertBlockDim(3)
	return len(g.blockValues[g.GlobalIndex(i, j, k)])
}

// BlockCount2D returns the number of values blocked into column (i,j).
func (g *Grid) BlockCount2D(i, j int) int {
	g.assertBlockDim(2)
	return len(g.blockValues[g.GlobalIndex(i, j, 0)])
}
