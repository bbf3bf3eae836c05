/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'index.go' is part of ERT - Ensemble based Reservoir Tool.

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

import "fmt"

/*
   Cells are addressed in three different index spaces:

     (i,j,k)  zero offset cell coordinates, i fastest running.
     global   i + j*nx + k*nx*ny, covering all nx*ny*nz cells.
     active   compact enumeration of the active cells only, in order
              of increasing global index.

   Passing an out of range index to any of the translation functions
   is a programming error and panics; the only data dependent result
   is the -1 returned by ActiveIndex for inactive cells.
*/

// Dims returns the grid dimensions.
func (g *Grid) Dims() (nx, ny, nz int) {
	return g.nx, g.ny, g.nz
}

// Size returns the total number of cells, active or not.
func (g *Grid) Size() int { return g.size }

// ActiveSize returns the number of active cells.
func (g *Grid) ActiveSize() int { return g.nactive }

// Name returns the file name for a top level grid and the refinement
// name for refinement grids.
func (g *Grid) Name() string { return g.name }

// SequenceNumber returns the position of this grid in the file it was
// loaded from; the top level grid is number 0.
func (g *Grid) SequenceNumber() int { return g.seqNr }

func (g *Grid) assertIJK(i, j, k int) {
	if i < 0 || i >= g.nx || j < 0 || j >= g.ny || k < 0 || k >= g.nz {
		panic(fmt.Sprintf("ert: cell (%d,%d,%d) outside %dx%dx%d grid", i, j, k, g.nx, g.ny, g.nz))
	}
}

func (g *Grid) assertGlobal(globalIndex int) {
	if globalIndex < 0 || globalIndex >= g.size {
		panic(fmt.Sprintf("ert: global index %d outside grid with %d cells", globalIndex, g.size))
	}
}

func (g *Grid) assertActive(activeIndex int) {
	if activeIndex < 0 || activeIndex >= g.nactive {
		panic(fmt.Sprintf("ert: active index %d outside grid with %d active cells", activeIndex, g.nactive))
	}
}

// GlobalIndex translates cell coordinates to a global index.
func (g *Grid) GlobalIndex(i, j, k int) int {
	g.assertIJK(i, j, k)
	return i + j*g.nx + k*g.nx*g.ny
}

// IJK translates a global index back to cell coordinates.
func (g *Grid) IJK(globalIndex int) (i, j, k int) {
	g.assertGlobal(globalIndex)
	i = globalIndex % g.nx
	globalIndex /= g.nx
	j = globalIndex % g.ny
	k = globalIndex / g.ny
	return i, j, k
}

// ActiveIndex returns the active index of the cell with the given
// global index, or -1 if the cell is inactive.
func (g *Grid) ActiveIndex(globalIndex int) int {
	g.assertGlobal(globalIndex)
	return g.indexMap[globalIndex]
}

// ActiveIndex3 returns the active index of cell (i,j,k), or -1 if the
// cell is inactive.
func (g *Grid) ActiveIndex3(i, j, k int) int {
	return g.ActiveIndex(g.GlobalIndex(i, j, k))
}

// GlobalFromActive translates an active index to the global index of
// the same cell.
func (g *Grid) GlobalFromActive(activeIndex int) int {
	g.assertActive(activeIndex)
	return g.invIndexMap[activeIndex]
}

// Active reports whether cell (i,j,k) is active.
func (g *Grid) Active(i, j, k int) bool {
	return g.cells[g.GlobalIndex(i, j, k)].active
}

// ActiveGlobal reports whether the cell with the given global index is
// active.
func (g *Grid) ActiveGlobal(globalIndex int) bool {
	g.assertGlobal(globalIndex)
	return g.cells[globalIndex].active
}

// IJKFromActive translates an active index to cell coordinates.
func (g *Grid) IJKFromActive(activeIndex int) (i, j, k int) {
	return g.IJK(g.GlobalFromActive(activeIndex))
}
