/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'lgr.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"sort"
	"strings"
)

/*
   All refinement grids in a file are owned by the top level grid,
   regardless of how deeply they are nested. The refinement lookups
   keyed on name or position are therefore only available on the top
   level grid; calling them on a refinement grid is a programming
   error and panics.
*/

func (g *Grid) assertTopLevel() {
	if g.seqNr != 0 {
		panic("ert: refinement lookup on a grid which is itself a refinement - use the top level grid")
	}
}

// topGrid returns the top level grid owning this grid; for the top
// level grid itself that is the receiver.
func (g *Grid) topGrid() *Grid {
	if g.global != nil {
		return g.global
	}
	return g
}

// GlobalGrid returns the top level grid for a refinement grid and nil
// for the top level grid itself.
func (g *Grid) GlobalGrid() *Grid { return g.global }

// Parent returns the grid hosting this refinement; for refinements
// directly under the top level grid that is the top level grid, and
// for the top level grid itself it is nil.
func (g *Grid) Parent() *Grid { return g.parent }

// LGRCount returns the number of refinement grids in the file, not
// counting the top level grid.
func (g *Grid) LGRCount() int {
	g.assertTopLevel()
	return len(g.lgrs) - 1
}

// HasLGR reports whether a refinement with the given name exists.
// Leading and trailing spaces of name are ignored.
func (g *Grid) HasLGR(name string) bool {
	g.assertTopLevel()
	_, ok := g.lgrIndex[strings.TrimSpace(name)]
	return ok
}

// LGR returns the refinement grid with the given name. Leading and
// trailing spaces of name are ignored.
func (g *Grid) LGR(name string) (*Grid, error) {
	g.assertTopLevel()
	lgr, ok := g.lgrIndex[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("ert: grid has no refinement named %s", strings.TrimSpace(name))
	}
	return lgr, nil
}

// LGRByPosition returns refinement number n, counting from 0 in order
// of occurrence in the file and not counting the top level grid. The
// position therefore relates to the sequence number as position =
// sequence number - 1. Out of range positions panic.
func (g *Grid) LGRByPosition(n int) *Grid {
	g.assertTopLevel()
	if n < 0 || n >= len(g.lgrs)-1 {
		panic(fmt.Sprintf("ert: refinement position %d outside [0,%d)", n, len(g.lgrs)-1))
	}
	return g.lgrs[n+1]
}

// LGRNames returns the sorted names of every refinement grid in the
// file.
func (g *Grid) LGRNames() []string {
	g.assertTopLevel()
	names := make([]string, 0, len(g.lgrIndex))
	for name := range g.lgrIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChildNames returns the sorted names of the refinements hosted
// directly by this grid. Unlike the lookups above this works on any
// grid in the hierarchy.
func (g *Grid) ChildNames() []string {
	names := make([]string, 0, len(g.children))
	for name := range g.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveLGR translates a stored refinement sequence number to the
// grid it denotes; 0 means no refinement.
func (g *Grid) resolveLGR(seqNr int) *Grid {
	if seqNr == 0 {
		return nil
	}
	return g.topGrid().lgrs[seqNr]
}

// CellLGR returns the refinement grid occupying the cell with the
// given global index, or nil when the cell is not subdivided. When a
// cell is refined in several levels the first level is returned;
// repeated calls on the returned grids descend through the hierarchy.
func (g *Grid) CellLGR(globalIndex int) *Grid {
	g.assertGlobal(globalIndex)
	return g.resolveLGR(g.cells[globalIndex].lgr)
}

// CellLGR3 returns the refinement grid occupying cell (i,j,k), or nil.
func (g *Grid) CellLGR3(i, j, k int) *Grid {
	return g.CellLGR(g.GlobalIndex(i, j, k))
}

// CellLGRActive returns the refinement grid occupying the cell with
// the given active index, or nil.
func (g *Grid) CellLGRActive(activeIndex int) *Grid {
	return g.CellLGR(g.GlobalFromActive(activeIndex))
}

// HostCell returns the global index in the parent grid of the cell
// containing the given refinement cell, or -1 for cells in the top
// level grid and for inactive refinement cells.
func (g *Grid) HostCell(globalIndex int) int {
	g.assertGlobal(globalIndex)
	return g.cells[globalIndex].hostCell
}
