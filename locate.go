/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'locate.go' is part of ERT - Ensemble based Reservoir Tool.

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

// A Locator runs point location queries against one grid. It owns a
// visited flag per cell so a single query never evaluates the same
// cell twice; the flags make the Locator stateful, and it must not be
// shared between goroutines. The grid itself is only read.
type Locator struct {
	g       *Grid
	visited []bool
}

// NewLocator returns a Locator for repeated point location queries
// against the grid.
func (g *Grid) NewLocator() *Locator {
	return &Locator{
		g:       g,
		visited: make([]bool, g.size),
	}
}

func (l *Locator) clearVisited() {
	for i := range l.visited {
		l.visited[i] = false
	}
}

// boxContains scans the cells in the inclusive box [i1,i2] x [j1,j2] x
// [k1,k2] for one containing p, skipping cells already visited in this
// query.
func (l *Locator) boxContains(i1, i2, j1, j2, k1, k2 int, p point) int {
	g := l.g
	for k := k1; k <= k2; k++ {
		for j := j1; j <= j2; j++ {
			for i := i1; i <= i2; i++ {
				globalIndex := g.GlobalIndex(i, j, k)
				if l.visited[globalIndex] {
					continue
				}
				l.visited[globalIndex] = true
				if g.cells[globalIndex].contains(p) {
					return globalIndex
				}
			}
		}
	}
	return -1
}

// Find returns the global index of the cell containing the point
// (x,y,z), or -1 when no cell contains it. hint is the global index of
// a cell believed to be close to the point; the cell itself is tried
// first, then growing neighbourhoods around it, before the query falls
// back to a linear scan over the whole grid starting at the hint. Pass
// a negative hint when nothing is known about the location.
func (l *Locator) Find(x, y, z float64, hint int) int {
	g := l.g
	p := point{x, y, z}
	l.clearVisited()

	if hint >= 0 {
		g.assertGlobal(hint)
		l.visited[hint] = true
		if g.cells[hint].contains(p) {
			return hint
		}

		i, j, k := g.IJK(hint)
		for _, radius := range []int{1, 2} {
			i1, j1, k1 := maxInt(0, i-radius), maxInt(0, j-radius), maxInt(0, k-radius)
			i2 := minInt(g.nx-1, i+radius)
			j2 := minInt(g.ny-1, j+radius)
			k2 := minInt(g.nz-1, k+radius)
			if globalIndex := l.boxContains(i1, i2, j1, j2, k1, k2, p); globalIndex >= 0 {
				return globalIndex
			}
		}
	}

	start := hint
	if start < 0 {
		start = 0
	}
	for index := 0; index < g.size; index++ {
		globalIndex := (index + start) % g.size
		if l.visited[globalIndex] {
			continue
		}
		if g.cells[globalIndex].contains(p) {
			return globalIndex
		}
	}
	return -1
}

// GlobalIndexFromXYZ locates the cell containing (x,y,z) using a
// throwaway Locator; see Locator.Find. Callers issuing many queries
// should hold on to a Locator instead.
func (g *Grid) GlobalIndexFromXYZ(x, y, z float64, hint int) int {
	return g.NewLocator().Find(x, y, z, hint)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
