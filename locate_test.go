/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'locate_test.go' is part of ERT - Ensemble based Reservoir Tool.

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

import "testing"

func TestLocatorFind(t *testing.T) {
	g := regularGrid(t, 5, 5, 5)
	l := g.NewLocator()

	for globalIndex := 0; globalIndex < g.Size(); globalIndex++ {
		x, y, z := g.CellCenter(globalIndex)

		// Exact hint.
		if got := l.Find(x, y, z, globalIndex); got != globalIndex {
			t.Fatalf("Find with exact hint = %d, want %d", got, globalIndex)
		}
		// No hint.
		if got := l.Find(x, y, z, -1); got != globalIndex {
			t.Fatalf("Find without hint = %d, want %d", got, globalIndex)
		}
	}
}

func TestLocatorFindNearbyHint(t *testing.T) {
	g := regularGrid(t, 5, 5, 5)
	l := g.NewLocator()

	want := g.GlobalIndex(2, 2, 2)
	x, y, z := g.CellCenter(want)

	hints := []int{
		g.GlobalIndex(1, 2, 2), // direct neighbour
		g.GlobalIndex(4, 4, 4), // far away, forces the linear scan
		g.GlobalIndex(0, 0, 0),
	}
	for _, hint := range hints {
		if got := l.Find(x, y, z, hint); got != want {
			t.Errorf("Find with hint %d = %d, want %d", hint, got, want)
		}
	}
}

func TestLocatorFindMiss(t *testing.T) {
	g := regularGrid(t, 3, 3, 3)
	l := g.NewLocator()

	misses := [][3]float64{
		{100, 100, 100},
		{0.5, 0.5, 0.5}, // inside the map origin quadrant, outside the grid
		{2, 2, -1},      // above the reservoir
	}
	for _, p := range misses {
		if got := l.Find(p[0], p[1], p[2], -1); got != -1 {
			t.Errorf("Find(%v) = %d, want -1", p, got)
		}
		if got := l.Find(p[0], p[1], p[2], 0); got != -1 {
			t.Errorf("Find(%v) with hint = %d, want -1", p, got)
		}
	}
}

func TestGlobalIndexFromXYZ(t *testing.T) {
	g := regularGrid(t, 3, 3, 3)
	want := g.GlobalIndex(1, 1, 1)
	x, y, z := g.CellCenter(want)
	if got := g.GlobalIndexFromXYZ(x, y, z, -1); got != want {
		t.Errorf("GlobalIndexFromXYZ = %d, want %d", got, want)
	}
}
