/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'grid_test.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"math"
	"strings"
	"testing"
)

// rawRegular builds the corner point arrays for a shoebox grid with
// unit size cells and lower left corner at (x0, y0, 0).
func rawRegular(nx, ny, nz int, x0, y0 float64) (zcorn, coord []float64, actnum []int) {
	coord = make([]float64, 6*(nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			offset := 6 * (j*(nx+1) + i)
			coord[offset+0] = x0 + float64(i)
			coord[offset+1] = y0 + float64(j)
			coord[offset+2] = 0
			coord[offset+3] = x0 + float64(i)
			coord[offset+4] = y0 + float64(j)
			coord[offset+5] = float64(nz)
		}
	}

	zcorn = make([]float64, 8*nx*ny*nz)
	for k := 0; k < nz; k++ {
		for c := 0; c < 2; c++ {
			depth := float64(k + c)
			plane := k*8*nx*ny + c*4*nx*ny
			for index := 0; index < 4*nx*ny; index++ {
				zcorn[plane+index] = depth
			}
		}
	}

	actnum = make([]int, nx*ny*nz)
	for i := range actnum {
		actnum[i] = 1
	}
	return zcorn, coord, actnum
}

// regularGrid builds a shoebox grid with unit size cells and lower
// left corner at (1, 1, 0), safely away from the default taint
// heuristic at the map origin.
func regularGrid(t *testing.T, nx, ny, nz int) *Grid {
	t.Helper()
	zcorn, coord, actnum := rawRegular(nx, ny, nz, 1, 1)
	g, err := FromRawData(nx, ny, nz, zcorn, coord, actnum, nil)
	if err != nil {
		t.Fatalf("FromRawData: %v", err)
	}
	return g
}

func TestDims(t *testing.T) {
	g := regularGrid(t, 4, 3, 2)
	nx, ny, nz := g.Dims()
	if nx != 4 || ny != 3 || nz != 2 {
		t.Errorf("Dims() = %d,%d,%d, want 4,3,2", nx, ny, nz)
	}
	if g.Size() != 24 {
		t.Errorf("Size() = %d, want 24", g.Size())
	}
	if g.ActiveSize() != 24 {
		t.Errorf("ActiveSize() = %d, want 24", g.ActiveSize())
	}
	if g.SequenceNumber() != 0 {
		t.Errorf("SequenceNumber() = %d, want 0", g.SequenceNumber())
	}
}

func TestFromRawDataSizeChecks(t *testing.T) {
	zcorn, coord, actnum := rawRegular(2, 2, 2, 1, 1)
	cases := []struct {
		name   string
		zcorn  []float64
		coord  []float64
		actnum []int
	}{
		{"short zcorn", zcorn[1:], coord, actnum},
		{"short coord", zcorn, coord[1:], actnum},
		{"short actnum", zcorn, coord, actnum[1:]},
	}
	for _, c := range cases {
		if _, err := FromRawData(2, 2, 2, c.zcorn, c.coord, c.actnum, nil); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
	if _, err := FromRawData(0, 2, 2, zcorn, coord, actnum, nil); err == nil {
		t.Error("zero dimension: expected error")
	}
}

func TestIndexTranslation(t *testing.T) {
	g := regularGrid(t, 4, 3, 2)
	globalIndex := 0
	for k := 0; k < 2; k++ {
		for j := 0; j < 3; j++ {
			for i := 0; i < 4; i++ {
				if got := g.GlobalIndex(i, j, k); got != globalIndex {
					t.Fatalf("GlobalIndex(%d,%d,%d) = %d, want %d", i, j, k, got, globalIndex)
				}
				gi, gj, gk := g.IJK(globalIndex)
				if gi != i || gj != j || gk != k {
					t.Fatalf("IJK(%d) = %d,%d,%d, want %d,%d,%d", globalIndex, gi, gj, gk, i, j, k)
				}
				globalIndex++
			}
		}
	}
}

func TestIndexPanics(t *testing.T) {
	g := regularGrid(t, 2, 2, 2)
	cases := []struct {
		name string
		call func()
	}{
		{"ijk out of range", func() { g.GlobalIndex(2, 0, 0) }},
		{"negative ijk", func() { g.GlobalIndex(0, -1, 0) }},
		{"global out of range", func() { g.IJK(8) }},
		{"active out of range", func() { g.GlobalFromActive(8) }},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", c.name)
				}
			}()
			c.call()
		}()
	}
}

func TestActiveIndexOrder(t *testing.T) {
	zcorn, coord, actnum := rawRegular(3, 2, 2, 1, 1)
	// Deactivate every third cell.
	for i := 0; i < len(actnum); i += 3 {
		actnum[i] = 0
	}
	g, err := FromRawData(3, 2, 2, zcorn, coord, actnum, nil)
	if err != nil {
		t.Fatal(err)
	}

	nactive := 0
	prev := -1
	for globalIndex := 0; globalIndex < g.Size(); globalIndex++ {
		activeIndex := g.ActiveIndex(globalIndex)
		if actnum[globalIndex] == 0 {
			if activeIndex != -1 {
				t.Errorf("inactive cell %d has active index %d", globalIndex, activeIndex)
			}
			continue
		}
		if activeIndex != prev+1 {
			t.Errorf("active index %d for cell %d, want %d", activeIndex, globalIndex, prev+1)
		}
		prev = activeIndex
		nactive++

		if back := g.GlobalFromActive(activeIndex); back != globalIndex {
			t.Errorf("GlobalFromActive(%d) = %d, want %d", activeIndex, back, globalIndex)
		}
	}
	if g.ActiveSize() != nactive {
		t.Errorf("ActiveSize() = %d, want %d", g.ActiveSize(), nactive)
	}
}

func TestDualPorosityActnum(t *testing.T) {
	zcorn, coord, actnum := rawRegular(2, 1, 1, 1, 1)
	actnum[0] = 2
	actnum[1] = 3
	g, err := FromRawData(2, 1, 1, zcorn, coord, actnum, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.ActiveSize() != 2 {
		t.Errorf("ActiveSize() = %d, want 2 for dual porosity flags", g.ActiveSize())
	}
}

func TestMapaxes(t *testing.T) {
	zcorn, coord, actnum := rawRegular(1, 1, 1, 1, 1)
	// Identity axes with the map origin moved to (100, 200).
	mapaxes := []float64{100, 201, 100, 200, 101, 200}
	g, err := FromRawData(1, 1, 1, zcorn, coord, actnum, mapaxes)
	if err != nil {
		t.Fatal(err)
	}
	x, y, z := g.CellCorner(0, 0)
	if math.Abs(x-101) > 1e-9 || math.Abs(y-201) > 1e-9 || z != 0 {
		t.Errorf("corner 0 = (%g,%g,%g), want (101,201,0)", x, y, z)
	}

	if _, err := FromRawData(1, 1, 1, zcorn, coord, actnum, []float64{1, 2, 3}); err == nil {
		t.Error("short MAPAXES: expected error")
	}
}

func TestDefaultTaint(t *testing.T) {
	zcorn, coord, actnum := rawRegular(2, 2, 1, 0, 0)
	g, err := FromRawData(2, 2, 1, zcorn, coord, actnum, nil)
	if err != nil {
		t.Fatal(err)
	}
	// The cell at the map origin has a corner at (0,0).
	if !g.Tainted(g.GlobalIndex(0, 0, 0)) {
		t.Error("cell with corner at map origin not tainted")
	}
	if g.Tainted(g.GlobalIndex(1, 1, 0)) {
		t.Error("interior cell tainted")
	}
	// Tainted cells contain nothing, even their own center.
	x, y, z := g.CellCenter3(0, 0, 0)
	if g.CellContains3(0, 0, 0, x, y, z) {
		t.Error("tainted cell reported containment")
	}
}

func TestCustomTaint(t *testing.T) {
	zcorn, coord, actnum := rawRegular(2, 2, 1, 0, 0)
	none := func(x, y, z float64) bool { return false }
	g, err := FromRawData(2, 2, 1, zcorn, coord, actnum, nil, WithTaintFunc(none))
	if err != nil {
		t.Fatal(err)
	}
	if g.Tainted(0) {
		t.Error("cell tainted with disabled taint heuristic")
	}
	x, y, z := g.CellCenter(0)
	if !g.CellContains(0, x, y, z) {
		t.Error("untainted origin cell does not contain its center")
	}
}

func TestEqual(t *testing.T) {
	g1 := regularGrid(t, 2, 2, 2)
	g2 := regularGrid(t, 2, 2, 2)
	if !g1.Equal(g2) {
		t.Error("identical grids not Equal")
	}
	if g1.Equal(regularGrid(t, 2, 2, 3)) {
		t.Error("grids with different nz Equal")
	}

	zcorn, coord, actnum := rawRegular(2, 2, 2, 1, 1)
	actnum[0] = 0
	g3, err := FromRawData(2, 2, 2, zcorn, coord, actnum, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g1.Equal(g3) {
		t.Error("grids with different activity Equal")
	}
}

func TestSummary(t *testing.T) {
	g := regularGrid(t, 4, 3, 2)
	s := g.Summary()
	for _, want := range []string{"4 x 3 x 2", "Total cells: 24", "Active cells: 24"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() missing %q:\n%s", want, s)
		}
	}
}
