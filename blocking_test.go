/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'blocking_test.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"testing"
)

func TestBlocking3D(t *testing.T) {
	g := regularGrid(t, 3, 3, 2)
	g.AllocBlocking(3)

	// Three values into cell (1,1,0), one into (0,0,1).
	x, y, z := g.CellCenter3(1, 1, 0)
	for _, v := range []float64{1, 2, 6} {
		if !g.BlockValue3D(x, y, z, v) {
			t.Fatal("BlockValue3D missed a cell center")
		}
	}
	x, y, z = g.CellCenter3(0, 0, 1)
	if !g.BlockValue3D(x, y, z, 10) {
		t.Fatal("BlockValue3D missed a cell center")
	}
	// A point outside the grid is rejected.
	if g.BlockValue3D(100, 100, 100, 1) {
		t.Error("BlockValue3D accepted a point outside the grid")
	}

	if n := g.BlockCount3D(1, 1, 0); n != 3 {
		t.Errorf("BlockCount3D = %d, want 3", n)
	}
	if got := g.BlockedValue3D(1, 1, 0, BlockMean); math.Abs(got-3) > 1e-9 {
		t.Errorf("BlockMean = %g, want 3", got)
	}
	if got := g.BlockedValue3D(1, 1, 0, BlockSum); math.Abs(got-9) > 1e-9 {
		t.Errorf("BlockSum = %g, want 9", got)
	}
	if got := g.BlockedValue3D(1, 1, 0, BlockMin); got != 1 {
		t.Errorf("BlockMin = %g, want 1", got)
	}
	if got := g.BlockedValue3D(1, 1, 0, BlockMax); got != 6 {
		t.Errorf("BlockMax = %g, want 6", got)
	}
	if got := g.BlockedValue3D(0, 0, 1, BlockMean); got != 10 {
		t.Errorf("BlockMean single value = %g, want 10", got)
	}

	// Untouched cells reduce to NaN with the statistics functions
	// and 0 with the sum.
	if got := g.BlockedValue3D(2, 2, 1, BlockMean); !math.IsNaN(got) {
		t.Errorf("BlockMean of empty cell = %g, want NaN", got)
	}
	if got := g.BlockedValue3D(2, 2, 1, BlockSum); got != 0 {
		t.Errorf("BlockSum of empty cell = %g, want 0", got)
	}

	g.ResetBlocking()
	if n := g.BlockCount3D(1, 1, 0); n != 0 {
		t.Errorf("BlockCount3D after reset = %d, want 0", n)
	}
}

func TestBlocking2D(t *testing.T) {
	g := regularGrid(t, 3, 3, 2)
	g.AllocBlocking(2)

	// Values at different depths land in the same column.
	if !g.BlockValue2D(2.5, 2.5, 4) {
		t.Fatal("BlockValue2D missed a column")
	}
	if !g.BlockValue2D(2.5, 2.5, 8) {
		t.Fatal("BlockValue2D missed a column")
	}
	if g.BlockValue2D(100, 100, 1) {
		t.Error("BlockValue2D accepted a point outside the grid")
	}

	if n := g.BlockCount2D(1, 1); n != 2 {
		t.Errorf("BlockCount2D = %d, want 2", n)
	}
	if got := g.BlockedValue2D(1, 1, BlockMean); math.Abs(got-6) > 1e-9 {
		t.Errorf("BlockMean = %g, want 6", got)
	}
	if n := g.BlockCount2D(0, 0); n != 0 {
		t.Errorf("BlockCount2D untouched column = %d, want 0", n)
	}
}

func TestBlockingDimensionChecks(t *testing.T) {
	g := regularGrid(t, 2, 2, 1)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for invalid blocking dimension")
			}
		}()
		g.AllocBlocking(4)
	}()

	g.AllocBlocking(2)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for 3D call in 2D mode")
			}
		}()
		g.BlockValue3D(1, 1, 1, 1)
	}()
}
