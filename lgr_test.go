/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'lgr_test.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/myrseth/ert/keyword"
)

func appendEGRIDMember(f *keyword.File, nx, ny, nz, seqNr int) {
	zcorn, coord, actnum := rawRegular(nx, ny, nz, 1, 1)
	f.Append(keyword.NewInt("GRIDHEAD", []int{1, nx, ny, nz, seqNr}))
	f.Append(keyword.NewFloat("COORD", coord))
	f.Append(keyword.NewFloat("ZCORN", zcorn))
	f.Append(keyword.NewInt("ACTNUM", actnum))
}

// writeNestedEGRID builds an EGRID file with a 2x2x1 top level grid,
// one refinement of cell (0,0,0) and one nested refinement inside the
// first one.
func writeNestedEGRID(t *testing.T) string {
	t.Helper()
	f := keyword.NewFile()
	appendEGRIDMember(f, 2, 2, 1, 0)

	appendEGRIDMember(f, 2, 2, 1, 1)
	f.Append(keyword.NewChar("LGR", []string{"LGR1"}))
	f.Append(keyword.NewChar("LGRPARNT", []string{""}))
	f.Append(keyword.NewInt("HOSTNUM", []int{1, 1, 1, 1}))

	appendEGRIDMember(f, 1, 1, 1, 2)
	f.Append(keyword.NewChar("LGR", []string{"NEST"}))
	f.Append(keyword.NewChar("LGRPARNT", []string{"LGR1"}))
	f.Append(keyword.NewInt("HOSTNUM", []int{1}))

	path := filepath.Join(t.TempDir(), "CASE.EGRID")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	if err := keyword.WriteUnformatted(fh, f); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadNestedEGRID(t *testing.T) {
	path := writeNestedEGRID(t)
	g, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name() != path {
		t.Errorf("Name() = %q, want %q", g.Name(), path)
	}
	if g.LGRCount() != 2 {
		t.Fatalf("LGRCount() = %d, want 2", g.LGRCount())
	}

	lgr1, err := g.LGR("LGR1")
	if err != nil {
		t.Fatal(err)
	}
	nest, err := g.LGR("NEST")
	if err != nil {
		t.Fatal(err)
	}

	// Name lookup strips surrounding whitespace.
	if !g.HasLGR("  LGR1 ") {
		t.Error("HasLGR with padded name = false")
	}
	if _, err := g.LGR("NOSUCH"); err == nil {
		t.Error("expected error for unknown refinement name")
	}

	// The position enumeration does not count the top level grid,
	// so position n holds sequence number n+1.
	if got := g.LGRByPosition(0); got != lgr1 {
		t.Errorf("LGRByPosition(0) = %v, want LGR1", got.Name())
	}
	if got := g.LGRByPosition(1); got != nest {
		t.Errorf("LGRByPosition(1) = %v, want NEST", got.Name())
	}
	if lgr1.SequenceNumber() != 1 || nest.SequenceNumber() != 2 {
		t.Errorf("sequence numbers %d, %d, want 1, 2", lgr1.SequenceNumber(), nest.SequenceNumber())
	}

	if want := []string{"LGR1", "NEST"}; !reflect.DeepEqual(g.LGRNames(), want) {
		t.Errorf("LGRNames() = %v, want %v", g.LGRNames(), want)
	}
	if want := []string{"LGR1"}; !reflect.DeepEqual(g.ChildNames(), want) {
		t.Errorf("ChildNames() = %v, want %v", g.ChildNames(), want)
	}
	if want := []string{"NEST"}; !reflect.DeepEqual(lgr1.ChildNames(), want) {
		t.Errorf("LGR1 ChildNames() = %v, want %v", lgr1.ChildNames(), want)
	}
}

func TestLGRHierarchy(t *testing.T) {
	g, err := Load(writeNestedEGRID(t))
	if err != nil {
		t.Fatal(err)
	}
	lgr1, _ := g.LGR("LGR1")
	nest, _ := g.LGR("NEST")

	if got := g.CellLGR(0); got != lgr1 {
		t.Errorf("CellLGR(0) = %v, want LGR1", got)
	}
	if got := g.CellLGR(1); got != nil {
		t.Errorf("CellLGR(1) = %v, want nil", got.Name())
	}
	// Descending one level: the first cell of LGR1 holds the
	// nested refinement.
	if got := lgr1.CellLGR(0); got != nest {
		t.Errorf("LGR1 CellLGR(0) = %v, want NEST", got)
	}

	if lgr1.Parent() != g || lgr1.GlobalGrid() != g {
		t.Error("LGR1 parent and global grid should both be the top level grid")
	}
	if nest.Parent() != lgr1 {
		t.Error("NEST parent should be LGR1")
	}
	if nest.GlobalGrid() != g {
		t.Error("NEST global grid should be the top level grid")
	}
	if g.Parent() != nil || g.GlobalGrid() != nil {
		t.Error("top level grid has no parent and no global grid")
	}

	// Host cell backreferences.
	for globalIndex := 0; globalIndex < lgr1.Size(); globalIndex++ {
		if host := lgr1.HostCell(globalIndex); host != 0 {
			t.Errorf("LGR1 HostCell(%d) = %d, want 0", globalIndex, host)
		}
	}
	if host := nest.HostCell(0); host != 0 {
		t.Errorf("NEST HostCell(0) = %d, want 0", host)
	}
	if host := g.HostCell(0); host != -1 {
		t.Errorf("top level HostCell(0) = %d, want -1", host)
	}
}

func TestLGRLookupOnRefinementPanics(t *testing.T) {
	g, err := Load(writeNestedEGRID(t))
	if err != nil {
		t.Fatal(err)
	}
	lgr1, _ := g.LGR("LGR1")

	defer func() {
		if recover() == nil {
			t.Error("expected panic for refinement lookup on refinement grid")
		}
	}()
	lgr1.LGRCount()
}

func TestLoadEGRIDUnknownParent(t *testing.T) {
	f := keyword.NewFile()
	appendEGRIDMember(f, 2, 2, 1, 0)
	appendEGRIDMember(f, 1, 1, 1, 1)
	f.Append(keyword.NewChar("LGR", []string{"LGR1"}))
	f.Append(keyword.NewChar("LGRPARNT", []string{"MISSING"}))
	f.Append(keyword.NewInt("HOSTNUM", []int{1}))

	path := filepath.Join(t.TempDir(), "BAD.EGRID")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := keyword.WriteUnformatted(fh, f); err != nil {
		t.Fatal(err)
	}
	fh.Close()

	if _, err := Load(path); err == nil {
		t.Error("expected error for refinement with unknown parent")
	}
}
