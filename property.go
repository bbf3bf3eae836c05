/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'property.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"io"

	"github.com/ctessum/sparse"

	"github.com/myrseth/ert/keyword"
)

/*
   Petrophysical properties loaded from the file family come in two
   sizes: nx*ny*nz elements when the property covers every cell
   (typically from INIT files), or nactive elements when it is a
   solution vector covering active cells only (typically from restart
   files). The lookup functions dispatch on the size; any other size
   is an error.
*/

// propertyIndex translates (i,j,k) to a lookup index for data with the
// given number of elements. The second return value is false when the
// size fits neither index space. For active sized data and an inactive
// cell the index is -1.
func (g *Grid) propertyIndex(size, i, j, k int) (int, bool) {
	switch size {
	case g.size:
		return g.GlobalIndex(i, j, k), true
	case g.nactive:
		return g.ActiveIndex3(i, j, k), true
	}
	return 0, false
}

// Property looks up the value of kw in cell (i,j,k); kw must be
// numeric and have either nx*ny*nz or nactive elements. Looking up an
// inactive cell in an active sized keyword returns -1.
func (g *Grid) Property(kw *keyword.Keyword, i, j, k int) (float64, error) {
	if !kw.Numeric() {
		return 0, fmt.Errorf("ert: cannot look up %s keyword %s as a property", kw.Type(), kw.Name)
	}
	lookupIndex, ok := g.propertyIndex(kw.Size(), i, j, k)
	if !ok {
		return 0, fmt.Errorf("ert: keyword %s has %d elements - grid has %d cells, %d active", kw.Name, kw.Size(), g.size, g.nactive)
	}
	if lookupIndex < 0 {
		return -1, nil
	}
	return kw.FloatAt(lookupIndex), nil
}

// ColumnProperty returns the values of kw along column (i,j), indexed
// by k. For active sized keywords the entries of inactive cells are
// set to fill.
func (g *Grid) ColumnProperty(kw *keyword.Keyword, i, j int, fill float64) ([]float64, error) {
	if !kw.Numeric() {
		return nil, fmt.Errorf("ert: cannot look up %s keyword %s as a property", kw.Type(), kw.Name)
	}
	column := make([]float64, g.nz)
	for k := 0; k < g.nz; k++ {
		lookupIndex, ok := g.propertyIndex(kw.Size(), i, j, k)
		if !ok {
			return nil, fmt.Errorf("ert: keyword %s has %d elements - grid has %d cells, %d active", kw.Name, kw.Size(), g.size, g.nactive)
		}
		if lookupIndex < 0 {
			column[k] = fill
		} else {
			column[k] = kw.FloatAt(lookupIndex)
		}
	}
	return column, nil
}

// DenseProperty expands kw to a dense array with shape [nz][ny][nx],
// so that the flat element index equals the global cell index. For
// active sized keywords the entries of inactive cells are set to
// fill.
func (g *Grid) DenseProperty(kw *keyword.Keyword, fill float64) (*sparse.DenseArray, error) {
	if !kw.Numeric() {
		return nil, fmt.Errorf("ert: cannot expand %s keyword %s as a property", kw.Type(), kw.Name)
	}
	out := sparse.ZerosDense(g.nz, g.ny, g.nx)
	switch kw.Size() {
	case g.size:
		copy(out.Elements, kw.Floats())
	case g.nactive:
		for globalIndex := range out.Elements {
			out.Elements[globalIndex] = fill
		}
		for activeIndex, globalIndex := range g.invIndexMap {
			out.Elements[globalIndex] = kw.FloatAt(activeIndex)
		}
	default:
		return nil, fmt.Errorf("ert: keyword %s has %d elements - grid has %d cells, %d active", kw.Name, kw.Size(), g.size, g.nactive)
	}
	return out, nil
}

// CompactProperty gathers the active cell values of a full sized
// dense array, as produced by DenseProperty, into an array indexed by
// active index.
func (g *Grid) CompactProperty(full *sparse.DenseArray) (*sparse.DenseArray, error) {
	if len(full.Elements) != g.size {
		return nil, fmt.Errorf("ert: dense array has %d elements - grid has %d cells", len(full.Elements), g.size)
	}
	out := sparse.ZerosDense(g.nactive)
	for activeIndex, globalIndex := range g.invIndexMap {
		out.Elements[activeIndex] = full.Elements[globalIndex]
	}
	return out, nil
}

// RegionCells returns the indices of the cells where region holds
// regionValue; region must have one element per cell in the grid.
// With activeOnly set, inactive cells are skipped even when the region
// value matches. With exportActive set the returned indices are active
// indices instead of global indices.
func (g *Grid) RegionCells(region *sparse.DenseArrayInt, regionValue int, activeOnly, exportActive bool) ([]int, error) {
	if len(region.Elements) != g.size {
		return nil, fmt.Errorf("ert: region array has %d elements - grid has %d cells", len(region.Elements), g.size)
	}
	var cells []int
	for globalIndex, value := range region.Elements {
		if value != regionValue {
			continue
		}
		if activeOnly && g.indexMap[globalIndex] < 0 {
			continue
		}
		if exportActive {
			cells = append(cells, g.indexMap[globalIndex])
		} else {
			cells = append(cells, globalIndex)
		}
	}
	return cells, nil
}

// RegionKeyword converts an integer region keyword, for example
// FIPNUM or EQLNUM, to the dense form consumed by RegionCells.
func (g *Grid) RegionKeyword(kw *keyword.Keyword) (*sparse.DenseArrayInt, error) {
	if kw.Type() != keyword.Int {
		return nil, fmt.Errorf("ert: region keyword %s must be of integer type", kw.Name)
	}
	if kw.Size() != g.size {
		return nil, fmt.Errorf("ert: region keyword %s has %d elements - grid has %d cells", kw.Name, kw.Size(), g.size)
	}
	out := sparse.ZerosDenseInt(g.nz, g.ny, g.nx)
	copy(out.Elements, kw.Ints())
	return out, nil
}

// Scatter expands an active sized keyword to a full sized copy,
// filling the entries of inactive cells with fill. Full sized
// keywords are returned unchanged.
func (g *Grid) Scatter(kw *keyword.Keyword, fill float64) (*keyword.Keyword, error) {
	if kw.Size() == g.size {
		return kw, nil
	}
	if kw.Size() != g.nactive {
		return nil, fmt.Errorf("ert: keyword %s has %d elements - grid has %d cells, %d active", kw.Name, kw.Size(), g.size, g.nactive)
	}

	switch kw.Type() {
	case keyword.Int:
		data := make([]int, g.size)
		for i := range data {
			data[i] = int(fill)
		}
		for activeIndex, globalIndex := range g.invIndexMap {
			data[globalIndex] = kw.IntAt(activeIndex)
		}
		return keyword.NewInt(kw.Name, data), nil
	case keyword.Float, keyword.Double:
		data := make([]float64, g.size)
		for i := range data {
			data[i] = fill
		}
		for activeIndex, globalIndex := range g.invIndexMap {
			data[globalIndex] = kw.FloatAt(activeIndex)
		}
		if kw.Type() == keyword.Double {
			return keyword.NewDouble(kw.Name, data), nil
		}
		return keyword.NewFloat(kw.Name, data), nil
	}
	return nil, fmt.Errorf("ert: cannot scatter %s keyword %s", kw.Type(), kw.Name)
}

// ExportGRDECL writes kw to w in GRDECL text form. Active sized
// keywords are scattered to the full grid first, with fill in the
// entries of inactive cells.
func (g *Grid) ExportGRDECL(kw *keyword.Keyword, w io.Writer, fill float64) error {
	full, err := g.Scatter(kw, fill)
	if err != nil {
		return err
	}
	return full.WriteGRDECL(w)
}
