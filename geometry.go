/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'geometry.go' is part of ERT - Ensemble based Reservoir Tool.

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
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/geom/proj"
)

// Tainted reports whether the cell with the given global index has
// been flagged with broken geometry. Tainted cells are ignored by the
// containment queries.
func (g *Grid) Tainted(globalIndex int) bool {
	g.assertGlobal(globalIndex)
	return g.cells[globalIndex].tainted
}

// CellVolume returns the volume of the cell with the given global
// index. The volume is computed by summing tetrahedral decompositions
// of the cell and averaging over both decomposition schemes, which
// gives a well defined result also for moderately skewed cells.
func (g *Grid) CellVolume(globalIndex int) float64 {
	g.assertGlobal(globalIndex)
	return g.cells[globalIndex].volume()
}

// CellVolume3 returns the volume of cell (i,j,k).
func (g *Grid) CellVolume3(i, j, k int) float64 {
	return g.CellVolume(g.GlobalIndex(i, j, k))
}

// CellContains reports whether the point (x,y,z) falls inside the cell
// with the given global index.
func (g *Grid) CellContains(globalIndex int, x, y, z float64) bool {
	g.assertGlobal(globalIndex)
	return g.cells[globalIndex].contains(point{x, y, z})
}

// CellContains3 reports whether the point (x,y,z) falls inside cell
// (i,j,k).
func (g *Grid) CellContains3(i, j, k int, x, y, z float64) bool {
	return g.CellContains(g.GlobalIndex(i, j, k), x, y, z)
}

// CellCenter returns the geometric center of the cell with the given
// global index.
func (g *Grid) CellCenter(globalIndex int) (x, y, z float64) {
	g.assertGlobal(globalIndex)
	c := &g.cells[globalIndex]
	return c.center.x, c.center.y, c.center.z
}

// CellCenter3 returns the geometric center of cell (i,j,k).
func (g *Grid) CellCenter3(i, j, k int) (x, y, z float64) {
	return g.CellCenter(g.GlobalIndex(i, j, k))
}

// CellCenterActive returns the geometric center of the cell with the
// given active index.
func (g *Grid) CellCenterActive(activeIndex int) (x, y, z float64) {
	return g.CellCenter(g.GlobalFromActive(activeIndex))
}

// CellCorner returns the coordinates of one of the eight corners of
// the cell with the given global index; see the cell documentation for
// the corner numbering.
func (g *Grid) CellCorner(globalIndex, corner int) (x, y, z float64) {
	g.assertGlobal(globalIndex)
	if corner < 0 || corner >= 8 {
		panic("ert: cell corner must be in [0,8)")
	}
	p := g.cells[globalIndex].corners[corner]
	return p.x, p.y, p.z
}

// CellCorner3 returns the coordinates of one corner of cell (i,j,k).
func (g *Grid) CellCorner3(i, j, k, corner int) (x, y, z float64) {
	return g.CellCorner(g.GlobalIndex(i, j, k), corner)
}

// Distance returns the component wise distance between the centers of
// the two cells.
func (g *Grid) Distance(globalIndex1, globalIndex2 int) (dx, dy, dz float64) {
	g.assertGlobal(globalIndex1)
	g.assertGlobal(globalIndex2)
	c1 := &g.cells[globalIndex1].center
	c2 := &g.cells[globalIndex2].center
	return c2.x - c1.x, c2.y - c1.y, c2.z - c1.z
}

// Depth returns the depth of the center of the cell with the given
// global index.
func (g *Grid) Depth(globalIndex int) float64 {
	g.assertGlobal(globalIndex)
	return g.cells[globalIndex].center.z
}

// Depth3 returns the depth of the center of cell (i,j,k).
func (g *Grid) Depth3(i, j, k int) float64 {
	return g.Depth(g.GlobalIndex(i, j, k))
}

// Top returns the depth of the top surface of the cell with the given
// global index, averaged over the four top corners.
func (g *Grid) Top(globalIndex int) float64 {
	g.assertGlobal(globalIndex)
	c := &g.cells[globalIndex]
	var depth float64
	for ij := 0; ij < 4; ij++ {
		depth += c.corners[ij].z
	}
	return depth * 0.25
}

// Top3 returns the top depth of cell (i,j,k).
func (g *Grid) Top3(i, j, k int) float64 {
	return g.Top(g.GlobalIndex(i, j, k))
}

// ColumnTop returns the top depth of the uppermost cell in column
// (i,j).
func (g *Grid) ColumnTop(i, j int) float64 {
	return g.Top(g.GlobalIndex(i, j, 0))
}

// TopActive returns the top depth of the cell with the given active
// index.
func (g *Grid) TopActive(activeIndex int) float64 {
	return g.Top(g.GlobalFromActive(activeIndex))
}

// Bottom returns the depth of the bottom surface of the cell with the
// given global index, averaged over the four bottom corners.
func (g *Grid) Bottom(globalIndex int) float64 {
	g.assertGlobal(globalIndex)
	c := &g.cells[globalIndex]
	var depth float64
	for ij := 0; ij < 4; ij++ {
		depth += c.corners[ij+4].z
	}
	return depth * 0.25
}

// Bottom3 returns the bottom depth of cell (i,j,k).
func (g *Grid) Bottom3(i, j, k int) float64 {
	return g.Bottom(g.GlobalIndex(i, j, k))
}

// ColumnBottom returns the bottom depth of the lowermost cell in
// column (i,j).
func (g *Grid) ColumnBottom(i, j int) float64 {
	return g.Bottom(g.GlobalIndex(i, j, g.nz-1))
}

// BottomActive returns the bottom depth of the cell with the given
// active index.
func (g *Grid) BottomActive(activeIndex int) float64 {
	return g.Bottom(g.GlobalFromActive(activeIndex))
}

// Thickness returns the vertical extent of the cell with the given
// global index, averaged over the four corner pillars.
func (g *Grid) Thickness(globalIndex int) float64 {
	g.assertGlobal(globalIndex)
	c := &g.cells[globalIndex]
	var thickness float64
	for ij := 0; ij < 4; ij++ {
		thickness += c.corners[ij+4].z - c.corners[ij].z
	}
	return thickness * 0.25
}

// Thickness3 returns the thickness of cell (i,j,k).
func (g *Grid) Thickness3(i, j, k int) float64 {
	return g.Thickness(g.GlobalIndex(i, j, k))
}

// LocateDepth returns the k index of the cell in column (i,j) which
// contains the given depth. If depth lies above the column the result
// is -1, if it lies at or below the bottom of the column the result is
// -nz.
func (g *Grid) LocateDepth(depth float64, i, j int) int {
	if depth < g.ColumnTop(i, j) {
		return -1
	}
	if depth >= g.ColumnBottom(i, j) {
		return -g.nz
	}
	bottom := g.Top3(i, j, 0)
	for k := 0; k < g.nz; k++ {
		top := bottom
		bottom = g.Bottom3(i, j, k)
		if depth >= top && depth < bottom {
			return k
		}
	}
	panic("ert: depth scan failed on non monotonic column")
}

// GlobalIndexFromXY scans layer k for a cell whose horizon contains
// the map plane point (x,y); lowerLayer selects the lower horizon of
// the cells instead of the upper one. It returns the global index of
// the first matching cell, or -1 when no cell contains the point.
func (g *Grid) GlobalIndexFromXY(k int, lowerLayer bool, x, y float64) int {
	offset := 4
	if lowerLayer {
		offset = 0
	}
	for j := 0; j < g.ny; j++ {
		for i := 0; i < g.nx; i++ {
			globalIndex := g.GlobalIndex(i, j, k)
			if g.cells[globalIndex].layerContains(x, y, offset) {
				return globalIndex
			}
		}
	}
	return -1
}

// GlobalIndexFromXYTop locates (x,y) on the top surface of the
// reservoir.
func (g *Grid) GlobalIndexFromXYTop(x, y float64) int {
	return g.GlobalIndexFromXY(g.nz-1, false, x, y)
}

// GlobalIndexFromXYBottom locates (x,y) on the bottom surface of the
// reservoir.
func (g *Grid) GlobalIndexFromXYBottom(x, y float64) int {
	return g.GlobalIndexFromXY(0, true, x, y)
}

// A SurfaceIndex answers repeated map plane lookups against one layer
// of the grid. The cell footprints are kept in an R-tree so a lookup
// only tests the handful of cells whose bounding boxes cover the
// point, instead of scanning the whole layer.
type SurfaceIndex struct {
	g      *Grid
	offset int
	tree   *rtree.Rtree
}

type surfaceCell struct {
	bounds      *geom.Bounds
	globalIndex int
}

func (sc *surfaceCell) Bounds() *geom.Bounds { return sc.bounds }

func (sc *surfaceCell) Similar(g geom.Geom, tolerance float64) bool {
	return sc.bounds.Similar(g, tolerance)
}

func (sc *surfaceCell) Transform(t proj.Transformer) (geom.Geom, error) {
	return sc.bounds.Transform(t)
}

func (sc *surfaceCell) Len() int { return sc.bounds.Len() }

func (sc *surfaceCell) Points() func() geom.Point { return sc.bounds.Points() }

// NewSurfaceIndex builds a map plane lookup structure over layer k;
// lowerLayer selects the lower horizon of the cells.
func (g *Grid) NewSurfaceIndex(k int, lowerLayer bool) *SurfaceIndex {
	if k < 0 || k >= g.nz {
		panic("ert: layer index outside grid")
	}
	offset := 4
	if lowerLayer {
		offset = 0
	}
	si := &SurfaceIndex{
		g:      g,
		offset: offset,
		tree:   rtree.NewTree(25, 50),
	}
	for j := 0; j < g.ny; j++ {
		for i := 0; i < g.nx; i++ {
			globalIndex := g.GlobalIndex(i, j, k)
			c := &g.cells[globalIndex]
			b := geom.NewBounds()
			for corner := offset; corner < offset+4; corner++ {
				p := c.corners[corner]
				b.Extend(geom.NewBoundsPoint(geom.Point{X: p.x, Y: p.y}))
			}
			si.tree.Insert(&surfaceCell{bounds: b, globalIndex: globalIndex})
		}
	}
	return si
}

// TopSurfaceIndex builds a SurfaceIndex over the top surface of the
// reservoir.
func (g *Grid) TopSurfaceIndex() *SurfaceIndex {
	return g.NewSurfaceIndex(g.nz-1, false)
}

// BottomSurfaceIndex builds a SurfaceIndex over the bottom surface of
// the reservoir.
func (g *Grid) BottomSurfaceIndex() *SurfaceIndex {
	return g.NewSurfaceIndex(0, true)
}

// GlobalIndexFromXY returns the global index of a cell containing the
// map plane point (x,y), or -1 when no cell contains it.
func (si *SurfaceIndex) GlobalIndexFromXY(x, y float64) int {
	p := geom.NewBoundsPoint(geom.Point{X: x, Y: y})
	best := -1
	for _, hit := range si.tree.SearchIntersect(p) {
		sc := hit.(*surfaceCell)
		if si.g.cells[sc.globalIndex].layerContains(x, y, si.offset) {
			if best == -1 || sc.globalIndex < best {
				best = sc.globalIndex
			}
		}
	}
	return best
}
