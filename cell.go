/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'cell.go' is part of ERT - Ensemble based Reservoir Tool.

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

import "math"

// The cells in a corner point grid are hexahedra described by eight
// corner points. The corners are numbered with the four corners of the
// lower horizon first:
//
//	   6---7      upper layer
//	   |   |
//	   4---5
//
//	   2---3      lower layer
//	   |   |
//	   0---1
type point struct {
	x, y, z float64
}

func (p *point) mapaxesTransform(origo, unitX, unitY [2]float64) {
	px := p.x
	py := p.y
	p.x = origo[0] + px*unitX[0] + py*unitY[0]
	p.y = origo[1] + px*unitX[1] + py*unitY[1]
}

func distance(p1, p2 point) float64 {
	dx := p1.x - p2.x
	dy := p1.y - p2.y
	dz := p1.z - p2.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

type cell struct {
	active      bool
	activeIndex int
	corners     [8]point
	center      point

	// Sequence number of the refinement grid occupying this cell,
	// zero when the cell is not subdivided.
	lgr int

	// Global index of the cell in the host grid containing this
	// cell, -1 for cells in the top level grid.
	hostCell int

	// The cell geometry is flagged as broken, and the cell is
	// skipped by the geometric queries.
	tainted bool
}

// A TaintFunc identifies corner points which indicate that a cell has
// broken geometry. A cell is marked tainted when the function returns
// true for any of its eight corners. Inactive cells in exported grid
// files are frequently left with their corners collapsed onto the
// origin of the map plane, which is what the default function looks
// for.
type TaintFunc func(x, y, z float64) bool

func defaultTaint(x, y, z float64) bool {
	return x == 0 && y == 0
}

func (c *cell) taint(f TaintFunc) {
	for i := 0; i < 8; i++ {
		p := c.corners[i]
		if f(p.x, p.y, p.z) {
			c.tainted = true
			return
		}
	}
}

func (c *cell) setCenter() {
	var sum point
	for i := 0; i < 8; i++ {
		sum.x += c.corners[i].x
		sum.y += c.corners[i].y
		sum.z += c.corners[i].z
	}
	c.center = point{sum.x / 8, sum.y / 8, sum.z / 8}
}

func (c *cell) volume() float64 {
	var v float64
	for method := 0; method < 2; method++ {
		for tet := 0; tet < 12; tet++ {
			v += c.tetVolume(method, tet)
		}
	}
	return v * 0.5
}

func (c *cell) tetVolume(method, tet int) float64 {
	perm := &tetrahedronPermutations[method][tet]
	return tetVolume(c.center, c.corners[perm[0]], c.corners[perm[1]], c.corners[perm[2]])
}

// contains reports whether p is inside the cell. Cells with broken or
// collapsed geometry never contain anything.
func (c *cell) contains(p point) bool {
	if c.tainted {
		return false
	}
	if c.volume() <= 0 {
		return false
	}

	minP := c.corners[0]
	maxP := c.corners[0]
	for i := 1; i < 8; i++ {
		q := c.corners[i]
		minP.x = math.Min(minP.x, q.x)
		minP.y = math.Min(minP.y, q.y)
		minP.z = math.Min(minP.z, q.z)
		maxP.x = math.Max(maxP.x, q.x)
		maxP.y = math.Max(maxP.y, q.y)
		maxP.z = math.Max(maxP.z, q.z)
	}
	if p.x < minP.x || p.x > maxP.x || p.y < minP.y || p.y > maxP.y || p.z < minP.z || p.z > maxP.z {
		return false
	}

	const method = 0
	for tet := 0; tet < 12; tet++ {
		perm := &tetrahedronPermutations[method][tet]
		if tetContains(c.center, c.corners[perm[0]], c.corners[perm[1]], c.corners[perm[2]], p) {
			return true
		}
	}
	return false
}

// layerContains reports whether the map plane point (x, y) falls
// inside the quadrilateral spanned by four of the cell corners, with
// the corner offset selecting the lower (0) or upper (4) horizon.
func (c *cell) layerContains(x, y float64, offset int) bool {
	if c.tainted {
		return false
	}
	p0 := c.corners[offset]
	p1 := c.corners[offset+1]
	p2 := c.corners[offset+2]
	p3 := c.corners[offset+3]
	if triangleContains(p0.x, p0.y, p1.x, p1.y, p2.x, p2.y, x, y) {
		return true
	}
	return triangleContains(p1.x, p1.y, p2.x, p2.y, p3.x, p3.y, x, y)
}
