/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'tetra.go' is part of ERT - Ensemble based Reservoir Tool.

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

/*
   A hexahedral cell is decomposed into twelve tetrahedra which all
   share the cell center as apex. Each row below lists the three cell
   corners making up the base of one tetrahedron. There is no unique
   way to do this decomposition; the two alternatives below give
   different volumes for skewed cells, and volume computations average
   over both.
*/

var tetrahedronPermutations = [2][12][3]int{
	{{0, 2, 6},
		{0, 4, 6},
		{0, 4, 5},
		{0, 1, 5},
		{1, 3, 7},
		{1, 5, 7},
		{2, 3, 7},
		{2, 6, 7},
		{0, 1, 2},
		{1, 2, 3},
		{4, 5, 6},
		{5, 6, 7}},
	{{0, 2, 4},
		{2, 4, 6},
		{0, 4, 1},
		{4, 5, 1},
		{1, 3, 5},
		{3, 5, 7},
		{2, 3, 6},
		{3, 6, 7},
		{0, 1, 3},
		{0, 2, 3},
		{4, 5, 7},
		{4, 6, 7}},
}

func det3(a, b, c point) float64 {
	return a.x*(b.y*c.z-b.z*c.y) - a.y*(b.x*c.z-b.z*c.x) + a.z*(b.x*c.y-b.y*c.x)
}

// tetSignedVolume is the signed volume of the tetrahedron spanned by
// the four points; the sign depends on the orientation of p1, p2, p3
// as seen from p0.
func tetSignedVolume(p0, p1, p2, p3 point) float64 {
	a := point{p1.x - p0.x, p1.y - p0.y, p1.z - p0.z}
	b := point{p2.x - p0.x, p2.y - p0.y, p2.z - p0.z}
	c := point{p3.x - p0.x, p3.y - p0.y, p3.z - p0.z}
	return det3(a, b, c) / 6
}

func tetVolume(p0, p1, p2, p3 point) float64 {
	return math.Abs(tetSignedVolume(p0, p1, p2, p3))
}

// tetContains reports whether p lies inside the tetrahedron with
// vertices p0..p3. Points on a face count as inside.
func tetContains(p0, p1, p2, p3, p point) bool {
	d0 := tetSignedVolume(p0, p1, p2, p3)
	if d0 == 0 {
		return false
	}
	d1 := tetSignedVolume(p, p1, p2, p3)
	d2 := tetSignedVolume(p0, p, p2, p3)
	d3 := tetSignedVolume(p0, p1, p, p3)
	d4 := tetSignedVolume(p0, p1, p2, p)
	if d0 < 0 {
		return d1 <= 0 && d2 <= 0 && d3 <= 0 && d4 <= 0
	}
	return d1 >= 0 && d2 >= 0 && d3 >= 0 && d4 >= 0
}

const areaEpsilon = 1e-10

func triangleArea(x0, y0, x1, y1, x2, y2 float64) float64 {
	return ((x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)) / 2
}

// triangleContains reports whether the point (x, y) is inside the
// triangle in the map plane; degenerate triangles contain nothing.
func triangleContains(x0, y0, x1, y1, x2, y2, x, y float64) bool {
	vt := math.Abs(triangleArea(x0, y0, x1, y1, x2, y2))
	if vt < areaEpsilon {
		return false
	}
	v1 := math.Abs(triangleArea(x0, y0, x1, y1, x, y))
	v2 := math.Abs(triangleArea(x0, y0, x, y, x2, y2))
	v3 := math.Abs(triangleArea(x, y, x1, y1, x2, y2))
	return math.Abs(v1+v2+v3-vt) < areaEpsilon
}
