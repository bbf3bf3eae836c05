/*
   Copyright (C) 2011  Statoil ASA, Norway.

   The file 'grid.go' is part of ERT - Ensemble based Reservoir Tool.

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

// Package ert implements an in-memory representation of ECLIPSE corner
// point reservoir grids. Grids are loaded from EGRID or legacy GRID
// files, including any local grid refinements the file contains, and
// support index translation between (i,j,k), global and active index
// spaces along with geometric point location queries.
package ert

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/myrseth/ert/keyword"
)

// Version is the library version.
const Version = "0.1.0"

// Grid holds one corner point grid. The top level grid loaded from a
// file owns every local grid refinement found in the file; refinement
// grids are reachable from the top level grid only.
type Grid struct {
	name       string
	parentName string
	nx, ny, nz int
	size       int
	nactive    int
	cells      []cell

	indexMap    []int
	invIndexMap []int

	// Refinement bookkeeping. lgrs and lgrIndex are only populated
	// on the top level grid; lgrs holds every grid in the file in
	// order of occurrence with the top level grid itself at
	// position 0.
	seqNr    int
	global   *Grid
	parent   *Grid
	lgrs     []*Grid
	lgrIndex map[string]*Grid
	children map[string]*Grid

	useMapaxes   bool
	origo        [2]float64
	unitX, unitY [2]float64

	taintFunc TaintFunc

	// Accumulators for value blocking, allocated on demand.
	blockDim       int
	blockSize      int
	blockValues    [][]float64
	lastBlockIndex int
}

// An Option adjusts grid construction.
type Option func(*gridOptions)

type gridOptions struct {
	taint TaintFunc
}

// WithTaintFunc replaces the heuristic used to flag cells with broken
// geometry during construction.
func WithTaintFunc(f TaintFunc) Option {
	return func(o *gridOptions) { o.taint = f }
}

func newGrid(global *Grid, nx, ny, nz, seqNr int, taint TaintFunc) *Grid {
	g := &Grid{
		nx:        nx,
		ny:        ny,
		nz:        nz,
		size:      nx * ny * nz,
		seqNr:     seqNr,
		global:    global,
		taintFunc: taint,
		children:  make(map[string]*Grid),
	}
	g.cells = make([]cell, g.size)
	for i := range g.cells {
		g.cells[i].hostCell = -1
	}
	if global != nil {
		// Refinements inherit the map projection of the top
		// level grid.
		g.useMapaxes = global.useMapaxes
		g.origo = global.origo
		g.unitX = global.unitX
		g.unitY = global.unitY
	} else {
		g.unitX = [2]float64{1, 0}
		g.unitY = [2]float64{0, 1}
		g.lgrs = []*Grid{g}
		g.lgrIndex = make(map[string]*Grid)
	}
	return g
}

func (g *Grid) initMapaxes(mapaxes []float64) error {
	if g.global != nil {
		panic("ert: MAPAXES on a refinement grid")
	}
	if len(mapaxes) != 6 {
		return fmt.Errorf("ert: MAPAXES must have 6 elements - got %d", len(mapaxes))
	}
	unitY := [2]float64{mapaxes[0] - mapaxes[2], mapaxes[1] - mapaxes[3]}
	unitX := [2]float64{mapaxes[4] - mapaxes[2], mapaxes[5] - mapaxes[3]}
	normX := 1 / math.Sqrt(unitX[0]*unitX[0]+unitX[1]*unitX[1])
	normY := 1 / math.Sqrt(unitY[0]*unitY[0]+unitY[1]*unitY[1])
	g.unitX = [2]float64{unitX[0] * normX, unitX[1] * normX}
	g.unitY = [2]float64{unitY[0] * normY, unitY[1] * normY}
	g.origo = [2]float64{mapaxes[2], mapaxes[3]}
	g.useMapaxes = true
	return nil
}

// initCornerPoint fills in the cell geometry from the pillar
// representation. The work is split on j intervals across
// GOMAXPROCS goroutines; the intervals are disjoint so the goroutines
// touch disjoint cells.
func (g *Grid) initCornerPoint(zcorn, coord []float64, actnum []int) {
	nprocs := runtime.GOMAXPROCS(-1)
	if nprocs > g.ny {
		nprocs = g.ny
	}
	done := make(chan struct{})
	for p := 0; p < nprocs; p++ {
		go func(p int) {
			j1 := g.ny * p / nprocs
			j2 := g.ny * (p + 1) / nprocs
			g.initCornerPointRange(j1, j2, zcorn, coord, actnum)
			done <- struct{}{}
		}(p)
	}
	for p := 0; p < nprocs; p++ {
		<-done
	}
}

func (g *Grid) initCornerPointRange(j1, j2 int, zcorn, coord []float64, actnum []int) {
	nx, ny, nz := g.nx, g.ny, g.nz
	var pillars [4][2]point

	for j := j1; j < j2; j++ {
		for i := 0; i < nx; i++ {
			var pillarIndex [4]int
			pillarIndex[0] = 6 * (j*(nx+1) + i)
			pillarIndex[1] = 6 * (j*(nx+1) + i + 1)
			pillarIndex[2] = 6 * ((j+1)*(nx+1) + i)
			pillarIndex[3] = 6 * ((j+1)*(nx+1) + i + 1)

			for ip := 0; ip < 4; ip++ {
				index := pillarIndex[ip]
				pillars[ip][0] = point{coord[index], coord[index+1], coord[index+2]}
				pillars[ip][1] = point{coord[index+3], coord[index+4], coord[index+5]}
			}

			for k := 0; k < nz; k++ {
				var x, y, z [4][2]float64

				for c := 0; c < 2; c++ {
					z[0][c] = zcorn[k*8*nx*ny+j*4*nx+2*i+c*4*nx*ny]
					z[1][c] = zcorn[k*8*nx*ny+j*4*nx+2*i+1+c*4*nx*ny]
					z[2][c] = zcorn[k*8*nx*ny+j*4*nx+2*nx+2*i+c*4*nx*ny]
					z[3][c] = zcorn[k*8*nx*ny+j*4*nx+2*nx+2*i+1+c*4*nx*ny]
				}

				for ip := 0; ip < 4; ip++ {
					pillarCrossPlanes(&pillars[ip], z[ip], &x[ip], &y[ip])
				}

				g.setCellCornerPoint(i, j, k, x, y, z, actnum)
			}
		}
	}
}

func pillarCrossPlanes(pillar *[2]point, z [2]float64, x, y *[2]float64) {
	ex := pillar[1].x - pillar[0].x
	ey := pillar[1].y - pillar[0].y
	ez := pillar[1].z - pillar[0].z

	for k := 0; k < 2; k++ {
		t := (z[k] - pillar[0].z) / ez
		x[k] = pillar[0].x + t*ex
		y[k] = pillar[0].y + t*ey
	}
}

func (g *Grid) setCellCornerPoint(i, j, k int, x, y, z [4][2]float64, actnum []int) {
	globalIndex := g.GlobalIndex(i, j, k)
	c := &g.cells[globalIndex]

	for iz := 0; iz < 2; iz++ {
		for ip := 0; ip < 4; ip++ {
			corner := &c.corners[ip+iz*4]
			*corner = point{x[ip][iz], y[ip][iz], z[ip][iz]}
			if g.useMapaxes {
				corner.mapaxesTransform(g.origo, g.unitX, g.unitY)
			}
		}
	}

	// For dual porosity runs actnum also takes the values 2 and 3.
	if actnum[globalIndex] > 0 {
		c.active = true
	}
}

func (g *Grid) setCenters() {
	for i := range g.cells {
		g.cells[i].setCenter()
	}
}

func (g *Grid) taintCells() {
	f := g.taintFunc
	if f == nil {
		f = defaultTaint
	}
	for i := range g.cells {
		g.cells[i].taint(f)
	}
}

// updateIndex rebuilds the mappings between global and active index
// space. Active indices are assigned in order of increasing global
// index.
func (g *Grid) updateIndex() {
	activeIndex := 0
	g.indexMap = make([]int, g.size)
	for globalIndex := range g.cells {
		c := &g.cells[globalIndex]
		if c.active {
			c.activeIndex = activeIndex
			g.indexMap[globalIndex] = activeIndex
			activeIndex++
		} else {
			c.activeIndex = -1
			g.indexMap[globalIndex] = -1
		}
	}
	g.nactive = activeIndex

	g.invIndexMap = make([]int, g.nactive)
	for globalIndex, activeIndex := range g.indexMap {
		if activeIndex >= 0 {
			g.invIndexMap[activeIndex] = globalIndex
		}
	}
}

func (g *Grid) finalize() {
	g.setCenters()
	g.updateIndex()
	g.taintCells()
}

// FromRawData builds a grid directly from corner point arrays without
// going through a grid file. zcorn must hold 8*nx*ny*nz corner depths,
// coord 6*(nx+1)*(ny+1) pillar coordinates and actnum nx*ny*nz
// activity flags; mapaxes is either nil or the 6 element map
// projection. Refinements cannot be expressed this way.
func FromRawData(nx, ny, nz int, zcorn, coord []float64, actnum []int, mapaxes []float64, opts ...Option) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("ert: invalid grid dimensions %dx%dx%d", nx, ny, nz)
	}
	if len(zcorn) != 8*nx*ny*nz {
		return nil, fmt.Errorf("ert: ZCORN has %d elements - expected %d", len(zcorn), 8*nx*ny*nz)
	}
	if len(coord) != 6*(nx+1)*(ny+1) {
		return nil, fmt.Errorf("ert: COORD has %d elements - expected %d", len(coord), 6*(nx+1)*(ny+1))
	}
	if len(actnum) != nx*ny*nz {
		return nil, fmt.Errorf("ert: ACTNUM has %d elements - expected %d", len(actnum), nx*ny*nz)
	}

	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := newGrid(nil, nx, ny, nz, 0, o.taint)
	if mapaxes != nil {
		if err := g.initMapaxes(mapaxes); err != nil {
			return nil, err
		}
	}
	g.initCornerPoint(zcorn, coord, actnum)
	g.finalize()
	return g, nil
}

// FromKeywords builds a grid from already loaded GRIDHEAD, ZCORN,
// COORD and ACTNUM keywords; mapaxes may be nil.
func FromKeywords(gridhead, zcorn, coord, actnum, mapaxes *keyword.Keyword, opts ...Option) (*Grid, error) {
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}
	return fromEGRIDKeywords(nil, gridhead, zcorn, coord, actnum, mapaxes, 0, o.taint)
}

func fromEGRIDKeywords(global *Grid, gridhead, zcorn, coord, actnum, mapaxes *keyword.Keyword, seqNr int, taint TaintFunc) (*Grid, error) {
	if gridhead.Size() < 4 {
		return nil, fmt.Errorf("ert: GRIDHEAD has %d elements - expected at least 4", gridhead.Size())
	}
	gtype := gridhead.IntAt(0)
	nx := gridhead.IntAt(1)
	ny := gridhead.IntAt(2)
	nz := gridhead.IntAt(3)
	if gtype != 1 {
		return nil, fmt.Errorf("ert: grid type %d - only corner point grids are supported", gtype)
	}
	if zcorn.Size() != 8*nx*ny*nz {
		return nil, fmt.Errorf("ert: ZCORN has %d elements - expected %d", zcorn.Size(), 8*nx*ny*nz)
	}
	if coord.Size() != 6*(nx+1)*(ny+1) {
		return nil, fmt.Errorf("ert: COORD has %d elements - expected %d", coord.Size(), 6*(nx+1)*(ny+1))
	}
	if actnum.Size() != nx*ny*nz {
		return nil, fmt.Errorf("ert: ACTNUM has %d elements - expected %d", actnum.Size(), nx*ny*nz)
	}

	g := newGrid(global, nx, ny, nz, seqNr, taint)
	if mapaxes != nil {
		if err := g.initMapaxes(mapaxes.Floats()); err != nil {
			return nil, err
		}
	}
	g.initCornerPoint(zcorn.Floats(), coord.Floats(), actnum.Ints())
	g.finalize()
	return g, nil
}

func loadEGRIDMember(global *Grid, f *keyword.File, seqNr int, taint TaintFunc) (*Grid, error) {
	gridhead, err := f.Named("GRIDHEAD", seqNr)
	if err != nil {
		return nil, err
	}
	zcorn, err := f.Named("ZCORN", seqNr)
	if err != nil {
		return nil, err
	}
	coord, err := f.Named("COORD", seqNr)
	if err != nil {
		return nil, err
	}
	actnum, err := f.Named("ACTNUM", seqNr)
	if err != nil {
		return nil, err
	}
	var mapaxes *keyword.Keyword
	if seqNr == 0 && f.Has("MAPAXES") {
		if mapaxes, err = f.Named("MAPAXES", 0); err != nil {
			return nil, err
		}
	}

	g, err := fromEGRIDKeywords(global, gridhead, zcorn, coord, actnum, mapaxes, seqNr, taint)
	if err != nil {
		return nil, err
	}
	if seqNr > 0 {
		if err := g.setLGRNameEGRID(f, seqNr); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Grid) setLGRNameEGRID(f *keyword.File, seqNr int) error {
	nameKw, err := f.Named("LGR", seqNr-1)
	if err != nil {
		return err
	}
	g.name = nameKw.StringAt(0)
	if f.Has("LGRPARNT") {
		parentKw, err := f.Named("LGRPARNT", seqNr-1)
		if err != nil {
			return err
		}
		g.parentName = parentKw.StringAt(0)
	}
	return nil
}

func (g *Grid) setLGRNameGRID(f *keyword.File, seqNr int) error {
	nameKw, err := f.Named("LGR", seqNr-1)
	if err != nil {
		return err
	}
	g.name = nameKw.StringAt(0)
	if nameKw.Size() > 1 {
		// For refinements hosted directly by the top level grid
		// the parent field holds GLOBAL, or is left blank.
		parent := nameKw.StringAt(1)
		if parent != "" && parent != "GLOBAL" {
			g.parentName = parent
		}
	}
	return nil
}

// addLGR registers lgr in the top level ownership list and the name
// lookup. The position in the list always equals the sequence number
// assigned from the order of occurrence in the file.
func (g *Grid) addLGR(lgr *Grid) {
	if len(g.lgrs) != lgr.seqNr {
		panic(fmt.Sprintf("ert: refinement sequence out of order: position %d, sequence number %d", len(g.lgrs), lgr.seqNr))
	}
	g.lgrs = append(g.lgrs, lgr)
	g.lgrIndex[lgr.name] = lgr
}

// installLGREGRID hooks lgr into its host grid. hostnum holds one
// entry per refinement cell with the 1-offset global index of the
// host cell containing it.
func installLGREGRID(host, lgr *Grid, hostnum []int) error {
	if len(hostnum) != lgr.size {
		return fmt.Errorf("ert: HOSTNUM has %d elements - refinement %s has %d cells", len(hostnum), lgr.name, lgr.size)
	}
	for globalIndex := range lgr.cells {
		c := &lgr.cells[globalIndex]
		if !c.active {
			continue
		}
		hostIndex := hostnum[globalIndex] - 1
		if hostIndex < 0 || hostIndex >= host.size {
			return fmt.Errorf("ert: HOSTNUM entry %d out of range for host grid", hostnum[globalIndex])
		}
		host.cells[hostIndex].lgr = lgr.seqNr
		c.hostCell = hostIndex
	}
	host.children[lgr.name] = lgr
	lgr.parent = host
	return nil
}

// installLGRGRID hooks lgr into its host grid using the host cell
// indices loaded from the COORDS records.
func installLGRGRID(host, lgr *Grid) error {
	for globalIndex := range lgr.cells {
		c := &lgr.cells[globalIndex]
		if !c.active {
			continue
		}
		if c.hostCell < 0 || c.hostCell >= host.size {
			return fmt.Errorf("ert: refinement %s cell %d has host cell %d out of range", lgr.name, globalIndex, c.hostCell)
		}
		host.cells[c.hostCell].lgr = lgr.seqNr
	}
	host.children[lgr.name] = lgr
	lgr.parent = host
	return nil
}

func (g *Grid) hostGridFor(lgr *Grid) (*Grid, error) {
	if lgr.parentName == "" {
		return g, nil
	}
	host, ok := g.lgrIndex[lgr.parentName]
	if !ok {
		return nil, fmt.Errorf("ert: refinement %s names unknown parent %s", lgr.name, lgr.parentName)
	}
	return host, nil
}

func loadEGRID(f *keyword.File, o gridOptions) (*Grid, error) {
	numGrid := f.Num("GRIDHEAD")
	if numGrid == 0 {
		return nil, fmt.Errorf("ert: no GRIDHEAD keyword - not an EGRID file")
	}
	main, err := loadEGRIDMember(nil, f, 0, o.taint)
	if err != nil {
		return nil, err
	}
	for seqNr := 1; seqNr < numGrid; seqNr++ {
		lgr, err := loadEGRIDMember(main, f, seqNr, o.taint)
		if err != nil {
			return nil, err
		}
		main.addLGR(lgr)

		hostnum, err := f.Named("HOSTNUM", seqNr-1)
		if err != nil {
			return nil, err
		}
		host, err := main.hostGridFor(lgr)
		if err != nil {
			return nil, err
		}
		if err := installLGREGRID(host, lgr, hostnum.Ints()); err != nil {
			return nil, err
		}
	}
	return main, nil
}

func loadGRIDMember(global *Grid, f *keyword.File, cellOffset *int, seqNr int, taint TaintFunc) (*Grid, error) {
	dimens, err := f.Named("DIMENS", seqNr)
	if err != nil {
		return nil, err
	}
	if dimens.Size() < 3 {
		return nil, fmt.Errorf("ert: DIMENS has %d elements - expected at least 3", dimens.Size())
	}
	nx := dimens.IntAt(0)
	ny := dimens.IntAt(1)
	nz := dimens.IntAt(2)
	g := newGrid(global, nx, ny, nz, seqNr, taint)

	if seqNr == 0 && f.Has("MAPAXES") {
		mapaxes, err := f.Named("MAPAXES", 0)
		if err != nil {
			return nil, err
		}
		if err := g.initMapaxes(mapaxes.Floats()); err != nil {
			return nil, err
		}
	}

	// Each grid contributes one COORDS/CORNERS pair per cell;
	// cellOffset tracks how many pairs earlier grids in the file
	// have consumed.
	numCoords := f.Num("COORDS") - *cellOffset
	if numCoords > g.size {
		numCoords = g.size
	}
	for index := 0; index < numCoords; index++ {
		coords, err := f.Named("COORDS", index+*cellOffset)
		if err != nil {
			return nil, err
		}
		corners, err := f.Named("CORNERS", index+*cellOffset)
		if err != nil {
			return nil, err
		}
		if err := g.setCellGRID(coords, corners); err != nil {
			return nil, err
		}
	}
	*cellOffset += numCoords

	if seqNr > 0 {
		if err := g.setLGRNameGRID(f, seqNr); err != nil {
			return nil, err
		}
	}
	g.finalize()
	return g, nil
}

// setCellGRID fills in one cell from a COORDS/CORNERS record pair.
// COORDS holds 4, 5 or 7 integers:
//
//	coords[0..2]  i,j,k with ECLIPSE 1-offset
//	coords[3]     global cell number (ignored here)
//	coords[4]     1 for active cells
//	coords[5]     host cell for refinement cells
//	coords[6]     coarsening group (not treated)
//
// When coords[4] is absent every cell is active.
func (g *Grid) setCellGRID(coords, corners *keyword.Keyword) error {
	if coords.Size() < 3 {
		return fmt.Errorf("ert: COORDS has %d elements - expected at least 3", coords.Size())
	}
	if corners.Size() != 24 {
		return fmt.Errorf("ert: CORNERS has %d elements - expected 24", corners.Size())
	}
	i := coords.IntAt(0) - 1
	j := coords.IntAt(1) - 1
	k := coords.IntAt(2) - 1
	if i < 0 || i >= g.nx || j < 0 || j >= g.ny || k < 0 || k >= g.nz {
		return fmt.Errorf("ert: COORDS cell (%d,%d,%d) outside %dx%dx%d grid", i+1, j+1, k+1, g.nx, g.ny, g.nz)
	}
	c := &g.cells[g.GlobalIndex(i, j, k)]

	switch coords.Size() {
	case 4:
		c.active = true
	case 5:
		c.active = coords.IntAt(4) == 1
	case 7:
		c.active = coords.IntAt(4) == 1
		c.hostCell = coords.IntAt(5) - 1
	default:
		return fmt.Errorf("ert: COORDS has %d elements - expected 4, 5 or 7", coords.Size())
	}

	for corner := 0; corner < 8; corner++ {
		p := &c.corners[corner]
		*p = point{
			corners.FloatAt(3 * corner),
			corners.FloatAt(3*corner + 1),
			corners.FloatAt(3*corner + 2),
		}
		if g.useMapaxes {
			p.mapaxesTransform(g.origo, g.unitX, g.unitY)
		}
	}
	return nil
}

func loadGRID(f *keyword.File, o gridOptions) (*Grid, error) {
	numGrid := f.Num("DIMENS")
	if numGrid == 0 {
		return nil, fmt.Errorf("ert: no DIMENS keyword - not a GRID file")
	}
	cellOffset := 0
	main, err := loadGRIDMember(nil, f, &cellOffset, 0, o.taint)
	if err != nil {
		return nil, err
	}
	for seqNr := 1; seqNr < numGrid; seqNr++ {
		lgr, err := loadGRIDMember(main, f, &cellOffset, seqNr, o.taint)
		if err != nil {
			return nil, err
		}
		main.addLGR(lgr)

		host, err := main.hostGridFor(lgr)
		if err != nil {
			return nil, err
		}
		if err := installLGRGRID(host, lgr); err != nil {
			return nil, err
		}
	}
	return main, nil
}

func egridName(path string) bool {
	ext := strings.ToUpper(filepath.Ext(path))
	return ext == ".EGRID" || ext == ".FEGRID"
}

func gridName(path string) bool {
	ext := strings.ToUpper(filepath.Ext(path))
	return ext == ".GRID" || ext == ".FGRID"
}

// Load reads the grid file at path, which must be an EGRID or GRID
// file, formatted or unformatted. The returned grid is the top level
// grid with any refinements from the file installed.
func Load(path string, opts ...Option) (*Grid, error) {
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}

	f, err := keyword.Load(path)
	if err != nil {
		return nil, err
	}

	var g *Grid
	switch {
	case egridName(path):
		g, err = loadEGRID(f, o)
	case gridName(path):
		g, err = loadGRID(f, o)
	default:
		return nil, fmt.Errorf("ert: %s is not a GRID or EGRID file", path)
	}
	if err != nil {
		return nil, err
	}
	g.name = path
	return g, nil
}

// caseExtensions is the probe order used when resolving an ECLIPSE
// base name to a grid file.
var caseExtensions = []string{".EGRID", ".GRID", ".FEGRID", ".FGRID"}

// CaseFilename resolves caseInput to an existing grid file. caseInput
// can be the grid file itself, another file from the same ECLIPSE case
// or a plain base name without extension.
func CaseFilename(caseInput string) (string, bool) {
	if egridName(caseInput) || gridName(caseInput) {
		if _, err := os.Stat(caseInput); err == nil {
			return caseInput, true
		}
		return "", false
	}
	base := caseInput
	if ext := filepath.Ext(caseInput); ext != "" {
		base = strings.TrimSuffix(caseInput, ext)
	}
	for _, ext := range caseExtensions {
		path := base + ext
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// GridExists reports whether LoadCase would find a grid file for
// caseInput.
func GridExists(caseInput string) bool {
	_, ok := CaseFilename(caseInput)
	return ok
}

// LoadCase loads the grid belonging to an ECLIPSE case; see
// CaseFilename for how the grid file is located.
func LoadCase(caseInput string, opts ...Option) (*Grid, error) {
	path, ok := CaseFilename(caseInput)
	if !ok {
		return nil, fmt.Errorf("ert: no grid file found for case %s", caseInput)
	}
	return Load(path, opts...)
}

// Equal reports whether the two grids have identical dimensions,
// activity and cell geometry. Refinements are not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.nx != other.nx || g.ny != other.ny || g.nz != other.nz {
		return false
	}
	if g.nactive != other.nactive {
		return false
	}
	for i := range g.cells {
		c1 := &g.cells[i]
		c2 := &other.cells[i]
		if c1.active != c2.active || c1.corners != c2.corners {
			return false
		}
	}
	return true
}

// Summary returns a short human readable description of the grid and
// its refinements.
func (g *Grid) Summary() string {
	var b strings.Builder
	g.summarize(&b, 0)
	return b.String()
}

func (g *Grid) summarize(b *strings.Builder, depth int) {
	indent := strings.Repeat("   ", depth)
	fmt.Fprintf(b, "%sGrid: %s\n", indent, g.name)
	fmt.Fprintf(b, "%s   Dimensions: %d x %d x %d\n", indent, g.nx, g.ny, g.nz)
	fmt.Fprintf(b, "%s   Total cells: %d\n", indent, g.size)
	fmt.Fprintf(b, "%s   Active cells: %d\n", indent, g.nactive)
	if g.seqNr == 0 && len(g.lgrs) > 1 {
		fmt.Fprintf(b, "%s   Refinements: %d\n", indent, len(g.lgrs)-1)
		for _, lgr := range g.lgrs[1:] {
			lgr.summarize(b, depth+1)
		}
	}
}
