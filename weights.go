/*
Copyright © 2026 the RegionStat authors.
This file is part of RegionStat.

RegionStat is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

RegionStat is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with RegionStat.  If not, see <http://www.gnu.org/licenses/>.
*/

package regionstat

import (
	"runtime"
	"sync"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
)

// weightTolerance is the floating-point tolerance used when snapping
// area fractions to exactly 0 or 1.
const weightTolerance = 1.e-10

// AreaWeights returns a (g.Ny, g.Nx) array where each element is the
// fraction of the corresponding grid cell's area that lies within
// region, so every element is within [0, 1]. Cells that do not overlap
// the region's bounding box are skipped without exact clipping.
//
// The region may have multiple rings, including interior holes, but
// must be simple: rings that intersect themselves are not detected and
// give undefined weights. A region with fewer than 3 distinct vertices
// per ring or with zero total area is rejected with a *GeometryError.
func AreaWeights(g *Grid, region geom.Polygonal) (*sparse.DenseArray, error) {
	if g == nil || len(g.Cells) == 0 {
		return nil, geometryErrorf("empty grid")
	}
	if err := checkRegion(region); err != nil {
		return nil, err
	}
	weights := sparse.ZerosDense(g.Ny, g.Nx)
	cells := g.index.SearchIntersect(region.Bounds())

	// Cells are independent of each other, and each worker writes to a
	// disjoint set of array elements.
	nprocs := runtime.GOMAXPROCS(-1)
	var wg sync.WaitGroup
	for procnum := 0; procnum < nprocs; procnum++ {
		wg.Add(1)
		go func(procnum int) {
			defer wg.Done()
			for i := procnum; i < len(cells); i += nprocs {
				cell := cells[i].(*GridCell)
				weights.Set(cellFraction(cell, region), cell.Row, cell.Col)
			}
		}(procnum)
	}
	wg.Wait()
	return weights, nil
}

// cellFraction clips region to cell and returns the fraction of the
// cell's area that remains, snapped to [0, 1].
func cellFraction(cell *GridCell, region geom.Polygonal) float64 {
	isect := cell.Intersection(region)
	if isect == nil {
		return 0
	}
	frac := isect.Area() / cell.Area()
	switch {
	case frac < weightTolerance:
		return 0
	case frac > 1-weightTolerance:
		return 1
	}
	return frac
}

// checkRegion rejects degenerate region polygons.
func checkRegion(region geom.Polygonal) error {
	if region == nil {
		return geometryErrorf("nil region")
	}
	b := region.Bounds()
	if !isFinite(b.Min.X) || !isFinite(b.Min.Y) || !isFinite(b.Max.X) || !isFinite(b.Max.Y) {
		return geometryErrorf("region bounds %+v are not finite", b)
	}
	for _, poly := range region.Polygons() {
		for i, ring := range poly {
			if n := distinctPoints(ring); n < 3 {
				return geometryErrorf("region ring %d has %d distinct vertices; need at least 3", i, n)
			}
		}
	}
	if region.Area() == 0 {
		return geometryErrorf("region has zero area")
	}
	return nil
}

// distinctPoints counts the unique vertices in a ring, treating a
// repeated closing vertex the same as an open ring.
func distinctPoints(ring geom.Path) int {
	seen := make(map[geom.Point]struct{}, len(ring))
	for _, p := range ring {
		seen[p] = struct{}{}
	}
	return len(seen)
}
