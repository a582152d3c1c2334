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
	"math"
	"os"
	"path/filepath"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/sparse"
	goshp "github.com/jonas-p/go-shp"
)

// Grid is a 2-D rectilinear grid of rectangular cells. Row indices follow
// the Y axis and column indices follow the X axis, with row 0 and column 0
// at the minimum coordinate corner, so arrays associated with the grid
// have shape (Ny, Nx).
type Grid struct {
	Name   string
	Nx, Ny int
	Cells  []*GridCell
	Extent geom.Polygon

	index *rtree.Rtree
}

// GridCell is an individual cell in a grid.
type GridCell struct {
	geom.Polygonal
	Row, Col int
}

// NewGridRegular creates a grid where all cells are the same size:
// nx × ny cells of dimensions dx × dy, with the lower-left grid corner
// at (x0, y0).
func NewGridRegular(name string, nx, ny int, dx, dy, x0, y0 float64) (*Grid, error) {
	if nx <= 0 || ny <= 0 {
		return nil, geometryErrorf("grid %s: cell counts must be positive but are (%d, %d)", name, nx, ny)
	}
	if !(dx > 0) || !(dy > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return nil, geometryErrorf("grid %s: cell dimensions must be positive and finite but are (%g, %g)", name, dx, dy)
	}
	if !isFinite(x0) || !isFinite(y0) {
		return nil, geometryErrorf("grid %s: origin (%g, %g) is not finite", name, x0, y0)
	}
	xBounds := make([][2]float64, nx)
	for i := range xBounds {
		xBounds[i] = [2]float64{x0 + float64(i)*dx, x0 + float64(i+1)*dx}
	}
	yBounds := make([][2]float64, ny)
	for j := range yBounds {
		yBounds[j] = [2]float64{y0 + float64(j)*dy, y0 + float64(j+1)*dy}
	}
	return NewGridBounds(name, xBounds, yBounds)
}

// NewGridBounds creates a grid from explicit cell bounds along each axis,
// where each bound pair is {min, max}. Bounds along an axis must be
// finite, strictly increasing, and non-overlapping; the grid is the cross
// product of the two axes.
func NewGridBounds(name string, xBounds, yBounds [][2]float64) (*Grid, error) {
	if err := checkBounds(name, "x", xBounds); err != nil {
		return nil, err
	}
	if err := checkBounds(name, "y", yBounds); err != nil {
		return nil, err
	}
	g := &Grid{
		Name:  name,
		Nx:    len(xBounds),
		Ny:    len(yBounds),
		index: rtree.NewTree(25, 50),
	}
	g.Cells = make([]*GridCell, 0, g.Nx*g.Ny)
	for j, yb := range yBounds {
		for i, xb := range xBounds {
			cell := &GridCell{
				Row: j,
				Col: i,
				Polygonal: geom.Polygon{{
					{X: xb[0], Y: yb[0]}, {X: xb[1], Y: yb[0]},
					{X: xb[1], Y: yb[1]}, {X: xb[0], Y: yb[1]},
				}},
			}
			g.index.Insert(cell)
			g.Cells = append(g.Cells, cell)
		}
	}
	xMin, xMax := xBounds[0][0], xBounds[len(xBounds)-1][1]
	yMin, yMax := yBounds[0][0], yBounds[len(yBounds)-1][1]
	g.Extent = geom.Polygon{{
		{X: xMin, Y: yMin}, {X: xMax, Y: yMin},
		{X: xMax, Y: yMax}, {X: xMin, Y: yMax},
	}}
	return g, nil
}

func checkBounds(name, axis string, bounds [][2]float64) error {
	if len(bounds) == 0 {
		return geometryErrorf("grid %s: %s axis has no cell bounds", name, axis)
	}
	for i, b := range bounds {
		if !isFinite(b[0]) || !isFinite(b[1]) {
			return geometryErrorf("grid %s: %s axis bound %d (%g, %g) is not finite", name, axis, i, b[0], b[1])
		}
		if b[0] >= b[1] {
			return geometryErrorf("grid %s: %s axis bound %d (%g, %g) is not increasing", name, axis, i, b[0], b[1])
		}
		if i > 0 && b[0] < bounds[i-1][1] {
			return geometryErrorf("grid %s: %s axis bounds %d and %d overlap", name, axis, i-1, i)
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// CellAreas returns the area of each grid cell as a (Ny, Nx) array.
func (g *Grid) CellAreas() *sparse.DenseArray {
	o := sparse.ZerosDense(g.Ny, g.Nx)
	for _, cell := range g.Cells {
		o.Set(cell.Area(), cell.Row, cell.Col)
	}
	return o
}

// Shape returns the shape (Ny, Nx) of arrays associated with the grid.
func (g *Grid) Shape() []int {
	return []int{g.Ny, g.Nx}
}

// WriteShapefile writes the grid cells to a shapefile named after the
// grid in directory outdir, with attribute columns for the row and
// column indices and, if weights is non-nil, the cell weight.
func (g *Grid) WriteShapefile(outdir string, weights *sparse.DenseArray) error {
	if weights != nil {
		if err := sameShape(g.Shape(), weights.Shape); err != nil {
			return err
		}
	}
	for _, ext := range []string{".shp", ".prj", ".dbf", ".shx"} {
		os.Remove(filepath.Join(outdir, g.Name+ext))
	}
	fields := []goshp.Field{
		goshp.NumberField("row", 10),
		goshp.NumberField("col", 10),
	}
	if weights != nil {
		fields = append(fields, goshp.FloatField("weight", 18, 10))
	}
	shpf, err := shp.NewEncoderFromFields(filepath.Join(outdir, g.Name+".shp"),
		goshp.POLYGON, fields...)
	if err != nil {
		return err
	}
	for _, cell := range g.Cells {
		data := []interface{}{cell.Row, cell.Col}
		if weights != nil {
			data = append(data, weights.Get(cell.Row, cell.Col))
		}
		if err := shpf.EncodeFields(cell.Polygonal, data...); err != nil {
			return err
		}
	}
	shpf.Close()
	return nil
}

func sameShape(want, got []int) error {
	if len(want) != len(got) {
		return &DimensionError{Want: want, Got: got}
	}
	for i, w := range want {
		if got[i] != w {
			return &DimensionError{Want: want, Got: got}
		}
	}
	return nil
}
