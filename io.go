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
	"fmt"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
	"github.com/ctessum/sparse"
)

// ReadRegions reads all of the polygonal records in the given
// shapefile. Records of any other geometry type are an error. The
// shapes are returned in file order, untransformed: they are assumed to
// already share a coordinate space with any grid they will be weighted
// against.
func ReadRegions(filename string) ([]geom.Polygonal, error) {
	dec, err := shp.NewDecoder(filename)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	var regions []geom.Polygonal
	for {
		g, _, more := dec.DecodeRowFields()
		if !more {
			break
		}
		p, ok := g.(geom.Polygonal)
		if !ok {
			return nil, fmt.Errorf("regionstat: reading %s: record %d is a %T; region shapes need to be polygons",
				filename, len(regions), g)
		}
		regions = append(regions, p)
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("regionstat: reading %s: %v", filename, err)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("regionstat: reading %s: no polygon records", filename)
	}
	return regions, nil
}

// ReadCellValues reads a data value for each cell of grid g from the
// given shapefile, which must have "row" and "col" attribute columns
// addressing grid cells, such as the files written by
// Grid.WriteShapefile. The value for each cell is taken from the named
// attribute column; cells with no record keep a value of zero.
func ReadCellValues(filename, column string, g *Grid) (*sparse.DenseArray, error) {
	dec, err := shp.NewDecoder(filename)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	data := sparse.ZerosDense(g.Ny, g.Nx)
	rec := 0
	for {
		_, fields, more := dec.DecodeRowFields("row", "col", column)
		if !more {
			break
		}
		row, err := cellIndex(fields, "row")
		if err != nil {
			return nil, fmt.Errorf("regionstat: reading %s record %d: %v", filename, rec, err)
		}
		col, err := cellIndex(fields, "col")
		if err != nil {
			return nil, fmt.Errorf("regionstat: reading %s record %d: %v", filename, rec, err)
		}
		if row < 0 || row >= g.Ny || col < 0 || col >= g.Nx {
			return nil, fmt.Errorf("regionstat: reading %s record %d: cell (%d, %d) is outside the %d × %d grid",
				filename, rec, row, col, g.Ny, g.Nx)
		}
		s, ok := fields[column]
		if !ok {
			return nil, fmt.Errorf("regionstat: reading %s: missing attribute column %s", filename, column)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, fmt.Errorf("regionstat: reading %s record %d: column %s: %v", filename, rec, column, err)
		}
		data.Set(v, row, col)
		rec++
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("regionstat: reading %s: %v", filename, err)
	}
	return data, nil
}

func cellIndex(fields map[string]string, name string) (int, error) {
	s, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("missing attribute column %s", name)
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("column %s: %v", name, err)
	}
	return i, nil
}

// MergeRegions unions multiple region shapes into one, so that area
// shared by overlapping shapes is only counted once.
func MergeRegions(regions []geom.Polygonal) geom.Polygonal {
	var merged geom.Polygonal
	for _, r := range regions {
		if merged == nil {
			merged = r
			continue
		}
		merged = merged.Union(r)
	}
	return merged
}
