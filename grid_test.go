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
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/ctessum/geom"
)

func TestNewGridRegular(t *testing.T) {
	grid, err := NewGridRegular("test", 3, 2, 1000, 2000, -1500, 0)
	if err != nil {
		t.Fatal(err)
	}
	if grid.Nx != 3 || grid.Ny != 2 {
		t.Errorf("grid is %d × %d; want 3 × 2", grid.Nx, grid.Ny)
	}
	if len(grid.Cells) != 6 {
		t.Fatalf("grid has %d cells; want 6", len(grid.Cells))
	}
	wantExtent := geom.Polygon{{
		{X: -1500, Y: 0}, {X: 1500, Y: 0},
		{X: 1500, Y: 4000}, {X: -1500, Y: 4000},
	}}
	if !reflect.DeepEqual(grid.Extent, wantExtent) {
		t.Errorf("extent = %+v; want %+v", grid.Extent, wantExtent)
	}
	// Cells are ordered row-major with row 0 at the minimum Y edge.
	cell := grid.Cells[4]
	if cell.Row != 1 || cell.Col != 1 {
		t.Errorf("cell 4 is (%d, %d); want (1, 1)", cell.Row, cell.Col)
	}
	wantCell := geom.Polygon{{
		{X: -500, Y: 2000}, {X: 500, Y: 2000},
		{X: 500, Y: 4000}, {X: -500, Y: 4000},
	}}
	if !reflect.DeepEqual(cell.Polygonal, wantCell) {
		t.Errorf("cell 4 geometry = %+v; want %+v", cell.Polygonal, wantCell)
	}
}

func TestNewGridBounds(t *testing.T) {
	xBounds := [][2]float64{{0, 1}, {1, 2.5}, {2.5, 3}}
	yBounds := [][2]float64{{-1, 0}, {0, 2}}
	grid, err := NewGridBounds("test", xBounds, yBounds)
	if err != nil {
		t.Fatal(err)
	}
	areas := grid.CellAreas()
	want := [][]float64{{1, 1.5, 0.5}, {2, 3, 1}}
	for j, row := range want {
		for i, a := range row {
			if v := areas.Get(j, i); math.Abs(v-a) > testTolerance {
				t.Errorf("cell area (%d, %d) = %g; want %g", j, i, v, a)
			}
		}
	}
}

func TestNewGridBounds_invalid(t *testing.T) {
	valid := [][2]float64{{0, 1}, {1, 2}}
	tests := []struct {
		name             string
		xBounds, yBounds [][2]float64
	}{
		{"empty axis", nil, valid},
		{"decreasing bound", [][2]float64{{1, 0}}, valid},
		{"zero-width bound", [][2]float64{{1, 1}}, valid},
		{"overlapping bounds", [][2]float64{{0, 1}, {0.5, 2}}, valid},
		{"non-finite bound", valid, [][2]float64{{0, math.Inf(1)}}},
		{"NaN bound", valid, [][2]float64{{math.NaN(), 1}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewGridBounds("test", test.xBounds, test.yBounds)
			var geomErr *GeometryError
			if !errors.As(err, &geomErr) {
				t.Fatalf("error = %v; want *GeometryError", err)
			}
		})
	}
}

func TestNewGridRegular_invalid(t *testing.T) {
	if _, err := NewGridRegular("test", 0, 2, 1, 1, 0, 0); err == nil {
		t.Error("expected error for zero cell count")
	}
	if _, err := NewGridRegular("test", 2, 2, -1, 1, 0, 0); err == nil {
		t.Error("expected error for negative cell dimension")
	}
	if _, err := NewGridRegular("test", 2, 2, 1, 1, math.NaN(), 0); err == nil {
		t.Error("expected error for non-finite origin")
	}
}
