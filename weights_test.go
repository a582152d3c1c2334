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
	"testing"

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
)

const testTolerance = 1.e-9

func rect(xMin, yMin, xMax, yMax float64) geom.Polygon {
	return geom.Polygon{{
		{X: xMin, Y: yMin}, {X: xMax, Y: yMin},
		{X: xMax, Y: yMax}, {X: xMin, Y: yMax},
	}}
}

func checkWeights(t *testing.T, want [][]float64, got *sparse.DenseArray) {
	t.Helper()
	if len(got.Shape) != 2 || got.Shape[0] != len(want) || got.Shape[1] != len(want[0]) {
		t.Fatalf("weight shape: want (%d, %d) but have %v", len(want), len(want[0]), got.Shape)
	}
	for j, row := range want {
		for i, w := range row {
			if v := got.Get(j, i); math.Abs(v-w) > testTolerance {
				t.Errorf("weight (%d, %d) = %g; want %g", j, i, v, w)
			}
		}
	}
}

func TestAreaWeights(t *testing.T) {
	grid, err := NewGridRegular("test", 2, 2, 1, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		region geom.Polygonal
		want   [][]float64
	}{
		{
			name:   "bottom-left cell",
			region: rect(0, 0, 1, 1),
			want:   [][]float64{{1, 0}, {0, 0}},
		},
		{
			name:   "full extent",
			region: rect(0, 0, 2, 2),
			want:   [][]float64{{1, 1}, {1, 1}},
		},
		{
			name:   "larger than extent",
			region: rect(-5, -5, 5, 5),
			want:   [][]float64{{1, 1}, {1, 1}},
		},
		{
			name:   "disjoint",
			region: rect(10, 10, 12, 12),
			want:   [][]float64{{0, 0}, {0, 0}},
		},
		{
			name:   "bottom half",
			region: rect(0, 0, 2, 0.5),
			want:   [][]float64{{0.5, 0.5}, {0, 0}},
		},
		{
			name: "triangle in one cell",
			region: geom.Polygon{{
				{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
			}},
			want: [][]float64{{0.5, 0}, {0, 0}},
		},
		{
			name: "square with hole",
			region: geom.Polygon{
				{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
				{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5}},
			},
			want: [][]float64{{0.75, 0.75}, {0.75, 0.75}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			weights, err := AreaWeights(grid, test.region)
			if err != nil {
				t.Fatal(err)
			}
			checkWeights(t, test.want, weights)
		})
	}
}

func TestAreaWeights_range(t *testing.T) {
	grid, err := NewGridRegular("test", 7, 5, 0.3, 1.7, -2, 4)
	if err != nil {
		t.Fatal(err)
	}
	region := geom.Polygon{{
		{X: -1.9, Y: 4.1}, {X: 0.4, Y: 5.0}, {X: -0.2, Y: 11.3}, {X: -1.2, Y: 7.7},
	}}
	weights, err := AreaWeights(grid, region)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range weights.Elements {
		if w < 0 || w > 1 {
			t.Errorf("weight %d = %g; must be within [0, 1]", i, w)
		}
	}
}

// The sum of weight × cell area over all cells recovers the region's
// area when the region lies entirely within the grid extent.
func TestAreaWeights_areaConservation(t *testing.T) {
	grid, err := NewGridRegular("test", 4, 4, 1, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	regions := []geom.Polygonal{
		rect(0.25, 0.3, 2.75, 3.1),
		geom.Polygon{{ // L shape
			{X: 0.5, Y: 0.5}, {X: 3.5, Y: 0.5}, {X: 3.5, Y: 1.5},
			{X: 1.5, Y: 1.5}, {X: 1.5, Y: 3.5}, {X: 0.5, Y: 3.5},
		}},
		geom.Polygon{ // square with hole
			{{X: 0.5, Y: 0.5}, {X: 2.5, Y: 0.5}, {X: 2.5, Y: 2.5}, {X: 0.5, Y: 2.5}},
			{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}},
		},
	}
	for _, region := range regions {
		weights, err := AreaWeights(grid, region)
		if err != nil {
			t.Fatal(err)
		}
		covered, err := CoveredArea(grid, weights)
		if err != nil {
			t.Fatal(err)
		}
		if want := region.Area(); math.Abs(covered-want) > testTolerance {
			t.Errorf("covered area = %g; want %g", covered, want)
		}
	}
}

// Weights must not depend on which axis has more cells or on cell
// aspect ratio.
func TestAreaWeights_anisotropic(t *testing.T) {
	grid, err := NewGridRegular("test", 3, 2, 2, 0.5, -1, -0.5)
	if err != nil {
		t.Fatal(err)
	}
	// Covers all of cell (0, 0) and the left half of cell (0, 1).
	region := rect(-1, -0.5, 2, 0)
	weights, err := AreaWeights(grid, region)
	if err != nil {
		t.Fatal(err)
	}
	checkWeights(t, [][]float64{{1, 0.5, 0}, {0, 0, 0}}, weights)
}

func TestAreaWeights_degenerateRegion(t *testing.T) {
	grid, err := NewGridRegular("test", 2, 2, 1, 1, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name   string
		region geom.Polygonal
	}{
		{"nil region", nil},
		{"two distinct vertices", geom.Polygon{{
			{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0},
		}}},
		{"zero area", geom.Polygon{{
			{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2},
		}}},
		{"non-finite vertex", geom.Polygon{{
			{X: 0, Y: 0}, {X: math.NaN(), Y: 0}, {X: 1, Y: 1},
		}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := AreaWeights(grid, test.region)
			var geomErr *GeometryError
			if !errors.As(err, &geomErr) {
				t.Fatalf("error = %v; want *GeometryError", err)
			}
		})
	}
}
