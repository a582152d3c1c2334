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

	"github.com/ctessum/geom"
	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WeightedSum returns the sum of data multiplied element-wise by
// weights. The two arrays must have the same shape.
func WeightedSum(data, weights *sparse.DenseArray) (float64, error) {
	if err := sameShape(weights.Shape, data.Shape); err != nil {
		return 0, err
	}
	return floats.Dot(data.Elements, weights.Elements), nil
}

// WeightedMean returns the mean of data weighted by weights. The two
// arrays must have the same shape and the weights must not sum to zero.
func WeightedMean(data, weights *sparse.DenseArray) (float64, error) {
	if err := sameShape(weights.Shape, data.Shape); err != nil {
		return 0, err
	}
	if floats.Sum(weights.Elements) == 0 {
		return 0, fmt.Errorf("regionstat: weighted mean: weights sum to zero")
	}
	return stat.Mean(data.Elements, weights.Elements), nil
}

// CoveredArea returns the total grid area covered by the fractional
// weights: the sum over all cells of weight × cell area. When the
// weights come from AreaWeights for a region lying entirely within the
// grid extent, this equals the region's area.
func CoveredArea(g *Grid, weights *sparse.DenseArray) (float64, error) {
	return WeightedSum(g.CellAreas(), weights)
}

// MeanOverRegion calculates the area-weighted mean of data, shape
// (g.Ny, g.Nx), over the part of the grid lying within region. Each
// cell's value is weighted by the area of the cell inside the region,
// so cell size differences are accounted for.
func MeanOverRegion(g *Grid, data *sparse.DenseArray, region geom.Polygonal) (float64, error) {
	if err := sameShape(g.Shape(), data.Shape); err != nil {
		return 0, err
	}
	weights, err := AreaWeights(g, region)
	if err != nil {
		return 0, err
	}
	return WeightedMean(data, mulElems(weights, g.CellAreas()))
}

// SumOverRegion calculates the sum of data, shape (g.Ny, g.Nx),
// weighted by the fraction of each cell lying within region.
func SumOverRegion(g *Grid, data *sparse.DenseArray, region geom.Polygonal) (float64, error) {
	if err := sameShape(g.Shape(), data.Shape); err != nil {
		return 0, err
	}
	weights, err := AreaWeights(g, region)
	if err != nil {
		return 0, err
	}
	return WeightedSum(data, weights)
}

// mulElems multiplies a and b element-wise. The shapes of a and b must
// already be known to match.
func mulElems(a, b *sparse.DenseArray) *sparse.DenseArray {
	o := sparse.ZerosDense(a.Shape...)
	for i, v := range a.Elements {
		o.Elements[i] = v * b.Elements[i]
	}
	return o
}
