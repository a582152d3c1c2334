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

package regionstatutil

import (
	"fmt"
	"os"

	"github.com/ctessum/geom"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/regionstat"
	"github.com/spf13/cast"
)

var log = logrus.StandardLogger()

// gridFromConfig builds the grid specified by the Grid.* configuration
// variables.
func gridFromConfig(cfg *viper.Viper) (*regionstat.Grid, error) {
	return regionstat.NewGridRegular(
		cfg.GetString("Grid.Name"),
		cast.ToInt(cfg.Get("Grid.Nx")), cast.ToInt(cfg.Get("Grid.Ny")),
		cast.ToFloat64(cfg.Get("Grid.Dx")), cast.ToFloat64(cfg.Get("Grid.Dy")),
		cast.ToFloat64(cfg.Get("Grid.X0")), cast.ToFloat64(cfg.Get("Grid.Y0")),
	)
}

// regionFromConfig reads the region shapefile named by the
// RegionShapefile configuration variable and merges its records into a
// single region.
func regionFromConfig(cfg *viper.Viper) (geom.Polygonal, error) {
	filename := os.ExpandEnv(cfg.GetString("RegionShapefile"))
	regions, err := regionstat.ReadRegions(filename)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"shapefile": filename,
		"records":   len(regions),
	}).Info("read region shapes")
	return regionstat.MergeRegions(regions), nil
}

// Weights calculates area weights for the configured grid and region
// and writes the grid cells with their weights to a shapefile.
func Weights(cfg *viper.Viper) error {
	grid, err := gridFromConfig(cfg)
	if err != nil {
		return err
	}
	region, err := regionFromConfig(cfg)
	if err != nil {
		return err
	}
	weights, err := regionstat.AreaWeights(grid, region)
	if err != nil {
		return err
	}
	outDir := os.ExpandEnv(cfg.GetString("OutputDir"))
	if err := grid.WriteShapefile(outDir, weights); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"grid":   grid.Name,
		"cells":  len(grid.Cells),
		"outdir": outDir,
	}).Info("wrote weight shapefile")
	return nil
}

// Stats reads a data value for each cell of the configured grid from
// the configured data shapefile column and prints the area-weighted
// mean and sum of the data over the configured region.
func Stats(cfg *viper.Viper) error {
	grid, err := gridFromConfig(cfg)
	if err != nil {
		return err
	}
	region, err := regionFromConfig(cfg)
	if err != nil {
		return err
	}
	dataFile := os.ExpandEnv(cfg.GetString("DataShapefile"))
	column := cfg.GetString("DataColumn")
	data, err := regionstat.ReadCellValues(dataFile, column, grid)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"shapefile": dataFile,
		"column":    column,
	}).Info("read cell data")
	mean, err := regionstat.MeanOverRegion(grid, data, region)
	if err != nil {
		return err
	}
	sum, err := regionstat.SumOverRegion(grid, data, region)
	if err != nil {
		return err
	}
	fmt.Printf("weighted mean:\t%g\n", mean)
	fmt.Printf("weighted sum:\t%g\n", sum)
	return nil
}

// Coverage calculates area weights for the configured grid and region
// and prints a summary of how the region overlaps the grid.
func Coverage(cfg *viper.Viper) error {
	grid, err := gridFromConfig(cfg)
	if err != nil {
		return err
	}
	region, err := regionFromConfig(cfg)
	if err != nil {
		return err
	}
	weights, err := regionstat.AreaWeights(grid, region)
	if err != nil {
		return err
	}
	covered, err := regionstat.CoveredArea(grid, weights)
	if err != nil {
		return err
	}
	touched := 0
	for _, w := range weights.Elements {
		if w > 0 {
			touched++
		}
	}
	fmt.Printf("region area:\t%g\n", region.Area())
	fmt.Printf("covered grid area:\t%g\n", covered)
	fmt.Printf("cells touched:\t%d of %d\n", touched, len(grid.Cells))
	return nil
}
