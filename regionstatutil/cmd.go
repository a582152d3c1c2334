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

// Package regionstatutil wires the regionstat library into a
// command-line interface.
package regionstatutil

import (
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/regionstat"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to RegionStat.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Grid.Name",
			usage: `
              Grid.Name specifies the name of the grid, which is used to name
              output files.`,
			defaultVal: "grid",
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "Grid.Nx",
			usage: `
              Grid.Nx specifies the number of grid cells in the X direction.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "Grid.Ny",
			usage: `
              Grid.Ny specifies the number of grid cells in the Y direction.`,
			defaultVal: 1,
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "Grid.Dx",
			usage: `
              Grid.Dx specifies the X edge lengths of grid cells, in the
              units of the grid spatial projection--typically meters or
              degrees latitude and longitude.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "Grid.Dy",
			usage: `
              Grid.Dy specifies the Y edge lengths of grid cells, in the
              units of the grid spatial projection.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "Grid.X0",
			usage: `
              Grid.X0 specifies the X coordinate of the lower-left corner of
              the grid.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "Grid.Y0",
			usage: `
              Grid.Y0 specifies the Y coordinate of the lower-left corner of
              the grid.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "RegionShapefile",
			usage: `
              RegionShapefile specifies the location of the shapefile holding
              the region polygons. Multiple records are merged into a single
              region. The shapefile must use the same coordinate system as
              the grid.`,
			shorthand:  "r",
			defaultVal: "region.shp",
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags(), coverageCmd.Flags(), statsCmd.Flags()},
		},
		{
			name: "DataShapefile",
			usage: `
              DataShapefile specifies the location of the shapefile holding
              the data values for the grid cells. It must have "row" and
              "col" attribute columns addressing the grid cells, such as the
              files written by the weights command.`,
			shorthand:  "d",
			defaultVal: "data.shp",
			flagsets:   []*pflag.FlagSet{statsCmd.Flags()},
		},
		{
			name: "DataColumn",
			usage: `
              DataColumn specifies the attribute column of DataShapefile
              that holds the data value for each grid cell.`,
			defaultVal: "value",
			flagsets:   []*pflag.FlagSet{statsCmd.Flags()},
		},
		{
			name: "OutputDir",
			usage: `
              OutputDir specifies the directory where the weight shapefile
              will be written.`,
			shorthand:  "o",
			defaultVal: ".",
			flagsets:   []*pflag.FlagSet{weightsCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("REGIONSTAT")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(weightsCmd)
	Root.AddCommand(coverageCmd)
	Root.AddCommand(statsCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("regionstat: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "regionstat",
	Short: "Area-weighted statistics of gridded data over polygonal regions.",
	Long: `RegionStat calculates, for each cell of a rectilinear grid, the fraction
of the cell's area that lies within a polygonal region, and summarizes the
result.

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'REGIONSTAT_var' where 'var' is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of RegionStat.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("RegionStat v%s\n", regionstat.Version)
	},
	DisableAutoGenTag: true,
}

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Calculate area weights and write them to a shapefile.",
	Long: `weights calculates the fraction of each grid cell's area lying within the
region read from RegionShapefile and writes the grid cells with their
weights to a shapefile in OutputDir.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Weights(Cfg)
	},
	DisableAutoGenTag: true,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Calculate area-weighted statistics of gridded data over a region.",
	Long: `stats reads a data value for each grid cell from the DataColumn
attribute of DataShapefile and prints the area-weighted mean and sum of
the data over the region read from RegionShapefile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Stats(Cfg)
	},
	DisableAutoGenTag: true,
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Summarize how a region overlaps the grid.",
	Long: `coverage calculates area weights for the region read from
RegionShapefile and prints the region area, the grid area the region
covers, and the number of grid cells it touches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Coverage(Cfg)
	},
	DisableAutoGenTag: true,
}
