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

// Command regionstat is a command-line interface for calculating
// area-weighted statistics of gridded data over polygonal regions.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/regionstat/regionstatutil"
)

func main() {
	if err := regionstatutil.Root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
