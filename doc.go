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

// Package regionstat calculates area-weighted statistics of gridded data
// over polygonal regions. It computes, for each cell of a 2-D rectilinear
// grid, the fraction of the cell's area that falls within a region, and
// uses those fractions as weights when aggregating data defined on the
// grid. All geometry is planar; no projection or curvature correction is
// applied, so grids and regions must share a Euclidean coordinate space.
package regionstat

// Version gives the version number.
const Version = "0.1.0"
