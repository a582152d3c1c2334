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

import "fmt"

// A GeometryError reports a degenerate region polygon or invalid grid
// bounds. The computation it came from produced no result.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "regionstat: invalid geometry: " + e.Reason
}

func geometryErrorf(format string, args ...interface{}) *GeometryError {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}

// A DimensionError reports arrays or grids whose shapes are incompatible
// with each other.
type DimensionError struct {
	Want, Got []int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("regionstat: dimension mismatch: want shape %v but have %v", e.Want, e.Got)
}
