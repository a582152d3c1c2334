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

// Package cellmethod models CF-convention cell method metadata: records
// describing a statistical operation that has already been applied to
// gridded data along one or more named coordinates, such as
// "time: mean (interval: 1 hour)".
package cellmethod

import (
	"fmt"
	"strings"
)

// Method is a statistical operation named by a cell method.
type Method int

// These are the methods defined by the CF conventions.
const (
	Point Method = iota
	Sum
	Mean
	Maximum
	Minimum
	MidRange
	StandardDeviation
	Variance
	Mode
	Median
)

func (m Method) String() string {
	switch m {
	case Point:
		return "point"
	case Sum:
		return "sum"
	case Mean:
		return "mean"
	case Maximum:
		return "maximum"
	case Minimum:
		return "minimum"
	case MidRange:
		return "mid_range"
	case StandardDeviation:
		return "standard_deviation"
	case Variance:
		return "variance"
	case Mode:
		return "mode"
	case Median:
		return "median"
	default:
		panic(fmt.Sprintf("unknown method: %d", int(m)))
	}
}

// ParseMethod converts a CF method name to a Method.
func ParseMethod(s string) (Method, error) {
	for m := Point; m <= Median; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return -1, fmt.Errorf("cellmethod: invalid method %q", s)
}

// A CellMethod describes a statistical operation that has been applied
// to data along the named coordinates, with optional interval and
// comment qualifiers parallel to the coordinates.
type CellMethod struct {
	Method    Method
	Coords    []string
	Intervals []string
	Comments  []string
}

// Equal reports whether m and o are structurally equal: same method and
// identical coordinate, interval, and comment sequences.
func (m CellMethod) Equal(o CellMethod) bool {
	return m.Method == o.Method &&
		equalStrings(m.Coords, o.Coords) &&
		equalStrings(m.Intervals, o.Intervals) &&
		equalStrings(m.Comments, o.Comments)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i, s := range a {
		if b[i] != s {
			return false
		}
	}
	return true
}

// String renders the cell method in the CF attribute format, for example
// "time: mean (interval: 1 hour)".
func (m CellMethod) String() string {
	b := new(strings.Builder)
	for _, c := range m.Coords {
		b.WriteString(c)
		b.WriteString(": ")
	}
	b.WriteString(m.Method.String())
	if len(m.Intervals) > 0 || len(m.Comments) > 0 {
		b.WriteString(" (")
		sep := ""
		for _, iv := range m.Intervals {
			fmt.Fprintf(b, "%sinterval: %s", sep, iv)
			sep = " "
		}
		for _, c := range m.Comments {
			fmt.Fprintf(b, "%scomment: %s", sep, c)
			sep = " "
		}
		b.WriteString(")")
	}
	return b.String()
}

// Parse converts a single cell method in the CF attribute format back
// to a CellMethod. It is the inverse of CellMethod.String.
func Parse(s string) (CellMethod, error) {
	var m CellMethod
	rest := strings.TrimSpace(s)
	var qualifiers string
	if i := strings.Index(rest, "("); i >= 0 {
		if !strings.HasSuffix(rest, ")") {
			return m, fmt.Errorf("cellmethod: parsing %q: unclosed qualifier", s)
		}
		qualifiers = rest[i+1 : len(rest)-1]
		rest = strings.TrimSpace(rest[:i])
	}
	parts := strings.Split(rest, ":")
	for i := 0; i < len(parts)-1; i++ {
		c := strings.TrimSpace(parts[i])
		if c == "" {
			return m, fmt.Errorf("cellmethod: parsing %q: empty coordinate name", s)
		}
		m.Coords = append(m.Coords, c)
	}
	if len(m.Coords) == 0 {
		return m, fmt.Errorf("cellmethod: parsing %q: no coordinate names", s)
	}
	method, err := ParseMethod(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return m, fmt.Errorf("cellmethod: parsing %q: %v", s, err)
	}
	m.Method = method
	if err := m.parseQualifiers(qualifiers); err != nil {
		return m, fmt.Errorf("cellmethod: parsing %q: %v", s, err)
	}
	return m, nil
}

// parseQualifiers splits the parenthesized part of a cell method into
// its interval and comment values. Intervals come before comments, per
// the CF conventions.
func (m *CellMethod) parseQualifiers(s string) error {
	s = strings.TrimSpace(s)
	for s != "" {
		var key string
		switch {
		case strings.HasPrefix(s, "interval:"):
			key, s = "interval", strings.TrimSpace(s[len("interval:"):])
		case strings.HasPrefix(s, "comment:"):
			key, s = "comment", strings.TrimSpace(s[len("comment:"):])
		default:
			return fmt.Errorf("unexpected qualifier %q", s)
		}
		val := s
		if i := nextQualifier(s); i >= 0 {
			val, s = strings.TrimSpace(s[:i]), s[i:]
		} else {
			s = ""
		}
		if val == "" {
			return fmt.Errorf("empty %s", key)
		}
		if key == "interval" {
			if len(m.Comments) > 0 {
				return fmt.Errorf("interval after comment")
			}
			m.Intervals = append(m.Intervals, val)
		} else {
			m.Comments = append(m.Comments, val)
		}
	}
	return nil
}

// nextQualifier returns the index of the next "interval:" or "comment:"
// key in s, or -1 if there is none.
func nextQualifier(s string) int {
	next := -1
	for _, key := range []string{"interval:", "comment:"} {
		if i := strings.Index(s, key); i > 0 && (next < 0 || i < next) {
			next = i
		}
	}
	return next
}

// Has reports whether any cell methods are attached: data with at least
// one cell method has already been statistically processed.
func Has(methods []CellMethod) bool {
	return len(methods) > 0
}

// Matches reports whether target is structurally equal to any element
// of methods.
func Matches(methods []CellMethod, target CellMethod) bool {
	for _, m := range methods {
		if m.Equal(target) {
			return true
		}
	}
	return false
}
