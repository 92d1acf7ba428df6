package ufo

import (
	"fmt"
	"strings"
)

// Axis describes one variation axis of the element geometry.
type Axis struct {
	Tag     string
	Name    string
	Min     float64
	Max     float64
	Default float64
}

var axisOrder = []string{"ESIZ", "ROND", "BLED", "XESP", "EJIT"}

var axisInfo = map[string]*Axis{
	"ESIZ": {Tag: "ESIZ", Name: "Element Size", Min: 0.1, Max: 1, Default: 1},
	"ROND": {Tag: "ROND", Name: "Roundness", Min: 0, Max: 1, Default: 0},
	"BLED": {Tag: "BLED", Name: "Bleed", Min: 0, Max: 1, Default: 0},
	"XESP": {Tag: "XESP", Name: "Horizontal Element Spacing", Min: 0.5, Max: 1, Default: 1},
	"EJIT": {Tag: "EJIT", Name: "Element Jitter", Min: 0, Max: 0.1, Default: 0},
}

// AxisInfo returns the definition of an axis tag.
func AxisInfo(tag string) (Axis, bool) {
	a, ok := axisInfo[tag]
	if !ok {
		return Axis{}, false
	}
	return *a, true
}

// AxisTags returns all axis tags in canonical order.
func AxisTags() []string {
	return axisOrder
}

// SetAxisLimits overrides the limits of an axis; the default moves to the
// new maximum. Intended for command-line overrides before conversion starts.
func SetAxisLimits(tag string, min, max float64) error {
	a, ok := axisInfo[tag]
	if !ok {
		return fmt.Errorf("invalid axis %q", tag)
	}
	a.Min, a.Max, a.Default = min, max, max
	return nil
}

// Location is an assignment of values to axis tags.
type Location map[string]float64

// Value returns the axis value at this location, or the axis default.
func (loc Location) Value(tag string) float64 {
	if v, ok := loc[tag]; ok {
		return v
	}
	if a, ok := axisInfo[tag]; ok {
		return a.Default
	}
	return 0
}

// DefaultLocation returns the default value for every axis.
func DefaultLocation() Location {
	loc := make(Location, len(axisOrder))
	for _, tag := range axisOrder {
		loc[tag] = axisInfo[tag].Default
	}
	return loc
}

// ParseLocation parses an axis assignment of the form "ESIZ=0.5,ROND=1".
// A tag without value is assigned 0.
func ParseLocation(spec string) (Location, error) {
	loc := make(Location)
	if spec == "" {
		return loc, nil
	}
	for _, token := range strings.Split(spec, ",") {
		if token == "" {
			continue
		}
		tag, value, found := strings.Cut(token, "=")
		if _, ok := axisInfo[tag]; !ok {
			return nil, fmt.Errorf("invalid axis %q in %q", tag, spec)
		}
		if !found {
			loc[tag] = 0
			continue
		}
		var v float64
		if _, err := fmt.Sscanf(value, "%g", &v); err != nil {
			return nil, fmt.Errorf("invalid value for axis %q in %q", tag, spec)
		}
		loc[tag] = v
	}
	return loc, nil
}

// Master is one source font of a variable design space.
type Master struct {
	Name     string
	Location Location
}

// Instance is a named, user-visible location of a variable font.
type Instance struct {
	Name     string
	Location Location
}

// Masters enumerates the master locations for a set of variable axes: the
// full min/max cross-product, 2^n masters for n axes. Without variable axes
// a single master at the default location is returned.
func Masters(variableAxes []string, styleName string) []Master {
	if len(variableAxes) == 0 {
		return []Master{{Name: styleName, Location: Location{}}}
	}
	count := 1 << len(variableAxes)
	masters := make([]Master, 0, count)
	for i := 0; i < count; i++ {
		m := Master{Location: make(Location, len(variableAxes))}
		var parts []string
		for bit, tag := range variableAxes {
			a := axisInfo[tag]
			if i&(1<<bit) == 0 {
				parts = append(parts, tag+"min")
				m.Location[tag] = a.Min
			} else {
				parts = append(parts, tag+"max")
				m.Location[tag] = a.Max
			}
		}
		parts = append(parts, styleName)
		m.Name = strings.TrimSpace(strings.Join(parts, " "))
		masters = append(masters, m)
	}
	return masters
}
