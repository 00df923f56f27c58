// Package entity contains the core business objects of the project.
package entity

import "math"

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// IsValid reports whether the coordinate is a finite point within Earth bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}
