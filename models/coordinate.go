package models

import "fmt"

// Coordinate is a WGS84 point. Response payloads carry coordinates as
// a two element [latitude, longitude] array, but request parameters
// want the reversed "longitude:latitude:EPSG:4326" form - APIString is
// the only place that reversal lives.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// CoordinateFromList builds a Coordinate from a raw [lat, lon] array.
// Anything other than exactly two numeric elements yields nil.
func CoordinateFromList(raw []any) *Coordinate {
	if len(raw) != 2 {
		return nil
	}
	lat, ok := floatOf(raw[0])
	if !ok {
		return nil
	}
	lon, ok := floatOf(raw[1])
	if !ok {
		return nil
	}
	return &Coordinate{Latitude: lat, Longitude: lon}
}

// APIString renders the coordinate in the request wire format:
// longitude first, six decimal places each.
func (c Coordinate) APIString() string {
	return fmt.Sprintf("%.6f:%.6f:EPSG:4326", c.Longitude, c.Latitude)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("Coordinate(lat=%v, lon=%v)", c.Latitude, c.Longitude)
}
