package models

import (
	"fmt"
	"time"
)

// Stop is a stop within a leg's stop sequence, a leg endpoint, or the
// location of a departure event. The four timestamps are all optional;
// use DepartureTime and ArrivalTime for the realtime-preferred view.
type Stop struct {
	ID                 string
	Name               string
	DisassembledName   string
	Coord              *Coordinate
	DeparturePlanned   *time.Time
	DepartureEstimated *time.Time
	ArrivalPlanned     *time.Time
	ArrivalEstimated   *time.Time
	WheelchairAccess   bool
	Properties         map[string]any
}

// ParseStop reads a stop record. Unparsable timestamps silently become
// nil.
func ParseStop(data map[string]any) Stop {
	props := getMap(data, "properties")
	wheelchair, _ := props["WheelchairAccess"].(string)

	var coord *Coordinate
	if raw := getList(data, "coord"); raw != nil {
		coord = CoordinateFromList(raw)
	}

	return Stop{
		ID:                 getString(data, "id"),
		Name:               getString(data, "name"),
		DisassembledName:   getString(data, "disassembledName"),
		Coord:              coord,
		DeparturePlanned:   parseTime(getString(data, "departureTimePlanned")),
		DepartureEstimated: parseTime(getString(data, "departureTimeEstimated")),
		ArrivalPlanned:     parseTime(getString(data, "arrivalTimePlanned")),
		ArrivalEstimated:   parseTime(getString(data, "arrivalTimeEstimated")),
		WheelchairAccess:   wheelchair == "true",
		Properties:         props,
	}
}

// DepartureTime returns the realtime estimate when present, otherwise
// the planned time, otherwise nil.
func (s Stop) DepartureTime() *time.Time {
	if s.DepartureEstimated != nil {
		return s.DepartureEstimated
	}
	return s.DeparturePlanned
}

// ArrivalTime returns the realtime estimate when present, otherwise
// the planned time, otherwise nil.
func (s Stop) ArrivalTime() *time.Time {
	if s.ArrivalEstimated != nil {
		return s.ArrivalEstimated
	}
	return s.ArrivalPlanned
}

func (s Stop) String() string {
	return fmt.Sprintf("Stop(id=%q, name=%q)", s.ID, s.DisassembledName)
}
