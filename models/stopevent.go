package models

import (
	"fmt"
	"time"
)

// StopEvent is one scheduled or estimated departure of a single
// service from a stop, as returned by the departure_mon endpoint.
type StopEvent struct {
	Location           Stop
	Transportation     Transport
	DeparturePlanned   *time.Time
	DepartureEstimated *time.Time

	// OnwardLocations are the raw downstream stop records; carriage
	// guidance is extracted from them on demand.
	OnwardLocations []map[string]any
}

func ParseStopEvent(data map[string]any) StopEvent {
	return StopEvent{
		Location:           ParseStop(getMap(data, "location")),
		Transportation:     ParseTransport(getMap(data, "transportation")),
		DeparturePlanned:   parseTime(getString(data, "departureTimePlanned")),
		DepartureEstimated: parseTime(getString(data, "departureTimeEstimated")),
		OnwardLocations:    getMapList(data, "onwardLocations"),
	}
}

// DepartureTime returns the realtime estimate when present, otherwise
// the planned time, otherwise nil.
func (e StopEvent) DepartureTime() *time.Time {
	if e.DepartureEstimated != nil {
		return e.DepartureEstimated
	}
	return e.DeparturePlanned
}

// IsRealtime reports whether the departure carries a live estimate.
func (e StopEvent) IsRealtime() bool {
	return e.DepartureEstimated != nil
}

// MinutesUntilDeparture returns the whole minutes until the resolved
// departure time, clamped at zero for departures in the past. The
// second return is false when no departure time is known. Each call
// reads the wall clock.
func (e StopEvent) MinutesUntilDeparture() (int, bool) {
	return e.minutesUntilDeparture(time.Now())
}

func (e StopEvent) minutesUntilDeparture(now time.Time) (int, bool) {
	dep := e.DepartureTime()
	if dep == nil {
		return 0, false
	}
	mins := int(dep.Sub(now).Minutes())
	if mins < 0 {
		mins = 0
	}
	return mins, true
}

// TravelInCars collects carriage guidance from the downstream stops,
// in stop order, skipping stops without any.
func (e StopEvent) TravelInCars() []TravelInCars {
	var out []TravelInCars
	for _, loc := range e.OnwardLocations {
		if tic := TravelInCarsFromProperties(getMap(loc, "properties")); tic != nil {
			out = append(out, *tic)
		}
	}
	return out
}

func (e StopEvent) String() string {
	if mins, ok := e.MinutesUntilDeparture(); ok {
		return fmt.Sprintf("StopEvent(route=%q, dest=%q, departure=%dmin)",
			e.Transportation.Number, e.Transportation.DestinationName, mins)
	}
	return fmt.Sprintf("StopEvent(route=%q, dest=%q, departure=?)",
		e.Transportation.Number, e.Transportation.DestinationName)
}
