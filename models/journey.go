package models

import (
	"fmt"
	"strings"
	"time"
)

// Journey is an ordered sequence of legs from an origin to a
// destination, with the fare tickets the trip endpoint attached.
type Journey struct {
	Legs  []Leg
	Fares []Fare
}

// ParseJourney assembles a journey in travel order: the first leg's
// origin is the journey origin, the last leg's destination the journey
// destination. The nested fare.tickets list is flattened into Fares.
func ParseJourney(data map[string]any) Journey {
	var legs []Leg
	for _, raw := range getMapList(data, "legs") {
		legs = append(legs, ParseLeg(raw))
	}

	var fares []Fare
	for _, raw := range getMapList(getMap(data, "fare"), "tickets") {
		fares = append(fares, ParseFare(raw))
	}

	return Journey{Legs: legs, Fares: fares}
}

// DepartureTime is the first leg's origin departure, realtime
// preferred. Nil for a journey without legs.
func (j Journey) DepartureTime() *time.Time {
	if len(j.Legs) == 0 {
		return nil
	}
	return j.Legs[0].Origin.DepartureTime()
}

// ArrivalTime is the last leg's destination arrival, realtime
// preferred. Nil for a journey without legs.
func (j Journey) ArrivalTime() *time.Time {
	if len(j.Legs) == 0 {
		return nil
	}
	return j.Legs[len(j.Legs)-1].Destination.ArrivalTime()
}

// TotalDuration is the sum of all leg durations in seconds.
func (j Journey) TotalDuration() int {
	total := 0
	for _, leg := range j.Legs {
		total += leg.Duration
	}
	return total
}

// Summary renders the legs' modes in travel order, e.g.
// "Train → Walk → Bus". Consecutive duplicates are kept so the leg
// count stays visible.
func (j Journey) Summary() string {
	names := make([]string, len(j.Legs))
	for i, leg := range j.Legs {
		names[i] = leg.Mode().DisplayName()
	}
	return strings.Join(names, " → ")
}

// FareSummary selects the aggregate fare for the whole journey: the
// ADULT summary fare when present, else the first summary fare, else
// nil.
func (j Journey) FareSummary() *Fare {
	for i := range j.Fares {
		if j.Fares[i].IsSummary && j.Fares[i].Person == "ADULT" {
			return &j.Fares[i]
		}
	}
	for i := range j.Fares {
		if j.Fares[i].IsSummary {
			return &j.Fares[i]
		}
	}
	return nil
}

func (j Journey) String() string {
	return fmt.Sprintf("Journey(legs=%d, duration=%dmin, summary=%q)",
		len(j.Legs), j.TotalDuration()/60, j.Summary())
}
