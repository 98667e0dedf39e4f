package models

import "fmt"

// Leg is one uninterrupted segment of a journey on a single transport
// mode.
type Leg struct {
	// Duration in seconds.
	Duration       int
	Origin         Stop
	Destination    Stop
	Transportation Transport
	StopSequence   []Stop
	Coords         []Coordinate
	Infos          []ServiceAlert
	Hints          []Hint
	Properties     map[string]any
	IsRealtime     bool
}

// ParseLeg assembles a leg from a journey response. Path coordinates
// that fail to parse are dropped rather than kept as placeholders, so
// Coords may be shorter than the wire list. A leg is realtime when its
// origin has an estimated departure or its destination an estimated
// arrival.
func ParseLeg(data map[string]any) Leg {
	origin := ParseStop(getMap(data, "origin"))
	destination := ParseStop(getMap(data, "destination"))

	var stopSequence []Stop
	for _, raw := range getMapList(data, "stopSequence") {
		stopSequence = append(stopSequence, ParseStop(raw))
	}

	var coords []Coordinate
	for _, item := range getList(data, "coords") {
		pair, _ := item.([]any)
		if c := CoordinateFromList(pair); c != nil {
			coords = append(coords, *c)
		}
	}

	var infos []ServiceAlert
	for _, raw := range getMapList(data, "infos") {
		infos = append(infos, ParseServiceAlert(raw))
	}

	var hints []Hint
	for _, raw := range getMapList(data, "hints") {
		hints = append(hints, ParseHint(raw))
	}

	return Leg{
		Duration:       getInt(data, 0, "duration"),
		Origin:         origin,
		Destination:    destination,
		Transportation: ParseTransport(getMap(data, "transportation")),
		StopSequence:   stopSequence,
		Coords:         coords,
		Infos:          infos,
		Hints:          hints,
		Properties:     getMap(data, "properties"),
		IsRealtime:     origin.DepartureEstimated != nil || destination.ArrivalEstimated != nil,
	}
}

// Mode is the transport mode of the leg's service.
func (l Leg) Mode() TransportMode {
	return l.Transportation.Mode
}

// LowFloorVehicle reports whether a low floor vehicle is planned.
func (l Leg) LowFloorVehicle() bool {
	v, _ := l.Properties["PlanLowFloorVehicle"].(string)
	return v == "1"
}

// WheelchairAccessibleVehicle reports whether a wheelchair accessible
// vehicle is planned.
func (l Leg) WheelchairAccessibleVehicle() bool {
	v, _ := l.Properties["PlanWheelChairAccess"].(string)
	return v == "1"
}

// TravelInCars returns carriage guidance for boarding at the leg's
// origin, or nil when the origin has none.
func (l Leg) TravelInCars() *TravelInCars {
	return TravelInCarsFromProperties(l.Origin.Properties)
}

func (l Leg) String() string {
	return fmt.Sprintf("Leg(mode=%s, from=%q, to=%q, duration=%dmin)",
		l.Mode(), l.Origin.DisassembledName, l.Destination.DisassembledName, l.Duration/60)
}
