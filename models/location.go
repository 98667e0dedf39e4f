package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is a stop finder or coordinate search result. The two
// endpoints return different shapes: stop_finder puts id, name and
// modes at the top level, while coord buries them inside properties
// under different key names. ParseLocation reconciles both so callers
// never see which shape was used.
type Location struct {
	ID               string
	Name             string
	Type             LocationType
	Coord            *Coordinate
	Modes            []int
	MatchQuality     int
	IsBest           bool
	Parent           *StopParent
	BuildingNumber   string
	StreetName       string
	Properties       map[string]any
	DisassembledName string

	// Distance in metres from the search centre; only the coord
	// endpoint supplies it.
	Distance *int
}

func ParseLocation(data map[string]any) Location {
	props := getMap(data, "properties")

	var coord *Coordinate
	if raw := getList(data, "coord"); raw != nil {
		coord = CoordinateFromList(raw)
	}

	var parent *StopParent
	if raw := getMap(data, "parent"); raw != nil {
		p := ParseStopParent(raw)
		parent = &p
	}

	id := getString(data, "id")
	if id == "" {
		id = getString(props, "STOP_GLOBAL_ID", "stopId")
	}

	name := getString(data, "name")
	if name == "" {
		name = getString(props, "STOP_NAME_WITH_PLACE")
	}

	modes := intList(getList(data, "modes"))
	if len(modes) == 0 {
		modes = parseMotList(getString(props, "STOP_MOT_LIST"))
	}

	var distance *int
	if v, ok := props["distance"]; ok {
		if n, ok := intOf(v); ok {
			distance = &n
		}
	}

	return Location{
		ID:               id,
		Name:             name,
		Type:             LocationTypeFromString(getString(data, "type")),
		Coord:            coord,
		Modes:            modes,
		MatchQuality:     getInt(data, 0, "matchQuality"),
		IsBest:           getBool(data, "isBest"),
		Parent:           parent,
		BuildingNumber:   getString(data, "buildingNumber"),
		StreetName:       getString(data, "streetName"),
		Properties:       props,
		DisassembledName: getString(data, "disassembledName"),
		Distance:         distance,
	}
}

func intList(raw []any) []int {
	var out []int
	for _, v := range raw {
		if n, ok := intOf(v); ok {
			out = append(out, n)
		}
	}
	return out
}

// parseMotList reads the coord endpoint's comma separated mode list,
// e.g. "1,4,5". Any malformed element invalidates the whole list.
func parseMotList(s string) []int {
	if s == "" {
		return nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		out = append(out, n)
	}
	return out
}

func (l Location) String() string {
	if l.Distance != nil {
		return fmt.Sprintf("Location(id=%q, name=%q, type=%s, distance=%dm)", l.ID, l.Name, l.Type, *l.Distance)
	}
	return fmt.Sprintf("Location(id=%q, name=%q, type=%s)", l.ID, l.Name, l.Type)
}
