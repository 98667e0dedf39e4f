package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TransportMode is the transport category behind a product class code.
type TransportMode int

const (
	ModeUnknown   TransportMode = -1
	ModeTrain     TransportMode = 1
	ModeLightRail TransportMode = 4
	ModeBus       TransportMode = 5
	ModeCoach     TransportMode = 7
	ModeFerry     TransportMode = 9
	ModeSchoolBus TransportMode = 11
	ModeOnDemand  TransportMode = 23
	ModeWalk      TransportMode = 99
	ModeWalkAlt   TransportMode = 100
	ModeCycle     TransportMode = 107
)

var transportModeNames = map[TransportMode]string{
	ModeTrain:     "TRAIN",
	ModeLightRail: "LIGHT_RAIL",
	ModeBus:       "BUS",
	ModeCoach:     "COACH",
	ModeFerry:     "FERRY",
	ModeSchoolBus: "SCHOOL_BUS",
	ModeOnDemand:  "ON_DEMAND",
	ModeWalk:      "WALK",
	ModeWalkAlt:   "WALK_ALT",
	ModeCycle:     "CYCLE",
}

// TransportModeFromClass maps an upstream product class code to a
// mode. Codes outside the known vocabulary map to ModeUnknown.
func TransportModeFromClass(productClass int) TransportMode {
	m := TransportMode(productClass)
	if _, ok := transportModeNames[m]; ok {
		return m
	}
	return ModeUnknown
}

func (m TransportMode) String() string {
	if name, ok := transportModeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// DisplayName renders the mode for human consumption, e.g.
// "Light Rail" for LIGHT_RAIL.
func (m TransportMode) DisplayName() string {
	// cases.Caser is stateful; build one per call
	caser := cases.Title(language.English)
	return caser.String(strings.ToLower(strings.ReplaceAll(m.String(), "_", " ")))
}

// LocationType classifies a stop finder or coordinate search result.
// Values match the wire encoding; note the API spells addresses
// "singlehouse".
type LocationType string

const (
	LocationTypeStop     LocationType = "stop"
	LocationTypePlatform LocationType = "platform"
	LocationTypePOI      LocationType = "poi"
	LocationTypeAddress  LocationType = "singlehouse"
	LocationTypeLocality LocationType = "locality"
	LocationTypeStreet   LocationType = "street"
	LocationTypeUnknown  LocationType = "unknown"
)

var locationTypes = map[LocationType]bool{
	LocationTypeStop:     true,
	LocationTypePlatform: true,
	LocationTypePOI:      true,
	LocationTypeAddress:  true,
	LocationTypeLocality: true,
	LocationTypeStreet:   true,
	LocationTypeUnknown:  true,
}

// LocationTypeFromString maps a wire value to a LocationType,
// defaulting to LocationTypeUnknown for anything unrecognized.
func LocationTypeFromString(s string) LocationType {
	if t := LocationType(s); locationTypes[t] {
		return t
	}
	return LocationTypeUnknown
}

// FareStatus is the NSW fare evaluation state attached to a ticket.
type FareStatus string

const (
	FareEnabled          FareStatus = "nswFareEnabled"
	FarePartiallyEnabled FareStatus = "nswFarePartiallyEnabled"
	FareNotEnabled       FareStatus = "nswFareNotEnabled"
	FareNotAvailable     FareStatus = "nswFareNotAvailable"
)

// FareStatusFromString maps a wire value to a FareStatus, defaulting
// to FareNotAvailable for anything unrecognized.
func FareStatusFromString(s string) FareStatus {
	switch FareStatus(s) {
	case FareEnabled, FarePartiallyEnabled, FareNotEnabled, FareNotAvailable:
		return FareStatus(s)
	}
	return FareNotAvailable
}

// CyclingProfile selects how strongly trip planning weights elevation
// when routing a bicycle leg.
type CyclingProfile string

const (
	CyclingEasier     CyclingProfile = "EASIER"
	CyclingModerate   CyclingProfile = "MODERATE"
	CyclingMoreDirect CyclingProfile = "MORE_DIRECT"
)

// ElevationFactor is the elevation weighting the trip endpoint expects
// for this profile.
func (p CyclingProfile) ElevationFactor() int {
	switch p {
	case CyclingEasier:
		return 0
	case CyclingMoreDirect:
		return 100
	default:
		return 50
	}
}
