package models

import (
	"fmt"
	"time"
)

// ServiceAlert is one entry from the add_info endpoint. Affected stop
// and line records are kept raw; their shape varies with the alert
// source.
type ServiceAlert struct {
	Subtitle         string
	URL              string
	LastModification *time.Time
	AffectedStops    []map[string]any
	AffectedLines    []map[string]any
}

func ParseServiceAlert(data map[string]any) ServiceAlert {
	affected := getMap(data, "affected")

	return ServiceAlert{
		Subtitle:         getString(data, "subtitle"),
		URL:              getString(data, "url"),
		LastModification: parseTime(getString(getMap(data, "timestamps"), "lastModification")),
		AffectedStops:    getMapList(affected, "stops"),
		AffectedLines:    getMapList(affected, "lines"),
	}
}

func (a ServiceAlert) String() string {
	return fmt.Sprintf("ServiceAlert(subtitle=%q)", a.Subtitle)
}

// Hint is a free-text advisory attached to a leg. The original record
// is retained for callers that need more than the text.
type Hint struct {
	Text string
	Raw  map[string]any
}

func ParseHint(data map[string]any) Hint {
	return Hint{
		Text: getString(data, "infoText"),
		Raw:  data,
	}
}
