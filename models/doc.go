/*
Package models contains the typed domain objects returned by the Trip
Planner API and the parsers that build them from decoded JSON.

The upstream API is inconsistent across endpoints: fields move between
the top level and a loosely typed "properties" mapping, numbers arrive
as strings, and timestamps come in several encodings. Every parser here
is total - missing or malformed data degrades to a zero value or nil,
never an error - so a single bad record cannot make an otherwise valid
response unusable.

# Basic Usage

Parsers accept the decoded JSON object for one entity:

	var payload map[string]any
	_ = json.Unmarshal(body, &payload)

	for _, raw := range payload["journeys"].([]any) {
	    journey := models.ParseJourney(raw.(map[string]any))
	    fmt.Println(journey.Summary(), journey.TotalDuration())
	}

All timestamps are normalized to Sydney local time regardless of how
they were encoded on the wire.
*/
package models
