package models

import "time"

// Every timestamp the API returns is exposed in Sydney local time, no
// matter how it was encoded on the wire (Z-suffixed UTC, offset
// qualified, or naive local).
var sydneyTZ = loadSydney()

func loadSydney() *time.Location {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		// AEST without DST transitions, only hit when tzdata is missing
		return time.FixedZone("AEST", 10*60*60)
	}
	return loc
}

// Sydney returns the fixed civil timezone all response timestamps are
// normalized to.
func Sydney() *time.Location {
	return sydneyTZ
}

// parseTime reads an API timestamp. Naive values are taken as Sydney
// local time; aware values are converted. Malformed input yields nil.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.In(sydneyTZ)
		return &t
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, sydneyTZ); err == nil {
			return &t
		}
	}
	return nil
}
