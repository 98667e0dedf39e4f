package models

import (
	"testing"
	"time"
)

func TestParseStopEvent(t *testing.T) {
	data := map[string]any{
		"location": map[string]any{
			"id":               "2067141",
			"disassembledName": "Chatswood Station, Platform 1",
		},
		"transportation": map[string]any{
			"number":      "T1",
			"product":     map[string]any{"class": float64(1)},
			"destination": map[string]any{"name": "Berowra"},
		},
		"departureTimePlanned":   "2026-03-02T08:00:00+11:00",
		"departureTimeEstimated": "2026-03-02T08:04:00+11:00",
		"onwardLocations": []any{
			map[string]any{
				"name": "Artarmon",
				"properties": map[string]any{
					"NumberOfCars":     "8",
					"TravelInCarsFrom": "5",
					"TravelInCarsTo":   "8",
				},
			},
			map[string]any{"name": "St Leonards", "properties": map[string]any{}},
		},
	}

	event := ParseStopEvent(data)
	if event.Location.ID != "2067141" {
		t.Errorf("Location.ID = %q", event.Location.ID)
	}
	if event.Transportation.Mode != ModeTrain {
		t.Errorf("Mode = %v, want train", event.Transportation.Mode)
	}
	if !event.IsRealtime() {
		t.Error("event with an estimate must be realtime")
	}
	if dep := event.DepartureTime(); dep == nil || dep.Minute() != 4 {
		t.Errorf("DepartureTime() = %v, want the 08:04 estimate", dep)
	}
	if len(event.OnwardLocations) != 2 {
		t.Errorf("OnwardLocations length = %d, want 2", len(event.OnwardLocations))
	}
}

func TestStopEventPlannedOnly(t *testing.T) {
	event := ParseStopEvent(map[string]any{
		"departureTimePlanned": "2026-03-02T08:00:00+11:00",
	})
	if event.IsRealtime() {
		t.Error("event without an estimate must not be realtime")
	}
	if dep := event.DepartureTime(); dep == nil || dep.Minute() != 0 {
		t.Errorf("DepartureTime() = %v, want the planned time", dep)
	}
}

func TestStopEventMinutesUntilDeparture(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 30, 0, Sydney())

	tests := []struct {
		name      string
		departure time.Time
		wantMin   int
		wantMax   int
	}{
		{
			name:      "ten minutes ahead",
			departure: now.Add(10 * time.Minute),
			wantMin:   9,
			wantMax:   10,
		},
		{
			name:      "in the past clamps to zero",
			departure: now.Add(-15 * time.Minute),
			wantMin:   0,
			wantMax:   0,
		},
		{
			name:      "imminent",
			departure: now.Add(20 * time.Second),
			wantMin:   0,
			wantMax:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dep := tt.departure
			event := StopEvent{DepartureEstimated: &dep}
			mins, ok := event.minutesUntilDeparture(now)
			if !ok {
				t.Fatal("expected a value")
			}
			if mins < tt.wantMin || mins > tt.wantMax {
				t.Errorf("minutes = %d, want within [%d, %d]", mins, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestStopEventMinutesUntilDepartureUnknown(t *testing.T) {
	event := StopEvent{}
	if _, ok := event.minutesUntilDeparture(time.Now()); ok {
		t.Error("expected no value without a departure time")
	}
}

func TestStopEventTravelInCars(t *testing.T) {
	event := StopEvent{
		OnwardLocations: []map[string]any{
			{"properties": map[string]any{"NumberOfCars": "8", "TravelInCarsFrom": "5", "TravelInCarsTo": "8"}},
			{"properties": map[string]any{}},
			{"properties": map[string]any{"NumberOfCars": "4", "TravelInCarsFrom": "1", "TravelInCarsTo": "2"}},
		},
	}

	guidance := event.TravelInCars()
	if len(guidance) != 2 {
		t.Fatalf("length = %d, want only the stops with guidance", len(guidance))
	}
	if guidance[0].NumberOfCars != 8 || guidance[1].NumberOfCars != 4 {
		t.Errorf("order not preserved: %+v", guidance)
	}
}
