package models

import "testing"

func legFixture() map[string]any {
	return map[string]any{
		"duration": float64(600),
		"origin": map[string]any{
			"id":                     "206710",
			"disassembledName":       "Chatswood",
			"departureTimePlanned":   "2026-03-02T08:00:00+11:00",
			"departureTimeEstimated": "2026-03-02T08:02:00+11:00",
			"properties": map[string]any{
				"NumberOfCars":     "8",
				"TravelInCarsFrom": "1",
				"TravelInCarsTo":   "4",
			},
		},
		"destination": map[string]any{
			"id":                 "206010",
			"disassembledName":   "North Sydney",
			"arrivalTimePlanned": "2026-03-02T08:10:00+11:00",
		},
		"transportation": map[string]any{
			"number":  "T1",
			"product": map[string]any{"class": float64(1)},
		},
		"stopSequence": []any{
			map[string]any{"disassembledName": "Chatswood"},
			map[string]any{"disassembledName": "Artarmon"},
			map[string]any{"disassembledName": "North Sydney"},
		},
		"coords": []any{
			[]any{-33.7966, 151.1803},
			[]any{-33.8157, 151.1868, 12.0},
			[]any{-33.8397},
			[]any{-33.8399, 151.2070},
		},
		"infos": []any{
			map[string]any{"subtitle": "Trackwork this weekend"},
		},
		"hints": []any{
			map[string]any{"infoText": "Quiet carriages available"},
		},
		"properties": map[string]any{
			"PlanLowFloorVehicle":  "1",
			"PlanWheelChairAccess": "0",
		},
	}
}

func TestParseLeg(t *testing.T) {
	leg := ParseLeg(legFixture())

	if leg.Duration != 600 {
		t.Errorf("Duration = %d, want 600", leg.Duration)
	}
	if leg.Mode() != ModeTrain {
		t.Errorf("Mode() = %v, want train", leg.Mode())
	}
	if len(leg.StopSequence) != 3 {
		t.Errorf("StopSequence length = %d, want 3", len(leg.StopSequence))
	}
	if len(leg.Infos) != 1 || leg.Infos[0].Subtitle != "Trackwork this weekend" {
		t.Errorf("unexpected infos: %v", leg.Infos)
	}
	if len(leg.Hints) != 1 || leg.Hints[0].Text != "Quiet carriages available" {
		t.Errorf("unexpected hints: %v", leg.Hints)
	}
}

func TestParseLegDropsBadCoordinates(t *testing.T) {
	leg := ParseLeg(legFixture())
	// Four wire entries, two of them invalid: list shrinks, no
	// placeholders.
	if len(leg.Coords) != 2 {
		t.Fatalf("Coords length = %d, want 2", len(leg.Coords))
	}
	if leg.Coords[0].Latitude != -33.7966 || leg.Coords[1].Longitude != 151.2070 {
		t.Errorf("unexpected coords: %v", leg.Coords)
	}
}

func TestLegIsRealtime(t *testing.T) {
	withEstimate := ParseLeg(legFixture())
	if !withEstimate.IsRealtime {
		t.Error("leg with estimated origin departure must be realtime")
	}

	data := legFixture()
	origin := data["origin"].(map[string]any)
	delete(origin, "departureTimeEstimated")
	withoutEstimate := ParseLeg(data)
	if withoutEstimate.IsRealtime {
		t.Error("leg without estimates must not be realtime")
	}

	destination := data["destination"].(map[string]any)
	destination["arrivalTimeEstimated"] = "2026-03-02T08:12:00+11:00"
	destinationOnly := ParseLeg(data)
	if !destinationOnly.IsRealtime {
		t.Error("estimated destination arrival alone must make the leg realtime")
	}
}

func TestLegAccessibilityFlags(t *testing.T) {
	leg := ParseLeg(legFixture())
	if !leg.LowFloorVehicle() {
		t.Error("PlanLowFloorVehicle \"1\" must report a low floor vehicle")
	}
	if leg.WheelchairAccessibleVehicle() {
		t.Error("PlanWheelChairAccess \"0\" must not report accessibility")
	}

	// Only the exact string "1" counts.
	leg.Properties = map[string]any{"PlanLowFloorVehicle": float64(1)}
	if leg.LowFloorVehicle() {
		t.Error("numeric 1 must not match; the flag is a string compare")
	}
}

func TestLegTravelInCars(t *testing.T) {
	leg := ParseLeg(legFixture())
	tic := leg.TravelInCars()
	if tic == nil {
		t.Fatal("expected carriage guidance from the origin properties")
	}
	if tic.NumberOfCars != 8 || tic.FromCar != 1 || tic.ToCar != 4 {
		t.Errorf("unexpected guidance: %+v", tic)
	}

	data := legFixture()
	data["origin"].(map[string]any)["properties"] = map[string]any{}
	if got := ParseLeg(data).TravelInCars(); got != nil {
		t.Errorf("expected nil without car keys, got %+v", got)
	}
}
