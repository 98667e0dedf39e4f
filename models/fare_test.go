package models

import "testing"

func TestParseFareSummary(t *testing.T) {
	data := map[string]any{
		"person":      "ADULT",
		"priceBrutto": float64(4.65),
		"fromLeg":     float64(0),
		"toLeg":       float64(2),
		"properties": map[string]any{
			"evaluationTicket":      "nswFareEnabled",
			"priceTotalFare":        "4.65",
			"priceStationAccessFee": "2.00",
			"riderCategoryName":     "Adult",
		},
	}

	fare := ParseFare(data)
	if !fare.IsSummary {
		t.Error("expected a summary fare when evaluationTicket is present")
	}
	if fare.Status != FareEnabled {
		t.Errorf("Status = %v, want enabled", fare.Status)
	}
	if fare.PriceBrutto != 4.65 || fare.PriceTotal != 4.65 || fare.StationAccessFee != 2.00 {
		t.Errorf("unexpected prices: %+v", fare)
	}
	if fare.RiderCategoryName != "Adult" || fare.FromLeg != 0 || fare.ToLeg != 2 {
		t.Errorf("unexpected fields: %+v", fare)
	}
}

func TestParseFarePerLeg(t *testing.T) {
	data := map[string]any{
		"person":  "CHILD",
		"fromLeg": float64(1),
		"toLeg":   float64(1),
		"properties": map[string]any{
			"priceTotalFare": float64(2.30),
		},
	}

	fare := ParseFare(data)
	if fare.IsSummary {
		t.Error("fare without evaluationTicket must not be a summary")
	}
	if fare.Status != FareNotAvailable {
		t.Errorf("Status = %v, want not available", fare.Status)
	}
	if fare.PriceTotal != 2.30 {
		t.Errorf("PriceTotal = %v, want 2.30", fare.PriceTotal)
	}
}

func TestParseFareEmpty(t *testing.T) {
	fare := ParseFare(map[string]any{})
	if fare.IsSummary || fare.Person != "" || fare.PriceTotal != 0 {
		t.Errorf("unexpected zero fare: %+v", fare)
	}
}
