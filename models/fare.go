package models

import "fmt"

// Fare is one ticket entry from a journey's fare block. Summary fares
// aggregate the whole journey; per-leg fares carry FromLeg/ToLeg.
type Fare struct {
	Person            string
	PriceBrutto       float64
	PriceTotal        float64
	StationAccessFee  float64
	Status            FareStatus
	RiderCategoryName string
	FromLeg           int
	ToLeg             int
	IsSummary         bool
}

// ParseFare reads a ticket record. A fare is a summary fare exactly
// when its properties carry the evaluationTicket key.
func ParseFare(data map[string]any) Fare {
	props := getMap(data, "properties")
	_, isSummary := props["evaluationTicket"]

	return Fare{
		Person:            getString(data, "person"),
		PriceBrutto:       getFloat(data, "priceBrutto"),
		PriceTotal:        getFloat(props, "priceTotalFare"),
		StationAccessFee:  getFloat(props, "priceStationAccessFee"),
		Status:            FareStatusFromString(getString(props, "evaluationTicket")),
		RiderCategoryName: getString(props, "riderCategoryName"),
		FromLeg:           getInt(data, 0, "fromLeg"),
		ToLeg:             getInt(data, 0, "toLeg"),
		IsSummary:         isSummary,
	}
}

func (f Fare) String() string {
	return fmt.Sprintf("Fare(person=%q, total=%v, status=%s)", f.Person, f.PriceTotal, f.Status)
}
