package models

import "fmt"

// TravelInCars tells passengers which carriages to board, derived from
// a stop's properties on services with short platforms.
type TravelInCars struct {
	NumberOfCars int
	FromCar      int
	ToCar        int
	Message      string
}

// TravelInCarsFromProperties builds the record from a properties
// mapping. The API is inconsistent about key casing, so both spellings
// are accepted with the capitalized form preferred. When no car count
// key exists at all, or a present value cannot be read as a number,
// the record does not exist - nil, never zero-filled.
func TravelInCarsFromProperties(props map[string]any) *TravelInCars {
	if _, ok := props["NumberOfCars"]; !ok {
		if _, ok := props["numberOfCars"]; !ok {
			return nil
		}
	}

	cars, ok := presentInt(props, "NumberOfCars", "numberOfCars")
	if !ok {
		return nil
	}
	from, ok := presentInt(props, "TravelInCarsFrom", "travelInCarsFrom")
	if !ok {
		return nil
	}
	to, ok := presentInt(props, "TravelInCarsTo", "travelInCarsTo")
	if !ok {
		return nil
	}

	return &TravelInCars{
		NumberOfCars: cars,
		FromCar:      from,
		ToCar:        to,
		Message:      getString(props, "TravelInCarsMessage", "travelInCarsMessage"),
	}
}

// presentInt reads the first present key as an integer. An absent key
// is fine (zero), a present but unparsable value is not.
func presentInt(props map[string]any, keys ...string) (int, bool) {
	for _, k := range keys {
		if v, ok := props[k]; ok && v != nil {
			return intOf(v)
		}
	}
	return 0, true
}

func (t TravelInCars) String() string {
	return fmt.Sprintf("TravelInCars(cars=%d, range=%d-%d, msg=%q)", t.NumberOfCars, t.FromCar, t.ToCar, t.Message)
}
