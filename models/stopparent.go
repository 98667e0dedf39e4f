package models

// StopParent is the parent station record nested inside a Location.
type StopParent struct {
	ID   string
	Name string
	Type string
}

func ParseStopParent(data map[string]any) StopParent {
	return StopParent{
		ID:   getString(data, "id"),
		Name: getString(data, "name"),
		Type: getString(data, "type"),
	}
}
