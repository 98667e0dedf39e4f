package models

// Product is the service category record nested inside a Transport.
// Its class code is what TransportModeFromClass consumes.
type Product struct {
	Class  int
	Name   string
	IconID int
}

// ParseProduct reads a product record. A missing class defaults to -1
// so it maps to ModeUnknown rather than a real mode.
func ParseProduct(data map[string]any) Product {
	return Product{
		Class:  getInt(data, -1, "class"),
		Name:   getString(data, "name"),
		IconID: getInt(data, -1, "iconId"),
	}
}
