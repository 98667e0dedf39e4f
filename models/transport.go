package models

import "fmt"

// Transport describes the service operating a leg or stop event: the
// route identity plus the mode derived from its product class.
type Transport struct {
	ID               string
	Name             string
	DisassembledName string
	Number           string
	IconID           int
	Description      string
	Product          *Product
	DestinationName  string
	Mode             TransportMode
}

// ParseTransport reads a transportation record. Mode is never sent
// directly; it comes from the nested product's class code, and is
// ModeUnknown when no product is present.
func ParseTransport(data map[string]any) Transport {
	var product *Product
	mode := ModeUnknown
	if raw := getMap(data, "product"); raw != nil {
		p := ParseProduct(raw)
		product = &p
		mode = TransportModeFromClass(p.Class)
	}

	return Transport{
		ID:               getString(data, "id"),
		Name:             getString(data, "name"),
		DisassembledName: getString(data, "disassembledName"),
		Number:           getString(data, "number"),
		IconID:           getInt(data, -1, "iconId"),
		Description:      getString(data, "description"),
		Product:          product,
		DestinationName:  getString(getMap(data, "destination"), "name"),
		Mode:             mode,
	}
}

func (t Transport) String() string {
	return fmt.Sprintf("Transport(number=%q, mode=%s, dest=%q)", t.Number, t.Mode, t.DestinationName)
}
