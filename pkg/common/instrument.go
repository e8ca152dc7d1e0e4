package common

// RawObservation is one provider record as decoded from the wire. Field names vary
// between providers, so values are looked up through alias tables.
type RawObservation map[string]any

// Summary is the provider's meta record for an instrument.
type Summary map[string]any

type Instrument struct {
	Code         string           `json:"code"`
	Name         string           `json:"name,omitempty"`
	Observations []RawObservation `json:"data"`
	Summary      Summary          `json:"meta,omitempty"`
}
