package common

import "time"

// Observation is a normalised NAV point. Value is always positive; Dated is false
// when the provider date could not be resolved.
type Observation struct {
	Date  time.Time `json:"date"`
	Dated bool      `json:"dated"`
	Value float64   `json:"value"`
}

// Series is ordered oldest first.
type Series []Observation

func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, o := range s {
		values[i] = o.Value
	}
	return values
}

func (s Series) Last() (Observation, bool) {
	if len(s) == 0 {
		return Observation{}, false
	}
	return s[len(s)-1], true
}

// Window is the trailing slice of a Series used for analysis.
type Window struct {
	Observations Series  `json:"observations"`
	Span         int     `json:"span"`
	Years        float64 `json:"years"`
	Label        string  `json:"label"`
}

func (w Window) Empty() bool {
	return w.Span == 0 || len(w.Observations) < 2
}
