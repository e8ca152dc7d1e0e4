package common

import "github.com/google/uuid"

type Ranked struct {
	Rank   int           `json:"rank"`
	Record MetricsRecord `json:"record"`
	Rating Rating        `json:"rating"`
}

type Comparison struct {
	ID       uuid.UUID `json:"id"`
	Entries  []Ranked  `json:"entries"`
	Excluded []string  `json:"excluded,omitempty"`
}
