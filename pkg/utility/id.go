package utility

import (
	"sync"

	"github.com/google/uuid"
)

type RunID = uuid.UUID

var (
	runID     RunID
	runIDOnce sync.Once
)

// GetRunID identifies the current process in logs.
func GetRunID() RunID {
	runIDOnce.Do(func() {
		runID = uuid.Must(uuid.NewV7())
	})
	return runID
}

// NewComparisonID returns a time ordered identifier for one comparison.
func NewComparisonID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
