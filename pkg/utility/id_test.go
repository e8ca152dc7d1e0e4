package utility

import (
	"sync"
	"testing"
)

func TestUtility_GetRunID(t *testing.T) {
	id1 := GetRunID()
	id2 := GetRunID()

	if id1 != id2 {
		t.Error("Expected same RunID")
	}

	if id1.Version() != 7 {
		t.Errorf("Expected UUID v7, got v%d", id1.Version())
	}
}

func TestUtility_GetRunIDConcurrent(t *testing.T) {
	const goroutines = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	results := make([]RunID, goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			results[idx] = GetRunID()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatalf("RunID mismatch at %d", i)
		}
	}
}

func TestUtility_NewComparisonID(t *testing.T) {
	a := NewComparisonID()
	b := NewComparisonID()

	if a == b {
		t.Error("Expected distinct comparison IDs")
	}
	if a.Version() != 7 {
		t.Errorf("Expected UUID v7, got v%d", a.Version())
	}
}
