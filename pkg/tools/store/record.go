package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jubinaghara/mutual-fund-analysis/pkg/common"
)

var (
	ErrRecordNotPresent = errors.New("record is not present in record store")
)

// RecordStore caches metrics records by instrument code. Codes are compared case
// insensitively. Invalidation is up to the owner.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]common.MetricsRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]common.MetricsRecord),
	}
}

func key(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

func (s *RecordStore) Contains(code string) bool {
	if _, err := s.Get(code); err != nil {
		return false
	}
	return true
}

func (s *RecordStore) Get(code string) (common.MetricsRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if r, ok := s.records[key(code)]; ok {
		return r, nil
	}
	return common.MetricsRecord{}, fmt.Errorf("unable to get record with code %s: %w", code, ErrRecordNotPresent)
}

func (s *RecordStore) MustGet(code string) common.MetricsRecord {
	r, err := s.Get(code)
	if err != nil {
		panic(err.Error())
	}
	return r
}

func (s *RecordStore) Put(r common.MetricsRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key(r.Code)] = r
}

func (s *RecordStore) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key(code))
}

func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
