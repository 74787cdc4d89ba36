// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package weather

import (
	"encoding/json"
	"sync"
	"time"
)

// Store holds the current ForecastSet. A set is only ever replaced as a whole.
type Store struct {
	mu    sync.RWMutex
	set   *ForecastSet
	ready bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{set: &ForecastSet{}}
}

// Load builds a new ForecastSet and replaces the current one on success. On failure the
// current set is kept and the store is marked as not ready.
func (s *Store) Load(raw json.RawMessage, startHour int, baseDate time.Time) (*ForecastSet, error) {
	set, err := Load(raw, startHour, baseDate)
	if err != nil {
		s.MarkNotReady()
		return nil, err
	}
	s.Replace(set)
	return set, nil
}

// Replace swaps in the given set and marks the store ready.
func (s *Store) Replace(set *ForecastSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set = set
	s.ready = true
}

// MarkNotReady flags the current set as stale without discarding it.
func (s *Store) MarkNotReady() {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
}

// Current returns the current set, which may be stale.
func (s *Store) Current() *ForecastSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

func (s *Store) Len() int {
	return s.Current().Len()
}

// Ready reports whether the last load succeeded.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}
