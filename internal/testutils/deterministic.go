// Package testutils provides deterministic generators and example fixtures for patternlab tests.
// These utilities keep run reports stable while preserving production formats.
package testutils

import (
	"fmt"
	"sync"
	"time"
)

// SequentialIDs generates UUID-formatted identifiers that are deterministic.
// Returns IDs like: 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002
type SequentialIDs struct {
	mu      sync.Mutex
	counter uint64
}

// NewSequentialIDs creates a generator starting at 1.
func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{}
}

// Next returns the next identifier in the sequence.
func (s *SequentialIDs) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++

	// Format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", s.counter, s.counter)
}

// SteppingClock returns incrementing deterministic timestamps.
// First call: 2025-01-01T00:00:01Z, second call: 2025-01-01T00:00:02Z, etc.
type SteppingClock struct {
	mu      sync.Mutex
	counter int64
	Step    time.Duration
}

// NewSteppingClock creates a clock advancing one second per call.
func NewSteppingClock() *SteppingClock {
	return &SteppingClock{Step: time.Second}
}

// Now returns the next timestamp.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counter++
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(c.counter) * c.Step)
}
