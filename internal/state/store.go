package state

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/five82/artsearch/internal/artic"
)

// Snapshot summarizes recent API traffic for the header.
type Snapshot struct {
	Requests            int
	LastURL             string
	LastRequest         time.Time
	LastDuration        time.Duration
	LastError           error
	ConsecutiveFailures int // transport failures only; HTTP statuses reset it
}

// IsOffline returns true when the API has been unreachable for multiple
// requests in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store records request outcomes. Fetch commands write from their own
// goroutines while the UI reads, so access is serialized.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Ensure Store satisfies the client's observer hook.
var _ artic.Observer = (*Store)(nil)

// RecordRequest stores the outcome of one API request. A response with a
// failing status proves the API is reachable and does not count towards
// going offline.
func (s *Store) RecordRequest(url string, took time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Requests++
	s.snapshot.LastURL = url
	s.snapshot.LastRequest = time.Now()
	s.snapshot.LastDuration = took
	s.snapshot.LastError = err

	var httpErr *artic.HTTPError
	switch {
	case err == nil, errors.As(err, &httpErr):
		s.snapshot.ConsecutiveFailures = 0
	default:
		s.snapshot.ConsecutiveFailures++
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
