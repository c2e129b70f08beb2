package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// slotLocks serializes booking admission per (turf, date). The conflict
// check and the insert must not be split across a suspension point without
// holding this exclusion; the database row locks cover other processes.
// Entries are reference counted and dropped once the last holder releases,
// so the map stays bounded by in-flight admissions rather than growing a
// key per turf per calendar day.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*slotLockEntry
}

type slotLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newSlotLocks() *slotLocks {
	return &slotLocks{
		locks: make(map[string]*slotLockEntry),
	}
}

// acquire blocks until the turf+date pair is exclusively held and returns
// the release function; the caller must invoke it when the admission
// attempt is over.
func (s *slotLocks) acquire(turfID uuid.UUID, date time.Time) func() {
	key := fmt.Sprintf("%s|%s", turfID.String(), date.Format("2006-01-02"))

	s.mu.Lock()
	entry, ok := s.locks[key]
	if !ok {
		entry = &slotLockEntry{}
		s.locks[key] = entry
	}
	entry.refs++
	s.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		s.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
