package usecase

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSlotLocksExclusion(t *testing.T) {
	locks := newSlotLocks()
	turfID := uuid.New()
	date := time.Now().UTC()

	const workers = 8
	var wg sync.WaitGroup
	var inCritical, maxInCritical int
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := locks.acquire(turfID, date)
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	if maxInCritical != 1 {
		t.Errorf("critical section held by %d goroutines at once, want 1", maxInCritical)
	}
}

func TestSlotLocksEvictReleasedEntries(t *testing.T) {
	locks := newSlotLocks()
	turfID := uuid.New()
	base := time.Now().UTC()

	// Many distinct days, sequentially and concurrently held.
	var wg sync.WaitGroup
	for day := 0; day < 30; day++ {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			release := locks.acquire(turfID, base.AddDate(0, 0, day))
			release()
		}(day)
	}
	wg.Wait()

	locks.mu.Lock()
	remaining := len(locks.locks)
	locks.mu.Unlock()

	if remaining != 0 {
		t.Errorf("%d lock entries left after all holders released, want 0", remaining)
	}
}

func TestSlotLocksSeparateDatesDoNotBlock(t *testing.T) {
	locks := newSlotLocks()
	turfID := uuid.New()
	today := time.Now().UTC()

	releaseToday := locks.acquire(turfID, today)
	defer releaseToday()

	done := make(chan struct{})
	go func() {
		release := locks.acquire(turfID, today.AddDate(0, 0, 1))
		release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("acquire for a different date blocked behind an unrelated holder")
	}
}
