package bidding

import (
	"sync"
	"time"
)

// vehicleLocks hands out one lock per vehicle so bid evaluations on the
// same vehicle serialize while unrelated vehicles proceed in parallel.
// Each lock is a one-slot channel so acquisition can be bounded by a
// timeout instead of blocking indefinitely.
type vehicleLocks struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newVehicleLocks() *vehicleLocks {
	return &vehicleLocks{locks: make(map[string]chan struct{})}
}

func (l *vehicleLocks) lockFor(vehicleID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.locks[vehicleID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.locks[vehicleID] = ch
	}
	return ch
}

// acquire takes the vehicle's lock, waiting at most maxWait. It returns a
// release func on success and false when the wait timed out.
func (l *vehicleLocks) acquire(vehicleID string, maxWait time.Duration) (func(), bool) {
	ch := l.lockFor(vehicleID)

	timer := time.NewTimer(maxWait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, true
	case <-timer.C:
		return nil, false
	}
}
