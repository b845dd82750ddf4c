package engine

import (
	"sync"
	"time"
)

// TurnSeconds is the decision window before a forced skip.
const TurnSeconds = 30

// TurnTimer forces a skip when the player dawdles past the decision window.
// Every explicit turn advance bumps the generation; an expiry whose
// generation no longer matches is a stale timer and must do nothing. This is
// the guard against one expiry advancing the turn twice.
type TurnTimer struct {
	mu         sync.Mutex
	generation uint64
	timer      *time.Timer
	onExpire   func(generation uint64)
}

func NewTurnTimer(onExpire func(generation uint64)) *TurnTimer {
	return &TurnTimer{onExpire: onExpire}
}

// Start arms the countdown for a new decision window and returns its
// generation token.
func (t *TurnTimer) Start(d time.Duration) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.generation++
	gen := t.generation
	t.timer = time.AfterFunc(d, func() {
		t.onExpire(gen)
	})
	return gen
}

// Stop disarms the countdown and invalidates any in-flight expiry.
func (t *TurnTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
}

// Current returns the live generation token.
func (t *TurnTimer) Current() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}
