package engine

import "time"

// guardState tracks where a programmatic scroll is in its lifecycle.
type guardState int

const (
	guardIdle     guardState = iota // no programmatic scroll in flight
	guardSyncing                    // a sync is issuing scroll calls right now
	guardCooldown                   // absorbing the echo of a recent scroll
)

// guard suppresses feedback between the two sync directions. A programmatic
// scroll on one side generates events that look like user activity on the
// other; while the guard is active those events are dropped instead of
// bouncing back and oscillating.
//
// Everything here runs on a single event loop, so the guard is a state flag
// with a deadline, not a lock.
type guard struct {
	state    guardState
	until    time.Time
	cooldown time.Duration
	now      func() time.Time
}

func newGuard(cooldown time.Duration, now func() time.Time) *guard {
	if now == nil {
		now = time.Now
	}
	return &guard{cooldown: cooldown, now: now}
}

// Active reports whether sync events should be suppressed. An expired
// cooldown resolves back to idle on read.
func (g *guard) Active() bool {
	if g.state == guardCooldown && !g.now().Before(g.until) {
		g.state = guardIdle
	}
	return g.state != guardIdle
}

// Engage marks a sync as in progress. Scroll events arriving before the
// matching Release (and through the cooldown after it) are suppressed.
func (g *guard) Engage() {
	g.state = guardSyncing
}

// Release ends the syncing phase and starts the cooldown window that
// absorbs the scroll events the sync itself generated.
func (g *guard) Release() {
	g.state = guardCooldown
	g.until = g.now().Add(g.cooldown)
}
