package timezone

import (
	"sync"
	"time"

	// zoneinfo for slim container images
	_ "time/tzdata"
)

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

// ===============================
// Clock
// ===============================

// Clock is the source of "now" for every time-dependent rule.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns wall-clock time expressed in tz.
func NewSystemClock(tz string) Clock {
	return systemClock{loc: Location(tz)}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock is a settable clock for tests and replays.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FixedClock) Set(now time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
