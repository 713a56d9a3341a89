package compile

import "time"

// Clock isolates the only non-pure input of the compiler. Generated
// timestamps and the session id all derive from a single Now reading, so a
// fixed clock makes the whole output byte-reproducible.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant. Intended for tests and for
// reproducible re-generation.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return c.T }
