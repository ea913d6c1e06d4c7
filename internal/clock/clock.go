// Package clock provides the current time. Use Real for production and
// mocks.MockClock for testing.
package clock

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// Real returns the actual current time.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time { return time.Now() }
