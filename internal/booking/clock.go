package booking

import "time"

// Clock abstracts "now" so the past-time and cancel-lockout rules are
// testable against a fixed instant.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
