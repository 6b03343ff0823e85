package nethys

import "time"

// Clock provides the current time. Injected so cache expiry is testable.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// NewClock returns a clock backed by the system time.
func NewClock() Clock { return realClock{} }
