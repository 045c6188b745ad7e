package clock

import "time"

// SystemClock returns the current wall-clock time in UTC, so stored
// creation timestamps compare consistently across backends.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
