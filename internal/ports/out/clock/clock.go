package clock

import "time"

// Clock supplies creation timestamps for person records. An interface keeps
// tests deterministic via a controllable implementation.
type Clock interface {
	Now() time.Time
}
