package ports

import "time"

// Clock is the only source of time for the core.
type Clock interface {
	Now() time.Time
}
