package ports

import "time"

// Clock returns the current instant. Services take one so tests can pin time.
type Clock func() time.Time

