package clock

import (
	"context"
	"time"
)

// Clock abstracts wall time so token-expiry decisions are testable.
type Clock interface {
	Now(ctx context.Context) time.Time
}
