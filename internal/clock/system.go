package clock

import (
	"context"
	"time"
)

// System reads the real wall clock in UTC.
type System struct{}

func (System) Now(context.Context) time.Time { return time.Now().UTC() }

// Fixed always reports the same instant. Test helper.
type Fixed time.Time

func (f Fixed) Now(context.Context) time.Time { return time.Time(f) }
