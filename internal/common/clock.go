package common

import "time"

// Clock hands out the run date. The sync pipeline derives the balance-history
// year and today's key from it, so tests and backfills inject their own.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// FixedClock returns a clock stuck at t.
func FixedClock(t time.Time) Clock { return fixedClock{t: t} }
