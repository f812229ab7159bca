package clock

import "time"

// Clock provides the current time in the ledger's configured location.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// RealClock reads the system clock.
type RealClock struct {
	loc *time.Location
}

// New returns a RealClock for loc. A nil loc means time.Local.
func New(loc *time.Location) RealClock {
	if loc == nil {
		loc = time.Local
	}
	return RealClock{loc: loc}
}

func (c RealClock) Now() time.Time           { return time.Now().In(c.loc) }
func (c RealClock) Location() *time.Location { return c.loc }

// FakeClock is a settable Clock for tests.
type FakeClock struct {
	NowFn func() time.Time
	Loc   *time.Location
}

// NewFakeClock returns a FakeClock frozen at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{
		NowFn: func() time.Time { return t },
		Loc:   t.Location(),
	}
}

func (f *FakeClock) Now() time.Time {
	if f.NowFn != nil {
		return f.NowFn()
	}
	return time.Now()
}

func (f *FakeClock) Location() *time.Location {
	if f.Loc != nil {
		return f.Loc
	}
	return time.Local
}

// LoadLocation resolves a timezone name; "" and "Local" mean time.Local.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
