// Delta F1 API - Formula 1 race and driver data service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/deltaf1

// Package clock provides the time source used for "current season" defaults
// and the upcoming-race filter.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }

// System returns the local wall clock.
func System() Clock {
	return Func(time.Now)
}

// Fixed returns a clock that always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}

// CurrentYear returns the calendar year of c.Now() in its own location.
func CurrentYear(c Clock) int {
	return c.Now().Year()
}
