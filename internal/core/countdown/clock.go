package countdown

import "time"

// Clock abstracts time so the countdown can be driven deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Readings carry Go's monotonic component,
// so elapsed time is unaffected by wall clock adjustments.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Redrawer accepts requests for another frame. Requests are idempotent: a
// host may coalesce repeated calls into a single frame.
type Redrawer interface {
	RequestRedraw()
}

// RedrawFunc adapts a function to Redrawer.
type RedrawFunc func()

func (fn RedrawFunc) RequestRedraw() {
	if fn != nil {
		fn()
	}
}
