package countdown

import "time"

// DefaultDuration is the countdown length in seconds used when none is configured.
const DefaultDuration = 30

// Options contains the collaborators a Timer is driven by.
type Options struct {
	Clock    Clock
	Redrawer Redrawer
}

// Timer is the countdown state machine. It never schedules work on its own:
// the host calls Tick once per frame and forwards the returned Frame to a
// renderer. A Timer is confined to the host's UI goroutine and is not safe
// for concurrent use.
type Timer struct {
	options   Options
	listener  Listener
	state     State
	duration  int
	remaining int
	startedAt time.Time
	pausedAt  time.Time
}

// New creates an idle Timer counting down from durationSeconds.
func New(durationSeconds int, options Options) *Timer {
	if options.Clock == nil {
		options.Clock = SystemClock{}
	}
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return &Timer{
		options:   options,
		state:     StateIdle,
		duration:  durationSeconds,
		remaining: durationSeconds,
	}
}

// SetListener replaces the lifecycle listener. Passing nil removes it.
func (timer *Timer) SetListener(listener Listener) {
	timer.listener = listener
}

// SetRedrawer replaces the redraw sink.
func (timer *Timer) SetRedrawer(redrawer Redrawer) {
	timer.options.Redrawer = redrawer
}

// Start begins counting down from the full duration. Starting a finished
// countdown restarts it; calls while running or paused are ignored.
func (timer *Timer) Start() {
	if timer.state == StateRunning || timer.state == StatePaused {
		return
	}
	timer.state = StateRunning
	timer.startedAt = timer.options.Clock.Now()
	timer.pausedAt = time.Time{}
	timer.remaining = timer.duration
	timer.requestRedraw()

	if timer.listener != nil {
		timer.listener.OnStarted()
	}
}

// Stop returns the countdown to idle.
func (timer *Timer) Stop() {
	if timer.state == StateIdle {
		return
	}
	timer.state = StateIdle
	timer.pausedAt = time.Time{}
	timer.requestRedraw()

	if timer.listener != nil {
		timer.listener.OnStopped()
	}
}

// Pause freezes the remaining time at its current value.
func (timer *Timer) Pause() {
	if timer.state != StateRunning {
		return
	}
	now := timer.options.Clock.Now()
	timer.remaining = timer.remainingAt(now)
	if timer.remaining <= 0 {
		timer.requestRedraw()
		timer.finish()
		return
	}
	timer.state = StatePaused
	timer.pausedAt = now
	timer.requestRedraw()

	if timer.listener != nil {
		timer.listener.OnPaused()
	}
}

// Resume continues a paused countdown. The time spent paused is excluded by
// moving the time origin forward.
func (timer *Timer) Resume() {
	if timer.state != StatePaused {
		return
	}
	now := timer.options.Clock.Now()
	timer.startedAt = timer.startedAt.Add(now.Sub(timer.pausedAt))
	timer.pausedAt = time.Time{}
	timer.state = StateRunning
	timer.requestRedraw()

	if resumer, ok := timer.listener.(ResumeListener); ok {
		resumer.OnResumed()
	}
}

// Tick recomputes the remaining time and reports what should be drawn. While
// running it requests the next frame from the redraw sink.
func (timer *Timer) Tick() Frame {
	finished := false
	switch timer.state {
	case StateRunning:
		timer.remaining = timer.remainingAt(timer.options.Clock.Now())
		if timer.remaining <= 0 {
			finished = true
		}
	case StateFinished:
		timer.remaining = 0
	}

	if finished {
		frame := timer.frame()
		frame.State = StateFinished
		frame.Fraction = 1
		frame.NeedsAnotherFrame = false
		frame.Finished = true
		timer.finish()
		return frame
	}

	frame := timer.frame()
	if frame.NeedsAnotherFrame {
		timer.requestRedraw()
	}
	return frame
}

// Duration returns the configured countdown length in seconds.
func (timer *Timer) Duration() int {
	return timer.duration
}

// SetDuration changes the countdown length without moving the time origin,
// so a running countdown is extended or shortened in place.
func (timer *Timer) SetDuration(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	timer.duration = seconds
	switch timer.state {
	case StateIdle:
		timer.remaining = seconds
	case StatePaused:
		timer.remaining = timer.remainingAt(timer.pausedAt)
	}
	timer.requestRedraw()
}

// Remaining returns the remaining seconds computed by the last Tick or
// control call. It does not read the clock.
func (timer *Timer) Remaining() int {
	return timer.remaining
}

// SetCurrentProgress moves the countdown to the given remaining time. The
// time origin is shifted so natural decay continues from the new value. A
// value above the duration grows the duration to match.
func (timer *Timer) SetCurrentProgress(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	now := timer.options.Clock.Now()
	if timer.state == StateRunning {
		timer.remaining = timer.remainingAt(now)
	}

	delta := seconds - timer.remaining
	timer.startedAt = timer.startedAt.Add(time.Duration(delta) * time.Second)
	timer.remaining = seconds

	if seconds > timer.duration {
		timer.startedAt = now
		timer.duration = seconds
		if timer.state == StatePaused {
			timer.pausedAt = now
		}
	}
	timer.requestRedraw()
}

// State returns the current mode.
func (timer *Timer) State() State {
	return timer.state
}

// IsRunning reports whether the countdown is actively counting down.
func (timer *Timer) IsRunning() bool {
	return timer.state == StateRunning
}

// IsPaused reports whether the countdown is paused.
func (timer *Timer) IsPaused() bool {
	return timer.state == StatePaused
}

// Fraction converts remaining seconds into the consumed part of the ring.
// A non-positive duration counts as fully consumed.
func Fraction(remaining, duration int) float64 {
	if duration <= 0 {
		return 1
	}
	fraction := 1 - float64(remaining)/float64(duration)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

func (timer *Timer) finish() {
	timer.state = StateFinished
	timer.remaining = 0
	timer.pausedAt = time.Time{}

	if timer.listener != nil {
		timer.listener.OnFinished()
	}
}

func (timer *Timer) remainingAt(now time.Time) int {
	elapsed := now.Sub(timer.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := timer.duration - int(elapsed/time.Second)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (timer *Timer) frame() Frame {
	return Frame{
		State:             timer.state,
		Remaining:         timer.remaining,
		Duration:          timer.duration,
		Fraction:          Fraction(timer.remaining, timer.duration),
		NeedsAnotherFrame: timer.state == StateRunning,
	}
}

func (timer *Timer) requestRedraw() {
	if timer.options.Redrawer != nil {
		timer.options.Redrawer.RequestRedraw()
	}
}
