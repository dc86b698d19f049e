package countdown

// State represents the current countdown mode.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// Listener receives countdown lifecycle notifications.
type Listener interface {
	OnStarted()
	OnStopped()
	OnPaused()
	OnFinished()
}

// ResumeListener is an optional extension of Listener notified when a paused
// countdown continues.
type ResumeListener interface {
	OnResumed()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Started  func()
	Stopped  func()
	Paused   func()
	Resumed  func()
	Finished func()
}

func (funcs ListenerFuncs) OnStarted() {
	if funcs.Started != nil {
		funcs.Started()
	}
}

func (funcs ListenerFuncs) OnStopped() {
	if funcs.Stopped != nil {
		funcs.Stopped()
	}
}

func (funcs ListenerFuncs) OnPaused() {
	if funcs.Paused != nil {
		funcs.Paused()
	}
}

func (funcs ListenerFuncs) OnResumed() {
	if funcs.Resumed != nil {
		funcs.Resumed()
	}
}

func (funcs ListenerFuncs) OnFinished() {
	if funcs.Finished != nil {
		funcs.Finished()
	}
}

// Frame is the result of a single Tick: everything a renderer needs to draw
// the countdown at that instant.
type Frame struct {
	State     State
	Remaining int
	Duration  int
	// Fraction is the consumed part of the ring, in [0,1].
	Fraction float64
	// NeedsAnotherFrame is true while the countdown is running.
	NeedsAnotherFrame bool
	// Finished is true only for the tick that observed the
	// Running -> Finished transition.
	Finished bool
}
