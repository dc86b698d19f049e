package animation

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Config contains frame loop timing values.
type Config struct {
	FrameInterval time.Duration
}

// Loop turns redraw requests into frames delivered on the UI goroutine. A
// request made while a frame is already pending is absorbed by that frame.
type Loop struct {
	mu      sync.Mutex
	config  Config
	post    func(func())
	frame   func()
	ctx     context.Context
	cancel  context.CancelFunc
	pending bool
}

// New creates a frame loop. post hands a function to the UI goroutine and
// defaults to fyne.Do; frame is invoked once per scheduled frame.
func New(config Config, post func(func()), frame func()) *Loop {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	if post == nil {
		post = fyne.Do
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Loop{
		config: config,
		post:   post,
		frame:  frame,
		ctx:    ctx,
		cancel: cancel,
	}
}

// RequestRedraw schedules the next frame unless one is already pending.
func (loop *Loop) RequestRedraw() {
	loop.mu.Lock()
	if loop.pending || loop.ctx.Err() != nil {
		loop.mu.Unlock()
		return
	}
	loop.pending = true
	ctx := loop.ctx
	loop.mu.Unlock()

	go loop.run(ctx)
}

// Pending reports whether a frame is scheduled but not yet delivered.
func (loop *Loop) Pending() bool {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	return loop.pending
}

// Stop drops any pending frame and ignores later requests.
func (loop *Loop) Stop() {
	loop.mu.Lock()
	defer loop.mu.Unlock()
	loop.cancel()
	loop.pending = false
}

func (loop *Loop) run(ctx context.Context) {
	if !sleepWithContext(ctx, loop.config.FrameInterval) {
		return
	}
	loop.post(func() {
		loop.mu.Lock()
		loop.pending = false
		stopped := ctx.Err() != nil
		loop.mu.Unlock()

		if stopped || loop.frame == nil {
			return
		}
		loop.frame()
	})
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
