package window

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"progresscountdown/internal/core/countdown"
	"progresscountdown/internal/core/model"
	"progresscountdown/internal/ui/countdownview"
)

// Controls is the part of countdown.Timer the window drives.
type Controls interface {
	Start()
	Stop()
	Pause()
	Resume()
	State() countdown.State
}

// Config defines window visuals.
type Config struct {
	Title   string
	Style   model.Style
	Preview bool
}

// Window hosts the countdown widget and its control buttons.
type Window struct {
	window      fyne.Window
	controls    Controls
	view        *countdownview.Countdown
	statusLabel *canvas.Text
	startButton *widget.Button
	pauseButton *widget.Button
	stopButton  *widget.Button
	state       countdown.State
	synced      bool
}

// New creates the countdown window. Closing it only hides it.
func New(app fyne.App, config Config, controls Controls) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := countdownview.New(config.Style)
	view.SetPreview(config.Preview)

	statusLabel := canvas.NewText("", color.NRGBA{R: 160, G: 160, B: 160, A: 255})
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextSize = 13

	win := &Window{
		window:      window,
		controls:    controls,
		view:        view,
		statusLabel: statusLabel,
	}
	win.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), controls.Start)
	win.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), win.togglePause)
	win.stopButton = widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), controls.Stop)

	buttons := container.NewGridWithColumns(3, win.startButton, win.pauseButton, win.stopButton)
	footer := container.NewVBox(statusLabel, buttons)
	window.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewPadded(view)))
	window.Resize(fyne.NewSize(280, 340))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	if config.Preview {
		statusLabel.Text = "Preview"
		win.startButton.Disable()
		win.pauseButton.Disable()
		win.stopButton.Disable()
		return win
	}
	win.SyncState(controls.State())
	return win
}

// Show displays the window.
func (win *Window) Show() {
	win.window.Show()
	win.window.RequestFocus()
}

// Hide hides the window.
func (win *Window) Hide() {
	win.window.Hide()
}

// SetOnClose replaces the default hide-on-close behaviour.
func (win *Window) SetOnClose(onClose func()) {
	win.window.SetCloseIntercept(onClose)
}

// RenderFrame draws a frame and updates the controls when the state moved.
func (win *Window) RenderFrame(frame countdown.Frame) {
	win.view.RenderFrame(frame)
	win.SyncState(frame.State)
}

// SetStyle applies new colors and sizes.
func (win *Window) SetStyle(style model.Style) {
	win.view.SetStyle(style)
}

// SyncState enables the buttons that apply to state. Repeated calls with
// the same state are ignored.
func (win *Window) SyncState(state countdown.State) {
	if win.synced && state == win.state {
		return
	}
	win.state = state
	win.synced = true

	win.statusLabel.Text = statusText(state)
	win.statusLabel.Refresh()

	setEnabled(win.startButton, state == countdown.StateIdle || state == countdown.StateFinished)
	setEnabled(win.pauseButton, state == countdown.StateRunning || state == countdown.StatePaused)
	setEnabled(win.stopButton, state != countdown.StateIdle)

	if state == countdown.StatePaused {
		win.pauseButton.SetText("Resume")
		win.pauseButton.SetIcon(theme.MediaPlayIcon())
	} else {
		win.pauseButton.SetText("Pause")
		win.pauseButton.SetIcon(theme.MediaPauseIcon())
	}
}

func (win *Window) togglePause() {
	if win.controls.State() == countdown.StatePaused {
		win.controls.Resume()
		return
	}
	win.controls.Pause()
}

func statusText(state countdown.State) string {
	switch state {
	case countdown.StateRunning:
		return "Counting down"
	case countdown.StatePaused:
		return "Paused"
	case countdown.StateFinished:
		return "Finished"
	default:
		return "Ready"
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
