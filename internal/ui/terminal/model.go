package terminal

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"progresscountdown/internal/core/countdown"
	"progresscountdown/internal/core/model"
)

// durationStep is how much + and - change the duration, in seconds.
const durationStep = 5

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type frameMsg struct{}

// Config contains terminal rendering options.
type Config struct {
	Style         model.Style
	Radius        int
	FrameInterval time.Duration
}

// Model hosts a countdown.Timer in a bubbletea program. The timer's redraw
// requests are turned into frame messages.
type Model struct {
	timer     *countdown.Timer
	config    Config
	frame     countdown.Frame
	wantFrame bool
	scheduled bool
	status    string
}

// New creates a model driving timer. It takes over the timer's listener and
// redraw sink.
func New(timer *countdown.Timer, config Config) *Model {
	if config.Radius <= 0 {
		config.Radius = 6
	}
	if config.FrameInterval <= 0 {
		config.FrameInterval = 100 * time.Millisecond
	}

	m := &Model{
		timer:  timer,
		config: config,
		status: "ready",
	}
	timer.SetRedrawer(countdown.RedrawFunc(func() {
		m.wantFrame = true
	}))
	timer.SetListener(countdown.ListenerFuncs{
		Started:  func() { m.status = "counting down" },
		Stopped:  func() { m.status = "stopped" },
		Paused:   func() { m.status = "paused" },
		Resumed:  func() { m.status = "counting down" },
		Finished: func() { m.status = "finished" },
	})
	return m
}

func (m *Model) Init() tea.Cmd {
	m.frame = m.timer.Tick()
	return m.nextFrame()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.timer.Start()
		case "p", " ":
			if m.timer.IsPaused() {
				m.timer.Resume()
			} else {
				m.timer.Pause()
			}
		case "x":
			m.timer.Stop()
		case "+", "=":
			m.timer.SetDuration(m.timer.Duration() + durationStep)
		case "-":
			m.timer.SetDuration(max(0, m.timer.Duration()-durationStep))
		}
	case frameMsg:
		m.scheduled = false
	}

	m.frame = m.timer.Tick()
	return m, m.nextFrame()
}

func (m *Model) View() string {
	ring := RenderRing(m.frame.Fraction, m.frame.Remaining, m.config.Style, m.config.Radius)
	status := statusStyle.Render(fmt.Sprintf("%s · %ds of %ds", m.status, m.frame.Remaining, m.frame.Duration))
	help := helpStyle.Render("s start · p pause/resume · x stop · +/- duration · q quit")
	return lipgloss.JoinVertical(lipgloss.Center, ring, "", status, help) + "\n"
}

// Frame returns the last frame drawn.
func (m *Model) Frame() countdown.Frame {
	return m.frame
}

func (m *Model) nextFrame() tea.Cmd {
	if !m.wantFrame || m.scheduled {
		return nil
	}
	m.wantFrame = false
	m.scheduled = true
	return tea.Tick(m.config.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
