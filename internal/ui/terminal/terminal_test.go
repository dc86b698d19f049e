package terminal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresscountdown/internal/core/countdown"
	"progresscountdown/internal/core/model"
)

type manualClock struct {
	now time.Time
}

func (clock *manualClock) Now() time.Time {
	return clock.now
}

func key(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestRenderRing_Shape(t *testing.T) {
	out := RenderRing(0.5, 17, model.DefaultStyle(), 5)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 10)
	assert.Contains(t, lines[5], "17")
	assert.Contains(t, out, arcGlyph)
	assert.Contains(t, out, trackGlyph)
}

func TestRenderRing_EmptyAndFull(t *testing.T) {
	untouched := RenderRing(0, 30, model.DefaultStyle(), 4)
	assert.NotContains(t, untouched, arcGlyph)
	assert.Contains(t, untouched, trackGlyph)

	consumed := RenderRing(1, 0, model.DefaultStyle(), 4)
	assert.Contains(t, consumed, arcGlyph)
	assert.NotContains(t, consumed, trackGlyph)
}

func TestRenderRing_MinimumRadius(t *testing.T) {
	out := RenderRing(0.25, 5, model.DefaultStyle(), 0)
	assert.Len(t, strings.Split(out, "\n"), 4)
}

func TestModel_KeysDriveTimer(t *testing.T) {
	clock := &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	timer := countdown.New(10, countdown.Options{Clock: clock})
	m := New(timer, Config{Style: model.DefaultStyle()})

	assert.Nil(t, m.Init(), "idle countdown needs no frames")

	_, cmd := m.Update(key("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, countdown.StateRunning, timer.State())
	assert.True(t, m.scheduled)

	clock.now = clock.now.Add(4 * time.Second)
	_, cmd = m.Update(frameMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, 6, m.Frame().Remaining)

	_, _ = m.Update(key("p"))
	assert.Equal(t, countdown.StatePaused, timer.State())
	assert.Contains(t, m.View(), "paused")

	_, _ = m.Update(key("+"))
	assert.Equal(t, 15, timer.Duration())
	assert.Equal(t, 11, m.Frame().Remaining)

	_, _ = m.Update(key("p"))
	assert.Equal(t, countdown.StateRunning, timer.State())

	clock.now = clock.now.Add(11 * time.Second)
	_, _ = m.Update(frameMsg{})
	assert.Equal(t, countdown.StateFinished, timer.State())
	assert.Contains(t, m.View(), "finished")

	_, _ = m.Update(key("x"))
	assert.Equal(t, countdown.StateIdle, timer.State())
}

func TestModel_FrameChainStopsWhenIdle(t *testing.T) {
	timer := countdown.New(10, countdown.Options{Clock: &manualClock{}})
	m := New(timer, Config{Style: model.DefaultStyle()})
	m.Init()

	_, cmd := m.Update(key("-"))
	require.NotNil(t, cmd, "a duration change redraws once")
	assert.Equal(t, 5, timer.Duration())

	_, cmd = m.Update(frameMsg{})
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m := New(countdown.New(10, countdown.Options{}), Config{})

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
