package countdownview

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progresscountdown/internal/core/countdown"
	"progresscountdown/internal/core/model"
)

func newTestRenderer(t *testing.T, style model.Style) (*Countdown, *countdownRenderer) {
	t.Helper()
	test.NewTempApp(t)

	view := New(style)
	renderer, ok := test.WidgetRenderer(view).(*countdownRenderer)
	require.True(t, ok)
	return view, renderer
}

func TestCountdown_InitialLabelIsDuration(t *testing.T) {
	_, renderer := newTestRenderer(t, model.DefaultStyle())

	assert.Equal(t, "30", renderer.label.Text)
	assert.Equal(t, float32(22), renderer.label.TextSize)
	assert.Equal(t, 0.0, renderer.fraction)
}

func TestCountdown_RenderFrame(t *testing.T) {
	view, renderer := newTestRenderer(t, model.DefaultStyle())

	view.RenderFrame(countdown.Frame{Remaining: 12, Duration: 30, Fraction: 0.6})
	assert.Equal(t, "12", renderer.label.Text)
	assert.Equal(t, 0.6, renderer.fraction)
}

func TestCountdown_PreviewIgnoresFrames(t *testing.T) {
	style := model.DefaultStyle()
	style.DurationSeconds = 45
	view, renderer := newTestRenderer(t, style)

	view.SetPreview(true)
	view.Render(0.9, 3)
	assert.Equal(t, "45", renderer.label.Text)
	assert.Equal(t, countdown.PreviewFraction, renderer.fraction)

	view.SetPreview(false)
	assert.Equal(t, "3", renderer.label.Text)
}

func TestCountdown_SetStyle(t *testing.T) {
	view, renderer := newTestRenderer(t, model.DefaultStyle())

	style := model.DefaultStyle()
	style.TextColor = color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	style.TextSize = 30
	view.SetStyle(style)

	assert.Equal(t, style.TextColor, renderer.label.Color)
	assert.Equal(t, float32(30), renderer.label.TextSize)
}

func TestCountdown_LayoutCentersSquare(t *testing.T) {
	_, renderer := newTestRenderer(t, model.DefaultStyle())

	renderer.Layout(fyne.NewSize(200, 100))
	assert.Equal(t, fyne.NewPos(50, 0), renderer.ring.Position())
	assert.Equal(t, fyne.NewSize(100, 100), renderer.ring.Size())
	assert.Equal(t, float32(50), renderer.label.Position().X)
	assert.Equal(t, float32(100), renderer.label.Size().Width)
}

func TestCountdown_MinSize(t *testing.T) {
	_, renderer := newTestRenderer(t, model.DefaultStyle())

	size := renderer.MinSize()
	assert.Equal(t, size.Width, size.Height)
	assert.GreaterOrEqual(t, size.Width, minSide)
}

func TestCountdown_PixelColors(t *testing.T) {
	style := model.DefaultStyle()
	style.StrokeWidth = 10
	view, renderer := newTestRenderer(t, style)
	renderer.Layout(fyne.NewSize(100, 100))
	view.Render(0.25, 22)

	assert.Equal(t, style.ForegroundColor, renderer.pixel(94, 52, 100, 100))
	assert.Equal(t, style.BackgroundColor, renderer.pixel(5, 50, 100, 100))
	assert.Equal(t, color.Transparent, renderer.pixel(50, 50, 100, 100))
}
