package countdownview

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"progresscountdown/internal/core/countdown"
	"progresscountdown/internal/core/model"
	"progresscountdown/internal/ui/ring"
)

// minSide is the smallest square the ring is drawn into.
const minSide = float32(50)

// Countdown draws a circular countdown: a track ring, the consumed arc on top
// of it and the remaining seconds in the middle. It holds no time logic; the
// host feeds it frames from countdown.Timer.
type Countdown struct {
	widget.BaseWidget

	style     model.Style
	fraction  float64
	remaining int
	preview   bool
}

// New creates a countdown widget showing a full ring.
func New(style model.Style) *Countdown {
	view := &Countdown{
		style:     style,
		remaining: style.DurationSeconds,
	}
	view.ExtendBaseWidget(view)
	return view
}

// Render shows the given consumed fraction and remaining seconds.
func (view *Countdown) Render(fraction float64, remaining int) {
	view.fraction = fraction
	view.remaining = remaining
	view.Refresh()
}

// RenderFrame shows a frame produced by countdown.Timer.Tick.
func (view *Countdown) RenderFrame(frame countdown.Frame) {
	view.Render(frame.Fraction, frame.Remaining)
}

// SetStyle replaces colors, sizes and the preview duration.
func (view *Countdown) SetStyle(style model.Style) {
	view.style = style
	view.Refresh()
}

// SetPreview switches to the static design-time preview.
func (view *Countdown) SetPreview(enabled bool) {
	view.preview = enabled
	view.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (view *Countdown) CreateRenderer() fyne.WidgetRenderer {
	view.ExtendBaseWidget(view)

	label := canvas.NewText("", view.style.TextColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	renderer := &countdownRenderer{
		view:  view,
		label: label,
	}
	renderer.ring = canvas.NewRasterWithPixels(renderer.pixel)
	renderer.Refresh()
	return renderer
}

func (view *Countdown) displayed() (float64, int) {
	if view.preview {
		frame := countdown.Preview(view.style)
		return frame.Fraction, frame.Remaining
	}
	return view.fraction, view.remaining
}

type countdownRenderer struct {
	view     *Countdown
	ring     *canvas.Raster
	label    *canvas.Text
	size     fyne.Size
	fraction float64
	style    model.Style
}

func (renderer *countdownRenderer) Layout(size fyne.Size) {
	renderer.size = size
	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	origin := fyne.NewPos((size.Width-side)/2, (size.Height-side)/2)

	renderer.ring.Move(origin)
	renderer.ring.Resize(fyne.NewSize(side, side))

	labelSize := renderer.label.MinSize()
	renderer.label.Move(fyne.NewPos(origin.X, origin.Y+(side-labelSize.Height)/2))
	renderer.label.Resize(fyne.NewSize(side, labelSize.Height))
}

func (renderer *countdownRenderer) MinSize() fyne.Size {
	labelSize := renderer.label.MinSize()
	side := minSide
	if labelSize.Width+2*renderer.style.StrokeWidth > side {
		side = labelSize.Width + 2*renderer.style.StrokeWidth
	}
	return fyne.NewSize(side, side)
}

func (renderer *countdownRenderer) Refresh() {
	fraction, remaining := renderer.view.displayed()
	renderer.fraction = fraction
	renderer.style = renderer.view.style

	renderer.label.Text = strconv.Itoa(remaining)
	renderer.label.Color = renderer.style.TextColor
	renderer.label.TextSize = renderer.style.TextSize
	if renderer.size.Width > 0 {
		renderer.Layout(renderer.size)
	}

	renderer.ring.Refresh()
	renderer.label.Refresh()
}

func (renderer *countdownRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.ring, renderer.label}
}

func (renderer *countdownRenderer) Destroy() {}

// pixel colors one raster pixel. Raster coordinates are device pixels, so the
// stroke is scaled from canvas units.
func (renderer *countdownRenderer) pixel(x, y, w, h int) color.Color {
	scale := float64(1)
	side := renderer.ring.Size().Width
	if side > 0 {
		scale = float64(w) / float64(side)
	}
	stroke := float64(renderer.style.StrokeWidth) * scale

	switch ring.Classify(float64(x)+0.5, float64(y)+0.5, float64(w), float64(h), stroke, renderer.fraction) {
	case ring.Arc:
		return renderer.style.ForegroundColor
	case ring.Track:
		return renderer.style.BackgroundColor
	default:
		return color.Transparent
	}
}
