package model

import "image/color"

// Style defines how a countdown is sized and colored. Renderers read it; the
// countdown state machine only uses DurationSeconds.
type Style struct {
	DurationSeconds int
	TextColor       color.NRGBA
	ForegroundColor color.NRGBA
	BackgroundColor color.NRGBA
	// TextSize and StrokeWidth are in device-independent units.
	TextSize    float32
	StrokeWidth float32
}

var (
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.NRGBA{A: 0xff}
)

// DefaultStyle returns the stock countdown appearance.
func DefaultStyle() Style {
	return Style{
		DurationSeconds: 30,
		TextColor:       White,
		ForegroundColor: Black,
		BackgroundColor: White,
		TextSize:        22,
		StrokeWidth:     14,
	}
}
