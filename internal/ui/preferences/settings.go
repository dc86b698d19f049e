package preferences

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"progresscountdown/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	DurationSeconds int
	TextColor       string
	ForegroundColor string
	BackgroundColor string
	TextSize        float32
	StrokeWidth     float32

	StartOnLaunch  bool
	RestoreSession bool
}

// DefaultSettings returns default settings for the countdown.
func DefaultSettings() Settings {
	return Settings{
		DurationSeconds: 30,
		TextColor:       "#ffffff",
		ForegroundColor: "#000000",
		BackgroundColor: "#ffffff",
		TextSize:        22,
		StrokeWidth:     14,
		RestoreSession:  true,
	}
}

// Style converts settings to the renderer style. Colors that do not parse
// fall back to the defaults.
func (settings Settings) Style() model.Style {
	style := model.DefaultStyle()
	if settings.DurationSeconds >= 0 {
		style.DurationSeconds = settings.DurationSeconds
	}
	if parsed, ok := ParseColor(settings.TextColor); ok {
		style.TextColor = parsed
	}
	if parsed, ok := ParseColor(settings.ForegroundColor); ok {
		style.ForegroundColor = parsed
	}
	if parsed, ok := ParseColor(settings.BackgroundColor); ok {
		style.BackgroundColor = parsed
	}
	if settings.TextSize > 0 {
		style.TextSize = settings.TextSize
	}
	if settings.StrokeWidth > 0 {
		style.StrokeWidth = settings.StrokeWidth
	}
	return style
}

// ParseColor accepts "#rrggbb", "#rgb", "white" or "black".
func ParseColor(value string) (color.NRGBA, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "white":
		return model.White, true
	case "black":
		return model.Black, true
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
}
