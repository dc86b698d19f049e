package terminal

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"progresscountdown/internal/core/model"
	"progresscountdown/internal/ui/ring"
)

const (
	arcGlyph   = "█"
	trackGlyph = "░"
	// referenceSide is the widget size the style's stroke width is relative to.
	referenceSide = 50.0
)

// RenderRing draws the countdown ring as text, radius rows tall above and
// below the center. Terminal cells are about twice as tall as they are wide,
// so each row spans two columns per unit.
func RenderRing(fraction float64, remaining int, style model.Style, radius int) string {
	if radius < 2 {
		radius = 2
	}
	side := float64(2 * radius)
	stroke := math.Max(1, side*float64(style.StrokeWidth)/referenceSide)

	arcStyle := lipgloss.NewStyle().Foreground(hexColor(style.ForegroundColor))
	trackStyle := lipgloss.NewStyle().Foreground(hexColor(style.BackgroundColor))
	labelStyle := lipgloss.NewStyle().Foreground(hexColor(style.TextColor)).Bold(true)

	rows := 2 * radius
	cols := 4 * radius
	label := []rune(strconv.Itoa(remaining))
	labelRow := rows / 2
	labelStart := (cols - len(label)) / 2

	var builder strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row == labelRow && col >= labelStart && col < labelStart+len(label) {
				builder.WriteString(labelStyle.Render(string(label[col-labelStart])))
				continue
			}
			x := (float64(col) + 0.5) / 2
			y := float64(row) + 0.5
			switch ring.Classify(x, y, side, side, stroke, fraction) {
			case ring.Arc:
				builder.WriteString(arcStyle.Render(arcGlyph))
			case ring.Track:
				builder.WriteString(trackStyle.Render(trackGlyph))
			default:
				builder.WriteByte(' ')
			}
		}
		if row < rows-1 {
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

func hexColor(value color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", value.R, value.G, value.B))
}
