package countdown

import "progresscountdown/internal/core/model"

// PreviewFraction is the sweep shown when no live clock is available.
const PreviewFraction = 0.25

// Preview returns the static frame used for design-time previews: a quarter
// sweep labelled with the configured duration.
func Preview(style model.Style) Frame {
	return Frame{
		State:     StateIdle,
		Remaining: style.DurationSeconds,
		Duration:  style.DurationSeconds,
		Fraction:  PreviewFraction,
	}
}
