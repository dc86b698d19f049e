// Package ring holds the geometry shared by the countdown renderers: a stroked
// circle inscribed in a square box with a clockwise arc starting at 3 o'clock.
package ring

import "math"

// Hit classifies a point relative to the ring.
type Hit int

const (
	Outside Hit = iota
	Track
	Arc
)

// Classify reports whether the point (x, y) of a width x height box lies on
// the consumed arc, on the remaining track, or outside the ring. The ring is
// centered, sized to the shorter side and inset by half the stroke.
func Classify(x, y, width, height, stroke, fraction float64) Hit {
	side := math.Min(width, height)
	if side <= 0 || stroke <= 0 {
		return Outside
	}
	if stroke > side/2 {
		stroke = side / 2
	}

	dx := x - width/2
	dy := y - height/2
	radius := (side - stroke) / 2
	if math.Abs(math.Hypot(dx, dy)-radius) > stroke/2 {
		return Outside
	}

	if fraction >= 1 {
		return Arc
	}
	if fraction <= 0 {
		return Track
	}
	// Screen y grows downwards, so atan2 already measures clockwise.
	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle < fraction*2*math.Pi {
		return Arc
	}
	return Track
}

