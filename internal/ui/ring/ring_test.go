package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	const (
		size   = 100.0
		stroke = 10.0
	)

	tests := []struct {
		name     string
		x, y     float64
		fraction float64
		want     Hit
	}{
		{name: "center", x: 50, y: 50, fraction: 0.5, want: Outside},
		{name: "corner", x: 1, y: 1, fraction: 0.5, want: Outside},
		{name: "just clockwise of start", x: 95, y: 52, fraction: 0.25, want: Arc},
		{name: "just anticlockwise of start", x: 95, y: 48, fraction: 0.25, want: Track},
		{name: "left side at quarter sweep", x: 5, y: 50, fraction: 0.25, want: Track},
		{name: "left side at full sweep", x: 5, y: 50, fraction: 1, want: Arc},
		{name: "bottom at zero sweep", x: 50, y: 95, fraction: 0, want: Track},
		{name: "bottom at sixty percent", x: 50, y: 95, fraction: 0.6, want: Arc},
		{name: "top at sixty percent", x: 50, y: 5, fraction: 0.6, want: Track},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.x, tt.y, size, size, stroke, tt.fraction))
		})
	}
}

func TestClassify_DegenerateBox(t *testing.T) {
	assert.Equal(t, Outside, Classify(0, 0, 0, 0, 10, 0.5))
	assert.Equal(t, Outside, Classify(5, 5, 10, 10, 0, 0.5))
}

func TestClassify_NonSquareBoxCentersRing(t *testing.T) {
	assert.Equal(t, Track, Classify(100, 5, 200, 100, 10, 0))
	assert.Equal(t, Outside, Classify(5, 50, 200, 100, 10, 0))
}

