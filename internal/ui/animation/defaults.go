package animation

import "time"

// DefaultConfig returns a frame interval close to a 60 Hz display refresh.
func DefaultConfig() Config {
	return Config{
		FrameInterval: 16 * time.Millisecond,
	}
}
