package core

import "time"

// RuntimeConfig contains the driver settings handed to the stack and screens.
type RuntimeConfig struct {
	ScreenW    int           // Display width in cells
	ScreenH    int           // Display height in cells
	TickRate   int           // Frames per second (default 60)
	Seed       int64         // RNG seed; 0 means use current time
	HoldWindow time.Duration // How long a key press counts as held
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0,
		HoldWindow: 150 * time.Millisecond,
	}
}

// FrameDuration returns the target duration of a single frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}
