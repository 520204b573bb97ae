package tui

import (
	"strings"
	"time"

	"github.com/vovakirdan/gander/internal/core"
)

// Keys accumulates key presses between ticks and publishes one InputFrame
// per tick. Terminals report presses but not releases, so a key counts as
// held for a short window after its last press (auto-repeat keeps it alive).
type Keys struct {
	window  time.Duration
	now     func() time.Time
	pending []core.KeyEvent
	last    map[string]time.Time
	frame   core.InputFrame
}

// NewKeys creates an input source with the given hold window.
func NewKeys(window time.Duration) *Keys {
	return &Keys{
		window: window,
		now:    time.Now,
		last:   make(map[string]time.Time),
		frame:  core.NewInputFrame(),
	}
}

// Press records a key press edge.
func (k *Keys) Press(ev core.KeyEvent) {
	k.pending = append(k.pending, ev)
	t := k.now()
	k.last[ev.Name()] = t
	if lower := strings.ToLower(ev.Name()); lower != ev.Name() {
		k.last[lower] = t
	}
}

// Advance publishes the presses recorded since the previous call together
// with the keys still inside their hold window.
func (k *Keys) Advance() {
	k.frame.Clear()
	for _, ev := range k.pending {
		k.frame.Push(ev)
	}
	k.pending = k.pending[:0]

	now := k.now()
	for name, t := range k.last {
		if now.Sub(t) < k.window {
			k.frame.SetHeld(name)
		} else {
			delete(k.last, name)
		}
	}
}

// Input returns the frame published by the last Advance.
func (k *Keys) Input() core.InputFrame {
	return k.frame
}
