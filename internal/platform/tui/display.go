package tui

import "github.com/vovakirdan/gander/internal/core"

// Display is the terminal surface the stack presents to. The model keeps
// its size in sync with window-size messages and renders the last frame.
type Display struct {
	width  int
	height int
	frame  core.Frame
}

// NewDisplay creates a display of the given size.
func NewDisplay(width, height int) *Display {
	return &Display{width: max(width, 0), height: max(height, 0)}
}

// Size returns the terminal size in cells.
func (d *Display) Size() (int, int) {
	return d.width, d.height
}

// Resize records a new terminal size. The stack notices on its next update.
func (d *Display) Resize(width, height int) {
	d.width = max(width, 0)
	d.height = max(height, 0)
}

// Present stores the frame to show on the next View.
func (d *Display) Present(f core.Frame) {
	d.frame = f
}

// Frame returns the last presented frame.
func (d *Display) Frame() core.Frame {
	return d.frame
}
