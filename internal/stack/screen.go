// Package stack runs the screens of the application.
//
// A Stack owns an ordered list of content screens plus at most one overlay,
// the shared flag table, and the off-screen render target. Structural changes
// (push, pop, clear, overlay) are queued and applied at the top of the next
// Update, so a screen may reshape the stack from inside its own Update.
package stack

import (
	"weak"

	"github.com/vovakirdan/gander/internal/core"
)

// Screen is one full-screen update/draw unit.
type Screen interface {
	// Update advances the screen by dt seconds. resized is true on the frame
	// the render target was rebuilt. Returning true lets the screen below
	// update as well.
	Update(dt float64, resized bool) bool

	// Draw renders into target. Returning true lets the screen above draw.
	Draw(target *core.Canvas) bool

	// KnownFlags lists the shared flag names this screen understands.
	KnownFlags() []string
}

// Closer is implemented by screens holding resources that must be released
// when the stack drops them.
type Closer interface {
	Close()
}

// Factory builds a screen bound to the stack that runs the factory.
type Factory func(h Handle) Screen

// Handle is a non-owning reference to a Stack. Holding one never keeps the
// stack alive.
type Handle struct {
	p weak.Pointer[Stack]
}

// Stack resolves the handle. ok is false once the stack is gone or for the
// zero Handle.
func (h Handle) Stack() (s *Stack, ok bool) {
	s = h.p.Value()
	return s, s != nil
}

// Display is the physical surface frames are presented on.
type Display interface {
	// Size returns the current surface size in cells.
	Size() (w, h int)

	// Present shows a top-down frame.
	Present(f core.Frame)
}

// InputSource provides the keyboard state of the current frame.
type InputSource interface {
	Input() core.InputFrame
}

// InputFunc adapts a function to InputSource.
type InputFunc func() core.InputFrame

// Input calls f.
func (f InputFunc) Input() core.InputFrame { return f() }

type nopScreen struct{}

func (nopScreen) Update(float64, bool) bool { return false }
func (nopScreen) Draw(*core.Canvas) bool    { return false }
func (nopScreen) KnownFlags() []string      { return nil }
