// Package core provides the pure types shared by the stack, the screens and
// the terminal driver: the render target, colours, geometry and input frames.
// It has no Bubble Tea dependency so screens stay testable without a terminal.
package core

import "cmp"

// Rect is an axis-aligned cell area on a Canvas. X, Y is the bottom-left
// corner because canvas rows grow upward.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y-coordinate just past the top edge.
func (r Rect) Top() int { return r.Y + r.H }

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Inset shrinks r by n cells on every side. The result never has a
// negative size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// Clamp restricts val to [lo, hi].
func Clamp[T cmp.Ordered](val, lo, hi T) T {
	return min(max(val, lo), hi)
}
