package stack

import (
	"io"
	"sort"
	"weak"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gander/internal/core"
	"github.com/vovakirdan/gander/internal/shared"
)

// Options configures a Stack.
type Options struct {
	// Fallback builds the screen inserted whenever the stack runs empty.
	// A silent placeholder is used when nil.
	Fallback Factory

	// FallbackOverlay builds the overlay inserted alongside the fallback
	// screen when no overlay is set. Nothing is inserted when nil.
	FallbackOverlay Factory

	// Logger receives diagnostics. Discarded when nil.
	Logger *log.Logger
}

// Stack owns the screens, the overlay, the shared data and the render target.
// It is driven from a single goroutine: one Update then one Draw per frame.
type Stack struct {
	screens []Screen
	overlay Screen
	pending []pendingAction

	target  *core.Canvas
	shared  *shared.Data
	display Display
	input   InputSource
	opts    Options
	logger  *log.Logger

	rebuilds int
}

// New creates an empty stack presenting to display.
// input may be nil, in which case screens see no keys.
func New(display Display, input InputSource, opts Options) *Stack {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Stack{
		shared:  shared.New(),
		display: display,
		input:   input,
		opts:    opts,
		logger:  logger,
	}
}

// Handle returns a non-owning reference to s.
func (s *Stack) Handle() Handle {
	return Handle{p: weak.Make(s)}
}

// Shared returns the flag table and output queue of this stack.
func (s *Stack) Shared() *shared.Data { return s.shared }

// Logger returns the stack's logger.
func (s *Stack) Logger() *log.Logger { return s.logger }

// Input returns the keyboard state for the current frame.
func (s *Stack) Input() core.InputFrame {
	if s.input == nil {
		return core.NewInputFrame()
	}
	return s.input.Input()
}

// Target returns the current render target. Nil before the first Update.
func (s *Stack) Target() *core.Canvas { return s.target }

// Rebuilds returns how many times the render target has been created.
func (s *Stack) Rebuilds() int { return s.rebuilds }

// Len returns the number of live content screens.
func (s *Stack) Len() int { return len(s.screens) }

// HasOverlay reports whether an overlay is live.
func (s *Stack) HasOverlay() bool { return s.overlay != nil }

// Overlay returns the live overlay, or nil.
func (s *Stack) Overlay() Screen { return s.overlay }

// Screens returns the live content screens, bottom first.
func (s *Stack) Screens() []Screen {
	out := make([]Screen, len(s.screens))
	copy(out, s.screens)
	return out
}

// Pending returns the number of queued actions.
func (s *Stack) Pending() int { return len(s.pending) }

// Push queues pushing an already built screen.
func (s *Stack) Push(screen Screen) { s.enqueue(actionPush, screen, nil) }

// PushConstructing queues building a screen with f and pushing it.
func (s *Stack) PushConstructing(f Factory) { s.enqueue(actionConstruct, nil, f) }

// Pop queues removing the top screen.
func (s *Stack) Pop() { s.enqueue(actionPop, nil, nil) }

// Clear queues removing every content screen.
func (s *Stack) Clear() { s.enqueue(actionClear, nil, nil) }

// SetOverlay queues replacing the overlay with one built by f.
func (s *Stack) SetOverlay(f Factory) { s.enqueue(actionSetOverlay, nil, f) }

// UnsetOverlay queues removing the overlay.
func (s *Stack) UnsetOverlay() { s.enqueue(actionUnsetOverlay, nil, nil) }

func (s *Stack) enqueue(kind actionKind, screen Screen, f Factory) {
	a, ok := newAction(kind, screen, f)
	if !ok {
		s.logger.Debug("malformed stack action, queued as no-op", "kind", kind)
	}
	s.pending = append(s.pending, a)
}

// KnownFlags returns the sorted union of flag names declared by every live
// screen and the overlay.
func (s *Stack) KnownFlags() []string {
	seen := make(map[string]struct{})
	add := func(sc Screen) {
		for _, name := range sc.KnownFlags() {
			seen[name] = struct{}{}
		}
	}
	for _, sc := range s.screens {
		add(sc)
	}
	if s.overlay != nil {
		add(s.overlay)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Update applies queued actions, tracks display resizes, keeps the stack
// non-empty, then updates the overlay and the content screens top-down.
func (s *Stack) Update(dt float64) {
	s.handlePendingActions()
	resized := s.syncTarget()

	if len(s.screens) == 0 {
		s.logger.Debug("stack empty, inserting fallback screen")
		s.enqueueFallback()
		s.handlePendingActions()
	}

	if s.overlay != nil && !s.overlay.Update(dt, resized) {
		return
	}
	for i := len(s.screens) - 1; i >= 0; i-- {
		if !s.screens[i].Update(dt, resized) {
			break
		}
	}
}

// Draw renders content screens bottom-up, the overlay last, and presents the
// flipped target.
func (s *Stack) Draw() {
	if s.target == nil {
		s.syncTarget()
	}
	s.target.Clear()

	for _, sc := range s.screens {
		if !sc.Draw(s.target) {
			break
		}
	}
	if s.overlay != nil {
		s.overlay.Draw(s.target)
	}

	if s.display != nil {
		s.display.Present(s.target.Flip())
	}
}

// Close drops every screen and the overlay, releasing their resources.
// Queued actions are discarded.
func (s *Stack) Close() {
	s.pending = nil
	for i := len(s.screens) - 1; i >= 0; i-- {
		closeScreen(s.screens[i])
	}
	s.screens = nil
	if s.overlay != nil {
		closeScreen(s.overlay)
		s.overlay = nil
	}
}

func (s *Stack) enqueueFallback() {
	fallback := s.opts.Fallback
	if fallback == nil {
		fallback = func(Handle) Screen { return nopScreen{} }
	}
	s.PushConstructing(fallback)
	if s.overlay == nil && s.opts.FallbackOverlay != nil {
		s.SetOverlay(s.opts.FallbackOverlay)
	}
}

// syncTarget rebuilds the render target when the display size differs from
// it. Returns true when a rebuild happened.
func (s *Stack) syncTarget() bool {
	w, h := 0, 0
	if s.display != nil {
		w, h = s.display.Size()
	}
	if s.target != nil && s.target.Width() == w && s.target.Height() == h {
		return false
	}

	s.target = core.NewCanvas(w, h)
	s.rebuilds++
	s.logger.Debug("render target rebuilt", "width", w, "height", h)
	return true
}

// handlePendingActions is the only place screens and overlay change.
// Actions queued while draining run in the same pass.
func (s *Stack) handlePendingActions() {
	for len(s.pending) > 0 {
		a := s.pending[0]
		s.pending[0] = pendingAction{}
		s.pending = s.pending[1:]
		s.apply(a)
	}
	s.pending = nil
}

func (s *Stack) apply(a pendingAction) {
	switch a.kind {
	case actionNone:
	case actionPush:
		s.screens = append(s.screens, a.screen)
	case actionConstruct:
		if sc := a.factory(s.Handle()); sc != nil {
			s.screens = append(s.screens, sc)
		}
	case actionPop:
		if len(s.screens) == 0 {
			s.logger.Debug("pop on empty stack ignored")
			return
		}
		top := s.screens[len(s.screens)-1]
		s.screens[len(s.screens)-1] = nil
		s.screens = s.screens[:len(s.screens)-1]
		closeScreen(top)
	case actionClear:
		if len(s.screens) == 0 {
			s.logger.Debug("clear on empty stack ignored")
			return
		}
		for i := len(s.screens) - 1; i >= 0; i-- {
			closeScreen(s.screens[i])
		}
		s.screens = nil
	case actionSetOverlay:
		sc := a.factory(s.Handle())
		if sc == nil {
			return
		}
		if s.overlay != nil {
			closeScreen(s.overlay)
		}
		s.overlay = sc
	case actionUnsetOverlay:
		if s.overlay == nil {
			return
		}
		closeScreen(s.overlay)
		s.overlay = nil
	}
}

func closeScreen(sc Screen) {
	if c, ok := sc.(Closer); ok {
		c.Close()
	}
}
