// Package debug implements the debug overlay: a script console with a
// swappable Lua/JavaScript engine and, while the console is hidden, a small
// HUD with the frame rate and movement mode.
package debug

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gander/internal/console"
	"github.com/vovakirdan/gander/internal/core"
	"github.com/vovakirdan/gander/internal/flags"
	"github.com/vovakirdan/gander/internal/registry"
	"github.com/vovakirdan/gander/internal/script"
	"github.com/vovakirdan/gander/internal/shared"
	"github.com/vovakirdan/gander/internal/stack"
)

// ID is the registry id of the overlay.
const ID = "debug"

// ToggleRune shows and hides the console.
const ToggleRune = '`'

// Options configures the overlay.
type Options struct {
	Capacity      int           // Console lines and history entries
	ScriptTimeout time.Duration // Bound on one submission; 0 disables
	Engine        script.Kind   // Engine used when no selection exists yet
	DefaultScreen string        // Registry id pushed by reset_stack
	ShowFPS       bool          // Initial fps-display-enabled value
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Capacity:      console.DefaultCapacity,
		ScriptTimeout: 2 * time.Second,
		Engine:        script.KindLua,
		DefaultScreen: "battle",
		ShowFPS:       true,
	}
}

// Factory returns a stack factory building the overlay with opts.
func Factory(opts Options) stack.Factory {
	return func(h stack.Handle) stack.Screen {
		return New(h, opts)
	}
}

func init() {
	registry.Register(ID, "Debug console", Factory(DefaultOptions()))
}

// Screen is the debug overlay.
type Screen struct {
	h      stack.Handle
	sd     *shared.Data
	logger *log.Logger
	opts   Options

	con    *console.Console
	engine script.Engine

	fps    float64
	frames int
	acc    float64
}

var (
	_ stack.Screen = (*Screen)(nil)
	_ script.Host  = host{}
)

// New builds the overlay for the stack behind h and starts its engine.
func New(h stack.Handle, opts Options) *Screen {
	s := &Screen{
		h:      h,
		sd:     shared.New(),
		logger: log.New(io.Discard),
		opts:   opts,
		con:    console.New(opts.Capacity),
	}
	if st, ok := h.Stack(); ok {
		s.sd = st.Shared()
		s.logger = st.Logger()
	}

	s.sd.Ensure(flags.ConsoleVisible, false)
	s.sd.Ensure(flags.FPSDisplayEnabled, opts.ShowFPS)
	s.sd.Ensure(flags.EngineSwapRequest, false)
	s.sd.Ensure(flags.ScriptEngineJS, opts.Engine == script.KindJS)

	kind := script.KindLua
	if s.sd.Enabled(flags.ScriptEngineJS) {
		kind = script.KindJS
	}
	s.startEngine(kind)
	s.con.SetVisible(s.sd.Enabled(flags.ConsoleVisible))
	return s
}

func (s *Screen) startEngine(kind script.Kind) {
	e, err := script.New(kind, script.API(host{s}), s.opts.ScriptTimeout)
	if err != nil {
		s.logger.Error("script engine start failed", "engine", kind, "error", err)
		s.sd.Print(fmt.Sprintf("Failed to start %s engine: %v", kind, err))
		return
	}
	s.engine = e
	s.sd.Set(flags.ScriptEngineJS, kind == script.KindJS)
	s.logger.Debug("script engine started", "engine", kind)
}

// Engine returns the active engine kind.
func (s *Screen) Engine() script.Kind {
	if s.engine == nil {
		return script.KindLua
	}
	return s.engine.Kind()
}

// Console exposes the console model.
func (s *Screen) Console() *console.Console { return s.con }

// FPS returns the last measured frame rate.
func (s *Screen) FPS() float64 { return s.fps }

// host is the script.Host the engines see.
type host struct{ s *Screen }

func (h host) Shared() *shared.Data { return h.s.sd }
func (h host) ResetStack() error    { return h.s.resetStack() }
func (h host) ClearStack()          { h.s.clearStack() }

// KnownFlags reports the union over the whole stack.
func (h host) KnownFlags() []string {
	if st, ok := h.s.h.Stack(); ok {
		return st.KnownFlags()
	}
	return h.s.KnownFlags()
}

// resetStack replaces every content screen with a fresh default screen and
// makes sure an overlay exists.
func (s *Screen) resetStack() error {
	st, ok := s.h.Stack()
	if !ok {
		return fmt.Errorf("stack is gone")
	}
	f, err := registry.Factory(s.opts.DefaultScreen)
	if err != nil {
		return err
	}
	st.Clear()
	st.PushConstructing(f)
	if !st.HasOverlay() {
		st.SetOverlay(Factory(s.opts))
	}
	return nil
}

func (s *Screen) clearStack() {
	if st, ok := s.h.Stack(); ok {
		st.Clear()
	}
}

// KnownFlags lists the flags the overlay declares.
func (s *Screen) KnownFlags() []string {
	return []string{
		flags.ConsoleVisible,
		flags.FPSDisplayEnabled,
		flags.EngineSwapRequest,
		flags.ScriptEngineJS,
	}
}

// Update handles the console toggle, a pending engine swap and, while the
// console is visible, the typed keys. Lower screens only update while the
// console is hidden.
func (s *Screen) Update(dt float64, resized bool) bool {
	s.measure(dt)

	in := core.NewInputFrame()
	if st, ok := s.h.Stack(); ok {
		in = st.Input()
	}

	justEnabled := false
	if toggled(in) && !in.ShiftHeld() {
		justEnabled = s.sd.Toggle(flags.ConsoleVisible)
	}
	visible := s.sd.Enabled(flags.ConsoleVisible)
	s.con.SetVisible(visible)

	if swap, _ := s.sd.Get(flags.EngineSwapRequest); swap {
		s.sd.Set(flags.EngineSwapRequest, false)
		s.swapEngine()
	}

	if !visible {
		return true
	}

	s.drain()
	for _, ev := range in.Events {
		switch ev.Key {
		case core.KeyBackspace:
			s.con.Backspace()
		case core.KeyEnter:
			s.submit()
		case core.KeyUp:
			s.con.HistoryUp()
		case core.KeyDown:
			s.con.HistoryDown()
		case core.KeyRune:
			if justEnabled && ev.Rune == ToggleRune {
				continue
			}
			s.con.Type(ev.Rune)
		}
	}
	return false
}

func toggled(in core.InputFrame) bool {
	for _, ev := range in.Events {
		if ev.Key == core.KeyRune && ev.Rune == ToggleRune {
			return true
		}
	}
	return false
}

func (s *Screen) drain() {
	for _, line := range s.sd.Drain() {
		s.con.Append(line)
	}
}

func (s *Screen) submit() {
	cmd, ok := s.con.Submit()
	if !ok {
		return
	}
	if s.engine == nil {
		s.con.Append("no script engine running")
		return
	}
	err := s.engine.Exec(cmd)
	s.drain()
	if err != nil {
		s.logger.Debug("script error", "engine", s.engine.Kind(), "error", err)
		s.con.Append(err.Error())
	}
}

func (s *Screen) swapEngine() {
	next := s.Engine().Other()
	if s.engine != nil {
		s.engine.Close()
		s.engine = nil
	}
	s.startEngine(next)
	if s.engine != nil {
		s.sd.Print(fmt.Sprintf("Swapped script engine to %s.", next))
	}
}

func (s *Screen) measure(dt float64) {
	if dt <= 0 {
		return
	}
	s.frames++
	s.acc += dt
	if s.acc >= 1 {
		s.fps = float64(s.frames) / s.acc
		s.frames = 0
		s.acc = 0
	}
	if s.fps == 0 {
		s.fps = 1 / dt
	}
}

// Draw renders the console panel when visible, the HUD otherwise.
func (s *Screen) Draw(target *core.Canvas) bool {
	if s.con.Visible() {
		s.drawConsole(target)
	} else {
		s.drawHUD(target)
	}
	return true
}

func (s *Screen) drawConsole(target *core.Canvas) {
	w := target.Width()
	blankRow := func(y int) {
		target.DrawHLine(0, y, w, ' ', core.ColorDefault)
	}

	// Input line on the bottom row, scrollback newest first above it.
	blankRow(0)
	off := s.con.Offset(w)
	target.DrawText(off, 0, s.con.Current(), core.ColorConsole)
	target.SetCell(off+core.TextWidth(s.con.Current()), 0, '_', core.ColorConsole)

	lines := s.con.Lines()
	y := 1
	for i := len(lines) - 1; i >= 0 && y < target.Height(); i-- {
		blankRow(y)
		target.DrawText(0, y, lines[i], core.ColorConsole)
		y++
	}
}

func (s *Screen) drawHUD(target *core.Canvas) {
	if s.sd.Enabled(flags.FPSDisplayEnabled) {
		target.DrawText(1, target.Height()-1, fmt.Sprintf("%.0f", s.fps), core.ColorHUD)
	}

	status := "Auto movement disabled."
	if s.sd.Enabled(flags.AutoMovementEnabled) {
		status = "Auto movement enabled."
	}
	target.DrawText(1, 1, status, core.ColorHUD)
}

// Close releases the script engine.
func (s *Screen) Close() {
	if s.engine != nil {
		s.engine.Close()
		s.engine = nil
	}
}
