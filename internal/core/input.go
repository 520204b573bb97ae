package core

// Key identifies a keyboard key independent of the terminal library.
type Key int

const (
	KeyNone      Key = iota
	KeyRune          // A typed character, see KeyEvent.Rune
	KeyBackspace     // Backspace
	KeyEnter         // Enter / Return
	KeyUp            // Up arrow
	KeyDown          // Down arrow
	KeyLeft          // Left arrow
	KeyRight         // Right arrow
	KeyTab           // Tab
	KeyEscape        // Esc
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "esc"
	default:
		return "unknown"
	}
}

// KeyEvent is one key press edge observed during a frame.
type KeyEvent struct {
	Key   Key
	Rune  rune // Set when Key is KeyRune
	Shift bool // A shift modifier accompanied the press
}

// RuneEvent builds a KeyEvent for a typed character.
func RuneEvent(r rune) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r}
}

// Name returns the key name used for held-key lookups: the character itself
// for runes, otherwise the Key's String.
func (e KeyEvent) Name() string {
	if e.Key == KeyRune {
		return string(e.Rune)
	}
	return e.Key.String()
}

// InputFrame is the keyboard state for one frame: the ordered press edges
// plus the set of keys considered held down.
type InputFrame struct {
	Events []KeyEvent
	Held   map[string]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[string]bool),
	}
}

// Push appends a press edge.
func (f *InputFrame) Push(e KeyEvent) {
	f.Events = append(f.Events, e)
}

// SetHeld marks a key name as held for this frame.
func (f *InputFrame) SetHeld(name string) {
	if f.Held == nil {
		f.Held = make(map[string]bool)
	}
	f.Held[name] = true
}

// IsHeld reports whether the named key is held this frame.
func (f InputFrame) IsHeld(name string) bool {
	return f.Held[name]
}

// Pressed reports whether a press edge of k happened this frame.
func (f InputFrame) Pressed(k Key) bool {
	for _, e := range f.Events {
		if e.Key == k {
			return true
		}
	}
	return false
}

// ShiftHeld reports whether any press this frame carried a shift modifier.
func (f InputFrame) ShiftHeld() bool {
	for _, e := range f.Events {
		if e.Shift {
			return true
		}
	}
	return false
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Events = append([]KeyEvent(nil), f.Events...)
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
