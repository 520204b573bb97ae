// Package console holds the text state of the script console: the scrollback
// lines, the submitted command history and the line being edited.
package console

import (
	"github.com/mattn/go-runewidth"
)

// Prompt prefixes the input line and is never erased.
const Prompt = "> "

// DefaultCapacity bounds both the scrollback and the history.
const DefaultCapacity = 25

// EmptyInput is echoed when Enter is pressed on a bare prompt.
const EmptyInput = "empty input"

// Mode is the console's visible state.
type Mode int

const (
	ModeHidden Mode = iota
	ModeVisible
	ModeHistory // Visible with a recalled history entry loaded
)

func (m Mode) String() string {
	switch m {
	case ModeHidden:
		return "hidden"
	case ModeVisible:
		return "visible"
	case ModeHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Console is the console text model. Zero value is not usable; use New.
type Console struct {
	capacity int
	lines    []string
	history  []string // Most recent first
	current  string
	cursor   int // Index into history, -1 when not recalling
	visible  bool

	offset      int
	offsetWidth int
	offsetValid bool
}

// New creates a hidden console keeping at most capacity lines and history
// entries. Non-positive capacity means DefaultCapacity.
func New(capacity int) *Console {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Console{
		capacity: capacity,
		current:  Prompt,
		cursor:   -1,
	}
}

// Capacity returns the line and history bound.
func (c *Console) Capacity() int { return c.capacity }

// SetVisible shows or hides the console.
func (c *Console) SetVisible(v bool) { c.visible = v }

// Visible reports whether the console is shown.
func (c *Console) Visible() bool { return c.visible }

// Mode returns the current state.
func (c *Console) Mode() Mode {
	switch {
	case !c.visible:
		return ModeHidden
	case c.cursor >= 0:
		return ModeHistory
	default:
		return ModeVisible
	}
}

// Append adds a scrollback line, dropping the oldest past capacity.
func (c *Console) Append(line string) {
	c.lines = append(c.lines, line)
	if over := len(c.lines) - c.capacity; over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
}

// Lines returns the scrollback, oldest first.
func (c *Console) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// History returns submitted commands, most recent first.
func (c *Console) History() []string {
	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// Current returns the input line including the prompt.
func (c *Console) Current() string { return c.current }

// Input returns the input line without the prompt.
func (c *Console) Input() string { return c.current[len(Prompt):] }

// Printable reports whether r may be typed into the input line.
func Printable(r rune) bool {
	return r >= 0x20 && r <= 0x7E
}

// Type appends a printable character. Returns false when r was rejected.
func (c *Console) Type(r rune) bool {
	if !Printable(r) {
		return false
	}
	c.current += string(r)
	c.edited()
	return true
}

// Backspace removes the last character, keeping the prompt.
func (c *Console) Backspace() {
	if len(c.current) <= len(Prompt) {
		return
	}
	c.current = c.current[:len(c.current)-1]
	c.edited()
}

// Submit echoes the input line into the scrollback and resets it.
// A non-empty command is recorded in history and returned with ok true;
// an empty one echoes EmptyInput and returns ok false.
func (c *Console) Submit() (cmd string, ok bool) {
	cmd = c.Input()
	c.Append(c.current)

	if cmd == "" {
		c.Append(EmptyInput)
	} else {
		c.record(cmd)
		ok = true
	}

	c.current = Prompt
	c.edited()
	return cmd, ok
}

func (c *Console) record(cmd string) {
	if len(c.history) > 0 && c.history[0] == cmd {
		return
	}
	c.history = append(c.history, "")
	copy(c.history[1:], c.history)
	c.history[0] = cmd
	if len(c.history) > c.capacity {
		c.history = c.history[:c.capacity]
	}
}

// HistoryUp recalls the next older command.
func (c *Console) HistoryUp() {
	if c.cursor+1 >= len(c.history) {
		return
	}
	c.cursor++
	c.load()
}

// HistoryDown recalls the next newer command, or returns to an empty
// prompt past the newest.
func (c *Console) HistoryDown() {
	if c.cursor < 0 {
		return
	}
	c.cursor--
	if c.cursor < 0 {
		c.current = Prompt
		c.offsetValid = false
		return
	}
	c.load()
}

func (c *Console) load() {
	c.current = Prompt + c.history[c.cursor]
	c.offsetValid = false
}

func (c *Console) edited() {
	c.cursor = -1
	c.offsetValid = false
}

// Offset returns the horizontal shift applied to the input line so its end
// stays inside width cells. It is zero or negative, and cached until the
// next edit or width change.
func (c *Console) Offset(width int) int {
	if c.offsetValid && c.offsetWidth == width {
		return c.offset
	}
	c.offset = 0
	// One cell stays free for the cursor.
	if w := runewidth.StringWidth(c.current) + 1; w > width {
		c.offset = width - w
	}
	c.offsetWidth = width
	c.offsetValid = true
	return c.offset
}
