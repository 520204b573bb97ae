package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gander/internal/core"
)

// KeyMap holds the driver's key bindings.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
	Backspace  key.Binding
	Enter      key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Tab        key.Binding
	Escape     key.Binding
}

// DefaultKeyMap returns the default bindings. Plain letters are never
// bound here so every printable character reaches the console.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save screenshot"),
		),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Enter:     key.NewBinding(key.WithKeys("enter")),
		Up:        key.NewBinding(key.WithKeys("up", "shift+up")),
		Down:      key.NewBinding(key.WithKeys("down", "shift+down")),
		Left:      key.NewBinding(key.WithKeys("left", "shift+left")),
		Right:     key.NewBinding(key.WithKeys("right", "shift+right")),
		Tab:       key.NewBinding(key.WithKeys("tab", "shift+tab")),
		Escape:    key.NewBinding(key.WithKeys("esc")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Screenshot}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Command is a driver-level request decoded from a key.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandScreenshot
)

// KeyMapper translates Bubble Tea key messages to core key events.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Map translates msg. It returns the key events the message carries, or a
// driver command when the key is bound to one.
func (km *KeyMapper) Map(msg tea.KeyMsg) ([]core.KeyEvent, Command) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return nil, CommandQuit
	case key.Matches(msg, km.keys.Screenshot):
		return nil, CommandScreenshot
	}

	shift := strings.HasPrefix(msg.String(), "shift+")
	named := func(k core.Key) []core.KeyEvent {
		return []core.KeyEvent{{Key: k, Shift: shift}}
	}

	switch {
	case key.Matches(msg, km.keys.Backspace):
		return named(core.KeyBackspace), CommandNone
	case key.Matches(msg, km.keys.Enter):
		return named(core.KeyEnter), CommandNone
	case key.Matches(msg, km.keys.Up):
		return named(core.KeyUp), CommandNone
	case key.Matches(msg, km.keys.Down):
		return named(core.KeyDown), CommandNone
	case key.Matches(msg, km.keys.Left):
		return named(core.KeyLeft), CommandNone
	case key.Matches(msg, km.keys.Right):
		return named(core.KeyRight), CommandNone
	case key.Matches(msg, km.keys.Tab):
		return named(core.KeyTab), CommandNone
	case key.Matches(msg, km.keys.Escape):
		return named(core.KeyEscape), CommandNone
	}

	switch msg.Type {
	case tea.KeySpace:
		return []core.KeyEvent{core.RuneEvent(' ')}, CommandNone
	case tea.KeyRunes:
		if msg.Alt {
			return nil, CommandNone
		}
		events := make([]core.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			ev := core.RuneEvent(r)
			ev.Shift = unicode.IsUpper(r)
			events = append(events, ev)
		}
		return events, CommandNone
	}
	return nil, CommandNone
}
