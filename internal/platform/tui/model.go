package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gander/internal/core"
	"github.com/vovakirdan/gander/internal/stack"
)

// maxFrameTime caps dt after a stall so physics does not jump.
const maxFrameTime = 0.25

// Model is the Bubble Tea model running a screen stack.
type Model struct {
	stack    *stack.Stack
	keys     *Keys
	display  *Display
	mapper   *KeyMapper
	config   core.RuntimeConfig
	last     time.Time
	quitting bool
}

// NewModel creates a model driving st. keys and display must be the input
// source and display st was built with.
func NewModel(st *stack.Stack, keys *Keys, display *Display, cfg core.RuntimeConfig) Model {
	return Model{
		stack:   st,
		keys:    keys,
		display: display,
		mapper:  NewKeyMapper(DefaultKeyMap()),
		config:  cfg,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.display.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events, cmd := m.mapper.Map(msg)
	switch cmd {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandScreenshot:
		if err := m.saveScreenshot(); err != nil {
			m.stack.Logger().Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	for _, ev := range events {
		m.keys.Press(ev)
	}
	return m, nil
}

// handleTick runs one frame: publish input, update, draw.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameDuration().Seconds()
	if !m.last.IsZero() {
		dt = min(now.Sub(m.last).Seconds(), maxFrameTime)
	}
	m.last = now

	m.keys.Advance()
	m.stack.Update(dt)
	m.stack.Draw()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the last presented frame as plain text.
func (m Model) saveScreenshot() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".gander", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("gander_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.display.Frame().String()), 0o600); err != nil {
		return err
	}
	m.stack.Logger().Info("screenshot saved", "path", path)
	return nil
}

// View renders the last presented frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderFrame(m.display.Frame())
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(st *stack.Stack, keys *Keys, display *Display, cfg core.RuntimeConfig) error {
	model := NewModel(st, keys, display, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
