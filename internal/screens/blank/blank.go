// Package blank provides the screen shown when the stack runs empty.
package blank

import (
	"github.com/vovakirdan/gander/internal/core"
	"github.com/vovakirdan/gander/internal/registry"
	"github.com/vovakirdan/gander/internal/stack"
)

// ID is the registry id of the blank screen.
const ID = "blank"

// Text is the caption drawn in the middle of the target.
const Text = "Blank Screen"

func init() {
	registry.Register(ID, "Blank screen", Factory)
}

// Factory builds a blank screen.
func Factory(stack.Handle) stack.Screen { return Screen{} }

// Screen draws a caption and lets everything else through.
type Screen struct{}

func (Screen) Update(float64, bool) bool { return true }
func (Screen) KnownFlags() []string      { return nil }

// Draw writes the caption centered on the target.
func (Screen) Draw(target *core.Canvas) bool {
	target.DrawTextCentered(target.Height()/2, Text, core.ColorBrightWhite)
	return true
}
