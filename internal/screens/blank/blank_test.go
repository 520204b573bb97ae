package blank

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gander/internal/core"
	"github.com/vovakirdan/gander/internal/registry"
	"github.com/vovakirdan/gander/internal/stack"
)

func TestBlankScreen(t *testing.T) {
	s := Factory(stack.Handle{})

	if !s.Update(0.016, false) {
		t.Error("Update() = false, expected true")
	}
	if flags := s.KnownFlags(); len(flags) != 0 {
		t.Errorf("KnownFlags() = %v, expected none", flags)
	}

	c := core.NewCanvas(30, 5)
	if !s.Draw(c) {
		t.Error("Draw() = false, expected true")
	}
	if !strings.Contains(c.Flip().String(), Text) {
		t.Errorf("frame does not contain %q", Text)
	}
}

func TestBlankRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Errorf("registry.Exists(%q) = false", ID)
	}
}
