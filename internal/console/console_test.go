package console

import (
	"fmt"
	"reflect"
	"testing"
)

func typeString(c *Console, s string) {
	for _, r := range s {
		c.Type(r)
	}
}

func TestLinesBounded(t *testing.T) {
	c := New(DefaultCapacity)
	for i := 0; i < 40; i++ {
		c.Append(fmt.Sprintf("line %d", i))
	}

	lines := c.Lines()
	if len(lines) != 25 {
		t.Fatalf("len(Lines()) = %d, expected 25", len(lines))
	}
	if lines[0] != "line 15" || lines[24] != "line 39" {
		t.Errorf("Lines() = [%q ... %q], expected [line 15 ... line 39]", lines[0], lines[24])
	}
}

func TestHistoryBoundedAndDeduped(t *testing.T) {
	c := New(DefaultCapacity)

	typeString(c, "a")
	c.Submit()
	typeString(c, "a")
	c.Submit()
	typeString(c, "b")
	c.Submit()
	typeString(c, "a")
	c.Submit()

	if got := c.History(); !reflect.DeepEqual(got, []string{"a", "b", "a"}) {
		t.Errorf("History() = %q, expected [a b a]", got)
	}

	for i := 0; i < 30; i++ {
		typeString(c, fmt.Sprintf("cmd%d", i))
		c.Submit()
	}
	h := c.History()
	if len(h) != 25 {
		t.Fatalf("len(History()) = %d, expected 25", len(h))
	}
	if h[0] != "cmd29" || h[24] != "cmd5" {
		t.Errorf("History() = [%q ... %q], expected [cmd29 ... cmd5]", h[0], h[24])
	}
}

func TestSubmit(t *testing.T) {
	c := New(DefaultCapacity)
	typeString(c, `gen_print(1)`)

	cmd, ok := c.Submit()
	if !ok || cmd != "gen_print(1)" {
		t.Errorf("Submit() = (%q, %v), expected (gen_print(1), true)", cmd, ok)
	}
	if c.Current() != Prompt {
		t.Errorf("Current() = %q, expected bare prompt", c.Current())
	}

	cmd, ok = c.Submit()
	if ok || cmd != "" {
		t.Errorf("Submit() on empty = (%q, %v), expected (\"\", false)", cmd, ok)
	}

	expected := []string{"> gen_print(1)", "> ", EmptyInput}
	if got := c.Lines(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Lines() = %q, expected %q", got, expected)
	}
	if len(c.History()) != 1 {
		t.Errorf("empty input should not enter history")
	}
}

func TestBackspaceKeepsPrompt(t *testing.T) {
	c := New(DefaultCapacity)
	typeString(c, "ab")

	for i := 0; i < 5; i++ {
		c.Backspace()
	}
	if c.Current() != Prompt {
		t.Errorf("Current() = %q, expected %q", c.Current(), Prompt)
	}
}

func TestTypeRejectsNonPrintable(t *testing.T) {
	c := New(DefaultCapacity)

	tests := []struct {
		r  rune
		ok bool
	}{
		{'a', true},
		{' ', true},
		{'~', true},
		{'\n', false},
		{0x7F, false},
		{'é', false},
	}
	for _, tc := range tests {
		if got := c.Type(tc.r); got != tc.ok {
			t.Errorf("Type(%q) = %v, expected %v", tc.r, got, tc.ok)
		}
	}
	if c.Input() != "a ~" {
		t.Errorf("Input() = %q, expected %q", c.Input(), "a ~")
	}
}

func TestHistoryRecall(t *testing.T) {
	c := New(DefaultCapacity)
	c.SetVisible(true)
	for _, cmd := range []string{"one", "two", "three"} {
		typeString(c, cmd)
		c.Submit()
	}

	c.HistoryUp()
	if c.Input() != "three" || c.Mode() != ModeHistory {
		t.Errorf("after Up: Input() = %q, Mode() = %v", c.Input(), c.Mode())
	}
	c.HistoryUp()
	c.HistoryUp()
	c.HistoryUp()
	if c.Input() != "one" {
		t.Errorf("Up past oldest: Input() = %q, expected one", c.Input())
	}
	c.HistoryDown()
	if c.Input() != "two" {
		t.Errorf("after Down: Input() = %q, expected two", c.Input())
	}

	c.Type('!')
	if c.Mode() != ModeVisible {
		t.Errorf("edit should leave history mode, Mode() = %v", c.Mode())
	}
	if got := c.History(); !reflect.DeepEqual(got, []string{"three", "two", "one"}) {
		t.Errorf("recall changed history: %q", got)
	}

	c.HistoryUp()
	c.HistoryDown()
	if c.Current() != Prompt {
		t.Errorf("Down past newest: Current() = %q, expected bare prompt", c.Current())
	}
}

func TestModes(t *testing.T) {
	c := New(DefaultCapacity)
	if c.Mode() != ModeHidden {
		t.Errorf("Mode() = %v, expected hidden", c.Mode())
	}
	c.SetVisible(true)
	if c.Mode() != ModeVisible {
		t.Errorf("Mode() = %v, expected visible", c.Mode())
	}
}

func TestOffset(t *testing.T) {
	c := New(DefaultCapacity)
	typeString(c, "12345")

	// "> 12345" is 7 cells plus the cursor.
	if got := c.Offset(20); got != 0 {
		t.Errorf("Offset(20) = %d, expected 0", got)
	}
	if got := c.Offset(6); got != -2 {
		t.Errorf("Offset(6) = %d, expected -2", got)
	}

	c.Backspace()
	if got := c.Offset(6); got != -1 {
		t.Errorf("Offset(6) after edit = %d, expected -1", got)
	}
}
