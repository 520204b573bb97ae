package core

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(80, 24)

	if c.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", c.Width())
	}
	if c.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", c.Height())
	}

	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Get(x, y) != ' ' {
				t.Errorf("New canvas should be filled with spaces, got %q at (%d, %d)", c.Get(x, y), x, y)
			}
		}
	}
}

func TestNewCanvasNegativeSize(t *testing.T) {
	c := NewCanvas(-3, -1)
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("NewCanvas(-3, -1) = %dx%d, expected 0x0", c.Width(), c.Height())
	}
	// Drawing into an empty canvas must not panic.
	c.DrawText(0, 0, "x", ColorDefault)
	if f := c.Flip(); f.String() != "" {
		t.Errorf("Flip().String() = %q, expected empty", f.String())
	}
}

func TestCanvasSetGet(t *testing.T) {
	c := NewCanvas(10, 10)

	c.Set(5, 5, 'X')
	if c.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", c.Get(5, 5))
	}

	c.Set(-1, 0, 'A')
	c.Set(100, 0, 'A')
	c.Set(0, -1, 'A')
	c.Set(0, 100, 'A')

	if c.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if c.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestCanvasSetCellKeepsColor(t *testing.T) {
	c := NewCanvas(4, 4)
	c.SetCell(1, 1, '#', ColorRed)
	c.Set(1, 1, '@')

	cell := c.GetCell(1, 1)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected '@' in red", cell)
	}
}

func TestCanvasFillAndClear(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Fill('#', ColorGreen)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if c.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, c.Get(x, y))
			}
		}
	}

	c.Clear()
	if cell := c.GetCell(2, 2); cell != blankCell {
		t.Errorf("After Clear, GetCell(2, 2) = %+v, expected blank", cell)
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(20, 5)
	c.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if c.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, c.Get(2+i, 1))
		}
	}

	c.DrawText(18, 0, "Hello", ColorWhite)
	if c.Get(18, 0) != 'H' || c.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestCanvasDrawTextCentered(t *testing.T) {
	c := NewCanvas(20, 5)
	c.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if c.Get(x, 2) != 'H' || c.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestCanvasDrawRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawRect(NewRect(2, 2, 3, 3), '#', ColorDefault)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, c.Get(x, y))
			}
		}
	}

	if c.Get(1, 1) != ' ' || c.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestCanvasDrawBox(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	// Y grows upward, so the top edge is row 4.
	if c.Get(1, 4) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", c.Get(1, 4))
	}
	if c.Get(5, 4) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", c.Get(5, 4))
	}
	if c.Get(1, 1) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", c.Get(1, 1))
	}
	if c.Get(5, 1) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", c.Get(5, 1))
	}

	for x := 2; x < 5; x++ {
		if c.Get(x, 1) != '─' || c.Get(x, 4) != '─' {
			t.Errorf("Horizontal edges should be '─' at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if c.Get(1, y) != '│' || c.Get(5, y) != '│' {
			t.Errorf("Vertical edges should be '│' at y=%d", y)
		}
	}
}

func TestCanvasDrawLines(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawHLine(2, 2, 5, '-', ColorDefault)
	c.DrawVLine(8, 2, 4, '|', ColorDefault)

	for x := 2; x < 7; x++ {
		if c.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, c.Get(x, 2))
		}
	}
	for y := 2; y < 6; y++ {
		if c.Get(8, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (8, %d), got %q", y, c.Get(8, y))
		}
	}
}

func TestCanvasFlipInvertsRows(t *testing.T) {
	c := NewCanvas(5, 3)
	c.DrawText(0, 0, "AAAAA", ColorDefault)
	c.DrawText(0, 1, "BBBBB", ColorDefault)
	c.DrawText(0, 2, "CCCCC", ColorDefault)

	f := c.Flip()
	expected := "CCCCC\nBBBBB\nAAAAA"
	if f.String() != expected {
		t.Errorf("Flip().String() = %q, expected %q", f.String(), expected)
	}

	// The frame is a copy; later drawing must not leak into it.
	c.Set(0, 2, 'Z')
	if f.GetCell(0, 0).Rune != 'C' {
		t.Errorf("Frame should not alias the canvas, got %q", f.GetCell(0, 0).Rune)
	}
}

func TestFrameRow(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawText(0, 4, "Test", ColorDefault)
	f := c.Flip()

	row := f.Row(0)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(0) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if out := f.Row(-1); out != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", out)
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("> abc"); w != 5 {
		t.Errorf("TextWidth() = %d, expected 5", w)
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorGround, "22"},
		{Color(200), ""},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}
