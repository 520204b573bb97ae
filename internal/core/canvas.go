package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is a single character cell of a render target.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Canvas is the off-screen render target every screen draws into.
// Its Y axis points up: row 0 is the bottom row of the display. Flip converts
// it to the top-down Frame that the display presents.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell // cells[0] is the bottom row
}

// NewCanvas creates a cleared render target with the given dimensions.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the entire canvas with uncoloured spaces.
func (c *Canvas) Clear() {
	c.Fill(' ', ColorDefault)
}

// Fill fills the entire canvas with the given rune and colour.
func (c *Canvas) Fill(r rune, color Color) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: r, Color: color}
		}
	}
}

// Set places a rune at the given position, keeping the cell's colour.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y][x].Rune = r
}

// SetCell places a rune with a colour at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) SetCell(x, y int, r rune, color Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) rune {
	return c.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (c *Canvas) GetCell(x, y int) Cell {
	if !c.inBounds(x, y) {
		return blankCell
	}
	return c.cells[y][x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// DrawText writes a string horizontally starting at (x, y) in the given colour.
// Wide runes occupy two cells. Characters beyond the canvas are clipped.
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	for _, r := range text {
		c.SetCell(x, y, r, color)
		w := runewidth.RuneWidth(r)
		if w == 2 {
			c.SetCell(x+1, y, 0, color)
		}
		x += max(w, 1)
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	x := (c.width - TextWidth(text)) / 2
	c.DrawText(x, y, text, color)
}

// DrawRect fills a rectangular area with the given rune.
func (c *Canvas) DrawRect(r Rect, fill rune, color Color) {
	for y := r.Y; y < r.Top(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.SetCell(x, y, fill, color)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
// The rectangle origin is its bottom-left corner.
func (c *Canvas) DrawBox(r Rect, color Color) {
	top := r.Top() - 1
	right := r.Right() - 1

	c.SetCell(r.X, top, '┌', color)
	c.SetCell(right, top, '┐', color)
	c.SetCell(r.X, r.Y, '└', color)
	c.SetCell(right, r.Y, '┘', color)

	for x := r.X + 1; x < right; x++ {
		c.SetCell(x, top, '─', color)
		c.SetCell(x, r.Y, '─', color)
	}
	for y := r.Y + 1; y < top; y++ {
		c.SetCell(r.X, y, '│', color)
		c.SetCell(right, y, '│', color)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (c *Canvas) DrawHLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.SetCell(x+i, y, r, color)
	}
}

// DrawVLine draws an upward vertical line from (x, y) with the given length.
func (c *Canvas) DrawVLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.SetCell(x, y+i, r, color)
	}
}

// Flip copies the canvas into a top-down Frame, inverting the Y axis.
func (c *Canvas) Flip() Frame {
	rows := make([][]Cell, c.height)
	for y := range c.cells {
		row := make([]Cell, c.width)
		copy(row, c.cells[y])
		rows[c.height-1-y] = row
	}
	return Frame{Width: c.width, Height: c.height, Rows: rows}
}

// Frame is a presented image: rows ordered top to bottom as the display shows them.
type Frame struct {
	Width  int
	Height int
	Rows   [][]Cell
}

// GetCell returns the cell at display coordinates (x, y), y growing downward.
func (f Frame) GetCell(x, y int) Cell {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return blankCell
	}
	return f.Rows[y][x]
}

// Row returns the specified display row as a string.
func (f Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return strings.Repeat(" ", f.Width)
	}
	var sb strings.Builder
	for _, cell := range f.Rows[y] {
		if cell.Rune != 0 {
			sb.WriteRune(cell.Rune)
		}
	}
	return sb.String()
}

// String converts the frame to plain text, one line per row.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow(f.Width*f.Height + f.Height)
	for y := 0; y < f.Height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(f.Row(y))
	}
	return sb.String()
}

// TextWidth returns the number of cells text occupies when drawn.
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}
