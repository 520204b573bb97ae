package battle

import (
	"strings"

	"github.com/vovakirdan/gander/internal/core"
)

var defaultGround = []string{
	".   ",
	"  . ",
}

// parseGround splits a tile pattern into rows. Empty input yields the
// built-in pattern.
func parseGround(data []byte) []string {
	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return defaultGround
	}
	return rows
}

// Ground returns the tile pattern rows in use.
func (s *Screen) Ground() []string { return s.ground }

// cell maps an arena x/z position into area. -z is the top of the area.
func (s *Screen) cell(p core.Vec3, area core.Rect) (int, int) {
	fx := (p.X + s.p.SpaceWidth) / (2 * s.p.SpaceWidth)
	fz := (p.Z + s.p.SpaceDepth) / (2 * s.p.SpaceDepth)
	x := area.X + int(core.Clamp(fx, 0, 1)*float64(area.W-1)+0.5)
	y := area.Top() - 1 - int(core.Clamp(fz, 0, 1)*float64(area.H-1)+0.5)
	return x, y
}

func (s *Screen) render(target *core.Canvas) {
	bounds := core.NewRect(0, 0, target.Width(), target.Height())
	area := bounds.Inset(1)
	if area.Empty() {
		return
	}
	target.DrawBox(bounds, core.ColorGreen)

	for y := area.Y; y < area.Top(); y++ {
		row := []rune(s.ground[(area.Top()-1-y)%len(s.ground)])
		if len(row) == 0 {
			continue
		}
		for x := area.X; x < area.Right(); x++ {
			if r := row[(x-area.X)%len(row)]; r != ' ' {
				target.SetCell(x, y, r, core.ColorGround)
			}
		}
	}

	for i := range s.spheres {
		if !s.touched[i] {
			continue
		}
		x, y := s.cell(s.touch[i], area)
		target.SetCell(x, y, '+', core.ColorRed)
	}

	colors := [2]core.Color{core.ColorBrightGreen, core.ColorBrightRed}
	for i, sp := range s.spheres {
		glyph := 'O'
		if sp.Center.Y > s.p.RestHeight+sp.Radius {
			glyph = 'o'
		}
		x, y := s.cell(sp.Center, area)
		target.SetCell(x, y, glyph, colors[i])
	}
}
