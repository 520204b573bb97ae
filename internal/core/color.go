package core

// Color is the foreground colour of a cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorDarkGreen
)

// ansiCodes holds the 256-colour palette index of each Color.
var ansiCodes = [...]string{
	ColorDefault:     "",
	ColorRed:         "1",
	ColorGreen:       "2",
	ColorWhite:       "7",
	ColorBrightRed:   "9",
	ColorBrightGreen: "10",
	ColorBrightWhite: "15",
	ColorDarkGreen:   "22",
}

// ANSI returns the 256-colour palette index of c, or "" for the terminal
// default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}

// Roles used by screens.
const (
	ColorConsole = ColorBrightWhite
	ColorHUD     = ColorBrightWhite
	ColorGround  = ColorDarkGreen
)
