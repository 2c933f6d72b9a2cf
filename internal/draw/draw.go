// Package draw renders to ANSI terminals: a scaled half-block canvas,
// colour escapes and chunked output for SSH sessions.
package draw

import (
	"image/color"
	"strconv"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Reset clears all colour attributes.
const Reset = "\033[0m"

// Foreground returns the 24-bit foreground colour escape for c.
func Foreground(c color.RGBA) string {
	return colorEscape(38, c)
}

// Background returns the 24-bit background colour escape for c.
func Background(c color.RGBA) string {
	return colorEscape(48, c)
}

// Colorize wraps s in a foreground colour and a reset.
func Colorize(s string, c color.RGBA) string {
	return Foreground(c) + s + Reset
}

func colorEscape(code int, c color.RGBA) string {
	b := make([]byte, 0, 20)
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(code), 10)
	b = append(b, ";2;"...)
	b = strconv.AppendInt(b, int64(c.R), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(c.G), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(c.B), 10)
	b = append(b, 'm')
	return string(b)
}

// cursorTo returns the ANSI sequence moving the cursor to (col, row), 1-based.
func cursorTo(col, row int) string {
	return "\033[" + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}
