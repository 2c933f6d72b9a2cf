package draw

import (
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int          // Actual terminal columns
	termHeight     int          // Actual terminal rows
	subPixelHeight int          // termHeight * 2
	pixels         []color.RGBA // Flat slice: [y * termWidth + x]; A == 0 means unset

	// Scaling from logical to pixel coordinates
	logicalWidth  float64 // Target/logical width
	logicalHeight float64 // Target/logical height
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Buffer for batching render output
	numBuf    [20]byte        // Scratch buffer for allocation-free integer formatting
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]color.RGBA, subPixelHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]color.RGBA, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col color.RGBA) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// At returns the pixel at actual terminal coordinates and whether it is set.
func (c *Canvas) At(x, y int) (color.RGBA, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return color.RGBA{}, false
	}
	p := c.pixels[y*c.termWidth+x]
	return p, p.A != 0
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col color.RGBA) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, col)
}

// FillCircle fills a circle given in logical coordinates.
// Works in pixel space, where unequal scaling turns the circle into an ellipse.
// Circles smaller than a pixel still set their center pixel.
func (c *Canvas) FillCircle(x, y, radius float64, col color.RGBA) {
	cx := x * c.scaleX
	cy := y * c.scaleY
	rx := radius * c.scaleX
	ry := radius * c.scaleY
	if rx <= 0 || ry <= 0 {
		c.SetFloat(x, y, col)
		return
	}

	yStart := max(int(math.Ceil(cy-ry-0.5)), 0)
	yEnd := min(int(math.Floor(cy+ry-0.5)), c.subPixelHeight-1)
	filled := false

	// Scanline fill, sampling at pixel centers
	for py := yStart; py <= yEnd; py++ {
		dy := (float64(py) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		xStart := max(int(math.Ceil(cx-half-0.5)), 0)
		xEnd := min(int(math.Floor(cx+half-0.5)), c.termWidth-1)
		for px := xStart; px <= xEnd; px++ {
			c.pixels[py*c.termWidth+px] = col
			filled = true
		}
	}

	if !filled {
		c.SetFloat(x, y, col)
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using coloured half-block characters.
// The top sub-pixel is the foreground of '▀'; a differing bottom sub-pixel is its background.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 24) // Estimate ~24 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomY := row*2 + 1
		bottomOffset := bottomY * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			var bottom color.RGBA
			if bottomY < c.subPixelHeight {
				bottom = c.pixels[bottomOffset+col]
			}
			if top.A == 0 && bottom.A == 0 {
				continue // Skip empty cells
			}

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			switch {
			case top.A != 0 && bottom.A != 0 && top == bottom:
				c.renderBuf.WriteString(Foreground(top))
				c.renderBuf.WriteRune(BlockFull)
			case top.A != 0 && bottom.A != 0:
				c.renderBuf.WriteString(Foreground(top))
				c.renderBuf.WriteString(Background(bottom))
				c.renderBuf.WriteRune(BlockUpperHalf)
			case top.A != 0:
				c.renderBuf.WriteString(Foreground(top))
				c.renderBuf.WriteRune(BlockUpperHalf)
			default:
				c.renderBuf.WriteString(Foreground(bottom))
				c.renderBuf.WriteRune(BlockLowerHalf)
			}
			c.renderBuf.WriteString(Reset)
		}
	}

	writeChunked(w, c.renderBuf.String())
}

// moveCursor appends an ANSI cursor position sequence to the render buffer.
func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*2*12)

	if hasV {
		if hasH {
			buf.WriteString(cursorTo(left, top) + "┌" + strings.Repeat("─", c.termWidth) + "┐")
			buf.WriteString(cursorTo(left, bottom) + "└" + strings.Repeat("─", c.termWidth) + "┘")
		} else {
			buf.WriteString(cursorTo(c.offsetCol+1, top) + strings.Repeat("─", c.termWidth))
			buf.WriteString(cursorTo(c.offsetCol+1, bottom) + strings.Repeat("─", c.termWidth))
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			// No horizontal borders, side bars span full canvas height
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			buf.WriteString(cursorTo(left, row) + "│" + cursorTo(right, row) + "│")
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// writeChunked writes data in chunks for optimal network flow.
func writeChunked(w io.Writer, data string) {
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}
