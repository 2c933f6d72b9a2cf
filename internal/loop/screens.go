package loop

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/tomz197/whuacamole/internal/draw"
	"github.com/tomz197/whuacamole/internal/object"
	"github.com/tomz197/whuacamole/internal/physics"
)

// Minimap size in terminal cells; rows hold two sub-rows each.
const (
	minimapWidth   = 32
	minimapHeight  = 9
	minimapSubRows = minimapHeight * 2
)

// minimap is a reusable grid of the whole display.
type minimap struct {
	grid [minimapSubRows][minimapWidth]color.RGBA
}

// drawUI draws the text overlay for the current game phase.
func (t *terminal) drawUI(state *State) {
	termWidth := t.canvas.TerminalWidth()
	termHeight := t.canvas.TerminalHeight()

	switch state.GameState {
	case GameStateIntro:
		t.drawIntroScreen(termWidth/2, termHeight/2)
	case GameStateRunning:
		t.drawPlayingHUD(state, termWidth, termHeight)
	}
}

// drawIntroScreen draws the title screen.
func (t *terminal) drawIntroScreen(centerX, centerY int) {
	cw := t.chunkWriter

	title := "W H U A C A M O L E"
	cw.WriteAtColor(centerX-len(title)/2, centerY-4, title, object.ColorGood)

	controlLines := []string{
		"WASD / arrows . . . Move",
		"SPACE . . . . . . . Grow",
		"Q . . . . . . . . . Quit",
	}
	for i, line := range controlLines {
		cw.WriteAtColor(centerX-len(line)/2, centerY-1+i, line, object.ColorInfo)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		prompt := ">>  Press any key to start  <<"
		cw.WriteAtColor(centerX-len(prompt)/2, centerY+4, prompt, object.ColorPoint)
	}
}

// drawPlayingHUD draws the score, hit counter and minimap.
func (t *terminal) drawPlayingHUD(state *State, termWidth, termHeight int) {
	cw := t.chunkWriter
	cw.WriteAtColor(2, 1, fmt.Sprintf("%d", state.Score), object.ColorInfo)

	hitsText := fmt.Sprintf("Hits: %d", state.Hits)
	cw.WriteAtColor(2, termHeight, hitsText, object.ColorBad)

	t.drawMinimap(state, termWidth, termHeight)
}

// drawMinimap draws an overview of the display with the window, target and projectiles.
// Uses half-block characters (▀▄█) for 2x vertical resolution.
func (t *terminal) drawMinimap(state *State, termWidth, termHeight int) {
	startCol := termWidth - minimapWidth - 2
	startRow := 2
	if startCol < 1 || startRow+minimapHeight+1 > termHeight {
		return // Not enough space
	}

	cfg := state.Config
	m := &t.minimap
	m.grid = [minimapSubRows][minimapWidth]color.RGBA{}

	plot := func(p object.Vec, c color.RGBA) {
		col := int(p.X / cfg.DisplayWidth * minimapWidth)
		row := int(p.Y / cfg.DisplayHeight * minimapSubRows)
		if col < 0 || col >= minimapWidth || row < 0 || row >= minimapSubRows {
			return
		}
		m.grid[row][col] = c
	}

	// Window footprint first; points draw over it.
	win := state.Player.Pos
	for y := win.Y; y < win.Y+cfg.WindowHeight; y += cfg.DisplayHeight / minimapSubRows {
		for x := win.X; x < win.X+cfg.WindowWidth; x += cfg.DisplayWidth / minimapWidth {
			plot(physics.V(x, y), object.ColorInfo)
		}
	}

	for _, pro := range state.Projectiles {
		for _, p := range pro.Positions() {
			plot(p, object.ColorBad)
		}
	}
	plot(state.Target.Pos, object.ColorPoint)
	plot(state.Player.Center(), object.ColorGood)

	cw := t.chunkWriter
	cw.WriteAt(startCol, startRow, "┌"+strings.Repeat("─", minimapWidth)+"┐")
	for row := 0; row < minimapHeight; row++ {
		var line strings.Builder
		line.WriteString("│")
		for col := 0; col < minimapWidth; col++ {
			line.WriteString(minimapCell(m.grid[row*2][col], m.grid[row*2+1][col]))
		}
		line.WriteString("│")
		cw.WriteAt(startCol, startRow+1+row, line.String())
	}
	cw.WriteAt(startCol, startRow+minimapHeight+1, "└"+strings.Repeat("─", minimapWidth)+"┘")
}

// minimapCell renders two stacked sub-cells as one terminal cell.
func minimapCell(top, bottom color.RGBA) string {
	switch {
	case top.A != 0 && bottom.A != 0 && top == bottom:
		return draw.Colorize(string(draw.BlockFull), top)
	case top.A != 0 && bottom.A != 0:
		return draw.Foreground(top) + draw.Background(bottom) + string(draw.BlockUpperHalf) + draw.Reset
	case top.A != 0:
		return draw.Colorize(string(draw.BlockUpperHalf), top)
	case bottom.A != 0:
		return draw.Colorize(string(draw.BlockLowerHalf), bottom)
	default:
		return " "
	}
}
