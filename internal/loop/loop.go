// Package loop provides the main game loop and state management.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/draw"
	"github.com/tomz197/whuacamole/internal/input"
)

// Synchronized output: the terminal holds the frame until it is complete.
const (
	beginFrame = "\033[?2026h\033[H\033[2J"
	endFrame   = "\033[?2026l"
)

// Options configures a terminal game session.
type Options struct {
	Config       config.Game
	TermSizeFunc draw.TermSizeFunc // Defaults to the size of os.Stdout
	Rand         *rand.Rand        // Defaults to a time-seeded source
	Logger       *log.Logger       // Defaults to discarding output
}

// terminal holds the rendering resources of one session.
type terminal struct {
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	termSizeFunc draw.TermSizeFunc
	minimap      minimap
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// Blocks until the player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := NewState(opts.Config, opts.Rand, opts.Logger)
	stream := input.StartStream(r)

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	// The canvas shows exactly one window of the display.
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, opts.Config.WindowWidth, opts.Config.WindowHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	t := &terminal{
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		termSizeFunc: opts.TermSizeFunc,
	}

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	state.log.Debug("session started", "term", fmt.Sprintf("%dx%d", termWidth, termHeight))

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		wasIntro := state.GameState == GameStateIntro

		// ===== UPDATE PHASE =====
		t.updateScreen()
		state.Step(in)
		if wasIntro && state.GameState == GameStateRunning {
			input.ResetKeyInput(stream)
		}

		// ===== DRAW PHASE =====
		if state.Running {
			if err := t.drawFrame(state); err != nil {
				return err
			}
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	state.log.Info("session ended", "score", state.Score, "hits", state.Hits, "ticks", state.Tick)
	return nil
}

// updateScreen handles terminal resize, clamping to max render resolution.
func (t *terminal) updateScreen() {
	termWidth, termHeight, err := t.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawFrame draws the current frame in a single flush.
func (t *terminal) drawFrame(state *State) error {
	t.chunkWriter.WriteString(beginFrame)
	t.canvas.Clear()

	if state.GameState == GameStateRunning {
		if err := state.Draw(t.canvas); err != nil {
			return err
		}
	}

	// The canvas applies its own offset; the raw render goes straight into the buffer.
	t.canvas.Render(t.chunkWriter)
	t.canvas.RenderBorder(t.chunkWriter)

	t.drawUI(state)

	t.chunkWriter.WriteString(endFrame)
	return t.chunkWriter.Flush()
}
