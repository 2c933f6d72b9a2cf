// Package desktop runs the game in a borderless OS window that moves across
// the monitor with the player.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/loop"
	"github.com/tomz197/whuacamole/internal/object"
)

// Key bindings; the first key of each set is the primary one.
var (
	keysLeft  = []ebiten.Key{ebiten.KeyA, ebiten.KeyH, ebiten.KeyArrowLeft}
	keysRight = []ebiten.Key{ebiten.KeyD, ebiten.KeyL, ebiten.KeyArrowRight}
	keysUp    = []ebiten.Key{ebiten.KeyW, ebiten.KeyK, ebiten.KeyArrowUp}
	keysDown  = []ebiten.Key{ebiten.KeyS, ebiten.KeyJ, ebiten.KeyArrowDown}
)

// DisplaySize returns the primary monitor size, or the default virtual
// display when no monitor is reported.
func DisplaySize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			return w, h
		}
	}
	return config.DefaultDisplayWidth, config.DefaultDisplayHeight
}

// Game adapts a loop.State to ebiten.Game.
type Game struct {
	state *loop.State
	log   *log.Logger
	keys  []ebiten.Key // Scratch buffer for just-pressed keys
}

// New wraps state for the desktop window.
func New(state *loop.State, logger *log.Logger) *Game {
	return &Game{state: state, log: logger}
}

// Run opens the window and blocks until the player quits.
func Run(state *loop.State, logger *log.Logger) error {
	cfg := state.Config
	ebiten.SetWindowSize(int(cfg.WindowWidth), int(cfg.WindowHeight))
	ebiten.SetWindowTitle("Whuacamole")
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TickRate)
	moveWindow(state.Player.Pos)

	logger.Info("window opened", "display", fmt.Sprintf("%.0fx%.0f", cfg.DisplayWidth, cfg.DisplayHeight))
	if err := ebiten.RunGame(New(state, logger)); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	logger.Info("window closed", "score", state.Score, "hits", state.Hits)
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	in := g.readInput()
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true
	}

	g.state.Step(in)
	if !g.state.Running {
		return ebiten.Termination
	}
	moveWindow(g.state.Player.Pos)
	return nil
}

// readInput builds the frame input from the keyboard.
func (g *Game) readInput() object.Input {
	in := object.Input{
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Left:  anyPressed(keysLeft),
		Right: anyPressed(keysRight),
		Up:    anyPressed(keysUp),
		Down:  anyPressed(keysDown),
		Grow:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if name := k.String(); name != "" {
			in.Pressed = append(in.Pressed, name[0])
		}
	}
	return in
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// moveWindow places the OS window at pos on the monitor.
func moveWindow(pos object.Vec) {
	ebiten.SetWindowPosition(int(pos.X), int(pos.Y))
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(object.ColorBackground)

	switch g.state.GameState {
	case loop.GameStateIntro:
		g.drawIntro(screen)
	case loop.GameStateRunning:
		if err := g.state.Draw(surface{screen}); err != nil {
			g.log.Error("draw", "err", err)
		}
		text.Draw(screen, fmt.Sprintf("%d", g.state.Score), basicfont.Face7x13, 8, 16, object.ColorInfo)
		hits := fmt.Sprintf("Hits: %d", g.state.Hits)
		text.Draw(screen, hits, basicfont.Face7x13, 8, screen.Bounds().Dy()-8, object.ColorBad)
	}
}

func (g *Game) drawIntro(screen *ebiten.Image) {
	lines := []struct {
		s string
		c color.Color
	}{
		{"WHUACAMOLE", object.ColorGood},
		{"", nil},
		{"WASD/arrows: move", object.ColorInfo},
		{"SPACE: grow", object.ColorInfo},
		{"Q: quit", object.ColorInfo},
		{"", nil},
		{"press any key", object.ColorPoint},
	}
	const lineHeight = 14
	w := screen.Bounds().Dx()
	top := (screen.Bounds().Dy() - len(lines)*lineHeight) / 2
	for i, l := range lines {
		if l.s == "" {
			continue
		}
		x := (w - len(l.s)*basicfont.Face7x13.Advance) / 2
		text.Draw(screen, l.s, basicfont.Face7x13, x, top+(i+1)*lineHeight, l.c)
	}
}

// Layout implements ebiten.Game. The logical screen is one window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.state.Config.WindowWidth), int(g.state.Config.WindowHeight)
}

// surface draws anti-aliased circles onto an ebiten image.
type surface struct {
	img *ebiten.Image
}

func (s surface) FillCircle(x, y, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c, true)
}

var _ object.Surface = surface{}
