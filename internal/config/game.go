package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomz197/whuacamole/internal/physics"
)

// Default virtual display used by terminal front-ends.
const (
	DefaultDisplayWidth  = 1920
	DefaultDisplayHeight = 1080
)

// Tuning
const (
	Drag          = 0.95 // Velocity multiplier per tick
	Speed         = 5.0  // Input acceleration is Speed*0.1 per tick
	SpinSpeed     = 1.0  // Degrees per tick for rotating rings
	BounceFactor  = -1.3 // Velocity multiplier on a clamped axis
	GrowStep      = 7.0  // Avatar radius growth per tick while growing
	TickRate      = 60
	SpawnInterval = 60 // Ticks between projectile spawns
	WindowDivisor = 5  // Window is display/WindowDivisor on each axis
)

// TickTime is the fixed timestep of the game loop.
const TickTime = time.Second / TickRate

// Terminal rendering
const (
	MaxTermWidth  = 240
	MaxTermHeight = 80
)

// ErrDisplaySize is returned for a display that cannot hold a window.
var ErrDisplaySize = errors.New("display size must be positive")

// Game holds every display-derived constant the game needs.
// Built once at start-up and passed by value.
type Game struct {
	DisplayWidth  float64
	DisplayHeight float64
	WindowWidth   float64
	WindowHeight  float64

	Left, Top, Right, Bottom float64

	Drag          float64
	Speed         float64
	SpinSpeed     float64
	BounceFactor  float64
	GrowStep      float64
	SpawnInterval int

	// BaseRadius is the avatar radius at rest and the target point size.
	BaseRadius float64
}

// New derives the game configuration from the display dimensions.
func New(displayWidth, displayHeight int) (Game, error) {
	if displayWidth <= 0 || displayHeight <= 0 {
		return Game{}, fmt.Errorf("%w: %dx%d", ErrDisplaySize, displayWidth, displayHeight)
	}
	w := float64(displayWidth)
	h := float64(displayHeight)
	windowWidth := w / WindowDivisor
	return Game{
		DisplayWidth:  w,
		DisplayHeight: h,
		WindowWidth:   windowWidth,
		WindowHeight:  h / WindowDivisor,
		Left:          0,
		Top:           0,
		Right:         w,
		Bottom:        h,
		Drag:          Drag,
		Speed:         Speed,
		SpinSpeed:     SpinSpeed,
		BounceFactor:  BounceFactor,
		GrowStep:      GrowStep,
		SpawnInterval: SpawnInterval,
		BaseRadius:    float64(int(windowWidth / 15)),
	}, nil
}

// FromEnv builds the configuration from DISPLAY_WIDTH and DISPLAY_HEIGHT.
func FromEnv() (Game, error) {
	w, err := GetEnvInt("DISPLAY_WIDTH", DefaultDisplayWidth)
	if err != nil {
		return Game{}, err
	}
	h, err := GetEnvInt("DISPLAY_HEIGHT", DefaultDisplayHeight)
	if err != nil {
		return Game{}, err
	}
	return New(w, h)
}

// View returns the display rectangle projectiles are pruned against.
func (g Game) View() physics.Rect {
	return physics.Rect{Left: g.Left, Top: g.Top, Right: g.Right, Bottom: g.Bottom}
}

// WindowCenter returns the avatar's position inside the window.
func (g Game) WindowCenter() physics.Vec[float64] {
	return physics.V(g.WindowWidth/2, g.WindowHeight/2)
}
