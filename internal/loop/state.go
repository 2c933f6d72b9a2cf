package loop

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/object"
	"github.com/tomz197/whuacamole/internal/physics"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateIntro   GameState = iota // Waiting for the first key
	GameStateRunning                  // Active gameplay until quit
)

func (g GameState) String() string {
	switch g {
	case GameStateIntro:
		return "intro"
	case GameStateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// State holds all game state. It is owned by a single loop; nothing in it is
// safe for concurrent use.
type State struct {
	Config      config.Game
	GameState   GameState
	Running     bool // Loop running
	Tick        int  // Ticks spent in GameStateRunning
	Score       int  // Targets collected
	Hits        int  // Projectile groups that reached the avatar
	Player      *object.Avatar
	Target      *object.Target
	Projectiles []object.Projectile
	Input       object.Input

	spawner *object.ProjectileSpawner
	rng     *rand.Rand
	log     *log.Logger
}

// NewState creates the game with the window centered on the display.
// A nil logger discards output.
func NewState(cfg config.Game, rng *rand.Rand, logger *log.Logger) *State {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	start := physics.V(
		(cfg.DisplayWidth-cfg.WindowWidth)/2,
		(cfg.DisplayHeight-cfg.WindowHeight)/2,
	)
	s := &State{
		Config:    cfg,
		GameState: GameStateIntro,
		Running:   true,
		Player:    object.NewAvatar(start, cfg),
		Target:    object.NewTarget(cfg, rng),
		spawner:   object.NewProjectileSpawner(cfg, rng),
		rng:       rng,
		log:       logger,
	}
	s.Projectiles = initialProjectiles(cfg)
	return s
}

// initialProjectiles returns the two groups the game opens with.
func initialProjectiles(cfg config.Game) []object.Projectile {
	var out []object.Projectile
	if p, err := object.NewSinusoid(physics.V(cfg.Right/4, cfg.Bottom/4), 20, physics.V(1, 1), 6); err == nil {
		out = append(out, p)
	}
	if p, err := object.NewCircle(physics.V(cfg.Right/2, cfg.Bottom/2), 30, physics.V(0, 1), 5, cfg.SpinSpeed); err == nil {
		out = append(out, p)
	}
	return out
}

// Camera returns the window position used as the drawing origin.
func (s *State) Camera() object.Vec {
	return s.Player.Pos
}
