package object

import (
	"math/rand"

	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/physics"
)

// Spawn ranges (inclusive).
const (
	spawnDivisorMin = 1
	spawnDivisorMax = 10
	spawnSizeExtra  = 5
	spawnCountMin   = 3
	spawnCountMax   = 6
	spawnVelMin     = -4
	spawnVelMax     = 3
)

// ProjectileSpawner creates projectile groups away from the player.
type ProjectileSpawner struct {
	cfg config.Game
	rng *rand.Rand
}

// NewProjectileSpawner creates a spawner drawing from rng.
func NewProjectileSpawner(cfg config.Game, rng *rand.Rand) *ProjectileSpawner {
	return &ProjectileSpawner{cfg: cfg, rng: rng}
}

// Next creates a random projectile group. player is the window position;
// the group never starts within one window width of it.
func (s *ProjectileSpawner) Next(player Vec) Projectile {
	center := s.spawnPoint(player)
	size := s.cfg.BaseRadius + float64(randRange(s.rng, 0, spawnSizeExtra))
	n := randRange(s.rng, spawnCountMin, spawnCountMax)
	vel := physics.V(s.velocityComponent(), s.velocityComponent())

	if s.rng.Intn(2) == 0 {
		p, _ := NewSinusoid(center, size, vel, n)
		return p
	}
	p, _ := NewCircle(center, size, vel, n, s.cfg.SpinSpeed)
	return p
}

// spawnPoint picks (W/x, H/y), rerolling anything closer than a window width to player.
func (s *ProjectileSpawner) spawnPoint(player Vec) Vec {
	for {
		x := randRange(s.rng, spawnDivisorMin, spawnDivisorMax)
		y := randRange(s.rng, spawnDivisorMin, spawnDivisorMax)
		p := physics.V(s.cfg.DisplayWidth/float64(x), s.cfg.DisplayHeight/float64(y))
		if !tooClose(p, player, s.cfg.WindowWidth) {
			return p
		}
	}
}

// velocityComponent returns a non-zero velocity component.
func (s *ProjectileSpawner) velocityComponent() int {
	v := randRange(s.rng, spawnVelMin, spawnVelMax)
	if v == 0 {
		v = 1
	}
	return v
}

// tooClose reports whether p is less than dist from player.
func tooClose(p, player Vec, dist float64) bool {
	return physics.DistanceSquared(p.X, p.Y, player.X, player.Y) < dist*dist
}
