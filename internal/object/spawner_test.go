package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/whuacamole/internal/physics"
)

func TestSpawnerRanges(t *testing.T) {
	cfg := testConfig(t)
	s := NewProjectileSpawner(cfg, rand.New(rand.NewSource(42)))
	player := physics.V(400.0, 200.0)

	var sinusoids, circles int
	for i := 0; i < 1000; i++ {
		p := s.Next(player)
		if p.Size() < cfg.BaseRadius || p.Size() > cfg.BaseRadius+5 {
			t.Fatalf("size %v out of range", p.Size())
		}
		n := len(p.Positions())
		if n < 3 || n > 6 {
			t.Fatalf("count %d out of range", n)
		}

		switch g := p.(type) {
		case *Sinusoid:
			sinusoids++
			v := g.Velocity()
			checkVelocity(t, v)
			if tooClose(p.Positions()[0], player, cfg.WindowWidth) {
				t.Fatalf("sinusoid spawned within a window width of the player")
			}
		case *Circle:
			circles++
			checkVelocity(t, g.vel)
			if tooClose(g.Center(), player, cfg.WindowWidth) {
				t.Fatalf("circle spawned within a window width of the player")
			}
		default:
			t.Fatalf("unexpected projectile type %T", p)
		}
	}
	if sinusoids == 0 || circles == 0 {
		t.Errorf("Expected both shapes, got %d sinusoids and %d circles", sinusoids, circles)
	}
}

func checkVelocity(t *testing.T, v physics.Vec[int]) {
	t.Helper()
	for _, c := range []int{v.X, v.Y} {
		if c == 0 || c < -4 || c > 3 {
			t.Fatalf("velocity component %d out of range", c)
		}
	}
}

func TestSpawnerRerollsPlayerPosition(t *testing.T) {
	cfg := testConfig(t)
	// The player sits exactly on the candidate (W/2, H/2).
	player := physics.V(cfg.DisplayWidth/2, cfg.DisplayHeight/2)
	s := NewProjectileSpawner(cfg, rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		p := s.spawnPoint(player)
		if p == player {
			t.Fatalf("spawner returned the player position")
		}
		if tooClose(p, player, cfg.WindowWidth) {
			t.Fatalf("spawn point %v too close to player", p)
		}
	}
}
