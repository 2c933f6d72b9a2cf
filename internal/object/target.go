package object

import (
	"math/rand"

	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/physics"
)

// Target is the point the player collects.
type Target struct {
	Pos  Vec
	Size float64 // Draw radius; collection treats the target as a point
}

// NewTarget places a target uniformly inside the display, inset by a tenth
// of each dimension.
func NewTarget(cfg config.Game, rng *rand.Rand) *Target {
	insetX := int(cfg.DisplayWidth / 10)
	insetY := int(cfg.DisplayHeight / 10)
	x := randRange(rng, insetX, int(cfg.DisplayWidth)-insetX)
	y := randRange(rng, insetY, int(cfg.DisplayHeight)-insetY)
	return &Target{
		Pos:  physics.V(float64(x), float64(y)),
		Size: cfg.BaseRadius,
	}
}

// TouchedBy reports whether the circle (center, radius) reaches the target.
func (t *Target) TouchedBy(center Vec, radius float64) bool {
	return physics.CircleTouches(radius, 0, center, t.Pos)
}

// Draw renders the target relative to the camera.
func (t *Target) Draw(ctx DrawContext) error {
	return drawCircles(ctx, []Vec{t.Pos}, t.Size, ColorPoint)
}

// randRange returns a uniform integer in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
