package object

import (
	"github.com/tomz197/whuacamole/internal/physics"
)

// Sinusoid is a diagonal line of circles drifting in a constant direction.
type Sinusoid struct {
	center Vec
	size   float64
	vel    physics.Vec[int]
	pos    []Vec
	angle  float64 // Ticks alive; the line does not rotate
}

// NewSinusoid lays n circles out along vel from center.
// Circle i sits at center + vel*(stretch*i), stretch = |vel|*size*3.
func NewSinusoid(center Vec, size float64, vel physics.Vec[int], n int) (*Sinusoid, error) {
	if n < 1 {
		return nil, ErrEmptyGroup
	}
	stretch := physics.Len(vel) * size * 3
	v := physics.Float(vel)

	pos := make([]Vec, 0, n)
	for i := 0; i < n; i++ {
		offset := stretch * float64(i)
		pos = append(pos, center.Add(v.Mul(physics.V(offset, offset))))
	}

	return &Sinusoid{
		center: center,
		size:   size,
		vel:    vel,
		pos:    pos,
		angle:  1,
	}, nil
}

func (s *Sinusoid) projectile() {}

// UpdatePositions translates every circle by the velocity.
func (s *Sinusoid) UpdatePositions() {
	v := physics.Float(s.vel)
	for i := range s.pos {
		s.pos[i] = s.pos[i].Add(v)
	}
	s.angle++
}

// MovingOutsideView drops circles that are outside view on the side the
// line is travelling towards. Circles still approaching the view are kept.
func (s *Sinusoid) MovingOutsideView(view physics.Rect) bool {
	speed := physics.Len(s.vel)
	if speed == 0 {
		return len(s.pos) == 0
	}
	inv := 1 / speed
	half := view.HalfSize()
	center := view.Center()
	v := physics.Float(s.vel)

	kept := make([]Vec, 0, len(s.pos))
	for _, pos := range s.pos {
		if view.Contains(pos) {
			kept = append(kept, pos)
			continue
		}
		normal := pos.Sub(center).Scale(inv)
		dot := normal.Mul(half).Mul(v)
		if dot.X+dot.Y > 0 {
			continue
		}
		kept = append(kept, pos)
	}
	s.pos = kept

	return len(s.pos) == 0
}

// CheckCollisionWithPoint reports whether any circle touches (p, radius).
func (s *Sinusoid) CheckCollisionWithPoint(p Vec, radius float64) bool {
	return touchesAny(s.pos, s.size, p, radius)
}

// Draw renders the circles relative to the camera.
func (s *Sinusoid) Draw(ctx DrawContext) error {
	return drawCircles(ctx, s.pos, s.size, ColorBad)
}

// Positions returns a copy of the circle centers.
func (s *Sinusoid) Positions() []Vec {
	return append([]Vec(nil), s.pos...)
}

func (s *Sinusoid) Remaining() int {
	return len(s.pos)
}

// Size returns the circle radius.
func (s *Sinusoid) Size() float64 {
	return s.size
}

// Velocity returns the per-tick translation.
func (s *Sinusoid) Velocity() physics.Vec[int] {
	return s.vel
}
