package object

import (
	"math"

	"github.com/tomz197/whuacamole/internal/physics"
)

// ringMember is a circle on the ring and the index its angle is derived from.
type ringMember struct {
	pos   Vec
	index int
}

// Circle is a ring of circles orbiting a moving center.
type Circle struct {
	center    Vec
	size      float64
	vel       physics.Vec[int]
	amount    int
	radius    float64
	angle     float64 // Degrees
	spinSpeed float64 // Degrees per tick
	members   []ringMember
}

// NewCircle places n circles evenly on a ring of radius (n+1)*size around center.
// spin is the ring's rotation speed in degrees per tick.
func NewCircle(center Vec, size float64, vel physics.Vec[int], n int, spin float64) (*Circle, error) {
	if n < 1 {
		return nil, ErrEmptyGroup
	}
	c := &Circle{
		center:    center,
		size:      size,
		vel:       vel,
		amount:    n,
		radius:    float64(n+1) * size,
		angle:     1,
		spinSpeed: spin,
		members:   make([]ringMember, 0, n),
	}
	for i := 1; i <= n; i++ {
		c.members = append(c.members, ringMember{pos: c.memberPosition(i, 0), index: i})
	}
	return c, nil
}

func (c *Circle) projectile() {}

// memberPosition returns where member i sits when the ring is rotated by rot radians.
func (c *Circle) memberPosition(i int, rot float64) Vec {
	part := 2 * math.Pi / float64(c.amount)
	offset := float64(i)*part + part/2
	return c.center.Add(physics.V(
		c.radius*math.Cos(rot+offset),
		c.radius*math.Sin(rot+offset),
	))
}

// UpdatePositions rotates the ring about its current center, then moves the center.
func (c *Circle) UpdatePositions() {
	rot := c.angle * math.Pi / 180
	members := make([]ringMember, 0, len(c.members))
	for _, m := range c.members {
		members = append(members, ringMember{pos: c.memberPosition(m.index, rot), index: m.index})
	}
	c.members = members

	c.center = c.center.Add(physics.Float(c.vel))
	if c.angle < 360 {
		c.angle += c.spinSpeed
	} else {
		c.angle = 0
	}
}

// MovingOutsideView drops circles that are fully outside view, but only
// once the ring center has left view too. The ring stays whole while its
// center is on the display.
func (c *Circle) MovingOutsideView(view physics.Rect) bool {
	if view.Contains(c.center) {
		return len(c.members) == 0
	}

	kept := make([]ringMember, 0, len(c.members))
	for _, m := range c.members {
		if c.boxOutside(m.pos, view) {
			continue
		}
		kept = append(kept, m)
	}
	c.members = kept

	return len(c.members) == 0
}

// boxOutside reports whether the bounding box of a circle at p lies fully outside view.
func (c *Circle) boxOutside(p Vec, view physics.Rect) bool {
	return p.X+c.size < view.Left ||
		p.X-c.size > view.Right ||
		p.Y+c.size < view.Top ||
		p.Y-c.size > view.Bottom
}

// CheckCollisionWithPoint reports whether any circle touches (p, radius).
func (c *Circle) CheckCollisionWithPoint(p Vec, radius float64) bool {
	return touchesAny(c.Positions(), c.size, p, radius)
}

// Draw renders the ring relative to the camera.
func (c *Circle) Draw(ctx DrawContext) error {
	return drawCircles(ctx, c.Positions(), c.size, ColorBad)
}

// Positions returns the circle centers.
func (c *Circle) Positions() []Vec {
	out := make([]Vec, len(c.members))
	for i, m := range c.members {
		out[i] = m.pos
	}
	return out
}

// Remaining returns the number of circles left in the ring.
func (c *Circle) Remaining() int {
	return len(c.members)
}

// Size returns the circle radius.
func (c *Circle) Size() float64 {
	return c.size
}

// Center returns the ring center.
func (c *Circle) Center() Vec {
	return c.center
}

// Radius returns the ring radius.
func (c *Circle) Radius() float64 {
	return c.radius
}
