package object

import (
	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/physics"
)

// Avatar is the player: a window moving over the display with a pulsing
// circle drawn at its center.
type Avatar struct {
	Pos     Vec     // Window top-left in world coordinates
	Vel     Vec     // Velocity (per tick)
	Radius  float64 // Circle radius
	Growing bool    // Radius is pulsing outward

	cfg config.Game
}

// NewAvatar creates the avatar with its window at pos.
func NewAvatar(pos Vec, cfg config.Game) *Avatar {
	return &Avatar{
		Pos:    pos,
		Vel:    physics.V(5.0, 5.0),
		Radius: cfg.BaseRadius,
		cfg:    cfg,
	}
}

// Steer adds the input acceleration to the velocity and applies drag.
func (a *Avatar) Steer(in Input) {
	var dir Vec
	if in.Right {
		dir.X++
	}
	if in.Left {
		dir.X--
	}
	if in.Down {
		dir.Y++
	}
	if in.Up {
		dir.Y--
	}
	accel := a.cfg.Speed * 0.1
	drag := physics.V(a.cfg.Drag, a.cfg.Drag)
	a.Vel = dir.Mul(physics.V(accel, accel)).Add(a.Vel).Mul(drag)
}

// SolveWindowCollisions keeps the window on the display. A clamped axis
// bounces back with BounceFactor times its velocity.
func (a *Avatar) SolveWindowCollisions() {
	var clamped bool
	a.Pos.X, clamped = physics.Clamp(a.Pos.X, a.cfg.Left, a.cfg.Right-a.cfg.WindowWidth)
	if clamped {
		a.Vel.X *= a.cfg.BounceFactor
	}
	a.Pos.Y, clamped = physics.Clamp(a.Pos.Y, a.cfg.Top, a.cfg.Bottom-a.cfg.WindowHeight)
	if clamped {
		a.Vel.Y *= a.cfg.BounceFactor
	}
}

// Move integrates the velocity into the position.
func (a *Avatar) Move() {
	a.Pos = a.Pos.Add(a.Vel)
}

// Grow pulses the radius while Growing; past half the window width it
// snaps back and stops.
func (a *Avatar) Grow() {
	if !a.Growing {
		return
	}
	a.Radius += a.cfg.GrowStep
	if a.Radius > a.cfg.WindowWidth/2 {
		a.ResetRadius()
	}
}

// ResetRadius restores the resting radius and stops growing.
func (a *Avatar) ResetRadius() {
	a.Radius = a.cfg.BaseRadius
	a.Growing = false
}

// Center returns the circle center in world coordinates.
func (a *Avatar) Center() Vec {
	return a.Pos.Add(a.cfg.WindowCenter())
}

// Draw renders the avatar circle at the window center.
func (a *Avatar) Draw(ctx DrawContext) error {
	if ctx.Surface == nil {
		return nil
	}
	c := a.cfg.WindowCenter()
	ctx.Surface.FillCircle(c.X, c.Y, a.Radius, ColorGood)
	return nil
}
