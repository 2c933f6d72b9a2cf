package object

import (
	"errors"
	"image/color"

	"github.com/tomz197/whuacamole/internal/input"
	"github.com/tomz197/whuacamole/internal/physics"
)

// Vec is the world-space position type.
type Vec = physics.Vec[float64]

// Input is an alias for the input package's Input type.
type Input = input.Input

// ErrEmptyGroup is returned when a projectile group is built with no sub-circles.
var ErrEmptyGroup = errors.New("projectile group needs at least one sub-circle")

// Colors (Catppuccin Mocha).
var (
	ColorBackground = color.RGBA{R: 34, G: 34, B: 64, A: 255}
	ColorInfo       = color.RGBA{R: 205, G: 214, B: 244, A: 255}
	ColorBad        = color.RGBA{R: 243, G: 139, B: 168, A: 255}
	ColorGood       = color.RGBA{R: 166, G: 227, B: 161, A: 255}
	ColorPoint      = color.RGBA{R: 250, G: 179, B: 135, A: 255}
)

// Surface is a render target that can draw filled circles in window coordinates.
// Implemented by the terminal canvas and the desktop window.
type Surface interface {
	FillCircle(x, y, radius float64, c color.RGBA)
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Surface Surface
	Camera  Vec // Window top-left in world coordinates
}

// toScreen converts a world position to window coordinates.
func (ctx DrawContext) toScreen(p Vec) Vec {
	return p.Sub(ctx.Camera)
}

// Projectile is a group of sub-circles that moves across the display.
// The set of shapes is closed: Sinusoid and Circle.
type Projectile interface {
	// UpdatePositions advances the group by one tick.
	UpdatePositions()
	// MovingOutsideView prunes sub-circles that left view and reports
	// whether the group is now empty.
	MovingOutsideView(view physics.Rect) bool
	// CheckCollisionWithPoint reports whether any sub-circle touches the circle (p, radius).
	CheckCollisionWithPoint(p Vec, radius float64) bool
	// Draw renders every sub-circle relative to the camera.
	Draw(ctx DrawContext) error
	// Positions returns the current sub-circle centers.
	Positions() []Vec
	// Remaining returns the number of sub-circles left.
	Remaining() int
	// Size returns the sub-circle radius.
	Size() float64

	projectile()
}

// touchesAny reports whether any of the circles (positions, size) touches (p, radius).
func touchesAny(positions []Vec, size float64, p Vec, radius float64) bool {
	for _, pos := range positions {
		if physics.CircleTouches(radius, size, p, pos) {
			return true
		}
	}
	return false
}

// drawCircles renders every position with the given radius and color.
func drawCircles(ctx DrawContext, positions []Vec, size float64, c color.RGBA) error {
	if ctx.Surface == nil {
		return nil
	}
	for _, pos := range positions {
		s := ctx.toScreen(pos)
		ctx.Surface.FillCircle(s.X, s.Y, size, c)
	}
	return nil
}
