package object

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/tomz197/whuacamole/internal/physics"
)

var testView = physics.Rect{Left: 0, Top: 0, Right: 1000, Bottom: 600}

type recordedCircle struct {
	x, y, r float64
	c       color.RGBA
}

type recordingSurface struct {
	circles []recordedCircle
}

func (s *recordingSurface) FillCircle(x, y, r float64, c color.RGBA) {
	s.circles = append(s.circles, recordedCircle{x, y, r, c})
}

func TestNewSinusoidLayout(t *testing.T) {
	tests := []struct {
		name string
		vel  physics.Vec[int]
		n    int
	}{
		{"Diagonal", physics.V(1, 1), 6},
		{"Single", physics.V(-2, 3), 1},
		{"Horizontal", physics.V(3, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := physics.V(500.0, 300.0)
			s, err := NewSinusoid(center, 10, tt.vel, tt.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			pos := s.Positions()
			if len(pos) != tt.n {
				t.Fatalf("Expected %d circles, got %d", tt.n, len(pos))
			}
			if pos[0] != center {
				t.Errorf("Expected first circle at center, got %v", pos[0])
			}
			stretch := physics.Len(tt.vel) * 10 * 3
			for i, p := range pos {
				want := center.Add(physics.Float(tt.vel).Scale(stretch * float64(i)))
				if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 {
					t.Errorf("circle %d: expected %v, got %v", i, want, p)
				}
			}
		})
	}
}

func TestNewGroupRejectsEmpty(t *testing.T) {
	if _, err := NewSinusoid(physics.V(0.0, 0.0), 5, physics.V(1, 1), 0); !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("Expected ErrEmptyGroup from sinusoid, got %v", err)
	}
	if _, err := NewCircle(physics.V(0.0, 0.0), 5, physics.V(1, 1), 0, 1); !errors.Is(err, ErrEmptyGroup) {
		t.Errorf("Expected ErrEmptyGroup from circle, got %v", err)
	}
}

func TestSinusoidUpdateTranslates(t *testing.T) {
	s, _ := NewSinusoid(physics.V(100.0, 100.0), 2, physics.V(-2, 3), 3)
	before := s.Positions()
	s.UpdatePositions()
	after := s.Positions()
	for i := range before {
		if want := before[i].Add(physics.V(-2.0, 3.0)); after[i] != want {
			t.Errorf("circle %d: expected %v, got %v", i, want, after[i])
		}
	}
}

func TestSinusoidEventuallyLeaves(t *testing.T) {
	vels := []physics.Vec[int]{
		physics.V(1, 1), physics.V(-1, -1), physics.V(-4, 3), physics.V(3, -4), physics.V(1, -1),
	}

	for _, vel := range vels {
		s, _ := NewSinusoid(physics.V(500.0, 300.0), 5, vel, 6)
		prev := s.Remaining()
		done := false
		for tick := 0; tick < 5000 && !done; tick++ {
			s.UpdatePositions()
			done = s.MovingOutsideView(testView)
			n := s.Remaining()
			if n > prev {
				t.Fatalf("vel %v: group grew from %d to %d", vel, prev, n)
			}
			prev = n
		}
		if !done {
			t.Errorf("vel %v: expected group to leave the view", vel)
		}
		if n := s.Remaining(); n != 0 {
			t.Errorf("vel %v: expected empty group, got %d", vel, n)
		}
	}
}

func TestSinusoidKeepsApproachingCircles(t *testing.T) {
	// Left of the view and moving right: outside, but not yet through.
	s, _ := NewSinusoid(physics.V(-50.0, 300.0), 5, physics.V(1, 0), 1)
	if s.MovingOutsideView(testView) {
		t.Fatalf("Expected approaching circle to be kept")
	}
	if n := s.Remaining(); n != 1 {
		t.Errorf("Expected 1 circle, got %d", n)
	}
}

func TestSinusoidPrunesConsecutiveCircles(t *testing.T) {
	// Every circle past the first is off the right edge and moving away.
	s, _ := NewSinusoid(physics.V(900.0, 300.0), 50, physics.V(1, 0), 5)
	if s.MovingOutsideView(testView) {
		t.Fatalf("Expected center circle to remain")
	}
	pos := s.Positions()
	if len(pos) != 1 || pos[0] != physics.V(900.0, 300.0) {
		t.Errorf("Expected only the center circle to remain, got %v", pos)
	}
}

func TestCircleLayout(t *testing.T) {
	center := physics.V(500.0, 300.0)
	c, err := NewCircle(center, 10, physics.V(0, 1), 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Radius() != 50 {
		t.Errorf("Expected ring radius 50, got %v", c.Radius())
	}
	for i, p := range c.Positions() {
		d := physics.Distance(center.X, center.Y, p.X, p.Y)
		if math.Abs(d-50) > 1e-9 {
			t.Errorf("member %d: expected distance 50, got %v", i, d)
		}
	}
}

func TestCircleUpdateRotatesAndMoves(t *testing.T) {
	center := physics.V(500.0, 300.0)
	c, _ := NewCircle(center, 10, physics.V(2, -1), 3, 1)
	c.UpdatePositions()
	if want := physics.V(502.0, 299.0); c.Center() != want {
		t.Errorf("Expected center %v, got %v", want, c.Center())
	}
	// Members were placed around the old center, rotated by one degree.
	part := 2 * math.Pi / 3
	rot := math.Pi / 180
	for i, p := range c.Positions() {
		offset := float64(i+1)*part + part/2
		want := center.Add(physics.V(40*math.Cos(rot+offset), 40*math.Sin(rot+offset)))
		if math.Abs(p.X-want.X) > 1e-9 || math.Abs(p.Y-want.Y) > 1e-9 {
			t.Errorf("member %d: expected %v, got %v", i, want, p)
		}
	}
}

func TestCircleAngleWraps(t *testing.T) {
	c, _ := NewCircle(physics.V(500.0, 300.0), 10, physics.V(0, 0), 3, 1)
	for i := 0; i < 359; i++ {
		c.UpdatePositions()
	}
	if c.angle != 360 {
		t.Fatalf("Expected angle 360, got %v", c.angle)
	}
	c.UpdatePositions()
	if c.angle != 0 {
		t.Errorf("Expected angle to wrap to 0, got %v", c.angle)
	}
}

func TestCircleStaysWholeWhileCenterInView(t *testing.T) {
	// Ring near the left edge: members swing off-screen while the center stays on it.
	c, _ := NewCircle(physics.V(20.0, 300.0), 10, physics.V(0, 1), 5, 1)
	for tick := 0; tick < 200; tick++ {
		c.UpdatePositions()
		if c.MovingOutsideView(testView) {
			t.Fatalf("tick %d: ring reported empty while center in view", tick)
		}
		if n := c.Remaining(); n != 5 {
			t.Fatalf("tick %d: expected 5 members, got %d", tick, n)
		}
	}
}

func TestCircleCountNonIncreasing(t *testing.T) {
	c, _ := NewCircle(physics.V(900.0, 500.0), 8, physics.V(3, 2), 6, 1)
	prev := c.Remaining()
	done := false
	for tick := 0; tick < 5000 && !done; tick++ {
		c.UpdatePositions()
		done = c.MovingOutsideView(testView)
		n := c.Remaining()
		if n > prev {
			t.Fatalf("tick %d: ring grew from %d to %d", tick, prev, n)
		}
		if n < prev && testView.Contains(c.Center()) {
			t.Fatalf("tick %d: member removed while center in view", tick)
		}
		prev = n
	}
	if !done {
		t.Errorf("Expected ring to leave the view")
	}
}

func TestCheckCollisionWithPoint(t *testing.T) {
	s, _ := NewSinusoid(physics.V(100.0, 100.0), 5, physics.V(1, 0), 1)
	c, _ := NewCircle(physics.V(300.0, 300.0), 5, physics.V(1, 0), 1, 1)
	member := c.Positions()[0]

	tests := []struct {
		name   string
		p      Projectile
		point  Vec
		radius float64
		want   bool
	}{
		{"Sinusoid hit", s, physics.V(108.0, 100.0), 3, true},
		{"Sinusoid miss", s, physics.V(120.0, 100.0), 3, false},
		{"Circle hit", c, member, 0, true},
		{"Circle center miss", c, physics.V(300.0, 300.0), 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.CheckCollisionWithPoint(tt.point, tt.radius); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDrawIsCameraRelative(t *testing.T) {
	s, _ := NewSinusoid(physics.V(150.0, 120.0), 7, physics.V(1, 1), 1)
	surf := &recordingSurface{}
	ctx := DrawContext{Surface: surf, Camera: physics.V(100.0, 100.0)}
	if err := s.Draw(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(surf.circles) != 1 {
		t.Fatalf("Expected 1 circle, got %d", len(surf.circles))
	}
	got := surf.circles[0]
	if got.x != 50 || got.y != 20 || got.r != 7 || got.c != ColorBad {
		t.Errorf("Unexpected draw %+v", got)
	}
}
