package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/physics"
)

func testConfig(t *testing.T) config.Game {
	t.Helper()
	cfg, err := config.New(1000, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cfg
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAvatarSteer(t *testing.T) {
	cfg := testConfig(t)
	tests := []struct {
		name  string
		input Input
		want  Vec
	}{
		{"No input decays", Input{}, physics.V(0.95*2, 0.95*-1)},
		{"Right", Input{Right: true}, physics.V(0.95*2.5, 0.95*-1)},
		{"Up left", Input{Up: true, Left: true}, physics.V(0.95*1.5, 0.95*-1.5)},
		{"Opposing keys cancel", Input{Left: true, Right: true, Down: true}, physics.V(0.95*2, 0.95*-0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAvatar(physics.V(100.0, 100.0), cfg)
			a.Vel = physics.V(2.0, -1.0)
			a.Steer(tt.input)
			if !almostEqual(a.Vel.X, tt.want.X) || !almostEqual(a.Vel.Y, tt.want.Y) {
				t.Errorf("Expected velocity %v, got %v", tt.want, a.Vel)
			}
		})
	}
}

func TestAvatarBounce(t *testing.T) {
	cfg := testConfig(t)
	tests := []struct {
		name    string
		pos     Vec
		vel     Vec
		wantPos Vec
		wantVel Vec
	}{
		{"Left wall", physics.V(-4.0, 50.0), physics.V(-3.0, 1.0), physics.V(0.0, 50.0), physics.V(3.9, 1.0)},
		{"Right wall", physics.V(900.0, 50.0), physics.V(2.0, 0.0), physics.V(800.0, 50.0), physics.V(-2.6, 0.0)},
		{"Top wall", physics.V(10.0, -1.0), physics.V(0.0, -1.0), physics.V(10.0, 0.0), physics.V(0.0, 1.3)},
		{"Bottom wall", physics.V(10.0, 450.0), physics.V(1.0, 5.0), physics.V(10.0, 400.0), physics.V(1.0, -6.5)},
		{"Corner", physics.V(-1.0, -1.0), physics.V(-1.0, -2.0), physics.V(0.0, 0.0), physics.V(1.3, 2.6)},
		{"Inside", physics.V(10.0, 10.0), physics.V(-1.0, -2.0), physics.V(10.0, 10.0), physics.V(-1.0, -2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAvatar(tt.pos, cfg)
			a.Vel = tt.vel
			a.SolveWindowCollisions()
			if a.Pos != tt.wantPos {
				t.Errorf("Expected position %v, got %v", tt.wantPos, a.Pos)
			}
			if !almostEqual(a.Vel.X, tt.wantVel.X) || !almostEqual(a.Vel.Y, tt.wantVel.Y) {
				t.Errorf("Expected velocity %v, got %v", tt.wantVel, a.Vel)
			}
		})
	}
}

func TestAvatarGrow(t *testing.T) {
	cfg := testConfig(t) // window 200 wide, base radius 13
	a := NewAvatar(physics.V(0.0, 0.0), cfg)

	a.Grow()
	if a.Radius != cfg.BaseRadius {
		t.Fatalf("Expected no growth without flag, got %v", a.Radius)
	}

	a.Growing = true
	ticks := 0
	for a.Growing {
		a.Grow()
		ticks++
		if a.Growing && a.Radius > cfg.WindowWidth/2 {
			t.Fatalf("radius %v exceeded half the window while growing", a.Radius)
		}
		if ticks > 100 {
			t.Fatalf("avatar never stopped growing")
		}
	}
	if a.Radius != cfg.BaseRadius {
		t.Errorf("Expected radius reset to %v, got %v", cfg.BaseRadius, a.Radius)
	}
	// 13 + 7*13 = 104 > 100 is the first value past half the width.
	if ticks != 13 {
		t.Errorf("Expected 13 growth ticks, got %d", ticks)
	}
}

func TestAvatarCenterAndDraw(t *testing.T) {
	cfg := testConfig(t)
	a := NewAvatar(physics.V(30.0, 40.0), cfg)
	if got := a.Center(); got != physics.V(130.0, 90.0) {
		t.Errorf("Expected center (130,90), got %v", got)
	}

	surf := &recordingSurface{}
	if err := a.Draw(DrawContext{Surface: surf, Camera: a.Pos}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(surf.circles) != 1 || surf.circles[0].x != 100 || surf.circles[0].y != 50 || surf.circles[0].c != ColorGood {
		t.Errorf("Unexpected draw %+v", surf.circles)
	}
}

func TestNewTargetInset(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		tg := NewTarget(cfg, rng)
		if tg.Pos.X < 100 || tg.Pos.X > 900 || tg.Pos.Y < 50 || tg.Pos.Y > 450 {
			t.Fatalf("target %v outside the inset display", tg.Pos)
		}
		if tg.Size != cfg.BaseRadius {
			t.Fatalf("Expected target size %v, got %v", cfg.BaseRadius, tg.Size)
		}
	}
}

func TestTargetTouchedBy(t *testing.T) {
	tg := &Target{Pos: physics.V(10.0, 0.0), Size: 5}
	if !tg.TouchedBy(physics.V(0.0, 0.0), 10) {
		t.Errorf("Expected target on the circle edge to be touched")
	}
	if tg.TouchedBy(physics.V(0.0, 0.0), 9.5) {
		t.Errorf("Expected target outside the circle to be missed")
	}
}
