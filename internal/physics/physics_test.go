package physics

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec[float64]
	}{
		{"Origin", V(0.0, 0.0), V(0.0, 0.0)},
		{"Positive", V(3.0, 4.0), V(1.5, 2.0)},
		{"Negative", V(-7.0, 2.5), V(4.0, -9.0)},
		{"Mixed", V(0.25, -1.0), V(-0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b).Sub(tt.b); got != tt.a {
				t.Errorf("Expected (a+b)-b to be %v, got %v", tt.a, got)
			}
			m := tt.a.Mul(tt.b)
			if m.X != tt.a.X*tt.b.X || m.Y != tt.a.Y*tt.b.Y {
				t.Errorf("Expected element-wise product, got %v", m)
			}
		})
	}
}

func TestVecIntegerArithmetic(t *testing.T) {
	a, b := V(3, -4), V(-2, 5)
	if got := a.Add(b).Sub(b); got != a {
		t.Errorf("Expected %v, got %v", a, got)
	}
	if got := a.Scale(2); got != V(6, -8) {
		t.Errorf("Expected (6,-8), got %v", got)
	}
	if got := Float(a); got != V(3.0, -4.0) {
		t.Errorf("Expected float copy, got %v", got)
	}
}

func TestVecFoldAndFMap(t *testing.T) {
	v := V(3.0, 4.0)
	if got := v.Fold(math.Hypot); got != 5 {
		t.Errorf("Expected Fold(hypot) to be 5, got %v", got)
	}
	if got := v.FMap(math.Hypot); got != V(5.0, 5.0) {
		t.Errorf("Expected FMap(hypot) to be (5,5), got %v", got)
	}
	x, y := v.Tuple()
	if x != 3 || y != 4 {
		t.Errorf("Expected tuple (3,4), got (%v,%v)", x, y)
	}
	if got := Len(V(-6, 8)); got != 10 {
		t.Errorf("Expected length 10, got %v", got)
	}
}

func TestCircleTouches(t *testing.T) {
	tests := []struct {
		name   string
		r1, r2 float64
		a, b   Vec[float64]
		want   bool
	}{
		{"Same center", 1, 0, V(5.0, 5.0), V(5.0, 5.0), true},
		{"Same center zero second radius", 0, 2, V(-3.0, 1.0), V(-3.0, 1.0), true},
		{"Overlapping", 3, 2, V(0.0, 0.0), V(4.0, 0.0), true},
		{"Tangent", 3, 2, V(0.0, 0.0), V(3.0, 4.0), true},
		{"Apart", 1, 1, V(0.0, 0.0), V(10.0, 10.0), false},
		{"Just apart", 2, 2, V(0.0, 0.0), V(0.0, 4.01), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CircleTouches(tt.r1, tt.r2, tt.a, tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if got := CircleTouches(tt.r2, tt.r1, tt.b, tt.a); got != tt.want {
				t.Errorf("Expected symmetric result %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{Left: 0, Top: 0, Right: 100, Bottom: 50}
	if !r.Contains(V(100.0, 50.0)) {
		t.Errorf("Expected edge point to be contained")
	}
	if r.Contains(V(-0.1, 10.0)) {
		t.Errorf("Expected point left of rect to be outside")
	}
	if got := r.Center(); got != V(50.0, 25.0) {
		t.Errorf("Expected center (50,25), got %v", got)
	}
	if got := r.HalfSize(); got != V(50.0, 25.0) {
		t.Errorf("Expected half size (50,25), got %v", got)
	}
}

func TestClamp(t *testing.T) {
	if v, moved := Clamp(-3, 0, 10); v != 0 || !moved {
		t.Errorf("Expected (0,true), got (%v,%v)", v, moved)
	}
	if v, moved := Clamp(12, 0, 10); v != 10 || !moved {
		t.Errorf("Expected (10,true), got (%v,%v)", v, moved)
	}
	if v, moved := Clamp(5, 0, 10); v != 5 || moved {
		t.Errorf("Expected (5,false), got (%v,%v)", v, moved)
	}
}
