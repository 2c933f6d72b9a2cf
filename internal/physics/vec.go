package physics

// Number is the component type of a Vec.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec is an immutable 2D pair. Every operation returns a new Vec.
type Vec[T Number] struct {
	X, Y T
}

// V builds a Vec from its components.
func V[T Number](x, y T) Vec[T] {
	return Vec[T]{X: x, Y: y}
}

// Add returns the element-wise sum.
func (v Vec[T]) Add(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the element-wise difference.
func (v Vec[T]) Sub(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the element-wise product.
func (v Vec[T]) Mul(o Vec[T]) Vec[T] {
	return Vec[T]{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale multiplies both components by s.
func (v Vec[T]) Scale(s T) Vec[T] {
	return Vec[T]{X: s * v.X, Y: s * v.Y}
}

// Tuple returns the components as a pair.
func (v Vec[T]) Tuple() (T, T) {
	return v.X, v.Y
}

// Fold reduces the two components with f.
func (v Vec[T]) Fold(f func(x, y T) T) T {
	return f(v.X, v.Y)
}

// FMap applies f to the components and broadcasts the result into a new Vec.
// FMap(math.Hypot) yields the length in both components.
func (v Vec[T]) FMap(f func(x, y T) T) Vec[T] {
	r := f(v.X, v.Y)
	return Vec[T]{X: r, Y: r}
}

// Float converts v to a float64 Vec.
func Float[T Number](v Vec[T]) Vec[float64] {
	return Vec[float64]{X: float64(v.X), Y: float64(v.Y)}
}

// Len returns the Euclidean length of v.
func Len[T Number](v Vec[T]) float64 {
	return Distance(0, 0, float64(v.X), float64(v.Y))
}

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec[float64]) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec[float64] {
	return Vec[float64]{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// HalfSize returns half the width and height of r.
func (r Rect) HalfSize() Vec[float64] {
	return Vec[float64]{X: (r.Right - r.Left) / 2, Y: (r.Bottom - r.Top) / 2}
}
