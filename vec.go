package shade

import "math"

// Vector2 is a 2D point or vector.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Lerp performs linear interpolation between v and w.
// t=0 returns v, t=1 returns w.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// Length returns the length of the vector.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Round returns the coordinates rounded to the nearest integers.
func (v Vector2) Round() (x, y int) {
	return int(math.Round(v.X)), int(math.Round(v.Y))
}

// Trunc returns the coordinates truncated toward zero.
func (v Vector2) Trunc() (x, y int) {
	return int(v.X), int(v.Y)
}

// Approx reports whether v and w are equal within epsilon on both axes.
func (v Vector2) Approx(w Vector2, epsilon float64) bool {
	return math.Abs(v.X-w.X) <= epsilon && math.Abs(v.Y-w.Y) <= epsilon
}
