// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// CirclesOverlap reports whether two circles overlap.
// Touching circles (distance == ra+rb) do not overlap.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return Dist(a, b) < ra+rb
}

// SpanOverlap reports whether the open intervals (a0, a1) and (b0, b1) intersect.
func SpanOverlap(a0, a1, b0, b1 float64) bool {
	return a1 > b0 && a0 < b1
}

// Lerp moves from toward to by factor t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Wrap folds x back into [0, width] by one period.
// Values more than one width out of range are folded once, not reduced.
func Wrap(x, width float64) float64 {
	if x > width {
		return x - width
	}
	if x < 0 {
		return x + width
	}
	return x
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
