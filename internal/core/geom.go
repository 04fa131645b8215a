// Package core provides fundamental types and utilities for the homestead world.
// It has no terminal dependencies (especially no Bubble Tea) to keep world
// logic pure and testable.
package core

import "math"

// Point is a position in world pixels. Entities move with sub-pixel precision,
// so points are float-valued while collision rectangles are integral.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect represents an axis-aligned bounding box used for collision detection.
// W and H are never negative.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative sizes are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: Max(w, 0), H: Max(h, 0)}
}

// RectAt builds a w×h rectangle whose top-left corner is p truncated to
// whole pixels.
func RectAt(p Point, w, h int) Rect {
	return NewRect(int(p.X), int(p.Y), w, h)
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Expand grows the rectangle by margin on every side.
// A negative margin shrinks it, never below zero size.
func (r Rect) Expand(margin int) Rect {
	return NewRect(r.X-margin, r.Y-margin, r.W+2*margin, r.H+2*margin)
}

// CenterPoint returns the exact center as a Point.
func (r Rect) CenterPoint() Point {
	return Point{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
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
