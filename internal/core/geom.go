// Package core provides fundamental types and utilities for the greeting card.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// effect logic pure and testable.
package core

// Rect represents an axis-aligned box in terminal cells.
// Page elements and the viewport are described with it.
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

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if this rectangle overlaps with another.
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

// Intersection returns the overlapping area of two rectangles.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	x := Max(r.X, other.X)
	y := Max(r.Y, other.Y)
	return Rect{
		X: x,
		Y: y,
		W: Min(r.Right(), other.Right()) - x,
		H: Min(r.Bottom(), other.Bottom()) - y,
	}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scale converts a cell rectangle into pixel space using the given cell metrics.
func (r Rect) Scale(cellW, cellH float64) RectF {
	return RectF{
		X: float64(r.X) * cellW,
		Y: float64(r.Y) * cellH,
		W: float64(r.W) * cellW,
		H: float64(r.H) * cellH,
	}
}

// Vec is a point or direction in pixel space.
type Vec struct {
	X, Y float64
}

// RectF is an axis-aligned box in pixel space, the analogue of a
// bounding client rect.
type RectF struct {
	X, Y float64
	W, H float64
}

// Center returns the center point of the box.
func (r RectF) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
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
