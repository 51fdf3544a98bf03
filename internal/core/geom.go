// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea or raylib)
// to keep game logic pure and testable.
package core

// Point is a position on the board in logical units. Game positions are
// always multiples of the cell size.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Wrap folds the point onto a w×h torus.
func (p Point) Wrap(w, h int) Point {
	return Point{X: Mod(p.X, w), Y: Mod(p.Y, h)}
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Rect represents an axis-aligned rectangle in logical units.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Mod returns a modulo n with the sign of n, so negative coordinates wrap
// to the far edge.
func Mod(a, n int) int {
	if n == 0 {
		return 0
	}
	m := a % n
	if m < 0 {
		m += n
	}
	return m
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
