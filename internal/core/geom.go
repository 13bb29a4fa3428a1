// Package core provides fundamental types and utilities for the game host.
// It does not depend on Bubble Tea or any terminal library, so game logic stays
// pure and testable.
package core

import "math"

// Vec2 is a point or direction in plane coordinates.
type Vec2 struct {
	X, Y float64
}

// V constructs a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DistSq returns the squared Euclidean distance between v and o.
// Collision checks compare this against a squared radius sum.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// NormalizeOrZero returns v scaled to unit length.
// The zero vector is returned unchanged instead of producing NaN.
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.LenSq()
	if l == 0 {
		return Vec2{}
	}
	inv := 1 / math.Sqrt(l)
	return Vec2{X: v.X * inv, Y: v.Y * inv}
}

// Arena is the rectangular play area with its origin at (0, 0).
type Arena struct {
	W, H float64
}

// Center returns the midpoint of the arena.
func (a Arena) Center() Vec2 {
	return Vec2{X: a.W / 2, Y: a.H / 2}
}

// Span returns the allowed [lo, hi] range on one axis for an extent inset by
// margin on both sides. When the extent is too small the range collapses to
// its midpoint.
func Span(extent, margin float64) (lo, hi float64) {
	lo, hi = margin, extent-margin
	if lo > hi {
		mid := extent / 2
		return mid, mid
	}
	return lo, hi
}

// Outside reports, per axis, whether p lies outside the arena inset by margin.
func (a Arena) Outside(p Vec2, margin float64) (x, y bool) {
	xlo, xhi := Span(a.W, margin)
	ylo, yhi := Span(a.H, margin)
	return p.X < xlo || p.X > xhi, p.Y < ylo || p.Y > yhi
}

// Clamp pulls p into the arena inset by margin.
func (a Arena) Clamp(p Vec2, margin float64) Vec2 {
	xlo, xhi := Span(a.W, margin)
	ylo, yhi := Span(a.H, margin)
	return Vec2{X: ClampF(p.X, xlo, xhi), Y: ClampF(p.Y, ylo, yhi)}
}

// Rect represents an axis-aligned box of screen cells.
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
