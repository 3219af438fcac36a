// Package core defines the domain model for tessella: vector math, elements,
// tables and the catalog that owns them.
package core

import "math"

// Vec is a 2D point or offset in canvas (world) or screen pixels.
type Vec struct {
	X, Y float64
}

// V builds a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y}
}

// Mul returns v scaled by s.
func (v Vec) Mul(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Div returns v scaled by 1/s.
func (v Vec) Div(s float64) Vec {
	return Vec{v.X / s, v.Y / s}
}

// Floor rounds both components down to whole pixels.
func (v Vec) Floor() Vec {
	return Vec{math.Floor(v.X), math.Floor(v.Y)}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance from v to w.
func (v Vec) Dist(w Vec) float64 {
	return v.Sub(w).Len()
}

// Within reports whether v lies in the half-open box [a, b): the left and
// top edges are inside, the right and bottom edges are not.
func (v Vec) Within(a, b Vec) bool {
	return v.X >= a.X && v.X < b.X && v.Y >= a.Y && v.Y < b.Y
}
