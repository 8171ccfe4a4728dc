// Package game is the simulation core of the snake arcade game: a chain of
// segments moving across a wrapped playfield, food that makes it grow, and the
// session that decides when the game is lost or won.
//
// Nothing in this package draws, sleeps or reads input. A front end calls
// Session.Tick once per frame with the player's intent and renders
// Session.Snapshot.
package game

import "math"

// Point is a 2D coordinate in playfield space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p displaced by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Wrap folds a coordinate back onto [0, extent]: anything below zero lands on
// the far edge, anything past the far edge lands on zero.
func Wrap(c, extent float64) float64 {
	if c < 0 {
		return extent
	}
	if c > extent {
		return 0
	}
	return c
}

// Bounds is the rectangular playfield. Its edges wrap.
type Bounds struct {
	Width  float64
	Height float64
}

// Wrap applies Wrap to both axes of p.
func (b Bounds) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, b.Width), Y: Wrap(p.Y, b.Height)}
}

// Center returns the middle of the playfield.
func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}
