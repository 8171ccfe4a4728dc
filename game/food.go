package game

import (
	"iter"
	"slices"
)

// RandomSource supplies uniform numbers in [0, 1). *rand.Rand from math/rand
// or golang.org/x/exp/rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Food is a target the snake can eat. Inactive food is gone for good: it is
// never drawn or collided with again.
type Food struct {
	ID     int
	Pos    Point
	Radius float64
	Active bool
}

// DistanceTo returns distance from food to a point
func (f *Food) DistanceTo(p Point) float64 {
	return Distance(f.Pos, p)
}

// FoodManager owns every food item of a session, in insertion order.
type FoodManager struct {
	items  []*Food
	radius float64
	rng    RandomSource
	nextID int
}

// NewFoodManager creates an empty manager spawning food of the given radius.
func NewFoodManager(radius float64, rng RandomSource) *FoodManager {
	return &FoodManager{
		items:  make([]*Food, 0),
		radius: radius,
		rng:    rng,
	}
}

// SpawnAt appends a new active food item at p.
func (m *FoodManager) SpawnAt(p Point) *Food {
	m.nextID++
	f := &Food{
		ID:     m.nextID,
		Pos:    p,
		Radius: m.radius,
		Active: true,
	}
	m.items = append(m.items, f)
	return f
}

// SpawnRandom spawns food uniformly inside b, keeping margin away from every
// edge. Overlap with existing food or the snake is allowed.
func (m *FoodManager) SpawnRandom(b Bounds, margin float64) *Food {
	x := margin + m.rng.Float64()*(b.Width-2*margin)
	y := margin + m.rng.Float64()*(b.Height-2*margin)
	return m.SpawnAt(Point{X: x, Y: y})
}

// Active yields active food in insertion order. Each call starts over.
func (m *FoodManager) Active() iter.Seq[*Food] {
	return func(yield func(*Food) bool) {
		for _, f := range m.items {
			if !f.Active {
				continue
			}
			if !yield(f) {
				return
			}
		}
	}
}

// ActiveCount returns how many items are still active.
func (m *FoodManager) ActiveCount() int {
	n := 0
	for range m.Active() {
		n++
	}
	return n
}

// Len returns the number of stored items, active or not.
func (m *FoodManager) Len() int {
	return len(m.items)
}

// Prune drops inactive items, keeping the rest in order.
func (m *FoodManager) Prune() {
	m.items = slices.DeleteFunc(m.items, func(f *Food) bool {
		return !f.Active
	})
}
