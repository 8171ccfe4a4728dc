package game

import "math"

// Autopilot steers a snake toward food without ever reversing into itself.
// It is deterministic: the same snapshot always yields the same decision.
type Autopilot struct {
	bounds        Bounds
	step          float64
	segmentRadius float64
}

// NewAutopilot creates an autopilot for sessions built from cfg.
func NewAutopilot(cfg Config) *Autopilot {
	return &Autopilot{
		bounds:        cfg.Bounds(),
		step:          cfg.HeadRadius * 2,
		segmentRadius: cfg.SegmentRadius,
	}
}

// Decide returns the intent for the next tick, or None to keep the current heading.
func (a *Autopilot) Decide(snap Snapshot) Direction {
	for _, d := range a.candidates(snap) {
		if d == None || d == snap.Direction.Opposite() {
			continue
		}
		if !a.safe(snap, d) {
			continue
		}
		if d == snap.Direction {
			return None
		}
		return d
	}
	// Boxed in; nothing helps.
	return None
}

// candidates lists headings in order of preference: close the larger gap to
// the nearest food, then the smaller gap, then turn, then carry on.
func (a *Autopilot) candidates(snap Snapshot) []Direction {
	cur := snap.Direction
	out := make([]Direction, 0, 6)

	if target, ok := nearest(snap.Head, snap.Food); ok {
		dx := target.X - snap.Head.X
		dy := target.Y - snap.Head.Y
		horiz := towards(dx, Left, Right)
		vert := towards(dy, Up, Down)
		if math.Abs(dx) >= math.Abs(dy) {
			out = append(out, horiz, vert)
		} else {
			out = append(out, vert, horiz)
		}
	}

	switch cur {
	case Up, Down:
		out = append(out, Left, Right)
	default:
		out = append(out, Up, Down)
	}
	return append(out, cur)
}

// safe reports whether moving in d keeps the head clear of the body as it
// will be after the move: the old head position plus every segment but the tail.
func (a *Autopilot) safe(snap Snapshot, d Direction) bool {
	dx, dy := d.Vector()
	next := a.bounds.Wrap(snap.Head.Add(dx*a.step, dy*a.step))
	limit := a.segmentRadius * CollisionFactor

	if len(snap.Body) == 0 {
		return true
	}
	if Distance(next, snap.Head) < limit {
		return false
	}
	for _, p := range snap.Body[:len(snap.Body)-1] {
		if Distance(next, p) < limit {
			return false
		}
	}
	return true
}

func nearest(from Point, food []Point) (Point, bool) {
	best := math.MaxFloat64
	var target Point
	for _, f := range food {
		if d := Distance(from, f); d < best {
			best = d
			target = f
		}
	}
	return target, best < math.MaxFloat64
}

func towards(delta float64, neg, pos Direction) Direction {
	switch {
	case delta < 0:
		return neg
	case delta > 0:
		return pos
	default:
		return None
	}
}
