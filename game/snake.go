package game

import "iter"

// Color is a cosmetic segment attribute. Body segments alternate colors.
type Color int

const (
	Green Color = iota
	Yellow
)

func (c Color) String() string {
	if c == Yellow {
		return "yellow"
	}
	return "green"
}

// SegmentColor returns the color a body segment at index i was given when it
// was appended.
func SegmentColor(i int) Color {
	if i%2 == 0 {
		return Yellow
	}
	return Green
}

// Segment is one circle of the snake.
type Segment struct {
	Pos    Point
	Radius float64
	Color  Color
}

// Snake is the player's chain: a head carrying the direction, followed by
// body segments (index 0 = nearest the head). It only ever grows.
type Snake struct {
	Head      Segment
	Body      []Segment
	Direction Direction
	Alive     bool

	segmentRadius float64
}

// NewSnake creates a snake with an empty body at pos, heading in dir.
func NewSnake(pos Point, dir Direction, headRadius, segmentRadius float64) *Snake {
	return &Snake{
		Head: Segment{
			Pos:    pos,
			Radius: headRadius,
			Color:  Green,
		},
		Body:          make([]Segment, 0),
		Direction:     dir,
		Alive:         true,
		segmentRadius: segmentRadius,
	}
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Step returns the distance the head covers per tick.
func (s *Snake) Step() float64 {
	return s.Head.Radius * 2
}

// Next returns where the head would land after the next advance in dir,
// before wrapping.
func (s *Snake) Next(dir Direction) Point {
	dx, dy := dir.Vector()
	return s.Head.Pos.Add(dx*s.Step(), dy*s.Step())
}

// SetDirection changes heading. A request for the exact opposite of the
// current heading is ignored, as is None.
func (s *Snake) SetDirection(d Direction) {
	if d == None || d == s.Direction.Opposite() {
		return
	}
	s.Direction = d
}

// Advance moves the snake one tick. The head is wrapped before the body
// follows so the body never sees an out-of-bounds position, and again after
// it moves so it always rests inside b.
func (s *Snake) Advance(b Bounds) {
	s.Head.Pos = b.Wrap(s.Head.Pos)

	// Tail first: each segment reads its predecessor before it is overwritten.
	for i := len(s.Body) - 1; i >= 0; i-- {
		if i == 0 {
			s.Body[i].Pos = s.Head.Pos
		} else {
			s.Body[i].Pos = s.Body[i-1].Pos
		}
	}

	s.Head.Pos = b.Wrap(s.Next(s.Direction))
}

// Grow appends a tail segment at p.
func (s *Snake) Grow(p Point) {
	s.Body = append(s.Body, Segment{
		Pos:    p,
		Radius: s.segmentRadius,
		Color:  SegmentColor(len(s.Body)),
	})
}

// CheckFoodCollision eats the first active item within reach of the head, in
// iteration order. At most one item is eaten per call.
func (s *Snake) CheckFoodCollision(food iter.Seq[*Food]) (*Food, bool) {
	for f := range food {
		if !f.Active {
			continue
		}
		if f.DistanceTo(s.Head.Pos) < f.Radius*CollisionFactor {
			f.Active = false
			s.Grow(f.Pos)
			return f, true
		}
	}
	return nil, false
}

// CheckSelfCollision marks the snake dead if the head overlaps any body
// segment and reports whether it is dead.
func (s *Snake) CheckSelfCollision() bool {
	if !s.Alive {
		return true
	}
	for _, seg := range s.Body {
		if Distance(seg.Pos, s.Head.Pos) < seg.Radius*CollisionFactor {
			s.Alive = false
			return true
		}
	}
	return false
}

// Positions returns the body positions, nearest the head first.
func (s *Snake) Positions() []Point {
	out := make([]Point, len(s.Body))
	for i, seg := range s.Body {
		out[i] = seg.Pos
	}
	return out
}
