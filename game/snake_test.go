package game

import "testing"

var playfield = Bounds{Width: 200, Height: 200}

func newTestSnake(pos Point, dir Direction) *Snake {
	return NewSnake(pos, dir, HeadRadius, SegmentRadius)
}

func TestSetDirection_RejectsReversal(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		s := newTestSnake(Point{X: 100, Y: 100}, d)
		wantX, wantY := d.Vector()

		s.SetDirection(d.Opposite())

		if s.Direction != d {
			t.Errorf("%v: direction changed to %v", d, s.Direction)
		}
		if x, y := s.Direction.Vector(); x != wantX || y != wantY {
			t.Errorf("%v: step vector changed to (%v,%v)", d, x, y)
		}
	}
}

func TestSetDirection_AcceptsTurnsAndIgnoresNone(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	s.SetDirection(None)
	if s.Direction != Right {
		t.Fatalf("None changed direction to %v", s.Direction)
	}
	s.SetDirection(Up)
	if s.Direction != Up {
		t.Fatalf("direction = %v, want up", s.Direction)
	}
	s.SetDirection(Left)
	if s.Direction != Left {
		t.Fatalf("direction = %v, want left", s.Direction)
	}
}

func TestAdvance_BodyFollowsTailFirst(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	s.Grow(Point{X: 84, Y: 100})
	s.Grow(Point{X: 68, Y: 100})
	s.Grow(Point{X: 52, Y: 100})

	s.Advance(playfield)

	if want := (Point{X: 116, Y: 100}); s.Head.Pos != want {
		t.Fatalf("head = %v, want %v", s.Head.Pos, want)
	}
	want := []Point{{X: 100, Y: 100}, {X: 84, Y: 100}, {X: 68, Y: 100}}
	got := s.Positions()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("body[%d] = %v, want %v (body %v)", i, got[i], want[i], got)
		}
	}
}

func TestAdvance_WrapsHeadAtLeftEdge(t *testing.T) {
	s := newTestSnake(Point{X: 0, Y: 50}, Left)
	s.Advance(playfield)
	if s.Head.Pos.X != playfield.Width {
		t.Fatalf("head.x = %v, want %v", s.Head.Pos.X, playfield.Width)
	}
}

func TestAdvance_WrapsHeadAtFarEdges(t *testing.T) {
	s := newTestSnake(Point{X: 200, Y: 50}, Right)
	s.Advance(playfield)
	if s.Head.Pos != (Point{X: 0, Y: 50}) {
		t.Fatalf("head = %v, want (0,50)", s.Head.Pos)
	}

	s = newTestSnake(Point{X: 50, Y: 190}, Down)
	s.Advance(playfield)
	if s.Head.Pos != (Point{X: 50, Y: 0}) {
		t.Fatalf("head = %v, want (50,0)", s.Head.Pos)
	}
}

func TestAdvance_BodySeesWrappedHead(t *testing.T) {
	s := newTestSnake(Point{X: -5, Y: 50}, Left)
	s.Grow(Point{X: 10, Y: 50})

	s.Advance(playfield)

	if got := s.Body[0].Pos; got != (Point{X: 200, Y: 50}) {
		t.Fatalf("body[0] = %v, want wrapped head position (200,50)", got)
	}
	if got := s.Head.Pos; got != (Point{X: 184, Y: 50}) {
		t.Fatalf("head = %v, want (184,50)", got)
	}
}

func TestGrow_AppendsAtPositionWithAlternatingColors(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	spots := []Point{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}}
	colors := []Color{Yellow, Green, Yellow}

	for i, p := range spots {
		before := s.Len()
		s.Grow(p)
		if s.Len() != before+1 {
			t.Fatalf("len = %d, want %d", s.Len(), before+1)
		}
		tail := s.Body[s.Len()-1]
		if tail.Pos != p {
			t.Errorf("tail %d at %v, want %v", i, tail.Pos, p)
		}
		if tail.Color != colors[i] {
			t.Errorf("tail %d color %v, want %v", i, tail.Color, colors[i])
		}
		if tail.Color != SegmentColor(i) {
			t.Errorf("SegmentColor(%d) disagrees with appended color", i)
		}
	}
}

func TestCheckFoodCollision_AtMostOnePerCall(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	fm := NewFoodManager(FoodRadius, &seqRand{vals: []float64{0.5}})
	first := fm.SpawnAt(Point{X: 105, Y: 100})
	second := fm.SpawnAt(Point{X: 100, Y: 105})

	eaten, ok := s.CheckFoodCollision(fm.Active())
	if !ok {
		t.Fatal("expected a collision")
	}
	if eaten != first {
		t.Fatalf("ate food %d, want first inserted %d", eaten.ID, first.ID)
	}
	if first.Active {
		t.Error("first food still active")
	}
	if !second.Active {
		t.Error("second food deactivated in the same call")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if s.Body[0].Pos != first.Pos {
		t.Fatalf("tail at %v, want eaten food position %v", s.Body[0].Pos, first.Pos)
	}
}

func TestCheckFoodCollision_OutOfReachOrInactive(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	fm := NewFoodManager(FoodRadius, &seqRand{vals: []float64{0.5}})
	fm.SpawnAt(Point{X: 120, Y: 100}) // exactly 2*radius away
	gone := fm.SpawnAt(Point{X: 100, Y: 100})
	gone.Active = false

	if _, ok := s.CheckFoodCollision(fm.Active()); ok {
		t.Fatal("unexpected collision")
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d, want 0", s.Len())
	}
}

func TestCheckFoodCollision_NoFood(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	fm := NewFoodManager(FoodRadius, &seqRand{vals: []float64{0.5}})
	if _, ok := s.CheckFoodCollision(fm.Active()); ok {
		t.Fatal("collision with no food")
	}
}

func TestCheckSelfCollision_EmptyBody(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	if s.CheckSelfCollision() {
		t.Fatal("empty body collided")
	}
	if !s.Alive {
		t.Fatal("snake died with empty body")
	}
}

func TestCheckSelfCollision_StraightChainIsSafe(t *testing.T) {
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	s.Grow(Point{X: 84, Y: 100})
	s.Grow(Point{X: 68, Y: 100})
	for i := 0; i < 5; i++ {
		s.Advance(playfield)
		if s.CheckSelfCollision() {
			t.Fatalf("tick %d: straight chain collided with itself", i)
		}
	}
}

func TestCheckSelfCollision_HeadRunsIntoBody(t *testing.T) {
	// Arranged so the segment that will sit at the head's next position is body[1].
	s := newTestSnake(Point{X: 100, Y: 100}, Left)
	s.Grow(Point{X: 100, Y: 116})
	s.Grow(Point{X: 84, Y: 100})
	s.Grow(Point{X: 84, Y: 116})

	s.Advance(playfield)

	if !s.CheckSelfCollision() {
		t.Fatalf("no collision: head %v body %v", s.Head.Pos, s.Positions())
	}
	if s.Alive {
		t.Fatal("snake still alive")
	}
	if !s.CheckSelfCollision() {
		t.Fatal("dead snake came back to life")
	}
}

func TestCheckSelfCollision_TightLoop(t *testing.T) {
	// Grow a straight chain of 4, then turn three times to bite the tail end.
	s := newTestSnake(Point{X: 100, Y: 100}, Right)
	for i := 1; i <= 4; i++ {
		s.Grow(Point{X: 100 - float64(i)*16, Y: 100})
	}
	for _, d := range []Direction{Down, Left, Up} {
		s.SetDirection(d)
		s.Advance(playfield)
		if d != Up && s.CheckSelfCollision() {
			t.Fatalf("collided early turning %v", d)
		}
	}
	if !s.CheckSelfCollision() {
		t.Fatalf("expected collision: head %v body %v", s.Head.Pos, s.Positions())
	}
}
