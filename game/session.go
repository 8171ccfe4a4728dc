package game

import (
	"github.com/google/uuid"
)

// State is where a session stands. GameOver and Won are terminal.
type State int

const (
	Playing State = iota
	GameOver
	Won
)

func (s State) String() string {
	switch s {
	case GameOver:
		return "game over"
	case Won:
		return "won"
	default:
		return "playing"
	}
}

// MarshalText encodes s by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Terminal reports whether no further tick can change the session.
func (s State) Terminal() bool {
	return s != Playing
}

// Session holds all game state for one play-through
type Session struct {
	id        string
	cfg       Config
	bounds    Bounds
	snake     *Snake
	food      *FoodManager
	remaining int
	state     State
	ticks     int
}

// New builds a session over the default config with the given playfield and quota.
func New(width, height float64, quota int, rng RandomSource) (*Session, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Quota = quota
	return NewSession(cfg, rng)
}

// NewSession validates cfg and sets up a snake in the middle of the playfield,
// heading right, with one piece of food placed by rng.
func NewSession(cfg Config, rng RandomSource) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := cfg.Bounds()
	s := &Session{
		id:        uuid.New().String(),
		cfg:       cfg,
		bounds:    b,
		snake:     NewSnake(b.Center(), Right, cfg.HeadRadius, cfg.SegmentRadius),
		food:      NewFoodManager(cfg.FoodRadius, rng),
		remaining: cfg.Quota,
		state:     Playing,
	}
	s.food.SpawnRandom(b, cfg.SpawnMargin)
	return s, nil
}

// Tick advances the session by one frame. intent may be None to keep the
// current heading. Once the session has ended Tick changes nothing.
func (s *Session) Tick(intent Direction) State {
	if s.state.Terminal() {
		return s.state
	}
	s.ticks++

	s.snake.SetDirection(intent)
	s.snake.Advance(s.bounds)

	if s.snake.CheckSelfCollision() {
		s.state = GameOver
		return s.state
	}

	if _, eaten := s.snake.CheckFoodCollision(s.food.Active()); eaten {
		s.remaining--
		s.food.Prune()
		s.food.SpawnRandom(s.bounds, s.cfg.SpawnMargin)
	}

	if s.remaining <= 0 {
		s.state = Won
	}
	return s.state
}

// Score is 100 points per food eaten.
func (s *Session) Score() int {
	return (s.cfg.Quota - s.remaining) * PointsPerFood
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Remaining returns how many targets are left before the session is won.
func (s *Session) Remaining() int { return s.remaining }

// Ticks returns how many ticks have been played.
func (s *Session) Ticks() int { return s.ticks }

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Config returns the validated configuration the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Bounds returns the playfield extents.
func (s *Session) Bounds() Bounds { return s.bounds }

// Snake exposes the chain for front ends and tests that need more than a snapshot.
func (s *Session) Snake() *Snake { return s.snake }

// Food exposes the food manager.
func (s *Session) Food() *FoodManager { return s.food }
