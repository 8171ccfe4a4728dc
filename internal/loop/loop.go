// Package loop drives a game session at a fixed tick rate on behalf of a
// front end.
package loop

import (
	"context"
	"log"
	"time"

	"slether-arcade/game"
)

// DefaultInterval is the delay between ticks.
const DefaultInterval = 50 * time.Millisecond

// Input is the latest player intent gathered by a front end.
type Input struct {
	Direction game.Direction
	Quit      bool
}

// Frontend is the presentation side of the game: it collects input and draws frames.
type Frontend interface {
	// Poll returns the intent gathered since the last call and resets it.
	Poll() Input
	Draw(game.Snapshot)
}

// Option configures a Loop.
type Option func(*Loop)

// WithInterval sets the delay between ticks.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) { l.interval = d }
}

// WithAutopilot lets an autopilot steer whenever the player gives no input.
func WithAutopilot(p *game.Autopilot) Option {
	return func(l *Loop) { l.pilot = p }
}

// WithLogger routes loop events to logger instead of the standard logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// Loop drives the game at a fixed tick rate
type Loop struct {
	session  *game.Session
	ui       Frontend
	pilot    *game.Autopilot
	logger   *log.Logger
	interval time.Duration

	lastScore int
	lastState game.State
	quit      bool
}

// New creates a loop bound to session and ui.
func New(session *game.Session, ui Frontend, opts ...Option) *Loop {
	l := &Loop{
		session:   session,
		ui:        ui,
		logger:    log.Default(),
		interval:  DefaultInterval,
		lastScore: session.Score(),
		lastState: session.State(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run ticks until ctx is cancelled or the front end asks to quit. The session
// ending does not stop the loop: the front end keeps drawing the final frame
// until the player leaves.
func (l *Loop) Run(ctx context.Context) (game.State, error) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	l.logger.Printf("session %s: loop started, tick every %v", l.session.ID(), l.interval)

	l.ui.Draw(l.session.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return l.session.State(), nil
		case <-ticker.C:
		}
		state := l.Step()
		if l.quit {
			l.logger.Printf("session %s: quit at tick %d (%v)", l.session.ID(), l.session.Ticks(), state)
			return state, nil
		}
	}
}

// Step executes a single frame: poll, tick, draw.
func (l *Loop) Step() game.State {
	in := l.ui.Poll()
	if in.Quit {
		l.quit = true
		return l.session.State()
	}

	intent := in.Direction
	if intent == game.None && l.pilot != nil && !l.session.State().Terminal() {
		intent = l.pilot.Decide(l.session.Snapshot())
	}

	state := l.session.Tick(intent)
	l.report(state)
	l.ui.Draw(l.session.Snapshot())
	return state
}

// Quit reports whether the front end asked to leave.
func (l *Loop) Quit() bool {
	return l.quit
}

// report logs meals and the transition into a terminal state, once each.
func (l *Loop) report(state game.State) {
	s := l.session
	if score := s.Score(); score != l.lastScore {
		l.logger.Printf("session %s: food eaten at tick %d, score %d, %d remaining", s.ID(), s.Ticks(), score, s.Remaining())
		l.lastScore = score
	}
	if state == l.lastState {
		return
	}
	switch state {
	case game.GameOver:
		l.logger.Printf("session %s: game over at tick %d, score %d", s.ID(), s.Ticks(), s.Score())
	case game.Won:
		l.logger.Printf("session %s: won at tick %d, score %d", s.ID(), s.Ticks(), s.Score())
	}
	l.lastState = state
}
