// Package terminal is a tcell front end for the game.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"slether-arcade/game"
	"slether-arcade/internal/loop"
)

var (
	backStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	headStyle   = backStyle.Foreground(tcell.ColorGreen).Bold(true)
	greenStyle  = backStyle.Foreground(tcell.ColorGreen)
	yellowStyle = backStyle.Foreground(tcell.ColorYellow)
	foodStyle   = backStyle.Foreground(tcell.ColorRed)
	bannerStyle = backStyle.Foreground(tcell.ColorWhite).Bold(true)
)

const (
	headRune = '@'
	bodyRune = 'o'
	foodRune = '*'
)

// Screen draws sessions onto a tcell screen and turns key presses into intent.
// One playfield step spans two columns and one row, which keeps the snake
// roughly square on a terminal.
type Screen struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64

	mu    sync.Mutex // protects input
	input loop.Input
}

// New wraps an initialised tcell screen for a game whose snake moves step
// units per tick.
func New(screen tcell.Screen, step float64) *Screen {
	screen.SetStyle(backStyle)
	screen.HideCursor()
	return &Screen{
		screen: screen,
		cellW:  step / 2,
		cellH:  step,
	}
}

// PlayfieldFor sizes cfg's playfield to fill a cols x rows terminal, leaving
// the bottom row for the score line.
func PlayfieldFor(cols, rows int, cfg game.Config) game.Config {
	step := cfg.HeadRadius * 2
	cfg.Width = float64(cols) * step / 2
	cfg.Height = float64(rows-1) * step
	return cfg
}

// Listen polls terminal events until the screen is finalised. Run it in its
// own goroutine.
func (s *Screen) Listen() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.HandleEvent(ev)
	}
}

// HandleEvent records the intent carried by ev. Later keys overwrite earlier
// ones within the same tick.
func (s *Screen) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if quitKey(ev) {
			s.setInput(loop.Input{Quit: true})
			return
		}
		if d := directionKey(ev); d != game.None {
			s.setInput(loop.Input{Direction: d})
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// setInput updates input under lock. Quit is never cleared by a later key.
func (s *Screen) setInput(in loop.Input) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in.Quit = in.Quit || s.input.Quit
	s.input = in
}

// Poll returns the current input and resets the direction.
func (s *Screen) Poll() loop.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.input
	s.input.Direction = game.None
	return in
}

// Draw renders one frame.
func (s *Screen) Draw(snap game.Snapshot) {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	for _, f := range snap.Food {
		s.put(f, cols, rows, foodRune, foodStyle)
	}
	for i, p := range snap.Body {
		style := greenStyle
		if game.SegmentColor(i) == game.Yellow {
			style = yellowStyle
		}
		s.put(p, cols, rows, bodyRune, style)
	}
	s.put(snap.Head, cols, rows, headRune, headStyle)

	drawText(s.screen, 0, rows-1, backStyle, fmt.Sprintf("SCORE: %d", snap.Score))
	left := fmt.Sprintf("LEFT: %d", snap.Remaining)
	drawText(s.screen, cols-len(left), rows-1, backStyle, left)

	switch snap.State {
	case game.GameOver:
		drawCentered(s.screen, cols, rows, "GAME OVER")
	case game.Won:
		drawCentered(s.screen, cols, rows, "YOU WIN!")
	}
	s.screen.Show()
}

// Cell maps a playfield point to a terminal cell, clamped to the playfield rows.
func (s *Screen) Cell(p game.Point, cols, rows int) (int, int) {
	x := int(p.X / s.cellW)
	y := int(p.Y / s.cellH)
	return clamp(x, 0, cols-1), clamp(y, 0, rows-2)
}

func (s *Screen) put(p game.Point, cols, rows int, r rune, style tcell.Style) {
	x, y := s.Cell(p, cols, rows)
	s.screen.SetContent(x, y, r, nil, style)
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(screen tcell.Screen, cols, rows int, text string) {
	x := (cols - len(text)) / 2
	drawText(screen, x, (rows-1)/2, bannerStyle, text)
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func directionKey(ev *tcell.EventKey) game.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.Up
	case tcell.KeyDown:
		return game.Down
	case tcell.KeyLeft:
		return game.Left
	case tcell.KeyRight:
		return game.Right
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'w':
			return game.Up
		case 'j', 's':
			return game.Down
		case 'h', 'a':
			return game.Left
		case 'l', 'd':
			return game.Right
		}
	}
	return game.None
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
