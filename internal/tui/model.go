// Package tui is a bubbletea front end for the game. bubbletea's tick command
// is the frame driver, so it does not use the loop package.
package tui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slether-arcade/game"
)

var (
	headStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71")).Bold(true)
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ae60"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1c40f"))
	foodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4"))
)

type tickMsg time.Time

type cell struct {
	r     rune
	style *lipgloss.Style
}

// Model is a tea.Model playing one session.
type Model struct {
	session  *game.Session
	pilot    *game.Autopilot
	interval time.Duration
	cellW    float64
	cellH    float64
	cols     int
	rows     int
	intent   game.Direction
	quitting bool

	// window size from the last tea.WindowSizeMsg; zero until one arrives
	winW, winH int
}

// NewModel creates a model for session. pilot may be nil.
func NewModel(session *game.Session, interval time.Duration, pilot *game.Autopilot) Model {
	step := session.Config().HeadRadius * 2
	b := session.Bounds()
	cellW, cellH := step/2, step
	return Model{
		session:  session,
		pilot:    pilot,
		interval: interval,
		cellW:    cellW,
		cellH:    cellH,
		cols:     int(math.Ceil(b.Width / cellW)),
		rows:     int(math.Ceil(b.Height / cellH)),
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.winW, m.winH = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			log.Printf("session %s: quit at tick %d (%v)", m.session.ID(), m.session.Ticks(), m.session.State())
			return m, tea.Quit
		}
		if d := directionKey(msg.String()); d != game.None {
			m.intent = d
		}
		return m, nil

	case tickMsg:
		intent := m.intent
		if intent == game.None && m.pilot != nil && !m.session.State().Terminal() {
			intent = m.pilot.Decide(m.session.Snapshot())
		}
		before := m.session.State()
		state := m.session.Tick(intent)
		if state != before {
			log.Printf("session %s: %v at tick %d, score %d", m.session.ID(), state, m.session.Ticks(), m.session.Score())
		}
		m.intent = game.None
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.session.Snapshot()

	grid := make([][]cell, m.rows)
	for y := range grid {
		grid[y] = make([]cell, m.cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	put := func(p game.Point, r rune, style *lipgloss.Style) {
		x, y := m.cell(p)
		grid[y][x] = cell{r: r, style: style}
	}
	for _, f := range snap.Food {
		put(f, '*', &foodStyle)
	}
	for i, p := range snap.Body {
		style := &greenStyle
		if game.SegmentColor(i) == game.Yellow {
			style = &yellowStyle
		}
		put(p, 'o', style)
	}
	put(snap.Head, '@', &headStyle)

	visCols, visRows := m.visible()
	var sb strings.Builder
	for _, row := range grid[:visRows] {
		for _, c := range row[:visCols] {
			if c.style == nil {
				sb.WriteRune(c.r)
				continue
			}
			sb.WriteString(c.style.Render(string(c.r)))
		}
		sb.WriteByte('\n')
	}

	status := fmt.Sprintf("SCORE: %d   LEFT: %d", snap.Score, snap.Remaining)
	sb.WriteString(statusStyle.Render(status))
	switch snap.State {
	case game.GameOver:
		sb.WriteString("   " + bannerStyle.Render("GAME OVER"))
	case game.Won:
		sb.WriteString("   " + bannerStyle.Render("YOU WIN!"))
	}
	return sb.String()
}

// visible crops the grid to the terminal, keeping one line for the status.
func (m Model) visible() (cols, rows int) {
	cols, rows = m.cols, m.rows
	if m.winW > 0 {
		cols = min(cols, m.winW)
	}
	if m.winH > 1 {
		rows = min(rows, m.winH-1)
	}
	return cols, rows
}

func (m Model) cell(p game.Point) (int, int) {
	x := int(p.X / m.cellW)
	y := int(p.Y / m.cellH)
	return min(max(x, 0), m.cols-1), min(max(y, 0), m.rows-1)
}

func directionKey(key string) game.Direction {
	switch key {
	case "up", "k", "w":
		return game.Up
	case "down", "j", "s":
		return game.Down
	case "left", "h", "a":
		return game.Left
	case "right", "l", "d":
		return game.Right
	}
	return game.None
}
