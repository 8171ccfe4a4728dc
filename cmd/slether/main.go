package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"slether-arcade/game"
	"slether-arcade/internal/loop"
	"slether-arcade/internal/terminal"
	"slether-arcade/internal/tui"
)

const (
	logDir      = "logs"
	logFileName = "slether.log"
)

type options struct {
	ui        string
	quota     int
	delay     time.Duration
	seed      uint64
	autopilot bool
	debug     bool
	cols      int
	rows      int
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("slether", flag.ContinueOnError)
	fs.StringVar(&o.ui, "ui", "tcell", "front end: tcell or tea")
	fs.IntVar(&o.quota, "quota", game.DefaultQuota, "apples to eat to win")
	fs.DurationVar(&o.delay, "delay", loop.DefaultInterval, "delay between frames")
	fs.Uint64Var(&o.seed, "seed", 0, "random seed for apple placement (0 = time based)")
	fs.BoolVar(&o.autopilot, "autopilot", false, "let the computer steer when no key is pressed")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+filepath.Join(logDir, logFileName))
	fs.IntVar(&o.cols, "cols", 80, "playfield width in columns for the tea front end (fixed for the session; a smaller terminal crops the view)")
	fs.IntVar(&o.rows, "rows", 24, "playfield height in rows, status line included, for the tea front end")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.ui != "tcell" && o.ui != "tea" {
		return o, fmt.Errorf("unknown front end %q", o.ui)
	}
	if o.delay <= 0 {
		return o, fmt.Errorf("delay must be positive, got %v", o.delay)
	}
	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}
	return o, nil
}

// setupLogging sends the standard logger to a file when debug is set and
// discards it otherwise: the terminal belongs to the game.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if f := setupLogging(o.debug); f != nil {
		defer f.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var runErr error
	switch o.ui {
	case "tea":
		runErr = runTea(o)
	default:
		runErr = runTcell(ctx, o)
	}
	if runErr != nil {
		log.Printf("exiting: %v", runErr)
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func newConfig(o options) game.Config {
	cfg := game.DefaultConfig()
	cfg.Quota = o.quota
	return cfg
}

func newSession(cfg game.Config, o options) (*game.Session, *game.Autopilot, error) {
	s, err := game.NewSession(cfg, rand.New(rand.NewSource(o.seed)))
	if err != nil {
		return nil, nil, err
	}
	log.Printf("session %s: %vx%v playfield, quota %d, seed %d", s.ID(), cfg.Width, cfg.Height, cfg.Quota, o.seed)
	var pilot *game.Autopilot
	if o.autopilot {
		pilot = game.NewAutopilot(cfg)
	}
	return s, pilot, nil
}

func runTcell(ctx context.Context, o options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("problem creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init problem: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	cfg := terminal.PlayfieldFor(cols, rows, newConfig(o))
	session, pilot, err := newSession(cfg, o)
	if err != nil {
		return err
	}

	ui := terminal.New(screen, cfg.HeadRadius*2)
	go ui.Listen()

	opts := []loop.Option{loop.WithInterval(o.delay)}
	if pilot != nil {
		opts = append(opts, loop.WithAutopilot(pilot))
	}
	state, err := loop.New(session, ui, opts...).Run(ctx)
	if err != nil {
		return err
	}
	logFinal(session, state)
	return nil
}

func runTea(o options) error {
	cfg := terminal.PlayfieldFor(o.cols, o.rows, newConfig(o))
	session, pilot, err := newSession(cfg, o)
	if err != nil {
		return err
	}
	p := tea.NewProgram(tui.NewModel(session, o.delay, pilot), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	logFinal(session, session.State())
	return nil
}

func logFinal(session *game.Session, state game.State) {
	data, err := json.Marshal(session.Snapshot())
	if err != nil {
		log.Printf("session %s: encode final state: %v", session.ID(), err)
		return
	}
	log.Printf("session %s: finished %v with score %d: %s", session.ID(), state, session.Score(), data)
}
