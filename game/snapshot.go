package game

// Snapshot uses single-character JSON keys so a full frame fits on one log line.
//
//	{"k":12,"h":{"x":336,"y":240},"d":"right","b":[...],"f":[...],"p":100,"r":99,"q":100,"s":"playing","w":640,"v":480}
//
// Body and Food are copies; a front end may keep a Snapshot across ticks.
type Snapshot struct {
	Tick      int       `json:"k"`
	Head      Point     `json:"h"`
	Direction Direction `json:"d"`
	Body      []Point   `json:"b"`
	Food      []Point   `json:"f"`
	Score     int       `json:"p"`
	Remaining int       `json:"r"`
	Quota     int       `json:"q"`
	State     State     `json:"s"`
	Width     float64   `json:"w"`
	Height    float64   `json:"v"`
}

// Snapshot returns everything a front end needs to draw the current frame.
func (s *Session) Snapshot() Snapshot {
	food := make([]Point, 0, 1)
	for f := range s.food.Active() {
		food = append(food, f.Pos)
	}
	return Snapshot{
		Tick:      s.ticks,
		Head:      s.snake.Head.Pos,
		Direction: s.snake.Direction,
		Body:      s.snake.Positions(),
		Food:      food,
		Score:     s.Score(),
		Remaining: s.remaining,
		Quota:     s.cfg.Quota,
		State:     s.state,
		Width:     s.bounds.Width,
		Height:    s.bounds.Height,
	}
}
