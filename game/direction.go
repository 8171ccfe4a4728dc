package game

// Direction is a heading on the playfield. None means "no input this tick".
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Vector returns the unit step for d. Y grows downwards.
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// MarshalText encodes d by name so snapshots stay readable in logs.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
