package game

import (
	"errors"
	"fmt"
)

// Game configuration constants
const (
	// Playfield defaults, used when a front end has no better idea
	DefaultWidth  = 640.0
	DefaultHeight = 480.0

	// Win condition
	DefaultQuota  = 100 // targets to consume before the session is won
	PointsPerFood = 100

	// Snake
	HeadRadius    = 8.0 // one step is 2*HeadRadius
	SegmentRadius = 8.0 // self-collision threshold is 2*SegmentRadius

	// Food
	FoodRadius  = 10.0 // food collision threshold is 2*FoodRadius
	SpawnMargin = 10.0 // random spawns keep this far from every edge

	// CollisionFactor scales a radius into a hit distance for both food and body checks.
	CollisionFactor = 2.0
)

// ErrInvalidConfig is returned when a session cannot be built from a Config.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a Session needs to be built.
type Config struct {
	Width         float64
	Height        float64
	Quota         int
	HeadRadius    float64
	SegmentRadius float64
	FoodRadius    float64
	SpawnMargin   float64
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Quota:         DefaultQuota,
		HeadRadius:    HeadRadius,
		SegmentRadius: SegmentRadius,
		FoodRadius:    FoodRadius,
		SpawnMargin:   SpawnMargin,
	}
}

// Validate rejects configurations that would produce undefined geometry.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.Quota < 1:
		return fmt.Errorf("%w: quota must be at least 1, got %d", ErrInvalidConfig, c.Quota)
	case c.HeadRadius <= 0 || c.SegmentRadius <= 0 || c.FoodRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case c.SegmentRadius*CollisionFactor > c.HeadRadius*2:
		return fmt.Errorf("%w: self-collision distance %v exceeds step %v", ErrInvalidConfig, c.SegmentRadius*CollisionFactor, c.HeadRadius*2)
	case c.SpawnMargin < 0:
		return fmt.Errorf("%w: spawn margin must not be negative, got %v", ErrInvalidConfig, c.SpawnMargin)
	case 2*c.SpawnMargin > c.Width || 2*c.SpawnMargin > c.Height:
		return fmt.Errorf("%w: spawn margin %v leaves no room in %vx%v", ErrInvalidConfig, c.SpawnMargin, c.Width, c.Height)
	}
	return nil
}

// Bounds returns the playfield extents.
func (c Config) Bounds() Bounds {
	return Bounds{Width: c.Width, Height: c.Height}
}
