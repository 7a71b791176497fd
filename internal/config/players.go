package config

import (
	"time"

	"github.com/lgbarn/termchess/internal/errors"
)

// PlayerKind selects who makes the moves for one side.
type PlayerKind string

const (
	Human    PlayerKind = "human"
	Computer PlayerKind = "computer"
)

// DefaultComputerDelay is the pause before a computer move.
const DefaultComputerDelay = 50 * time.Millisecond

// PlayersConfig holds settings for the two sides.
type PlayersConfig struct {
	White PlayerKind
	Black PlayerKind

	// Seed feeds the computer's move picker. Zero means seed from the clock.
	Seed int64

	// ComputerDelay is the pause before each computer move.
	ComputerDelay time.Duration
}

// NewPlayersConfig creates a PlayersConfig with a human playing White against
// the computer.
func NewPlayersConfig() *PlayersConfig {
	return &PlayersConfig{
		White:         Human,
		Black:         Computer,
		ComputerDelay: DefaultComputerDelay,
	}
}

// Validate checks both player kinds.
func (p *PlayersConfig) Validate() error {
	for _, kind := range []PlayerKind{p.White, p.Black} {
		switch kind {
		case Human, Computer:
		default:
			return errors.Wrapf(errors.ErrInvalidConfig, "unknown player kind %q", kind)
		}
	}
	if p.ComputerDelay < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "computer delay %v is negative", p.ComputerDelay)
	}
	return nil
}
