// Package config provides configuration for termchess.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/termchess/internal/errors"
)

// InterfaceKind selects the front end.
type InterfaceKind string

const (
	Console InterfaceKind = "console" // line-oriented, ANSI colours
	TUI     InterfaceKind = "tui"     // full-screen tcell
)

// Config holds all program configuration.
type Config struct {
	// Verbosity is 0 for errors only, 1 for the game log, 2 for debug.
	Verbosity int

	// Interface selects the front end.
	Interface InterfaceKind

	// PositionFile optionally holds an 8-line starting position.
	PositionFile string

	Players *PlayersConfig
	Storage *StorageConfig

	// Streams
	Input   io.Reader
	Output  io.Writer
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: 1,
		Interface: Console,
		Players:   NewPlayersConfig(),
		Storage:   NewStorageConfig(),
		Input:     os.Stdin,
		Output:    os.Stdout,
		LogFile:   os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.Output = w
}

// Validate checks the configuration before a game starts.
func (c *Config) Validate() error {
	switch c.Interface {
	case Console, TUI:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unknown interface %q", c.Interface)
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d is negative", c.Verbosity)
	}
	return c.Players.Validate()
}
