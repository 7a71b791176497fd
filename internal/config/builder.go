package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets who plays each side.
func (b *ConfigBuilder) WithPlayers(white, black PlayerKind) *ConfigBuilder {
	b.cfg.Players.White = white
	b.cfg.Players.Black = black
	return b
}

// WithSeed fixes the computer player's random source.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Players.Seed = seed
	return b
}

// WithComputerDelay sets the pause before each computer move.
func (b *ConfigBuilder) WithComputerDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Players.ComputerDelay = d
	return b
}

// WithInterface selects the front end.
func (b *ConfigBuilder) WithInterface(kind InterfaceKind) *ConfigBuilder {
	b.cfg.Interface = kind
	return b
}

// WithPositionFile sets the starting position file.
func (b *ConfigBuilder) WithPositionFile(path string) *ConfigBuilder {
	b.cfg.PositionFile = path
	return b
}

// WithSaveDir sets the saved-game directory.
func (b *ConfigBuilder) WithSaveDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	return b
}

// WithInMemoryStore keeps saves in memory.
func (b *ConfigBuilder) WithInMemoryStore(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// WithInput sets the input reader.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
