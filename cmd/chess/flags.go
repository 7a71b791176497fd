// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/termchess/internal/config"
)

var (
	// Players
	whitePlayer   = flag.String("white", string(config.Human), "White player: human or computer")
	blackPlayer   = flag.String("black", string(config.Computer), "Black player: human or computer")
	seed          = flag.Int64("seed", 0, "Seed for the computer player (0 = from the clock)")
	computerDelay = flag.Duration("delay", config.DefaultComputerDelay, "Pause before each computer move")

	// Game setup
	positionFile = flag.String("position", "", "File holding an 8-line starting position")
	resumeSave   = flag.String("resume", "", "Resume the named save")
	uiKind       = flag.String("ui", string(config.Console), "Interface: console or tui")

	// Storage
	saveDir  = flag.String("savedir", "", "Directory for saved games (default: platform data dir)")
	memStore = flag.Bool("memstore", false, "Keep saves in memory for this session only")

	// Logging
	logFile   = flag.String("l", "", "Write the log to this file")
	verbosity = flag.Int("v", 0, "Log verbosity: 0 errors, 1 moves and saves, 2 debug")
	quiet     = flag.Bool("q", false, "Discard the log")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) {
	applyPlayerFlags(cfg)
	applyStorageFlags(cfg)

	cfg.Interface = config.InterfaceKind(*uiKind)
	cfg.PositionFile = *positionFile
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.LogFile = nil
	}
}

// applyPlayerFlags configures both sides.
func applyPlayerFlags(cfg *config.Config) {
	cfg.Players.White = config.PlayerKind(*whitePlayer)
	cfg.Players.Black = config.PlayerKind(*blackPlayer)
	cfg.Players.Seed = *seed
	cfg.Players.ComputerDelay = *computerDelay
}

// applyStorageFlags configures the save store.
func applyStorageFlags(cfg *config.Config) {
	cfg.Storage.Dir = *saveDir
	cfg.Storage.InMemory = *memStore
}
