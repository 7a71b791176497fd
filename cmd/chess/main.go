// chess plays a game of chess in the terminal, human or computer on each side.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/config"
	"github.com/lgbarn/termchess/internal/display"
	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/errors"
	"github.com/lgbarn/termchess/internal/game"
	"github.com/lgbarn/termchess/internal/player"
	"github.com/lgbarn/termchess/internal/storage"
	"github.com/lgbarn/termchess/internal/tui"
)

const programVersion = "0.1.0"

// frontEnd is a game UI that holds terminal state until closed.
type frontEnd interface {
	game.UI
	Close() error
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("termchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, *resumeSave); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags. The full
// screen interface owns the terminal, so without -l it logs nothing.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		if cfg.Interface == config.TUI {
			cfg.LogFile = nil
		}
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// run plays until the user exits. End of input and Ctrl-C are a normal exit.
func run(cfg *config.Config, resume string) error {
	logger := cfg.Logger()

	store, err := storage.Open(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	ui, err := openUI(cfg)
	if err != nil {
		return err
	}
	defer ui.Close()

	players, err := newPlayers(cfg, ui)
	if err != nil {
		return err
	}

	g, err := game.New(ui, store, players,
		game.WithPosition(loadPosition(cfg.PositionFile, logger)),
		game.WithLogger(logger),
		game.WithComputerDelay(cfg.Players.ComputerDelay),
	)
	if err != nil {
		return err
	}

	if resume != "" {
		resumeGame(g, store, resume, logger)
	}

	err = g.Run()
	if errors.Is(err, io.EOF) || errors.Is(err, errors.ErrQuit) {
		return nil
	}
	return err
}

func openUI(cfg *config.Config) (frontEnd, error) {
	if cfg.Interface == config.TUI {
		return tui.New()
	}
	console := display.NewConsole(cfg.Input, cfg.Output)
	console.Clear = cfg.Output == io.Writer(os.Stdout)
	return console, nil
}

func newPlayers(cfg *config.Config, prompter player.Prompter) ([2]player.Player, error) {
	seed := cfg.Players.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // move choice needs no cryptographic randomness

	var players [2]player.Player
	kinds := [2]config.PlayerKind{cfg.Players.White, cfg.Players.Black}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		p, err := player.New(kinds[colour], colour, prompter, rng)
		if err != nil {
			return players, err
		}
		players[colour] = p
	}
	return players, nil
}

// loadPosition reads a starting position file. Any problem is logged and nil
// returned, which means the standard starting position.
func loadPosition(path string, logger log.Interface) []string {
	if path == "" {
		return nil
	}
	rows, err := readPositionFile(path)
	if err != nil {
		logger.WithError(err).WithField("file", path).Error("using the standard starting position")
		return nil
	}
	return rows
}

// readPositionFile returns the eight rows in path, ignoring blank lines.
func readPositionFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-specified position file
	if err != nil {
		return nil, err
	}

	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if _, err := engine.ReadPosition(rows); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return rows, nil
}

func resumeGame(g *game.Game, store *storage.Store, name string, logger log.Interface) {
	save, err := store.Load(name)
	if err == nil {
		err = g.Resume(save)
	}
	if err != nil {
		logger.WithError(err).WithField("name", name).Error("starting a new game instead")
	}
}

// exampleMoves are shown in the help text; each must be accepted as input.
var exampleMoves = []string{"e4", "Nf3", "exd5", "O-O"}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal using algebraic notation.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	writePlayHelp(os.Stderr)
}

func writePlayHelp(w io.Writer) {
	fmt.Fprintf(w, "\nDuring play type a move (%s) or one of:\n", strings.Join(exampleMoves, ", "))
	fmt.Fprintf(w, "  save    Save the game under a name\n")
	fmt.Fprintf(w, "  load    Load a saved game\n")
	fmt.Fprintf(w, "  new     Start again\n")
	fmt.Fprintf(w, "  resign  Resign the game\n")
	fmt.Fprintf(w, "  draw    Agree a draw\n")
	fmt.Fprintf(w, "  exit    Quit\n")
	fmt.Fprintf(w, "A pawn reaching the last rank asks for its promotion piece.\n")
}
