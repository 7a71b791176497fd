// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/termchess/internal/chess"
)

var (
	depth        = flag.Int("depth", 4, "Search depth in plies")
	divide       = flag.Bool("divide", false, "Print the node count under each root move")
	workers      = flag.Int("workers", runtime.NumCPU(), "Number of root moves searched in parallel")
	positionFile = flag.String("position", "", "File holding an 8-line position (default: starting position)")
	blackToMove  = flag.Bool("black", false, "Black is to move")
	hashEntries  = flag.Int("hash", 0, "Cache up to this many subtree counts (0 = no cache, -1 = unlimited)")
	verbosity    = flag.Int("v", 1, "Log verbosity: 0 errors, 1 timing, 2 debug")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// options is what a perft run needs from the command line.
type options struct {
	depth   int
	divide  bool
	workers int
	hash    int
	colour  chess.Colour
	rows    []string
}

// applyFlags copies flag values into opts.
func applyFlags(opts *options) {
	opts.depth = *depth
	opts.divide = *divide
	opts.workers = *workers
	opts.hash = *hashEntries
	opts.colour = chess.White
	if *blackToMove {
		opts.colour = chess.Black
	}
}
