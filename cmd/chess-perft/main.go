// chess-perft counts the leaf nodes of the legal move tree from a position.
// It checks the move generator against published perft results.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/lgbarn/termchess/internal/config"
	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/hashing"
	"github.com/lgbarn/termchess/internal/perft"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfigBuilder().WithVerbosity(*verbosity).Build()
	logger := cfg.Logger()

	var opts options
	applyFlags(&opts)
	opts.rows = loadRows(*positionFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, logger, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadRows reads the position file, exiting on any error.
func loadRows(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: user-specified position file
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading position file %s: %v\n", path, err)
		os.Exit(1)
	}
	var rows []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

// run counts nodes to opts.depth and writes the result to w.
func run(ctx context.Context, w io.Writer, logger log.Interface, opts options) error {
	if opts.depth < 0 {
		return fmt.Errorf("depth %d is negative", opts.depth)
	}
	board, err := engine.NewBoard(opts.rows)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"depth":   opts.depth,
		"workers": opts.workers,
		"colour":  opts.colour,
	}).Debug("perft started")

	table := newTable(opts.hash)

	start := time.Now()
	counts, err := perft.DivideCached(ctx, board, opts.colour, opts.depth, opts.workers, table)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if opts.divide {
		for _, move := range perft.SortedMoves(counts) {
			fmt.Fprintf(w, "%s: %d\n", move, counts[move])
		}
		fmt.Fprintln(w)
	}

	nodes := perft.Total(counts)
	if opts.depth == 0 {
		nodes = 1
	}
	fmt.Fprintf(w, "Nodes: %d\n", nodes)

	fields := log.Fields{
		"nodes":   nodes,
		"elapsed": elapsed.Round(time.Millisecond),
	}
	if table != nil {
		fields["cached"] = table.Len()
		fields["hits"] = table.Hits()
		fields["full"] = table.IsFull()
	}
	logger.WithFields(fields).Info("perft finished")
	return nil
}

// newTable returns the subtree cache for a -hash value: nil for 0, unlimited
// for a negative value.
func newTable(entries int) *hashing.Table {
	switch {
	case entries == 0:
		return nil
	case entries < 0:
		return hashing.NewTable(0)
	}
	return hashing.NewTable(entries)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Count legal move sequences to a fixed depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
