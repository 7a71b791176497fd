// Package perft counts the leaf nodes of the legal move tree. The counts are
// compared against published values to validate move generation.
package perft

import (
	"context"
	"sort"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/hashing"
	"github.com/lgbarn/termchess/internal/worker"
)

// Count returns the number of move sequences of exactly depth plies from
// board with colour to move. Each child is searched on its own copy of the
// board. A promotion counts once, because the piece is chosen when the move
// is applied.
func Count(board *chess.Board, colour chess.Colour, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := engine.FindLegalMoves(board, colour)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		nodes += Count(play(board, move), colour.Opposite(), depth-1)
	}
	return nodes
}

// CountCached is Count that memoises subtree counts in table. A nil table
// means no caching.
func CountCached(board *chess.Board, colour chess.Colour, depth int, table *hashing.Table) uint64 {
	if table == nil || depth <= 0 {
		return Count(board, colour, depth)
	}
	key := hashing.Key(board, colour)
	if nodes, ok := table.Lookup(key, depth); ok {
		return nodes
	}

	var nodes uint64
	if depth == 1 {
		nodes = Count(board, colour, 1)
	} else {
		for _, move := range engine.FindLegalMoves(board, colour) {
			nodes += CountCached(play(board, move), colour.Opposite(), depth-1, table)
		}
	}
	table.Store(key, depth, nodes)
	return nodes
}

// Divide returns the node count below each root move, keyed by the move in
// long algebraic form. Root moves are spread over workers goroutines.
func Divide(board *chess.Board, colour chess.Colour, depth, workers int) map[string]uint64 {
	counts, _ := DivideContext(context.Background(), board, colour, depth, workers)
	return counts
}

// DivideContext is Divide that gives up when ctx is cancelled. The partial
// counts gathered so far are returned with ctx's error.
func DivideContext(ctx context.Context, board *chess.Board, colour chess.Colour, depth, workers int) (map[string]uint64, error) {
	return DivideCached(ctx, board, colour, depth, workers, nil)
}

// DivideCached is DivideContext with the workers sharing table.
func DivideCached(ctx context.Context, board *chess.Board, colour chess.Colour, depth, workers int, table *hashing.Table) (map[string]uint64, error) {
	counts := make(map[string]uint64)
	if depth < 1 {
		return counts, nil
	}

	moves := engine.FindLegalMoves(board, colour)
	next := colour.Opposite()
	pool := worker.NewPool(func(item worker.WorkItem) worker.Result {
		return worker.Result{
			Move:  item.Move,
			Index: item.Index,
			Nodes: CountCached(item.Board, next, item.Depth, table),
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, move := range moves {
			if ctx.Err() != nil {
				break
			}
			pool.Submit(worker.WorkItem{Board: play(board, move), Move: move, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	for result := range pool.Results() {
		counts[result.Move.LongAlgebraic()] = result.Nodes
	}
	return counts, ctx.Err()
}

// Total sums a Divide result.
func Total(counts map[string]uint64) uint64 {
	var total uint64
	for _, n := range counts {
		total += n
	}
	return total
}

// SortedMoves returns the keys of a Divide result in order.
func SortedMoves(counts map[string]uint64) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func play(board *chess.Board, move chess.Move) *chess.Board {
	child := board.Copy()
	promotion := chess.NoKind
	if engine.IsPromotion(move) {
		promotion = chess.Queen
	}
	engine.MovePiece(child, move, promotion)
	return child
}
