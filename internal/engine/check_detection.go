package engine

import (
	"slices"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/errors"
)

// TestForCheck reports whether the side moving would be in check after move.
// The board is left exactly as it was found.
func TestForCheck(board *chess.Board, move chess.Move) bool {
	colour := board.Get(move.From).Colour
	return simulate(board, move, func() bool {
		return InCheck(board, colour)
	})
}

// simulate plays move without side effects, runs inspect, and restores the
// board on every exit path. An en passant capture also lifts the passed pawn
// so that pins along the rank are seen.
func simulate(board *chess.Board, move chess.Move, inspect func() bool) bool {
	if board.Probing > 0 {
		panic(errors.ErrRecursionInvariant)
	}

	piece := board.Get(move.From)
	savedKing := board.Kings[piece.Colour]

	var lifted chess.Piece
	var liftedSq chess.Square
	if piece.Kind == chess.Pawn && board.EnPassant && move.To == board.EPSquare && move.From.Col != move.To.Col {
		liftedSq = chess.Sq(move.From.Row, move.To.Col)
		lifted = board.Get(liftedSq)
		board.Set(liftedSq, chess.Empty)
	}

	captured := movePiece(board, move, chess.NoKind, true)
	if piece.Kind == chess.King {
		board.SetKing(piece.Colour, move.To)
	}

	defer func() {
		movePiece(board, move.Reverse(), chess.NoKind, true)
		board.Set(move.To, captured)
		if !lifted.IsEmpty() {
			board.Set(liftedSq, lifted)
		}
		board.Kings[piece.Colour] = savedKing
	}()

	return inspect()
}

// InCheck reports whether colour's king is attacked. A board without a cached
// king for colour is never in check.
func InCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.King(colour)
	if !ok {
		return false
	}

	board.Probing++
	defer func() { board.Probing-- }()

	attacks := generateMoves(board, colour.Opposite(), attackProbe)
	return slices.ContainsFunc(attacks, func(m chess.Move) bool {
		return m.To == king
	})
}
