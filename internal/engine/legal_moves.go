package engine

import "github.com/lgbarn/termchess/internal/chess"

// genMode selects between the move list offered to the side choosing a move
// and the raw attack set used while probing for check.
type genMode int

const (
	// activePlayer filters out moves that leave the mover in check and adds castling.
	activePlayer genMode = iota
	// attackProbe returns pseudo-legal moves only and never calls check detection.
	attackProbe
)

// FindLegalMoves returns every legal move for colour. Squares are visited from
// row 0 to row 7, left to right, and castling moves come last.
func FindLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	return generateMoves(board, colour, activePlayer)
}

// HasLegalMoves reports whether colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	pseudoMoves(board, colour, func(m chess.Move) bool {
		if !TestForCheck(board, m) {
			found = true
			return false
		}
		return true
	})
	return found || len(castlingMoves(board, colour)) > 0
}

func generateMoves(board *chess.Board, colour chess.Colour, mode genMode) []chess.Move {
	var candidates []chess.Move
	pseudoMoves(board, colour, func(m chess.Move) bool {
		candidates = append(candidates, m)
		return true
	})
	if mode == attackProbe {
		return candidates
	}

	legal := candidates[:0]
	for _, m := range candidates {
		if !TestForCheck(board, m) {
			legal = append(legal, m)
		}
	}
	return append(legal, castlingMoves(board, colour)...)
}

// pseudoMoves calls yield for each pseudo-legal move of colour, stopping early
// when yield returns false. It reports whether the walk ran to completion.
func pseudoMoves(board *chess.Board, colour chess.Colour, yield func(chess.Move) bool) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			from := chess.Sq(row, col)
			var more bool
			if piece.Kind == chess.Pawn {
				more = pawnMoves(board, piece, from, yield)
			} else {
				more = pieceMoves(board, piece, from, yield)
			}
			if !more {
				return false
			}
		}
	}
	return true
}

// pieceMoves walks each direction of a non-pawn piece up to its reach. A ray
// ends on the first occupied square, which is a capture if it holds an enemy.
func pieceMoves(board *chess.Board, piece chess.Piece, from chess.Square, yield func(chess.Move) bool) bool {
	reach := piece.Kind.MaxMove()
	for _, d := range piece.Kind.Directions() {
		for n := 1; n <= reach; n++ {
			to := from.Step(d, n)
			if !to.OnBoard() {
				break
			}
			target := board.Squares[to.Row][to.Col]
			if !target.IsEmpty() && target.Colour == piece.Colour {
				break
			}
			if !yield(chess.Move{Piece: piece, From: from, To: to}) {
				return false
			}
			if !target.IsEmpty() {
				break
			}
		}
	}
	return true
}
