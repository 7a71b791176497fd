package engine

import "github.com/lgbarn/termchess/internal/chess"

// pawnMoves yields forward moves first, then diagonal captures. Forward moves
// need empty squares; captures need an enemy piece or the en passant target.
func pawnMoves(board *chess.Board, pawn chess.Piece, from chess.Square, yield func(chess.Move) bool) bool {
	colour := pawn.Colour

	steps := 1
	if from.Row == chess.PawnStartRow(colour) {
		steps = 2
	}
	advance := chess.PawnAdvance(colour)
	for n := 1; n <= steps; n++ {
		to := from.Step(advance, n)
		if !to.OnBoard() || !board.Get(to).IsEmpty() {
			break
		}
		if !yield(chess.Move{Piece: pawn, From: from, To: to}) {
			return false
		}
	}

	for _, d := range chess.PawnCaptures(colour) {
		to := from.Step(d, 1)
		if !to.OnBoard() {
			continue
		}
		target := board.Get(to)
		enemy := !target.IsEmpty() && target.Colour != colour
		if enemy || isEnPassantCapture(board, colour, from, to) {
			if !yield(chess.Move{Piece: pawn, From: from, To: to}) {
				return false
			}
		}
	}
	return true
}

// isEnPassantCapture reports whether a pawn of colour on from may take en
// passant by moving to to. The passed pawn must still be an enemy pawn.
func isEnPassantCapture(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	if !board.EnPassant || to != board.EPSquare {
		return false
	}
	victim := board.Get(chess.Sq(from.Row, to.Col))
	return victim.Kind == chess.Pawn && victim.Colour != colour
}
