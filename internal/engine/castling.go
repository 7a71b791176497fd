package engine

import "github.com/lgbarn/termchess/internal/chess"

// castlingMoves returns the legal castling king moves for colour, kingside
// first.
func castlingMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	row := chess.HomeRow(colour)
	from := chess.Sq(row, chess.KingHomeCol)
	king := chess.Piece{Kind: chess.King, Colour: colour}
	if board.Get(from) != king {
		return nil
	}

	var moves []chess.Move
	for _, kingside := range []bool{true, false} {
		if canCastle(board, colour, kingside) {
			dir := castleDirection(kingside)
			moves = append(moves, chess.Move{Piece: king, From: from, To: from.Step(dir, 2)})
		}
	}
	return moves
}

// canCastle checks the right, the rook, an empty path and that the king is
// not attacked on its start, transit or landing square.
func canCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	if !board.Castling.Allowed(colour, kingside) {
		return false
	}

	row := chess.HomeRow(colour)
	rookCol := chess.QueensideRookCol
	if kingside {
		rookCol = chess.KingsideRookCol
	}
	if board.Get(chess.Sq(row, rookCol)) != (chess.Piece{Kind: chess.Rook, Colour: colour}) {
		return false
	}

	dir := castleDirection(kingside)
	from := chess.Sq(row, chess.KingHomeCol)
	for sq := from.Step(dir, 1); sq.Col != rookCol; sq = sq.Step(dir, 1) {
		if !board.Get(sq).IsEmpty() {
			return false
		}
	}

	if InCheck(board, colour) {
		return false
	}
	king := chess.Piece{Kind: chess.King, Colour: colour}
	for n := 1; n <= 2; n++ {
		if TestForCheck(board, chess.Move{Piece: king, From: from, To: from.Step(dir, n)}) {
			return false
		}
	}
	return true
}

func castleDirection(kingside bool) chess.Delta {
	if kingside {
		return chess.Delta{Row: 0, Col: 1}
	}
	return chess.Delta{Row: 0, Col: -1}
}
