package engine

import (
	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/errors"
)

// MovePiece plays move on the board with every side effect: king cache,
// fifty-move counter, castling rook, castling rights, promotion, en passant
// and material. It does no legality check. The returned piece is whatever was
// captured, or chess.Empty.
func MovePiece(board *chess.Board, move chess.Move, promotion chess.Kind) chess.Piece {
	return movePiece(board, move, promotion, false)
}

// movePiece relocates the piece on move.From to move.To. With testing set it
// only relocates, which is what check simulation and the castling rook need.
func movePiece(board *chess.Board, move chess.Move, promotion chess.Kind, testing bool) chess.Piece {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		panic("engine: no piece on " + move.From.String())
	}
	captured := board.Get(move.To)
	board.Set(move.To, piece)
	board.Set(move.From, chess.Empty)
	if testing {
		return captured
	}

	colour := piece.Colour
	played := chess.Move{Piece: piece, From: move.From, To: move.To}
	castle := played.IsCastle()

	if piece.Kind == chess.King {
		board.SetKing(colour, move.To)
	}

	// Castling leaves the counter alone.
	switch {
	case castle:
	case piece.Kind == chess.Pawn || !captured.IsEmpty():
		board.FiftyMoveCounter = 0
	default:
		board.FiftyMoveCounter++
	}

	if castle {
		moveCastlingRook(board, colour, sign(move.To.Col-move.From.Col) > 0)
	}

	updateCastlingRights(board, piece, move.From)
	if captured.Kind == chess.Rook {
		updateCastlingRights(board, captured, move.To)
	}

	promoted := false
	if promotion != chess.NoKind {
		board.Set(move.To, chess.Piece{Kind: promotion, Colour: colour})
		promoted = true
	}

	if piece.Kind == chess.Pawn && board.EnPassant && move.To == board.EPSquare && move.From.Col != move.To.Col {
		victim := chess.Sq(move.From.Row, move.To.Col)
		captured = board.Get(victim)
		board.Set(victim, chess.Empty)
	}

	board.EnPassant = false
	if played.IsPawnDoubleAdvance() {
		board.EnPassant = true
		board.EPSquare = chess.Sq((move.From.Row+move.To.Row)/2, move.From.Col)
	}

	if !captured.IsEmpty() {
		board.RecomputeMaterial(captured.Colour)
	}
	if promoted {
		board.RecomputeMaterial(colour)
	}
	return captured
}

// moveCastlingRook carries the rook over the king after a castling king move.
func moveCastlingRook(board *chess.Board, colour chess.Colour, kingside bool) {
	row := chess.HomeRow(colour)
	rook := chess.Move{Piece: chess.Piece{Kind: chess.Rook, Colour: colour}}
	if kingside {
		rook.From = chess.Sq(row, chess.KingsideRookCol)
		rook.To = chess.Sq(row, chess.KingHomeCol+1)
	} else {
		rook.From = chess.Sq(row, chess.QueensideRookCol)
		rook.To = chess.Sq(row, chess.KingHomeCol-1)
	}
	movePiece(board, rook, chess.NoKind, true)
}

// updateCastlingRights removes rights when a king or rook leaves its home
// square, or when a rook is captured there.
func updateCastlingRights(board *chess.Board, piece chess.Piece, sq chess.Square) {
	if sq.Row != chess.HomeRow(piece.Colour) {
		return
	}
	switch {
	case piece.Kind == chess.King && sq.Col == chess.KingHomeCol:
		board.Castling.RevokeAll(piece.Colour)
	case piece.Kind == chess.Rook && sq.Col == chess.KingsideRookCol:
		board.Castling.Revoke(piece.Colour, true)
	case piece.Kind == chess.Rook && sq.Col == chess.QueensideRookCol:
		board.Castling.Revoke(piece.Colour, false)
	}
}

// IsPromotion reports whether the move takes a pawn to the far rank.
func IsPromotion(move chess.Move) bool {
	return move.Piece.Kind == chess.Pawn && move.To.Row == chess.PromotionRow(move.Piece.Colour)
}

// Apply plays move if it is legal for the colour of its piece. A promotion
// with no valid kind promotes to a queen; a promotion kind given for any other
// move is ignored.
func Apply(board *chess.Board, move chess.Move, promotion chess.Kind) (chess.Piece, error) {
	legal := FindLegalMoves(board, move.Piece.Colour)
	if !chess.ContainsMove(legal, move) {
		return chess.Empty, &errors.MoveError{Err: errors.ErrIllegalMove, Move: move.String()}
	}

	switch {
	case !IsPromotion(move):
		promotion = chess.NoKind
	case !chess.IsPromotionKind(promotion):
		promotion = chess.Queen
	}
	return MovePiece(board, move, promotion), nil
}
