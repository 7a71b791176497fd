package notation

import (
	"strings"

	"github.com/lgbarn/termchess/internal/chess"
)

// Castling tokens as written to the move list.
const (
	KingsideCastle  = "0-0"
	QueensideCastle = "0-0-0"
)

// MoveToText writes a move that is not a promotion in algebraic notation.
// captured is whatever MovePiece returned; legal is the list the move was
// chosen from and is used for disambiguation; inCheck adds '+'.
func MoveToText(move chess.Move, captured chess.Piece, legal []chess.Move, inCheck bool) string {
	return MoveToTextPromo(move, captured, chess.NoKind, legal, inCheck)
}

// MoveToTextPromo is MoveToText with the kind a pawn promoted to.
func MoveToTextPromo(move chess.Move, captured chess.Piece, promotion chess.Kind, legal []chess.Move, inCheck bool) string {
	if token, ok := castleToken(move); ok {
		if inCheck {
			return token + "+"
		}
		return token
	}

	var sb strings.Builder
	pawn := move.Piece.Kind == chess.Pawn
	capture := !captured.IsEmpty()

	if !pawn {
		sb.WriteByte(move.Piece.Kind.Letter())
	}
	sb.WriteString(disambiguation(move, legal))
	if pawn && capture && move.From.Col != move.To.Col {
		sb.WriteByte(move.From.File())
	}
	if capture && !(pawn && move.From.Col == move.To.Col) {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
	if pawn && promotion != chess.NoKind {
		sb.WriteByte(promotion.Letter())
	}
	if inCheck {
		sb.WriteByte('+')
	}
	return sb.String()
}

func castleToken(move chess.Move) (string, bool) {
	if !move.IsCastle() || move.From != chess.Sq(chess.HomeRow(move.Piece.Colour), chess.KingHomeCol) {
		return "", false
	}
	if move.To.Col > move.From.Col {
		return KingsideCastle, true
	}
	return QueensideCastle, true
}

// disambiguation returns the origin file when another piece of the same kind
// on the same row reaches the destination, and the origin rank when another
// on the same column does. A rival sharing neither gets the file.
func disambiguation(move chess.Move, legal []chess.Move) string {
	if move.Piece.Kind == chess.Pawn {
		return ""
	}

	sameRow, sameCol, rivals := 0, 0, 0
	for _, m := range legal {
		if m.Piece != move.Piece || m.To != move.To {
			continue
		}
		if m.From.Row == move.From.Row {
			sameRow++
		}
		if m.From.Col == move.From.Col {
			sameCol++
		}
		if m.From != move.From {
			rivals++
		}
	}

	var out []byte
	if sameRow > 1 || (rivals > 0 && sameCol <= 1) {
		out = append(out, move.From.File())
	}
	if sameCol > 1 {
		out = append(out, move.From.Rank())
	}
	return string(out)
}
