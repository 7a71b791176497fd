package engine

import "github.com/lgbarn/termchess/internal/chess"

// Status classifies a position from the point of view of the side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	InsufficientMaterial
)

// String returns a human readable name for the status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "unknown"
	}
}

// IsOver reports whether the status ends the game.
func (s Status) IsOver() bool {
	return s != Ongoing
}

// FiftyMoveLimit is the counter value at which the game is drawn.
const FiftyMoveLimit = 50

// Result tokens appended to a finished move list.
const (
	WhiteWins = "1-0"
	BlackWins = "0-1"
	Drawn     = "½–½"
)

// Signatures that cannot deliver mate: lone king, king and knight, king and
// bishop, king and two knights.
var (
	whiteDeadMaterial = map[string]bool{"K": true, "KN": true, "BK": true, "KNN": true}
	blackDeadMaterial = map[string]bool{"k": true, "kn": true, "bk": true, "knn": true}
)

// Classify decides whether the game is over for colour, the side to move.
func Classify(board *chess.Board, colour chess.Colour) Status {
	if !HasLegalMoves(board, colour) {
		if InCheck(board, colour) {
			return Checkmate
		}
		return Stalemate
	}
	if board.FiftyMoveCounter >= FiftyMoveLimit {
		return FiftyMoveRule
	}
	if HasInsufficientMaterial(board) {
		return InsufficientMaterial
	}
	return Ongoing
}

// HasInsufficientMaterial reports whether neither side can mate.
func HasInsufficientMaterial(board *chess.Board) bool {
	return whiteDeadMaterial[board.MaterialSignature(chess.White)] &&
		blackDeadMaterial[board.MaterialSignature(chess.Black)]
}

// Outcome returns the result token for a status reached with colour to move.
// An ongoing game has no result.
func Outcome(status Status, colour chess.Colour) string {
	switch status {
	case Ongoing:
		return ""
	case Checkmate:
		return WinnerToken(colour.Opposite())
	default:
		return Drawn
	}
}

// WinnerToken returns the result token for a win by colour.
func WinnerToken(colour chess.Colour) string {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}
