package chess

import (
	"sort"
	"strings"
)

// CastlingRights holds the four independent castling permissions. Each flag
// only ever goes from true to false over the life of a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Allowed reports the flag for a colour and side.
func (r CastlingRights) Allowed(c Colour, kingside bool) bool {
	switch {
	case c == White && kingside:
		return r.WhiteKingside
	case c == White:
		return r.WhiteQueenside
	case kingside:
		return r.BlackKingside
	default:
		return r.BlackQueenside
	}
}

// Revoke clears the flag for a colour and side.
func (r *CastlingRights) Revoke(c Colour, kingside bool) {
	switch {
	case c == White && kingside:
		r.WhiteKingside = false
	case c == White:
		r.WhiteQueenside = false
	case kingside:
		r.BlackKingside = false
	default:
		r.BlackQueenside = false
	}
}

// RevokeAll clears both flags for a colour.
func (r *CastlingRights) RevokeAll(c Colour) {
	r.Revoke(c, true)
	r.Revoke(c, false)
}

// KingCache remembers where a king stands. Known is false for positions
// without a king of that colour.
type KingCache struct {
	Square Square
	Known  bool
}

// Board represents a chess board with all state needed for the game.
type Board struct {
	// The board squares, indexed [row][col]; row 0 is rank 8.
	Squares [BoardSize][BoardSize]Piece

	// Castling permissions still available to each side.
	Castling CastlingRights

	// Keep track of where the two kings are for check detection.
	Kings [2]KingCache

	// Is en passant capture possible? If so EPSquare is the square a pawn
	// may capture onto. Valid for the single move that follows.
	EnPassant bool
	EPSquare  Square

	// Plies since the last pawn move or capture.
	FiftyMoveCounter int

	// Sorted piece letters remaining per colour, e.g. "BKNPPQRR".
	Material [2]string

	// Non-zero while an attack probe is running on this board. Check
	// simulation must never start while it is raised.
	Probing int
}

// NewBoard creates a new empty board with all castling rights set.
func NewBoard() *Board {
	b := &Board{Castling: AllCastlingRights()}
	b.RecomputeMaterial(White)
	b.RecomputeMaterial(Black)
	return b
}

// Get returns the piece at the given square.
func (b *Board) Get(s Square) Piece {
	mustOnBoard(s)
	return b.Squares[s.Row][s.Col]
}

// Set places a piece at the given square.
func (b *Board) Set(s Square, p Piece) {
	mustOnBoard(s)
	b.Squares[s.Row][s.Col] = p
}

// King returns the cached king square of a colour.
func (b *Board) King(c Colour) (Square, bool) {
	k := b.Kings[c]
	return k.Square, k.Known
}

// SetKing updates the king cache of a colour.
func (b *Board) SetKing(c Colour, s Square) {
	b.Kings[c] = KingCache{Square: s, Known: true}
}

// FindKing scans the grid for the king of a colour.
func (b *Board) FindKing(c Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: c}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{row, col}, true
			}
		}
	}
	return Square{}, false
}

// MaterialSignature returns the sorted letters of the colour's remaining pieces.
func (b *Board) MaterialSignature(c Colour) string {
	return b.Material[c]
}

// RecomputeMaterial rebuilds the material signature of a colour from the grid.
func (b *Board) RecomputeMaterial(c Colour) {
	var letters []byte
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == c {
				letters = append(letters, p.Letter())
			}
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	b.Material[c] = string(letters)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// String renders the grid as eight rows of piece letters.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
