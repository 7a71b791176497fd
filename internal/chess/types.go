// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the single letter form used in save files and prompts ('W' or 'B').
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourFromLetter converts 'W' or 'B' back to a colour.
func ColourFromLetter(b byte) (Colour, bool) {
	switch b {
	case 'W', 'w':
		return White, true
	case 'B', 'b':
		return Black, true
	}
	return White, false
}

// Kind represents a chess piece type without colour.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Empty is the contents of an unoccupied square.
var Empty = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether the square holding p is unoccupied.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
// An empty square is '.'.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Kind != NoKind && p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the piece letter as a string.
func (p Piece) String() string {
	return string(p.Letter())
}

// PieceFromLetter converts a position character to a piece. Case selects the
// colour. '.' is the empty square; any other character reports false.
func PieceFromLetter(c byte) (Piece, bool) {
	if c == '.' {
		return Empty, true
	}
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Empty, false
	}
	if c >= 'a' && c <= 'z' {
		return B(kind), true
	}
	return W(kind), true
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	LastIndex = BoardSize - 1

	RankBase = '1'
	ColBase  = 'a'
)
