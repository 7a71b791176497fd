package chess

import (
	"encoding/json"
	"fmt"
)

// Move is a single move as exchanged with the notation converter and players:
// the moving piece plus origin and destination squares. Castling is the king's
// two-square move; the rook's companion move is implied.
type Move struct {
	Piece Piece
	From  Square
	To    Square
}

// NewMove builds a move from its piece letter and coordinates.
func NewMove(letter byte, from, to Square) Move {
	piece, _ := PieceFromLetter(letter)
	return Move{Piece: piece, From: from, To: to}
}

// Letter returns the piece letter; its case mirrors the moving colour.
func (m Move) Letter() byte {
	return m.Piece.Letter()
}

// IsCastle reports whether the move is a king moving two columns.
func (m Move) IsCastle() bool {
	if m.Piece.Kind != King || m.From.Row != m.To.Row {
		return false
	}
	d := m.To.Col - m.From.Col
	return d == 2 || d == -2
}

// IsPawnDoubleAdvance reports whether the move is a pawn advancing two rows.
func (m Move) IsPawnDoubleAdvance() bool {
	if m.Piece.Kind != Pawn || m.From.Col != m.To.Col {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// Reverse returns the move travelling back from destination to origin.
func (m Move) Reverse() Move {
	return Move{Piece: m.Piece, From: m.To, To: m.From}
}

// String returns the array form, e.g. "[N [7 0] [5 1]]".
func (m Move) String() string {
	return fmt.Sprintf("[%c [%d %d] [%d %d]]", m.Letter(), m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

// LongAlgebraic returns the coordinate form, e.g. "Nb1c3".
func (m Move) LongAlgebraic() string {
	return fmt.Sprintf("%c%s%s", m.Piece.Kind.Letter(), m.From, m.To)
}

// MarshalJSON encodes the move as ["N",[7,0],[5,1]].
func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{string(m.Letter()), m.From, m.To})
}

// UnmarshalJSON decodes the three-element array form.
func (m *Move) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("move must have 3 elements, got %d", len(parts))
	}
	var letter string
	if err := json.Unmarshal(parts[0], &letter); err != nil {
		return err
	}
	if len(letter) != 1 {
		return fmt.Errorf("invalid piece letter %q", letter)
	}
	piece, ok := PieceFromLetter(letter[0])
	if !ok || piece.IsEmpty() {
		return fmt.Errorf("invalid piece letter %q", letter)
	}
	m.Piece = piece
	if err := json.Unmarshal(parts[1], &m.From); err != nil {
		return err
	}
	return json.Unmarshal(parts[2], &m.To)
}

// ContainsMove reports whether moves includes m.
func ContainsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
