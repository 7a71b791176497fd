package chess

import (
	"encoding/json"
	"fmt"
)

// Square is a board coordinate. Row 0 is rank 8 and row 7 is rank 1;
// column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies inside the 8x8 grid.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row <= LastIndex && s.Col >= 0 && s.Col <= LastIndex
}

// Step returns the square n steps away along d.
func (s Square) Step(d Delta, n int) Square {
	return Square{Row: s.Row + d.Row*n, Col: s.Col + d.Col*n}
}

// File returns the file letter 'a'-'h'.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit '1'-'8'.
func (s Square) Rank() byte {
	return byte(RankBase + LastIndex - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: LastIndex - int(rank-RankBase), Col: int(file - ColBase)}, true
}

// MarshalJSON encodes the square as [row, col].
func (s Square) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Row, s.Col})
}

// UnmarshalJSON decodes a [row, col] pair.
func (s *Square) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	s.Row, s.Col = pair[0], pair[1]
	return nil
}

// mustOnBoard panics for coordinates outside the grid. Squares reaching the
// board accessors always come from the generator, so this is a programming error.
func mustOnBoard(s Square) {
	if !s.OnBoard() {
		panic(fmt.Sprintf("chess: square %v out of range", [2]int{s.Row, s.Col}))
	}
}
