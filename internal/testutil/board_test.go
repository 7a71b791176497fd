package testutil

import (
	"testing"

	"github.com/lgbarn/termchess/internal/chess"
)

func TestRows(t *testing.T) {
	rows := Rows("k.......", "........", "R.......")
	if len(rows) != chess.BoardSize {
		t.Fatalf("len(Rows()) = %d, want %d", len(rows), chess.BoardSize)
	}
	if rows[0] != "k......." || rows[2] != "R......." {
		t.Errorf("Rows() kept rows = %q, %q", rows[0], rows[2])
	}
	for i := 3; i < chess.BoardSize; i++ {
		if rows[i] != "........" {
			t.Errorf("Rows()[%d] = %q, want empty rank", i, rows[i])
		}
	}
}

func TestBoardDiff(t *testing.T) {
	a := chess.NewBoard()
	b := a.Copy()
	if diff := BoardDiff(a, b); diff != "" {
		t.Errorf("BoardDiff() of copies = %q, want empty", diff)
	}
	AssertBoardsEqual(t, b, a)

	b.Set(chess.Sq(0, 0), chess.B(chess.Rook))
	if diff := BoardDiff(a, b); diff == "" {
		t.Error("BoardDiff() = empty after Set, want a diff")
	}
}

func TestMoveHelpers(t *testing.T) {
	m := M('N', 7, 0, 5, 1)
	if m.Piece != chess.W(chess.Knight) || m.From != chess.Sq(7, 0) || m.To != chess.Sq(5, 1) {
		t.Errorf("M() = %v", m)
	}

	moves := []chess.Move{M('N', 7, 0, 5, 1), M('N', 7, 0, 6, 2)}
	AssertMovesEqual(t, moves, []chess.Move{M('N', 7, 0, 5, 1), M('N', 7, 0, 6, 2)})
	AssertSameMoves(t, moves, []chess.Move{M('N', 7, 0, 6, 2), M('N', 7, 0, 5, 1)})
	AssertMovesEqual(t, nil, []chess.Move{})
}
