package hashing

import (
	"testing"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/testutil"
)

func TestKeyConsistency(t *testing.T) {
	board1 := engine.MustBoard(nil)
	board2 := engine.MustBoard(nil)

	if Key(board1, chess.White) != Key(board2, chess.White) {
		t.Error("Identical boards produced different keys")
	}
}

func TestKeyDifferences(t *testing.T) {
	start := engine.MustBoard(nil)
	base := Key(start, chess.White)

	moved := engine.MustBoard(nil)
	engine.MovePiece(moved, testutil.M('P', 6, 4, 4, 4), chess.NoKind)

	noCastle := engine.MustBoard(nil)
	noCastle.Castling.Revoke(chess.Black, false)

	tests := []struct {
		name   string
		board  *chess.Board
		colour chess.Colour
	}{
		{"side to move", start, chess.Black},
		{"pawn moved", moved, chess.White},
		{"castling right lost", noCastle, chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Key(tt.board, tt.colour) == base {
				t.Error("Different positions produced the same key")
			}
		})
	}
}

func TestKeyEnPassant(t *testing.T) {
	board := engine.MustBoard(nil)
	engine.MovePiece(board, testutil.M('P', 6, 4, 4, 4), chess.NoKind)
	if !board.EnPassant {
		t.Fatal("double advance did not set en passant")
	}
	withEP := Key(board, chess.Black)

	board.EnPassant = false
	if Key(board, chess.Black) == withEP {
		t.Error("en passant square does not change the key")
	}
}

// Reaching one position by two move orders gives one key.
func TestKeyTransposition(t *testing.T) {
	orders := [][]chess.Move{
		{testutil.M('N', 7, 6, 5, 5), testutil.M('n', 0, 6, 2, 5), testutil.M('N', 7, 1, 5, 2)},
		{testutil.M('N', 7, 1, 5, 2), testutil.M('n', 0, 6, 2, 5), testutil.M('N', 7, 6, 5, 5)},
	}

	var got []uint64
	for _, moves := range orders {
		board := engine.MustBoard(nil)
		for _, m := range moves {
			engine.MovePiece(board, m, chess.NoKind)
		}
		got = append(got, Key(board, chess.Black))
	}
	testutil.AssertEqual(t, got[0], got[1], "keys after transposed knight moves")
}

func BenchmarkKey(b *testing.B) {
	board := engine.MustBoard(nil)
	for i := 0; i < b.N; i++ {
		Key(board, chess.White)
	}
}
