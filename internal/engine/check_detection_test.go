package engine

import (
	"testing"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/errors"
	"github.com/lgbarn/termchess/internal/testutil"
)

func TestTestForCheck_LeavesBoardUntouched(t *testing.T) {
	positions := map[string]*chess.Board{
		"starting position": MustBoard(nil),
		"kiwipete":          MustBoard(kiwipeteRows),
		"position 3":        MustBoard(position3Rows),
		"castling":          MustBoard(castlingRows),
		"promotion":         MustBoard(testutil.Rows("......k.", "PK......", "...P....")),
	}

	epBoard := MustBoard(testutil.Rows("....k...", "...p....", "", "..P.P...", "", "", "", "....K..."))
	MovePiece(epBoard, m('p', 1, 3, 3, 3), chess.NoKind)
	positions["en passant available"] = epBoard

	for name, board := range positions {
		t.Run(name, func(t *testing.T) {
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				for _, mv := range generateMoves(board, colour, attackProbe) {
					before := board.Copy()
					TestForCheck(board, mv)
					testutil.AssertBoardsEqual(t, board, before, "after TestForCheck(%v)", mv)
				}
				for _, mv := range castlingMoves(board, colour) {
					before := board.Copy()
					TestForCheck(board, mv)
					testutil.AssertBoardsEqual(t, board, before, "after TestForCheck(%v)", mv)
				}
			}
		})
	}
}

func TestSimulate_RestoresOnPanic(t *testing.T) {
	board := MustBoard(nil)
	before := board.Copy()

	func() {
		defer func() { _ = recover() }()
		simulate(board, m('N', 7, 6, 5, 5), func() bool {
			panic("inspect failed")
		})
	}()

	testutil.AssertBoardsEqual(t, board, before)
}

func TestSimulate_KingCache(t *testing.T) {
	board := MustBoard(nil)
	mv := m('K', 7, 4, 6, 4)
	MovePiece(board, m('P', 6, 4, 4, 4), chess.NoKind)

	var during chess.Square
	simulate(board, mv, func() bool {
		during, _ = board.King(chess.White)
		return false
	})

	if during != chess.Sq(6, 4) {
		t.Errorf("king cache during simulation = %v, want %v", during, chess.Sq(6, 4))
	}
	if sq, _ := board.King(chess.White); sq != chess.Sq(7, 4) {
		t.Errorf("king cache after simulation = %v, want %v", sq, chess.Sq(7, 4))
	}
}

func TestTestForCheck_EnPassantRankPin(t *testing.T) {
	board := MustBoard(testutil.Rows(".......k", "...p....", "", "K.P....r"))
	MovePiece(board, m('p', 1, 3, 3, 3), chess.NoKind)

	capture := m('P', 3, 2, 2, 3)
	if !TestForCheck(board, capture) {
		t.Errorf("TestForCheck(%v) = false, want true: both pawns leave the rank", capture)
	}

	legal := FindLegalMoves(board, chess.White)
	if chess.ContainsMove(legal, capture) {
		t.Errorf("FindLegalMoves() contains en passant capture %v exposing the king", capture)
	}
	if !chess.ContainsMove(legal, m('P', 3, 2, 2, 2)) {
		t.Error("FindLegalMoves() is missing the plain pawn advance")
	}
}

func TestTestForCheck_UsesBoardColour(t *testing.T) {
	board := MustBoard(testutil.Rows("k.......", "........", "R......."))

	// The letter case of the supplied move is wrong; the mover is still black.
	mv := m('K', 0, 0, 1, 0)
	if !TestForCheck(board, mv) {
		t.Errorf("TestForCheck(%v) = false, want true", mv)
	}
}

func TestInCheck_NoKing(t *testing.T) {
	board := MustBoard(testutil.Rows("", "", "", "", "", "", "", "N......."))
	if InCheck(board, chess.Black) {
		t.Error("InCheck(Black) = true on a board without a black king")
	}
	if board.Probing != 0 {
		t.Errorf("board.Probing = %d after InCheck, want 0", board.Probing)
	}
}

func TestInCheck_LowersGuard(t *testing.T) {
	board := MustBoard(nil)
	InCheck(board, chess.White)
	if board.Probing != 0 {
		t.Errorf("board.Probing = %d after InCheck, want 0", board.Probing)
	}
}

func TestInCheck_InsideAttackScan(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		colour chess.Colour
		want   bool
	}{
		{name: "rook on the file", rows: testutil.Rows("....r..k", "", "", "", "", "", "", "....K..."), colour: chess.White, want: true},
		{name: "knight fork", rows: testutil.Rows("....k...", "", "...N....", "", "", "", "", "....K..."), colour: chess.Black, want: true},
		{name: "blocked bishop", rows: testutil.Rows("b......k", "", "..P.....", "", "", "", "", ".......K"), colour: chess.White, want: false},
		{name: "pawns attack diagonally", rows: testutil.Rows("....k...", "....P...", "", "", "", "", "", "....K..."), colour: chess.Black, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoard(tt.rows)
			board.Probing = 1

			testutil.AssertEqual(t, InCheck(board, tt.colour), tt.want)
			testutil.AssertEqual(t, board.Probing, 1)
		})
	}
}

func TestSimulate_RecursionGuard(t *testing.T) {
	board := MustBoard(nil)
	board.Probing = 1

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, errors.ErrRecursionInvariant) {
			t.Errorf("recover() = %v, want ErrRecursionInvariant", r)
		}
	}()
	TestForCheck(board, m('N', 7, 6, 5, 5))
	t.Error("TestForCheck() returned while an attack scan was running")
}
