package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/termchess/internal/chess"
)

// Rows returns the eight rows of a position, padding missing rows with empty
// ranks so fixtures only need to spell out the interesting part of the board.
// An empty string also stands for an empty rank.
func Rows(lines ...string) []string {
	rows := make([]string, chess.BoardSize)
	for i := range rows {
		rows[i] = "........"
		if i < len(lines) && lines[i] != "" {
			rows[i] = lines[i]
		}
	}
	return rows
}

// BoardDiff returns a cmp.Diff of two boards, empty when they are identical.
func BoardDiff(want, got *chess.Board) string {
	return cmp.Diff(want, got)
}

// AssertBoardsEqual fails with a field-level diff when the boards differ.
func AssertBoardsEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := BoardDiff(want, got); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg == "" {
			msg = "board"
		}
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}

// AssertMovesEqual compares move lists including their order.
func AssertMovesEqual(t *testing.T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg == "" {
			msg = "moves"
		}
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}

// AssertSameMoves compares move lists ignoring order.
func AssertSameMoves(t *testing.T, got, want []chess.Move, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := cmpopts.SortSlices(func(a, b chess.Move) bool { return a.String() < b.String() })
	if diff := cmp.Diff(want, got, sorted, cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg == "" {
			msg = "moves"
		}
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}

// M builds a move from a piece letter and two (row, col) pairs.
func M(letter byte, fromRow, fromCol, toRow, toCol int) chess.Move {
	return chess.NewMove(letter, chess.Sq(fromRow, fromCol), chess.Sq(toRow, toCol))
}
