package engine

import (
	"testing"

	"github.com/lgbarn/termchess/internal/chess"
)

var benchPositions = map[string][]string{
	"Initial":    StartingPosition,
	"Kiwipete":   kiwipeteRows,
	"Position3":  position3Rows,
	"Castling":   castlingRows,
	"Endgame":    {".....k..", "", "", "", "", "", ".....K..", "....R..."},
	"Promotions": {"......k.", "PPPPP...", "", "", "", "", "ppppp...", "......K."},
}

func benchBoard(b *testing.B, rows []string) *chess.Board {
	b.Helper()
	for i, row := range rows {
		if row == "" {
			rows[i] = "........"
		}
	}
	board, err := ReadPosition(rows)
	if err != nil {
		b.Fatalf("ReadPosition() failed: %v", err)
	}
	return board
}

func BenchmarkReadPosition(b *testing.B) {
	for name, rows := range benchPositions {
		b.Run(name, func(b *testing.B) {
			benchBoard(b, rows)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ReadPosition(rows)
			}
		})
	}
}

func BenchmarkFindLegalMoves(b *testing.B) {
	for name, rows := range benchPositions {
		b.Run(name, func(b *testing.B) {
			board := benchBoard(b, rows)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				FindLegalMoves(board, chess.White)
			}
		})
	}
}

func BenchmarkInCheck(b *testing.B) {
	board := benchBoard(b, kiwipeteRows)
	for i := 0; i < b.N; i++ {
		InCheck(board, chess.White)
	}
}

func BenchmarkMovePiece(b *testing.B) {
	start := benchBoard(b, StartingPosition)
	move := chess.NewMove('P', chess.Sq(6, 4), chess.Sq(4, 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := start.Copy()
		MovePiece(board, move, chess.NoKind)
	}
}
