// Package display renders the game as text for a terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/lgbarn/termchess/internal/chess"
)

// Square background colours as 24-bit RGB.
const (
	DarkSquareRGB  = "102;102;102"
	LightSquareRGB = "188;63;188"
)

const (
	ansiReset = "\x1b[0m"
	files     = "  a b c d e f g h"
)

var glyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♚",
	chess.W(chess.Queen):  "♛",
	chess.W(chess.Rook):   "♜",
	chess.W(chess.Bishop): "♝",
	chess.W(chess.Knight): "♞",
	chess.W(chess.Pawn):   "♟︎",
	chess.B(chess.King):   "♔",
	chess.B(chess.Queen):  "♕",
	chess.B(chess.Rook):   "♖",
	chess.B(chess.Bishop): "♗",
	chess.B(chess.Knight): "♘",
	chess.B(chess.Pawn):   "♙",
}

// Glyph returns the chess symbol for a piece, or a space for an empty square.
func Glyph(p chess.Piece) string {
	if g, ok := glyphs[p]; ok {
		return g
	}
	return " "
}

// IsDark reports whether a square is drawn in the dark colour. The top-left
// square is dark.
func IsDark(sq chess.Square) bool {
	return (sq.Row+sq.Col)%2 == 0
}

// Board renders the grid rank 8 first, each square two cells wide on an ANSI
// background, with rank labels on the left and files underneath.
func Board(board *chess.Board) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			rgb := LightSquareRGB
			if IsDark(sq) {
				rgb = DarkSquareRGB
			}
			fmt.Fprintf(&sb, "\x1b[48;2;%sm%s %s", rgb, Glyph(board.Get(sq)), ansiReset)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(files)
	sb.WriteByte('\n')
	return sb.String()
}
