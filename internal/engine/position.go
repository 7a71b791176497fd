// Package engine provides chess move generation, validation and board manipulation.
package engine

import (
	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/errors"
)

// StartingPosition is the standard initial layout, rank 8 first.
var StartingPosition = []string{
	"rnbqkbnr",
	"pppppppp",
	"........",
	"........",
	"........",
	"........",
	"PPPPPPPP",
	"RNBQKBNR",
}

// ReadPosition builds a board from eight rows of eight characters. Uppercase
// letters are White, lowercase Black and '.' an empty square.
func ReadPosition(rows []string) (*chess.Board, error) {
	if len(rows) != chess.BoardSize {
		return nil, &errors.PositionError{Err: errors.ErrMalformedPosition, Row: -1, Got: len(rows)}
	}

	board := chess.NewBoard()
	for row, text := range rows {
		if len(text) != chess.BoardSize {
			return nil, &errors.PositionError{Err: errors.ErrMalformedPosition, Row: row, Col: -1, Got: len(text)}
		}
		for col := 0; col < chess.BoardSize; col++ {
			piece, ok := chess.PieceFromLetter(text[col])
			if !ok {
				return nil, &errors.PositionError{
					Err:  errors.ErrMalformedPosition,
					Row:  row,
					Col:  col,
					Char: text[col],
				}
			}
			board.Squares[row][col] = piece
		}
	}

	for _, colour := range bothColours {
		if sq, ok := board.FindKing(colour); ok {
			board.SetKing(colour, sq)
		}
		board.RecomputeMaterial(colour)
	}
	return board, nil
}

// WritePosition renders the board as eight rows of eight characters.
func WritePosition(board *chess.Board) []string {
	rows := make([]string, chess.BoardSize)
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			line[col] = board.Squares[row][col].Letter()
		}
		rows[row] = string(line)
	}
	return rows
}

// NewBoard reads rows into a board, using the starting layout when rows is nil.
func NewBoard(rows []string) (*chess.Board, error) {
	if rows == nil {
		rows = StartingPosition
	}
	return ReadPosition(rows)
}

// MustBoard is like NewBoard but panics on malformed input. It is meant for
// fixed positions known at compile time.
func MustBoard(rows []string) *chess.Board {
	board, err := NewBoard(rows)
	if err != nil {
		panic(err)
	}
	return board
}
