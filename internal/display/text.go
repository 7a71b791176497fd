package display

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lgbarn/termchess/internal/chess"
)

var (
	resultTokens    = []string{"1-0", "0-1", "½–½"}
	conditionTokens = []string{"#", "stalemate", "(=)", "resigns"}
)

// Title returns the banner shown above the board.
func Title() string {
	return `  ┌─────────────┐
  │  termchess  │
  └─────────────┘

  use algebraic notation to move

  options (type in lower case)
  save : load : new : resign : draw : exit

`
}

// CurrentPlayer marks whose turn it is.
func CurrentPlayer(colour chess.Colour) string {
	var sb strings.Builder
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if c == colour {
			fmt.Fprintf(&sb, ">> %s <<\n", c)
		} else {
			fmt.Fprintf(&sb, "   %s\n", c)
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// MoveList numbers the moves in pairs, "1. e4 e5 2. Nf3", and appends any
// game-over marker and result that close the list.
func MoveList(moves []string) string {
	moves, marker := splitMarker(moves)

	var parts []string
	for i := 0; i < len(moves); i += 2 {
		pair := fmt.Sprintf("%d. %s", i/2+1, moves[i])
		if i+1 < len(moves) {
			pair += " " + moves[i+1]
		}
		parts = append(parts, pair)
	}
	if marker != "" {
		parts = append(parts, marker)
	}
	return strings.Join(parts, " ")
}

// splitMarker peels a trailing result and then a trailing condition off the
// list. The input is not modified.
func splitMarker(moves []string) ([]string, string) {
	var result, condition string
	if n := len(moves); n > 0 && slices.Contains(resultTokens, moves[n-1]) {
		result, moves = moves[n-1], moves[:n-1]
	}
	if n := len(moves); n > 0 && slices.Contains(conditionTokens, moves[n-1]) {
		condition, moves = moves[n-1], moves[:n-1]
	}
	return moves, strings.TrimSpace(condition + " " + result)
}

// Screen is everything shown for one turn.
func Screen(colour chess.Colour, moves []string, board *chess.Board) string {
	return Title() + CurrentPlayer(colour) + Board(board) + "\n" + MoveList(moves) + "\n"
}
