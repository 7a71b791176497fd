package engine

import "github.com/lgbarn/termchess/internal/chess"

// bothColours lists the sides in the order they move.
var bothColours = [2]chess.Colour{chess.White, chess.Black}

// sign returns -1, 0 or 1 following the sign of x.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
