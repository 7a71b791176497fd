package game

import (
	"fmt"
	"strings"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/player"
)

// ending is a way for the game to finish.
type ending int

const (
	checkmate ending = iota
	stalemate
	agreedDraw
	resigned
	fiftyMoves
	insufficientMaterial
)

// Move list markers closing a finished game.
const (
	MarkCheckmate = "#"
	MarkStalemate = "stalemate"
	MarkDraw      = "(=)"
	MarkResigns   = "resigns"
)

// endingFor maps a finished position to the way the game ended.
func endingFor(status engine.Status) ending {
	switch status {
	case engine.Checkmate:
		return checkmate
	case engine.Stalemate:
		return stalemate
	case engine.FiftyMoveRule:
		return fiftyMoves
	default:
		return insufficientMaterial
	}
}

// status maps the ending back to the position classification it came from.
// Endings chosen by a player are Ongoing.
func (e ending) status() engine.Status {
	switch e {
	case checkmate:
		return engine.Checkmate
	case stalemate:
		return engine.Stalemate
	case fiftyMoves:
		return engine.FiftyMoveRule
	case insufficientMaterial:
		return engine.InsufficientMaterial
	default:
		return engine.Ongoing
	}
}

// markers returns the condition and result appended to the move list, with
// colour the side to move when the game ended.
func (e ending) markers(colour chess.Colour) (string, string) {
	switch e {
	case resigned:
		return MarkResigns, engine.WinnerToken(colour.Opposite())
	case agreedDraw:
		return MarkDraw, engine.Drawn
	}

	result := engine.Outcome(e.status(), colour)
	switch e {
	case checkmate:
		return MarkCheckmate, result
	case stalemate:
		return MarkStalemate, result
	default:
		return MarkDraw, result
	}
}

func (e ending) message(colour chess.Colour) string {
	switch e {
	case checkmate:
		return fmt.Sprintf("%s wins by checkmate.", colour.Opposite())
	case stalemate:
		return fmt.Sprintf("%s is stalemated.", colour)
	case resigned:
		return fmt.Sprintf("%s resigns.", colour)
	case fiftyMoves:
		return "Game drawn - fifty moves without a pawn move or capture."
	case insufficientMaterial:
		return "Game drawn - insufficient material."
	default:
		return "Game drawn."
	}
}

// gameOver closes the move list, shows the result and asks what next.
func (g *Game) gameOver(e ending) (bool, error) {
	condition, result := e.markers(g.colour)
	g.moves = append(g.moves, condition, result)
	g.logger.WithField("result", result).Infof("game over: %s", condition)

	g.ui.Render(g.colour, g.moves, g.board)
	g.ui.Message(e.message(g.colour))
	g.ui.Message("new : load : exit ?")

	for {
		line, err := g.ui.Prompt(">> ")
		if err != nil {
			return false, err
		}
		switch cmd := strings.ToLower(strings.TrimSpace(line)); cmd {
		case player.CmdNew, player.CmdLoad, player.CmdExit:
			return g.command(cmd)
		}
	}
}
