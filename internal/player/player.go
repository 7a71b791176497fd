// Package player supplies the moves for one side of a game.
package player

import (
	"math/rand"
	"strings"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/config"
	"github.com/lgbarn/termchess/internal/errors"
	"github.com/lgbarn/termchess/internal/notation"
)

// Commands a human may type instead of a move.
const (
	CmdSave   = "save"
	CmdLoad   = "load"
	CmdNew    = "new"
	CmdResign = "resign"
	CmdDraw   = "draw"
	CmdExit   = "exit"
)

// IsCommand reports whether text is one of the commands.
func IsCommand(text string) bool {
	switch text {
	case CmdSave, CmdLoad, CmdNew, CmdResign, CmdDraw, CmdExit:
		return true
	}
	return false
}

// Player answers for one colour. AskMove returns either a command or move
// text for the game to convert.
type Player interface {
	Colour() chess.Colour
	AskMove(legal []chess.Move) (string, error)
	AskPromotion() (chess.Kind, error)
}

// Prompter reads one line of input after showing a prompt.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// New builds the player of the given kind.
func New(kind config.PlayerKind, colour chess.Colour, prompter Prompter, rng *rand.Rand) (Player, error) {
	switch kind {
	case config.Human:
		return &Human{colour: colour, prompter: prompter}, nil
	case config.Computer:
		return &Computer{colour: colour, rng: rng}, nil
	}
	return nil, errors.Wrapf(errors.ErrInvalidConfig, "player kind %q", kind)
}

// Human reads moves from a Prompter.
type Human struct {
	colour   chess.Colour
	prompter Prompter
}

// Colour returns the side the player moves for.
func (h *Human) Colour() chess.Colour { return h.colour }

// AskMove returns the next trimmed line. Commands are lowercased.
func (h *Human) AskMove(legal []chess.Move) (string, error) {
	line, err := h.prompter.Prompt(">> ")
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if lower := strings.ToLower(line); IsCommand(lower) {
		return lower, nil
	}
	return line, nil
}

// AskPromotion asks until one of q, r, b or n is given.
func (h *Human) AskPromotion() (chess.Kind, error) {
	for {
		line, err := h.prompter.Prompt("promote to (q)ueen, (r)ook, (b)ishop or k(n)ight >> ")
		if err != nil {
			return chess.NoKind, err
		}
		line = strings.ToUpper(strings.TrimSpace(line))
		if len(line) != 1 {
			continue
		}
		if kind := chess.KindFromLetter(line[0]); chess.IsPromotionKind(kind) {
			return kind, nil
		}
	}
}

// Computer plays a uniformly random legal move.
type Computer struct {
	colour chess.Colour
	rng    *rand.Rand
}

// NewComputer returns a computer player drawing from rng.
func NewComputer(colour chess.Colour, rng *rand.Rand) *Computer {
	return &Computer{colour: colour, rng: rng}
}

// Colour returns the side the player moves for.
func (c *Computer) Colour() chess.Colour { return c.colour }

// AskMove picks a legal move and writes it in notation that resolves back to
// the same move.
func (c *Computer) AskMove(legal []chess.Move) (string, error) {
	if len(legal) == 0 {
		return "", errors.Wrapf(errors.ErrIllegalMove, "%s has no legal moves", c.colour)
	}
	move := legal[c.rng.Intn(len(legal))]
	if move.IsCastle() {
		return notation.MoveToText(move, chess.Empty, legal, false), nil
	}
	return move.LongAlgebraic(), nil
}

// AskPromotion always chooses a queen.
func (c *Computer) AskPromotion() (chess.Kind, error) {
	return chess.Queen, nil
}
