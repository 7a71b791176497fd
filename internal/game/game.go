// Package game runs a game of chess between two players over a UI.
package game

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/errors"
	"github.com/lgbarn/termchess/internal/notation"
	"github.com/lgbarn/termchess/internal/player"
	"github.com/lgbarn/termchess/internal/storage"
)

// UI is what the game needs from a front end.
type UI interface {
	player.Prompter
	Render(colour chess.Colour, moves []string, board *chess.Board)
	Message(text string)
}

// Store keeps saved games.
type Store interface {
	Save(save storage.Save) error
	Load(name string) (storage.Save, error)
	List() ([]string, error)
}

// Game holds the state of one game and the collaborators that drive it.
type Game struct {
	ui      UI
	store   Store
	players [2]player.Player
	logger  log.Interface
	initial []string
	delay   time.Duration
	sleep   func(time.Duration)

	board  *chess.Board
	colour chess.Colour
	moves  []string
}

// Option configures a Game.
type Option func(*Game)

// WithPosition starts new games from rows instead of the standard layout.
func WithPosition(rows []string) Option {
	return func(g *Game) {
		if rows != nil {
			g.initial = rows
		}
	}
}

// WithLogger sets the logger for moves, saves and results.
func WithLogger(logger log.Interface) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithComputerDelay sets the pause before each computer move.
func WithComputerDelay(d time.Duration) Option {
	return func(g *Game) {
		g.delay = d
	}
}

// New creates a game. players holds White then Black.
func New(ui UI, store Store, players [2]player.Player, opts ...Option) (*Game, error) {
	g := &Game{
		ui:      ui,
		store:   store,
		players: players,
		logger:  &log.Logger{Handler: discard.New(), Level: log.ErrorLevel},
		initial: engine.StartingPosition,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if p := players[colour]; p == nil || p.Colour() != colour {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "no %s player", colour)
		}
	}
	if err := g.reset(g.initial, chess.White, nil); err != nil {
		return nil, err
	}
	return g, nil
}

// Board returns the live board.
func (g *Game) Board() *chess.Board { return g.board }

// Colour returns the side to move.
func (g *Game) Colour() chess.Colour { return g.colour }

// Moves returns a copy of the move list, markers included.
func (g *Game) Moves() []string {
	return append([]string(nil), g.moves...)
}

// Run plays until the user exits. It returns nil on exit and the input error
// otherwise, io.EOF included.
func (g *Game) Run() error {
	for {
		done, err := g.turn()
		if err != nil {
			return errors.Wrap(err, "game")
		}
		if done {
			return nil
		}
	}
}

// turn renders the position and plays one move or command. done is true once
// the user exits.
func (g *Game) turn() (done bool, err error) {
	g.ui.Render(g.colour, g.moves, g.board)

	if status := engine.Classify(g.board, g.colour); status.IsOver() {
		return g.gameOver(endingFor(status))
	}

	legal := engine.FindLegalMoves(g.board, g.colour)
	current := g.players[g.colour]
	move, cmd, err := g.askMove(current, legal)
	if err != nil {
		return false, err
	}
	switch cmd {
	case "":
	case player.CmdResign:
		return g.gameOver(resigned)
	case player.CmdDraw:
		return g.gameOver(agreedDraw)
	default:
		return g.command(cmd)
	}

	return false, g.play(current, move, legal)
}

// askMove asks until the player gives a command or text naming a legal move.
func (g *Game) askMove(p player.Player, legal []chess.Move) (chess.Move, string, error) {
	for {
		text, err := p.AskMove(legal)
		if err != nil {
			return chess.Move{}, "", err
		}
		if player.IsCommand(text) {
			return chess.Move{}, text, nil
		}
		move, err := notation.TextToMove(text, g.colour, legal)
		if err != nil {
			g.logger.WithError(err).Debug("move rejected")
			g.ui.Message(fmt.Sprintf("%q is not a legal move", text))
			continue
		}
		if _, ok := p.(*player.Computer); ok && g.delay > 0 {
			g.sleep(g.delay)
		}
		return move, "", nil
	}
}

// play applies move, records it and passes the turn.
func (g *Game) play(p player.Player, move chess.Move, legal []chess.Move) error {
	promotion := chess.NoKind
	if engine.IsPromotion(move) {
		var err error
		if promotion, err = p.AskPromotion(); err != nil {
			return err
		}
	}

	captured, err := engine.Apply(g.board, move, promotion)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = len(g.moves) + 1
		}
		return err
	}
	if engine.IsPromotion(move) && !chess.IsPromotionKind(promotion) {
		promotion = chess.Queen
	}

	text := notation.MoveToTextPromo(move, captured, promotion, legal, engine.InCheck(g.board, g.colour.Opposite()))
	g.moves = append(g.moves, text)
	g.logger.WithFields(log.Fields{
		"ply":    len(g.moves),
		"colour": g.colour,
		"move":   text,
	}).Info("move played")

	g.colour = g.colour.Opposite()
	return nil
}

// command carries out new, save, load or exit.
func (g *Game) command(cmd string) (bool, error) {
	switch cmd {
	case player.CmdNew:
		return false, g.newGame()
	case player.CmdSave:
		return false, g.save()
	case player.CmdLoad:
		return false, g.load()
	case player.CmdExit:
		g.logger.Info("exit")
		return true, nil
	}
	return false, nil
}

// reset replaces the game state.
func (g *Game) reset(rows []string, colour chess.Colour, moves []string) error {
	board, err := engine.NewBoard(rows)
	if err != nil {
		return err
	}
	g.board = board
	g.colour = colour
	g.moves = moves
	return nil
}

func (g *Game) newGame() error {
	g.logger.Info("new game")
	return g.reset(g.initial, chess.White, nil)
}
