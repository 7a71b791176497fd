package game

import (
	"io"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/config"
	"github.com/lgbarn/termchess/internal/engine"
	"github.com/lgbarn/termchess/internal/errors"
	"github.com/lgbarn/termchess/internal/player"
	"github.com/lgbarn/termchess/internal/storage"
	"github.com/lgbarn/termchess/internal/testutil"
)

// scriptUI feeds canned lines and records what the game shows.
type scriptUI struct {
	lines     []string
	messages  []string
	renders   int
	lastMoves []string
}

func (u *scriptUI) Prompt(string) (string, error) {
	if len(u.lines) == 0 {
		return "", io.EOF
	}
	line := u.lines[0]
	u.lines = u.lines[1:]
	return line, nil
}

func (u *scriptUI) Render(_ chess.Colour, moves []string, _ *chess.Board) {
	u.renders++
	u.lastMoves = append([]string(nil), moves...)
}

func (u *scriptUI) Message(text string) {
	u.messages = append(u.messages, text)
}

func (u *scriptUI) saw(text string) bool {
	return slices.Contains(u.messages, text)
}

func memoryStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(&config.StorageConfig{InMemory: true}, &log.Logger{Handler: memory.New()})
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func humans(ui *scriptUI) [2]player.Player {
	white, _ := player.New(config.Human, chess.White, ui, nil)
	black, _ := player.New(config.Human, chess.Black, ui, nil)
	return [2]player.Player{white, black}
}

func newGame(t *testing.T, ui *scriptUI, opts ...Option) *Game {
	t.Helper()
	g, err := New(ui, memoryStore(t), humans(ui), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestRun_Endings(t *testing.T) {
	tests := []struct {
		name      string
		position  []string
		lines     []string
		wantMoves []string
		message   string
	}{
		{
			name:      "fool's mate",
			lines:     []string{"f3", "e5", "g4", "Qh4", "exit"},
			wantMoves: []string{"f3", "e5", "g4", "Qh4+", "#", "0-1"},
			message:   "Black wins by checkmate.",
		},
		{
			name:      "black resigns",
			lines:     []string{"e4", "resign", "exit"},
			wantMoves: []string{"e4", "resigns", "1-0"},
			message:   "Black resigns.",
		},
		{
			name:      "white resigns",
			lines:     []string{"RESIGN", "exit"},
			wantMoves: []string{"resigns", "0-1"},
			message:   "White resigns.",
		},
		{
			name:      "draw agreed",
			lines:     []string{"draw", "exit"},
			wantMoves: []string{"(=)", "½–½"},
			message:   "Game drawn.",
		},
		{
			name:      "stalemate",
			position:  testutil.Rows("k.......", "", "", "", "", "", ".....q..", ".......K"),
			lines:     []string{"exit"},
			wantMoves: []string{"stalemate", "½–½"},
			message:   "White is stalemated.",
		},
		{
			name:      "insufficient material",
			position:  testutil.Rows(".......k", "", "", "", "", "", "...r....", "....K..."),
			lines:     []string{"Kxd2", "exit"},
			wantMoves: []string{"Kxd2", "(=)", "½–½"},
			message:   "Game drawn - insufficient material.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &scriptUI{lines: tt.lines}
			g := newGame(t, ui, WithPosition(tt.position))

			testutil.AssertNoError(t, g.Run(), "Run()")
			testutil.AssertEqual(t, g.Moves(), tt.wantMoves)
			testutil.AssertEqual(t, ui.lastMoves, tt.wantMoves, "final render")
			if !ui.saw(tt.message) {
				t.Errorf("messages = %q, want %q", ui.messages, tt.message)
			}
			if !ui.saw("new : load : exit ?") {
				t.Errorf("messages = %q, want the game-over prompt", ui.messages)
			}
		})
	}
}

func TestEnding_ResultMatchesOutcome(t *testing.T) {
	statuses := []engine.Status{engine.Checkmate, engine.Stalemate, engine.FiftyMoveRule, engine.InsufficientMaterial}
	for _, status := range statuses {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			e := endingFor(status)
			testutil.AssertEqual(t, e.status(), status, "endingFor(%v).status()", status)

			_, result := e.markers(colour)
			testutil.AssertEqual(t, result, engine.Outcome(status, colour), "%v with %v to move", status, colour)
		}
	}

	if _, result := agreedDraw.markers(chess.White); result != engine.Drawn {
		t.Errorf("agreed draw result = %q, want %q", result, engine.Drawn)
	}
	if _, result := resigned.markers(chess.Black); result != engine.WhiteWins {
		t.Errorf("black resigning result = %q, want %q", result, engine.WhiteWins)
	}
}

func TestRun_FiftyMoveRule(t *testing.T) {
	ui := &scriptUI{lines: []string{"exit"}}
	g := newGame(t, ui)
	g.Board().FiftyMoveCounter = engine.FiftyMoveLimit

	testutil.AssertNoError(t, g.Run())
	testutil.AssertEqual(t, g.Moves(), []string{"(=)", "½–½"})
	if !ui.saw("Game drawn - fifty moves without a pawn move or capture.") {
		t.Errorf("messages = %q", ui.messages)
	}
}

func TestRun_InvalidMoveReprompts(t *testing.T) {
	ui := &scriptUI{lines: []string{"e5", "hello", "e4", "exit"}}
	g := newGame(t, ui)

	testutil.AssertNoError(t, g.Run())
	testutil.AssertEqual(t, g.Moves(), []string{"e4"})
	if !ui.saw(`"e5" is not a legal move`) || !ui.saw(`"hello" is not a legal move`) {
		t.Errorf("messages = %q", ui.messages)
	}
	if g.Colour() != chess.Black {
		t.Errorf("Colour() = %v, want Black", g.Colour())
	}
}

func TestRun_EndOfInput(t *testing.T) {
	ui := &scriptUI{lines: []string{"e4"}}
	g := newGame(t, ui)

	err := g.Run()
	if !errors.Is(err, io.EOF) {
		t.Errorf("Run() error = %v, want io.EOF", err)
	}
}

func TestRun_Promotion(t *testing.T) {
	ui := &scriptUI{lines: []string{"a8", "x", "n", "exit"}}
	g := newGame(t, ui, WithPosition(testutil.Rows("", "P......k", "", "", "", "", "", "....K...")))

	testutil.AssertNoError(t, g.Run())
	testutil.AssertEqual(t, g.Moves(), []string{"a8N"})
	if got := g.Board().Get(chess.Sq(0, 0)); got != chess.W(chess.Knight) {
		t.Errorf("a8 = %v, want white knight", got)
	}
}

func TestRun_CheckFlagIsForOpponent(t *testing.T) {
	ui := &scriptUI{lines: []string{"Ra8", "exit"}}
	g := newGame(t, ui, WithPosition(testutil.Rows("....k...", "", "", "", "", "", "", "R...K...")))

	testutil.AssertNoError(t, g.Run())
	testutil.AssertEqual(t, g.Moves(), []string{"Ra8+"})
}

func TestRun_NewCommand(t *testing.T) {
	ui := &scriptUI{lines: []string{"e4", "new", "d4", "exit"}}
	g := newGame(t, ui)

	testutil.AssertNoError(t, g.Run())
	testutil.AssertEqual(t, g.Moves(), []string{"d4"})
}

func TestRun_GameOverChoices(t *testing.T) {
	ui := &scriptUI{lines: []string{"draw", "maybe", "NEW", "e4", "exit"}}
	g := newGame(t, ui)

	testutil.AssertNoError(t, g.Run())
	testutil.AssertEqual(t, g.Moves(), []string{"e4"})
}

func TestRun_SaveAndLoad(t *testing.T) {
	ui := &scriptUI{lines: []string{
		"e4",
		"save", "opening", "",
		"e5", "Nf3",
		"load", "opening",
		"exit",
	}}
	g := newGame(t, ui)

	testutil.AssertNoError(t, g.Run())
	if !ui.saw("Save successful") {
		t.Errorf("messages = %q", ui.messages)
	}
	testutil.AssertEqual(t, g.Moves(), []string{"e4"})
	if g.Colour() != chess.Black {
		t.Errorf("Colour() = %v, want Black", g.Colour())
	}
	if got := g.Board().Get(chess.Sq(4, 4)); got != chess.W(chess.Pawn) {
		t.Errorf("e4 = %v, want white pawn", got)
	}
	if !ui.saw("- opening") {
		t.Errorf("load did not list the save: %q", ui.messages)
	}
}

func TestRun_SaveCancelled(t *testing.T) {
	for _, name := range []string{"cancel", "  "} {
		ui := &scriptUI{lines: []string{"save", name, "", "exit"}}
		g := newGame(t, ui)

		testutil.AssertNoError(t, g.Run())
		if !ui.saw("File not saved") {
			t.Errorf("save %q: messages = %q", name, ui.messages)
		}
		if !ui.saw("-- no saves --") {
			t.Errorf("save %q: empty store not reported: %q", name, ui.messages)
		}
	}
}

func TestRun_LoadUnknownStartsNewGame(t *testing.T) {
	for _, name := range []string{"missing", "", "cancel"} {
		ui := &scriptUI{lines: []string{"e4", "load", name, "exit"}}
		g := newGame(t, ui)

		testutil.AssertNoError(t, g.Run())
		if len(g.Moves()) != 0 || g.Colour() != chess.White {
			t.Errorf("load %q: moves = %q colour = %v, want a new game", name, g.Moves(), g.Colour())
		}
	}
}

func TestResume(t *testing.T) {
	ui := &scriptUI{}
	g := newGame(t, ui)

	err := g.Resume(storage.Save{Colour: chess.Black, Moves: []string{"d4"}, Position: engine.StartingPosition})
	testutil.AssertNoError(t, err)
	if g.Colour() != chess.Black {
		t.Errorf("Colour() = %v, want Black", g.Colour())
	}

	err = g.Resume(storage.Save{Position: []string{"bad"}})
	testutil.AssertErrorIs(t, err, errors.ErrMalformedPosition)
}

func TestRun_Computers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ui := &scriptUI{lines: []string{"exit"}}
	players := [2]player.Player{
		player.NewComputer(chess.White, rng),
		player.NewComputer(chess.Black, rng),
	}
	g, err := New(ui, memoryStore(t), players, WithComputerDelay(time.Millisecond))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	slept := 0
	g.sleep = func(d time.Duration) {
		if d != time.Millisecond {
			t.Errorf("sleep(%v), want 1ms", d)
		}
		slept++
	}

	testutil.AssertNoError(t, g.Run())

	moves := g.Moves()
	if len(moves) < 2 {
		t.Fatalf("Moves() = %q, want a finished game", moves)
	}
	result := moves[len(moves)-1]
	if result != engine.WhiteWins && result != engine.BlackWins && result != engine.Drawn {
		t.Errorf("last entry = %q, want a result", result)
	}
	if slept != len(moves)-2 {
		t.Errorf("slept %d times for %d moves", slept, len(moves)-2)
	}
}

func TestRun_LogsMoves(t *testing.T) {
	handler := memory.New()
	ui := &scriptUI{lines: []string{"e4", "exit"}}
	g := newGame(t, ui, WithLogger(&log.Logger{Handler: handler, Level: log.InfoLevel}))

	testutil.AssertNoError(t, g.Run())

	if len(handler.Entries) == 0 || handler.Entries[0].Message != "move played" {
		t.Fatalf("entries = %v, want a move entry first", handler.Entries)
	}
	if got := handler.Entries[0].Fields["move"]; got != "e4" {
		t.Errorf("move field = %v, want e4", got)
	}
}

func TestNew_Errors(t *testing.T) {
	ui := &scriptUI{}

	_, err := New(ui, memoryStore(t), humans(ui), WithPosition([]string{"rnbqkbnr"}))
	testutil.AssertErrorIs(t, err, errors.ErrMalformedPosition)

	p := humans(ui)
	_, err = New(ui, memoryStore(t), [2]player.Player{p[1], p[0]})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)

	_, err = New(ui, memoryStore(t), [2]player.Player{p[0], nil})
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}
