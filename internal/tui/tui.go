// Package tui is a full-screen terminal front end built on tcell.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/display"
	"github.com/lgbarn/termchess/internal/errors"
)

// Layout, in cells.
const (
	boardTop    = 4
	boardLeft   = 2
	sideLeft    = 22
	maxMessages = 6
)

var (
	darkSquare  = tcell.StyleDefault.Background(tcell.NewRGBColor(102, 102, 102)).Foreground(tcell.ColorWhite)
	lightSquare = tcell.StyleDefault.Background(tcell.NewRGBColor(188, 63, 188)).Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Bold(true)
	markStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// TUI draws the game on a tcell screen and reads input from key events.
type TUI struct {
	screen tcell.Screen

	colour   chess.Colour
	moves    []string
	board    *chess.Board
	messages []string
	prompt   string
	input    []rune
}

// New opens the terminal.
func New() (*TUI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "opening terminal")
	}
	return NewWithScreen(screen)
}

// NewWithScreen initialises and draws on screen.
func NewWithScreen(screen tcell.Screen) (*TUI, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "initialising terminal")
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()
	return &TUI{screen: screen}, nil
}

// Close restores the terminal.
func (t *TUI) Close() error {
	t.screen.Fini()
	return nil
}

// Render replaces the position on screen and clears old messages.
func (t *TUI) Render(colour chess.Colour, moves []string, board *chess.Board) {
	t.colour = colour
	t.moves = append([]string(nil), moves...)
	t.board = board
	t.messages = nil
	t.draw()
}

// Message adds a line under the move list.
func (t *TUI) Message(text string) {
	t.messages = append(t.messages, strings.Split(text, "\n")...)
	if n := len(t.messages); n > maxMessages {
		t.messages = t.messages[n-maxMessages:]
	}
	t.draw()
}

// Prompt shows prompt on the bottom line and collects keys until Enter.
// Escape and Ctrl-C return errors.ErrQuit; a closed screen returns io.EOF.
func (t *TUI) Prompt(prompt string) (string, error) {
	t.prompt = prompt
	t.input = t.input[:0]
	t.draw()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			t.screen.Sync()
			t.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				line := string(t.input)
				t.input = t.input[:0]
				t.draw()
				return line, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len(t.input); n > 0 {
					t.input = t.input[:n-1]
					t.draw()
				}
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", errors.ErrQuit
			case tcell.KeyRune:
				t.input = append(t.input, ev.Rune())
				t.draw()
			}
		}
	}
}

func (t *TUI) draw() {
	t.screen.Clear()
	width, height := t.screen.Size()

	t.text(0, 0, "termchess", titleStyle)
	t.text(0, 1, "use algebraic notation to move", tcell.StyleDefault)
	t.text(0, 2, "save : load : new : resign : draw : exit", tcell.StyleDefault)

	if t.board != nil {
		t.drawBoard()
	}
	t.drawPlayers()

	y := boardTop + chess.BoardSize + 2
	y = t.wrapped(0, y, width, display.MoveList(t.moves), tcell.StyleDefault)
	for _, msg := range t.messages {
		t.text(0, y, msg, markStyle)
		y++
	}

	x := t.text(0, height-1, t.prompt, tcell.StyleDefault)
	x = t.text(x, height-1, string(t.input), tcell.StyleDefault)
	t.screen.ShowCursor(x, height-1)
	t.screen.Show()
}

func (t *TUI) drawBoard() {
	for row := 0; row < chess.BoardSize; row++ {
		y := boardTop + row
		t.text(0, y, fmt.Sprint(chess.BoardSize-row), tcell.StyleDefault)
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			style := lightSquare
			if display.IsDark(sq) {
				style = darkSquare
			}
			x := boardLeft + 2*col
			glyph := []rune(display.Glyph(t.board.Get(sq)))
			t.screen.SetContent(x, y, glyph[0], glyph[1:], style)
			t.screen.SetContent(x+1, y, ' ', nil, style)
		}
	}
	t.text(0, boardTop+chess.BoardSize, "  a b c d e f g h", tcell.StyleDefault)
}

func (t *TUI) drawPlayers() {
	for i, c := range []chess.Colour{chess.White, chess.Black} {
		label, style := "   "+c.String(), tcell.StyleDefault
		if c == t.colour {
			label, style = ">> "+c.String()+" <<", markStyle
		}
		t.text(sideLeft, boardTop+i, label, style)
	}
}

// text writes s from (x, y) and returns the column after it.
func (t *TUI) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// wrapped writes s word by word, breaking lines at width. It returns the row
// after the last one written.
func (t *TUI) wrapped(x, y, width int, s string, style tcell.Style) int {
	if s == "" {
		return y
	}
	col := x
	for _, word := range strings.Fields(s) {
		n := len([]rune(word))
		if col > x && col+n > width {
			col, y = x, y+1
		}
		col = t.text(col, y, word, style) + 1
	}
	return y + 1
}
