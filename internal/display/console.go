package display

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/termchess/internal/chess"
)

const clearScreen = "\x1b[H\x1b[2J"

// Console is a line-oriented front end over a reader and a writer.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// Clear wipes the terminal before each render.
	Clear bool
}

// NewConsole creates a console reading lines from r and writing to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewReader(r), out: w}
}

// Render draws the whole screen for a turn.
func (c *Console) Render(colour chess.Colour, moves []string, board *chess.Board) {
	if c.Clear {
		io.WriteString(c.out, clearScreen)
	}
	io.WriteString(c.out, Screen(colour, moves, board))
}

// Message prints a line of text.
func (c *Console) Message(text string) {
	fmt.Fprintln(c.out, text)
}

// Prompt prints prompt and returns the next line without its line ending. A
// final line with no newline is still returned; after that io.EOF.
func (c *Console) Prompt(prompt string) (string, error) {
	io.WriteString(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the console does not own its streams.
func (c *Console) Close() error {
	return nil
}
