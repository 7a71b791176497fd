// Package notation converts between algebraic move text and engine moves.
package notation

import (
	"regexp"
	"strings"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/errors"
)

var (
	// attemptPattern screens out text that is not trying to be a move at all.
	attemptPattern  = regexp.MustCompile(`^[a-hKQRBNP][a-h1-9x]{1,5}[+#?! ]*$`)
	algebraicLetter = regexp.MustCompile(`[a-h1-8KQRBNP]`)

	lengthPatterns = map[int]*regexp.Regexp{
		3: regexp.MustCompile(`^[KQRNBP][a-h][1-8]$`),
		4: regexp.MustCompile(`^[KQRNBP][a-h1-8][a-h][1-8]$`),
		5: regexp.MustCompile(`^[KQRNBP][a-h][1-8][a-h][1-8]$`),
	}
)

// Unknown marks an origin row or column the text did not give.
const Unknown = -1

// Pattern is a parsed move before it is matched against the legal list. The
// origin may be partly or wholly Unknown.
type Pattern struct {
	Piece   chess.Piece
	FromRow int
	FromCol int
	To      chess.Square
}

// Matches reports whether a concrete move fits the pattern.
func (p Pattern) Matches(m chess.Move) bool {
	if m.Piece != p.Piece || m.To != p.To {
		return false
	}
	if p.FromRow != Unknown && m.From.Row != p.FromRow {
		return false
	}
	return p.FromCol == Unknown || m.From.Col == p.FromCol
}

// castleMove returns the king move for a castling token, if text is one.
func castleMove(text string, colour chess.Colour) (chess.Move, bool) {
	row := chess.HomeRow(colour)
	king := chess.Piece{Kind: chess.King, Colour: colour}
	from := chess.Sq(row, chess.KingHomeCol)
	switch text {
	case "O-O", "0-0":
		return chess.Move{Piece: king, From: from, To: chess.Sq(row, chess.KingHomeCol+2)}, true
	case "O-O-O", "0-0-0":
		return chess.Move{Piece: king, From: from, To: chess.Sq(row, chess.KingHomeCol-2)}, true
	}
	return chess.Move{}, false
}

// ParsePattern converts move text such as "Nxb3+", "exd5" or "Qa1c3" into a
// pattern for colour. Check and annotation marks are ignored.
func ParsePattern(text string, colour chess.Colour) (Pattern, bool) {
	if m, ok := castleMove(text, colour); ok {
		return Pattern{Piece: m.Piece, FromRow: m.From.Row, FromCol: m.From.Col, To: m.To}, true
	}

	compact := strings.Join(strings.Fields(text), "")
	if !attemptPattern.MatchString(compact) || strings.HasSuffix(compact, "x") {
		return Pattern{}, false
	}

	stripped := strings.Join(algebraicLetter.FindAllString(text, -1), "")
	if stripped == "" {
		return Pattern{}, false
	}
	if first := stripped[0]; first >= 'a' && first <= 'z' {
		stripped = "P" + stripped
	}
	re, ok := lengthPatterns[len(stripped)]
	if !ok || !re.MatchString(stripped) {
		return Pattern{}, false
	}

	p := Pattern{
		Piece:   chess.Piece{Kind: chess.KindFromLetter(stripped[0]), Colour: colour},
		FromRow: Unknown,
		FromCol: Unknown,
	}
	p.To, _ = chess.ParseSquare(stripped[len(stripped)-2:])

	switch origin := stripped[1 : len(stripped)-2]; len(origin) {
	case 1:
		if c := origin[0]; c >= '1' && c <= '8' {
			p.FromRow = rowOf(c)
		} else {
			p.FromCol = colOf(c)
		}
	case 2:
		p.FromCol = colOf(origin[0])
		p.FromRow = rowOf(origin[1])
	}
	return p, true
}

// TextToMove resolves move text against the legal moves of colour. A move
// whose origin contradicts the given file or rank never fits. When more than
// one legal move fits, the full origin square decides first, then the origin
// row, then the origin column.
func TextToMove(text string, colour chess.Colour, legal []chess.Move) (chess.Move, error) {
	if m, ok := castleMove(text, colour); ok {
		if chess.ContainsMove(legal, m) {
			return m, nil
		}
		return chess.Move{}, invalid(text)
	}

	p, ok := ParsePattern(text, colour)
	if !ok {
		return chess.Move{}, invalid(text)
	}

	var candidates []chess.Move
	for _, m := range legal {
		if p.Matches(m) {
			candidates = append(candidates, m)
		}
	}
	switch len(candidates) {
	case 0:
		return chess.Move{}, invalid(text)
	case 1:
		return candidates[0], nil
	}

	filters := []func(chess.Move) bool{
		func(m chess.Move) bool { return m.From.Row == p.FromRow && m.From.Col == p.FromCol },
		func(m chess.Move) bool { return m.From.Row == p.FromRow },
		func(m chess.Move) bool { return m.From.Col == p.FromCol },
	}
	for _, keep := range filters {
		if m, ok := single(candidates, keep); ok {
			return m, nil
		}
	}
	return chess.Move{}, invalid(text)
}

func single(moves []chess.Move, keep func(chess.Move) bool) (chess.Move, bool) {
	var found chess.Move
	n := 0
	for _, m := range moves {
		if keep(m) {
			found = m
			n++
		}
	}
	return found, n == 1
}

func invalid(text string) error {
	return &errors.MoveError{Err: errors.ErrInvalidNotation, Move: text}
}

func rowOf(rank byte) int {
	return chess.LastIndex - int(rank-chess.RankBase)
}

func colOf(file byte) int {
	return int(file - chess.ColBase)
}
