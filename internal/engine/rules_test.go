package engine

import (
	"testing"

	"github.com/lgbarn/termchess/internal/chess"
	"github.com/lgbarn/termchess/internal/testutil"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		fifty   int
		colour  chess.Colour
		want    Status
		outcome string
	}{
		{
			name:   "starting position",
			rows:   StartingPosition,
			colour: chess.White,
			want:   Ongoing,
		},
		{
			name:    "queen mates supported by king",
			rows:    testutil.Rows(".......k", "......Q.", ".....K.."),
			colour:  chess.Black,
			want:    Checkmate,
			outcome: WhiteWins,
		},
		{
			name:    "back rank mate against white",
			rows:    testutil.Rows("....k...", "", "", "", "", "", ".....PPP", "r.....K."),
			colour:  chess.White,
			want:    Checkmate,
			outcome: BlackWins,
		},
		{
			name:    "stalemate in the corner",
			rows:    testutil.Rows(".......k", "", "......Q.", "", "", "", "", "K......."),
			colour:  chess.Black,
			want:    Stalemate,
			outcome: Drawn,
		},
		{
			name:    "fifty moves without progress",
			rows:    StartingPosition,
			fifty:   50,
			colour:  chess.White,
			want:    FiftyMoveRule,
			outcome: Drawn,
		},
		{
			name:   "forty-nine moves is not yet a draw",
			rows:   StartingPosition,
			fifty:  49,
			colour: chess.White,
			want:   Ongoing,
		},
		{
			name:    "lone kings",
			rows:    testutil.Rows("....k...", "", "", "", "", "", "", "....K..."),
			colour:  chess.White,
			want:    InsufficientMaterial,
			outcome: Drawn,
		},
		{
			name:    "king and two knights against king and bishop",
			rows:    testutil.Rows("....kb..", "", "", "", "", "", "", ".N..K.N."),
			colour:  chess.White,
			want:    InsufficientMaterial,
			outcome: Drawn,
		},
		{
			name:   "bishop and knight can still mate",
			rows:   testutil.Rows("....k...", "", "", "", "", "", "", "..B.KN.."),
			colour: chess.White,
			want:   Ongoing,
		},
		{
			name:   "a pawn can still promote",
			rows:   testutil.Rows("....k...", "", "", "", "", "", "P.......", "....K..."),
			colour: chess.White,
			want:   Ongoing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoard(tt.rows)
			board.FiftyMoveCounter = tt.fifty

			got := Classify(board, tt.colour)
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
			if out := Outcome(got, tt.colour); out != tt.outcome {
				t.Errorf("Outcome(%v) = %q, want %q", got, out, tt.outcome)
			}
			if got.IsOver() != (tt.want != Ongoing) {
				t.Errorf("IsOver() = %v for %v", got.IsOver(), got)
			}
		})
	}
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		white, black string
		want         bool
	}{
		{"K", "k", true},
		{"KN", "k", true},
		{"BK", "kn", true},
		{"KNN", "knn", true},
		{"BK", "bk", true},
		{"BBK", "k", false},
		{"KR", "k", false},
		{"KP", "k", false},
		{"K", "kq", false},
		{"BKN", "k", false},
	}

	for _, tt := range tests {
		t.Run(tt.white+"/"+tt.black, func(t *testing.T) {
			board := chess.NewBoard()
			board.Material = [2]string{tt.white, tt.black}
			if got := HasInsufficientMaterial(board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Ongoing, "ongoing"},
		{Checkmate, "checkmate"},
		{Stalemate, "stalemate"},
		{FiftyMoveRule, "fifty-move rule"},
		{InsufficientMaterial, "insufficient material"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestWinnerToken(t *testing.T) {
	testutil.AssertEqual(t, WinnerToken(chess.White), "1-0")
	testutil.AssertEqual(t, WinnerToken(chess.Black), "0-1")
}
