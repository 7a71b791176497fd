package chess

// Delta is a single (row, col) step.
type Delta struct {
	Row int
	Col int
}

// movement describes how a kind travels: the step set and how far it may slide.
type movement struct {
	directions []Delta
	maxMove    int
}

var (
	orthogonal = []Delta{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = []Delta{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}}
	knightL    = []Delta{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	allEight   = append(append([]Delta{}, diagonal...), orthogonal...)
)

// movementTable is read-only after package initialisation.
var movementTable = [NumKinds]movement{
	Pawn:   {directions: nil, maxMove: 1},
	Knight: {directions: knightL, maxMove: 1},
	Bishop: {directions: diagonal, maxMove: 7},
	Rook:   {directions: orthogonal, maxMove: 7},
	Queen:  {directions: allEight, maxMove: 7},
	King:   {directions: allEight, maxMove: 1},
}

// Directions returns the unit steps of a kind. Pawns have no symmetric step
// set; use PawnAdvance and PawnCaptures for them. Callers must not modify the
// returned slice.
func (k Kind) Directions() []Delta {
	if k <= NoKind || k >= NumKinds {
		return nil
	}
	return movementTable[k].directions
}

// MaxMove returns how many squares a kind may travel along one direction.
func (k Kind) MaxMove() int {
	if k <= NoKind || k >= NumKinds {
		return 0
	}
	return movementTable[k].maxMove
}

var (
	whitePawnCaptures = [2]Delta{{-1, 1}, {-1, -1}}
	blackPawnCaptures = [2]Delta{{1, 1}, {1, -1}}
)

// PawnAdvance returns the forward step of a pawn of the given colour.
func PawnAdvance(c Colour) Delta {
	if c == White {
		return Delta{-1, 0}
	}
	return Delta{1, 0}
}

// PawnCaptures returns the two forward-diagonal capture steps of a pawn.
func PawnCaptures(c Colour) [2]Delta {
	if c == White {
		return whitePawnCaptures
	}
	return blackPawnCaptures
}

// PawnStartRow returns the row from which pawns may advance two squares.
func PawnStartRow(c Colour) int {
	if c == White {
		return 6
	}
	return 1
}

// HomeRow returns the back rank row of a colour.
func HomeRow(c Colour) int {
	if c == White {
		return LastIndex
	}
	return 0
}

// PromotionRow returns the row on which a pawn of the colour promotes.
func PromotionRow(c Colour) int {
	return HomeRow(c.Opposite())
}

// Home squares for kings and rooks in the standard setup.
const (
	KingHomeCol      = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
)

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// IsPromotionKind reports whether k is a legal promotion choice.
func IsPromotionKind(k Kind) bool {
	for _, p := range PromotionKinds {
		if p == k {
			return true
		}
	}
	return false
}
