// Package hashing computes Zobrist keys for positions and caches perft
// subtree counts under them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/termchess/internal/chess"
)

// zobristSeed fixes the key tables so keys are stable between runs.
const zobristSeed = 0x7e57c4e55

var keys struct {
	pieces   [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	castling [4]uint64
	epFile   [chess.BoardSize]uint64
	black    uint64
}

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // keys need no cryptographic randomness
	for c := range keys.pieces {
		for k := range keys.pieces[c] {
			for sq := range keys.pieces[c][k] {
				keys.pieces[c][k][sq] = rng.Uint64()
			}
		}
	}
	for i := range keys.castling {
		keys.castling[i] = rng.Uint64()
	}
	for i := range keys.epFile {
		keys.epFile[i] = rng.Uint64()
	}
	keys.black = rng.Uint64()
}

// Key returns the Zobrist key of board with colour to move. Everything that
// changes the legal moves is included: the pieces, the side to move, the
// castling rights and the en passant file.
func Key(board *chess.Board, colour chess.Colour) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			key ^= keys.pieces[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}

	rights := []bool{
		board.Castling.WhiteKingside, board.Castling.WhiteQueenside,
		board.Castling.BlackKingside, board.Castling.BlackQueenside,
	}
	for i, allowed := range rights {
		if allowed {
			key ^= keys.castling[i]
		}
	}

	if board.EnPassant {
		key ^= keys.epFile[board.EPSquare.Col]
	}
	if colour == chess.Black {
		key ^= keys.black
	}
	return key
}
