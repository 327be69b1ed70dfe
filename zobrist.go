/*
zobrist.go implements Zobrist hashing, used to key the transposition table and
to detect position repetitions.

The hash is maintained incrementally: [Position.MakeMove] XORs in the keys
for exactly the squares, side-to-move, castling rights, and en passant target
that changed, rather than rehashing the whole board on every move.
*/

package corvid

import "math/rand/v2"

var (
	pieceKeys [12][64]uint64
	epKeys    [64]uint64
	// castlingKeys is indexed by the 4-bit CastlingRights value directly.
	castlingKeys [16]uint64
	colorKey     uint64
)

// InitZobristKeys seeds the Zobrist key tables. Call this once, as close to
// program start as possible, before creating any Position.
func InitZobristKeys() {
	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		for square := range 64 {
			pieceKeys[piece][square] = rand.Uint64()
		}
	}
	for square := range 64 {
		epKeys[square] = rand.Uint64()
	}
	for i := range 16 {
		castlingKeys[i] = rand.Uint64()
	}
	colorKey = rand.Uint64()
}

// computeZobristKey hashes a position from scratch. Used only when a
// Position is first created from a FEN string; every move after that updates
// the hash incrementally.
func computeZobristKey(d *BitboardData) (key uint64) {
	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		for bb := d.Bitboards[piece]; bb > 0; {
			key ^= pieceKeys[piece][popLSB(&bb)]
		}
	}
	if d.EPTarget >= 0 {
		key ^= epKeys[d.EPTarget]
	}
	key ^= castlingKeys[d.CastlingRights]
	if d.Color == ColorBlack {
		key ^= colorKey
	}
	return key
}

// rehashMove folds the piece placement changes between prev and next into
// hash. Every square whose occupant changed toggles exactly once, so XOR
// alone is enough regardless of whether a piece was added or removed there.
func rehashMove(hash uint64, prev, next *BitboardData, _ Move) uint64 {
	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		diff := prev.Bitboards[piece] ^ next.Bitboards[piece]
		for diff > 0 {
			hash ^= pieceKeys[piece][popLSB(&diff)]
		}
	}
	return hash
}
