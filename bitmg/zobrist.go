package bitmg

import "math/rand"

// Zobrist keys. Piece keys are indexed by the packed Piece code.
var (
	zobristPiece     [15][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func (b *Board) computeHash() uint64 {
	var key uint64
	for sq, p := range b.squares {
		if p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	return key
}

// stateHash covers everything outside the placement: side, castling and en passant file.
func stateHash(side Color, castle CastlingRights, ep Square) uint64 {
	key := zobristCastle[castle&15]
	if side == Black {
		key ^= zobristSide
	}
	if ep != NoSquare {
		key ^= zobristEnPassant[ep.Column()]
	}
	return key
}
