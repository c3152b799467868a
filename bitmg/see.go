package bitmg

// seeDepth bounds the swap list. A square cannot be hit by more pieces than this.
const seeDepth = 32

// SEE returns the material balance for side after the capture from->to and
// every profitable recapture on 'to', each side always recapturing with its
// least valuable piece and free to stop at any point. The result is the exact
// minimax value of that line. Positive scores win material. A king only
// recaptures when the opponent has nothing left on the square, x-rays through
// the king included, and nothing follows it. The board is not modified.
func (b *Board) SEE(from, to Square, side Color) int {
	attacker := b.squares[from]
	if attacker == NoPiece {
		return 0
	}
	occ := b.AllOccupied()
	victim := b.squares[to].Type()
	if victim == PieceTypeNone {
		// A pawn stepping diagonally onto an empty square captures en passant.
		if attacker.Type() != PieceTypePawn || from.Column() == to.Column() {
			return 0
		}
		victim = PieceTypePawn
		occ &^= bb(to - Square(pawnPush[side]))
	}

	diagSliders := b.pieces[White][PieceTypeBishop] | b.pieces[Black][PieceTypeBishop] |
		b.pieces[White][PieceTypeQueen] | b.pieces[Black][PieceTypeQueen]
	orthSliders := b.pieces[White][PieceTypeRook] | b.pieces[Black][PieceTypeRook] |
		b.pieces[White][PieceTypeQueen] | b.pieces[Black][PieceTypeQueen]

	var gain [seeDepth]int
	d := 0
	gain[0] = b.values[victim]
	attackers := b.attackersWithOcc(to, occ)
	fromBB := bb(from)
	piece := attacker.Type()
	stm := side

	for fromBB != 0 && d < seeDepth-1 {
		attackers &^= fromBB
		occ &^= fromBB
		if piece != PieceTypeKnight {
			attackers |= (BishopAttacks(to, occ)&diagSliders | RookAttacks(to, occ)&orthSliders) & occ
		}
		// A king may only recapture onto a square nothing reaches once it has left home.
		if piece == PieceTypeKing && d > 0 && attackers&b.occupied[stm.Other()] != 0 {
			break
		}

		d++
		// Score if the piece just moved onto 'to' is taken in turn. The line is
		// always played out; cutting it short would leave gain[d-1] unfolded.
		gain[d] = b.values[piece] - gain[d-1]
		if piece == PieceTypeKing && d > 1 {
			break
		}

		stm = stm.Other()
		fromBB, piece = b.leastValuableAttacker(attackers&b.occupied[stm], stm)
	}

	for d--; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// leastValuableAttacker picks one piece of side from set, scanning from pawn to king.
func (b *Board) leastValuableAttacker(set uint64, side Color) (uint64, PieceType) {
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		if subset := set & b.pieces[side][pt]; subset != 0 {
			return subset & -subset, pt
		}
	}
	return 0, PieceTypeNone
}
