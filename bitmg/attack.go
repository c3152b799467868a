package bitmg

// IsAttacked reports whether any piece of side 'by' reaches sq.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	return b.isAttackedWithOcc(sq, by, b.AllOccupied())
}

// isAttackedWithOcc answers IsAttacked against a hypothetical occupancy. Pieces
// missing from occ do not attack.
func (b *Board) isAttackedWithOcc(sq Square, by Color, occ uint64) bool {
	return b.colorAttackersWithOcc(sq, by, occ) != 0
}

func (b *Board) colorAttackersWithOcc(sq Square, by Color, occ uint64) uint64 {
	p := &b.pieces[by]
	// A pawn of 'by' hits sq exactly when a defending pawn on sq would hit it back.
	attackers := pawnAttackMasks[by.Other()][sq]&p[PieceTypePawn] |
		knightMasks[sq]&p[PieceTypeKnight] |
		kingMasks[sq]&p[PieceTypeKing] |
		BishopAttacks(sq, occ)&(p[PieceTypeBishop]|p[PieceTypeQueen]) |
		RookAttacks(sq, occ)&(p[PieceTypeRook]|p[PieceTypeQueen])
	return attackers & occ
}

// AttackMap returns every piece of either side that attacks sq.
func (b *Board) AttackMap(sq Square) uint64 {
	return b.attackersWithOcc(sq, b.AllOccupied())
}

func (b *Board) attackersWithOcc(sq Square, occ uint64) uint64 {
	w, k := &b.pieces[White], &b.pieces[Black]
	diag := BishopAttacks(sq, occ)
	orth := RookAttacks(sq, occ)
	attackers := pawnAttackMasks[Black][sq]&w[PieceTypePawn] |
		pawnAttackMasks[White][sq]&k[PieceTypePawn] |
		knightMasks[sq]&(w[PieceTypeKnight]|k[PieceTypeKnight]) |
		kingMasks[sq]&(w[PieceTypeKing]|k[PieceTypeKing]) |
		diag&(w[PieceTypeBishop]|w[PieceTypeQueen]|k[PieceTypeBishop]|k[PieceTypeQueen]) |
		orth&(w[PieceTypeRook]|w[PieceTypeQueen]|k[PieceTypeRook]|k[PieceTypeQueen])
	return attackers & occ
}

// ColorAttackMap returns the pieces of side 'by' that attack sq.
func (b *Board) ColorAttackMap(sq Square, by Color) uint64 {
	return b.colorAttackersWithOcc(sq, by, b.AllOccupied())
}

// Checkers returns the enemy pieces giving check to side's king.
func (b *Board) Checkers(side Color) uint64 {
	king := b.KingSquare(side)
	if king == NoSquare {
		return 0
	}
	return b.ColorAttackMap(king, side.Other())
}

// IsPinned returns the squares the piece on sq may move to without exposing
// its king: the line between king and pinner plus the pinner itself. A piece
// that is not pinned gets Unrestricted, never zero.
func (b *Board) IsPinned(sq Square, side Color) uint64 {
	king := b.KingSquare(side)
	if king == NoSquare {
		return Unrestricted
	}
	toKing := squareDirection[sq][king]
	if toKing == NoDirection {
		return Unrestricted
	}
	occ := b.AllOccupied()
	if intervening[sq][king]&occ != 0 {
		return Unrestricted
	}

	away := toKing.Opposite()
	pinner := nearest(int(sq), away, occ)
	if pinner < 0 {
		return Unrestricted
	}
	enemy := &b.pieces[side.Other()]
	sliders := enemy[PieceTypeQueen]
	if diagonal[away] {
		sliders |= enemy[PieceTypeBishop]
	} else {
		sliders |= enemy[PieceTypeRook]
	}
	pinBB := uint64(1) << uint(pinner)
	if sliders&pinBB == 0 {
		return Unrestricted
	}
	return intervening[king][pinner] | pinBB
}

// IsInCheck reports whether side's king is attacked. A side without a king is
// treated as checked.
func (b *Board) IsInCheck(side Color) bool {
	king := b.KingSquare(side)
	if king == NoSquare {
		return true
	}
	return b.IsAttacked(king, side.Other())
}
