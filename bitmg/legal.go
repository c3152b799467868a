package bitmg

// MoveIsLegal reports whether moving the piece on 'from' to 'to' leaves side's
// king unattacked. The move is applied with the board primitives, tested and
// taken back, so hash and material come back unchanged. En passant and castles
// need IsLegal.
func (b *Board) MoveIsLegal(from, to Square, side Color) bool {
	p := b.squares[from]
	if p == NoPiece || p.Color() != side {
		return false
	}
	captured := b.squares[to]
	if captured != NoPiece && captured.Color() == side {
		return false
	}
	b.RemovePiece(to)
	b.Relocate(from, to)
	ok := !b.IsInCheck(side)
	b.Relocate(to, from)
	b.AddPiece(to, captured)
	return ok
}

// IsLegal is MoveIsLegal for a generated move of any kind.
func (b *Board) IsLegal(m Move, side Color) bool {
	switch m.Kind {
	case Castle:
		return b.CastleIsLegal(m, side)
	case EnPassant:
		captured := b.RemovePiece(m.CapturedSq)
		ok := b.MoveIsLegal(m.From, m.To, side)
		b.AddPiece(m.CapturedSq, captured)
		return ok
	}
	return b.MoveIsLegal(m.From, m.To, side)
}

// CastleIsLegal completes the castle test the generator skips: the king may not
// be in check, cross an attacked square or land on one.
func (b *Board) CastleIsLegal(m Move, side Color) bool {
	if m.Kind != Castle || b.IsInCheck(side) {
		return false
	}
	them := side.Other()
	return !b.IsAttacked(m.RookTo, them) && !b.IsAttacked(m.To, them)
}

// MoveEvadesCheck reports whether from->to leaves side's king safe, using a
// scratch occupancy instead of touching the board. It returns false when side
// has no king. En passant needs EvadesCheck.
func (b *Board) MoveEvadesCheck(from, to Square, side Color) bool {
	return b.evadesCheck(from, to, side, 0)
}

// EvadesCheck is MoveEvadesCheck for a generated move. The pawn taken en
// passant is lifted off the board; a castle never evades.
func (b *Board) EvadesCheck(m Move, side Color) bool {
	switch m.Kind {
	case Castle:
		return false
	case EnPassant:
		return b.evadesCheck(m.From, m.To, side, bb(m.CapturedSq))
	}
	return b.evadesCheck(m.From, m.To, side, 0)
}

// evadesCheck treats 'to' and the squares in vacated as emptied of enemy pieces.
func (b *Board) evadesCheck(from, to Square, side Color, vacated uint64) bool {
	king := b.KingSquare(side)
	if king == NoSquare {
		return false
	}
	p := b.squares[from]
	if p == NoPiece || p.Color() != side {
		return false
	}
	if from == king {
		king = to
	}
	occ := b.AllOccupied()&^(bb(from)|vacated) | bb(to)
	// Whatever stood on 'to' has been captured and no longer attacks.
	return b.colorAttackersWithOcc(king, side.Other(), occ)&^(bb(to)|vacated) == 0
}

// MoveGivesCheck reports whether from->to attacks the enemy king, directly or by
// uncovering a slider. promoted is the piece a pawn turns into, or PieceTypeNone.
func (b *Board) MoveGivesCheck(from, to Square, side Color, promoted PieceType) bool {
	pt := b.squares[from].Type()
	if promoted != PieceTypeNone {
		pt = promoted
	}
	return b.givesCheck(from, to, side, pt, 0)
}

// GivesCheck is MoveGivesCheck for a generated move, covering the rook of a
// castle and the pawn removed by en passant.
func (b *Board) GivesCheck(m Move, side Color) bool {
	switch m.Kind {
	case Castle:
		king := b.KingSquare(side.Other())
		if king == NoSquare {
			return false
		}
		occ := b.AllOccupied() &^ (bb(m.From) | bb(m.RookFrom)) | bb(m.To) | bb(m.RookTo)
		return RookAttacks(m.RookTo, occ)&bb(king) != 0
	case EnPassant:
		return b.givesCheck(m.From, m.To, side, PieceTypePawn, bb(m.CapturedSq))
	}
	pt := m.Piece.Type()
	if m.Promotion != PieceTypeNone {
		pt = m.Promotion
	}
	return b.givesCheck(m.From, m.To, side, pt, 0)
}

// givesCheck tests a piece of type pt arriving on 'to' from 'from'. vacated
// lists extra squares emptied by the move.
func (b *Board) givesCheck(from, to Square, side Color, pt PieceType, vacated uint64) bool {
	king := b.KingSquare(side.Other())
	if king == NoSquare {
		return false
	}
	kingBB := bb(king)
	occ := b.AllOccupied()&^(bb(from)|vacated) | bb(to)

	switch pt {
	case PieceTypePawn:
		if pawnAttackMasks[side][to]&kingBB != 0 {
			return true
		}
	case PieceTypeKing:
	default:
		if pieceTargets(pt, to, occ)&kingBB != 0 {
			return true
		}
	}

	// Discovered check from a slider that was behind the moved piece.
	own := &b.pieces[side]
	diag := (own[PieceTypeBishop] | own[PieceTypeQueen]) &^ bb(from)
	orth := (own[PieceTypeRook] | own[PieceTypeQueen]) &^ bb(from)
	return BishopAttacks(king, occ)&diag != 0 || RookAttacks(king, occ)&orth != 0
}
