package bitmg

import "math/bits"

// Row masks used by the pawn code, indexed by side where it matters.
const (
	row1 uint64 = 0xFF
	row3        = row1 << 16
	row6        = row1 << 40
	row8        = row1 << 56
)

var (
	// promotionRow[side] is the last row for that side's pawns.
	promotionRow = [2]uint64{row8, row1}
	// doubleAdvanceRow[side] is where a pawn lands after its first single step from the start row.
	doubleAdvanceRow = [2]uint64{row3, row6}
	pawnPush         = [2]int{8, -8}
	// enPassantRow[side] is the row of the square side captures onto en passant.
	enPassantRow = [2]int{5, 2}
	castleRights = [2][2]CastlingRights{
		{CastlingWhiteK, CastlingWhiteQ},
		{CastlingBlackK, CastlingBlackQ},
	}
)

// advance shifts a pawn set one row toward the opponent.
func advance(set uint64, side Color) uint64 {
	if side == White {
		return set << 8
	}
	return set >> 8
}

// pieceTargets returns the squares a non-pawn piece on sq reaches.
func pieceTargets(pt PieceType, sq Square, occ uint64) uint64 {
	switch pt {
	case PieceTypeKnight:
		return knightMasks[sq]
	case PieceTypeBishop:
		return BishopAttacks(sq, occ)
	case PieceTypeRook:
		return RookAttacks(sq, occ)
	case PieceTypeQueen:
		return QueenAttacks(sq, occ)
	case PieceTypeKing:
		return kingMasks[sq]
	}
	return 0
}

// appendTargets emits one move of the given kind from 'from' to every square
// in targets. Captures are tagged with the victim on the destination.
func (b *Board) appendTargets(dst []Move, p Piece, from Square, targets uint64, kind MoveKind) []Move {
	for targets != 0 {
		to := Square(popLSB(&targets))
		if kind == Capture {
			dst = append(dst, newCapture(p, from, to, b.squares[to].Type()))
			continue
		}
		dst = append(dst, newMove(p, from, to, kind))
	}
	return dst
}

// appendPawnTargets is appendTargets for set-wise pawn pushes where every
// origin sits delta squares behind its destination.
func appendPawnTargets(dst []Move, p Piece, targets uint64, delta int, kind MoveKind) []Move {
	for targets != 0 {
		to := popLSB(&targets)
		dst = append(dst, newMove(p, Square(to-delta), Square(to), kind))
	}
	return dst
}

// enPassantVictim returns the square of the pawn that can be taken en passant
// when ep is the skipped square, or NoSquare if no such capture exists.
func (b *Board) enPassantVictim(side Color, ep Square) Square {
	if ep == NoSquare {
		return NoSquare
	}
	if bb(ep)&rowMasks[enPassantRow[side]] == 0 || b.squares[ep] != NoPiece {
		return NoSquare
	}
	victim := ep - Square(pawnPush[side])
	if b.pieces[side.Other()][PieceTypePawn]&bb(victim) == 0 {
		return NoSquare
	}
	return victim
}

// GenerateQuietMoves fills dst with the non-capturing, non-promoting moves of
// side. Castles are emitted when the right is held and the squares between king
// and rook are empty; attacked squares are not examined here.
func (b *Board) GenerateQuietMoves(dst []Move, side Color, castle CastlingRights) []Move {
	moves := dst[:0]
	own := &b.pieces[side]
	occ := b.AllOccupied()
	empty := ^occ

	base := Square(56 * int(side))
	king := PieceFromType(side, PieceTypeKing)
	rook := PieceFromType(side, PieceTypeRook)
	if b.squares[base+E1] == king {
		if castle&castleRights[side][0] != 0 && b.squares[base+H1] == rook && castleKingIntervening[side]&occ == 0 {
			moves = append(moves, newCastle(king, base+E1, base+G1, base+H1, base+F1))
		}
		if castle&castleRights[side][1] != 0 && b.squares[base+A1] == rook && castleQueenIntervening[side]&occ == 0 {
			moves = append(moves, newCastle(king, base+E1, base+C1, base+A1, base+D1))
		}
	}

	pawn := PieceFromType(side, PieceTypePawn)
	single := advance(own[PieceTypePawn], side) & empty
	double := advance(single&doubleAdvanceRow[side], side) & empty
	moves = appendPawnTargets(moves, pawn, single&^promotionRow[side], pawnPush[side], Quiet)
	moves = appendPawnTargets(moves, pawn, double, 2*pawnPush[side], DoubleAdvance)

	for pt := PieceTypeKnight; pt <= PieceTypeKing; pt++ {
		p := PieceFromType(side, pt)
		for pieces := own[pt]; pieces != 0; {
			from := Square(popLSB(&pieces))
			moves = b.appendTargets(moves, p, from, pieceTargets(pt, from, occ)&empty, Quiet)
		}
	}
	return moves
}

// GenerateCaptures fills moves with captures and en passant, and promotions
// with every pawn move onto the last row (capturing or not). Each promotion is
// one generic event; see ExpandPromotions.
func (b *Board) GenerateCaptures(moves, promotions []Move, side Color, ep Square) ([]Move, []Move) {
	moves, promotions = moves[:0], promotions[:0]
	own := &b.pieces[side]
	occ := b.AllOccupied()
	enemy := b.occupied[side.Other()]
	last := promotionRow[side]

	pawn := PieceFromType(side, PieceTypePawn)
	for pieces := own[PieceTypePawn]; pieces != 0; {
		from := Square(popLSB(&pieces))
		caps := pawnAttackMasks[side][from] & enemy
		moves = b.appendTargets(moves, pawn, from, caps&^last, Capture)
		for promo := caps & last; promo != 0; {
			to := Square(popLSB(&promo))
			promotions = append(promotions, newPromotion(pawn, from, to, b.squares[to].Type()))
		}
	}
	for adv := advance(own[PieceTypePawn], side) &^ occ & last; adv != 0; {
		to := Square(popLSB(&adv))
		promotions = append(promotions, newPromotion(pawn, to-Square(pawnPush[side]), to, PieceTypeNone))
	}

	if victim := b.enPassantVictim(side, ep); victim != NoSquare {
		for attackers := enPassantMasks[victim] & own[PieceTypePawn]; attackers != 0; {
			from := Square(popLSB(&attackers))
			moves = append(moves, newEnPassant(pawn, from, ep, victim))
		}
	}

	for pt := PieceTypeKnight; pt <= PieceTypeKing; pt++ {
		p := PieceFromType(side, pt)
		for pieces := own[pt]; pieces != 0; {
			from := Square(popLSB(&pieces))
			moves = b.appendTargets(moves, p, from, pieceTargets(pt, from, occ)&enemy, Capture)
		}
	}
	return moves, promotions
}

// GenerateWinningCaptures is GenerateCaptures keeping only captures whose
// exchange does not lose material. Kept moves carry their score in See.
// Promotions are returned unfiltered.
func (b *Board) GenerateWinningCaptures(moves, promotions []Move, side Color, ep Square) ([]Move, []Move) {
	moves, promotions = b.GenerateCaptures(moves, promotions, side, ep)
	kept := moves[:0]
	for _, m := range moves {
		score := b.SEE(m.From, m.To, side)
		if score < 0 {
			continue
		}
		m.See = score
		kept = append(kept, m)
	}
	return kept, promotions
}

// GenerateEvasions fills the three lists with the replies to a check on
// side's king. Nothing is generated when the king is not attacked or missing.
// Under double check only king moves are produced.
func (b *Board) GenerateEvasions(promotions, captures, quiets []Move, side Color, ep Square) ([]Move, []Move, []Move) {
	promotions, captures, quiets = promotions[:0], captures[:0], quiets[:0]
	king := b.KingSquare(side)
	if king == NoSquare {
		return promotions, captures, quiets
	}
	them := side.Other()
	checkers := b.ColorAttackMap(king, them)
	if checkers == 0 {
		return promotions, captures, quiets
	}
	own := &b.pieces[side]
	occ := b.AllOccupied()

	// The king is lifted off the board so that squares behind it on a checking
	// ray are seen as attacked.
	kingPiece := PieceFromType(side, PieceTypeKing)
	withoutKing := occ &^ bb(king)
	for targets := kingMasks[king] &^ b.occupied[side]; targets != 0; {
		to := Square(popLSB(&targets))
		if b.isAttackedWithOcc(to, them, withoutKing) {
			continue
		}
		if b.squares[to] != NoPiece {
			captures = append(captures, newCapture(kingPiece, king, to, b.squares[to].Type()))
		} else {
			quiets = append(quiets, newMove(kingPiece, king, to, Quiet))
		}
	}

	if bits.OnesCount64(checkers) > 1 {
		return promotions, captures, quiets
	}
	checker := Square(bits.TrailingZeros64(checkers))
	block := intervening[king][checker]
	last := promotionRow[side]

	pawn := PieceFromType(side, PieceTypePawn)
	push := Square(pawnPush[side])
	victim := b.enPassantVictim(side, ep)
	for pieces := own[PieceTypePawn]; pieces != 0; {
		from := Square(popLSB(&pieces))
		pin := b.IsPinned(from, side)

		if pawnAttackMasks[side][from]&checkers&pin != 0 {
			if checkers&last != 0 {
				promotions = append(promotions, newPromotion(pawn, from, checker, b.squares[checker].Type()))
			} else {
				captures = append(captures, newCapture(pawn, from, checker, b.squares[checker].Type()))
			}
		}

		one := from + push
		if onBoard(int(one)) && b.squares[one] == NoPiece {
			if bb(one)&block&pin != 0 {
				if bb(one)&last != 0 {
					promotions = append(promotions, newPromotion(pawn, from, one, PieceTypeNone))
				} else {
					quiets = append(quiets, newMove(pawn, from, one, Quiet))
				}
			}
			if advance(bb(from), side)&doubleAdvanceRow[side] != 0 && b.squares[one+push] == NoPiece && bb(one+push)&block&pin != 0 {
				two := one + push
				quiets = append(quiets, newMove(pawn, from, two, DoubleAdvance))
			}
		}

		if victim != NoSquare && enPassantMasks[victim]&bb(from) != 0 && bb(ep)&pin != 0 {
			if victim == checker || bb(ep)&block != 0 {
				captures = append(captures, newEnPassant(pawn, from, ep, victim))
			}
		}
	}

	for pt := PieceTypeKnight; pt <= PieceTypeQueen; pt++ {
		p := PieceFromType(side, pt)
		for pieces := own[pt]; pieces != 0; {
			from := Square(popLSB(&pieces))
			targets := pieceTargets(pt, from, occ) & b.IsPinned(from, side)
			captures = b.appendTargets(captures, p, from, targets&checkers, Capture)
			quiets = b.appendTargets(quiets, p, from, targets&block, Quiet)
		}
	}
	return promotions, captures, quiets
}
