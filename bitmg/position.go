package bitmg

// Position is a Board plus the game state a move generator needs: side to
// move, castling rights, en passant target and the move clocks.
type Position struct {
	Board

	Side      Color
	Castling  CastlingRights
	EnPassant Square // square skipped by the last double advance, or NoSquare
	Halfmove  int
	Fullmove  int
}

// Undo holds what Unmake needs beyond the move itself.
type Undo struct {
	captured  Piece
	castling  CastlingRights
	enPassant Square
	halfmove  int
	fullmove  int
}

// castleClear[sq] are the rights lost when a piece leaves or lands on sq.
var castleClear = [64]CastlingRights{
	A1: CastlingWhiteQ,
	E1: CastlingWhiteK | CastlingWhiteQ,
	H1: CastlingWhiteK,
	A8: CastlingBlackQ,
	E8: CastlingBlackK | CastlingBlackQ,
	H8: CastlingBlackK,
}

// Hash combines the placement key with side, castling and en passant.
func (p *Position) Hash() uint64 {
	return p.Board.Hash() ^ stateHash(p.Side, p.Castling, p.EnPassant)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.IsInCheck(p.Side) }

// Make plays m for the side to move without testing legality. A promotion
// that was never expanded becomes a queen.
func (p *Position) Make(m Move) Undo {
	u := Undo{
		castling:  p.Castling,
		enPassant: p.EnPassant,
		halfmove:  p.Halfmove,
		fullmove:  p.Fullmove,
	}
	b := &p.Board

	switch m.Kind {
	case Capture, PromotionCapture:
		u.captured = b.RemovePiece(m.To)
	case EnPassant:
		u.captured = b.RemovePiece(m.CapturedSq)
	}
	if m.IsPromotion() {
		promo := m.Promotion
		if promo == PieceTypeNone {
			promo = PieceTypeQueen
		}
		b.RemovePiece(m.From)
		b.AddPiece(m.To, PieceFromType(p.Side, promo))
	} else {
		b.Relocate(m.From, m.To)
	}
	if m.Kind == Castle {
		b.Relocate(m.RookFrom, m.RookTo)
	}

	p.Castling &^= castleClear[m.From] | castleClear[m.To]
	p.EnPassant = NoSquare
	if m.Kind == DoubleAdvance {
		p.EnPassant = (m.From + m.To) / 2
	}
	if m.Piece.Type() == PieceTypePawn || u.captured != NoPiece {
		p.Halfmove = 0
	} else {
		p.Halfmove++
	}
	if p.Side == Black {
		p.Fullmove++
	}
	p.Side = p.Side.Other()
	return u
}

// Unmake takes back m, which must be the last move made.
func (p *Position) Unmake(m Move, u Undo) {
	p.Side = p.Side.Other()
	b := &p.Board

	if m.Kind == Castle {
		b.Relocate(m.RookTo, m.RookFrom)
	}
	if m.IsPromotion() {
		b.RemovePiece(m.To)
		b.AddPiece(m.From, m.Piece)
	} else {
		b.Relocate(m.To, m.From)
	}
	switch m.Kind {
	case Capture, PromotionCapture:
		b.AddPiece(m.To, u.captured)
	case EnPassant:
		b.AddPiece(m.CapturedSq, u.captured)
	}

	p.Castling = u.castling
	p.EnPassant = u.enPassant
	p.Halfmove = u.halfmove
	p.Fullmove = u.fullmove
}

// LegalMoves fills dst with every legal move for the side to move, promotions
// expanded. In check it uses GenerateEvasions; otherwise it filters the quiet
// and capture passes through IsLegal.
func (p *Position) LegalMoves(dst []Move) []Move {
	var buf [3][64]Move
	moves := dst[:0]
	side := p.Side

	if p.InCheck() {
		promos, caps, quiets := p.GenerateEvasions(buf[0][:0], buf[1][:0], buf[2][:0], side, p.EnPassant)
		moves = ExpandPromotions(moves, promos)
		for _, m := range caps {
			// En passant can still uncover the king along the row.
			if m.Kind == EnPassant && !p.IsLegal(m, side) {
				continue
			}
			moves = append(moves, m)
		}
		return append(moves, quiets...)
	}

	caps, promos := p.GenerateCaptures(buf[0][:0], buf[1][:0], side, p.EnPassant)
	quiets := p.GenerateQuietMoves(buf[2][:0], side, p.Castling)
	for i, m := range promos {
		if p.IsLegal(m, side) {
			moves = ExpandPromotions(moves, promos[i:i+1])
		}
	}
	for _, list := range [2][]Move{caps, quiets} {
		for _, m := range list {
			if p.IsLegal(m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
