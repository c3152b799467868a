package bitmg

import "strings"

// MoveKind tags the variant carried by a Move.
type MoveKind uint8

const (
	Quiet MoveKind = iota
	DoubleAdvance
	Capture
	EnPassant
	Promotion
	PromotionCapture
	Castle
)

var moveKindNames = [...]string{
	Quiet:            "quiet",
	DoubleAdvance:    "double-advance",
	Capture:          "capture",
	EnPassant:        "en-passant",
	Promotion:        "promotion",
	PromotionCapture: "promotion-capture",
	Castle:           "castle",
}

func (k MoveKind) String() string {
	if int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "unknown"
}

// Move is a generated move. Which payload fields are meaningful depends on Kind:
//   - Capture, PromotionCapture: Captured
//   - EnPassant: Captured (always a pawn) and CapturedSq
//   - Promotion, PromotionCapture: Promotion, left as PieceTypeNone until expanded
//   - Castle: RookFrom and RookTo
//
// See carries the exchange score on moves from GenerateWinningCaptures.
type Move struct {
	Piece      Piece
	From       Square
	To         Square
	Kind       MoveKind
	Captured   PieceType
	CapturedSq Square
	Promotion  PieceType
	RookFrom   Square
	RookTo     Square
	See        int
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Kind == Capture || m.Kind == EnPassant || m.Kind == PromotionCapture
}

func (m Move) IsPromotion() bool {
	return m.Kind == Promotion || m.Kind == PromotionCapture
}

// String renders the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != PieceTypeNone {
		s += strings.ToLower(string(charFromPiece(PieceFromType(White, m.Promotion))))
	}
	return s
}

func newMove(p Piece, from, to Square, kind MoveKind) Move {
	return Move{Piece: p, From: from, To: to, Kind: kind, CapturedSq: NoSquare, RookFrom: NoSquare, RookTo: NoSquare}
}

func newCapture(p Piece, from, to Square, captured PieceType) Move {
	m := newMove(p, from, to, Capture)
	m.Captured = captured
	return m
}

func newEnPassant(p Piece, from, to, capturedSq Square) Move {
	m := newMove(p, from, to, EnPassant)
	m.Captured = PieceTypePawn
	m.CapturedSq = capturedSq
	return m
}

// newPromotion builds the generic promotion event; captured is PieceTypeNone for an advance.
func newPromotion(p Piece, from, to Square, captured PieceType) Move {
	kind := Promotion
	if captured != PieceTypeNone {
		kind = PromotionCapture
	}
	m := newMove(p, from, to, kind)
	m.Captured = captured
	return m
}

func newCastle(p Piece, from, to, rookFrom, rookTo Square) Move {
	m := newMove(p, from, to, Castle)
	m.RookFrom, m.RookTo = rookFrom, rookTo
	return m
}

// promotionOrder lists promotion targets from most to least valuable.
var promotionOrder = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// ExpandPromotions appends one record per promotable type for every generic
// promotion event in promos.
func ExpandPromotions(dst []Move, promos []Move) []Move {
	for _, m := range promos {
		if !m.IsPromotion() || m.Promotion != PieceTypeNone {
			dst = append(dst, m)
			continue
		}
		for _, pt := range promotionOrder {
			x := m
			x.Promotion = pt
			dst = append(dst, x)
		}
	}
	return dst
}
