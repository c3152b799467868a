package bitmg

import (
	"fmt"
	"math/bits"
)

// Piece packs side and type: the low three bits hold the type, bit 3 marks Black.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless piece kind used to index tables.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owner of the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3) }

// PieceFromType combines a side and a colorless type.
func PieceFromType(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CastlingRights bit flags.
type CastlingRights uint8

const (
	CastlingWhiteK CastlingRights = 1 << iota
	CastlingWhiteQ
	CastlingBlackK
	CastlingBlackQ
)

// Square is a board index from a1 (0) to h8 (63), row-major.
type Square int

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

func (s Square) Row() int    { return int(s) >> 3 }
func (s Square) Column() int { return int(s) & 7 }

func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(s.Column()), '1' + byte(s.Row())})
}

// ParseSquare converts algebraic coordinates such as "e4" into a Square.
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 || str[0] < 'a' || str[0] > 'h' || str[1] < '1' || str[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", str)
	}
	return Square(int(str[1]-'1')*8 + int(str[0]-'a')), nil
}

// Board holds piece placement as per-side, per-type bitboards with the derived
// occupancy, material and hash kept in step by the mutation primitives.
// Copying a Board by value yields an independent board.
type Board struct {
	// pieces[side][type]; index 0 is unused
	pieces   [2][7]uint64
	occupied [2]uint64
	material [2]int

	// Square to piece lookup
	squares [64]Piece

	// Zobrist key of the placement only
	hash uint64

	values PieceValues
}

// NewBoard returns an empty board scoring material with the given values.
func NewBoard(values PieceValues) *Board {
	return &Board{values: values}
}

// bb returns a bitboard with the given square bit set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}

// popMSB removes and returns the most significant set bit from the mask.
func popMSB(mask *uint64) int {
	idx := 63 - bits.LeadingZeros64(*mask)
	*mask &^= uint64(1) << uint(idx)
	return idx
}

// AddPiece places p on an empty square.
func (b *Board) AddPiece(sq Square, p Piece) {
	if p == NoPiece {
		return
	}
	if b.squares[sq] != NoPiece {
		panic(fmt.Sprintf("bitmg: AddPiece on occupied square %s", sq))
	}
	c := p.Color()
	mask := bb(sq)
	b.squares[sq] = p
	b.pieces[c][p.Type()] |= mask
	b.occupied[c] |= mask
	b.material[c] += b.values[p.Type()]
	b.hash ^= zobristPiece[p][sq]
}

// RemovePiece clears sq and returns what stood there.
func (b *Board) RemovePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	c := p.Color()
	mask := ^bb(sq)
	b.squares[sq] = NoPiece
	b.pieces[c][p.Type()] &= mask
	b.occupied[c] &= mask
	b.material[c] -= b.values[p.Type()]
	b.hash ^= zobristPiece[p][sq]
	return p
}

// Relocate moves the piece on 'from' to the empty square 'to'. Material is unchanged.
func (b *Board) Relocate(from, to Square) {
	p := b.squares[from]
	if p == NoPiece {
		panic(fmt.Sprintf("bitmg: Relocate from empty square %s", from))
	}
	if b.squares[to] != NoPiece {
		panic(fmt.Sprintf("bitmg: Relocate onto occupied square %s", to))
	}
	c := p.Color()
	delta := bb(from) | bb(to)
	b.squares[from] = NoPiece
	b.squares[to] = p
	b.pieces[c][p.Type()] ^= delta
	b.occupied[c] ^= delta
	b.hash ^= zobristPiece[p][from] ^ zobristPiece[p][to]
}

// SetPiece puts p on sq, replacing any existing piece.
func (b *Board) SetPiece(sq Square, p Piece) {
	b.RemovePiece(sq)
	b.AddPiece(sq, p)
}

func (b *Board) ClearSquare(sq Square) { _ = b.RemovePiece(sq) }

func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// Pieces returns the bitboard of one side's pieces of a type.
func (b *Board) Pieces(c Color, pt PieceType) uint64 { return b.pieces[c][pt] }

func (b *Board) Occupied(c Color) uint64 { return b.occupied[c] }

func (b *Board) AllOccupied() uint64 { return b.occupied[White] | b.occupied[Black] }

func (b *Board) Material(c Color) int { return b.material[c] }

func (b *Board) Values() PieceValues { return b.values }

// SetPieceValues swaps the value table and rescores both sides.
func (b *Board) SetPieceValues(v PieceValues) {
	b.values = v
	b.material = b.RecomputeMaterial()
}

// RecomputeMaterial sums piece values from the bitboards without touching the
// incremental totals.
func (b *Board) RecomputeMaterial() [2]int {
	var m [2]int
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			m[c] += b.values[pt] * bits.OnesCount64(b.pieces[c][pt])
		}
	}
	return m
}

// KingSquare returns the square of the side's king, or NoSquare if it has none.
func (b *Board) KingSquare(c Color) Square {
	k := b.pieces[c][PieceTypeKing]
	if k == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(k))
}

// Hash returns the Zobrist key of the piece placement.
func (b *Board) Hash() uint64 { return b.hash }

// Validate cross-checks the bitboards against the mailbox and recomputes the
// derived totals.
func (b *Board) Validate() error {
	var pieces [2][7]uint64
	for sq := A1; sq <= H8; sq++ {
		p := b.squares[sq]
		if p == NoPiece {
			continue
		}
		if p.Type() > PieceTypeKing || p&^15 != 0 {
			return fmt.Errorf("bad piece code %d on %s", p, sq)
		}
		pieces[p.Color()][p.Type()] |= bb(sq)
	}
	if pieces != b.pieces {
		return fmt.Errorf("piece bitboards disagree with square map")
	}

	var seen uint64
	for c := White; c <= Black; c++ {
		var occ uint64
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			if seen&b.pieces[c][pt] != 0 {
				return fmt.Errorf("%s %d bitboard overlaps another piece set", c, pt)
			}
			seen |= b.pieces[c][pt]
			occ |= b.pieces[c][pt]
		}
		if occ != b.occupied[c] {
			return fmt.Errorf("%s occupancy %#x, pieces give %#x", c, b.occupied[c], occ)
		}
		if n := bits.OnesCount64(b.pieces[c][PieceTypeKing]); n > 1 {
			return fmt.Errorf("%s has %d kings", c, n)
		}
	}
	if m := b.RecomputeMaterial(); m != b.material {
		return fmt.Errorf("material %v, recomputed %v", b.material, m)
	}
	if h := b.computeHash(); h != b.hash {
		return fmt.Errorf("hash %#x, recomputed %#x", b.hash, h)
	}
	return nil
}
