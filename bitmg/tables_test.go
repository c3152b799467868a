package bitmg

import (
	"math/bits"
	"testing"
)

func TestJumpMasksAtEdges(t *testing.T) {
	cases := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"knight a1", knightMasks[A1], squares("b3", "c2")},
		{"knight h8", knightMasks[H8], squares("g6", "f7")},
		{"knight h4", knightMasks[H4], squares("g2", "f3", "f5", "g6")},
		{"king a1", kingMasks[A1], squares("a2", "b1", "b2")},
		{"king h5", kingMasks[H5], squares("h4", "h6", "g4", "g5", "g6")},
		{"white pawn a2", pawnAttackMasks[White][A2], squares("b3")},
		{"white pawn h2", pawnAttackMasks[White][H2], squares("g3")},
		{"black pawn e7", pawnAttackMasks[Black][E7], squares("d6", "f6")},
		{"white pawn e8", pawnAttackMasks[White][E8], 0},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, squareNames(c.got), squareNames(c.want))
		}
	}
	if n := bits.OnesCount64(knightMasks[D4]); n != 8 {
		t.Fatalf("knight d4: expected 8 targets, got %d", n)
	}
}

func TestRayMasks(t *testing.T) {
	if got, want := rayMasks[North][E4], squares("e5", "e6", "e7", "e8"); got != want {
		t.Fatalf("north from e4: got %v", squareNames(got))
	}
	if got, want := rayMasks[SW][E4], squares("d3", "c2", "b1"); got != want {
		t.Fatalf("south-west from e4: got %v", squareNames(got))
	}
	if got := rayMasks[East][H3]; got != 0 {
		t.Fatalf("east from h3 should be empty, got %v", squareNames(got))
	}
	if got, want := rayMasks[NW][H1], squares("g2", "f3", "e4", "d5", "c6", "b7", "a8"); got != want {
		t.Fatalf("north-west from h1: got %v", squareNames(got))
	}
	for d := NW; d < NoDirection; d++ {
		for sq := 0; sq < 64; sq++ {
			if rayMasks[d][sq]&rayMasks[d.Opposite()][sq] != 0 {
				t.Fatalf("rays %d and %d overlap from %s", d, d.Opposite(), Square(sq))
			}
		}
	}
}

func TestRowAndColumnMasks(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if rowMasks[sq.Row()]&bb(sq) == 0 || columnMasks[sq.Column()]&bb(sq) == 0 {
			t.Fatalf("%s missing from its row or column mask", sq)
		}
	}
	if rowMasks[0] != row1 || rowMasks[7] != row8 {
		t.Fatalf("row masks disagree with pawn row constants")
	}
}

func TestDirectionAndIntervening(t *testing.T) {
	if d := DirectionOf(E1, E8); d != North {
		t.Fatalf("e1->e8: got direction %d", d)
	}
	if d := DirectionOf(E8, E1); d != South {
		t.Fatalf("e8->e1: got direction %d", d)
	}
	if d := DirectionOf(A1, H8); d != NE {
		t.Fatalf("a1->h8: got direction %d", d)
	}
	if d := DirectionOf(B1, C3); d != NoDirection {
		t.Fatalf("b1->c3 is a knight hop, got direction %d", d)
	}
	if got, want := Between(E1, E5), squares("e2", "e3", "e4"); got != want {
		t.Fatalf("between e1 and e5: got %v", squareNames(got))
	}
	if got := Between(E1, E2); got != 0 {
		t.Fatalf("adjacent squares have nothing between, got %v", squareNames(got))
	}
	if got, want := Between(H8, A1), squares("b2", "c3", "d4", "e5", "f6", "g7"); got != want {
		t.Fatalf("between h8 and a1: got %v", squareNames(got))
	}
	if Between(A1, B3) != 0 {
		t.Fatalf("non-colinear squares should have an empty intervening mask")
	}
}

func TestEnPassantMasks(t *testing.T) {
	if got, want := enPassantMasks[D5], squares("c5", "e5"); got != want {
		t.Fatalf("d5: got %v", squareNames(got))
	}
	if got, want := enPassantMasks[A4], squares("b4"); got != want {
		t.Fatalf("a4: got %v", squareNames(got))
	}
}
