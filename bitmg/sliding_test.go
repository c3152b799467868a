package bitmg

import (
	"math/rand"
	"testing"
)

// walkRays steps square by square from sq until the edge or a blocker.
func walkRays(sq Square, occ uint64, steps [][2]int) uint64 {
	var attacks uint64
	for _, s := range steps {
		r, c := sq.Row()+s[0], sq.Column()+s[1]
		for r >= 0 && r < 8 && c >= 0 && c < 8 {
			bit := uint64(1) << uint(r*8+c)
			attacks |= bit
			if occ&bit != 0 {
				break
			}
			r, c = r+s[0], c+s[1]
		}
	}
	return attacks
}

var (
	diagonalSteps   = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonalSteps = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

func TestSlidingAttacksMatchRayWalk(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		// Sparse and dense boards both matter.
		occ := rnd.Uint64() & rnd.Uint64()
		if i%2 == 0 {
			occ |= rnd.Uint64()
		}
		for sq := A1; sq <= H8; sq++ {
			if got, want := BishopAttacks(sq, occ), walkRays(sq, occ, diagonalSteps); got != want {
				t.Fatalf("bishop %s occ %#x: got %v want %v", sq, occ, squareNames(got), squareNames(want))
			}
			if got, want := RookAttacks(sq, occ), walkRays(sq, occ, orthogonalSteps); got != want {
				t.Fatalf("rook %s occ %#x: got %v want %v", sq, occ, squareNames(got), squareNames(want))
			}
		}
	}
}

func TestSlidingAttacksIncludeBlocker(t *testing.T) {
	occ := squares("d4", "d7", "b4", "g4", "d2")
	got := RookAttacks(D4, occ)
	want := squares("d5", "d6", "d7", "d3", "d2", "c4", "b4", "e4", "f4", "g4")
	if got != want {
		t.Fatalf("rook d4: got %v want %v", squareNames(got), squareNames(want))
	}
	if q := QueenAttacks(D4, occ); q != got|BishopAttacks(D4, occ) {
		t.Fatalf("queen attacks must be the union of rook and bishop attacks")
	}
}

func TestNearestBlocker(t *testing.T) {
	occ := squares("e2", "e6", "e7")
	if got := nearest(int(E4), North, occ); got != int(E6) {
		t.Fatalf("north of e4: got %s", Square(got))
	}
	if got := nearest(int(E4), South, occ); got != int(E2) {
		t.Fatalf("south of e4: got %s", Square(got))
	}
	if got := nearest(int(E4), East, occ); got != -1 {
		t.Fatalf("east of e4 is empty, got %d", got)
	}
}
