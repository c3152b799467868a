package bitmg

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestSEE(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		move string
		want int
	}{
		{"undefended pawn", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", 100},
		{"pawn for pawn", "4k3/8/1n6/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", 0},
		{"second attacker keeps the pawn", "4k3/8/1n6/3p4/4P3/2N5/8/4K3 w - - 0 1", "e4d5", 100},
		{"knight takes defended pawn", "4k3/8/4p3/3p4/8/2N5/8/4K3 w - - 0 1", "c3d5", -220},
		{"rook takes defended knight", "4k3/8/4p3/3n4/8/8/8/3RK3 w - - 0 1", "d1d5", -190},
		{"bishop for knight then queen recaptures", "6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1", "c4e6", -13},
		{"en passant", "8/8/8/3pP3/8/8/8/6K1 w - d6 0 1", "e5d6", 100},
		{"x-ray rook behind rook", "3r2k1/8/8/3p4/8/8/3R4/3R2K1 w - - 0 1", "d2d5", 100},
		{"king cannot recapture a defended square", "8/8/4k3/3p4/4P3/8/8/3RK3 w - - 0 1", "e4d5", 100},
		{"king recaptures when nothing is left", "8/8/4k3/3p4/4P3/8/8/4K3 w - - 0 1", "e4d5", 0},
		{"black side", "4k3/8/8/3p4/4P3/8/8/4K3 b - - 0 1", "d5e4", 100},
		{"quiet move scores zero", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "e4e5", 0},
		{"losing recapture still counts", "4k3/8/4p3/3q4/4P3/8/8/4K3 w - - 0 1", "e4d5", 780},
		{"queen for pawn after rook and pawn trade", "4k2r/8/8/8/8/5Q1p/6P1/4K3 w - - 0 1", "f3h3", -270},
		{"king kept out by x-ray behind it", "7k/8/8/6b1/8/2p1K3/3n4/3R4 w - - 0 1", "d1d2", -190},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustFEN(t, c.fen)
			from, to := square(c.move[:2]), square(c.move[2:4])
			before := p.Board
			if got := p.SEE(from, to, p.Side); got != c.want {
				t.Fatalf("SEE(%s): got %d want %d", c.move, got, c.want)
			}
			if p.Board != before {
				t.Fatalf("SEE modified the board")
			}
			if again := p.SEE(from, to, p.Side); again != c.want {
				t.Fatalf("second call: got %d", again)
			}
		})
	}
}

func TestSEEKingTakesDefendedPawn(t *testing.T) {
	p := mustFEN(t, "8/8/8/2p5/3p4/4K3/8/7k w - - 0 1")
	if got := p.SEE(E3, D4, White); got > -DefaultPieceValues[PieceTypeQueen] {
		t.Fatalf("king capturing a defended pawn must score as a king loss, got %d", got)
	}
}

func TestSEEUsesBoardValues(t *testing.T) {
	v := DefaultPieceValues
	v[PieceTypeKnight] = 300
	v[PieceTypeBishop] = 300
	p, err := ParseFENWithValues("6k1/4q1p1/4n3/8/2B5/8/8/6K1 w - - 0 1", v)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.SEE(C4, E6, White); got != 0 {
		t.Fatalf("equal minor values should trade evenly, got %d", got)
	}
}

// exchangeAfter is the best side can get by capturing on sq, or by leaving it,
// found by playing every recapture out on a copy of the board.
func exchangeAfter(b *Board, sq Square, side Color) int {
	attackers := b.ColorAttackMap(sq, side)
	if attackers == 0 {
		return 0
	}
	var from Square
	for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
		if subset := attackers & b.Pieces(side, pt); subset != 0 {
			from = Square(bits.TrailingZeros64(subset))
			break
		}
	}
	victim := b.values[b.PieceAt(sq).Type()]
	next := *b
	next.RemovePiece(sq)
	next.Relocate(from, sq)
	if b.PieceAt(from).Type() == PieceTypeKing && next.ColorAttackMap(sq, side.Other()) != 0 {
		return 0
	}
	return max(0, victim-exchangeAfter(&next, sq, side.Other()))
}

func TestSEEMatchesFullExchange(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	checked := 0
	for _, c := range perftCases {
		p := mustFEN(t, c.fen)
		for ply := 0; ply < 60; ply++ {
			moves := p.LegalMoves(nil)
			if len(moves) == 0 {
				break
			}
			for _, m := range moves {
				if m.Kind != Capture {
					continue
				}
				next := p.Board
				victim := next.values[m.Captured]
				next.RemovePiece(m.To)
				next.Relocate(m.From, m.To)
				want := victim - exchangeAfter(&next, m.To, p.Side.Other())
				if got := p.SEE(m.From, m.To, p.Side); got != want {
					t.Fatalf("%s %s: SEE %d, full exchange %d", p.FEN(), m, got, want)
				}
				checked++
			}
			p.Make(moves[rnd.Intn(len(moves))])
		}
	}
	if checked < 100 {
		t.Fatalf("only %d captures compared", checked)
	}
}
