package bitmg

import (
	"math/bits"
	"testing"
)

func TestPieceEncoding(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			p := PieceFromType(c, pt)
			if p.Type() != pt || p.Color() != c {
				t.Fatalf("PieceFromType(%v, %d) = %d decodes to (%v, %d)", c, pt, p, p.Color(), p.Type())
			}
		}
	}
	if BlackQueen != PieceFromType(Black, PieceTypeQueen) {
		t.Fatalf("black queen constant does not match the packed encoding")
	}
	if PieceFromType(White, PieceTypeNone) != NoPiece {
		t.Fatalf("PieceTypeNone must map to NoPiece")
	}
}

func TestSquareCoordinates(t *testing.T) {
	if E4.Row() != 3 || E4.Column() != 4 || E4.String() != "e4" {
		t.Fatalf("e4: row %d column %d name %s", E4.Row(), E4.Column(), E4)
	}
	if sq, err := ParseSquare("h8"); err != nil || sq != H8 {
		t.Fatalf("ParseSquare(h8) = %v, %v", sq, err)
	}
	if _, err := ParseSquare("i9"); err == nil {
		t.Fatalf("expected error for i9")
	}
	if NoSquare.String() != "-" {
		t.Fatalf("NoSquare should print as -")
	}
}

func TestAddRemoveRelocateKeepDerivedState(t *testing.T) {
	b := emptyBoard()
	b.AddPiece(E1, WhiteKing)
	b.AddPiece(D1, WhiteQueen)
	b.AddPiece(E8, BlackKing)
	b.AddPiece(D5, BlackPawn)
	if err := b.Validate(); err != nil {
		t.Fatalf("validate after adds: %v", err)
	}
	if got, want := b.Material(White), DefaultPieceValues[PieceTypeKing]+DefaultPieceValues[PieceTypeQueen]; got != want {
		t.Fatalf("white material: got %d want %d", got, want)
	}
	start := *b

	b.Relocate(D1, D4)
	if b.PieceAt(D4) != WhiteQueen || b.PieceAt(D1) != NoPiece {
		t.Fatalf("relocate did not move the queen")
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("validate after relocate: %v", err)
	}

	captured := b.RemovePiece(D5)
	b.Relocate(D4, D5)
	if captured != BlackPawn || b.Material(Black) != DefaultPieceValues[PieceTypeKing] {
		t.Fatalf("capture bookkeeping wrong: captured %d black material %d", captured, b.Material(Black))
	}

	b.Relocate(D5, D4)
	b.AddPiece(D5, captured)
	b.Relocate(D4, D1)
	if *b != start {
		t.Fatalf("board not restored after inverse moves")
	}
}

func TestOccupancyIsUnionOfPieces(t *testing.T) {
	p := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	for c := White; c <= Black; c++ {
		var union uint64
		for pt := PieceTypePawn; pt <= PieceTypeKing; pt++ {
			union |= p.Pieces(c, pt)
		}
		if union != p.Occupied(c) {
			t.Fatalf("%s occupancy mismatch", c)
		}
	}
	if p.Occupied(White)&p.Occupied(Black) != 0 {
		t.Fatalf("sides overlap")
	}
	if bits.OnesCount64(p.AllOccupied()) != 32 {
		t.Fatalf("expected 32 pieces on Kiwipete, got %d", bits.OnesCount64(p.AllOccupied()))
	}
}

func TestAddPieceOnOccupiedSquarePanics(t *testing.T) {
	b := emptyBoard()
	b.AddPiece(E4, WhitePawn)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	b.AddPiece(E4, BlackPawn)
}

func TestValidateDetectsCorruption(t *testing.T) {
	p := mustFEN(t, FENStartPos)
	p.material[White] += 5
	if err := p.Validate(); err == nil {
		t.Fatalf("expected material mismatch")
	}
	p.material[White] -= 5
	p.occupied[Black] |= bb(E4)
	if err := p.Validate(); err == nil {
		t.Fatalf("expected occupancy mismatch")
	}
}

func TestSetPieceValuesRescores(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/8/PPPP4/4K3 w - - 0 1")
	v := DefaultPieceValues
	v[PieceTypePawn] = 90
	p.SetPieceValues(v)
	if p.Values() != v {
		t.Fatalf("values not stored: %v", p.Values())
	}
	if got, want := p.Material(White), 4*90+v[PieceTypeKing]; got != want {
		t.Fatalf("white material: got %d want %d", got, want)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestKingSquareMissingKing(t *testing.T) {
	b := emptyBoard()
	if b.KingSquare(White) != NoSquare {
		t.Fatalf("empty board should report NoSquare for the king")
	}
}
