package bitmg

import (
	"math/bits"
	"sort"
	"testing"
)

func mustFEN(t testing.TB, fen string) *Position {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func emptyBoard() *Board { return NewBoard(DefaultPieceValues) }

func square(coord string) Square {
	sq, err := ParseSquare(coord)
	if err != nil {
		panic(err)
	}
	return sq
}

func squares(coords ...string) uint64 {
	var set uint64
	for _, c := range coords {
		set |= bb(square(c))
	}
	return set
}

func squareNames(set uint64) []string {
	var out []string
	for set != 0 {
		out = append(out, Square(bits.TrailingZeros64(set)).String())
		set &= set - 1
	}
	return out
}

func moveStrings(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}
