package main

import (
	"flag"
	"fmt"
	"log"
	"math/bits"
	"os"
	"strings"

	"github.com/stephenjlovell/chess/bitmg"
)

func main() {
	fen := flag.String("fen", bitmg.FENStartPos, "FEN string (defaults to initial position)")
	values := flag.String("values", "", "Optional JSON piece value file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("movegen: ")

	pv := bitmg.DefaultPieceValues
	if *values != "" {
		var err error
		if pv, err = bitmg.LoadPieceValuesFile(*values); err != nil {
			log.Fatalf("loading piece values: %v", err)
		}
	}
	pos, err := bitmg.ParseFENWithValues(*fen, pv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}
	side := pos.Side

	fmt.Printf("fen:      %s\n", pos.FEN())
	fmt.Printf("side:     %s\n", side)
	v := pos.Values()
	fmt.Printf("values:   P=%d N=%d B=%d R=%d Q=%d\n", v[bitmg.PieceTypePawn], v[bitmg.PieceTypeKnight],
		v[bitmg.PieceTypeBishop], v[bitmg.PieceTypeRook], v[bitmg.PieceTypeQueen])
	fmt.Printf("material: white %d, black %d\n", pos.Material(bitmg.White), pos.Material(bitmg.Black))
	fmt.Printf("in check: %v\n", pos.InCheck())

	var pinned []string
	for own := pos.Occupied(side); own != 0; own &= own - 1 {
		sq := bitmg.Square(bits.TrailingZeros64(own))
		if pos.IsPinned(sq, side) != bitmg.Unrestricted {
			pinned = append(pinned, sq.String())
		}
	}
	fmt.Printf("pinned:   %s\n", strings.Join(pinned, " "))

	quiets := pos.GenerateQuietMoves(nil, side, pos.Castling)
	caps, promos := pos.GenerateCaptures(nil, nil, side, pos.EnPassant)
	wins, _ := pos.GenerateWinningCaptures(nil, nil, side, pos.EnPassant)
	evPromos, evCaps, evQuiets := pos.GenerateEvasions(nil, nil, nil, side, pos.EnPassant)

	printList("quiet", quiets, false)
	printList("captures", caps, false)
	printList("promotions", promos, false)
	printList("winning", wins, true)
	printList("evasion promotions", evPromos, false)
	printList("evasion captures", evCaps, false)
	printList("evasion quiets", evQuiets, false)

	for _, m := range caps {
		fmt.Printf("see %s %d\n", m, pos.SEE(m.From, m.To, side))
	}
	fmt.Printf("legal: %d\n", len(pos.LegalMoves(nil)))
}

func printList(name string, moves []bitmg.Move, withSee bool) {
	parts := make([]string, 0, len(moves))
	for _, m := range moves {
		if withSee {
			parts = append(parts, fmt.Sprintf("%s(%d)", m, m.See))
			continue
		}
		parts = append(parts, m.String())
	}
	fmt.Printf("%s [%d]: %s\n", name, len(moves), strings.Join(parts, " "))
}
