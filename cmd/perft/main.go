package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dylhunn/dragontoothmg"

	"github.com/stephenjlovell/chess/bitmg"
)

func main() {
	fen := flag.String("fen", bitmg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	verify := flag.Bool("verify", false, "Cross-check the node count against dragontoothmg")
	values := flag.String("values", "", "Optional JSON piece value file")
	hashMB := flag.Int("hash", 0, "Share subtree counts through a table of this many MB (0 disables)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("perft: ")

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

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

	if *divide {
		div := bitmg.PerftDivide(pos, *depth)
		var sum uint64
		for _, m := range bitmg.SortedMoves(div) {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Fatalf("creating cpuprofile: %v", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("start cpu profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var table *bitmg.PerftTable
	if *hashMB > 0 {
		table = bitmg.NewPerftTable(*hashMB)
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if table != nil {
			table.Clear()
			totalNodes += bitmg.PerftHashed(pos, *depth, table)
			continue
		}
		totalNodes += bitmg.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	if table != nil {
		log.Printf("table hits %d of %d lookups", table.Hits, table.Lookups)
	}

	if *verify {
		board := dragontoothmg.ParseFen(*fen)
		want := referencePerft(&board, *depth)
		got := totalNodes / uint64(*repeat)
		if got != want {
			fmt.Fprintf(os.Stderr, "mismatch: bitmg %d, dragontoothmg %d\n", got, want)
			os.Exit(1)
		}
		fmt.Println("verified against dragontoothmg")
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Fatalf("creating memprofile: %v", err)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("write heap profile: %v", err)
		}
		_ = f.Close()
	}
}

// referencePerft walks the same tree with dragontoothmg's legal move generator.
func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		undo()
	}
	return nodes
}
