package bitmg

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Move buffers are reused per ply.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	if pc.bufs[depth] == nil {
		pc.bufs[depth] = make([]Move, 0, 256)
	}
	return pc.bufs[depth][:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	moves := p.LegalMoves(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := p.Make(m)
		nodes += perftRec(p, depth-1, pc)
		p.Unmake(m, u)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move, keyed by the
// move's coordinate notation.
func PerftDivide(p *Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves(nil) {
		u := p.Make(m)
		result[m.String()] = Perft(p, depth-1)
		p.Unmake(m, u)
	}
	return result
}

// SortedMoves returns the keys of a divide map in lexical order.
func SortedMoves(divide map[string]uint64) []string {
	keys := maps.Keys(divide)
	slices.Sort(keys)
	return keys
}
