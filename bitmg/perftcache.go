package bitmg

import "unsafe"

const perftClusterSize = 4

// PerftTable caches subtree node counts by position key and depth. Entries are
// grouped in clusters of four; a full cluster gives up its shallowest entry.
type PerftTable struct {
	entries      []perftEntry
	clusterCount uint64

	Hits    uint64
	Lookups uint64
}

type perftEntry struct {
	hash  uint64
	nodes uint64
	depth int32
}

// NewPerftTable sizes a table to roughly sizeMB megabytes.
func NewPerftTable(sizeMB int) *PerftTable {
	entrySize := uint64(unsafe.Sizeof(perftEntry{}))
	clusterBytes := entrySize * perftClusterSize
	clusterCount := uint64(sizeMB) * 1024 * 1024 / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &PerftTable{
		entries:      make([]perftEntry, clusterCount*perftClusterSize),
		clusterCount: clusterCount,
	}
}

func (pt *PerftTable) lookup(hash uint64, depth int) (uint64, bool) {
	pt.Lookups++
	base := int(hash%pt.clusterCount) * perftClusterSize
	for i := 0; i < perftClusterSize; i++ {
		e := &pt.entries[base+i]
		if e.hash == hash && int(e.depth) == depth {
			pt.Hits++
			return e.nodes, true
		}
	}
	return 0, false
}

func (pt *PerftTable) store(hash uint64, depth int, nodes uint64) {
	base := int(hash%pt.clusterCount) * perftClusterSize
	target := -1

	// Same position and depth, then an empty slot.
	for i := 0; i < perftClusterSize; i++ {
		e := &pt.entries[base+i]
		if e.hash == hash && int(e.depth) == depth {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < perftClusterSize; i++ {
			if pt.entries[base+i].depth == 0 {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
		for i := 1; i < perftClusterSize; i++ {
			if pt.entries[base+i].depth < pt.entries[target].depth {
				target = base + i
			}
		}
	}
	pt.entries[target] = perftEntry{hash: hash, nodes: nodes, depth: int32(depth)}
}

// Clear empties the table and resets the counters.
func (pt *PerftTable) Clear() {
	for i := range pt.entries {
		pt.entries[i] = perftEntry{}
	}
	pt.Hits, pt.Lookups = 0, 0
}

// PerftHashed is Perft with subtrees shared through pt. Counts agree with Perft
// as long as no two positions reached collide on the full 64-bit key.
func PerftHashed(p *Position, depth int, pt *PerftTable) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftHashedRec(p, depth, &pc, pt)
}

func perftHashedRec(p *Position, depth int, pc *perftCtx, pt *PerftTable) uint64 {
	hash := p.Hash()
	if depth > 1 {
		if nodes, ok := pt.lookup(hash, depth); ok {
			return nodes
		}
	}
	moves := p.LegalMoves(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := p.Make(m)
		nodes += perftHashedRec(p, depth-1, pc, pt)
		p.Unmake(m, u)
	}
	pt.store(hash, depth, nodes)
	return nodes
}
