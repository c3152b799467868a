package bitmg

import "math/bits"

// scanForward returns the ray from sq in direction d, cut after the first
// blocker. Only valid for directions that increase the square index.
func scanForward(sq int, d Direction, occ uint64) uint64 {
	ray := rayMasks[d][sq]
	if blockers := ray & occ; blockers != 0 {
		ray &^= rayMasks[d][bits.TrailingZeros64(blockers)]
	}
	return ray
}

// scanReverse is the mirror of scanForward for directions that decrease the square index.
func scanReverse(sq int, d Direction, occ uint64) uint64 {
	ray := rayMasks[d][sq]
	if blockers := ray & occ; blockers != 0 {
		ray &^= rayMasks[d][63-bits.LeadingZeros64(blockers)]
	}
	return ray
}

func rayAttacks(sq int, d Direction, occ uint64) uint64 {
	if forward[d] {
		return scanForward(sq, d, occ)
	}
	return scanReverse(sq, d, occ)
}

// nearest returns the first occupied square from sq along d, or -1.
func nearest(sq int, d Direction, occ uint64) int {
	blockers := rayMasks[d][sq] & occ
	if blockers == 0 {
		return -1
	}
	if forward[d] {
		return bits.TrailingZeros64(blockers)
	}
	return 63 - bits.LeadingZeros64(blockers)
}

// BishopAttacks returns the diagonal attack set of a slider on sq. The first
// blocker on each ray is included.
func BishopAttacks(sq Square, occ uint64) uint64 {
	s := int(sq)
	return scanForward(s, NW, occ) | scanForward(s, NE, occ) |
		scanReverse(s, SE, occ) | scanReverse(s, SW, occ)
}

// RookAttacks returns the orthogonal attack set of a slider on sq.
func RookAttacks(sq Square, occ uint64) uint64 {
	s := int(sq)
	return scanForward(s, North, occ) | scanForward(s, East, occ) |
		scanReverse(s, South, occ) | scanReverse(s, West, occ)
}

func QueenAttacks(sq Square, occ uint64) uint64 {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}
