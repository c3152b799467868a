package bitmg

import "golang.org/x/exp/constraints"

// Direction names one of the eight rays leaving a square.
type Direction uint8

const (
	NW Direction = iota
	NE
	SE
	SW
	North
	East
	South
	West
	NoDirection
)

// Unrestricted is the move mask of a piece that is not pinned.
const Unrestricted uint64 = ^uint64(0)

// Step of each direction as (row, column) deltas.
var directionSteps = [8][2]int{
	NW:    {1, -1},
	NE:    {1, 1},
	SE:    {-1, 1},
	SW:    {-1, -1},
	North: {1, 0},
	East:  {0, 1},
	South: {-1, 0},
	West:  {0, -1},
}

// forward reports whether the ray walks toward higher square indices.
var forward = [8]bool{NW: true, NE: true, North: true, East: true}

var diagonal = [8]bool{NW: true, NE: true, SE: true, SW: true}

// Precomputed per-square masks.
var (
	knightMasks     [64]uint64
	kingMasks       [64]uint64
	pawnAttackMasks [2][64]uint64
	rayMasks        [8][64]uint64
	rowMasks        [8]uint64
	columnMasks     [8]uint64

	// squareDirection[from][to] is the ray from 'from' that contains 'to', or NoDirection.
	squareDirection [64][64]Direction
	// intervening[from][to] holds the squares strictly between two colinear squares.
	intervening [64][64]uint64

	// enPassantMasks[sq] are the squares beside a pawn on sq from which it can be taken en passant.
	enPassantMasks [64]uint64
)

// Castle geometry, indexed by side.
var (
	castleKingIntervening  = [2]uint64{bb(F1) | bb(G1), bb(F8) | bb(G8)}
	castleQueenIntervening = [2]uint64{bb(B1) | bb(C1) | bb(D1), bb(B8) | bb(C8) | bb(D8)}
)

func init() {
	initStepMasks()
	initRays()
	initLines()
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// distance returns the row and column distance between two square indices.
func distance(a, b int) (int, int) {
	return abs(a/8 - b/8), abs(a%8 - b%8)
}

func onBoard(sq int) bool { return sq >= 0 && sq < 64 }

// initStepMasks builds the jump tables. An offset only counts when the landing
// square sits at the expected row/column distance; anything else wrapped a file edge.
func initStepMasks() {
	knightOffsets := [8]int{17, 15, 10, 6, -6, -10, -15, -17}
	kingOffsets := [8]int{9, 8, 7, 1, -1, -7, -8, -9}
	pawnOffsets := [2][2]int{{7, 9}, {-7, -9}}

	for sq := 0; sq < 64; sq++ {
		for _, off := range knightOffsets {
			to := sq + off
			if !onBoard(to) {
				continue
			}
			dr, dc := distance(sq, to)
			if dr+dc == 3 && dr != 0 && dc != 0 {
				knightMasks[sq] |= uint64(1) << uint(to)
			}
		}
		for _, off := range kingOffsets {
			to := sq + off
			if !onBoard(to) {
				continue
			}
			if dr, dc := distance(sq, to); max(dr, dc) == 1 {
				kingMasks[sq] |= uint64(1) << uint(to)
			}
		}
		for side, offs := range pawnOffsets {
			for _, off := range offs {
				to := sq + off
				if !onBoard(to) {
					continue
				}
				if dr, dc := distance(sq, to); dr == 1 && dc == 1 {
					pawnAttackMasks[side][sq] |= uint64(1) << uint(to)
				}
			}
		}
	}

	for i := 0; i < 8; i++ {
		rowMasks[i] = uint64(0xFF) << uint(8*i)
		columnMasks[i] = uint64(0x0101010101010101) << uint(i)
	}
}

// initRays walks each direction one step at a time until the board edge.
func initRays() {
	for d := NW; d < NoDirection; d++ {
		off := directionSteps[d][0]*8 + directionSteps[d][1]
		for sq := 0; sq < 64; sq++ {
			var ray uint64
			for cur, next := sq, sq+off; onBoard(next); cur, next = next, next+off {
				if dr, dc := distance(cur, next); max(dr, dc) != 1 {
					break
				}
				ray |= uint64(1) << uint(next)
			}
			rayMasks[d][sq] = ray
		}
	}
}

func initLines() {
	for from := 0; from < 64; from++ {
		for to := 0; to < 64; to++ {
			squareDirection[from][to] = NoDirection
		}
	}
	for from := 0; from < 64; from++ {
		for d := NW; d < NoDirection; d++ {
			var between uint64
			for ray := rayMasks[d][from]; ray != 0; {
				var to int
				if forward[d] {
					to = popLSB(&ray)
				} else {
					to = popMSB(&ray)
				}
				squareDirection[from][to] = d
				intervening[from][to] = between
				between |= uint64(1) << uint(to)
			}
		}

		sq := uint64(1) << uint(from)
		enPassantMasks[from] = sq<<1&^columnMasks[0] | sq>>1&^columnMasks[7]
	}
}

// Opposite returns the direction pointing the other way along the same line.
func (d Direction) Opposite() Direction {
	switch d {
	case NW:
		return SE
	case NE:
		return SW
	case SE:
		return NW
	case SW:
		return NE
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return NoDirection
}

// DirectionOf returns the ray from 'from' that passes through 'to'.
func DirectionOf(from, to Square) Direction { return squareDirection[from][to] }

// Between returns the squares strictly between two squares on a shared line.
func Between(from, to Square) uint64 { return intervening[from][to] }
