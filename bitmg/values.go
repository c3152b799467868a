package bitmg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PieceValues maps a PieceType to its material weight. Index 0 is unused.
type PieceValues [7]int

// DefaultPieceValues approximates standard piece weights in centipawns. The
// king is large enough that no material swing can outweigh it.
var DefaultPieceValues = PieceValues{
	PieceTypePawn:   100,
	PieceTypeKnight: 320,
	PieceTypeBishop: 333,
	PieceTypeRook:   510,
	PieceTypeQueen:  880,
	PieceTypeKing:   100000,
}

type pieceValuesJSON struct {
	Pawn   *int `json:"pawn"`
	Knight *int `json:"knight"`
	Bishop *int `json:"bishop"`
	Rook   *int `json:"rook"`
	Queen  *int `json:"queen"`
	King   *int `json:"king"`
}

// LoadPieceValues decodes a JSON object such as {"pawn":100,"knight":300}.
// Missing keys keep their default value.
func LoadPieceValues(r io.Reader) (PieceValues, error) {
	var raw pieceValuesJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return PieceValues{}, fmt.Errorf("decode piece values: %w", err)
	}
	v := DefaultPieceValues
	for pt, p := range map[PieceType]*int{
		PieceTypePawn:   raw.Pawn,
		PieceTypeKnight: raw.Knight,
		PieceTypeBishop: raw.Bishop,
		PieceTypeRook:   raw.Rook,
		PieceTypeQueen:  raw.Queen,
		PieceTypeKing:   raw.King,
	} {
		if p == nil {
			continue
		}
		if *p <= 0 {
			return PieceValues{}, fmt.Errorf("piece value for type %d must be positive, got %d", pt, *p)
		}
		v[pt] = *p
	}
	return v, nil
}

// LoadPieceValuesFile reads a JSON value table from disk.
func LoadPieceValuesFile(path string) (PieceValues, error) {
	f, err := os.Open(path)
	if err != nil {
		return PieceValues{}, err
	}
	defer f.Close()
	return LoadPieceValues(f)
}
