package bitmg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN wraps every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

const pieceChars = " PNBRQK  pnbrqk"

// pieceFromChar converts a FEN character to the corresponding Piece.
func pieceFromChar(ch rune) Piece {
	if ch == ' ' {
		return NoPiece
	}
	if i := strings.IndexRune(pieceChars, ch); i > 0 {
		return Piece(i)
	}
	return NoPiece
}

// charFromPiece converts a Piece to its FEN character.
func charFromPiece(p Piece) rune {
	if int(p) < len(pieceChars) && p != NoPiece {
		return rune(pieceChars[p])
	}
	return '?'
}

// ParseFEN builds a position from a FEN string using DefaultPieceValues. The
// clock fields are optional.
func ParseFEN(fen string) (*Position, error) {
	return ParseFENWithValues(fen, DefaultPieceValues)
}

// ParseFENWithValues is ParseFEN with an explicit piece value table.
func ParseFENWithValues(fen string, values PieceValues) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}

	pos := &Position{
		Board:     Board{values: values},
		EnPassant: NoSquare,
		Fullmove:  1,
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: expected 8 rows, got %d", ErrInvalidFEN, len(rows))
	}
	for i, rowStr := range rows {
		row := 7 - i
		col := 0
		for _, ch := range rowStr {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
			if col >= 8 {
				return nil, fmt.Errorf("%w: too many squares in row %d", ErrInvalidFEN, row+1)
			}
			pos.AddPiece(Square(row*8+col), piece)
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: row %d does not have 8 columns", ErrInvalidFEN, row+1)
		}
	}

	switch fields[1] {
	case "w":
		pos.Side = White
	case "b":
		pos.Side = Black
	default:
		return nil, fmt.Errorf("%w: side to move must be 'w' or 'b'", ErrInvalidFEN)
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				pos.Castling |= CastlingWhiteK
			case 'Q':
				pos.Castling |= CastlingWhiteQ
			case 'k':
				pos.Castling |= CastlingBlackK
			case 'q':
				pos.Castling |= CastlingBlackQ
			default:
				return nil, fmt.Errorf("%w: invalid castling rights character %q", ErrInvalidFEN, ch)
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant: %v", ErrInvalidFEN, err)
		}
		pos.EnPassant = sq
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("%w: halfmove clock is not a number", ErrInvalidFEN)
		}
		pos.Halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("%w: fullmove number is not a number", ErrInvalidFEN)
		}
		pos.Fullmove = n
	}
	return pos, nil
}

// FEN renders the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := p.squares[row*8+col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(piece))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if p.Side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.Castling == 0 {
		sb.WriteByte('-')
	}
	for i, ch := range "KQkq" {
		if p.Castling&(1<<uint(i)) != 0 {
			sb.WriteRune(ch)
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Halfmove))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.Fullmove))
	return sb.String()
}
