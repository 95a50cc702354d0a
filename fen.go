package chesscore

import (
	"strconv"
	"strings"
)

// FromFEN parses a FEN string into a Board. Unlike the teacher's ParseFEN,
// which panics on malformed input, this returns a descriptive error: FEN
// frequently arrives from outside the process (a UCI "position fen ..."
// command, a puzzle database, a user-pasted string), so a boundary
// function here must report failure rather than crash the caller.
func FromFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Board{}, &Error{Kind: ErrInvalidFEN, Message: "FEN must have exactly 6 space-separated fields"}
	}

	bd := NewBoardBuilder()

	if err := parsePlacement(bd, fields[0]); err != nil {
		return Board{}, err
	}

	switch fields[1] {
	case "w":
		bd.SetSideToMove(White)
	case "b":
		bd.SetSideToMove(Black)
	default:
		return Board{}, &Error{Kind: ErrInvalidFEN, Message: "active color field must be 'w' or 'b'"}
	}

	rights, err := parseCastleRights(fields[2])
	if err != nil {
		return Board{}, err
	}
	bd.SetCastleRights(rights)

	if fields[3] == "-" {
		bd.SetEnPassant(SquareNone)
	} else {
		sq, ok := squareFromString(fields[3])
		if !ok {
			return Board{}, &Error{Kind: ErrInvalidSquare, Message: "invalid en passant target square " + fields[3]}
		}
		bd.SetEnPassant(sq)
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Board{}, &Error{Kind: ErrInvalidFEN, Message: "invalid halfmove clock field"}
	}
	bd.SetHalfmoveClock(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Board{}, &Error{Kind: ErrInvalidFEN, Message: "invalid fullmove number field"}
	}
	bd.SetFullmoveNumber(fullmove)

	return bd.Build()
}

func parsePlacement(bd *BoardBuilder, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &Error{Kind: ErrInvalidFEN, Message: "piece placement must have 8 ranks"}
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return &Error{Kind: ErrInvalidFEN, Message: "rank has more than 8 files"}
			}
			piece, color, ok := pieceFromFEN(ch)
			if !ok {
				return &Error{Kind: ErrInvalidFEN, Message: "unrecognized piece letter " + string(ch)}
			}
			sq := Square(rank*8 + file)
			bd.SetPiece(piece, color, sq)
			file++
		}
		if file != 8 {
			return &Error{Kind: ErrInvalidFEN, Message: "rank does not sum to 8 files"}
		}
	}
	return nil
}

func pieceFromFEN(ch byte) (Piece, Color, bool) {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
	}
	switch ch {
	case 'P', 'p':
		return Pawn, color, true
	case 'N', 'n':
		return Knight, color, true
	case 'B', 'b':
		return Bishop, color, true
	case 'R', 'r':
		return Rook, color, true
	case 'Q', 'q':
		return Queen, color, true
	case 'K', 'k':
		return King, color, true
	}
	return NoPiece, White, false
}

func parseCastleRights(field string) (CastleRights, error) {
	if field == "-" {
		return NoCastleRights, nil
	}
	var rights CastleRights
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return NoCastleRights, &Error{Kind: ErrInvalidFEN, Message: "invalid castle rights field"}
		}
	}
	return rights, nil
}

var pieceFENLetters = [6][2]byte{
	Pawn:   {'P', 'p'},
	Knight: {'N', 'n'},
	Bishop: {'B', 'b'},
	Rook:   {'R', 'r'},
	Queen:  {'Q', 'q'},
	King:   {'K', 'k'},
}

// FEN serializes b into Forsyth-Edwards Notation.
func (b Board) FEN() string {
	var sb strings.Builder
	sb.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := b.PieceOn(sq)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			color, _ := b.ColorOn(sq)
			sb.WriteByte(pieceFENLetters[p][color])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if b.castleRights == NoCastleRights {
		sb.WriteByte('-')
	} else {
		if b.castleRights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castleRights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castleRights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castleRights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if b.epSquare == SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.String())
	}
	sb.WriteByte(' ')

	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))

	return sb.String()
}
