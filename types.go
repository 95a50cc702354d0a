package chesscore

// Square is a board square, 0 (a1) to 63 (h8), file varying fastest.
type Square int

// SquareNone is a sentinel for "no square" (e.g. no en-passant target).
const SquareNone Square = -1

// Square indices, a1 through h8.
const (
	SA1 Square = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// File returns the square's file, 0 (a) through 7 (h).
func (s Square) File() File { return File(s & 7) }

// Rank returns the square's rank, 0 (rank 1) through 7 (rank 8).
func (s Square) Rank() Rank { return Rank(s >> 3) }

// Bitboard returns the single-square bitboard for s.
func (s Square) Bitboard() Bitboard { return 1 << uint(s) }

// String returns the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < SA1 || s > SH8 {
		return "-"
	}
	return squareNames[s]
}

var squareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// squareFromString parses algebraic notation ("e4") into a Square, or
// SquareNone plus false if str does not name a valid square.
func squareFromString(str string) (Square, bool) {
	if len(str) != 2 {
		return SquareNone, false
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return SquareNone, false
	}
	return Square(int(rank-'1')*8 + int(file-'a')), true
}

// File is a board file, 0 (a) through 7 (h).
type File int

// File and rank masks. The not* masks hold the squares NOT on that file or
// rank and are used to mask off wraparound in leaper/slider shifts; the
// rank*BB masks hold the squares on that rank.
const (
	notAFile  Bitboard = 0xFEFEFEFEFEFEFEFE
	notHFile  Bitboard = 0x7F7F7F7F7F7F7F7F
	notABFile Bitboard = 0xFCFCFCFCFCFCFCFC
	notGHFile Bitboard = 0x3F3F3F3F3F3F3F3F
	not1Rank  Bitboard = 0xFFFFFFFFFFFFFF00
	not8Rank  Bitboard = 0x00FFFFFFFFFFFFFF
	rank1BB   Bitboard = 0xFF
	rank2BB   Bitboard = 0xFF00
	rank4BB   Bitboard = 0xFF000000
	rank5BB   Bitboard = 0xFF00000000
	rank7BB   Bitboard = 0xFF000000000000
	rank8BB   Bitboard = 0xFF00000000000000
)

// Rank is a board rank, 0 (rank 1) through 7 (rank 8).
type Rank int

// Color identifies a side to move or piece owner.
type Color int

// The two colors.
const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece identifies a kind of chess piece, independent of color.
type Piece int

// The six piece kinds.
const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPiece = -1
)

var pieceLetters = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

func (p Piece) String() string {
	if p < Pawn || p > King {
		return ""
	}
	return string(pieceLetters[p])
}

// CastleRights encodes, per color, whether kingside and/or queenside
// castling is still available. Two bits per color:
//
//	bit 0: White kingside   bit 1: White queenside
//	bit 2: Black kingside   bit 3: Black queenside
type CastleRights int

// Castling-right bitmask constants.
const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastleRights  CastleRights = 0
	AllCastleRights              = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// kingsideRight and queensideRight index by Color.
var kingsideRight = [2]CastleRights{WhiteKingside, BlackKingside}
var queensideRight = [2]CastleRights{WhiteQueenside, BlackQueenside}

// HasKingside reports whether c retains the kingside right for color side.
func (c CastleRights) HasKingside(side Color) bool { return c&kingsideRight[side] != 0 }

// HasQueenside reports whether c retains the queenside right for color side.
func (c CastleRights) HasQueenside(side Color) bool { return c&queensideRight[side] != 0 }

// pieceWeights gives the conventional material value of each piece kind,
// indexed by Piece; the King entry is 0. Board.InsufficientMaterial does not
// consult it.
var pieceWeights = [6]int{1, 3, 3, 5, 9, 0}
