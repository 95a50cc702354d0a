package chesscore

// MoveKind distinguishes the handful of special-cased move shapes a Board
// needs to apply correctly; everything that isn't one of these is a plain
// (possibly capturing) piece move.
type MoveKind int

// The four move kinds. Quiet moves and captures share MoveNormal; Board.MakeMove
// distinguishes them by checking the destination square's occupant.
const (
	MoveNormal MoveKind = iota
	MoveCastle
	MovePromotion
	MoveEnPassant
)

// Move is a single chess move, encoded as a packed 16-bit integer:
//
//	bits 0-5:   destination square
//	bits 6-11:  origin square
//	bits 12-13: promotion piece (Knight=0, Bishop=1, Rook=2, Queen=3)
//	bits 14-15: move kind (see MoveKind)
//
// The zero Move is not a valid move (From() == To() == a1); callers use a
// separate ok bool or sentinel, never the zero value, to mean "no move".
type Move uint16

// NewMove builds a non-promotion move of the given kind.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(int(to) | int(from)<<6 | int(PromoQueen)<<12 | int(kind)<<14)
}

// NewPromotionMove builds a promotion move to the given promotion piece.
// promo must be one of Knight, Bishop, Rook, Queen.
func NewPromotionMove(from, to Square, promo Piece) Move {
	return Move(int(to) | int(from)<<6 | int(promoCode(promo))<<12 | int(MovePromotion)<<14)
}

// Promotion piece codes as packed into a Move; distinct from Piece because
// only four promotable kinds exist and they must fit two bits.
const (
	PromoKnight = 0
	PromoBishop = 1
	PromoRook   = 2
	PromoQueen  = 3
)

func promoCode(p Piece) int {
	switch p {
	case Knight:
		return PromoKnight
	case Bishop:
		return PromoBishop
	case Rook:
		return PromoRook
	default:
		return PromoQueen
	}
}

// promoPiece maps a packed promotion code back to a Piece.
var promoPiece = [4]Piece{Knight, Bishop, Rook, Queen}

// From returns the move's origin square.
func (m Move) From() Square { return Square(m>>6) & 0x3F }

// To returns the move's destination square.
func (m Move) To() Square { return Square(m & 0x3F) }

// Promotion returns the promotion piece if Kind() == MovePromotion; the
// result is meaningless otherwise.
func (m Move) Promotion() Piece { return promoPiece[(m>>12)&0x3] }

// Kind returns the move's MoveKind.
func (m Move) Kind() MoveKind { return MoveKind(m>>14) & 0x3 }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Kind() == MovePromotion }

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool { return m.Kind() == MoveCastle }

// IsEnPassant reports whether m is an en-passant capture.
func (m Move) IsEnPassant() bool { return m.Kind() == MoveEnPassant }

// String renders m in UCI long algebraic notation, e.g. "e2e4", "e7e8q".
func (m Move) String() string { return m.UCI() }

// MoveList is a fixed-capacity, preallocated buffer of moves: the maximum
// number of legal moves in any reachable chess position is 218, so a fixed
// array avoids all heap allocation on the move-generation hot path.
type MoveList struct {
	moves [218]Move
	n     int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// At returns the i'th stored move.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Slice returns the stored moves as a plain slice backed by the list's
// internal array; callers must not retain it past the next mutation.
func (l *MoveList) Slice() []Move { return l.moves[:l.n] }

// reset empties the list for reuse without reallocating.
func (l *MoveList) reset() { l.n = 0 }
