package chesscore

// Board is an immutable chess position: the full piece placement, side to
// move, castling rights, en-passant target, and a handful of fields cached
// at construction time so move generation never has to recompute them from
// scratch.
//
// Board is a value type, not a pointer type. MakeMove takes a Board by value
// and returns a new Board by value; the compiler's ordinary copy-on-call
// semantics give the "every move produces a new position, the old one is
// untouched" guarantee for free, without an explicit Clone step.
type Board struct {
	pieces [6]Bitboard // indexed by Piece, union of both colors
	colors [2]Bitboard // indexed by Color

	combined Bitboard

	sideToMove   Color
	castleRights CastleRights
	epSquare     Square

	// pinned holds, from the side to move's perspective, the side to move's
	// own pieces that are absolutely pinned to their king. checkers holds
	// the enemy pieces currently giving check. Both are computed once, when
	// the Board is constructed, so MoveGen never walks rays itself.
	pinned   Bitboard
	checkers Bitboard

	hash     uint64
	pawnHash uint64

	halfmoveClock  int
	fullmoveNumber int
}

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Default returns the standard chess starting position.
func Default() Board {
	b, err := FromFEN(StartFEN)
	if err != nil {
		panic("chesscore: malformed built-in starting FEN: " + err.Error())
	}
	return b
}

// SideToMove returns the color to move.
func (b Board) SideToMove() Color { return b.sideToMove }

// CastleRights returns the castling rights still available to both sides.
func (b Board) CastleRights() CastleRights { return b.castleRights }

// EnPassant returns the en-passant target square and true, or
// (SquareNone, false) if no en-passant capture is available.
func (b Board) EnPassant() (Square, bool) {
	if b.epSquare == SquareNone {
		return SquareNone, false
	}
	return b.epSquare, true
}

// Checkers returns the enemy pieces currently giving check to the side to
// move's king.
func (b Board) Checkers() Bitboard { return b.checkers }

// Pinned returns the side to move's own pieces that are absolutely pinned.
func (b Board) Pinned() Bitboard { return b.pinned }

// Hash returns the Zobrist hash of the full position.
func (b Board) Hash() uint64 { return b.hash }

// PawnHash returns the Zobrist hash over pawns and kings only.
func (b Board) PawnHash() uint64 { return b.pawnHash }

// HalfmoveClock returns the number of halfmoves since the last capture or
// pawn move, for the fifty-move rule.
func (b Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the current fullmove number (starts at 1,
// incremented after Black's move).
func (b Board) FullmoveNumber() int { return b.fullmoveNumber }

// Combined returns the occupancy of every piece on the board.
func (b Board) Combined() Bitboard { return b.combined }

// ColorCombined returns the occupancy of every piece of the given color.
func (b Board) ColorCombined(c Color) Bitboard { return b.colors[c] }

// Pieces returns the occupancy of every piece of the given kind, both
// colors combined.
func (b Board) Pieces(p Piece) Bitboard { return b.pieces[p] }

// PiecesOfColor returns the occupancy of pieces of the given kind and color.
func (b Board) PiecesOfColor(p Piece, c Color) Bitboard { return b.pieces[p] & b.colors[c] }

// King returns the square of the given color's king, or SquareNone if (in a
// BoardBuilder-constructed board that has not yet been validated) it has
// none.
func (b Board) King(c Color) Square { return b.PiecesOfColor(King, c).LSB() }

// PieceOn returns the piece occupying sq, or NoPiece if sq is empty.
func (b Board) PieceOn(sq Square) Piece {
	bb := sq.Bitboard()
	if b.combined&bb == 0 {
		return NoPiece
	}
	for p := Pawn; p <= King; p++ {
		if b.pieces[p]&bb != 0 {
			return p
		}
	}
	return NoPiece
}

// ColorOn returns the color of the piece occupying sq, and true, or
// (White, false) if sq is empty.
func (b Board) ColorOn(sq Square) (Color, bool) {
	bb := sq.Bitboard()
	if b.colors[White]&bb != 0 {
		return White, true
	}
	if b.colors[Black]&bb != 0 {
		return Black, true
	}
	return White, false
}

// IsCheck reports whether the side to move is in check.
func (b Board) IsCheck() bool { return b.checkers != Empty }

// attackersTo returns every piece of color by that attacks sq, given the
// occupancy occ (passed explicitly so callers can probe hypothetical
// occupancies, e.g. "as if this blocker were removed").
func (b Board) attackersTo(sq Square, occ Bitboard, by Color) Bitboard {
	pawns := PawnAttacks(sq, by.Other()) & b.PiecesOfColor(Pawn, by)
	knights := KnightAttacks(sq) & b.PiecesOfColor(Knight, by)
	kings := KingAttacks(sq) & b.PiecesOfColor(King, by)
	diag := b.PiecesOfColor(Bishop, by) | b.PiecesOfColor(Queen, by)
	ortho := b.PiecesOfColor(Rook, by) | b.PiecesOfColor(Queen, by)
	bishops := BishopAttacks(sq, occ) & diag
	rooks := RookAttacks(sq, occ) & ortho
	return pawns | knights | kings | bishops | rooks
}

// AttackersTo returns every piece, of either color, that attacks sq on the
// current occupancy.
func (b Board) AttackersTo(sq Square) Bitboard {
	return b.attackersTo(sq, b.combined, White) | b.attackersTo(sq, b.combined, Black)
}

// pinnedAlongDir walks from kingSq one step at a time in direction dir and
// reports the side-to-move piece pinned in that direction, if any: exactly
// one own piece followed (with nothing else in between) by an enemy slider
// of a kind that attacks along dir.
func pinnedAlongDir(kingSq Square, dir int, occ, ownPieces, enemySliders Bitboard) Bitboard {
	cur := kingSq
	candidate := SquareNone
	for {
		step := rayStep(cur, dir)
		if step == Empty {
			return Empty
		}
		sq := step.LSB()
		if step&occ == 0 {
			cur = sq
			continue
		}
		if candidate == SquareNone {
			if step&ownPieces == 0 {
				// First blocker belongs to the enemy: the ray is blocked
				// here, no pin is possible beyond it.
				return Empty
			}
			candidate = sq
			cur = sq
			continue
		}
		if step&enemySliders != 0 {
			return candidate.Bitboard()
		}
		return Empty
	}
}

var rookDirs = [4]int{dirNorth, dirSouth, dirEast, dirWest}
var bishopDirs = [4]int{dirNorthEast, dirNorthWest, dirSouthEast, dirSouthWest}

// computeCheckersAndPinned recomputes the checkers and pinned bitboards for
// the side to move from scratch. Called once, at construction time, by
// BoardBuilder.Build and by MakeMove on the resulting position (which has
// flipped to the other side to move).
func computeCheckersAndPinned(b *Board) (checkers, pinned Bitboard) {
	us := b.sideToMove
	them := us.Other()
	kingSq := b.King(us)

	checkers = b.attackersTo(kingSq, b.combined, them)

	ownPieces := b.colors[us]
	enemyOrtho := b.PiecesOfColor(Rook, them) | b.PiecesOfColor(Queen, them)
	enemyDiag := b.PiecesOfColor(Bishop, them) | b.PiecesOfColor(Queen, them)

	for _, dir := range rookDirs {
		pinned |= pinnedAlongDir(kingSq, dir, b.combined, ownPieces, enemyOrtho)
	}
	for _, dir := range bishopDirs {
		pinned |= pinnedAlongDir(kingSq, dir, b.combined, ownPieces, enemyDiag)
	}
	return checkers, pinned
}

// place adds a piece to sq and folds the change into both Zobrist hashes.
func (b *Board) place(p Piece, c Color, sq Square) {
	bb := sq.Bitboard()
	b.pieces[p] |= bb
	b.colors[c] |= bb
	b.combined |= bb
	key := pieceKeys[pieceKeyIndex(p, c)][sq]
	b.hash ^= key
	if p == Pawn || p == King {
		b.pawnHash ^= key
	}
}

// remove takes a piece off sq and folds the change into both Zobrist
// hashes. XOR is its own inverse, so removing uses the same key as placing.
func (b *Board) remove(p Piece, c Color, sq Square) {
	bb := sq.Bitboard()
	b.pieces[p] &^= bb
	b.colors[c] &^= bb
	b.combined &^= bb
	key := pieceKeys[pieceKeyIndex(p, c)][sq]
	b.hash ^= key
	if p == Pawn || p == King {
		b.pawnHash ^= key
	}
}

func castleIndexForDest(to Square) int {
	switch to {
	case SG1:
		return 0
	case SC1:
		return 1
	case SG8:
		return 2
	case SC8:
		return 3
	}
	return -1
}

// homeCastleRightsLost returns the castle rights that must be revoked
// because a piece left or a rook was captured on sq.
func homeCastleRightsLost(sq Square) CastleRights {
	switch sq {
	case SA1:
		return WhiteQueenside
	case SH1:
		return WhiteKingside
	case SA8:
		return BlackQueenside
	case SH8:
		return BlackKingside
	case SE1:
		return WhiteKingside | WhiteQueenside
	case SE8:
		return BlackKingside | BlackQueenside
	}
	return NoCastleRights
}

// MakeMove applies m, a move already known to be legal in b, and returns the
// resulting position. b itself is never mutated. Prefer MakeMoveChecked at
// any boundary where m's legality has not already been established by
// MoveGen.
func (b Board) MakeMove(m Move) Board {
	nb := b
	us := b.sideToMove
	them := us.Other()
	from := m.From()
	to := m.To()
	moving := b.PieceOn(from)

	capture := false

	switch m.Kind() {
	case MoveCastle:
		idx := castleIndexForDest(to)
		nb.remove(King, us, from)
		nb.place(King, us, to)
		nb.remove(Rook, us, castlingRookFrom[idx])
		nb.place(Rook, us, castlingRookTo[idx])
	case MoveEnPassant:
		nb.remove(Pawn, us, from)
		nb.place(Pawn, us, to)
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		nb.remove(Pawn, them, capSq)
		capture = true
	case MovePromotion:
		if captured := b.PieceOn(to); captured != NoPiece {
			nb.remove(captured, them, to)
			capture = true
		}
		nb.remove(Pawn, us, from)
		nb.place(m.Promotion(), us, to)
	default:
		if captured := b.PieceOn(to); captured != NoPiece {
			nb.remove(captured, them, to)
			capture = true
		}
		nb.remove(moving, us, from)
		nb.place(moving, us, to)
	}

	nb.castleRights &^= homeCastleRightsLost(from) | homeCastleRightsLost(to)
	nb.hash ^= castleKeys[b.castleRights]
	nb.hash ^= castleKeys[nb.castleRights]

	nb.hash ^= epKey(b.epSquare)
	nb.epSquare = SquareNone
	if moving == Pawn {
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			nb.epSquare = Square((int(from) + int(to)) / 2)
		}
	}
	nb.hash ^= epKey(nb.epSquare)

	if moving == Pawn || capture {
		nb.halfmoveClock = 0
	} else {
		nb.halfmoveClock = b.halfmoveClock + 1
	}
	if us == Black {
		nb.fullmoveNumber = b.fullmoveNumber + 1
	}

	nb.sideToMove = them
	nb.hash ^= sideToMoveKey

	nb.checkers, nb.pinned = computeCheckersAndPinned(&nb)
	return nb
}

// Legal reports whether m is one of b's legal moves.
func (b Board) Legal(m Move) bool {
	gen := NewLegal(b)
	for gen.Next() {
		if gen.Move() == m {
			return true
		}
	}
	return false
}

// MakeMoveChecked applies m after verifying it is one of b's legal moves,
// returning an IllegalMove error if not. MakeMove is the fast path used
// internally once a move is known-legal (e.g. straight out of a MoveGen
// iteration); use MakeMoveChecked at any boundary accepting moves from an
// untrusted source (UCI input, a notation parse).
func (b Board) MakeMoveChecked(m Move) (Board, error) {
	if !b.Legal(m) {
		return b, &Error{Kind: ErrIllegalMove, Message: "move " + m.String() + " is not legal in this position"}
	}
	return b.MakeMove(m), nil
}

// IsCheckmate reports whether the side to move has no legal moves and is in
// check.
func (b Board) IsCheckmate() bool {
	return b.checkers != Empty && !NewLegal(b).Next()
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (b Board) IsStalemate() bool {
	return b.checkers == Empty && !NewLegal(b).Next()
}

// InsufficientMaterial reports whether neither side has enough material to
// deliver checkmate by any sequence of legal moves (bare kings, king and
// minor vs king, or king and minor vs king and minor of opposite-colored
// bishops on unlike-colored squares is treated conservatively as
// sufficient).
func (b Board) InsufficientMaterial() bool {
	if b.pieces[Pawn]|b.pieces[Rook]|b.pieces[Queen] != Empty {
		return false
	}
	minorCount := b.pieces[Knight].PopCount() + b.pieces[Bishop].PopCount()
	if minorCount <= 1 {
		return true
	}
	if b.pieces[Knight] != Empty {
		return false
	}
	// Only bishops remain beyond the kings: insufficient iff every bishop
	// sits on the same square color.
	bishops := b.pieces[Bishop]
	lightSquares := Bitboard(0x55AA55AA55AA55AA)
	onLight := bishops & lightSquares
	onDark := bishops &^ lightSquares
	return onLight == Empty || onDark == Empty
}
