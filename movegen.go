package chesscore

// MoveGen iterates the legal moves of a position. Moves are computed once,
// up front, into a fixed-capacity MoveList using the position's pinned and
// checkers bitboards as masks — no move is ever tried, applied, and
// discarded: a pinned piece's destinations are intersected with the line
// through the king and that piece, and when the king is in check every
// piece's destinations are intersected with the squares that capture the
// checker or block its path to the king. Only castling and en-passant
// still require a direct legality probe (see generateCastlingMoves and
// enPassantExposesCheck below), because neither reduces to a static mask.
//
// Grounded on Bubblyworld-dragontoothmg's GenerateLegalMoves2/
// generatePinnedMoves, which computes the same pin/checker masks but
// re-derives them by walking every enemy slider on each call; here they
// come for free as Board.Pinned/Board.Checkers, computed once when the
// Board itself was constructed, so generation only has to apply the masks.
type MoveGen struct {
	moves MoveList
	mask  Bitboard
	pos   int
	cur   Move
}

// NewLegal returns a MoveGen over every legal move in b.
func NewLegal(b Board) *MoveGen {
	g := &MoveGen{mask: Universe}
	generateLegalMoves(b, &g.moves)
	return g
}

// NewCaptures returns a MoveGen over b's legal moves, filtered to captures.
// En-passant is included even though its destination square is empty,
// since the iterator lets en-passant moves through under any mask and en
// passant captures a piece (just not one standing on the destination).
func NewCaptures(b Board) *MoveGen {
	g := NewLegal(b)
	g.SetIteratorMask(b.ColorCombined(b.SideToMove().Other()))
	return g
}

// SetIteratorMask restricts iteration to moves whose destination square is
// a member of mask (en-passant captures always pass), and rewinds the
// cursor to the start. It does not regenerate moves: the same underlying
// legal-move list is reused, so narrowing and widening the mask are both
// cheap. Moves already returned under an earlier mask are returned again
// if they pass the new one.
func (g *MoveGen) SetIteratorMask(mask Bitboard) {
	g.mask = mask
	g.pos = 0
}

// Next advances to the next move passing the current mask, returning false
// once exhausted.
func (g *MoveGen) Next() bool {
	for g.pos < g.moves.Len() {
		m := g.moves.At(g.pos)
		g.pos++
		if g.mask.Has(m.To()) || m.IsEnPassant() {
			g.cur = m
			return true
		}
	}
	return false
}

// Move returns the move most recently returned by Next.
func (g *MoveGen) Move() Move { return g.cur }

// Len reports how many of the moves not yet returned by Next pass the
// current mask, without consuming the iterator.
func (g *MoveGen) Len() int {
	if g.mask == Universe {
		return g.moves.Len() - g.pos
	}
	n := 0
	for i := g.pos; i < g.moves.Len(); i++ {
		if m := g.moves.At(i); g.mask.Has(m.To()) || m.IsEnPassant() {
			n++
		}
	}
	return n
}

var whiteCastleIndices = [2]int{0, 1}
var blackCastleIndices = [2]int{2, 3}

// generateLegalMoves fills out with every legal move of b, in a fixed
// order: pawns, knights, bishops, rooks, queens, king — each ascending by
// source square then destination square. MoveGen's ordering guarantee
// follows directly from generating in this order and never reordering
// afterward.
func generateLegalMoves(b Board, out *MoveList) {
	us := b.SideToMove()
	them := us.Other()
	kingSq := b.King(us)
	occ := b.Combined()
	own := b.ColorCombined(us)

	checkers := b.Checkers()
	numCheckers := checkers.PopCount()

	if numCheckers >= 2 {
		generateKingMoves(b, out, kingSq, occ, own, them)
		return
	}

	allowDest := Universe
	if numCheckers == 1 {
		checkerSq := checkers.LSB()
		allowDest = Between(kingSq, checkerSq) | checkerSq.Bitboard()
	}

	pinned := b.Pinned()

	generatePawnMoves(b, out, us, occ, own, allowDest, pinned, kingSq, checkers, numCheckers)
	generateKnightMoves(b, out, us, own, allowDest, pinned)
	generateSliderMoves(b, out, Bishop, us, occ, own, allowDest, pinned, kingSq)
	generateSliderMoves(b, out, Rook, us, occ, own, allowDest, pinned, kingSq)
	generateSliderMoves(b, out, Queen, us, occ, own, allowDest, pinned, kingSq)
	generateKingMoves(b, out, kingSq, occ, own, them)
}

func addPawnMove(out *MoveList, from, to Square, us Color) {
	promoRank := rank8BB
	if us == Black {
		promoRank = rank1BB
	}
	if promoRank.Has(to) {
		out.Push(NewPromotionMove(from, to, Knight))
		out.Push(NewPromotionMove(from, to, Bishop))
		out.Push(NewPromotionMove(from, to, Rook))
		out.Push(NewPromotionMove(from, to, Queen))
		return
	}
	out.Push(NewMove(from, to, MoveNormal))
}

// enPassantExposesCheck applies the en-passant capture (both pawn removals
// and the capturing pawn's new placement) to a scratch occupancy and checks
// whether that leaves the king attacked. Unlike every other legality check
// here, this one cannot be reduced to a static mask: removing two pawns
// from the same rank can open a file or, more commonly, a rank for a rook
// or queen that no pin/checker computation anticipated, since neither pawn
// was individually pinned.
func enPassantExposesCheck(b Board, from, epSq, capturedSq Square, us Color) bool {
	them := us.Other()
	occ := b.Combined()&^from.Bitboard()&^capturedSq.Bitboard() | epSq.Bitboard()
	kingSq := b.King(us)
	// The captured pawn is still on b's piece boards; it is gone after the
	// capture, so it must not count as an attacker.
	return b.attackersTo(kingSq, occ, them)&^capturedSq.Bitboard() != Empty
}

func generatePawnMoves(b Board, out *MoveList, us Color, occ, own, allowDest, pinned Bitboard, kingSq Square, checkers Bitboard, numCheckers int) {
	them := us.Other()
	pawns := b.PiecesOfColor(Pawn, us)
	enemy := b.ColorCombined(them)

	pushDir := 8
	startRank := rank2BB
	doublePushRank := rank4BB
	if us == Black {
		pushDir = -8
		startRank = rank7BB
		doublePushRank = rank5BB
	}

	epSq, hasEP := b.EnPassant()
	var epCapturedSq Square
	if hasEP {
		epCapturedSq = epSq - 8
		if us == Black {
			epCapturedSq = epSq + 8
		}
	}

	for bb := pawns; bb != Empty; {
		from := PopLSB(&bb)
		isPinned := pinned.Has(from)
		pinLine := Universe
		if isPinned {
			pinLine = Line(kingSq, from)
		}

		// A pawn has at most four legal destinations (push, double push,
		// two captures; en passant always lands on the same square as one
		// of the two capture destinations). Collect whichever are legal
		// here, then emit them by ascending destination square, so a push
		// and a capture from the same source interleave correctly instead
		// of the push always coming out first.
		var dests [4]Square
		var isEP [4]bool
		n := 0

		to := Square(int(from) + pushDir)
		if to >= SA1 && to <= SH8 && !occ.Has(to) {
			if (!isPinned || pinLine.Has(to)) && allowDest.Has(to) {
				dests[n] = to
				n++
			}
			if startRank.Has(from) {
				to2 := Square(int(from) + 2*pushDir)
				if !occ.Has(to2) && doublePushRank.Has(to2) {
					if (!isPinned || pinLine.Has(to2)) && allowDest.Has(to2) {
						dests[n] = to2
						n++
					}
				}
			}
		}

		attacks := PawnAttacks(from, us) & enemy
		for t := range attacks.Squares {
			if (!isPinned || pinLine.Has(t)) && allowDest.Has(t) {
				dests[n] = t
				n++
			}
		}

		if hasEP && PawnAttacks(from, us).Has(epSq) {
			allowed := allowDest.Has(epSq) || (numCheckers == 1 && checkers.Has(epCapturedSq))
			if (!isPinned || pinLine.Has(epSq)) && allowed {
				if !enPassantExposesCheck(b, from, epSq, epCapturedSq, us) {
					dests[n] = epSq
					isEP[n] = true
					n++
				}
			}
		}

		// Insertion sort: n is at most 4.
		for i := 1; i < n; i++ {
			for j := i; j > 0 && dests[j] < dests[j-1]; j-- {
				dests[j], dests[j-1] = dests[j-1], dests[j]
				isEP[j], isEP[j-1] = isEP[j-1], isEP[j]
			}
		}

		for i := 0; i < n; i++ {
			if isEP[i] {
				out.Push(NewMove(from, dests[i], MoveEnPassant))
			} else {
				addPawnMove(out, from, dests[i], us)
			}
		}
	}
}

// generateKnightMoves skips pinned knights outright rather than
// intersecting with the pin line: a knight's attack set never shares a
// square with the rank/file/diagonal through its own square and the king,
// so the intersection is always empty anyway.
func generateKnightMoves(b Board, out *MoveList, us Color, own, allowDest, pinned Bitboard) {
	knights := b.PiecesOfColor(Knight, us)
	for bb := knights; bb != Empty; {
		from := PopLSB(&bb)
		if pinned.Has(from) {
			continue
		}
		targets := KnightAttacks(from) &^ own & allowDest
		for t := range targets.Squares {
			out.Push(NewMove(from, t, MoveNormal))
		}
	}
}

func sliderAttacks(piece Piece, sq Square, occ Bitboard) Bitboard {
	switch piece {
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	default:
		return QueenAttacks(sq, occ)
	}
}

func generateSliderMoves(b Board, out *MoveList, piece Piece, us Color, occ, own, allowDest, pinned Bitboard, kingSq Square) {
	pieces := b.PiecesOfColor(piece, us)
	for bb := pieces; bb != Empty; {
		from := PopLSB(&bb)
		targets := sliderAttacks(piece, from, occ) &^ own & allowDest
		if pinned.Has(from) {
			targets &= Line(kingSq, from)
		}
		for t := range targets.Squares {
			out.Push(NewMove(from, t, MoveNormal))
		}
	}
}

func generateKingMoves(b Board, out *MoveList, kingSq Square, occ, own Bitboard, them Color) {
	occWithoutKing := occ &^ kingSq.Bitboard()
	targets := KingAttacks(kingSq) &^ own
	for t := range targets.Squares {
		if b.attackersTo(t, occWithoutKing, them) == Empty {
			out.Push(NewMove(kingSq, t, MoveNormal))
		}
	}
	if b.Checkers() == Empty {
		generateCastlingMoves(b, out, kingSq, occ, them)
	}
}

func generateCastlingMoves(b Board, out *MoveList, kingSq Square, occ Bitboard, them Color) {
	us := them.Other()
	indices := whiteCastleIndices
	if us == Black {
		indices = blackCastleIndices
	}
	for _, idx := range indices {
		if b.CastleRights()&castlingRights[idx] == 0 {
			continue
		}
		if occ&castlingKingPath[idx] != 0 {
			continue
		}
		blocked := false
		for sq := range castlingKingTravel[idx].Squares {
			if b.attackersTo(sq, occ, them) != Empty {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		out.Push(NewMove(kingSq, castlingKingTo[idx], MoveCastle))
	}
}
