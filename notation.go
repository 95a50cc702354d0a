package chesscore

import (
	"strconv"
	"strings"
)

var promoLettersLower = [4]byte{'n', 'b', 'r', 'q'}

// UCI renders m in long algebraic notation, e.g. "e2e4", "e7e8q".
func (m Move) UCI() string {
	var sb strings.Builder
	sb.Grow(5)
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.IsPromotion() {
		sb.WriteByte(promoLettersLower[(m>>12)&0x3])
	}
	return sb.String()
}

// SAN renders m in Standard Algebraic Notation relative to the position b
// it is played in, including check ('+') and checkmate ('#') suffixes. b
// must be the position m is about to be applied to, not the position
// after.
func (m Move) SAN(b Board) string {
	if m.IsCastle() {
		san := "O-O-O"
		if m.To() == SG1 || m.To() == SG8 {
			san = "O-O"
		}
		next := b.MakeMove(m)
		switch {
		case next.IsCheckmate():
			return san + "#"
		case next.IsCheck():
			return san + "+"
		}
		return san
	}

	from, to := m.From(), m.To()
	piece := b.PieceOn(from)
	isCapture := b.PieceOn(to) != NoPiece || m.IsEnPassant()

	var sb strings.Builder
	sb.Grow(7)

	if piece != Pawn {
		sb.WriteByte(pieceLetters[piece])
		sb.WriteString(disambiguation(b, m, piece))
	}
	if isCapture {
		if piece == Pawn {
			sb.WriteByte("abcdefgh"[from.File()])
		}
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(pieceLetters[m.Promotion()])
	}

	next := b.MakeMove(m)
	switch {
	case next.IsCheckmate():
		sb.WriteByte('#')
	case next.IsCheck():
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the file, rank, or full square needed to
// distinguish m from other legal moves of the same piece kind to the same
// destination, or "" if no other legal move shares destination and kind.
func disambiguation(b Board, m Move, piece Piece) string {
	gen := NewLegal(b)
	sameFile, sameRank, other := false, false, false
	for gen.Next() {
		cand := gen.Move()
		if cand == m || cand.To() != m.To() {
			continue
		}
		if b.PieceOn(cand.From()) != piece {
			continue
		}
		other = true
		if cand.From().File() == m.From().File() {
			sameFile = true
		}
		if cand.From().Rank() == m.From().Rank() {
			sameRank = true
		}
	}
	if !other {
		return ""
	}
	if !sameFile {
		return string("abcdefgh"[m.From().File()])
	}
	if !sameRank {
		return strconv.Itoa(int(m.From().Rank()) + 1)
	}
	return m.From().String()
}
