package chesscore

import "testing"

func defaultBuilder() *BoardBuilder {
	bd := NewBoardBuilder()
	for _, sq := range []Square{SA2, SB2, SC2, SD2, SE2, SF2, SG2, SH2} {
		bd.SetPiece(Pawn, White, sq)
	}
	for _, sq := range []Square{SA7, SB7, SC7, SD7, SE7, SF7, SG7, SH7} {
		bd.SetPiece(Pawn, Black, sq)
	}
	bd.SetPiece(Rook, White, SA1).SetPiece(Rook, White, SH1)
	bd.SetPiece(Knight, White, SB1).SetPiece(Knight, White, SG1)
	bd.SetPiece(Bishop, White, SC1).SetPiece(Bishop, White, SF1)
	bd.SetPiece(Queen, White, SD1)
	bd.SetPiece(King, White, SE1)
	bd.SetPiece(Rook, Black, SA8).SetPiece(Rook, Black, SH8)
	bd.SetPiece(Knight, Black, SB8).SetPiece(Knight, Black, SG8)
	bd.SetPiece(Bishop, Black, SC8).SetPiece(Bishop, Black, SF8)
	bd.SetPiece(Queen, Black, SD8)
	bd.SetPiece(King, Black, SE8)
	bd.SetCastleRights(WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside)
	return bd
}

func TestBoardBuilderBuildsStartingPosition(t *testing.T) {
	b, err := defaultBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := Default()
	if b.Hash() != want.Hash() {
		t.Fatalf("Build() hash does not match Default()")
	}
}

func TestBoardBuilderRejectsMissingKing(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1)
	_, err := bd.Build()
	ce, ok := err.(*Error)
	if !ok || ce.Kind != ErrInvalidPieceCount {
		t.Fatalf("expected ErrInvalidPieceCount, got %v", err)
	}
}

func TestBoardBuilderRejectsTwoKings(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, White, SE4).SetPiece(King, Black, SE8)
	_, err := bd.Build()
	ce, ok := err.(*Error)
	if !ok || ce.Kind != ErrInvalidPieceCount {
		t.Fatalf("expected ErrInvalidPieceCount, got %v", err)
	}
}

func TestBoardBuilderRejectsCastleRightWithoutRook(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, Black, SE8)
	bd.SetCastleRights(WhiteKingside)
	_, err := bd.Build()
	ce, ok := err.(*Error)
	if !ok || ce.Kind != ErrInvalidCastleRights {
		t.Fatalf("expected ErrInvalidCastleRights, got %v", err)
	}
}

func TestBoardBuilderRejectsBadEnPassantRank(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, Black, SE8)
	bd.SetEnPassant(SE4)
	_, err := bd.Build()
	ce, ok := err.(*Error)
	if !ok || ce.Kind != ErrInvalidEnPassant {
		t.Fatalf("expected ErrInvalidEnPassant, got %v", err)
	}
}

func TestBoardBuilderRejectsEnPassantWithoutPawn(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, Black, SE8)
	bd.SetSideToMove(Black)
	bd.SetEnPassant(SE3)
	_, err := bd.Build()
	ce, ok := err.(*Error)
	if !ok || ce.Kind != ErrInvalidEnPassant {
		t.Fatalf("expected ErrInvalidEnPassant, got %v", err)
	}
}

func TestSetPieceOverwritesPriorOccupant(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, Black, SE8)
	bd.SetPiece(Pawn, White, SA1)
	bd.SetPiece(Knight, White, SA1)
	b, err := bd.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if b.PieceOn(SA1) != Knight {
		t.Fatalf("PieceOn(a1) = %v, want Knight", b.PieceOn(SA1))
	}
	if b.PiecesOfColor(Pawn, White).Has(SA1) {
		t.Fatalf("a1 should no longer be a pawn after SetPiece(Knight, ...) overwrote it")
	}
}

func TestRemovePieceClearsSquare(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, Black, SE8)
	bd.SetPiece(Queen, White, SD4)
	bd.RemovePiece(SD4)
	b, err := bd.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if b.PieceOn(SD4) != NoPiece {
		t.Fatalf("PieceOn(d4) = %v, want NoPiece after RemovePiece", b.PieceOn(SD4))
	}
}

func TestBoardBuilderRejectsOverlappingPieceKinds(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, Black, SE8)
	bd.SetPiece(Pawn, White, SA4)
	// Bypass SetPiece's own clearing to simulate a builder that was
	// assembled some other way with two piece kinds on the same square.
	bd.pieces[Knight] |= SA4.Bitboard()
	bd.colors[White] |= SA4.Bitboard()
	_, err := bd.Build()
	ce, ok := err.(*Error)
	if !ok || ce.Kind != ErrInvalidPieceCount {
		t.Fatalf("expected ErrInvalidPieceCount, got %v", err)
	}
}

func TestBoardBuilderComputesCheckersAndPinned(t *testing.T) {
	bd := NewBoardBuilder()
	bd.SetPiece(King, White, SE1).SetPiece(King, Black, SA8)
	bd.SetPiece(Rook, Black, SE8)
	bd.SetPiece(Bishop, White, SD2).SetPiece(Bishop, Black, SB4)
	b, err := bd.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !b.Checkers().Has(SE8) {
		t.Fatalf("white king on the e-file against a black rook on e8 should be in check")
	}
	if !b.Pinned().Has(SD2) {
		t.Fatalf("white bishop on d2 should be pinned by the black bishop on b4")
	}
}
