package chesscore

import "testing"

func TestNewGameStartsAtDefaultPosition(t *testing.T) {
	g := New()
	if g.CurrentPosition().Hash() != Default().Hash() {
		t.Fatalf("New() should start from the default position")
	}
	if g.Result() != ResultUnknown {
		t.Fatalf("Result() = %v, want ResultUnknown", g.Result())
	}
}

func TestGameMakeMoveRejectsIllegalMove(t *testing.T) {
	g := New()
	err := g.MakeMove(NewMove(SE2, SE5, MoveNormal))
	ce, ok := err.(*Error)
	if !ok || ce.Kind != ErrIllegalMove {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
}

func TestGameMakeMoveRejectsAfterGameOver(t *testing.T) {
	g := New()
	g.Resign(White)
	err := g.MakeMove(NewMove(SE2, SE4, MoveNormal))
	if err == nil {
		t.Fatalf("expected an error making a move after the game ended")
	}
}

func TestGameDetectsFoolsMate(t *testing.T) {
	g := New()
	moves := []Move{
		NewMove(SF2, SF3, MoveNormal),
		NewMove(SE7, SE5, MoveNormal),
		NewMove(SG2, SG4, MoveNormal),
		NewMove(SD8, SH4, MoveNormal),
	}
	for _, m := range moves {
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%v) error: %v", m.UCI(), err)
		}
	}
	if g.Termination() != TerminationCheckmate {
		t.Fatalf("Termination() = %v, want TerminationCheckmate", g.Termination())
	}
	if g.Result() != ResultBlackWins {
		t.Fatalf("Result() = %v, want ResultBlackWins", g.Result())
	}
}

func TestGameThreefoldRepetitionByKnightShuffle(t *testing.T) {
	g := New()
	shuffle := []Move{
		NewMove(SB1, SC3, MoveNormal),
		NewMove(SB8, SC6, MoveNormal),
		NewMove(SC3, SB1, MoveNormal),
		NewMove(SC6, SB8, MoveNormal),
	}
	// The starting position itself is occurrence 1. Each full shuffle
	// below returns to it: occurrence 2 after the first, occurrence 3
	// (the threefold) after the second.
	for _, m := range shuffle {
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%v) error: %v", m.UCI(), err)
		}
	}
	if g.CanDeclareDrawRepetition() {
		t.Fatalf("should not be able to claim repetition after only one full shuffle")
	}
	for _, m := range shuffle {
		if err := g.MakeMove(m); err != nil {
			t.Fatalf("MakeMove(%v) error: %v", m.UCI(), err)
		}
	}
	if !g.CanDeclareDrawRepetition() {
		t.Fatalf("expected a repetition claim to be available after the position recurred three times")
	}
	if err := g.DeclareDraw(); err != nil {
		t.Fatalf("DeclareDraw() error: %v", err)
	}
	if g.Result() != ResultDraw {
		t.Fatalf("Result() = %v, want ResultDraw", g.Result())
	}
	if g.Termination() != TerminationThreefoldRepetition {
		t.Fatalf("Termination() = %v, want TerminationThreefoldRepetition", g.Termination())
	}
}

func TestGameDeclareDrawFailsWithoutAClaim(t *testing.T) {
	g := New()
	if err := g.DeclareDraw(); err == nil {
		t.Fatalf("expected an error declaring a draw with no claim available")
	}
}

func TestGameDrawByAgreement(t *testing.T) {
	g := New()
	g.OfferDraw(White)
	if err := g.AcceptDraw(); err != nil {
		t.Fatalf("AcceptDraw() error: %v", err)
	}
	if g.Termination() != TerminationDrawAgreement {
		t.Fatalf("Termination() = %v, want TerminationDrawAgreement", g.Termination())
	}
}

func TestGameAcceptDrawFailsWithoutOffer(t *testing.T) {
	g := New()
	if err := g.AcceptDraw(); err == nil {
		t.Fatalf("expected an error accepting a draw with none offered")
	}
}
