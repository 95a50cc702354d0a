package chesscore

import "testing"

func TestMoveFromToKind(t *testing.T) {
	m := NewMove(SE2, SE4, MoveNormal)
	if m.From() != SE2 {
		t.Fatalf("From() = %v, want e2", m.From())
	}
	if m.To() != SE4 {
		t.Fatalf("To() = %v, want e4", m.To())
	}
	if m.Kind() != MoveNormal {
		t.Fatalf("Kind() = %v, want MoveNormal", m.Kind())
	}
}

func TestMovePromotion(t *testing.T) {
	m := NewPromotionMove(SE7, SE8, Queen)
	if !m.IsPromotion() {
		t.Fatalf("expected IsPromotion() true")
	}
	if m.Promotion() != Queen {
		t.Fatalf("Promotion() = %v, want Queen", m.Promotion())
	}
	if got := m.UCI(); got != "e7e8q" {
		t.Fatalf("UCI() = %q, want e7e8q", got)
	}
}

func TestMoveUCINonPromotion(t *testing.T) {
	m := NewMove(SE2, SE4, MoveNormal)
	if got := m.UCI(); got != "e2e4" {
		t.Fatalf("UCI() = %q, want e2e4", got)
	}
}

func TestMoveListPushLen(t *testing.T) {
	var l MoveList
	l.Push(NewMove(SA1, SA2, MoveNormal))
	l.Push(NewMove(SB1, SB2, MoveNormal))
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.At(0).From() != SA1 {
		t.Fatalf("At(0).From() = %v, want a1", l.At(0).From())
	}
	if len(l.Slice()) != 2 {
		t.Fatalf("Slice() length = %d, want 2", len(l.Slice()))
	}
}
