package chesscore

import (
	"strings"
	"testing"
)

func TestBoardStringContainsAllPieceSymbols(t *testing.T) {
	s := Default().String()
	for _, r := range []rune{'♙', '♖', '♔', '♟', '♜', '♚'} {
		if !strings.ContainsRune(s, r) {
			t.Fatalf("String() missing piece symbol %q:\n%s", r, s)
		}
	}
	if !strings.HasPrefix(s, "  a b c d e f g h\n") {
		t.Fatalf("String() should start with the file header, got:\n%s", s)
	}
}

func TestBoardStringEmptySquaresAreDots(t *testing.T) {
	s := Default().String()
	if !strings.Contains(s, ".") {
		t.Fatalf("String() should render empty squares as '.'")
	}
}
