package chesscore

import "testing"

func TestBitboardHasWithWithout(t *testing.T) {
	var bb Bitboard
	bb = bb.With(SE4)
	if !bb.Has(SE4) {
		t.Fatalf("expected SE4 to be set")
	}
	bb = bb.Without(SE4)
	if bb.Has(SE4) {
		t.Fatalf("expected SE4 to be cleared")
	}
}

func TestBitboardPopCount(t *testing.T) {
	bb := BBA1 | BBB1 | BBH8
	if got := bb.PopCount(); got != 3 {
		t.Fatalf("PopCount() = %d, want 3", got)
	}
}

func TestBitboardLSBAndPopLSB(t *testing.T) {
	bb := BBD4 | BBA1 | BBH8
	if got := bb.LSB(); got != SA1 {
		t.Fatalf("LSB() = %v, want a1", got)
	}
	first := PopLSB(&bb)
	if first != SA1 {
		t.Fatalf("PopLSB() = %v, want a1", first)
	}
	if bb.Has(SA1) {
		t.Fatalf("expected a1 removed after PopLSB")
	}
}

func TestBitboardEmptyLSB(t *testing.T) {
	if got := Empty.LSB(); got != SquareNone {
		t.Fatalf("Empty.LSB() = %v, want SquareNone", got)
	}
	bb := Empty
	if got := PopLSB(&bb); got != SquareNone {
		t.Fatalf("PopLSB(Empty) = %v, want SquareNone", got)
	}
}

func TestBitboardSquaresIteratesAscending(t *testing.T) {
	bb := BBH8 | BBA1 | BBD4
	var got []Square
	for sq := range bb.Squares {
		got = append(got, sq)
	}
	want := []Square{SA1, SD4, SH8}
	if len(got) != len(want) {
		t.Fatalf("got %d squares, want %d", len(got), len(want))
	}
	for i, sq := range want {
		if got[i] != sq {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], sq)
		}
	}
}

func TestBitboardSquaresEarlyStop(t *testing.T) {
	bb := BBA1 | BBB1 | BBC1
	n := 0
	for range bb.Squares {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("expected iteration to stop after the first yield")
	}
}

func TestBitboardUnionIntersectDiff(t *testing.T) {
	a := BBA1 | BBB1
	b := BBB1 | BBC1
	if got := a.Union(b); got != BBA1|BBB1|BBC1 {
		t.Fatalf("Union mismatch: %x", uint64(got))
	}
	if got := a.Intersect(b); got != BBB1 {
		t.Fatalf("Intersect mismatch: %x", uint64(got))
	}
	if got := a.Diff(b); got != BBA1 {
		t.Fatalf("Diff mismatch: %x", uint64(got))
	}
}
