package chesscore

// Perft counts the leaf nodes of the legal move tree rooted at b, to the
// given depth. It is the canonical move-generator correctness check: the
// node counts for well-known starting positions are published and any
// deviation means generation is either missing a legal move or producing
// an illegal one. Perft(b, 0) is 1 by definition (the empty sequence of
// moves).
func Perft(b Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	gen := NewLegal(b)
	if depth == 1 {
		return uint64(gen.Len())
	}
	var nodes uint64
	for gen.Next() {
		nodes += Perft(b.MakeMove(gen.Move()), depth-1)
	}
	return nodes
}

// Divide returns, for each legal move at the root, the perft count of the
// subtree below it. Used to localize a perft mismatch to a specific branch
// during debugging: compare against a reference engine's "go perft divide"
// output one move at a time instead of diffing the full leaf count.
func Divide(b Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth == 0 {
		return out
	}
	gen := NewLegal(b)
	for gen.Next() {
		m := gen.Move()
		out[m.UCI()] = Perft(b.MakeMove(m), depth-1)
	}
	return out
}
