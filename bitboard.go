// Package chesscore implements chess board representation, attack tables,
// and a legal move generator that produces exactly the legal moves of a
// position without a make/unmake filtering pass.
package chesscore

// Bitboard is a set of squares encoded as a 64-bit integer: bit i set means
// square i (0 = a1, 1 = b1, ..., 63 = h8; file varies fastest) is a member.
type Bitboard uint64

const (
	// Empty is the bitboard with no squares set.
	Empty Bitboard = 0
	// Universe is the bitboard with every square set.
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF
)

// Square bitboard constants, one bit per square.
const (
	BBA1 Bitboard = 1 << iota
	BBB1
	BBC1
	BBD1
	BBE1
	BBF1
	BBG1
	BBH1
	BBA2
	BBB2
	BBC2
	BBD2
	BBE2
	BBF2
	BBG2
	BBH2
	BBA3
	BBB3
	BBC3
	BBD3
	BBE3
	BBF3
	BBG3
	BBH3
	BBA4
	BBB4
	BBC4
	BBD4
	BBE4
	BBF4
	BBG4
	BBH4
	BBA5
	BBB5
	BBC5
	BBD5
	BBE5
	BBF5
	BBG5
	BBH5
	BBA6
	BBB6
	BBC6
	BBD6
	BBE6
	BBF6
	BBG6
	BBH6
	BBA7
	BBB7
	BBC7
	BBD7
	BBE7
	BBF7
	BBG7
	BBH7
	BBA8
	BBB8
	BBC8
	BBD8
	BBE8
	BBF8
	BBG8
	BBH8
)

// Precalculated magic used to form indices for bitScanLookup. See
// http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup maps the hashed LSB of a bitboard to its square index.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// Union returns the set union of b and other.
func (b Bitboard) Union(other Bitboard) Bitboard { return b | other }

// Intersect returns the set intersection of b and other.
func (b Bitboard) Intersect(other Bitboard) Bitboard { return b & other }

// Diff returns the squares in b that are not in other.
func (b Bitboard) Diff(other Bitboard) Bitboard { return b &^ other }

// Complement returns the squares not in b.
func (b Bitboard) Complement() Bitboard { return ^b }

// Has reports whether sq is a member of b.
func (b Bitboard) Has(sq Square) bool { return b&(1<<uint(sq)) != 0 }

// With returns b with sq added.
func (b Bitboard) With(sq Square) Bitboard { return b | (1 << uint(sq)) }

// Without returns b with sq removed.
func (b Bitboard) Without(sq Square) Bitboard { return b &^ (1 << uint(sq)) }

// Empty reports whether the bitboard has no squares set.
func (b Bitboard) Empty() bool { return b == 0 }

// PopCount returns the number of squares set in b.
func (b Bitboard) PopCount() int {
	cnt := 0
	for ; b > 0; cnt++ {
		b &= b - 1
	}
	return cnt
}

// bitScan returns the index of the lowest set bit within bb.
//
// NOTE: bitScan returns 63 for the empty bitboard.
func bitScan(bb uint64) int {
	return bitScanLookup[(bb&-bb)*bitscanMagic>>58]
}

// LSB returns the lowest-indexed square set in b, or SquareNone if b is empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return SquareNone
	}
	return Square(bitScan(uint64(b)))
}

// PopLSB removes the lowest set square from *b and returns it. Returns
// SquareNone if *b was already empty.
func PopLSB(b *Bitboard) Square {
	if *b == 0 {
		return SquareNone
	}
	sq := bitScan(uint64(*b))
	*b &= *b - 1
	return Square(sq)
}

// Squares iterates the member squares of b in ascending index order.
func (b Bitboard) Squares(yield func(Square) bool) {
	bb := b
	for bb != 0 {
		sq := PopLSB(&bb)
		if !yield(sq) {
			return
		}
	}
}
