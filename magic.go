package chesscore

// Magic-bitboard sliding attack tables for bishops and rooks. Given a source
// square and the full occupancy bitboard, a rook/bishop's attack set
// (including the first blocker hit in each direction, of either color) is
// found by masking occupancy down to the "relevant" blocker squares,
// multiplying by a precalculated magic constant, and shifting to form a
// table index — a perfect hash from (square, blocker subset) to attack set.
//
// bishopMagicNumbers and rookMagicNumbers below are verified constants that
// make the hash collision-free for every (square, relevant-occupancy-subset)
// pair; they are not derived at runtime.

// bishopBitCount is the number of relevant-occupancy bits for a bishop on
// each square (size of the attack table slice needed for that square).
var bishopBitCount = [64]int{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

// rookBitCount is the number of relevant-occupancy bits for a rook on each
// square.
var rookBitCount = [64]int{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

var bishopMagicNumbers = [64]uint64{
	0x11410121040100, 0x2084820928010, 0xa010208481080040, 0x214240082000610,
	0x4d104000400480, 0x1012010804408, 0x42044101452000c, 0x2844804050104880,
	0x814204290a0a00, 0x10280688224500, 0x1080410101010084, 0x10020a108408004,
	0x2482020210c80080, 0x480104a0040400, 0x411006404200810, 0x1024010908024292,
	0x1004401001011a, 0x810006081220080, 0x1040404206004100, 0x58080000820041ce,
	0x3406000422010890, 0x1a004100520210, 0x202a000048040400, 0x225004441180110,
	0x8064240102240, 0x1424200404010402, 0x1041100041024200, 0x8082002012008200,
	0x1010008104000, 0x8808004000806000, 0x380a000080c400, 0x31040100042d0101,
	0x110109008082220, 0x4010880204201, 0x4006462082100300, 0x4002010040140041,
	0x40090200250880, 0x2010100c40c08040, 0x12800ac01910104, 0x10b20051020100,
	0x210894104828c000, 0x50440220004800, 0x1002011044180800, 0x4220404010410204,
	0x1002204a2020401, 0x21021001000210, 0x4880081009402, 0xc208088c088e0040,
	0x4188464200080, 0x3810440618022200, 0xc020310401040420, 0x2000008208800e0,
	0x4c910240020, 0x425100a8602a0, 0x20c4206a0c030510, 0x4c10010801184000,
	0x200202020a026200, 0x6000004400841080, 0xc14004121082200, 0x400324804208800,
	0x1802200040504100, 0x1820000848488820, 0x8620682a908400, 0x8010600084204240,
}

var rookMagicNumbers = [64]uint64{
	0x2080008040002010, 0x40200010004000, 0x100090010200040, 0x2080080010000480,
	0x880040080080102, 0x8200106200042108, 0x410041000408b200, 0x100009a00402100,
	0x5800800020804000, 0x848404010002000, 0x101001820010041, 0x10a0040100420080,
	0x8a02002006001008, 0x926000844110200, 0x8000800200800100, 0x28060001008c2042,
	0x10818002204000, 0x10004020004001, 0x110002008002400, 0x11a020010082040,
	0x2001010008000410, 0x42010100080400, 0x4004040008020110, 0x820000840041,
	0x400080208000, 0x2080200040005000, 0x8000200080100080, 0x4400080180500080,
	0x4900080080040080, 0x4004004480020080, 0x8006000200040108, 0xc481000100006396,
	0x1000400080800020, 0x201004400040, 0x10008010802000, 0x204012000a00,
	0x800400800802, 0x284000200800480, 0x3000403000200, 0x840a6000514,
	0x4080c000228012, 0x10002000444010, 0x620001000808020, 0xc210010010009,
	0x100c001008010100, 0xc10020004008080, 0x20100802040001, 0x808008305420014,
	0xc010800840043080, 0x208401020890100, 0x10b0081020028280, 0x6087001001220900,
	0xc080011000500, 0x9810200040080, 0x2000010882100400, 0x2000050880540200,
	0x800020104200810a, 0x6220250242008016, 0x9180402202900a, 0x40210500100009,
	0x6000814102026, 0x410100080a040013, 0x10405008022d1184, 0x1000009400410822,
}

// genBishopAttacksSlow returns the bishop attack set from a single-bit
// bishop bitboard, walking each diagonal until (and including) the first
// blocker. Used only to fill the magic tables at package init.
func genBishopAttacksSlow(bishop, occupancy Bitboard) (attacks Bitboard) {
	for i := bishop & notAFile >> 9; i&notHFile != 0; i >>= 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile >> 7; i&notAFile != 0; i >>= 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notAFile << 7; i&notHFile != 0; i <<= 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile << 9; i&notAFile != 0; i <<= 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

// genRookAttacksSlow returns the rook attack set from a single-bit rook
// bitboard, walking each rank/file ray until (and including) the first
// blocker.
func genRookAttacksSlow(rook, occupancy Bitboard) (attacks Bitboard) {
	for i := rook & notAFile >> 1; i&notHFile != 0; i >>= 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & notHFile << 1; i&notAFile != 0; i <<= 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not1Rank >> 8; i&not8Rank != 0; i >>= 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not8Rank << 8; i&not1Rank != 0; i <<= 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

// genBishopRelevantOccupancy returns the squares whose occupancy affects a
// bishop's attack set from this square, excluding board-edge squares (a
// blocker there is never itself maskable away by a further blocker).
func genBishopRelevantOccupancy(bishop Bitboard) (occ Bitboard) {
	notAnot1 := notAFile & not1Rank
	notHnot1 := notHFile & not1Rank
	notAnot8 := notAFile & not8Rank
	notHnot8 := notHFile & not8Rank
	for i := bishop & notAFile >> 9; i&notAnot1 != 0; i >>= 9 {
		occ |= i
	}
	for i := bishop & notHFile >> 7; i&notHnot1 != 0; i >>= 7 {
		occ |= i
	}
	for i := bishop & notAFile << 7; i&notAnot8 != 0; i <<= 7 {
		occ |= i
	}
	for i := bishop & notHFile << 9; i&notHnot8 != 0; i <<= 9 {
		occ |= i
	}
	return occ
}

// genRookRelevantOccupancy returns the squares whose occupancy affects a
// rook's attack set from this square, excluding board-edge squares.
func genRookRelevantOccupancy(rook Bitboard) (occ Bitboard) {
	for i := rook & not1Rank >> 8; i&not1Rank != 0; i >>= 8 {
		occ |= i
	}
	for i := rook & notAFile >> 1; i&notAFile != 0; i >>= 1 {
		occ |= i
	}
	for i := rook & notHFile << 1; i&notHFile != 0; i <<= 1 {
		occ |= i
	}
	for i := rook & not8Rank << 8; i&not8Rank != 0; i <<= 8 {
		occ |= i
	}
	return occ
}

// genBlockerSubset returns the key'th subset of relevantOccupancy's bits,
// enumerating every possible blocker configuration over the relevant
// squares (key ranges over [0, 1<<popcount(relevantOccupancy))).
func genBlockerSubset(key, relevantBitCount int, relevantOccupancy Bitboard) (occ Bitboard) {
	for i := 0; i < relevantBitCount; i++ {
		sq := PopLSB(&relevantOccupancy)
		if key&(1<<i) != 0 {
			occ |= sq.Bitboard()
		}
	}
	return occ
}

func initBishopOccupancy() (out [64]Bitboard) {
	for sq := 0; sq < 64; sq++ {
		out[sq] = genBishopRelevantOccupancy(Square(sq).Bitboard())
	}
	return out
}

func initRookOccupancy() (out [64]Bitboard) {
	for sq := 0; sq < 64; sq++ {
		out[sq] = genRookRelevantOccupancy(Square(sq).Bitboard())
	}
	return out
}

func initBishopAttacks() (out [64][512]Bitboard) {
	for sq := 0; sq < 64; sq++ {
		bits := bishopBitCount[sq]
		for i := 0; i < 1<<bits; i++ {
			occ := genBlockerSubset(i, bits, bishopOccupancy[sq])
			key := uint64(occ) * bishopMagicNumbers[sq] >> (64 - bits)
			out[sq][key] = genBishopAttacksSlow(Square(sq).Bitboard(), occ)
		}
	}
	return out
}

func initRookAttacks() (out [64][4096]Bitboard) {
	for sq := 0; sq < 64; sq++ {
		bits := rookBitCount[sq]
		for i := 0; i < 1<<bits; i++ {
			occ := genBlockerSubset(i, bits, rookOccupancy[sq])
			key := uint64(occ) * rookMagicNumbers[sq] >> (64 - bits)
			out[sq][key] = genRookAttacksSlow(Square(sq).Bitboard(), occ)
		}
	}
	return out
}

// Package-level tables are computed by var initializers, which Go runs
// before any other package code (including init() funcs and main) in
// dependency order. This gives the "fully initialized before first use,
// exactly once" guarantee without requiring callers to remember an explicit
// InitAttackTables() call.
var (
	bishopOccupancy = initBishopOccupancy()
	rookOccupancy   = initRookOccupancy()
	bishopAttacks   = initBishopAttacks()
	rookAttacks     = initRookAttacks()
)

// BishopAttacks returns the bishop attack set from sq given the full board
// occupancy.
func BishopAttacks(sq Square, occupancy Bitboard) Bitboard {
	occ := occupancy & bishopOccupancy[sq]
	key := uint64(occ) * bishopMagicNumbers[sq] >> (64 - bishopBitCount[sq])
	return bishopAttacks[sq][key]
}

// RookAttacks returns the rook attack set from sq given the full board
// occupancy.
func RookAttacks(sq Square, occupancy Bitboard) Bitboard {
	occ := occupancy & rookOccupancy[sq]
	key := uint64(occ) * rookMagicNumbers[sq] >> (64 - rookBitCount[sq])
	return rookAttacks[sq][key]
}

// QueenAttacks returns the queen attack set from sq, the union of its rook
// and bishop attacks.
func QueenAttacks(sq Square, occupancy Bitboard) Bitboard {
	return BishopAttacks(sq, occupancy) | RookAttacks(sq, occupancy)
}
