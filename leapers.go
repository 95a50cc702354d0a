package chesscore

// genPawnAttacks returns the squares a single pawn of the given color
// attacks (diagonal capture squares only, not its push square).
func genPawnAttacks(pawn Bitboard, color Color) Bitboard {
	if color == White {
		return (pawn & notAFile << 7) | (pawn & notHFile << 9)
	}
	return (pawn & notAFile >> 9) | (pawn & notHFile >> 7)
}

// genKnightAttacks returns the squares a single knight on this bitboard
// attacks.
func genKnightAttacks(knight Bitboard) Bitboard {
	return (knight & notAFile >> 17) |
		(knight & notHFile >> 15) |
		(knight & notABFile >> 10) |
		(knight & notGHFile >> 6) |
		(knight & notABFile << 6) |
		(knight & notGHFile << 10) |
		(knight & notAFile << 15) |
		(knight & notHFile << 17)
}

// genKingAttacks returns the squares a single king on this bitboard attacks
// (one step in each of the eight directions, excluding castling).
func genKingAttacks(king Bitboard) Bitboard {
	return (king & notAFile >> 9) |
		(king >> 8) |
		(king & notHFile >> 7) |
		(king & notAFile >> 1) |
		(king & notHFile << 1) |
		(king & notAFile << 7) |
		(king << 8) |
		(king & notHFile << 9)
}

func initPawnAttacks() (out [2][64]Bitboard) {
	for sq := 0; sq < 64; sq++ {
		bb := Square(sq).Bitboard()
		out[White][sq] = genPawnAttacks(bb, White)
		out[Black][sq] = genPawnAttacks(bb, Black)
	}
	return out
}

func initKnightAttacks() (out [64]Bitboard) {
	for sq := 0; sq < 64; sq++ {
		out[sq] = genKnightAttacks(Square(sq).Bitboard())
	}
	return out
}

func initKingAttacks() (out [64]Bitboard) {
	for sq := 0; sq < 64; sq++ {
		out[sq] = genKingAttacks(Square(sq).Bitboard())
	}
	return out
}

// direction indices into the ray table.
const (
	dirNorth = iota
	dirSouth
	dirEast
	dirWest
	dirNorthEast
	dirNorthWest
	dirSouthEast
	dirSouthWest
	numDirections
)

// rayStep returns the bitboard one step from sq in direction dir, or Empty
// if that step would wrap off the board.
func rayStep(sq Square, dir int) Bitboard {
	bb := sq.Bitboard()
	switch dir {
	case dirNorth:
		return bb << 8
	case dirSouth:
		return bb >> 8
	case dirEast:
		return bb & notHFile << 1
	case dirWest:
		return bb & notAFile >> 1
	case dirNorthEast:
		return bb & notHFile << 9
	case dirNorthWest:
		return bb & notAFile << 7
	case dirSouthEast:
		return bb & notHFile >> 7
	case dirSouthWest:
		return bb & notAFile >> 9
	}
	return Empty
}

// initRays builds, for each of the eight directions and each source square,
// the full ray of squares from (but excluding) that square to the edge of
// the board. Used to drive pin detection and check-evasion blocking
// calculations; the teacher's check-by-recount design never needed these.
func initRays() (out [numDirections][64]Bitboard) {
	for dir := 0; dir < numDirections; dir++ {
		for sq := 0; sq < 64; sq++ {
			ray := Bitboard(0)
			cur := Square(sq)
			for {
				step := rayStep(cur, dir)
				if step == Empty {
					break
				}
				ray |= step
				cur = step.LSB()
			}
			out[dir][sq] = ray
		}
	}
	return out
}

// initBetween builds, for every pair of squares sharing a rank, file, or
// diagonal, the bitboard of squares strictly between them (exclusive of
// both endpoints); empty for pairs that share none of those lines.
//
// Walked step-by-step in travel order (not by popping the ray bitboard's
// lowest bit, which is not the nearest square for every direction: moving
// south or west decreases the square index, so the lowest-indexed square on
// those rays is the farthest one, not the nearest).
func initBetween() (out [64][64]Bitboard) {
	for a := 0; a < 64; a++ {
		for dir := 0; dir < numDirections; dir++ {
			accum := Bitboard(0)
			cur := Square(a)
			for {
				step := rayStep(cur, dir)
				if step == Empty {
					break
				}
				sq := step.LSB()
				out[a][sq] = accum
				accum |= step
				cur = sq
			}
		}
	}
	return out
}

// oppositeDir maps each direction to the direction pointing back along the
// same line. Order matches the dir* iota block: N, S, E, W, NE, NW, SE, SW.
var oppositeDir = [numDirections]int{
	dirSouth, dirNorth, dirWest, dirEast,
	dirSouthWest, dirSouthEast, dirNorthWest, dirNorthEast,
}

// initLines builds, for every pair of squares sharing a rank, file, or
// diagonal, the bitboard of the *entire* line (both rays plus both
// endpoints) through them; empty for pairs sharing none of those lines.
func initLines() (out [64][64]Bitboard) {
	for dir := 0; dir < numDirections; dir++ {
		opp := oppositeDir[dir]
		for a := 0; a < 64; a++ {
			ray := rays[dir][a]
			r := ray
			for r != 0 {
				b := PopLSB(&r)
				line := rays[dir][a] | rays[opp][a] | Square(a).Bitboard()
				out[a][b] = line
				out[b][a] = line
			}
		}
	}
	return out
}

var (
	pawnAttacks   = initPawnAttacks()
	knightAttacks = initKnightAttacks()
	kingAttacks   = initKingAttacks()
	rays          = initRays()
	between       = initBetween()
	line          = initLines()
)

// PawnAttacks returns the squares a pawn of the given color on sq attacks.
func PawnAttacks(sq Square, color Color) Bitboard { return pawnAttacks[color][sq] }

// KnightAttacks returns the squares a knight on sq attacks.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the squares a king on sq attacks, excluding castling.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// Between returns the squares strictly between a and b when they share a
// rank, file, or diagonal; otherwise Empty.
func Between(a, b Square) Bitboard { return between[a][b] }

// Line returns the full rank, file, or diagonal containing both a and b;
// otherwise Empty.
func Line(a, b Square) Bitboard { return line[a][b] }

// Castling geometry. Index: 0 white kingside, 1 white queenside, 2 black
// kingside, 3 black queenside.
var castlingKingPath = [4]Bitboard{
	BBF1 | BBG1,
	BBD1 | BBC1 | BBB1,
	BBF8 | BBG8,
	BBD8 | BBC8 | BBB8,
}

// castlingKingTravel is the squares the king itself crosses (start, pass
// through, destination) which must all be unattacked.
var castlingKingTravel = [4]Bitboard{
	BBE1 | BBF1 | BBG1,
	BBE1 | BBD1 | BBC1,
	BBE8 | BBF8 | BBG8,
	BBE8 | BBD8 | BBC8,
}

var castlingRookFrom = [4]Square{SH1, SA1, SH8, SA8}
var castlingRookTo = [4]Square{SF1, SD1, SF8, SD8}
var castlingKingTo = [4]Square{SG1, SC1, SG8, SC8}
var castlingRights = [4]CastleRights{WhiteKingside, WhiteQueenside, BlackKingside, BlackQueenside}
