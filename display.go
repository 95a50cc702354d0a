package chesscore

import "strings"

var pieceSymbols = [2][6]rune{
	White: {'♙', '♘', '♗', '♖', '♕', '♔'},
	Black: {'♟', '♞', '♝', '♜', '♛', '♚'},
}

// String renders b as an 8x8 Unicode board with file/rank labels, for
// debugging and REPL use.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(256)
	sb.WriteString("  a b c d e f g h\n")
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := b.PieceOn(sq)
			if p == NoPiece {
				sb.WriteByte('.')
			} else {
				color, _ := b.ColorOn(sq)
				sb.WriteRune(pieceSymbols[color][p])
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
