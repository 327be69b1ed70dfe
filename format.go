/*
format.go renders bitboards and positions as text, used by the debug CLI and
handy when stepping through search bugs in a debugger.
*/

package corvid

import "strings"

var boardSymbols = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝',
	'♖', '♜', '♕', '♛', '♔', '♚',
}

// FormatBitboard renders a single 64-bit mask as an 8x8 board, marking every
// set bit with piece's symbol.
func FormatBitboard(bitboard uint64, piece Piece) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			square := uint64(1) << (8*rank + file)
			symbol := boardSymbols[piece]
			if bitboard&square == 0 {
				symbol = '.'
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")
	return b.String()
}

// FormatPosition renders a full position: the board, side to move, en
// passant target, and castling rights.
func FormatPosition(d *BitboardData) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			symbol := '.'
			if piece := d.GetPieceFromSquare(square); piece != PieceNone {
				symbol = boardSymbols[piece]
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	if d.Color == ColorWhite {
		b.WriteString("Active color: white\n")
	} else {
		b.WriteString("Active color: black\n")
	}

	if d.EPTarget < 0 {
		b.WriteString("En passant: none\n")
	} else {
		b.WriteString("En passant: " + Square2String[d.EPTarget] + "\n")
	}

	b.WriteString("Castling rights: ")
	switch {
	case d.CastlingRights == 0:
		b.WriteString("-")
	default:
		if d.CastlingRights&CastlingWhiteShort != 0 {
			b.WriteByte('K')
		}
		if d.CastlingRights&CastlingWhiteLong != 0 {
			b.WriteByte('Q')
		}
		if d.CastlingRights&CastlingBlackShort != 0 {
			b.WriteByte('k')
		}
		if d.CastlingRights&CastlingBlackLong != 0 {
			b.WriteByte('q')
		}
	}
	b.WriteByte('\n')

	return b.String()
}
