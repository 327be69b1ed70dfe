// fen.go implements conversions between Forsyth-Edwards Notation (FEN)
// strings and positions. Functions in this file expect the passed FEN
// strings to be well-formed and may panic if they are not -- FEN parsing is
// a boundary concern, not part of the engine's own invariants.

package corvid

import (
	"strconv"
	"strings"
)

// parseFENData parses a FEN string into a BitboardData. The hash is not
// computed here; callers that need it call [computeZobristKey] separately,
// since [BitboardData] by itself has no notion of "this is the first ply".
func parseFENData(fen string) BitboardData {
	var d BitboardData
	d.EPTarget = -1

	fields := strings.SplitN(fen, " ", 6)

	d.Bitboards = parseBitboards(fields[0])
	d.WhiteKing = bitScan(d.Bitboards[PieceWKing])
	d.BlackKing = bitScan(d.Bitboards[PieceBKing])

	if len(fields) > 1 && fields[1] == "b" {
		d.Color = ColorBlack
	}

	if len(fields) > 2 {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				d.CastlingRights |= CastlingWhiteShort
			case 'Q':
				d.CastlingRights |= CastlingWhiteLong
			case 'k':
				d.CastlingRights |= CastlingBlackShort
			case 'q':
				d.CastlingRights |= CastlingBlackLong
			}
		}
	}

	if len(fields) > 3 && fields[3] != "-" {
		d.EPTarget = string2Square(fields[3])
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			d.HalfmoveCnt = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			d.FullmoveCnt = n
		}
	}

	d.PieceScore = recomputeMaterial(&d)
	return d
}

// SerializeFEN serializes the position's current ply into a FEN string.
func SerializeFEN(p *Position) string {
	d := p.Current()
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(serializeBitboards(d.Bitboards))

	if d.Color == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	cnt := 4
	if d.CastlingRights&CastlingWhiteShort != 0 {
		fen.WriteByte('K')
		cnt--
	}
	if d.CastlingRights&CastlingWhiteLong != 0 {
		fen.WriteByte('Q')
		cnt--
	}
	if d.CastlingRights&CastlingBlackShort != 0 {
		fen.WriteByte('k')
		cnt--
	}
	if d.CastlingRights&CastlingBlackLong != 0 {
		fen.WriteByte('q')
		cnt--
	}
	if cnt == 4 {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if d.EPTarget < 0 {
		fen.WriteString("- ")
	} else {
		files := "abcdefgh"
		fen.WriteByte(files[d.EPTarget%8])
		fen.WriteByte('0' + byte(d.EPTarget/8+1))
		fen.WriteByte(' ')
	}

	fen.WriteString(strconv.Itoa(d.HalfmoveCnt))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(d.FullmoveCnt))

	return fen.String()
}

// parseBitboards converts the piece-placement field of a FEN string into an
// array of bitboards.
func parseBitboards(piecePlacement string) (bitboards [15]uint64) {
	square := 56

	for i := 0; i < len(piecePlacement); i++ {
		char := piecePlacement[i]

		switch {
		case char == '/':
			square -= 16
		case char >= '1' && char <= '8':
			square += int(char - '0')
		default:
			var piece Piece
			switch char {
			case 'P':
				piece = PieceWPawn
			case 'N':
				piece = PieceWKnight
			case 'B':
				piece = PieceWBishop
			case 'R':
				piece = PieceWRook
			case 'Q':
				piece = PieceWQueen
			case 'K':
				piece = PieceWKing
			case 'p':
				piece = PieceBPawn
			case 'n':
				piece = PieceBKnight
			case 'b':
				piece = PieceBBishop
			case 'r':
				piece = PieceBRook
			case 'q':
				piece = PieceBQueen
			case 'k':
				piece = PieceBKing
			}
			bb := uint64(1) << uint(square)
			bitboards[piece] |= bb
			bitboards[12+colorOf(piece)] |= bb
			bitboards[14] |= bb
			square++
		}
	}

	return bitboards
}

// serializeBitboards converts an array of bitboards into the piece-placement
// field of a FEN string.
func serializeBitboards(bitboards [15]uint64) string {
	b := strings.Builder{}
	b.Grow(20)

	var board [64]byte
	for i := PieceWPawn; i <= PieceBKing; i++ {
		bb := bitboards[i]
		for bb > 0 {
			square := popLSB(&bb)
			board[square] = PieceSymbols[i]
		}
	}

	emptySquares := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 {
				emptySquares++
			} else {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				b.WriteByte(char)
			}

			if (square+1)%8 == 0 {
				if emptySquares > 0 {
					b.WriteByte('0' + emptySquares)
					emptySquares = 0
				}
				if square != 7 {
					b.WriteByte('/')
				}
			}
		}
	}

	return b.String()
}

// string2Square parses an algebraic square like "e4" into a square index.
func string2Square(str string) int {
	file := int(str[0] - 'a')
	rank := int(str[1]-'0') - 1
	return rank*8 + file
}
