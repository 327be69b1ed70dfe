// types.go contains declarations of custom types and predefined constants.

package corvid

/*
Move represents a chess move, encoded as a 16 bit unsigned integer:
  - 0-3:   Tag. 0 means a quiet move or a capture, 13 means castling, 14 means
    en passant, 15 means a null move. Any other value (1-12) is the code of
    the piece a pawn promotes to, using the same numbering as [Piece]+1 (0 is
    reserved to mean "no promotion").
  - 4-9:   End (destination) square index. For castling moves this field is
    unused and left at 0.
  - 10-15: Start (origin) square index. For castling moves this field instead
    holds the [CastlingRights] bit identifying which side is castling.

This layout mirrors the bit order start|end|tag (start most significant,
tag least significant) used by the bitboard engine this package descends
from, so that move values compare and sort the same way the search tree
expects: ascending by start square, then end square, then tag.
*/
type Move uint16

// Special tag values. Values 1-12 are reserved for promotion piece codes.
const (
	MoveTagNormal    = 0
	MoveTagCastling  = 13
	MoveTagEnPassant = 14
	MoveTagNull      = 15
)

// NewMove creates a quiet or capturing move with no special tag.
func NewMove(start, end int) Move {
	return Move(start<<10 | end<<4 | MoveTagNormal)
}

// NewCastlingMove creates a castling move. which holds one bit of
// [CastlingRights] identifying which side is castling.
func NewCastlingMove(which CastlingRights) Move {
	return Move(which<<10 | MoveTagCastling)
}

// NewEnPassantMove creates an en passant capture move.
func NewEnPassantMove(start, end int) Move {
	return Move(start<<10 | end<<4 | MoveTagEnPassant)
}

// NewPromotionMove creates a move that promotes a pawn reaching the back rank
// to promoPiece.
func NewPromotionMove(start, end int, promoPiece Piece) Move {
	return Move(start<<10 | end<<4 | (promoPiece + 1))
}

// NewNullMove creates the null move, which names no piece movement. The
// search returns it when a position has no moves; [Position.MakeMove] has no
// case for it.
func NewNullMove() Move {
	return Move(MoveTagNull)
}

func (m Move) Start() int { return int(m>>10) & 0x3F }
func (m Move) End() int   { return int(m>>4) & 0x3F }
func (m Move) Tag() int   { return int(m) & 0xF }

func (m Move) IsNull() bool      { return m.Tag() == MoveTagNull }
func (m Move) IsCastling() bool  { return m.Tag() == MoveTagCastling }
func (m Move) IsEnPassant() bool { return m.Tag() == MoveTagEnPassant }
func (m Move) IsNormal() bool    { return m.Tag() == MoveTagNormal }

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	t := m.Tag()
	return t != MoveTagNormal && t != MoveTagCastling &&
		t != MoveTagEnPassant && t != MoveTagNull
}

// PromoPiece returns the piece a promoting move promotes to. Only valid
// when [Move.IsPromotion] is true.
func (m Move) PromoPiece() Piece { return Piece(m.Tag() - 1) }

// CastlingSide returns the [CastlingRights] bit identifying a castling move's
// side. Only valid when [Move.IsCastling] is true.
func (m Move) CastlingSide() CastlingRights { return CastlingRights(m.Start()) }

/*
MoveList stores moves generated from a single position. The array is
preallocated to the maximum possible number of legal moves in any chess
position (218) to avoid dynamic memory allocations during search.
See https://www.talkchess.com/forum/viewtopic.php?t=61792
*/
type MoveList struct {
	Moves   [218]Move
	Count   int
}

// Push adds the move to the end of the move list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Slice returns the populated prefix of the move list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

var (
	// PieceSymbols maps each piece type to its FEN symbol.
	PieceSymbols = [12]byte{
		'P', 'p', 'N', 'n', 'B', 'b',
		'R', 'r', 'Q', 'q', 'K', 'k',
	}
	// Square2String maps each board square to its algebraic representation.
	Square2String = [64]string{
		"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
		"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
		"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
		"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
		"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
		"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
		"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
		"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
	}
)

// Piece is an alias type to avoid bothersome conversion between int and Piece.
type Piece = int

const (
	PieceWPawn Piece = iota
	PieceBPawn
	PieceWKnight
	PieceBKnight
	PieceWBishop
	PieceBBishop
	PieceWRook
	PieceBRook
	PieceWQueen
	PieceBQueen
	PieceWKing
	PieceBKing
	// To avoid magic numbers.
	PieceNone = -1
)

// Color is an alias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Opponent returns the other color.
func Opponent(c Color) Color { return 1 ^ c }

/*
CastlingRights defines the players' rights to perform castling moves.
  - bit 0: white king can O-O.
  - bit 1: white king can O-O-O.
  - bit 2: black king can O-O.
  - bit 3: black king can O-O-O.
*/
type CastlingRights = int

const (
	CastlingWhiteShort CastlingRights = 1
	CastlingWhiteLong  CastlingRights = 2
	CastlingBlackShort CastlingRights = 4
	CastlingBlackLong  CastlingRights = 8
)

// Result represents the possible outcomes of a chess game.
type Result int

const (
	ResultUnscored Result = iota // Default value: the game isn't finished yet.
	ResultCheckmate
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
	ResultResignation
	ResultDrawByAgreement
)
