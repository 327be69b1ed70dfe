/*
position.go implements the position representation: a fixed-depth history
stack of bitboard snapshots ([BitboardData]) with reversible make/unmake, and
pseudo-legal move enumeration built on the move tables in slidetables.go,
leapertables.go, and pawntables.go.

[Position.MakeMove] copies the current snapshot into the next slot of an
internal stack and applies the move to that copy (the Zobrist hash is updated
incrementally, the material score is recounted from the bitboards).
[Position.UnmakeMove] pops the stack, so every field of the earlier ply comes
back unchanged without any recomputation.
*/

package corvid

import "slices"

// maxSearchDepth bounds how many plies of history a Position can hold. It
// must be at least as large as the deepest search this package performs plus
// the number of moves played before the search started.
const maxSearchDepth = 256

// BitboardData is a single ply's worth of position state. Position.history
// is a fixed array of these, indexed by ply depth.
type BitboardData struct {
	// Bitboards[0..11] are indexed by [Piece]; [12] is all white pieces,
	// [13] is all black pieces, [14] is all pieces.
	Bitboards [15]uint64

	Color          Color
	CastlingRights CastlingRights
	// EPTarget is the square a pawn can capture en passant onto, or -1.
	EPTarget int
	HalfmoveCnt int
	FullmoveCnt int

	// Hash is the Zobrist key of this exact position, maintained
	// incrementally across make/unmake.
	Hash uint64
	// PieceScore is the material balance in centipawns, white minus black.
	PieceScore int32

	WhiteKing, BlackKing int

	// Move is the move that produced this ply from the previous one.
	// It is the zero Move in the root position.
	Move Move
	// Captured is the piece captured by Move, or PieceNone.
	Captured Piece
}

// Position is a chess position together with the history needed to unmake
// every move played since the position was created.
type Position struct {
	history [maxSearchDepth]BitboardData
	depth   int
}

// Current returns the BitboardData for the position's current ply.
func (p *Position) Current() *BitboardData { return &p.history[p.depth] }

// Depth returns the number of moves made since the position was created.
func (p *Position) Depth() int { return p.depth }

// NewPosition creates a Position at the root of its history from a FEN
// string.
func NewPosition(fen string) *Position {
	p := &Position{}
	data := &p.history[0]
	*data = parseFENData(fen)
	data.Hash = computeZobristKey(data)
	return p
}

func colorOf(piece Piece) Color { return Color(piece & 1) }

// GetPieceFromSquare returns the piece occupying the square, or PieceNone.
func (d *BitboardData) GetPieceFromSquare(square int) Piece {
	mask := uint64(1) << uint(square)
	if d.Bitboards[14]&mask == 0 {
		return PieceNone
	}
	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		if d.Bitboards[piece]&mask != 0 {
			return piece
		}
	}
	return PieceNone
}

func (d *BitboardData) placePiece(piece Piece, square int) {
	mask := uint64(1) << uint(square)
	d.Bitboards[piece] |= mask
	d.Bitboards[12+colorOf(piece)] |= mask
	d.Bitboards[14] |= mask
}

func (d *BitboardData) removePiece(piece Piece, square int) {
	mask := ^(uint64(1) << uint(square))
	d.Bitboards[piece] &= mask
	d.Bitboards[12+colorOf(piece)] &= mask
	d.Bitboards[14] &= mask
}

// recordEPIfAdjacent sets EPTarget to target only if an enemy pawn actually
// sits beside the just-landed pawn at end, able to capture onto target next
// ply. mover is the color that just pushed; a double push with no capturing
// pawn beside it leaves no en-passant opportunity, so EPTarget stays null.
func (d *BitboardData) recordEPIfAdjacent(target, end int, mover Color) {
	enemyPawn := PieceWPawn + Opponent(mover)
	enemyPawns := d.Bitboards[enemyPawn]
	file := end % 8
	if file > 0 && enemyPawns&(uint64(1)<<uint(end-1)) != 0 {
		d.EPTarget = target
	}
	if file < 7 && enemyPawns&(uint64(1)<<uint(end+1)) != 0 {
		d.EPTarget = target
	}
}

// MakeMove applies m to the current position, pushing a new ply onto the
// history stack. It panics if the history stack is already at capacity --
// this is a programmer error (search depth misconfigured), not a condition
// callers are expected to recover from.
func (p *Position) MakeMove(m Move) {
	if p.depth+1 >= maxSearchDepth {
		panic(depthOverflowError{depth: p.depth + 1})
	}

	prev := &p.history[p.depth]
	next := &p.history[p.depth+1]
	*next = *prev
	next.Move = m
	next.Captured = PieceNone
	next.Color = Opponent(prev.Color)
	next.FullmoveCnt = prev.FullmoveCnt
	if prev.Color == ColorBlack {
		next.FullmoveCnt++
	}
	next.HalfmoveCnt = prev.HalfmoveCnt + 1

	prevEP := prev.EPTarget
	next.EPTarget = -1

	switch {
	case m.IsCastling():
		makeCastling(next, m.CastlingSide())
		next.HalfmoveCnt = prev.HalfmoveCnt + 1
	case m.IsEnPassant():
		makeEnPassant(next, m, prev.Color)
		next.HalfmoveCnt = 0
	case m.IsPromotion():
		makePromotion(next, m, prev.Color)
		next.HalfmoveCnt = 0
	default:
		moved := prev.GetPieceFromSquare(m.Start())
		captured := prev.GetPieceFromSquare(m.End())
		next.removePiece(moved, m.Start())
		if captured != PieceNone {
			next.removePiece(captured, m.End())
			next.Captured = captured
			next.HalfmoveCnt = 0
		}
		next.placePiece(moved, m.End())

		if moved == PieceWPawn || moved == PieceBPawn {
			next.HalfmoveCnt = 0
			if m.End()-m.Start() == 16 {
				next.recordEPIfAdjacent(m.Start()+8, m.End(), prev.Color)
			} else if m.Start()-m.End() == 16 {
				next.recordEPIfAdjacent(m.End()+8, m.End(), prev.Color)
			}
		}
		if moved == PieceWKing {
			next.WhiteKing = m.End()
		} else if moved == PieceBKing {
			next.BlackKing = m.End()
		}
	}

	next.CastlingRights = prev.CastlingRights &^ castlingLoss(m, prev)

	next.PieceScore = recomputeMaterial(next)
	next.Hash = prev.Hash ^
		colorKey ^
		castlingKeys[prev.CastlingRights] ^ castlingKeys[next.CastlingRights] ^
		epKey(prevEP) ^ epKey(next.EPTarget)
	next.Hash = rehashMove(next.Hash, prev, next, m)

	p.depth++
}

func epKey(sq int) uint64 {
	if sq < 0 {
		return 0
	}
	return epKeys[sq]
}

// castlingLoss returns the castling-rights bits a move revokes: moving a
// king or rook off its home square, or capturing a rook on its home square.
func castlingLoss(m Move, prev *BitboardData) CastlingRights {
	if m.IsCastling() {
		if prev.Color == ColorWhite {
			return CastlingWhiteShort | CastlingWhiteLong
		}
		return CastlingBlackShort | CastlingBlackLong
	}

	var lost CastlingRights
	touch := func(sq int) {
		switch sq {
		case SE1:
			lost |= CastlingWhiteShort | CastlingWhiteLong
		case SH1:
			lost |= CastlingWhiteShort
		case SA1:
			lost |= CastlingWhiteLong
		case SE8:
			lost |= CastlingBlackShort | CastlingBlackLong
		case SH8:
			lost |= CastlingBlackShort
		case SA8:
			lost |= CastlingBlackLong
		}
	}
	touch(m.Start())
	touch(m.End())
	return lost
}

func makeCastling(next *BitboardData, side CastlingRights) {
	switch side {
	case CastlingWhiteShort:
		next.removePiece(PieceWKing, SE1)
		next.placePiece(PieceWKing, SG1)
		next.removePiece(PieceWRook, SH1)
		next.placePiece(PieceWRook, SF1)
		next.WhiteKing = SG1
	case CastlingWhiteLong:
		next.removePiece(PieceWKing, SE1)
		next.placePiece(PieceWKing, SC1)
		next.removePiece(PieceWRook, SA1)
		next.placePiece(PieceWRook, SD1)
		next.WhiteKing = SC1
	case CastlingBlackShort:
		next.removePiece(PieceBKing, SE8)
		next.placePiece(PieceBKing, SG8)
		next.removePiece(PieceBRook, SH8)
		next.placePiece(PieceBRook, SF8)
		next.BlackKing = SG8
	case CastlingBlackLong:
		next.removePiece(PieceBKing, SE8)
		next.placePiece(PieceBKing, SC8)
		next.removePiece(PieceBRook, SA8)
		next.placePiece(PieceBRook, SD8)
		next.BlackKing = SC8
	}
}

func makeEnPassant(next *BitboardData, m Move, mover Color) {
	pawn := PieceWPawn
	captured := PieceBPawn
	capturedSquare := m.End() - 8
	if mover == ColorBlack {
		pawn = PieceBPawn
		captured = PieceWPawn
		capturedSquare = m.End() + 8
	}
	next.removePiece(pawn, m.Start())
	next.placePiece(pawn, m.End())
	next.removePiece(captured, capturedSquare)
	next.Captured = captured
}

func makePromotion(next *BitboardData, m Move, mover Color) {
	pawn := PieceWPawn
	if mover == ColorBlack {
		pawn = PieceBPawn
	}
	captured := next.GetPieceFromSquare(m.End())
	next.removePiece(pawn, m.Start())
	if captured != PieceNone {
		next.removePiece(captured, m.End())
		next.Captured = captured
	}
	next.placePiece(m.PromoPiece(), m.End())
}

func recomputeMaterial(d *BitboardData) int32 {
	var score int32
	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		if piece == PieceWKing || piece == PieceBKing {
			continue
		}
		weight := pieceWeights[piece/2]
		n := int32(CountBits(d.Bitboards[piece]))
		if colorOf(piece) == ColorWhite {
			score += weight * n
		} else {
			score -= weight * n
		}
	}
	return score
}

// UnmakeMove pops the most recently made move off the history stack. It
// panics if called on a position with no moves left to unmake.
func (p *Position) UnmakeMove() {
	if p.depth == 0 {
		panic("corvid: unmake called with empty history stack")
	}
	p.depth--
}

// GenPseudoLegalMoves appends every pseudo-legal move available to the side
// to move into l, leaving it sorted ascending by packed Move value.
func GenPseudoLegalMoves(d *BitboardData, l *MoveList) {
	l.Count = 0
	genPawnMoves(d, l)
	genKnightMoves(d, l)
	genSlidingMoves(d, l, PieceWBishop, lookupBishopAttacks)
	genSlidingMoves(d, l, PieceWRook, lookupRookAttacks)
	genSlidingMoves(d, l, PieceWQueen, lookupQueenAttacks)
	genKingMoves(d, l)
	slices.Sort(l.Moves[:l.Count])
}

func genPawnMoves(d *BitboardData, l *MoveList) {
	color := d.Color
	pawn, promoRank := PieceWPawn, rank(8)
	if color == ColorBlack {
		pawn, promoRank = PieceBPawn, rank(1)
	}
	enemy := d.Bitboards[12+Opponent(color)]
	occupied := d.Bitboards[14]

	pawns := d.Bitboards[pawn]
	for bb := pawns; bb > 0; {
		from := popLSB(&bb)
		fromMask := uint64(1) << uint(from)

		targets := pawnPushTargets(fromMask, occupied, color)
		captures := pawnAttackTargets(fromMask, color) & enemy

		for t := targets | captures; t > 0; {
			to := popLSB(&t)
			if (uint64(1)<<uint(to))&promoRank != 0 {
				l.Push(NewPromotionMove(from, to, pawn+2)) // knight
				l.Push(NewPromotionMove(from, to, pawn+4)) // bishop
				l.Push(NewPromotionMove(from, to, pawn+6)) // rook
				l.Push(NewPromotionMove(from, to, pawn+8)) // queen
			} else {
				l.Push(NewMove(from, to))
			}
		}

		if d.EPTarget >= 0 {
			attacks := pawnAttackTargets(fromMask, color)
			if attacks&(uint64(1)<<uint(d.EPTarget)) != 0 {
				l.Push(NewEnPassantMove(from, d.EPTarget))
			}
		}
	}
}

func genKnightMoves(d *BitboardData, l *MoveList) {
	color := d.Color
	knight := PieceWKnight + color
	friendly := d.Bitboards[12+color]
	for bb := d.Bitboards[knight]; bb > 0; {
		from := popLSB(&bb)
		targets := squareListFromMask(knightAttacks[from] &^ friendly)
		for i := byte(0); i < targets.n; i++ {
			l.Push(NewMove(from, targets.squares[i]))
		}
	}
}

func genKingMoves(d *BitboardData, l *MoveList) {
	color := d.Color
	king := PieceWKing + color
	friendly := d.Bitboards[12+color]
	from := bitScan(d.Bitboards[king])
	targets := squareListFromMask(kingAttacks[from] &^ friendly)
	for i := byte(0); i < targets.n; i++ {
		l.Push(NewMove(from, targets.squares[i]))
	}

	genCastlingMoves(d, l)
}

func genCastlingMoves(d *BitboardData, l *MoveList) {
	occ := d.Bitboards[14]
	opp := Opponent(d.Color)
	if d.Color == ColorWhite {
		if d.CastlingRights&CastlingWhiteShort != 0 && occ&(F1|G1) == 0 &&
			!squareAttacked(d, SE1, opp) && !squareAttacked(d, SF1, opp) && !squareAttacked(d, SG1, opp) {
			l.Push(NewCastlingMove(CastlingWhiteShort))
		}
		if d.CastlingRights&CastlingWhiteLong != 0 && occ&(B1|C1|D1) == 0 &&
			!squareAttacked(d, SE1, opp) && !squareAttacked(d, SD1, opp) && !squareAttacked(d, SC1, opp) {
			l.Push(NewCastlingMove(CastlingWhiteLong))
		}
	} else {
		if d.CastlingRights&CastlingBlackShort != 0 && occ&(F8|G8) == 0 &&
			!squareAttacked(d, SE8, opp) && !squareAttacked(d, SF8, opp) && !squareAttacked(d, SG8, opp) {
			l.Push(NewCastlingMove(CastlingBlackShort))
		}
		if d.CastlingRights&CastlingBlackLong != 0 && occ&(B8|C8|D8) == 0 &&
			!squareAttacked(d, SE8, opp) && !squareAttacked(d, SD8, opp) && !squareAttacked(d, SC8, opp) {
			l.Push(NewCastlingMove(CastlingBlackLong))
		}
	}
}

func genSlidingMoves(d *BitboardData, l *MoveList, whitePiece Piece, lookup func(int, uint64, uint64) uint64) {
	color := d.Color
	piece := whitePiece + color
	friendly := d.Bitboards[12+color]
	enemy := d.Bitboards[12+Opponent(color)]
	for bb := d.Bitboards[piece]; bb > 0; {
		from := popLSB(&bb)
		for t := lookup(from, friendly, enemy) &^ friendly; t > 0; {
			l.Push(NewMove(from, popLSB(&t)))
		}
	}
}

// squareAttacked reports whether square is attacked by any piece of the
// given color in the position.
func squareAttacked(d *BitboardData, square int, by Color) bool {
	// Slide outward from square as if it held a piece of the defending side:
	// defenders block, and the first attacker on each line is included.
	friendly := d.Bitboards[12+Opponent(by)]
	enemy := d.Bitboards[12+by]

	if pawnAttacks[Opponent(by)][square]&d.Bitboards[PieceWPawn+by] != 0 {
		return true
	}
	if knightAttacks[square]&d.Bitboards[PieceWKnight+by] != 0 {
		return true
	}
	if kingAttacks[square]&d.Bitboards[PieceWKing+by] != 0 {
		return true
	}
	if lookupBishopAttacks(square, friendly, enemy)&d.Bitboards[PieceWBishop+by] != 0 {
		return true
	}
	if lookupRookAttacks(square, friendly, enemy)&d.Bitboards[PieceWRook+by] != 0 {
		return true
	}
	if lookupQueenAttacks(square, friendly, enemy)&d.Bitboards[PieceWQueen+by] != 0 {
		return true
	}
	return false
}

// InCheck reports whether the side to move's king is currently attacked.
func (d *BitboardData) InCheck() bool {
	king := d.WhiteKing
	if d.Color == ColorBlack {
		king = d.BlackKing
	}
	return squareAttacked(d, king, Opponent(d.Color))
}

// GenLegalMoves generates every legal move for the side to move: every
// pseudo-legal move that doesn't leave the mover's own king in check.
//
// The move tables themselves generate pseudo-legal moves only -- legality
// w.r.t. king safety is checked here, after the fact, by making and
// immediately unmaking each candidate on a scratch position.
func GenLegalMoves(p *Position, l *MoveList) {
	var pseudo MoveList
	GenPseudoLegalMoves(p.Current(), &pseudo)

	mover := p.Current().Color
	l.Count = 0
	for i := 0; i < pseudo.Count; i++ {
		m := pseudo.Moves[i]
		p.MakeMove(m)
		if !squareAttacked(p.Current(), kingSquareOf(p.Current(), mover), Opponent(mover)) {
			l.Push(m)
		}
		p.UnmakeMove()
	}
}

func kingSquareOf(d *BitboardData, color Color) int {
	if color == ColorWhite {
		return d.WhiteKing
	}
	return d.BlackKing
}
