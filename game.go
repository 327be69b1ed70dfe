/*
game.go implements chess game state management: the Game type glues a
Position to legal move tracking, repetition detection, and the search tree,
and exposes the entry points a caller drives a game or an engine match
through.
*/

package corvid

// Game represents a single game in progress: a position, the legal moves
// available in it, and enough history to detect draws by repetition.
//
// It's the caller's responsibility to serialize access: PushMove, the
// search entry points, and the clock must not be called concurrently with
// each other.
type Game struct {
	LegalMoves MoveList
	position   *Position
	// repetitions maps Zobrist keys to the number of times each position has
	// occurred, so threefold repetition can be detected in O(1) per move.
	repetitions map[uint64]int
	Result      Result

	search *searcher

	whiteTime int
	blackTime int
	timeBonus int
}

// NewGame creates a Game at the standard starting position.
func NewGame() *Game {
	return NewGameFromFEN(InitialPos)
}

// NewGameFromFEN creates a Game at the position described by fen.
func NewGameFromFEN(fen string) *Game {
	pos := NewPosition(fen)
	g := &Game{
		position:    pos,
		repetitions: make(map[uint64]int, 1),
		Result:      ResultUnscored,
		search:      newSearcher(pos),
	}
	GenLegalMoves(g.position, &g.LegalMoves)
	g.repetitions[pos.Current().Hash] = 1
	return g
}

// PushMove plays m on the game's position and updates legal moves,
// repetition bookkeeping, and game-over detection. It's the caller's
// responsibility to have checked [Game.IsMoveLegal] first.
func (g *Game) PushMove(m Move) {
	moved := g.position.Current().GetPieceFromSquare(m.Start())
	irreversible := m.IsCastling() || m.IsEnPassant() || m.IsPromotion() ||
		moved == PieceWPawn || moved == PieceBPawn

	g.position.MakeMove(m)
	if c := g.position.Current().Captured; c != PieceNone {
		irreversible = true
	}

	// Irreversible moves make every earlier position unreachable again, so
	// the repetition count can't help; starting over keeps the map small.
	// https://www.chessprogramming.org/Irreversible_Moves
	if irreversible {
		clear(g.repetitions)
	}
	g.repetitions[g.position.Current().Hash]++

	GenLegalMoves(g.position, &g.LegalMoves)
	g.updateResult()
}

func (g *Game) updateResult() {
	switch {
	case g.LegalMoves.Count == 0 && g.position.Current().InCheck():
		g.Result = ResultCheckmate
	case g.LegalMoves.Count == 0:
		g.Result = ResultStalemate
	case g.IsInsufficientMaterial():
		g.Result = ResultInsufficientMaterial
	case g.position.Current().HalfmoveCnt >= 100:
		g.Result = ResultFiftyMove
	case g.IsThreefoldRepetition():
		g.Result = ResultThreefoldRepetition
	default:
		g.Result = ResultUnscored
	}
}

// IsThreefoldRepetition reports whether the current position has occurred
// three or more times since the last irreversible move.
func (g *Game) IsThreefoldRepetition() bool {
	return g.repetitions[g.position.Current().Hash] >= 3
}

// IsInsufficientMaterial reports whether neither side has enough material
// left to force checkmate:
//   - both sides have a bare king,
//   - one side has a king and a single minor piece against a bare king,
//   - both sides have a king and a bishop, the bishops on the same color, or
//   - both sides have a king and a knight.
func (g *Game) IsInsufficientMaterial() bool {
	const dark = uint64(0xAA55AA55AA55AA55)
	d := g.position.Current()

	if d.Bitboards[PieceWPawn] != 0 || d.Bitboards[PieceBPawn] != 0 ||
		d.Bitboards[PieceWRook] != 0 || d.Bitboards[PieceBRook] != 0 ||
		d.Bitboards[PieceWQueen] != 0 || d.Bitboards[PieceBQueen] != 0 {
		return false
	}

	wMinors := CountBits(d.Bitboards[PieceWKnight]) + CountBits(d.Bitboards[PieceWBishop])
	bMinors := CountBits(d.Bitboards[PieceBKnight]) + CountBits(d.Bitboards[PieceBBishop])

	if wMinors == 0 && bMinors == 0 {
		return true
	}
	if wMinors+bMinors == 1 {
		return true
	}
	if wMinors == 1 && bMinors == 1 {
		wb, bb := d.Bitboards[PieceWBishop], d.Bitboards[PieceBBishop]
		if wb != 0 && bb != 0 {
			return (wb&dark > 0) == (bb&dark > 0)
		}
		return d.Bitboards[PieceWKnight] != 0 && d.Bitboards[PieceBKnight] != 0
	}
	return false
}

// IsMoveLegal reports whether m is one of the moves available from the
// current position.
func (g *Game) IsMoveLegal(m Move) bool {
	for i := 0; i < g.LegalMoves.Count; i++ {
		if g.LegalMoves.Moves[i] == m {
			return true
		}
	}
	return false
}

// SetClock sets both players' remaining time and per-move bonus, in
// seconds.
func (g *Game) SetClock(control, bonus int) {
	g.whiteTime = control
	g.blackTime = control
	g.timeBonus = bonus
}

// SearchDepth runs a uniform-depth search and returns the best move found
// together with its score from the side to move's perspective.
func (g *Game) SearchDepth(plies int) (Move, int32) {
	return g.search.Search(plies, searchOptions{})
}

// SearchDepthWithCaptureExtension runs a search that extends one ply past
// the nominal depth whenever the move leading to a node was a capture, so
// the search doesn't stop in the middle of an exchange.
func (g *Game) SearchDepthWithCaptureExtension(plies int) (Move, int32) {
	return g.search.Search(plies, searchOptions{followCaptures: true})
}

// SearchDepthPresorted runs a search that orders each node's children by
// static score before expanding them, improving alpha-beta pruning at the
// cost of scoring every candidate move with the pricier mobility-aware
// evaluation.
func (g *Game) SearchDepthPresorted(plies int) (Move, int32) {
	return g.search.Search(plies, searchOptions{presortMoves: true})
}

// PrincipalVariation returns the best line found by the most recent search,
// as far as the search tree was actually expanded.
func (g *Game) PrincipalVariation() []Move {
	return g.search.BestLine(g.search.root)
}
