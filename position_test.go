package corvid

import "testing"

func TestInitialPositionHasTwentyLegalMoves(t *testing.T) {
	p := NewPosition(InitialPos)
	var moves MoveList
	GenLegalMoves(p, &moves)
	if moves.Count != 20 {
		t.Errorf("initial position has %d legal moves, want 20", moves.Count)
	}
}

func TestMoveOrderingIsSorted(t *testing.T) {
	p := NewPosition(InitialPos)
	var moves MoveList
	GenPseudoLegalMoves(p.Current(), &moves)
	for i := 1; i < moves.Count; i++ {
		if moves.Moves[i-1] > moves.Moves[i] {
			t.Fatalf("moves not sorted ascending at index %d: %#x > %#x",
				i, moves.Moves[i-1], moves.Moves[i])
		}
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	p := NewPosition(InitialPos)
	before := *p.Current()

	var moves MoveList
	GenLegalMoves(p, &moves)
	for i := 0; i < moves.Count; i++ {
		p.MakeMove(moves.Moves[i])
		p.UnmakeMove()
		after := *p.Current()
		if after != before {
			t.Fatalf("move %#x: make/unmake didn't restore position exactly:\nbefore=%+v\nafter=%+v",
				moves.Moves[i], before, after)
		}
	}
}

func TestE2E4E7E5Sequence(t *testing.T) {
	p := NewPosition(InitialPos)
	initialScore := p.Current().PieceScore

	p.MakeMove(NewMove(SE2, SE4))
	p.MakeMove(NewMove(SE7, SE5))

	d := p.Current()
	if d.Color != ColorWhite {
		t.Errorf("after e4 e5, side to move = %d, want white", d.Color)
	}
	if d.PieceScore != initialScore {
		t.Errorf("after e4 e5 (no captures), piece score changed: %d != %d", d.PieceScore, initialScore)
	}
	if d.EPTarget >= 0 {
		t.Errorf("after e4 e5, en passant target should be cleared by the reply move, got %d", d.EPTarget)
	}

	want := computeZobristKey(d)
	if d.Hash != want {
		t.Errorf("incremental hash %#x != recomputed hash %#x", d.Hash, want)
	}
}

func TestSingleE4HasNoEnPassant(t *testing.T) {
	p := NewPosition(InitialPos)
	p.MakeMove(NewMove(SE2, SE4))
	if p.Current().EPTarget != -1 {
		t.Fatalf("after e2-e4 with no adjacent black pawn, en passant target should be null, got %d", p.Current().EPTarget)
	}

	var moves MoveList
	GenLegalMoves(p, &moves)
	for i := 0; i < moves.Count; i++ {
		if moves.Moves[i].IsEnPassant() {
			t.Errorf("no black pawn adjacent to e4, en passant move shouldn't be generated, got %#x", moves.Moves[i])
		}
	}
}

func TestDoublePushAdjacentToEnemyPawnRecordsEnPassant(t *testing.T) {
	// Black has a pawn on d4, so white's e2-e4 lands beside it and en
	// passant becomes available for black's next move.
	p := NewPosition("4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	p.MakeMove(NewMove(SE2, SE4))
	if p.Current().EPTarget != SE3 {
		t.Fatalf("after e2-e4 beside a black pawn on d4, en passant target should be e3 (%d), got %d", SE3, p.Current().EPTarget)
	}

	var moves MoveList
	GenLegalMoves(p, &moves)
	found := false
	for i := 0; i < moves.Count; i++ {
		if moves.Moves[i].IsEnPassant() {
			found = true
		}
	}
	if !found {
		t.Errorf("black pawn on d4 adjacent to e4, en passant move should be generated")
	}
}

func TestCastlingKingside(t *testing.T) {
	p := NewPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.MakeMove(NewCastlingMove(CastlingWhiteShort))

	d := p.Current()
	if d.GetPieceFromSquare(SE1) != PieceNone {
		t.Errorf("e1 should be empty after O-O")
	}
	if d.GetPieceFromSquare(SF1) != PieceWRook {
		t.Errorf("f1 should hold the white rook after O-O")
	}
	if d.GetPieceFromSquare(SG1) != PieceWKing {
		t.Errorf("g1 should hold the white king after O-O")
	}
	if d.GetPieceFromSquare(SH1) != PieceNone {
		t.Errorf("h1 should be empty after O-O")
	}
	if d.CastlingRights&(CastlingWhiteShort|CastlingWhiteLong) != 0 {
		t.Errorf("white castling rights should be fully cleared after castling, got %#x", d.CastlingRights)
	}

	want := computeZobristKey(d)
	if d.Hash != want {
		t.Errorf("incremental hash %#x != recomputed hash %#x after castling", d.Hash, want)
	}

	p.UnmakeMove()
	d = p.Current()
	if d.GetPieceFromSquare(SE1) != PieceWKing || d.GetPieceFromSquare(SH1) != PieceWRook {
		t.Errorf("unmake should restore the pre-castling king/rook squares")
	}
}

func TestPromotionToQueen(t *testing.T) {
	p := NewPosition("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	pawnValue := pieceWeights[0]
	queenValue := pieceWeights[4]
	before := p.Current().PieceScore

	p.MakeMove(NewPromotionMove(SA7, SA8, PieceWQueen))
	d := p.Current()

	if d.GetPieceFromSquare(SA7) != PieceNone {
		t.Errorf("a7 should be empty after promotion")
	}
	if d.GetPieceFromSquare(SA8) != PieceWQueen {
		t.Errorf("a8 should hold a white queen after promotion")
	}
	if want := before + (queenValue - pawnValue); d.PieceScore != want {
		t.Errorf("piece score after promotion = %d, want %d", d.PieceScore, want)
	}

	want := computeZobristKey(d)
	if d.Hash != want {
		t.Errorf("incremental hash %#x != recomputed hash %#x after promotion", d.Hash, want)
	}
}

func TestAllFourPromotionPiecesGenerated(t *testing.T) {
	p := NewPosition("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	var moves MoveList
	GenPseudoLegalMoves(p.Current(), &moves)

	seen := map[Piece]bool{}
	for i := 0; i < moves.Count; i++ {
		m := moves.Moves[i]
		if m.IsPromotion() && m.Start() == SA7 && m.End() == SA8 {
			seen[m.PromoPiece()] = true
		}
	}
	for _, want := range []Piece{PieceWKnight, PieceWBishop, PieceWRook, PieceWQueen} {
		if !seen[want] {
			t.Errorf("promotion to piece %d was not generated", want)
		}
	}
}

func TestOccupancyConsistency(t *testing.T) {
	p := NewPosition(InitialPos)
	d := p.Current()
	if d.Bitboards[12]&d.Bitboards[13] != 0 {
		t.Fatalf("white and black occupancy overlap")
	}

	var union uint64
	for piece := PieceWPawn; piece <= PieceBKing; piece++ {
		union |= d.Bitboards[piece]
	}
	if union != d.Bitboards[14] {
		t.Errorf("union of piece bitboards (%#x) != all-pieces bitboard (%#x)", union, d.Bitboards[14])
	}
}
