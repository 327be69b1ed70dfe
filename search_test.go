package corvid

import "testing"

func TestSearchFindsMateInOne(t *testing.T) {
	// Black king boxed into g8 by its own back rank; the white king on g6
	// covers f7/g7/h7 and the white rook delivers Ra1-a8#.
	p := NewPosition("6k1/8/6K1/8/8/8/8/R7 w - - 0 1")
	s := newSearcher(p)

	move, score := s.Search(2, searchOptions{})
	if move != NewMove(SA1, SA8) {
		t.Errorf("best move = %#x, want Ra1-a8 (%#x, the only mating move)", uint16(move), uint16(NewMove(SA1, SA8)))
	}
	if score != scoreWhiteWin {
		t.Errorf("score after finding mate = %d, want %d", score, scoreWhiteWin)
	}
}

func TestSearchReturnsFiniteScoreAtDepth(t *testing.T) {
	// Kasparov #1.
	p := NewPosition("1rb2rk1/1pqn1p1p/2pN2p1/p1N2P2/Pn1QP3/1P5P/4B1P1/2R2RK1 w - - 1 27")
	s := newSearcher(p)

	move, score := s.Search(4, searchOptions{})
	if move == NewNullMove() {
		t.Fatalf("search returned a null move at depth 4 from a position with legal moves")
	}
	if score <= scoreBlackWin || score >= scoreWhiteWin {
		t.Errorf("score %d should be finite (strictly between the mate bounds)", score)
	}

	line := s.BestLine(s.root)
	if len(line) > 4 {
		t.Errorf("principal variation has %d moves, want at most 4", len(line))
	}
	if len(line) == 0 {
		t.Errorf("principal variation should not be empty for a searched root")
	}
}

func TestSearchScoreIsNegamaxSymmetric(t *testing.T) {
	p := NewPosition("1rb2rk1/1pqn1p1p/2pN2p1/p1N2P2/Pn1QP3/1P5P/4B1P1/2R2RK1 w - - 1 27")
	s := newSearcher(p)

	_, rootScore := s.Search(3, searchOptions{})

	bestMoveFound, _ := s.bestMove(s.root)
	root := s.arena.get(s.root)
	idx := root.findMove(bestMoveFound)
	if !root.children[idx].ptr.isNode {
		t.Skip("best child was never expanded into a node; nothing to compare")
	}
	childScore := s.arena.get(root.children[idx].ptr.ref).score
	if rootScore != -childScore {
		t.Errorf("root score %d should be the negation of its best child's score %d", rootScore, childScore)
	}
}

// TestEnsureExpandedSharesTranspositions checks that two independent move
// orders reaching the same Zobrist key expand the position exactly once and
// both edges end up pointing at one Node with parentCount == 2.
func TestEnsureExpandedSharesTranspositions(t *testing.T) {
	p := NewPosition(InitialPos)
	s := newSearcher(p)

	playOrderA := func() {
		s.pos.MakeMove(NewMove(SE2, SE4))
		s.pos.MakeMove(NewMove(SC7, SC6))
		s.pos.MakeMove(NewMove(SD2, SD4))
		s.pos.MakeMove(NewMove(SD7, SD5))
	}
	playOrderB := func() {
		s.pos.MakeMove(NewMove(SD2, SD4))
		s.pos.MakeMove(NewMove(SD7, SD5))
		s.pos.MakeMove(NewMove(SE2, SE4))
		s.pos.MakeMove(NewMove(SC7, SC6))
	}
	unmakeFour := func() {
		for i := 0; i < 4; i++ {
			s.pos.UnmakeMove()
		}
	}

	playOrderA()
	hashA := s.pos.Current().Hash
	unmakeFour()

	playOrderB()
	hashB := s.pos.Current().Hash
	unmakeFour()

	if hashA != hashB {
		t.Fatalf("expected both move orders to transpose to the same position, got hashes %#x and %#x", hashA, hashB)
	}

	var childA, childB childEntry
	playOrderA()
	refA := s.ensureExpanded(&childA)
	unmakeFour()

	playOrderB()
	refB := s.ensureExpanded(&childB)
	unmakeFour()

	if refA != refB {
		t.Fatalf("transposed position expanded into two different nodes: %+v vs %+v", refA, refB)
	}
	n := s.arena.get(refA)
	if n.parentCount != 2 {
		t.Errorf("parentCount = %d after two independent edges reached the same node, want 2", n.parentCount)
	}
}
