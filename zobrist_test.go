package corvid

import "testing"

func TestComputeZobristKeyMatchesInitialPosition(t *testing.T) {
	p := NewPosition(InitialPos)
	d := p.Current()
	if d.Hash != computeZobristKey(d) {
		t.Errorf("stored hash %#x != from-scratch hash %#x for the initial position", d.Hash, computeZobristKey(d))
	}
}

func TestZobristKeyChangesWithSideToMove(t *testing.T) {
	white := NewPosition(InitialPos)
	black := NewPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")

	if white.Current().Hash == black.Current().Hash {
		t.Errorf("identical boards with different side to move should hash differently")
	}
	if white.Current().Hash^colorKey != black.Current().Hash {
		t.Errorf("toggling colorKey on white's hash should reach black's hash")
	}
}

func TestZobristKeyChangesWithCastlingRights(t *testing.T) {
	full := NewPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	noRights := NewPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	if full.Current().Hash == noRights.Current().Hash {
		t.Errorf("different castling rights should hash differently")
	}
}

func TestZobristKeyIsPurelyFunctionOfState(t *testing.T) {
	// Two different move orders that transpose to the same position must
	// hash identically -- this is what makes the transposition table work.
	a := NewPosition(InitialPos)
	a.MakeMove(NewMove(SG1, SF3))
	a.MakeMove(NewMove(SG8, SF6))
	a.MakeMove(NewMove(SB1, SC3))
	a.MakeMove(NewMove(SB8, SC6))

	b := NewPosition(InitialPos)
	b.MakeMove(NewMove(SB1, SC3))
	b.MakeMove(NewMove(SB8, SC6))
	b.MakeMove(NewMove(SG1, SF3))
	b.MakeMove(NewMove(SG8, SF6))

	if a.Current().Hash != b.Current().Hash {
		t.Errorf("transposed positions should hash identically: %#x != %#x", a.Current().Hash, b.Current().Hash)
	}
	if a.Current().Hash != computeZobristKey(a.Current()) {
		t.Errorf("incremental hash drifted from the from-scratch recomputation")
	}
}
