/*
search.go implements the game tree search: negamax with alpha-beta pruning
over a tree of [node]s stored in a [nodeArena], with transposition sharing so
that two move orders reaching the same position expand it only once.

Every score is kept from the perspective of the side to move at the node it
belongs to (the negamax convention), so a child's score is always negated
before being compared against its parent's alpha/beta window.
*/

package corvid

// Score bounds. Mirrors the ±0x007fffff convention of the engine this
// package is modeled on: large enough that no real evaluation collides with
// it, small enough that negating it never overflows int32.
const (
	scoreWhiteWin int32 = 0x007fffff
	scoreBlackWin int32 = -0x007fffff
	scoreDraw     int32 = 0
)

// searchOptions configures how createTree expands the tree.
type searchOptions struct {
	// followCaptures extends search one extra ply past the nominal depth
	// whenever the move made to reach a node was a capture, so the search
	// doesn't stop mid-exchange and misjudge a won piece as lost.
	followCaptures bool
	// presortMoves orders each node's children by their static leaf score
	// before searching them, so alpha-beta sees the best moves first and
	// prunes more of the tree.
	presortMoves bool
}

// searcher holds everything a search needs: the arena owning every expanded
// node, the transposition table sharing nodes across move orders, and the
// position the search walks by making and unmaking moves in place.
type searcher struct {
	arena   *nodeArena
	tt      *transpositionTable
	pos     *Position
	scoreFn scoreFunction
	opts    searchOptions
	root    nodeRef

	nodesSearched int
}

func newSearcher(pos *Position) *searcher {
	return &searcher{
		arena:   newNodeArena(4096),
		tt:      newTranspositionTable(),
		pos:     pos,
		scoreFn: scoreLevel1,
	}
}

// sideScore evaluates d with fn and flips the sign for black, so the result
// is always from the perspective of the side to move at d.
func sideScore(d *BitboardData, fn scoreFunction) int32 {
	s := fn(d)
	if d.Color == ColorBlack {
		return -s
	}
	return s
}

// populate expands ref's node: generates every legal move from the current
// position (which must be the position ref represents) and records a leaf
// NodePointer, holding a quick static score, for each one.
func (s *searcher) populate(ref nodeRef) {
	n := s.arena.get(ref)
	d := s.pos.Current()

	var moves MoveList
	GenLegalMoves(s.pos, &moves)

	if moves.Count == 0 {
		if d.InCheck() {
			n.score = scoreBlackWin
		} else {
			n.score = scoreDraw
		}
		n.children = nil
		return
	}

	n.score = sideScore(d, s.scoreFn)
	n.children = make([]childEntry, moves.Count)

	// When presorting, every candidate move is scored with the
	// mobility-aware level-2 score instead of the plain scoreFn, so the
	// ordering below has a richer ranking to work from.
	leafScoreFn := s.scoreFn
	if s.opts.presortMoves {
		leafScoreFn = scoreLevel2
	}
	for i := 0; i < moves.Count; i++ {
		m := moves.Moves[i]
		s.pos.MakeMove(m)
		capture := s.pos.Current().Captured != PieceNone
		leaf := sideScore(s.pos.Current(), leafScoreFn)
		s.pos.UnmakeMove()
		n.children[i] = childEntry{move: m, ptr: scorePointer(leaf, capture)}
	}

	if s.opts.presortMoves {
		sortChildrenByScore(n.children)
	}
}

// sortChildrenByScore insertion-sorts children descending by the move's
// static score from the parent's own perspective. A child's stored ptr.score
// is the leaf's sideScore at the child position -- i.e. from the opponent's
// perspective, same as node.score's convention -- so it's the negation of
// how good the move is for whoever is choosing among these children; the
// comparison below sorts ascending on the raw stored score to get descending
// parent-perspective order without materializing the negation.
//
// This reorders the children themselves, move and pointer together -- so
// after presorting, findMove's binary search
// precondition (ascending Move order) no longer holds and callers must use a
// linear scan instead. See [node.findMoveLinear].
func sortChildrenByScore(children []childEntry) {
	for i := 1; i < len(children); i++ {
		c := children[i]
		j := i - 1
		for j >= 0 && children[j].ptr.score > c.ptr.score {
			children[j+1] = children[j]
			j--
		}
		children[j+1] = c
	}
}

// findMoveLinear finds a child by move without assuming sorted order. Used
// after presorting has reordered a node's children by score instead of by
// Move value.
func (n *node) findMoveLinear(move Move) int {
	for i := range n.children {
		if n.children[i].move == move {
			return i
		}
	}
	panic(moveNotFoundError{move: move})
}

// ensureExpanded returns the nodeRef for child, expanding it via the
// transposition table or a fresh allocation if it hasn't been expanded yet.
// The position must already have child.move made on it.
func (s *searcher) ensureExpanded(child *childEntry) nodeRef {
	if child.ptr.isNode {
		return child.ptr.ref
	}

	hash := s.pos.Current().Hash
	if existing, ok := s.tt.get(hash); ok {
		if s.arena.get(existing) != nil {
			s.arena.addParent(existing)
			child.ptr = nodePointerTo(existing)
			return existing
		}
		s.tt.remove(hash)
	}

	ref := s.arena.alloc()
	n := s.arena.get(ref)
	n.color = s.pos.Current().Color
	n.parentCount = 1
	s.populate(ref)
	s.tt.set(hash, ref)

	child.ptr = nodePointerTo(ref)
	return ref
}

// createTree expands ref to remaining plies of depth using negamax with
// alpha-beta pruning, returning ref's score from the perspective of the side
// to move there. alpha and beta bound the score from that same perspective.
func (s *searcher) createTree(ref nodeRef, remaining int, alpha, beta int32) int32 {
	s.nodesSearched++
	n := s.arena.get(ref)

	if len(n.children) == 0 {
		return n.score
	}
	if remaining <= 0 {
		return n.score
	}

	best := scoreBlackWin - 1
	for i := range n.children {
		child := &n.children[i]

		childRemaining := remaining - 1
		if s.opts.followCaptures && child.ptr.capture {
			childRemaining = remaining
		}

		s.pos.MakeMove(child.move)
		childRef := s.ensureExpanded(child)
		score := -s.createTree(childRef, childRemaining, -beta, -alpha)
		s.pos.UnmakeMove()

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}

	// Re-fetch rather than reuse n: ensureExpanded above may have grown the
	// arena's backing slice, stranding n in an array that's no longer the
	// live one. The children slice itself stays valid either way since it's
	// shared by reference, but a write straight to n.score here would land
	// in the copy and never reach the node callers look up by ref.
	s.arena.get(ref).score = best
	return best
}

// Search runs a fresh root search to the given ply depth and returns the
// best move found together with its score (from the side to move's
// perspective). Every prior search's transposition table entries and
// arena-allocated nodes are discarded first: the table only stores weak
// refs into the arena, so wiping both together never leaves a dangling ref
// behind.
func (s *searcher) Search(depth int, opts searchOptions) (Move, int32) {
	s.opts = opts
	s.tt.reset()
	s.arena.reset()
	s.nodesSearched = 0

	root := s.arena.alloc()
	n := s.arena.get(root)
	n.color = s.pos.Current().Color
	n.parentCount = 1
	s.populate(root)
	s.tt.set(s.pos.Current().Hash, root)
	s.root = root

	score := s.createTree(root, depth, scoreBlackWin, scoreWhiteWin)
	move, _ := s.bestMove(root)
	return move, score
}

// bestMove returns the highest-scoring direct child of ref and its score,
// from ref's own perspective (i.e. negated from the child's perspective,
// whether or not the child was expanded into a node).
func (s *searcher) bestMove(ref nodeRef) (Move, int32) {
	n := s.arena.get(ref)
	bestIdx := -1
	best := scoreBlackWin - 1
	for i, c := range n.children {
		var sc int32
		if c.ptr.isNode {
			sc = -s.arena.get(c.ptr.ref).score
		} else {
			// ptr.score is the leaf's own sideScore at the child position --
			// the opponent's perspective, same convention as node.score --
			// so it has to be negated to land in ref's perspective too.
			sc = -c.ptr.score
		}
		if sc > best {
			best = sc
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return NewNullMove(), n.score
	}
	return n.children[bestIdx].move, best
}

// BestLine walks the principal variation from ref as far as the tree has
// actually been expanded.
func (s *searcher) BestLine(ref nodeRef) []Move {
	var line []Move
	cur := ref
	for {
		n := s.arena.get(cur)
		if n == nil || len(n.children) == 0 {
			break
		}
		m, _ := s.bestMove(cur)

		var idx int
		if s.opts.presortMoves {
			idx = n.findMoveLinear(m)
		} else {
			idx = n.findMove(m)
		}
		if !n.children[idx].ptr.isNode {
			break
		}
		line = append(line, m)
		cur = n.children[idx].ptr.ref
	}
	return line
}
