/*
evaluator.go implements position scoring at three levels: material only
(scoreLevel0), material plus pawn structure (scoreLevel1, the search's
default score), and that plus piece mobility (scoreLevel2, used by the
search when presorting moves). Every term is in centipawns
from white's perspective; [moveRank] flips the sign for black so search code
can always maximize.
*/

package corvid

// scoreLevel0 considers only material balance.
func scoreLevel0(d *BitboardData) int32 {
	return d.PieceScore
}

// scoreLevel1 considers material balance plus pawn structure.
func scoreLevel1(d *BitboardData) int32 {
	return scoreLevel0(d) + scorePawnStructure(d)
}

// Weights are expressed in centipawns, matching [pieceWeights].
const (
	pawnDefendingPawn  = 12
	pawnDefendingPiece = 8
	pawnBlocked        = -6
	pawnDoubled        = -20
	pawnCenterAttack   = 5

	pawnRank2 = 4
	pawnRank3 = 8
	pawnRank4 = 11
	pawnRank5 = 15
	pawnRank6 = 20
	pawnRank7 = 40
)

// scorePawnStructure scores pawn advancement, connectivity (to other pawns
// and to other pieces), doubling, blockage, and central control. Every
// contribution is actually summed (using +=) rather than chained with
// commas, so every term -- not just the last one evaluated -- affects the
// final score.
func scorePawnStructure(d *BitboardData) int32 {
	var output int32
	wp, bp := d.Bitboards[PieceWPawn], d.Bitboards[PieceBPawn]
	occ := d.Bitboards[14]
	center := uint64(0x0000c3c3c3c30000)

	rankWeights := [...]int32{0, 0, pawnRank2, pawnRank3, pawnRank4, pawnRank5, pawnRank6, pawnRank7}
	for r := 1; r <= 6; r++ {
		wCount := int32(pawnsInRank(wp, r))
		bCount := int32(pawnsInRank(bp, 7-r))
		output += rankWeights[r+1] * (wCount - bCount)
	}

	wDefended := int32(piecesAttacked(wp, wp, ColorWhite))
	bDefended := int32(piecesAttacked(bp, bp, ColorBlack))
	output += pawnDefendingPawn * (wDefended - bDefended)

	wNonPawns, bNonPawns := d.Bitboards[12]&^wp, d.Bitboards[13]&^bp
	wDefendedPieces := int32(piecesAttacked(wp, wNonPawns, ColorWhite))
	bDefendedPieces := int32(piecesAttacked(bp, bNonPawns, ColorBlack))
	output += pawnDefendingPiece * (wDefendedPieces - bDefendedPieces)

	wDoubled := int32(doubledPawns(wp))
	bDoubled := int32(doubledPawns(bp))
	output += pawnDoubled * (wDoubled - bDoubled)

	wBlocked := int32(blockedPawns(wp, occ, ColorWhite))
	bBlocked := int32(blockedPawns(bp, occ, ColorBlack))
	output += pawnBlocked * (wBlocked - bBlocked)

	wCenter := int32(squareControl(wp, center, ColorWhite))
	bCenter := int32(squareControl(bp, center, ColorBlack))
	output += pawnCenterAttack * (wCenter - bCenter)

	return output
}

// pieceMobilityWeights is indexed by [Piece]; white pieces contribute
// positively and black pieces negatively so a plain sum nets out color.
var pieceMobilityWeights = [12]int32{
	1, -1, // pawns
	4, -4, // knights
	5, -5, // bishops
	2, -2, // rooks
	1, -1, // queens
	0, 0, // kings: mobility isn't a useful signal this close to the king
}

// scoreMobility scores how many squares every piece can reach, weighted by
// piece type, as a cheap stand-in for piece activity.
func scoreMobility(d *BitboardData) int32 {
	var output int32
	friendlyWhite, friendlyBlack := d.Bitboards[12], d.Bitboards[13]

	count := func(piece Piece, moves uint64, friendly uint64) int32 {
		return pieceMobilityWeights[piece] * int32(CountBits(moves &^ friendly))
	}

	output += pieceMobilityWeights[PieceWPawn] * int32(CountBits(pawnPushTargets(d.Bitboards[PieceWPawn], d.Bitboards[14], ColorWhite)|pawnAttackTargets(d.Bitboards[PieceWPawn], ColorWhite)&d.Bitboards[13]))
	output += pieceMobilityWeights[PieceBPawn] * int32(CountBits(pawnPushTargets(d.Bitboards[PieceBPawn], d.Bitboards[14], ColorBlack)|pawnAttackTargets(d.Bitboards[PieceBPawn], ColorBlack)&d.Bitboards[12]))

	for bb := d.Bitboards[PieceWKnight]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceWKnight, knightAttacks[sq], friendlyWhite)
	}
	for bb := d.Bitboards[PieceBKnight]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceBKnight, knightAttacks[sq], friendlyBlack)
	}
	for bb := d.Bitboards[PieceWBishop]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceWBishop, lookupBishopAttacks(sq, friendlyWhite, friendlyBlack), friendlyWhite)
	}
	for bb := d.Bitboards[PieceBBishop]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceBBishop, lookupBishopAttacks(sq, friendlyBlack, friendlyWhite), friendlyBlack)
	}
	for bb := d.Bitboards[PieceWRook]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceWRook, lookupRookAttacks(sq, friendlyWhite, friendlyBlack), friendlyWhite)
	}
	for bb := d.Bitboards[PieceBRook]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceBRook, lookupRookAttacks(sq, friendlyBlack, friendlyWhite), friendlyBlack)
	}
	for bb := d.Bitboards[PieceWQueen]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceWQueen, lookupQueenAttacks(sq, friendlyWhite, friendlyBlack), friendlyWhite)
	}
	for bb := d.Bitboards[PieceBQueen]; bb > 0; {
		sq := popLSB(&bb)
		output += count(PieceBQueen, lookupQueenAttacks(sq, friendlyBlack, friendlyWhite), friendlyBlack)
	}

	return output
}

// scoreLevel2 adds mobility on top of scoreLevel1. It's pricier than
// scoreLevel1 -- it walks every piece's attack set rather than just the pawn
// bitboards -- so [searcher.populate] only uses it to score children when
// presorting is switched on.
func scoreLevel2(d *BitboardData) int32 {
	return scoreLevel1(d) + scoreMobility(d)
}

// scoreFunction scores a position; it's the type [node.populate] uses so the
// caller can pick the cheaper or pricier evaluation.
type scoreFunction func(*BitboardData) int32

// moveRank provisionally makes move, scores the resulting position with
// scoreLevel1, and unmakes it -- giving a quick heuristic for sorting moves
// before a full search expands them. The score is negated for black so that
// higher is always better for the side that just moved.
func moveRank(p *Position, move Move) int32 {
	mover := p.Current().Color
	p.MakeMove(move)
	s := scoreLevel1(p.Current())
	p.UnmakeMove()
	if mover == ColorBlack {
		return -s
	}
	return s
}
