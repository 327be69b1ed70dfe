/*
squarelist.go implements the move-list primitive: a bounded list of up to 8
target squares, filled from a bitmask of reachable squares so that move
generation can walk the targets by index.
*/

package corvid

// squareList is a fixed-capacity list of board squares, used to enumerate
// the destinations of a knight or king looked up from its attack table.
// Neither ever has more than 8 destination squares, so a flat array avoids a
// heap allocation. Pawns and sliding pieces (bishop/rook/queen) don't
// use this type: their reachable-square counts aren't bounded tightly enough
// for an 8-slot array, and their tables already return a mask directly.
type squareList struct {
	n       byte
	squares [8]int
}

// squareListFromMask converts a bitmask of reachable squares into a
// squareList, ordered from LSB to MSB.
func squareListFromMask(mask uint64) squareList {
	var l squareList
	for mask > 0 {
		l.squares[l.n] = popLSB(&mask)
		l.n++
	}
	return l
}
