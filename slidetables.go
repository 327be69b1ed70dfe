/*
slidetables.go implements the move tables for the four sliding directions
(horizontal, vertical, and the two diagonals) used by rooks, bishops, and
queens. Each table precalculates, for every square and every possible 8-bit
occupancy combo along its line, the bitmask of squares a piece on that square
could reach -- combining the friendly and enemy combos produced by the
[collisionTable] into a single lookup so move generation never has to walk a
ray square by square during search.
*/

package corvid

// hTable answers horizontal (rank) sliding moves.
type hTable struct {
	masks [64]uint64
	moves [8][256]uint64
}

func (t *hTable) comboToMask(square int, combo byte) uint64 {
	return uint64(combo) << uint((square/8)*8)
}

func (t *hTable) maskToCombo(square int, mask uint64) byte {
	return byte(mask >> uint((square/8)*8))
}

func newHTable() *hTable {
	t := &hTable{}
	for i := 0; i < 64; i++ {
		t.masks[i] = 0xFF << uint((i/8)*8)
	}
	for rank := 0; rank < 8; rank++ {
		for combo := 0; combo < 256; combo++ {
			t.moves[rank][combo] = t.comboToMask(rank*8, byte(combo))
		}
	}
	return t
}

func (t *hTable) attacks(square int, friendly, enemy uint64) uint64 {
	eCombo := ct.e[square%8][t.maskToCombo(square, enemy)]
	fCombo := ct.f[square%8][t.maskToCombo(square, friendly)]
	return t.moves[square/8][eCombo&fCombo]
}

// vTable answers vertical (file) sliding moves.
type vTable struct {
	masks [64]uint64
	moves [8][256]uint64
}

func (t *vTable) comboToMask(square int, combo byte) uint64 {
	shifted := uint64(combo) << uint(square%8)
	var out uint64
	for i := 0; i < 56; i += 7 {
		out |= shifted << uint(i)
	}
	return out & t.masks[square]
}

func (t *vTable) maskToCombo(square int, mask uint64) byte {
	shifted := (mask & t.masks[square]) >> uint(square%8)
	var out byte
	for i := 0; i < 56; i += 7 {
		out |= byte(shifted >> uint(i))
	}
	return out
}

func newVTable() *vTable {
	t := &vTable{}
	for i := 0; i < 64; i++ {
		t.masks[i] = 0x0101010101010101 << uint(i%8)
	}
	for file := 0; file < 8; file++ {
		for combo := 0; combo < 256; combo++ {
			t.moves[file][combo] = t.comboToMask(file, byte(combo))
		}
	}
	return t
}

func (t *vTable) attacks(square int, friendly, enemy uint64) uint64 {
	eCombo := ct.e[square/8][t.maskToCombo(square, enemy)]
	fCombo := ct.f[square/8][t.maskToCombo(square, friendly)]
	return t.moves[square%8][eCombo&fCombo]
}

// diagOffsets gives the start index into movesLow/movesHigh for squares
// that many diagonals away from the main diagonal.
var diagOffsets = [9]byte{0, 0, 128, 192, 224, 240, 248, 252, 254}

// d1Table answers a1-h8 diagonal sliding moves (bishop/queen).
type d1Table struct {
	masks                            [64]uint64
	movesMiddle, movesLow, movesHigh [256]uint64
}

func (t *d1Table) comboToMask(square int, combo byte) uint64 {
	rank, file := square/8, square%8
	var diag int
	if rank > file {
		diag = rank - file
	} else {
		diag = file - rank
	}
	offset := byte(int(combo) - int(diagOffsets[diag]))

	var shifted uint64
	switch {
	case rank == file:
		shifted = uint64(offset)
	case rank > file:
		shifted = uint64(offset) << uint((rank-file)*8)
	default:
		shifted = uint64(offset) << uint(file-rank)
	}

	var out uint64
	for i := 0; i < 64; i += 8 {
		out |= shifted << uint(i)
	}
	return out & t.masks[square]
}

func (t *d1Table) maskToCombo(square int, mask uint64) byte {
	rank, file := square/8, square%8
	var shifted uint64
	switch {
	case rank == file:
		shifted = mask & t.masks[0]
	case rank > file:
		shifted = (mask & t.masks[square]) >> uint((rank-file)*8)
	default:
		shifted = (mask & t.masks[square]) >> uint(file-rank)
	}

	var out byte
	for i := 0; i < 64; i += 8 {
		out |= byte(shifted >> uint(i))
	}

	var diag int
	if rank > file {
		diag = rank - file
	} else {
		diag = file - rank
	}
	return out + diagOffsets[diag]
}

func newD1Table() *d1Table {
	t := &d1Table{}
	for i := 0; i < 64; i++ {
		var mask uint64
		rank, file := i/8, i%8
		for x, y := rank, file; x < 8 && y < 8; x, y = x+1, y+1 {
			mask |= 1 << uint(x*8+y)
		}
		for x, y := rank, file; x >= 0 && y >= 0; x, y = x-1, y-1 {
			mask |= 1 << uint(x*8+y)
		}
		t.masks[i] = mask
	}

	for combo := 0; combo < 256; combo++ {
		t.movesMiddle[combo] = t.comboToMask(0, byte(combo))
	}
	for x := 1; x < 8; x++ {
		for combo := 0; combo < 1<<uint(8-x); combo++ {
			low := diagOffsets[x] + byte(combo)
			t.movesLow[low] = t.comboToMask(x, low)
			high := diagOffsets[x] + byte(combo)
			t.movesHigh[high] = t.comboToMask(x*8, high)
		}
	}
	return t
}

func (t *d1Table) attacks(square int, friendly, enemy uint64) uint64 {
	rank, file := square/8, square%8
	diag := file - rank
	if diag < 0 {
		diag = -diag
	}
	efMask := diagOffsets[diag+1]
	offset := diagOffsets[diag]

	switch {
	case rank == file:
		eCombo := ct.e[rank][t.maskToCombo(square, enemy)]
		fCombo := ct.f[rank][t.maskToCombo(square, friendly)]
		return t.movesMiddle[eCombo&fCombo]
	case rank > file:
		eCombo := ct.e[file][t.maskToCombo(square, enemy)] &^ efMask
		fCombo := ct.f[file][t.maskToCombo(square, friendly)] &^ efMask
		return t.movesHigh[offset+eCombo&fCombo]
	default:
		eCombo := ct.e[rank][t.maskToCombo(square, enemy)] &^ efMask
		fCombo := ct.f[rank][t.maskToCombo(square, friendly)] &^ efMask
		return t.movesLow[offset+eCombo&fCombo]
	}
}

// d2Table answers h1-a8 diagonal sliding moves (bishop/queen). It mirrors
// [d1Table] across the vertical axis: squares are addressed by file' = 7-file
// so the existing a1-h8 combo math applies unchanged.
type d2Table struct {
	masks                            [64]uint64
	movesMiddle, movesLow, movesHigh [256]uint64
}

func mirrorFile(square int) int { return square/8*8 + (7 - square%8) }

func (t *d2Table) comboToMask(square int, combo byte) uint64 {
	rank, file := square/8, 7-square%8
	var diag int
	if rank > file {
		diag = rank - file
	} else {
		diag = file - rank
	}
	offset := byte(int(combo) - int(diagOffsets[diag]))

	var shifted uint64
	switch {
	case rank == file:
		shifted = uint64(offset)
	case rank > file:
		shifted = uint64(offset) << uint((rank-file)*8)
	default:
		shifted = uint64(offset) << uint(file-rank)
	}

	var out uint64
	for i := 0; i < 64; i += 8 {
		out |= shifted << uint(i)
	}
	out &= mirrorMask(t.masks[square])
	return mirrorMask(out)
}

// mirrorMask flips a bitmask horizontally, file f -> file 7-f on every rank.
func mirrorMask(mask uint64) (out uint64) {
	for mask > 0 {
		sq := popLSB(&mask)
		out |= 1 << uint(mirrorFile(sq))
	}
	return out
}

func (t *d2Table) maskToCombo(square int, mask uint64) byte {
	mask = mirrorMask(mask)
	rank, file := square/8, 7-square%8
	line := mirrorMask(t.masks[square])

	var shifted uint64
	switch {
	case rank == file:
		shifted = mask & line
	case rank > file:
		shifted = (mask & line) >> uint((rank-file)*8)
	default:
		shifted = (mask & line) >> uint(file-rank)
	}

	var out byte
	for i := 0; i < 64; i += 8 {
		out |= byte(shifted >> uint(i))
	}

	var diag int
	if rank > file {
		diag = rank - file
	} else {
		diag = file - rank
	}
	return out + diagOffsets[diag]
}

func newD2Table() *d2Table {
	t := &d2Table{}

	// Computed into a scratch array first, not t.masks directly: mirrorFile
	// pairs up file f with file 7-f within the same rank, so for f >= 4 the
	// second loop below would otherwise read back a value the same loop
	// already overwrote earlier in its own pass (mirrorFile(i) < i for those
	// squares), turning half the board's masks into main-diagonal masks
	// instead of anti-diagonal ones.
	var direct [64]uint64
	for i := 0; i < 64; i++ {
		var mask uint64
		rank, file := i/8, 7-i%8
		for x, y := rank, file; x < 8 && y < 8; x, y = x+1, y+1 {
			mask |= 1 << uint(x*8+y)
		}
		for x, y := rank, file; x >= 0 && y >= 0; x, y = x-1, y-1 {
			mask |= 1 << uint(x*8+y)
		}
		direct[mirrorFile(i)] = mask
	}
	for i := 0; i < 64; i++ {
		t.masks[i] = mirrorMask(direct[mirrorFile(i)])
	}

	// movesMiddle/Low/High are keyed purely by the reduced combo value, so
	// they can be generated from any representative square on each diagonal
	// offset, same as d1Table.
	for combo := 0; combo < 256; combo++ {
		t.movesMiddle[combo] = t.comboToMask(7, byte(combo))
	}
	for x := 1; x < 8; x++ {
		for combo := 0; combo < 1<<uint(8-x); combo++ {
			low := diagOffsets[x] + byte(combo)
			t.movesLow[low] = t.comboToMask(7-x, low)
			high := diagOffsets[x] + byte(combo)
			t.movesHigh[high] = t.comboToMask(x*8+7, high)
		}
	}
	return t
}

func (t *d2Table) attacks(square int, friendly, enemy uint64) uint64 {
	rank, file := square/8, 7-square%8
	diag := file - rank
	if diag < 0 {
		diag = -diag
	}
	efMask := diagOffsets[diag+1]
	offset := diagOffsets[diag]

	switch {
	case rank == file:
		eCombo := ct.e[rank][t.maskToCombo(square, enemy)]
		fCombo := ct.f[rank][t.maskToCombo(square, friendly)]
		return t.movesMiddle[eCombo&fCombo]
	case rank > file:
		eCombo := ct.e[file][t.maskToCombo(square, enemy)] &^ efMask
		fCombo := ct.f[file][t.maskToCombo(square, friendly)] &^ efMask
		return t.movesHigh[offset+eCombo&fCombo]
	default:
		eCombo := ct.e[rank][t.maskToCombo(square, enemy)] &^ efMask
		fCombo := ct.f[rank][t.maskToCombo(square, friendly)] &^ efMask
		return t.movesLow[offset+eCombo&fCombo]
	}
}

var (
	horizontal = newHTable()
	vertical   = newVTable()
	diag1      = newD1Table()
	diag2      = newD2Table()
)

// lookupBishopAttacks returns the bishop attack/move mask for a square given
// the full friendly and enemy occupancy of the board.
func lookupBishopAttacks(square int, friendly, enemy uint64) uint64 {
	return diag1.attacks(square, friendly, enemy) | diag2.attacks(square, friendly, enemy)
}

// lookupRookAttacks returns the rook attack/move mask for a square given the
// full friendly and enemy occupancy of the board.
func lookupRookAttacks(square int, friendly, enemy uint64) uint64 {
	return horizontal.attacks(square, friendly, enemy) | vertical.attacks(square, friendly, enemy)
}

// lookupQueenAttacks returns the queen attack/move mask for a square given
// the full friendly and enemy occupancy of the board.
func lookupQueenAttacks(square int, friendly, enemy uint64) uint64 {
	return lookupBishopAttacks(square, friendly, enemy) | lookupRookAttacks(square, friendly, enemy)
}
