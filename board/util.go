package board

// scanRun walks from (row, col) in direction (dr, dc) over the opponent's pieces and
// returns the run length, or 0 when the run is not closed off by one of own.
// Empty and out of bounds both end a run without bracketing.
func (b *Board) scanRun(row, col, dr, dc int, own, opponent Space) int {
	r, c := row+dr, col+dc
	n := 0
	for b.Read(r, c) == opponent {
		r += dr
		c += dc
		n++
	}
	if b.Read(r, c) != own {
		return 0
	}
	return n
}
