package board

var pieceValues = map[Kind]int{
	Pawn:   1,
	Bishop: 3,
	Knight: 3,
	Rook:   5,
	Queen:  9,
}

// Material sums the piece values of one side. Kings count as zero.
func (b *Board) Material(c Color) int {
	total := 0
	for _, row := range b.squares {
		for _, p := range row {
			if p == nil || p.Color != c {
				continue
			}
			total += pieceValues[p.Kind]
		}
	}
	return total
}
