package board

// Grid is indexed [rank][file]. Rank 0 is the eighth rank.
type Grid [Size][Size]*Piece

// Reader is the read-only view of a board used by renderers and encoders.
type Reader interface {
	GetPiece(rank, file int) (Piece, bool)
}

var _ Reader = (*Board)(nil)

type Board struct {
	squares  Grid
	pawnRule PawnRule
}

type Option func(*Board)

func WithPawnRule(rule PawnRule) Option {
	return func(b *Board) {
		b.pawnRule = rule
	}
}

var backRank = [Size]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// New returns a board set up in the standard starting position.
// Black occupies ranks 0 and 1, white ranks 6 and 7.
func New(opts ...Option) *Board {
	b := Empty(opts...)
	for file, kind := range backRank {
		b.squares[0][file] = &Piece{Kind: kind, Color: Black}
		b.squares[1][file] = &Piece{Kind: Pawn, Color: Black}
		b.squares[6][file] = &Piece{Kind: Pawn, Color: White}
		b.squares[7][file] = &Piece{Kind: kind, Color: White}
	}
	return b
}

// Empty returns a board with no pieces on it.
func Empty(opts ...Option) *Board {
	b := &Board{pawnRule: DirectionalPawns}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromGrid builds a board holding a copy of the given placement.
func FromGrid(g Grid, opts ...Option) *Board {
	b := Empty(opts...)
	for rank, row := range g {
		for file, p := range row {
			if p == nil {
				continue
			}
			piece := *p
			b.squares[rank][file] = &piece
		}
	}
	return b
}

// GetPiece returns the piece on (rank, file). Off-board indices read as empty.
func (b *Board) GetPiece(rank, file int) (Piece, bool) {
	if !inBounds(rank) || !inBounds(file) {
		return Piece{}, false
	}

	p := b.squares[rank][file]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// Grid returns a copy of the current placement.
func (b *Board) Grid() Grid {
	var g Grid
	for rank, row := range b.squares {
		for file, p := range row {
			if p == nil {
				continue
			}
			piece := *p
			g[rank][file] = &piece
		}
	}
	return g
}

func (b *Board) PawnRule() PawnRule {
	return b.pawnRule
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, row := range b.squares {
		for _, p := range row {
			if p != nil {
				n++
			}
		}
	}
	return n
}
