package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidLength    = errors.New("coordinate must be two characters")
	ErrOutOfBounds      = errors.New("coordinate out of bounds")
	ErrSameSquare       = errors.New("source and destination are the same")
	ErrEmptySource      = errors.New("no piece at source")
	ErrIllegalPawnMove  = errors.New("illegal pawn move")
	ErrUnsupportedPiece = errors.New("only pawn moves are supported")
	ErrInvalidMove      = errors.New("invalid move notation")
)

// PawnRule selects how a pawn's single forward step is computed.
type PawnRule int8

const (
	// DirectionalPawns moves white pawns toward rank 0 and black pawns
	// toward rank 7. A pawn on the far edge has nowhere to go.
	DirectionalPawns PawnRule = iota
	// WrappingPawns steps every pawn to (rank+1) mod 8 regardless of color.
	WrappingPawns
)

func (r PawnRule) String() string {
	switch r {
	case DirectionalPawns:
		return "directional"
	case WrappingPawns:
		return "wrapping"
	default:
		return ""
	}
}

func ParsePawnRule(s string) (PawnRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "directional":
		return DirectionalPawns, nil
	case "wrapping":
		return WrappingPawns, nil
	default:
		return 0, fmt.Errorf("unknown pawn rule %q", s)
	}
}

// Move is a source and destination square in algebraic notation.
type Move struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (m Move) String() string {
	return m.From + m.To
}

// ParseMove accepts "e2e3" or "e2 e3".
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	switch {
	case len(fields) == 2:
		return Move{From: fields[0], To: fields[1]}, nil
	case len(fields) == 1 && len(fields[0]) == 4:
		return Move{From: fields[0][:2], To: fields[0][2:]}, nil
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
}

// MovePiece moves the piece on from to to. Only single pawn steps are legal;
// every other piece kind is rejected with ErrUnsupportedPiece.
func (b *Board) MovePiece(from, to string) error {
	fx, fy, err := ParseCoord(from)
	if err != nil {
		return err
	}
	tx, ty, err := ParseCoord(to)
	if err != nil {
		return err
	}

	if fx == tx && fy == ty {
		return fmt.Errorf("%w: %s", ErrSameSquare, from)
	}

	piece := b.squares[fy][fx]
	if piece == nil {
		return fmt.Errorf("%w: %s", ErrEmptySource, from)
	}

	switch piece.Kind {
	case Pawn:
		next, ok := b.pawnStep(*piece, fy)
		if fx != tx || !ok || next != ty {
			return fmt.Errorf("%w: %s%s", ErrIllegalPawnMove, from, to)
		}
	default:
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedPiece, piece.Kind, from)
	}

	b.squares[ty][tx] = piece
	b.squares[fy][fx] = nil
	return nil
}

func (b *Board) pawnStep(p Piece, rank int) (int, bool) {
	if b.pawnRule == WrappingPawns {
		return (rank + 1) % Size, true
	}

	next := rank + 1
	if p.Color == White {
		next = rank - 1
	}
	return next, inBounds(next)
}
