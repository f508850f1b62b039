package board

import "unicode"

type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return ""
	}
}

type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return ""
	}
}

// Piece is a kind together with the side it belongs to.
type Piece struct {
	Kind  Kind
	Color Color
}

var kindToSymbol = map[Kind]rune{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

var symbolToKind = map[rune]Kind{
	'P': Pawn,
	'N': Knight,
	'B': Bishop,
	'R': Rook,
	'Q': Queen,
	'K': King,
}

// Symbol returns the FEN letter of the piece, upper case for white.
func (p Piece) Symbol() rune {
	s, ok := kindToSymbol[p.Kind]
	if !ok {
		return 0
	}
	if p.Color == Black {
		return unicode.ToLower(s)
	}
	return s
}

// PieceFromSymbol is the inverse of Symbol.
func PieceFromSymbol(r rune) (Piece, bool) {
	color := White
	if unicode.IsLower(r) {
		color = Black
	}

	kind, ok := symbolToKind[unicode.ToUpper(r)]
	if !ok {
		return Piece{}, false
	}
	return Piece{Kind: kind, Color: color}, true
}

func (p Piece) String() string {
	return p.Color.String() + " " + p.Kind.String()
}
