package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/garlicgarrison/chess-board/board"
	chess "github.com/garlicgarrison/go-chess"
)

// Placement fields carry no turn, castling or en passant state.
const fenSuffix = " w - - 0 1"

var ErrInvalidFEN = errors.New("invalid fen")

// Placement writes the piece placement field of a FEN record, rank 8 first.
func Placement(b board.Reader) string {
	var sb strings.Builder
	for rank := 0; rank < board.Size; rank++ {
		empty := 0
		for file := 0; file < board.Size; file++ {
			p, ok := b.GetPiece(rank, file)
			if !ok {
				empty++
				continue
			}
			if empty != 0 {
				sb.WriteString(fmt.Sprintf("%d", empty))
			}
			sb.WriteRune(p.Symbol())
			empty = 0
		}

		if empty != 0 {
			sb.WriteString(fmt.Sprintf("%d", empty))
		}
		if rank != board.Size-1 {
			sb.WriteRune('/')
		}
	}

	return sb.String()
}

func FEN(b board.Reader) string {
	return Placement(b) + fenSuffix
}

// Position converts b into a go-chess position.
func Position(b board.Reader) (*chess.Position, error) {
	f, err := chess.FEN(FEN(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFEN, err)
	}
	return chess.NewGame(f).Position(), nil
}

// Parse builds a board from a full FEN record or a bare placement field.
func Parse(fen string, opts ...board.Option) (*board.Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, ErrInvalidFEN
	}
	fen = strings.Join(fields, " ")
	if len(fields) == 1 {
		fen += fenSuffix
	}

	f, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFEN, err)
	}

	var g board.Grid
	for sq, p := range chess.NewGame(f).Position().Board().SquareMap() {
		piece, ok := fromChess(p)
		if !ok {
			continue
		}
		file, rank := fromSquare(sq)
		g[rank][file] = &piece
	}

	return board.FromGrid(g, opts...), nil
}

// Equal reports whether b and pos hold the same piece on every square.
func Equal(b board.Reader, pos *chess.Position) bool {
	if pos == nil {
		return false
	}

	squareMap := pos.Board().SquareMap()
	for rank := 0; rank < board.Size; rank++ {
		for file := 0; file < board.Size; file++ {
			want, wantOK := b.GetPiece(rank, file)
			got, gotOK := fromChess(squareMap[toSquare(file, rank)])
			if wantOK != gotOK || want != got {
				return false
			}
		}
	}
	return true
}

var pieceTypes = map[chess.PieceType]board.Kind{
	chess.Pawn:   board.Pawn,
	chess.Knight: board.Knight,
	chess.Bishop: board.Bishop,
	chess.Rook:   board.Rook,
	chess.Queen:  board.Queen,
	chess.King:   board.King,
}

func fromChess(p chess.Piece) (board.Piece, bool) {
	kind, ok := pieceTypes[p.Type()]
	if !ok {
		return board.Piece{}, false
	}

	color := board.White
	if p.Color() == chess.Black {
		color = board.Black
	}
	return board.Piece{Kind: kind, Color: color}, true
}

// go-chess counts ranks from rank 1; the board counts rank indices from rank 8.
func toSquare(file, rank int) chess.Square {
	return chess.Square((board.Size-1-rank)*board.Size + file)
}

func fromSquare(sq chess.Square) (file, rank int) {
	return int(sq) % board.Size, board.Size - 1 - int(sq)/board.Size
}
