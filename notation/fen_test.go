package notation

import (
	"log"
	"testing"

	"github.com/garlicgarrison/chess-board/board"
	chess "github.com/garlicgarrison/go-chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

func TestPlacementStart(t *testing.T) {
	b := board.New()
	assert.Equal(t, startPlacement, Placement(b))
	assert.Equal(t, chess.NewGame().Position().Board().String(), Placement(b))
	assert.True(t, Equal(b, chess.NewGame().Position()))
}

func TestPlacementAfterMove(t *testing.T) {
	b := board.New()
	require.NoError(t, b.MovePiece("e2", "e3"))
	require.NoError(t, b.MovePiece("d7", "d6"))

	fen := FEN(b)
	log.Printf("fen -- %s", fen)
	assert.Equal(t, "rnbqkbnr/ppp1pppp/3p4/8/8/4P3/PPPP1PPP/RNBQKBNR w - - 0 1", fen)

	pos, err := Position(b)
	require.NoError(t, err)
	assert.True(t, Equal(b, pos))
	assert.False(t, Equal(board.New(), pos))
}

func TestParse(t *testing.T) {
	cases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"R3nN2/8/Pk5P/3b4/7P/6r1/2pnN2p/2K5 b - - 0 1",
		"8/8/8/8/8/8/8/8",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR\tw\tKQkq\t-\t0\t1",
		"  4k3/8/8/8/8/8/4P3/4K3   w  -  -  0 1\n",
		"\t4k3/8/8/8/8/8/8/4K3\n",
	}

	for _, fen := range cases {
		b, err := Parse(fen)
		require.NoError(t, err, fen)

		again, err := Parse(FEN(b))
		require.NoError(t, err)
		assert.Equal(t, b.Grid(), again.Grid(), fen)
	}

	b, err := Parse("R3nN2/8/Pk5P/3b4/7P/6r1/2pnN2p/2K5 b - - 0 1")
	require.NoError(t, err)
	p, ok := b.GetPiece(2, 1)
	require.True(t, ok)
	assert.Equal(t, board.Piece{Kind: board.King, Color: board.Black}, p)
	p, ok = b.GetPiece(7, 2)
	require.True(t, ok)
	assert.Equal(t, board.Piece{Kind: board.King, Color: board.White}, p)
}

func TestParseOptions(t *testing.T) {
	b, err := Parse("8/8/8/8/8/8/8/4P3", board.WithPawnRule(board.WrappingPawns))
	require.NoError(t, err)
	require.NoError(t, b.MovePiece("e1", "e8"))
}

func TestParseInvalid(t *testing.T) {
	for _, fen := range []string{"", " \t\n", "not a fen", "8/8/8 w - - 0 1"} {
		_, err := Parse(fen)
		assert.ErrorIs(t, err, ErrInvalidFEN, fen)
	}
}

func TestParseTabSeparated(t *testing.T) {
	b, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR\tw\tKQkq\t-\t0\t1")
	require.NoError(t, err)
	assert.Equal(t, board.New().Grid(), b.Grid())
}
