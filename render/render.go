package render

import (
	"fmt"
	"strings"

	"github.com/garlicgarrison/chess-board/board"
)

const (
	Placeholder = '.'
	fileLabels  = "  a b c d e f g h\n"
)

type Glyphs string

const (
	Unicode Glyphs = "unicode"
	ASCII   Glyphs = "ascii"
)

func ParseGlyphs(s string) (Glyphs, error) {
	switch g := Glyphs(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return Unicode, nil
	case Unicode, ASCII:
		return g, nil
	default:
		return "", fmt.Errorf("unknown glyph set %q", s)
	}
}

var unicodeGlyphs = map[board.Color]map[board.Kind]rune{
	board.White: {
		board.Pawn:   '♙',
		board.Rook:   '♖',
		board.Knight: '♘',
		board.Bishop: '♗',
		board.Queen:  '♕',
		board.King:   '♔',
	},
	board.Black: {
		board.Pawn:   '♟',
		board.Rook:   '♜',
		board.Knight: '♞',
		board.Bishop: '♝',
		board.Queen:  '♛',
		board.King:   '♚',
	},
}

type Renderer struct {
	glyphs Glyphs
}

func New(glyphs Glyphs) *Renderer {
	if glyphs == "" {
		glyphs = Unicode
	}
	return &Renderer{glyphs: glyphs}
}

// Glyph returns the display character for p.
func (r *Renderer) Glyph(p board.Piece) rune {
	if r.glyphs == ASCII {
		return p.Symbol()
	}
	return unicodeGlyphs[p.Color][p.Kind]
}

/*
	Render draws rank index 7 at the top and rank index 0 at the bottom.
	Each row is labelled on both sides with its algebraic rank digit and the
	grid is framed by file letters.
*/
func (r *Renderer) Render(b board.Reader) string {
	var sb strings.Builder
	sb.WriteString(fileLabels)
	for rank := board.Size - 1; rank >= 0; rank-- {
		label := rune('8' - rank)
		sb.WriteRune(label)
		for file := 0; file < board.Size; file++ {
			sb.WriteRune(' ')
			p, ok := b.GetPiece(rank, file)
			if !ok {
				sb.WriteRune(Placeholder)
				continue
			}
			sb.WriteRune(r.Glyph(p))
		}
		sb.WriteRune(' ')
		sb.WriteRune(label)
		sb.WriteRune('\n')
	}
	sb.WriteString(fileLabels)

	return sb.String()
}

var defaultRenderer = New(Unicode)

// Render draws b with unicode glyphs.
func Render(b board.Reader) string {
	return defaultRenderer.Render(b)
}
