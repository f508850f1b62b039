package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/garlicgarrison/chess-board/board"
	"github.com/garlicgarrison/chess-board/notation"
	guuid "github.com/google/uuid"
)

var (
	ErrNoSession       = errors.New("session file not found")
	ErrInvalidSnapshot = errors.New("invalid session snapshot")
)

// Session is a board with an id and the moves applied to it so far.
type Session struct {
	ID      guuid.UUID
	Board   *board.Board
	History []board.Move
	Created time.Time

	start string
}

type Snapshot struct {
	ID       string       `json:"id"`
	Start    string       `json:"start"`
	Position string       `json:"position"`
	Moves    []board.Move `json:"moves"`
	Created  time.Time    `json:"created"`
	PawnRule string       `json:"pawn_rule"`
}

func New(opts ...board.Option) *Session {
	return FromBoard(board.New(opts...))
}

func FromBoard(b *board.Board) *Session {
	return &Session{
		ID:      guuid.New(),
		Board:   b,
		History: []board.Move{},
		Created: time.Now().UTC(),
		start:   notation.FEN(b),
	}
}

// Apply moves a piece and records the move when it succeeds.
func (s *Session) Apply(from, to string) error {
	if err := s.Board.MovePiece(from, to); err != nil {
		return err
	}

	s.History = append(s.History, board.Move{From: from, To: to})
	return nil
}

func (s *Session) Snapshot() Snapshot {
	moves := make([]board.Move, len(s.History))
	copy(moves, s.History)

	return Snapshot{
		ID:       s.ID.String(),
		Start:    s.start,
		Position: notation.FEN(s.Board),
		Moves:    moves,
		Created:  s.Created,
		PawnRule: s.Board.PawnRule().String(),
	}
}

func (s *Session) Save(path string) error {
	b, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := ioutil.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

/*
	Load rebuilds a session from its starting position and replays the
	recorded moves, so the loaded board always matches the history.
*/
func Load(path string) (*Session, error) {
	f, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSession, err)
	}

	snap := Snapshot{}
	if err := json.Unmarshal(f, &snap); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}

	return Restore(snap)
}

func Restore(snap Snapshot) (*Session, error) {
	id, err := guuid.Parse(snap.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %s", ErrInvalidSnapshot, err)
	}

	rule, err := board.ParsePawnRule(snap.PawnRule)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}

	b, err := notation.Parse(snap.Start, board.WithPawnRule(rule))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSnapshot, err)
	}

	s := &Session{
		ID:      id,
		Board:   b,
		History: []board.Move{},
		Created: snap.Created,
		start:   notation.FEN(b),
	}
	for _, m := range snap.Moves {
		if err := s.Apply(m.From, m.To); err != nil {
			return nil, fmt.Errorf("%w: replay %s: %s", ErrInvalidSnapshot, m, err)
		}
	}

	if snap.Position != "" && notation.FEN(s.Board) != snap.Position {
		return nil, fmt.Errorf("%w: position does not match moves", ErrInvalidSnapshot)
	}
	return s, nil
}
