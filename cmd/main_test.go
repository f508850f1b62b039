package main

import (
	"bufio"
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/garlicgarrison/chess-board/board"
	"github.com/garlicgarrison/chess-board/config"
	"github.com/garlicgarrison/chess-board/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestHello(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("greeting: Welcome back\n"), 0644))

	_, logs, err := run(t, "", "--config", path, "hello")
	require.NoError(t, err)
	assert.Contains(t, logs, "level=info")
	assert.Contains(t, logs, `msg="Welcome back"`)

	_, logs, err = run(t, "", "hello", "--log-level", "error")
	require.NoError(t, err)
	assert.NotContains(t, logs, config.DefaultGreeting)

	_, logs, err = run(t, "", "hello", "--log-level", "off")
	require.NoError(t, err)
	assert.Empty(t, logs)

	_, _, err = run(t, "", "hello", "--log-level", "loud")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestShowAndFEN(t *testing.T) {
	out, _, err := run(t, "", "show", "--glyphs", "ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "1 R N B Q K B N R 1\n")
	assert.Contains(t, out, "material: white 39, black 39\n")

	out, _, err = run(t, "", "fen")
	require.NoError(t, err)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1\n", out)

	_, _, err = run(t, "", "fen", "--fen", "garbage")
	assert.Error(t, err)
}

func TestMove(t *testing.T) {
	save := filepath.Join(t.TempDir(), "session.json")
	out, logs, err := run(t, "", "move", "e2", "e3", "e7", "e6", "--glyphs", "ascii", "--save", save)
	require.NoError(t, err)
	assert.Contains(t, out, "3 . . . . P . . . 3\n")
	assert.Contains(t, logs, "moved e2 to e3")

	s, err := session.Load(save)
	require.NoError(t, err)
	assert.Equal(t, []board.Move{{From: "e2", To: "e3"}, {From: "e7", To: "e6"}}, s.History)

	_, logs, err = run(t, "", "move", "a1", "a2")
	assert.ErrorIs(t, err, board.ErrUnsupportedPiece)
	assert.Contains(t, logs, "move a1a2 failed")

	_, _, err = run(t, "", "move", "e2")
	assert.ErrorIs(t, err, ErrOddMoves)
}

func TestMoveWrapping(t *testing.T) {
	out, _, err := run(t, "", "move", "e1", "e8", "--fen", "8/8/8/8/8/8/8/4P3", "--pawn-rule", "wrapping", "--glyphs", "ascii")
	require.NoError(t, err)
	assert.Contains(t, out, "8 . . . . P . . . 8\n")
}

func TestPlay(t *testing.T) {
	save := filepath.Join(t.TempDir(), "play.json")
	stdin := "e2e3\n\ne2 e4\nb1c3\ne7 e6\nquit\nd2d3\n"

	out, _, err := run(t, stdin, "play", "--glyphs", "ascii", "--save", save)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "  a b c d e f g h\n")/2)
	assert.Contains(t, out, "move failed: no piece at source: e2")
	assert.Contains(t, out, "move failed: only pawn moves are supported")

	s, err := session.Load(save)
	require.NoError(t, err)
	assert.Equal(t, []board.Move{{From: "e2", To: "e3"}, {From: "e7", To: "e6"}}, s.History)
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := run(t, "", "show", "--glyphs", "emoji")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPlayLineTooLong(t *testing.T) {
	save := filepath.Join(t.TempDir(), "play.json")
	stdin := "e2e3\n" + strings.Repeat("x", bufio.MaxScanTokenSize+1) + "\ne7e6\n"

	_, logs, err := run(t, stdin, "play", "--save", save)
	assert.ErrorIs(t, err, bufio.ErrTooLong)
	assert.Contains(t, logs, "read moves")
	assert.NoFileExists(t, save)
}

func TestPlayReadError(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "")
	readErr := errors.New("stdin closed")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"play"})
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(iotest.ErrReader(readErr))

	assert.ErrorIs(t, root.Execute(), readErr)
	assert.Contains(t, errOut.String(), "stdin closed")
}
