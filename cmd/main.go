package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/garlicgarrison/chess-board/board"
	"github.com/garlicgarrison/chess-board/config"
	"github.com/garlicgarrison/chess-board/notation"
	"github.com/garlicgarrison/chess-board/render"
	"github.com/garlicgarrison/chess-board/session"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var ErrOddMoves = errors.New("moves must be given as FROM TO pairs")

type app struct {
	configPath string
	fen        string
	glyphs     string
	pawnRule   string
	logLevel   string
	savePath   string

	cfg      *config.Config
	log      *logrus.Logger
	renderer *render.Renderer
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "chessboard",
		Short:        "A minimal chess board that applies single pawn steps",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config (default $"+config.EnvConfigPath+")")
	flags.StringVar(&a.fen, "fen", "", "start from this FEN instead of the initial position")
	flags.StringVar(&a.glyphs, "glyphs", "", "glyph set: unicode or ascii")
	flags.StringVar(&a.pawnRule, "pawn-rule", "", "pawn rule: directional or wrapping")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn, error or off")

	root.AddCommand(
		a.helloCmd(),
		a.showCmd(),
		a.fenCmd(),
		a.moveCmd(),
		a.playCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.glyphs != "" {
		cfg.Glyphs = a.glyphs
	}
	if a.pawnRule != "" {
		cfg.PawnRule = a.pawnRule
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = cfg.Logger(cmd.ErrOrStderr())
	a.renderer = cfg.Renderer()
	a.log.Debugf("config loaded from %q: %+v", path, *cfg)
	return nil
}

func (a *app) newBoard() (*board.Board, error) {
	if a.fen == "" {
		return board.New(a.cfg.BoardOptions()...), nil
	}

	b, err := notation.Parse(a.fen, a.cfg.BoardOptions()...)
	if err != nil {
		a.log.Errorf("parse fen %q -- %s", a.fen, err)
		return nil, err
	}
	return b, nil
}

func (a *app) helloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Log the configured greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.log.Infof("%s", a.cfg.Greeting)
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.newBoard()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, a.renderer.Render(b))
			fmt.Fprintf(out, "material: white %d, black %d\n", b.Material(board.White), b.Material(board.Black))
			return nil
		},
	}
}

func (a *app) fenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fen",
		Short: "Print the board as FEN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.newBoard()
			if err != nil {
				return err
			}

			pos, err := notation.Position(b)
			if err != nil {
				a.log.Errorf("go-chess rejected %s -- %s", notation.FEN(b), err)
				return err
			}
			if !notation.Equal(b, pos) {
				a.log.Warnf("go-chess position differs from board: %s", pos.Board())
			}

			fmt.Fprintln(cmd.OutOrStdout(), notation.FEN(b))
			return nil
		},
	}
}

func (a *app) moveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move FROM TO [FROM TO ...]",
		Short: "Apply moves in order and print the resulting board",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return ErrOddMoves
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.newBoard()
			if err != nil {
				return err
			}

			s := session.FromBoard(b)
			log := a.log.WithField("session", s.ID)
			log.Debugf("session started")
			for i := 0; i < len(args); i += 2 {
				if err := s.Apply(args[i], args[i+1]); err != nil {
					log.Errorf("move %s%s failed -- %s", args[i], args[i+1], err)
					return err
				}
				log.Infof("moved %s to %s", args[i], args[i+1])
			}

			fmt.Fprint(cmd.OutOrStdout(), a.renderer.Render(s.Board))
			return a.save(s)
		},
	}

	cmd.Flags().StringVar(&a.savePath, "save", "", "write the session as JSON to this path")
	return cmd
}

func (a *app) playCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Read moves such as e2e3 from stdin until quit or EOF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.newBoard()
			if err != nil {
				return err
			}

			s := session.FromBoard(b)
			out := cmd.OutOrStdout()
			a.log.WithField("session", s.ID).Debugf("session started")
			fmt.Fprint(out, a.renderer.Render(s.Board))

			if err := a.play(s, cmd.InOrStdin(), out); err != nil {
				return err
			}
			return a.save(s)
		},
	}

	cmd.Flags().StringVar(&a.savePath, "save", "", "write the session as JSON to this path")
	return cmd
}

// play applies moves read from in until quit or EOF. A read error ends the
// loop and is returned without saving.
func (a *app) play(s *session.Session, in io.Reader, out io.Writer) error {
	log := a.log.WithField("session", s.ID)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}

		m, err := board.ParseMove(line)
		if err == nil {
			err = s.Apply(m.From, m.To)
		}
		if err != nil {
			fmt.Fprintf(out, "move failed: %s\n", err)
			log.Warnf("%s", err)
			continue
		}

		log.Infof("moved %s to %s", m.From, m.To)
		fmt.Fprint(out, a.renderer.Render(s.Board))
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("read moves -- %s", err)
		return err
	}
	return nil
}

func (a *app) save(s *session.Session) error {
	if a.savePath == "" {
		return nil
	}

	if err := s.Save(a.savePath); err != nil {
		a.log.WithField("session", s.ID).Errorf("save session -- %s", err)
		return err
	}
	a.log.WithField("session", s.ID).Infof("session saved to %s", a.savePath)
	return nil
}
