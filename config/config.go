package config

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/garlicgarrison/chess-board/board"
	"github.com/garlicgarrison/chess-board/render"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const (
	EnvConfigPath = "CHESSBOARD_CONFIG_PATH"
	EnvLogLevel   = "CHESSBOARD_LOG_LEVEL"

	DefaultGreeting = "Hello, world!"
)

var ErrInvalidConfig = errors.New("invalid config")

// LevelOff silences all log output. Any other level is parsed by logrus.
const LevelOff = "off"

type Config struct {
	Greeting string `yaml:"greeting"`
	Glyphs   string `yaml:"glyphs"`
	PawnRule string `yaml:"pawn_rule"`
	LogLevel string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		Greeting: DefaultGreeting,
		Glyphs:   string(render.Unicode),
		PawnRule: board.DirectionalPawns.String(),
		LogLevel: logrus.InfoLevel.String(),
	}
}

/*
	Load reads the YAML file at path on top of the defaults. An empty path or
	a file that does not exist yields the defaults. The log level env var
	always wins over the file.
*/
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		yamlConfig, err := ioutil.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(yamlConfig, cfg); err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
			}
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv loads the file named by CHESSBOARD_CONFIG_PATH.
func FromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = logrus.InfoLevel.String()
	}
	if c.LogLevel != LevelOff {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
		}
	}

	if _, err := render.ParseGlyphs(c.Glyphs); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if _, err := board.ParsePawnRule(c.PawnRule); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) BoardOptions() []board.Option {
	rule, err := board.ParsePawnRule(c.PawnRule)
	if err != nil {
		rule = board.DirectionalPawns
	}
	return []board.Option{board.WithPawnRule(rule)}
}

// Logger returns a logrus logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	if c.LogLevel == LevelOff {
		log.SetOutput(io.Discard)
		return log
	}

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func (c *Config) Renderer() *render.Renderer {
	glyphs, err := render.ParseGlyphs(c.Glyphs)
	if err != nil {
		glyphs = render.Unicode
	}
	return render.New(glyphs)
}
