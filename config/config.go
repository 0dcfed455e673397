package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoAgents      = errors.New("config needs exactly two agents")
)

// Agent kinds
const (
	KindSearch = "search"
	KindRandom = "random"
)

// Config describes a series of games between two agents.
type Config struct {
	Board         BoardConfig   `yaml:"board"`
	TurnLimit     time.Duration `yaml:"turn_limit"`
	Games         int           `yaml:"games"`
	Concurrency   int           `yaml:"concurrency"`
	Seed          uint64        `yaml:"seed"`
	RandomOpening bool          `yaml:"random_opening"`
	Agents        []AgentConfig `yaml:"agents"`
}

type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type AgentConfig struct {
	Name      string        `yaml:"name"`
	Kind      string        `yaml:"kind"`      // search or random
	Evaluator string        `yaml:"evaluator"` // game.EvaluatorByName
	Method    string        `yaml:"method"`    // alphabeta or minimax
	Depth     int           `yaml:"depth"`     // Fixed search depth, 0 for iterative deepening
	Margin    time.Duration `yaml:"margin"`
}

// Default returns the built-in series: alpha-beta with the improved score against the
// blank-aware score on a 7x7 board.
func Default() Config {
	return Config{
		Board:         BoardConfig{Rows: 7, Cols: 7},
		TurnLimit:     150 * time.Millisecond,
		Games:         20,
		Concurrency:   4,
		Seed:          1,
		RandomOpening: true,
		Agents: []AgentConfig{
			{Name: "ab_improved", Kind: KindSearch, Evaluator: "improved", Method: "alphabeta", Margin: 10 * time.Millisecond},
			{Name: "ab_blank_aware", Kind: KindSearch, Evaluator: "blank_aware", Method: "alphabeta", Margin: 10 * time.Millisecond},
		},
	}
}

// Load reads a YAML config file. Fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		return fmt.Errorf("board %dx%d: %w", c.Board.Rows, c.Board.Cols, ErrInvalidConfig)
	}
	if c.Board.Rows*c.Board.Cols < 2 {
		return fmt.Errorf("board must fit both players: %w", ErrInvalidConfig)
	}
	if c.TurnLimit <= 0 {
		return fmt.Errorf("turn limit %s: %w", c.TurnLimit, ErrInvalidConfig)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games %d: %w", c.Games, ErrInvalidConfig)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency %d: %w", c.Concurrency, ErrInvalidConfig)
	}
	if len(c.Agents) != 2 {
		return fmt.Errorf("got %d: %w", len(c.Agents), ErrNoAgents)
	}
	for i, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent %d has no name: %w", i, ErrInvalidConfig)
		}
		switch a.Kind {
		case KindSearch, KindRandom, "":
		default:
			return fmt.Errorf("agent %q kind %q: %w", a.Name, a.Kind, ErrInvalidConfig)
		}
		if a.Depth < 0 || a.Margin < 0 {
			return fmt.Errorf("agent %q depth %d margin %s: %w", a.Name, a.Depth, a.Margin, ErrInvalidConfig)
		}
		if a.Margin >= c.TurnLimit {
			return fmt.Errorf("agent %q margin %s exceeds turn limit %s: %w", a.Name, a.Margin, c.TurnLimit, ErrInvalidConfig)
		}
	}
	return nil
}
