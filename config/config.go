// Package config holds the settings of the ttt command.
package config

import (
	"fmt"

	"github.com/2020-DEV-174/TicTacToe/game"
	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/2020-DEV-174/TicTacToe/meta"
	"github.com/rs/zerolog"
)

// Config describes the game the command plays. The defaults are standard
// tic-tac-toe.
type Config struct {
	Board      []int  `env:"TTT_BOARD" envSeparator:"," envDefault:"3,3"`
	Line       int    `env:"TTT_LINE" envDefault:"3"`
	MinPlayers int    `env:"TTT_MIN_PLAYERS" envDefault:"2"`
	MaxPlayers int    `env:"TTT_MAX_PLAYERS" envDefault:"2"`
	LogLevel   string `env:"TTT_LOG_LEVEL" envDefault:"info"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Rules() []game.Rule {
	return meta.Rules(grid.Dimensions(c.Board), c.Line, c.MinPlayers, c.MaxPlayers)
}

func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("TTT_LOG_LEVEL: %w", err)
	}
	return level, nil
}
