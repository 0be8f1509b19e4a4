package config

import (
	"testing"

	"github.com/2020-DEV-174/TicTacToe/game"
	"github.com/2020-DEV-174/TicTacToe/grid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"TTT_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	require.NoError(t, ParseEnv(&cfg))
	require.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TTT_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env:")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Config{Board: []int{3, 3}, Line: 3, MinPlayers: 2, MaxPlayers: 2, LogLevel: "info"}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)

	g, err := game.New(cfg.Rules())
	require.NoError(t, err)
	require.Equal(t, grid.Dimensions{3, 3}, g.Config().BoardShape)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TTT_BOARD", "4,4,4")
	t.Setenv("TTT_LINE", "4")
	t.Setenv("TTT_MAX_PLAYERS", "3")
	t.Setenv("TTT_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	g, err := game.New(cfg.Rules())
	require.NoError(t, err)
	require.Equal(t, grid.Dimensions{4, 4, 4}, g.Config().BoardShape)
	require.Equal(t, 4, g.Config().Scoring.LineLength)
	_, hi := g.PlayerCountRange()
	require.Equal(t, 3, hi)

	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)
}

func TestLevelError(t *testing.T) {
	_, err := Config{LogLevel: "loud"}.Level()
	require.ErrorContains(t, err, "TTT_LOG_LEVEL")
}
