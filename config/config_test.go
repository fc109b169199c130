package config

import (
	"os"
	"path/filepath"
	"testing"

	"connect4/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"CONNECT4_WIDTH", "CONNECT4_HEIGHT", "CONNECT4_RUN_LENGTH", "CONNECT4_SEED",
	"CONNECT4_LOG_LEVEL", "CONNECT4_TRANSPOSITIONS", "CONNECT4_PLAYER_SYMBOL",
	"CONNECT4_EMPTY_SYMBOL", "CONNECT4_COMPUTER_SYMBOL", "CONNECT4_CENSUS_DIR",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load(missingFile(t))

		require.NoError(t, err)
		require.Equal(t, game.StandardRules(), cfg.Rules)
		require.Equal(t, game.DefaultSymbols(), cfg.Symbols)
		require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
		require.Zero(t, cfg.Seed)
		require.True(t, cfg.Transpositions)
		require.Equal(t, "census", cfg.CensusDir)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONNECT4_WIDTH", "5")
		t.Setenv("CONNECT4_HEIGHT", "4")
		t.Setenv("CONNECT4_RUN_LENGTH", "3")
		t.Setenv("CONNECT4_SEED", "99")
		t.Setenv("CONNECT4_LOG_LEVEL", "debug")
		t.Setenv("CONNECT4_TRANSPOSITIONS", "false")
		t.Setenv("CONNECT4_PLAYER_SYMBOL", "X")
		t.Setenv("CONNECT4_COMPUTER_SYMBOL", "O")
		t.Setenv("CONNECT4_EMPTY_SYMBOL", ".")

		cfg, err := Load(missingFile(t))

		require.NoError(t, err)
		require.Equal(t, game.Rules{Width: 5, Height: 4, RunLength: 3}, cfg.Rules)
		require.Equal(t, uint64(99), cfg.Seed)
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
		require.False(t, cfg.Transpositions)
		require.Equal(t, game.Symbols{Player: 'X', Empty: '.', Computer: 'O'}, cfg.Symbols)
	})

	t.Run("reading a .env file", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CONNECT4_SEED=7\nCONNECT4_CENSUS_DIR=out\n"), 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, uint64(7), cfg.Seed)
		require.Equal(t, "out", cfg.CensusDir)
	})

	t.Run("environment wins over .env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONNECT4_SEED", "3")
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CONNECT4_SEED=7\n"), 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, uint64(3), cfg.Seed)
	})

	t.Run("board too small for a run", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONNECT4_WIDTH", "3")

		_, err := Load(missingFile(t))

		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})

	t.Run("unknown log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONNECT4_LOG_LEVEL", "loud")

		_, err := Load(missingFile(t))

		require.Error(t, err)
	})

	t.Run("clashing symbols", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONNECT4_COMPUTER_SYMBOL", "@")

		_, err := Load(missingFile(t))

		require.ErrorIs(t, err, game.ErrInvalidArgument)
	})
}

func TestGetEnv(t *testing.T) {
	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		t.Setenv("CONNECT4_TEST_VALUE", "abc")

		require.Equal(t, 5, GetEnvAsInt("CONNECT4_TEST_VALUE", 5))
		require.Equal(t, uint64(5), GetEnvAsUint64("CONNECT4_TEST_VALUE", 5))
		require.True(t, GetEnvAsBool("CONNECT4_TEST_VALUE", true))
		require.Equal(t, '#', GetEnvAsRune("CONNECT4_TEST_VALUE", '#'))
		require.Equal(t, "abc", GetEnv("CONNECT4_TEST_VALUE", "x"))
	})

	t.Run("unset values use defaults", func(t *testing.T) {
		t.Setenv("CONNECT4_TEST_VALUE", "")

		require.Equal(t, "x", GetEnv("CONNECT4_TEST_VALUE", "x"))
		require.Equal(t, 'é', GetEnvAsRune("CONNECT4_TEST_VALUE", 'é'))
	})
}
