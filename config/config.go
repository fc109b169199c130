package config

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"connect4/game"
	"connect4/meta"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Rules          game.Rules
	Symbols        game.Symbols
	Seed           uint64 // 0 picks a time-based seed
	LogLevel       zerolog.Level
	Transpositions bool
	CensusDir      string
}

// Load reads the given .env files (".env" when none are given) without
// overriding variables already set, then builds the config from the environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Debug().Msgf("no .env file loaded: %v", err)
	}

	rules, err := game.NewRules(
		GetEnvAsInt("CONNECT4_WIDTH", meta.WIDTH),
		GetEnvAsInt("CONNECT4_HEIGHT", meta.HEIGHT),
		GetEnvAsInt("CONNECT4_RUN_LENGTH", meta.RUN_LENGTH),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid board configuration: %w", err)
	}

	level, err := zerolog.ParseLevel(GetEnv("CONNECT4_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	symbols := game.Symbols{
		Player:   GetEnvAsRune("CONNECT4_PLAYER_SYMBOL", meta.PLAYER_SYMBOL),
		Empty:    GetEnvAsRune("CONNECT4_EMPTY_SYMBOL", meta.EMPTY_SYMBOL),
		Computer: GetEnvAsRune("CONNECT4_COMPUTER_SYMBOL", meta.COMPUTER_SYMBOL),
	}
	if symbols.Player == symbols.Computer || symbols.Player == symbols.Empty || symbols.Computer == symbols.Empty {
		return nil, fmt.Errorf("%w: display symbols must differ, got %q %q %q", game.ErrInvalidArgument, symbols.Player, symbols.Empty, symbols.Computer)
	}

	return &Config{
		Rules:          rules,
		Symbols:        symbols,
		Seed:           GetEnvAsUint64("CONNECT4_SEED", 0),
		LogLevel:       level,
		Transpositions: GetEnvAsBool("CONNECT4_TRANSPOSITIONS", true),
		CensusDir:      GetEnv("CONNECT4_CENSUS_DIR", meta.CENSUS_DIR),
	}, nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsRune reads a single display character.
func GetEnvAsRune(key string, defaultValue rune) rune {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if utf8.RuneCountInString(valueStr) != 1 {
		log.Warn().Msgf("invalid symbol for %s: %q, using default: %q", key, valueStr, defaultValue)
		return defaultValue
	}
	r, _ := utf8.DecodeRuneInString(valueStr)
	return r
}
