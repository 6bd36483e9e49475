package config

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

// Config holds everything the program reads from the environment
type Config struct {
	Players int
	// Bots is how many of the last seats are played automatically.
	Bots int
	// Seed fixes the shuffle; 0 seeds from the clock.
	Seed int64

	LogLevel string
	// LogFile receives the log instead of stderr when set.
	LogFile string

	MessageDelay time.Duration
	NoColor      bool
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel: getEnvWithDefault("UNO_LOG_LEVEL", "warn"),
		LogFile:  os.Getenv("UNO_LOG_FILE"),
	}

	var err error
	if cfg.Players, err = cast.ToIntE(getEnvWithDefault("UNO_PLAYERS", "2")); err != nil {
		return nil, invalid("UNO_PLAYERS", err)
	}
	if cfg.Bots, err = cast.ToIntE(getEnvWithDefault("UNO_BOTS", "0")); err != nil {
		return nil, invalid("UNO_BOTS", err)
	}
	if cfg.Seed, err = cast.ToInt64E(getEnvWithDefault("UNO_SEED", "0")); err != nil {
		return nil, invalid("UNO_SEED", err)
	}
	if cfg.MessageDelay, err = cast.ToDurationE(getEnvWithDefault("UNO_MESSAGE_DELAY", "0s")); err != nil {
		return nil, invalid("UNO_MESSAGE_DELAY", err)
	}
	if cfg.NoColor, err = cast.ToBoolE(getEnvWithDefault("UNO_NO_COLOR", "false")); err != nil {
		return nil, invalid("UNO_NO_COLOR", err)
	}
	return cfg, nil
}

// ApplyArgs lets the first command line argument override the player count.
func (c *Config) ApplyArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) > 1 {
		return fmt.Errorf("usage: uno [players], got %d arguments: %w", len(args), consts.ErrorsConfigInvalid)
	}
	players, err := cast.ToIntE(args[0])
	if err != nil {
		return fmt.Errorf("player count %q: %v: %w", args[0], err, consts.ErrorsPlayerCountInvalid)
	}
	c.Players = players
	return nil
}

func (c *Config) Validate() error {
	if c.Players < consts.MinPlayers || c.Players > consts.MaxPlayers {
		return fmt.Errorf("%d players, want %d-%d: %w", c.Players, consts.MinPlayers, consts.MaxPlayers, consts.ErrorsPlayerCountInvalid)
	}
	if c.Bots < 0 || c.Bots > c.Players {
		return fmt.Errorf("%d bots for %d players: %w", c.Bots, c.Players, consts.ErrorsConfigInvalid)
	}
	if c.MessageDelay < 0 {
		return fmt.Errorf("negative message delay %s: %w", c.MessageDelay, consts.ErrorsConfigInvalid)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return invalid("UNO_LOG_LEVEL", err)
	}
	return nil
}

// NewLogger builds the program logger. The returned function closes the log
// file, if there is one.
func (c *Config) NewLogger() (*logrus.Logger, func() error, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, invalid("UNO_LOG_LEVEL", err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if c.LogFile == "" {
		logger.SetOutput(os.Stderr)
		return logger, func() error { return nil }, nil
	}

	file, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(file)
	return logger, file.Close, nil
}

// Rand returns the random source for shuffling and bots.
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func invalid(key string, err error) error {
	return fmt.Errorf("%s: %v: %w", key, err, consts.ErrorsConfigInvalid)
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
