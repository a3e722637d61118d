package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cbodonnell/simon/pkg/game/constants"
	"github.com/cbodonnell/simon/pkg/game/types"
	"github.com/cbodonnell/simon/pkg/log"
	"github.com/joho/godotenv"
)

const (
	DefaultDatabaseURL = "sqlite://simon.db"
	DefaultLogLevel    = "info"
	DefaultDifficulty  = "medium"
)

type Config struct {
	DatabaseURL string
	LogLevel    log.LogLevel
	// PlayerName prefills the name prompt; empty means ask
	PlayerName string
	Difficulty types.Difficulty
	Sound      bool
	// APIPort serves the status API when non-zero
	APIPort      int
	TickInterval time.Duration
}

// Load reads the configuration from a .env file, the environment and then
// args, each overriding the one before.
func Load(name string, args []string) (*Config, error) {
	_ = godotenv.Load()

	sound, err := envBool("SIMON_SOUND", true)
	if err != nil {
		return nil, err
	}
	apiPort, err := envInt("SIMON_API_PORT", 0)
	if err != nil {
		return nil, err
	}
	tickInterval, err := envDuration("SIMON_TICK_INTERVAL", constants.SessionLoopInterval)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	var logLevel, difficulty string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.DatabaseURL, "database-url", envString("SIMON_DATABASE_URL", DefaultDatabaseURL), "Database URL (sqlite://, postgresql://, memory://)")
	fs.StringVar(&logLevel, "log-level", envString("SIMON_LOG_LEVEL", DefaultLogLevel), "Log level")
	fs.StringVar(&cfg.PlayerName, "name", os.Getenv("SIMON_PLAYER_NAME"), "Player name")
	fs.StringVar(&difficulty, "difficulty", envString("SIMON_DIFFICULTY", DefaultDifficulty), "Difficulty (easy, medium, hard)")
	fs.BoolVar(&cfg.Sound, "sound", sound, "Play a tone for each color")
	fs.IntVar(&cfg.APIPort, "api-port", apiPort, "Port of the status API, 0 to disable")
	fs.DurationVar(&cfg.TickInterval, "tick-interval", tickInterval, "Interval of the session loop")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.LogLevel, err = log.ParseLogLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %v", err)
	}
	cfg.Difficulty, err = types.ParseDifficulty(difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to parse difficulty: %v", err)
	}
	if cfg.APIPort < 0 || cfg.APIPort > 65535 {
		return nil, fmt.Errorf("api port %d out of range", cfg.APIPort)
	}
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("tick interval must be positive, got %s", cfg.TickInterval)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %v", key, err)
	}
	return b, nil
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %v", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %v", key, err)
	}
	return d, nil
}
