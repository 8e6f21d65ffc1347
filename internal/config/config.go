// Package config loads game settings from the environment
package config

import (
	"log/slog"
	"slices"

	"github.com/caarlos0/env/v11"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

// Backend names a player repository implementation
type Backend string

// Supported backends
const (
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Backends lists every supported backend
var Backends = []Backend{BackendFile, BackendRedis, BackendSQLite, BackendMemory}

// Config holds every tunable of the game. Flags on the command line
// override what is read here.
type Config struct {
	Backend    Backend `env:"CONSOLE_QUEST_BACKEND" envDefault:"file"`
	SaveDir    string  `env:"CONSOLE_QUEST_SAVE_DIR" envDefault:"saves"`
	RedisURL   string  `env:"CONSOLE_QUEST_REDIS_URL" envDefault:"localhost:6379"`
	SQLitePath string  `env:"CONSOLE_QUEST_SQLITE_PATH" envDefault:"saves/console-quest.db"`

	LogLevel slog.Level `env:"CONSOLE_QUEST_LOG_LEVEL" envDefault:"warn"`

	EncounterRate       float64 `env:"CONSOLE_QUEST_ENCOUNTER_RATE" envDefault:"0.67"`
	LevelCap            int     `env:"CONSOLE_QUEST_LEVEL_CAP" envDefault:"50"`
	EnemyLevelThreshold int     `env:"CONSOLE_QUEST_ENEMY_LEVEL_THRESHOLD" envDefault:"2"`
	EnemyScalingFactor  float64 `env:"CONSOLE_QUEST_ENEMY_SCALING_FACTOR" envDefault:"0.6"`
	ShopStockSize       int     `env:"CONSOLE_QUEST_SHOP_STOCK_SIZE" envDefault:"5"`

	// Seed makes every roll reproducible when non-zero
	Seed uint64 `env:"CONSOLE_QUEST_SEED"`
	// CatalogDir replaces the embedded data files when set
	CatalogDir string `env:"CONSOLE_QUEST_CATALOG_DIR"`
}

// Load reads the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings after flags have been applied
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if !slices.Contains(Backends, c.Backend) {
		vb.Fieldf("Backend", "must be one of %v", Backends)
	}
	switch c.Backend {
	case BackendFile:
		errors.ValidateRequired("SaveDir", c.SaveDir, vb)
	case BackendRedis:
		errors.ValidateRequired("RedisURL", c.RedisURL, vb)
	case BackendSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	errors.ValidateFraction("EncounterRate", c.EncounterRate, vb)
	if c.LevelCap < 1 {
		vb.InvalidField("LevelCap", "must be at least 1")
	}
	if c.EnemyLevelThreshold < 1 {
		vb.InvalidField("EnemyLevelThreshold", "must be at least 1")
	}
	if c.EnemyScalingFactor <= 0 {
		vb.InvalidField("EnemyScalingFactor", "must be positive")
	}
	if c.ShopStockSize < 1 {
		vb.InvalidField("ShopStockSize", "must be at least 1")
	}

	return vb.Build()
}
