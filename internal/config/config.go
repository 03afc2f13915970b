// Package config provides configuration management for the demo trading app.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "papertrader/internal/errors"
	"papertrader/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Ledger  LedgerConfig      `mapstructure:"ledger"`
	Storage StorageConfig     `mapstructure:"storage"`
	Logging logging.LogConfig `mapstructure:"logging"`
}

// LedgerConfig holds the simulated ledger tunables.
type LedgerConfig struct {
	// DemoBalance is the total demo portfolio value before the seed
	// holdings are carved out of it.
	DemoBalance float64 `mapstructure:"demo_balance"`

	// XPPerTrade is awarded for every successful buy or sell.
	XPPerTrade int `mapstructure:"xp_per_trade"`

	// DustEpsilon is the share count below which a position is treated
	// as fully closed after a sell.
	DustEpsilon float64 `mapstructure:"dust_epsilon"`

	// TradeLogLimit caps the trade log at the most recent N entries.
	// Zero means unbounded.
	TradeLogLimit int `mapstructure:"trade_log_limit"`

	// Seed gamification defaults.
	SeedXP     int `mapstructure:"seed_xp"`
	SeedStreak int `mapstructure:"seed_streak"`
}

// StorageConfig holds persistence configuration.
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/papertrader"
	}
	return filepath.Join(home, ".config", "papertrader")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			DemoBalance:   10000,
			XPPerTrade:    15,
			DustEpsilon:   1e-4,
			TradeLogLimit: 0,
			SeedXP:        0,
			SeedStreak:    0,
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(DefaultConfigDir(), "ledger.db"),
		},
		Logging: logging.DefaultLogConfig(),
	}
}

// Load loads configuration from the specified directory. If configDir is
// empty, the default config directory is used. A missing config file is
// not an error; built-in defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	def := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetDefault("ledger.demo_balance", def.Ledger.DemoBalance)
	v.SetDefault("ledger.xp_per_trade", def.Ledger.XPPerTrade)
	v.SetDefault("ledger.dust_epsilon", def.Ledger.DustEpsilon)
	v.SetDefault("ledger.trade_log_limit", def.Ledger.TradeLogLimit)
	v.SetDefault("ledger.seed_xp", def.Ledger.SeedXP)
	v.SetDefault("ledger.seed_streak", def.Ledger.SeedStreak)
	v.SetDefault("storage.db_path", def.Storage.DBPath)
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.console", def.Logging.Console)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.filepath", def.Logging.FilePath)
	v.SetDefault("logging.maxsize", def.Logging.MaxSize)
	v.SetDefault("logging.maxbackups", def.Logging.MaxBackups)
	v.SetDefault("logging.maxage", def.Logging.MaxAge)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperrors.Wrap(err, "reading config.toml")
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(err, "parsing config.toml")
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "validating config")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAPERTRADER_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("PAPERTRADER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate validates the configuration. Failures wrap ErrConfigInvalid
// so callers can classify them with errors.Is.
func (c *Config) Validate() error {
	if c.Ledger.DemoBalance <= 0 {
		return fmt.Errorf("%w: demo_balance must be positive, got %v", apperrors.ErrConfigInvalid, c.Ledger.DemoBalance)
	}
	if c.Ledger.XPPerTrade < 0 {
		return fmt.Errorf("%w: xp_per_trade must be non-negative, got %d", apperrors.ErrConfigInvalid, c.Ledger.XPPerTrade)
	}
	if c.Ledger.DustEpsilon <= 0 || c.Ledger.DustEpsilon >= 1 {
		return fmt.Errorf("%w: dust_epsilon must be in (0, 1), got %v", apperrors.ErrConfigInvalid, c.Ledger.DustEpsilon)
	}
	if c.Ledger.TradeLogLimit < 0 {
		return fmt.Errorf("%w: trade_log_limit must be non-negative, got %d", apperrors.ErrConfigInvalid, c.Ledger.TradeLogLimit)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: db_path must not be empty", apperrors.ErrConfigInvalid)
	}
	return nil
}
