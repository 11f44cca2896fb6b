package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Log      LogConfig
	Seed     SeedConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
}

// DatabaseConfig holds settings for the file-backed sqlite store
type DatabaseConfig struct {
	Path         string // path to the database file, or ":memory:"
	BusyTimeout  int    // in milliseconds
	MaxOpenConns int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// SeedConfig holds the quantities and value ranges used by the seeder
type SeedConfig struct {
	Books       int
	Salespeople int
	CostMin     int
	CostMax     int
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with BOOKSTORE_ prefix (e.g. BOOKSTORE_DATABASE_PATH)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Seed values go through viper defaults so an explicit zero (e.g.
	// cost_min = 0) is distinguishable from an unset key.
	v.SetDefault("seed.books", 50)
	v.SetDefault("seed.salespeople", 20)
	v.SetDefault("seed.cost_min", 5)
	v.SetDefault("seed.cost_max", 35)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Database: DatabaseConfig{
			Path:         v.GetString("database.path"),
			BusyTimeout:  v.GetInt("database.busy_timeout"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Seed: SeedConfig{
			Books:       v.GetInt("seed.books"),
			Salespeople: v.GetInt("seed.salespeople"),
			CostMin:     v.GetInt("seed.cost_min"),
			CostMax:     v.GetInt("seed.cost_max"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "bookstore-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "bookstore.db"
	}
	if cfg.Database.BusyTimeout == 0 {
		cfg.Database.BusyTimeout = 5000
	}
	if cfg.Database.MaxOpenConns == 0 {
		// sqlite tolerates exactly one writer; a single connection avoids
		// SQLITE_BUSY churn for this workload
		cfg.Database.MaxOpenConns = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Database.MaxOpenConns <= 0 {
		return fmt.Errorf("database.max_open_conns must be positive")
	}
	if c.Seed.Books < 0 {
		return fmt.Errorf("seed.books cannot be negative")
	}
	if c.Seed.Salespeople < 0 {
		return fmt.Errorf("seed.salespeople cannot be negative")
	}
	if c.Seed.CostMax < c.Seed.CostMin {
		return fmt.Errorf("seed.cost_max (%d) cannot be less than seed.cost_min (%d)",
			c.Seed.CostMax, c.Seed.CostMin)
	}
	return nil
}

// DSN returns the sqlite connection string for the configured database file
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=%d", d.Path, d.BusyTimeout)
}
