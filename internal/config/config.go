package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration.
type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Driver      string `yaml:"driver"` // sqlite or postgres
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
		BackupCron  string `yaml:"backup_cron"`
		BackupDir   string `yaml:"backup_dir"`
	} `yaml:"database"`
	Game struct {
		Seed        int64 `yaml:"seed"`         // 0 means time-seeded
		TurnSeconds int   `yaml:"turn_seconds"` // decision window
	} `yaml:"game"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then defaults. A missing file is fine; everything has defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("ORANGE_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ORANGE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ORANGE_DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("ORANGE_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("ORANGE_POSTGRES_DSN"); v != "" {
		cfg.Database.PostgresDSN = v
	}
	if v := os.Getenv("ORANGE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}

	// Defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/orange.db"
	}
	if cfg.Database.BackupCron == "" {
		cfg.Database.BackupCron = "0 0 * * * *"
	}
	if cfg.Database.BackupDir == "" {
		cfg.Database.BackupDir = "data/backups"
	}
	if cfg.Game.TurnSeconds == 0 {
		cfg.Game.TurnSeconds = 30
	}

	return cfg, nil
}

// Validate checks field consistency.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("database.sqlite_path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.PostgresDSN == "" {
			return fmt.Errorf("database.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}
	if c.Game.TurnSeconds < 5 {
		return fmt.Errorf("game.turn_seconds must be at least 5")
	}
	return nil
}
