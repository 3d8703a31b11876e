package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig is returned when the config file cannot be read or parsed
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig is returned when required values are missing or invalid
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the full service configuration loaded from config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig holds the HTTP server settings (timeouts in seconds)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds the Postgres connection settings
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig holds logger settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig toggles prometheus metrics exposure
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load reads and validates the configuration from path, applying defaults
// for optional values
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "fm-booking-service",
			Path:        "/metrics",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if cfg.Database.User == "" {
		return nil, fmt.Errorf("%w: database.user is required", ErrInvalidConfig)
	}
	if cfg.Database.DBName == "" {
		return nil, fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}
	if cfg.Server.HTTPPort <= 0 {
		return nil, fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	return cfg, nil
}
