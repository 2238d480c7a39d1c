package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Profile store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds everything main needs to wire the server.
type Config struct {
	Port           string        `yaml:"port"`
	DatabasePath   string        `yaml:"databasePath"`
	MenuURL        string        `yaml:"menuURL"`
	FetchTimeout   time.Duration `yaml:"fetchTimeout"`
	ProfileBackend string        `yaml:"profileBackend"`
	RedisAddr      string        `yaml:"redisAddr"`
	RedisPassword  string        `yaml:"redisPassword"`
	LogLevel       string        `yaml:"logLevel"`
	CORSOrigins    []string      `yaml:"corsOrigins"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:           "8080",
		DatabasePath:   "little-lemon.db",
		MenuURL:        "https://raw.githubusercontent.com/Meta-Mobile-Developer-PC/Working-With-Data-API/main/menu.json",
		FetchTimeout:   30 * time.Second,
		ProfileBackend: BackendSQLite,
		RedisAddr:      "localhost:6379",
		LogLevel:       "info",
		CORSOrigins:    []string{"*"},
	}
}

// Load layers configuration: defaults, then the YAML file at path (a missing
// file is fine), then a .env file, then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("MENU_URL"); v != "" {
		cfg.MenuURL = v
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
		}
		cfg.FetchTimeout = d
	}
	if v := os.Getenv("PROFILE_BACKEND"); v != "" {
		cfg.ProfileBackend = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	return nil
}

// Validate checks the configuration for values main cannot work with.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.DatabasePath == "" {
		return errors.New("database path is required")
	}
	if c.MenuURL == "" {
		return errors.New("menu URL is required")
	}
	if c.FetchTimeout < 0 {
		return errors.New("fetch timeout must not be negative")
	}
	switch c.ProfileBackend {
	case BackendSQLite:
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("redis address is required for the redis profile backend")
		}
	default:
		return fmt.Errorf("unknown profile backend %q (must be sqlite or redis)", c.ProfileBackend)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	return level, nil
}
