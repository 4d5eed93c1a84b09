package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"wardbook/internal/apperrors"
)

const (
	DefaultPort           = 8080
	DefaultDBPort         = 5432
	DefaultDBMaxConns     = 5
	DefaultBrowseMaxLimit = 1000
)

type Config struct {
	Port int `koanf:"port"`

	DBHost     string `koanf:"db_host"`
	DBPort     int    `koanf:"db_port"`
	DBUsername string `koanf:"db_username"`
	DBPassword string `koanf:"db_password"`
	DBDatabase string `koanf:"db_database"`
	DBSSLMode  string `koanf:"db_sslmode"`
	DBMaxConns int    `koanf:"db_max_conns"`

	SessionSecret string `koanf:"session_secret"`
	SessionSecure bool   `koanf:"session_secure"`
	CORSOrigins   string `koanf:"cors_origins"`
	LogLevel      string `koanf:"log_level"`

	BrowseMaxLimit      int  `koanf:"browse_max_limit"`
	BrowseAccountTables bool `koanf:"browse_account_tables"`
	SeedDemoData        bool `koanf:"seed_demo_data"`
}

var defaults = map[string]interface{}{
	"port":                  DefaultPort,
	"db_port":               DefaultDBPort,
	"db_sslmode":            "disable",
	"db_max_conns":          DefaultDBMaxConns,
	"log_level":             "info",
	"browse_max_limit":      DefaultBrowseMaxLimit,
	"browse_account_tables": true,
	"seed_demo_data":        true,
	"session_secure":        false,
}

// Load reads .env (if present) and the process environment. DB_HOST becomes
// the key db_host; only keys known to Config are picked up.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	known := knownKeys()
	if err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !known[key] {
			return ""
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every missing database setting at once. Settings only the
// API server needs are checked by ValidateServer.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		key   string
		value string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_USERNAME", c.DBUsername},
		{"DB_PASSWORD", c.DBPassword},
		{"DB_DATABASE", c.DBDatabase},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return apperrors.Configuration(missing)
	}

	if c.DBMaxConns <= 0 {
		c.DBMaxConns = DefaultDBMaxConns
	}
	if c.BrowseMaxLimit <= 0 {
		c.BrowseMaxLimit = DefaultBrowseMaxLimit
	}
	return nil
}

// ValidateServer checks the settings the HTTP server needs on top of Validate.
func (c *Config) ValidateServer() error {
	if strings.TrimSpace(c.SessionSecret) == "" {
		return apperrors.Configuration([]string{"SESSION_SECRET"})
	}
	return nil
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func knownKeys() map[string]bool {
	return map[string]bool{
		"port":                  true,
		"db_host":               true,
		"db_port":               true,
		"db_username":           true,
		"db_password":           true,
		"db_database":           true,
		"db_sslmode":            true,
		"db_max_conns":          true,
		"session_secret":        true,
		"session_secure":        true,
		"cors_origins":          true,
		"log_level":             true,
		"browse_max_limit":      true,
		"browse_account_tables": true,
		"seed_demo_data":        true,
	}
}
