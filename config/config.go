package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"edulearn_backend/db"
)

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Environment    string        `mapstructure:"ENVIRONMENT"`
	ServerPort     string        `mapstructure:"PORT"`
	CatalogSource  string        `mapstructure:"CATALOG_SOURCE"`
	CatalogFile    string        `mapstructure:"CATALOG_FILE"`
	DBHost         string        `mapstructure:"DB_HOST"`
	DBPort         int           `mapstructure:"DB_PORT"`
	DBUser         string        `mapstructure:"DB_USER"`
	DBPassword     string        `mapstructure:"DB_PASSWORD"`
	DBName         string        `mapstructure:"DB_NAME"`
	DBSSLMode      string        `mapstructure:"DB_SSLMODE"`
	AllowedOrigins string        `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr      string        `mapstructure:"REDIS_ADDR"`
	RateLimit      int           `mapstructure:"RATE_LIMIT"`
	RateWindow     time.Duration `mapstructure:"RATE_WINDOW"`
}

var defaults = map[string]any{
	"ENVIRONMENT":     "production",
	"PORT":            "8080",
	"CATALOG_SOURCE":  SourceEmbedded,
	"CATALOG_FILE":    "",
	"DB_HOST":         "localhost",
	"DB_PORT":         5432,
	"DB_USER":         "postgres",
	"DB_PASSWORD":     "",
	"DB_NAME":         "edulearn",
	"DB_SSLMODE":      "disable",
	"ALLOWED_ORIGINS": "*",
	"REDIS_ADDR":      "",
	"RATE_LIMIT":      120,
	"RATE_WINDOW":     "1m",
}

// LoadDotEnv loads .env into the process environment. A missing file is not
// an error.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading .env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment and an optional app.env
// file under path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceEmbedded, SourcePostgres:
	case SourceFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=%s", SourceFile)
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.CatalogSource)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must not be negative, got %d", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateWindow <= 0 {
		return fmt.Errorf("RATE_WINDOW must be positive when RATE_LIMIT is set")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.ServerPort, ":")
}

// Origins splits ALLOWED_ORIGINS. A nil result means every origin is allowed.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			return nil
		}
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) Database() db.Config {
	return db.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}
