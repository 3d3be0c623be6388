package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	secretKeyPlaceholder = "change_me_in_production"
	minSecretKeyLength   = 32
)

// Config holds all configuration for the application.
type Config struct {
	Port            string `mapstructure:"PORT"`
	DBDriver        string `mapstructure:"DB_DRIVER"`
	DBPath          string `mapstructure:"DB_PATH"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	SecretKey       string `mapstructure:"SECRET_KEY"`
	Timezone        string `mapstructure:"TZ"`
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`
	CookieSecure    bool   `mapstructure:"COOKIE_SECURE"`
	OwnerEmail      string `mapstructure:"OWNER_EMAIL"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	LogFormat       string `mapstructure:"LOG_FORMAT"`
	ConfigFile      string `mapstructure:"CONFIG_FILE"`

	Location *time.Location `mapstructure:"-"`
}

var knownKeys = []string{
	"PORT",
	"DB_DRIVER",
	"DB_PATH",
	"DATABASE_URL",
	"SECRET_KEY",
	"TZ",
	"DEFAULT_LANGUAGE",
	"COOKIE_SECURE",
	"OWNER_EMAIL",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"CONFIG_FILE",
}

// Load reads .env (when present), an optional CONFIG_FILE and the process
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return LoadFrom(viper.New())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_PATH", filepath.Join("data", "autonomie.db"))
	v.SetDefault("TZ", "UTC")
	v.SetDefault("DEFAULT_LANGUAGE", "fr")
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	for _, key := range knownKeys {
		_ = v.BindEnv(key)
	}

	if configFile := strings.TrimSpace(v.GetString("CONFIG_FILE")); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) normalize() error {
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(cfg.DefaultLanguage))
	cfg.OwnerEmail = strings.ToLower(strings.TrimSpace(cfg.OwnerEmail))

	secretKey, err := ResolveSecretKey(cfg.SecretKey)
	if err != nil {
		return err
	}
	cfg.SecretKey = secretKey

	switch cfg.DBDriver {
	case DriverSQLite:
		if strings.TrimSpace(cfg.DBPath) == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	location, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone))
	if err != nil {
		return fmt.Errorf("invalid TZ %q: %w", cfg.Timezone, err)
	}
	cfg.Location = location
	return nil
}

// ResolveSecretKey rejects empty keys, the documented placeholder and keys
// too short to sign session tokens.
func ResolveSecretKey(raw string) (string, error) {
	secretKey := strings.TrimSpace(raw)
	switch {
	case secretKey == "":
		return "", errors.New("SECRET_KEY is required")
	case secretKey == secretKeyPlaceholder:
		return "", errors.New("SECRET_KEY must not use the placeholder value")
	case len(secretKey) < minSecretKeyLength:
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secretKey, nil
}
