package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Token modes.
const (
	TokenModeID  = "id"
	TokenModeJWT = "jwt"
)

// Config holds the application configuration.
type Config struct {
	Port            int    `mapstructure:"PORT"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	LogFormat       string `mapstructure:"LOG_FORMAT"`
	GinMode         string `mapstructure:"GIN_MODE"`
	TokenMode       string `mapstructure:"TOKEN_MODE"`
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	BcryptCost      int    `mapstructure:"BCRYPT_COST"`
	StrictOwnership bool   `mapstructure:"STRICT_OWNERSHIP"`
}

var defaults = map[string]any{
	"PORT":             8080,
	"DATABASE_URL":     "",
	"LOG_LEVEL":        "info",
	"LOG_FORMAT":       "json",
	"GIN_MODE":         "release",
	"TOKEN_MODE":       TokenModeID,
	"JWT_SECRET":       "",
	"BCRYPT_COST":      10,
	"STRICT_OWNERSHIP": false,
}

// Load reads the configuration from a .env file in dir (if present) and the environment.
// Environment variables take precedence over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option combinations.
func (c *Config) Validate() error {
	switch c.TokenMode {
	case TokenModeID:
	case TokenModeJWT:
		if c.JWTSecret == "" {
			return errors.New("config: JWT_SECRET is required when TOKEN_MODE=jwt")
		}
	default:
		return fmt.Errorf("config: unknown TOKEN_MODE %q", c.TokenMode)
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("config: unknown LOG_FORMAT %q", c.LogFormat)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	return nil
}

// UsesMemoryStore reports whether no database is configured.
func (c *Config) UsesMemoryStore() bool {
	return c.DatabaseURL == "" || c.DatabaseURL == "memory"
}
