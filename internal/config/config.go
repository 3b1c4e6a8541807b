package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Groq     GroqConfig     `mapstructure:"groq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	// DSN is the Postgres connection string. Leaving it empty is allowed:
	// the server starts and persistence endpoints report the store as
	// unconfigured instead of the process crashing.
	DSN string `mapstructure:"dsn"`
}

type GroqConfig struct {
	APIKey             string `mapstructure:"api_key"`
	BaseURL            string `mapstructure:"base_url"`
	InsightModel       string `mapstructure:"insight_model"`
	CategorizeModel    string `mapstructure:"categorize_model"`
	RequestTimeoutSecs int    `mapstructure:"request_timeout_secs"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// Load reads config.yaml from the working directory (if present) with
// LIFEME_-prefixed environment variables taking precedence. A .env file is
// loaded first so local development matches the deployed environment shape.
func Load() (*Config, error) {
	// Missing .env is the normal case outside local dev.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("LIFEME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.insight_model", "llama3-70b-8192")
	v.SetDefault("groq.categorize_model", "llama3-8b-8192")
	v.SetDefault("groq.request_timeout_secs", 10)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hours", 72)

	if err := v.ReadInConfig(); err != nil {
		// The config file is optional; env vars alone are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Viper only honours AutomaticEnv for keys it has seen, so bind the
	// ones that commonly arrive via the environment alone.
	for _, key := range []string{
		"server.port", "server.mode",
		"database.dsn",
		"groq.api_key", "groq.base_url", "groq.insight_model",
		"groq.categorize_model", "groq.request_timeout_secs",
		"jwt.secret", "jwt.expire_hours",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations that cannot possibly run. Absent DSN or
// API key are not errors: those features degrade instead.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.Groq.RequestTimeoutSecs <= 0 {
		return fmt.Errorf("groq request timeout must be positive, got %d", c.Groq.RequestTimeoutSecs)
	}
	if c.JWT.ExpireHours <= 0 {
		return fmt.Errorf("jwt expire hours must be positive, got %d", c.JWT.ExpireHours)
	}
	return nil
}

// DatabaseConfigured reports whether a Postgres DSN was supplied.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.DSN != ""
}

// AIConfigured reports whether a Groq API key was supplied.
func (c *Config) AIConfigured() bool {
	return c.Groq.APIKey != ""
}
