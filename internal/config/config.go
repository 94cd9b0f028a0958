package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string `mapstructure:"SERVER_PORT"`
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`

	DBHost     string `mapstructure:"POSTGRES_HOST"`
	DBPort     string `mapstructure:"POSTGRES_PORT"`
	DBUser     string `mapstructure:"POSTGRES_USER"`
	DBPassword string `mapstructure:"POSTGRES_PASSWORD"`
	DBName     string `mapstructure:"POSTGRES_DB"`

	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	StripePublicKey string `mapstructure:"STRIPE_PUBLIC_KEY"`
}

// Load reads app.env from path when present and merges environment
// variables on top, so a plain-env deployment needs no file at all.
func Load(path string) (Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// AutomaticEnv only resolves keys viper has already seen, so bind
	// every key to keep the file optional.
	for _, key := range []string{
		"SERVER_PORT", "PUBLIC_BASE_URL",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"STRIPE_SECRET_KEY", "STRIPE_PUBLIC_KEY",
	} {
		if err := viper.BindEnv(key); err != nil {
			return cfg, fmt.Errorf("viper.BindEnv %s: %w", key, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("viper.Unmarshal: %w", err)
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.ServerPort
	}

	return cfg, nil
}

// DatabaseDSN is the pgx connection string for the configured Postgres.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
