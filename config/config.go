// Package config loads service configuration from the environment.
// A local .env file is honored first so development matches the
// compose/deployment setup without exporting variables by hand.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port     string
	LogLevel string
	DB       DBConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// PingTimeout bounds the health probe and initial connect checks.
	PingTimeout time.Duration
	// ConnectMaxElapsed bounds the backoff retry loop at startup.
	ConnectMaxElapsed time.Duration
}

// DSN builds the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// URL builds the postgres:// form used by the migration tooling.
func (c DBConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func Load() (*Config, error) {
	// Missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "users_db")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SEC", 1800)
	v.SetDefault("DB_PING_TIMEOUT_SEC", 2)
	v.SetDefault("DB_CONNECT_MAX_ELAPSED_SEC", 60)

	cfg := &Config{
		Port:     v.GetString("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		DB: DBConfig{
			Host:              v.GetString("DB_HOST"),
			Port:              v.GetInt("DB_PORT"),
			User:              v.GetString("DB_USER"),
			Password:          v.GetString("DB_PASSWORD"),
			Name:              v.GetString("DB_NAME"),
			SSLMode:           v.GetString("DB_SSL_MODE"),
			MaxOpenConns:      v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:      v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime:   time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_SEC")) * time.Second,
			PingTimeout:       time.Duration(v.GetInt("DB_PING_TIMEOUT_SEC")) * time.Second,
			ConnectMaxElapsed: time.Duration(v.GetInt("DB_CONNECT_MAX_ELAPSED_SEC")) * time.Second,
		},
	}

	if cfg.DB.Port <= 0 {
		return nil, fmt.Errorf("invalid DB_PORT: %d", cfg.DB.Port)
	}

	return cfg, nil
}
