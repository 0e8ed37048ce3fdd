package config

import (
	"fmt"
	"os"
)

// Config holds the full runtime configuration, loaded from environment
// variables with sensible local-development defaults.
type Config struct {
	ServerPort string
	Postgres   Postgres
	Redis      Redis
}

// Postgres holds the configuration for the PostgreSQL connection
type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// Redis holds the Redis configuration
type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Postgres: Postgres{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:   getEnv("POSTGRES_DB", "trivia"),
		},
		Redis: Redis{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
	}
}

// URL returns the postgres connection string
func (p Postgres) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
	)
}

// Addr returns the host:port address of the Redis server
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%s", r.Host, r.Port)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
