package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Auth     AuthConfig     `toml:"auth"`
	Jobs     JobsConfig     `toml:"jobs"`
}

// ServerConfig contains HTTP listener settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// DatabaseConfig contains the PostgreSQL connection string.
type DatabaseConfig struct {
	URL string `toml:"url"`
}

// RedisConfig contains cache connection settings.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// AuthConfig contains JWT and Google sign-in settings.
type AuthConfig struct {
	JWTSecret      string `toml:"jwt_secret"`
	GoogleClientID string `toml:"google_client_id"`
}

// JobsConfig contains background job settings.
type JobsConfig struct {
	RestockThreshold    int `toml:"restock_threshold"`
	RestockCheckMinutes int `toml:"restock_check_minutes"`
}

// Load reads configuration from a TOML file, then lets environment variables
// override the file values. Every field has a usable default so the file is
// optional.
func Load(filename string) (*Config, error) {
	config := &Config{
		Server: ServerConfig{Port: 8080},
		Redis:  RedisConfig{Addr: "localhost:6379"},
		Jobs:   JobsConfig{RestockThreshold: 10, RestockCheckMinutes: 60},
	}

	if filename != "" {
		if _, err := toml.DecodeFile(filename, config); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		config.Redis.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		config.Auth.GoogleClientID = v
	}

	if config.Database.URL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or [database] url)")
	}

	return config, nil
}
