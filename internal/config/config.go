package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kapu/pedigree-chart-go/internal/domain"
)

type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Chart    ChartConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type ChartConfig struct {
	Width               int
	Height              int
	Generations         int
	Orientation         string
	Direction           string
	Language            string
	ViewURLTemplate     string
	EditURLTemplate     string
	ShowHighlightImages bool
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "pedigree"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Chart: ChartConfig{
			Width:               getEnvInt("CHART_WIDTH", 1200),
			Height:              getEnvInt("CHART_HEIGHT", 900),
			Generations:         getEnvInt("CHART_GENERATIONS", 4),
			Orientation:         getEnv("CHART_ORIENTATION", "vertical"),
			Direction:           getEnv("CHART_DIRECTION", "ltr"),
			Language:            getEnv("CHART_LANGUAGE", "en"),
			ViewURLTemplate:     getEnv("CHART_VIEW_URL_TEMPLATE", "/individual/%s"),
			EditURLTemplate:     getEnv("CHART_EDIT_URL_TEMPLATE", "/individual/%s/edit"),
			ShowHighlightImages: getEnvBool("CHART_SHOW_HIGHLIGHT_IMAGES", true),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "logs/chartd.log"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be a valid port")
	}
	if c.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	if c.Postgres.User == "" {
		return fmt.Errorf("POSTGRES_USER is required")
	}
	if c.Postgres.Database == "" {
		return fmt.Errorf("POSTGRES_DB is required")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("CHART_WIDTH and CHART_HEIGHT must be positive")
	}
	if c.Chart.Generations < 1 {
		return fmt.Errorf("CHART_GENERATIONS must be at least 1")
	}
	if !domain.Orientation(c.Chart.Orientation).IsValid() {
		return fmt.Errorf("CHART_ORIENTATION must be vertical or horizontal")
	}
	if c.Chart.Direction != "ltr" && c.Chart.Direction != "rtl" {
		return fmt.Errorf("CHART_DIRECTION must be ltr or rtl")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
