package config

import (
	"fmt"
	"strconv"
	"time"

	"goose-quotes/internal/infrastructure/database"
)

// LoadDatabaseConfig reads DB_* environment variables into a DBConfig.
// DATABASE_URL, when set, wins over the discrete host/user/name settings.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	cfg := &database.DBConfig{
		URL:      getEnv("DATABASE_URL", ""),
		Host:     getEnv("DB_HOST", "localhost"),
		Username: getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "geese"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	var err error

	// Parse integers
	if cfg.Port, err = parseEnvInt("DB_PORT", 5432); err != nil {
		return nil, err
	}
	maxConns, err := parseEnvInt("DB_MAX_CONNECTIONS", 25)
	if err != nil {
		return nil, err
	}
	minConns, err := parseEnvInt("DB_MIN_CONNECTIONS", 2)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns, cfg.MinConns = int32(maxConns), int32(minConns)
	if cfg.MaxRetries, err = parseEnvInt("DB_MAX_RETRIES", 5); err != nil {
		return nil, err
	}

	// Parse durations
	if cfg.MaxConnLifetime, err = parseEnvDuration("DB_MAX_CONN_LIFETIME", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.MaxConnIdleTime, err = parseEnvDuration("DB_MAX_CONN_IDLE_TIME", time.Minute); err != nil {
		return nil, err
	}
	if cfg.HealthCheckPeriod, err = parseEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute); err != nil {
		return nil, err
	}
	if cfg.RetryDelay, err = parseEnvDuration("DB_RETRY_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.ConnectTimeout, err = parseEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseEnvInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func parseEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
