package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// devJWTSecret signs session tokens when running locally without JWT_SECRET.
	devJWTSecret = "trustlens-dev-secret"
)

type Config struct {
	AppEnv         string
	DatabaseURL    string
	HTTPPort       string
	LogLevel       string
	LogFilePath    string
	JWTSecret      string
	SessionTTL     time.Duration
	ScopeCacheSize int

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

var AppConfig Config

func (c Config) IsProduction() bool { return c.AppEnv == EnvProduction }

func LoadConfig() error {
	err := godotenv.Load() // Load .env file if it exists

	cfg := Config{
		AppEnv:         getEnv("APP_ENV", EnvDevelopment),
		DatabaseURL:    getEnv("DATABASE_URL", "file:trustlens?mode=memory&cache=shared"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFilePath:    getEnv("LOG_FILE_PATH", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		SessionTTL:     time.Duration(getEnvAsInt("SESSION_TTL", 60)) * time.Minute,
		ScopeCacheSize: getEnvAsInt("SCOPE_CACHE_SIZE", 256),
		EnvFileLoaded:  err == nil,
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv != EnvDevelopment {
			return errors.New("JWT_SECRET environment variable is required")
		}
		cfg.JWTSecret = devJWTSecret
	}
	if cfg.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be a positive number of minutes")
	}

	AppConfig = cfg
	return nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
