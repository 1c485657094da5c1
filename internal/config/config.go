package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Storage  StorageConfig
	AuthAPI  AuthAPIConfig
	Watcher  WatcherConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
	ResetTokenTTL        time.Duration
}

// StorageConfig holds the object storage base URL and bucket names
type StorageConfig struct {
	BaseURL         string
	DocumentsBucket string
	AvatarsBucket   string
}

// AuthAPIConfig holds the external auth-admin API used for account
// deletion. The service key never reaches the browser.
type AuthAPIConfig struct {
	BaseURL    string
	ServiceKey string
	Timeout    time.Duration
}

// WatcherConfig holds the registration watcher poll interval
type WatcherConfig struct {
	Interval time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "laundryscout"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
			ResetTokenTTL:        getEnvAsDuration("RESET_TOKEN_TTL", 30*time.Minute),
		},
		Storage: StorageConfig{
			BaseURL:         getEnv("STORAGE_BASE_URL", "http://localhost:8080"),
			DocumentsBucket: getEnv("STORAGE_DOCUMENTS_BUCKET", "businessdocuments"),
			AvatarsBucket:   getEnv("STORAGE_AVATARS_BUCKET", "admin-avatars"),
		},
		AuthAPI: AuthAPIConfig{
			BaseURL:    getEnv("AUTH_API_URL", ""),
			ServiceKey: getEnv("AUTH_API_SERVICE_KEY", ""),
			Timeout:    getEnvAsDuration("AUTH_API_TIMEOUT", 10*time.Second),
		},
		Watcher: WatcherConfig{
			Interval: getEnvAsDuration("WATCHER_INTERVAL", 15*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
