package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Reservation ReservationConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	PrefetchCount int
	MaxRetries    int
	// RetryDelay is how long a failed delivery waits in the retry queue.
	RetryDelay time.Duration
}

type AuthConfig struct {
	JWTSecret      string
	InternalAPIKey string
}

type ReservationConfig struct {
	// ProcessedEventTTL bounds how long consumed order events stay in the Redis fast path.
	ProcessedEventTTL time.Duration
	// ConflictRetries is how many times a handler re-runs after a concurrent stock update.
	ConflictRetries uint64
	ConflictBackoff time.Duration
}

var defaults = map[string]any{
	"ENVIRONMENT":                  "development",
	"SERVER_PORT":                  "8080",
	"SERVER_READ_TIMEOUT":          "15s",
	"SERVER_WRITE_TIMEOUT":         "15s",
	"SERVER_IDLE_TIMEOUT":          "60s",
	"DB_HOST":                      "127.0.0.1",
	"DB_PORT":                      3306,
	"DB_USER":                      "root",
	"DB_PASSWORD":                  "",
	"DB_NAME":                      "stock_ledger",
	"DB_MAX_OPEN_CONNS":            25,
	"DB_MAX_IDLE_CONNS":            5,
	"DB_CONN_MAX_LIFETIME":         "5m",
	"DB_AUTO_MIGRATE":              false,
	"REDIS_HOST":                   "",
	"REDIS_PORT":                   6379,
	"REDIS_PASSWORD":               "",
	"REDIS_DB":                     0,
	"RABBITMQ_HOST":                "127.0.0.1",
	"RABBITMQ_PORT":                5672,
	"RABBITMQ_USER":                "guest",
	"RABBITMQ_PASSWORD":            "guest",
	"RABBITMQ_PREFETCH_COUNT":      1,
	"RABBITMQ_MAX_RETRIES":         5,
	"RABBITMQ_RETRY_DELAY":         "5s",
	"JWT_SECRET":                   "",
	"INTERNAL_API_KEY":             "",
	"RESERVATION_PROCESSED_TTL":    "72h",
	"RESERVATION_CONFLICT_RETRIES": 3,
	"RESERVATION_CONFLICT_BACKOFF": "50ms",
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			ReadTimeout:  v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("SERVER_WRITE_TIMEOUT"),
			IdleTimeout:  v.GetDuration("SERVER_IDLE_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:          v.GetString("RABBITMQ_HOST"),
			Port:          v.GetInt("RABBITMQ_PORT"),
			User:          v.GetString("RABBITMQ_USER"),
			Password:      v.GetString("RABBITMQ_PASSWORD"),
			PrefetchCount: v.GetInt("RABBITMQ_PREFETCH_COUNT"),
			MaxRetries:    v.GetInt("RABBITMQ_MAX_RETRIES"),
			RetryDelay:    v.GetDuration("RABBITMQ_RETRY_DELAY"),
		},
		Auth: AuthConfig{
			JWTSecret:      v.GetString("JWT_SECRET"),
			InternalAPIKey: v.GetString("INTERNAL_API_KEY"),
		},
		Reservation: ReservationConfig{
			ProcessedEventTTL: v.GetDuration("RESERVATION_PROCESSED_TTL"),
			ConflictRetries:   v.GetUint64("RESERVATION_CONFLICT_RETRIES"),
			ConflictBackoff:   v.GetDuration("RESERVATION_CONFLICT_BACKOFF"),
		},
	}
}

// GetDSN builds the MySQL DSN. parseTime is required to scan DATETIME columns into time.Time.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&multiStatements=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
