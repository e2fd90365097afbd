package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("RABBITMQ_MAX_RETRIES", "9")
	t.Setenv("RESERVATION_CONFLICT_BACKOFF", "200ms")

	cfg := config.Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, 9, cfg.RabbitMQ.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.Reservation.ConflictBackoff)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, uint64(3), cfg.Reservation.ConflictRetries)
	assert.Equal(t, 72*time.Hour, cfg.Reservation.ProcessedEventTTL)
	assert.Equal(t, 5*time.Second, cfg.RabbitMQ.RetryDelay)
}

func TestConfig_GetDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host: "localhost", Port: 3306, User: "stock", Password: "secret", Name: "ledger",
	}}

	assert.Equal(t, "stock:secret@tcp(localhost:3306)/ledger?parseTime=true&loc=UTC&multiStatements=true", cfg.GetDSN())
}
