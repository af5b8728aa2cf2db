package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DATABASE_HOST", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_MAX_CONNS", "not-a-number")
	cfg := loadConfig()
	assert.Equal(t, "localhost", cfg.DatabaseHost)
	assert.Equal(t, "dummyjwt", cfg.JWTSecret)
	assert.Equal(t, 20, cfg.DatabaseMaxConns)
	assert.Equal(t, "8000", cfg.Port)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("DATABASE_MAX_CONNS", "5")
	t.Setenv("GMAIL_CLIENT_ID", "id")
	t.Setenv("GMAIL_CLIENT_SECRET", "secret")
	t.Setenv("GMAIL_REFRESH_TOKEN", "refresh")
	cfg := loadConfig()
	assert.Equal(t, 5, cfg.DatabaseMaxConns)
	assert.True(t, cfg.GmailConfigured())
}

func TestRequiredVariablePanicsInProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")
	assert.Panics(t, func() { loadConfig() })
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		DatabaseHost:     "db",
		DatabasePort:     "6543",
		PostgresUser:     "khe",
		PostgresPassword: "secret",
		DatabaseName:     "judging",
	}
	assert.Equal(t, "host=db user=khe password=secret dbname=judging port=6543 sslmode=disable", DatabaseDSN(cfg))
}
