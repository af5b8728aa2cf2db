package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabaseMaxConns int

	// Authentication
	JWTSecret string

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailFrom         string

	// Discord
	DiscordBotToken  string
	DiscordChannelID string

	// Other
	KafkaBroker string
	Port        string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		// Database - required
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabaseMaxConns: getEnvAsInt("DATABASE_MAX_CONNS", 20),

		// JWT - required
		JWTSecret: getEnv("JWT_SECRET", "dummyjwt"),

		// Gmail - without credentials mails are only logged
		GmailClientID:     getEnvWithDefault("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnvWithDefault("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnvWithDefault("GMAIL_REFRESH_TOKEN", ""),
		GmailFrom:         getEnvWithDefault("GMAIL_FROM", "staff@khe.io"),

		// Discord - optional
		DiscordBotToken:  getEnvWithDefault("DISCORD_BOT_TOKEN", ""),
		DiscordChannelID: getEnvWithDefault("DISCORD_CHANNEL_ID", ""),

		// Other
		KafkaBroker: getEnvWithDefault("KAFKA_BROKER", ""),
		Port:        getEnvWithDefault("PORT", "8000"),
	}
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

func (c *Config) GmailConfigured() bool {
	return c.GmailClientID != "" && c.GmailClientSecret != "" && c.GmailRefreshToken != ""
}

// Helper functions
// getEnv panics in production when key is unset and falls back to devDefault otherwise.
func getEnv(key string, devDefault string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	if value == "" {
		return devDefault
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}
