package config

import (
	"fmt"
	"os"
)

// Storage drivers for the appointment store.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	ServerPort string
	LogLevel   string

	// Appointment storage. Memory is the default; postgres needs DBUrl.
	StorageDriver string
	DBUrl         string

	// OTP storage. Empty RedisAddr keeps codes in process memory.
	RedisAddr     string
	RedisPassword string

	JWTSecret string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	SMSWebhookURL   string
	SMSWebhookToken string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		StorageDriver: getEnv("STORAGE_DRIVER", StorageMemory),
		DBUrl:         getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "bookings@example.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", ""),

		SMSWebhookURL:   getEnv("SMS_WEBHOOK_URL", ""),
		SMSWebhookToken: getEnv("SMS_WEBHOOK_TOKEN", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
