package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       int
	UserID     int64 // fixed user the frontend books for
	ConsulHost string
	ConsulPort int

	// Fallback base URLs when Consul discovery is unavailable
	CatalogServiceURL string
	BookingServiceURL string

	// Empty RedisHost keeps the submit guard in-process
	RedisHost         string
	RedisPort         int
	SubmitGuardTTLSec int

	// Empty RabbitHost disables confirmation publishing
	RabbitHost string
	RabbitPort int
	RabbitUser string
	RabbitPass string
}

func Load() *Config {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("✅ Loaded .env file")
	}

	return &Config{
		Port:              envInt("APP_PORT", 8090),
		UserID:            int64(envInt("BOOKING_USER_ID", 2)),
		ConsulHost:        env("CONSUL_HOST", "localhost"),
		ConsulPort:        envInt("CONSUL_PORT", 8500),
		CatalogServiceURL: env("CATALOG_SERVICE_URL", "http://localhost:8081"),
		BookingServiceURL: env("BOOKING_SERVICE_URL", "http://localhost:8082"),
		RedisHost:         env("REDIS_HOST", ""),
		RedisPort:         envInt("REDIS_PORT", 6379),
		SubmitGuardTTLSec: envInt("SUBMIT_GUARD_TTL_SEC", 30),
		RabbitHost:        env("RABBITMQ_HOST", ""),
		RabbitPort:        envInt("RABBITMQ_PORT", 5672),
		RabbitUser:        env("RABBITMQ_USER", "guest"),
		RabbitPass:        env("RABBITMQ_PASS", "guest"),
	}
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ Invalid int for %s: %q, using default %d", key, v, def)
		return def
	}
	return n
}
