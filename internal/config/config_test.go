package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != 8090 {
		t.Errorf("Port = %v, want %v", cfg.Port, 8090)
	}
	if cfg.UserID != 2 {
		t.Errorf("UserID = %v, want %v", cfg.UserID, 2)
	}
	if cfg.CatalogServiceURL != "http://localhost:8081" {
		t.Errorf("CatalogServiceURL = %v, want %v", cfg.CatalogServiceURL, "http://localhost:8081")
	}
	if cfg.BookingServiceURL != "http://localhost:8082" {
		t.Errorf("BookingServiceURL = %v, want %v", cfg.BookingServiceURL, "http://localhost:8082")
	}
	if cfg.RedisHost != "" {
		t.Errorf("RedisHost = %v, want empty", cfg.RedisHost)
	}
	if cfg.RabbitHost != "" {
		t.Errorf("RabbitHost = %v, want empty", cfg.RabbitHost)
	}
	if cfg.SubmitGuardTTLSec != 30 {
		t.Errorf("SubmitGuardTTLSec = %v, want %v", cfg.SubmitGuardTTLSec, 30)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("BOOKING_USER_ID", "7")
	t.Setenv("CATALOG_SERVICE_URL", "http://catalog:8081")
	t.Setenv("REDIS_HOST", "redis")

	cfg := Load()

	if cfg.Port != 9000 {
		t.Errorf("Port = %v, want %v", cfg.Port, 9000)
	}
	if cfg.UserID != 7 {
		t.Errorf("UserID = %v, want %v", cfg.UserID, 7)
	}
	if cfg.CatalogServiceURL != "http://catalog:8081" {
		t.Errorf("CatalogServiceURL = %v, want %v", cfg.CatalogServiceURL, "http://catalog:8081")
	}
	if cfg.RedisHost != "redis" {
		t.Errorf("RedisHost = %v, want %v", cfg.RedisHost, "redis")
	}
}

func TestLoadInvalidInt(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")

	cfg := Load()

	if cfg.Port != 8090 {
		t.Errorf("Port = %v, want default %v on invalid input", cfg.Port, 8090)
	}
}
