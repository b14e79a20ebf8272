package config

import (
	"os"
	"testing"
)

func TestLoad_WithDefaults(t *testing.T) {
	// Clear any existing env vars that might interfere
	envVars := []string{
		"APP_NAME", "APP_ENVIRONMENT", "APP_DEBUG", "APP_BASE_URL",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_DBNAME",
		"REDIS_HOST", "REDIS_PORT",
		"JWT_SECRET",
		"STRIPE_SECRET_KEY", "STRIPE_CURRENCY",
		"UPLOAD_BASE_URL", "UPLOAD_PROFILE",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "evently" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "evently")
	}
	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want %q", cfg.App.Environment, "development")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want %d", cfg.Redis.Port, 6379)
	}
	if cfg.Stripe.Currency != "usd" {
		t.Errorf("Stripe.Currency = %q, want %q", cfg.Stripe.Currency, "usd")
	}
	if cfg.Upload.Profile != "imageUploader" {
		t.Errorf("Upload.Profile = %q, want %q", cfg.Upload.Profile, "imageUploader")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("STRIPE_CURRENCY", "eur")
	defer os.Unsetenv("SERVER_PORT")
	defer os.Unsetenv("STRIPE_CURRENCY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Stripe.Currency != "eur" {
		t.Errorf("Stripe.Currency = %q, want %q", cfg.Stripe.Currency, "eur")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"

	if dsn != expected {
		t.Errorf("DSN mismatch:\nExpected: %s\nGot: %s", expected, dsn)
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := &RedisConfig{Host: "localhost", Port: 6379}
	if cfg.Addr() != "localhost:6379" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "localhost:6379")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := &Config{}
	cfg.App.Name = "evently"
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for port 0, got nil")
	}
}

func TestValidate_ProductionRequiresStripeKey(t *testing.T) {
	cfg := &Config{}
	cfg.App.Name = "evently"
	cfg.App.Environment = "production"
	cfg.Server.Port = 8080
	cfg.Database.Host = "localhost"
	cfg.Database.DBName = "evently"
	cfg.JWT.Secret = "a-real-secret"
	cfg.Stripe.SecretKey = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for missing stripe key in production, got nil")
	}
}
