package config

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Auth.AccessTokenTTL != 5*time.Minute || cfg.Auth.RefreshTokenTTL != 24*time.Hour {
		t.Errorf("unexpected token ttls: %+v", cfg.Auth)
	}
	if cfg.Mongo.Database != "skillswap" || cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected store defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":           "s3cret",
		"PORT":                 "9090",
		"ENV":                  "production",
		"ACCESS_TOKEN_TTL":     "30s",
		"REDIS_DB":             "3",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" || cfg.IsDevelopment() {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Auth.AccessTokenTTL != 30*time.Second || cfg.Redis.DB != 3 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Auth, cfg.Redis)
	}
	want := []string{"https://a.example", "https://b.example"}
	if got := cfg.AllowedOrigins(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllowedOrigins() = %v, want %v", got, want)
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}
