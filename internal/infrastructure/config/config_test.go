package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %s, want 24h", cfg.TokenTTL)
	}
	if cfg.UploadMaxBytes != 5<<20 {
		t.Fatalf("UploadMaxBytes = %d", cfg.UploadMaxBytes)
	}
	if cfg.Postgres.MaxOpenConns != 10 || cfg.Mongo.Database != "shop_records" {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.Postgres, cfg.Mongo)
	}
	if cfg.Mongo.URI != "" || cfg.Redis.Addr != "" {
		t.Fatalf("optional stores must default to disabled")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "s3cret",
		"ENV":          "production",
		"TOKEN_TTL":    "90m",
		"CORS_ORIGINS": "https://a.example,https://b.example",
		"REDIS_ADDR":   "redis:6379",
		"REDIS_DB":     "2",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.IsDevelopment() || cfg.TokenTTL != 90*time.Minute {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.Redis.Addr != "redis:6379" || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoadWith_RequiresSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}
