package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected default host 127.0.0.1, got %s", cfg.Host)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if cfg.Workers != 1 || cfg.QueueDepth != 16 {
		t.Errorf("unexpected worker defaults: %d workers, queue %d", cfg.Workers, cfg.QueueDepth)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", cfg.RequestTimeout)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LOT_LEDGER_PORT", "9100")
	t.Setenv("LOT_LEDGER_WORKERS", "4")
	t.Setenv("LOT_LEDGER_REQUEST_TIMEOUT", "5s")
	t.Setenv("LOT_LEDGER_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg := Load()
	if cfg.Port != 9100 {
		t.Errorf("expected port 9100, got %d", cfg.Port)
	}
	if cfg.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Workers)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.RequestTimeout)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.example" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOT_LEDGER_PORT", "not-a-number")
	t.Setenv("LOT_LEDGER_REQUEST_TIMEOUT", "soon")
	t.Setenv("LOT_LEDGER_MAX_BODY_BYTES", "huge")

	cfg := Load()
	if cfg.Port != 8000 {
		t.Errorf("expected fallback port 8000, got %d", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("expected fallback timeout, got %s", cfg.RequestTimeout)
	}
	if cfg.MaxBodyBytes != 10*1024*1024 {
		t.Errorf("expected fallback body limit, got %d", cfg.MaxBodyBytes)
	}
}
