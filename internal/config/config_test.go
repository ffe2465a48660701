package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := []byte(`
logging:
  level: debug
mal:
  accessToken: file-token
  owner: someone
review:
  autoSkip: true
  wait: 250ms
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := Load(path)

	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Fatalf("expected default format text, got %s", cfg.Logging.Format)
	}
	if cfg.MAL.AccessToken != "file-token" {
		t.Fatalf("unexpected token: %s", cfg.MAL.AccessToken)
	}
	if cfg.MAL.Owner != "someone" {
		t.Fatalf("unexpected owner: %s", cfg.MAL.Owner)
	}
	if cfg.MAL.APIBaseURL != "https://api.myanimelist.net/v2" {
		t.Fatalf("default api base lost: %s", cfg.MAL.APIBaseURL)
	}
	if !cfg.Review.AutoSkip {
		t.Fatal("expected autoSkip to be enabled")
	}
	if cfg.Review.WaitDuration() != 250*time.Millisecond {
		t.Fatalf("unexpected wait: %s", cfg.Review.WaitDuration())
	}
	if cfg.Review.Limit != 1000 {
		t.Fatalf("default limit lost: %d", cfg.Review.Limit)
	}
}

func TestLoadEnvOverridesWinOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("mal:\n  accessToken: file-token\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("MAL_ACCESS_TOKEN", "env-token")
	t.Setenv("LISTMENDER_OWNER", "env-owner")

	cfg := Load(path)

	if cfg.MAL.AccessToken != "env-token" {
		t.Fatalf("expected env token to win, got %s", cfg.MAL.AccessToken)
	}
	if cfg.MAL.Owner != "env-owner" {
		t.Fatalf("expected env owner to win, got %s", cfg.MAL.Owner)
	}
}

func TestLoadReadsTokenFile(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")
	if err := os.WriteFile(tokenPath, []byte(`{"access_token":"stored-token"}`), 0o600); err != nil {
		t.Fatalf("write token file: %v", err)
	}

	t.Setenv("MAL_TOKEN_FILE", tokenPath)

	cfg := Load("")

	if cfg.MAL.AccessToken != "stored-token" {
		t.Fatalf("expected token from file, got %q", cfg.MAL.AccessToken)
	}
}

func TestWaitDurationFallsBackOnGarbage(t *testing.T) {
	r := ReviewConfig{Wait: "soon"}
	if r.WaitDuration() != time.Second {
		t.Fatalf("expected 1s fallback, got %s", r.WaitDuration())
	}
}
