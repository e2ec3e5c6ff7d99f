package config_test

import (
	"os"
	"testing"

	"github.com/zhoulin/matchquiz/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "QUIZ_OWNER_PASSWORD", "QUIZ_DEFAULT_OWNER", "QUIZ_HISTORY_PATH", "QUIZ_BASE_URL"} {
		// t.Setenv registers the restore; Unsetenv clears the value so the
		// envDefault tags are exercised.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if got := cfg.Addr(); got != ":8080" {
		t.Fatalf("Addr: got %q want %q", got, ":8080")
	}
	if cfg.OwnerPassword != "game" {
		t.Fatalf("OwnerPassword: got %q want %q", cfg.OwnerPassword, "game")
	}
	if cfg.DefaultOwner != "Charles" {
		t.Fatalf("DefaultOwner: got %q want %q", cfg.DefaultOwner, "Charles")
	}
	if cfg.HistoryPath != "quiz_history.json" {
		t.Fatalf("HistoryPath: got %q", cfg.HistoryPath)
	}
}

func TestLoadPortForms(t *testing.T) {
	t.Setenv("PORT", "9090")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if got := cfg.Addr(); got != ":9090" {
		t.Fatalf("Addr: got %q want %q", got, ":9090")
	}

	t.Setenv("PORT", "127.0.0.1:7000")
	cfg, err = config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if got := cfg.Addr(); got != "127.0.0.1:7000" {
		t.Fatalf("Addr: got %q want %q", got, "127.0.0.1:7000")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for PORT containing a space")
	}
}

func TestLoadTrimsBaseURL(t *testing.T) {
	t.Setenv("QUIZ_BASE_URL", "https://quiz.example.com/")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.BaseURL != "https://quiz.example.com" {
		t.Fatalf("BaseURL: got %q", cfg.BaseURL)
	}
}
