package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func unset(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	unset(t, "PORT", "PROXY_URL", "USER_AGENT", "OUTPUT_MODE", "WORKER_URL", "RESOLVE_TIMEOUT", "YTDLP_PATH")
	t.Setenv("COOKIES_FILE", filepath.Join(t.TempDir(), "missing.txt"))

	cfg := Load()

	if cfg.Addr != "0.0.0.0:5000" {
		t.Fatalf("unexpected default addr: %s", cfg.Addr)
	}
	if cfg.Timeout != 20*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.Timeout)
	}
	if cfg.OutputMode != SingleBest {
		t.Fatalf("unexpected default output mode: %v", cfg.OutputMode)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Fatalf("unexpected default user agent: %s", cfg.UserAgent)
	}
	if cfg.CookiesFile != "" {
		t.Fatalf("cookie store should be skipped when the file does not exist")
	}
	if cfg.ProxyURL != "" || cfg.WorkerURL != "" {
		t.Fatal("proxy and worker should default to unset")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PROXY_URL", "socks5://127.0.0.1:9050")
	t.Setenv("USER_AGENT", "testbot/1.0")
	t.Setenv("OUTPUT_MODE", "all")
	t.Setenv("WORKER_URL", "http://worker.example.com/")
	t.Setenv("RESOLVE_TIMEOUT", "5s")

	cookies := filepath.Join(t.TempDir(), "cookies.txt")
	if err := os.WriteFile(cookies, []byte("# Netscape HTTP Cookie File\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COOKIES_FILE", cookies)

	cfg := Load()

	if cfg.Addr != "0.0.0.0:8080" {
		t.Fatalf("unexpected addr: %s", cfg.Addr)
	}
	if cfg.ProxyURL != "socks5://127.0.0.1:9050" {
		t.Fatalf("unexpected proxy: %s", cfg.ProxyURL)
	}
	if cfg.UserAgent != "testbot/1.0" {
		t.Fatalf("unexpected user agent: %s", cfg.UserAgent)
	}
	if cfg.OutputMode != AllFormats {
		t.Fatalf("unexpected output mode: %v", cfg.OutputMode)
	}
	if cfg.WorkerURL != "http://worker.example.com/" {
		t.Fatalf("unexpected worker url: %s", cfg.WorkerURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout)
	}
	if cfg.CookiesFile != cookies {
		t.Fatalf("cookie store should be picked up when present, got %q", cfg.CookiesFile)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	unset(t, "PORT", "PROXY_URL", "USER_AGENT", "WORKER_URL")
	t.Setenv("COOKIES_FILE", filepath.Join(t.TempDir(), "missing.txt"))
	t.Setenv("OUTPUT_MODE", "everything")
	t.Setenv("RESOLVE_TIMEOUT", "soon")

	cfg := Load()

	if cfg.OutputMode != SingleBest {
		t.Fatalf("invalid OUTPUT_MODE should fall back to single, got %v", cfg.OutputMode)
	}
	if cfg.Timeout != 20*time.Second {
		t.Fatalf("invalid RESOLVE_TIMEOUT should fall back to default, got %v", cfg.Timeout)
	}
}
