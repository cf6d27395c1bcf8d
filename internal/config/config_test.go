package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/snapshot"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"DB_PATH", "PORT", "BASE_URL", "DEFAULT_LANG", "STATE_KEY"} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		DBPath:      "surat.db",
		Port:        "8080",
		BaseURL:     "http://localhost:8080/",
		DefaultLang: domain.LangMalay,
		StateKey:    snapshot.DefaultKey,
	}
	if c != want {
		t.Errorf("FromEnv() = %+v, want %+v", c, want)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_LANG", "EN")
	t.Setenv("STATE_KEY", "k2")

	c, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DBPath != "/tmp/x.db" || c.Port != "9090" || c.DefaultLang != domain.LangEnglish || c.StateKey != "k2" {
		t.Errorf("FromEnv() = %+v", c)
	}
	if c.BaseURL != "http://localhost:9090/" {
		t.Errorf("BaseURL should follow PORT, got %q", c.BaseURL)
	}
}

func TestFromEnvInvalidLang(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEFAULT_LANG", "fr")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected an error for DEFAULT_LANG=fr")
	}
}

func TestFromEnvInvalidBaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "not a url")
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected an error for a relative BASE_URL")
	}
}

func TestLoadDotEnvWarning(t *testing.T) {
	tests := []struct {
		name     string
		dotenv   string
		wantWarn bool
	}{
		{"missing file", "", true},
		{"file present", "SURAT_CONFIG_TEST=1\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.dotenv != "" {
				if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(tt.dotenv), 0o644); err != nil {
					t.Fatal(err)
				}
				t.Cleanup(func() { os.Unsetenv("SURAT_CONFIG_TEST") })
			}
			t.Chdir(dir)
			clearEnv(t)

			var buf bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
			t.Cleanup(func() { slog.SetDefault(prev) })

			if _, err := Load(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.Contains(buf.String(), "level=WARN"); got != tt.wantWarn {
				t.Errorf("warned = %v, want %v; log:\n%s", got, tt.wantWarn, buf.String())
			}
		})
	}
}
