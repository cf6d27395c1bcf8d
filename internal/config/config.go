package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/snapshot"
)

type Config struct {
	DBPath      string
	Port        string
	BaseURL     string
	DefaultLang domain.Lang
	StateKey    string
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment, filling in
// defaults for anything unset.
func FromEnv() (Config, error) {
	c := Config{
		DBPath:      getenv("DB_PATH", "surat.db"),
		Port:        getenv("PORT", "8080"),
		DefaultLang: domain.Lang(strings.ToLower(getenv("DEFAULT_LANG", string(domain.DefaultLang)))),
		StateKey:    getenv("STATE_KEY", snapshot.DefaultKey),
	}
	c.BaseURL = getenv("BASE_URL", "http://localhost:"+c.Port+"/")

	if c.DefaultLang != domain.LangMalay && c.DefaultLang != domain.LangEnglish {
		return Config{}, fmt.Errorf("invalid DEFAULT_LANG %q: want %q or %q", c.DefaultLang, domain.LangMalay, domain.LangEnglish)
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("invalid BASE_URL %q: must be an absolute URL", c.BaseURL)
	}
	return c, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
