package snapshot

import (
	"context"
	"log/slog"
	"strings"

	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/ports"
)

// DefaultKey is the store key the form state lives under.
const DefaultKey = "surat_app_state_v1"

// Source says where Load found a record.
type Source int

const (
	SourceNone Source = iota
	SourceLink
	SourceStorage
)

func (s Source) String() string {
	switch s {
	case SourceLink:
		return "link"
	case SourceStorage:
		return "storage"
	default:
		return "none"
	}
}

// Autosave persists the form state on every change. Persistence is best
// effort: failures are logged and dropped, and a missing or corrupt snapshot
// reads as "nothing saved".
type Autosave struct {
	store ports.StateStore
	key   string
	log   *slog.Logger
}

// NewAutosave wraps store. An empty key means DefaultKey; a nil logger means
// slog.Default().
func NewAutosave(store ports.StateStore, key string, logger *slog.Logger) *Autosave {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Autosave{store: store, key: key, log: logger}
}

// Key returns the store key in use.
func (a *Autosave) Key() string { return a.key }

// Save overwrites the snapshot with r. It reports whether the write landed.
func (a *Autosave) Save(ctx context.Context, r domain.Record) bool {
	s, err := Marshal(r)
	if err != nil {
		a.log.Warn("autosave: encode failed", "err", err)
		return false
	}
	if err := a.store.Set(ctx, a.key, s); err != nil {
		a.log.Warn("autosave: write failed", "key", a.key, "err", err)
		return false
	}
	return true
}

// Restore reads the stored snapshot.
func (a *Autosave) Restore(ctx context.Context) (domain.Record, bool) {
	s, ok, err := a.store.Get(ctx, a.key)
	if err != nil {
		a.log.Warn("autosave: read failed", "key", a.key, "err", err)
		return domain.Record{}, false
	}
	if !ok {
		return domain.Record{}, false
	}
	r, err := Unmarshal(s)
	if err != nil {
		if strings.TrimSpace(s) != "" {
			a.log.Warn("autosave: ignoring corrupt snapshot", "key", a.key, "err", err)
		}
		return domain.Record{}, false
	}
	return r, true
}

// Clear removes the snapshot (form reset).
func (a *Autosave) Clear(ctx context.Context) {
	if err := a.store.Delete(ctx, a.key); err != nil {
		a.log.Warn("autosave: clear failed", "key", a.key, "err", err)
	}
}

// Load restores the form at start-up. A non-empty fragment wins outright: it
// is decoded and the store is not consulted, even when the fragment turns out
// to be malformed. Only without a fragment does the stored snapshot apply.
func (a *Autosave) Load(ctx context.Context, fragment string) (domain.Record, Source) {
	if strings.TrimPrefix(strings.TrimSpace(fragment), "#") != "" {
		r, err := DecodeLink(fragment)
		if err != nil {
			a.log.Warn("share link: ignoring malformed payload", "err", err)
			return domain.Record{}, SourceNone
		}
		return r, SourceLink
	}
	if r, ok := a.Restore(ctx); ok {
		return r, SourceStorage
	}
	return domain.Record{}, SourceNone
}
