package ports

import (
	"context"
	"io"

	"github.com/csg33k/surat-generator/internal/domain"
)

// StateStore is a process-wide key/value store for form snapshots.
// Get reports ok=false when the key has never been written or was deleted.
type StateStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Presenter is the form surface: it supplies the current input as a record
// and shows the rendered letter.
type Presenter interface {
	ReadRecord(ctx context.Context) (domain.Record, error)
	Display(ctx context.Context, text string) error
}

// DocumentWriter exports rendered letter text as a printable document.
type DocumentWriter interface {
	// WriteDocument lays out text on pages and writes the result to w.
	WriteDocument(ctx context.Context, text string, w io.Writer) error
}

// Clipboard places text on the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
