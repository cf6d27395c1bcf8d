// Package app runs the letter form: every change reads the form into a
// record, renders it, shows it and saves it. Exports and sharing hang off the
// rendered text.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/letter"
	"github.com/csg33k/surat-generator/internal/ports"
	"github.com/csg33k/surat-generator/internal/snapshot"
)

// ErrEmptyLetter is returned by exports when there is no text to act on.
var ErrEmptyLetter = errors.New("letter is empty")

// User-facing acknowledgements.
const (
	MsgNothingToCopy = "Tiada kandungan untuk disalin."
	MsgNothingToPDF  = "Tiada kandungan untuk PDF."
	MsgCopied        = "Teks disalin!"
	MsgLinkCopied    = "Pautan disalin!"
	MsgResetConfirm  = "Reset semua medan?"
)

type Service struct {
	state *snapshot.Autosave
	docs  ports.DocumentWriter
	clip  ports.Clipboard
	log   *slog.Logger
}

// New builds the service. docs and clip may be nil when the surface has no
// PDF export or clipboard.
func New(state *snapshot.Autosave, docs ports.DocumentWriter, clip ports.Clipboard, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{state: state, docs: docs, clip: clip, log: logger}
}

// Render normalizes r and renders it.
func (s *Service) Render(r domain.Record) (domain.Record, string) {
	r = letter.Normalize(r)
	if err := domain.Validate(r); err != nil {
		s.log.Debug("letter record advisories", "jenis", r.Type, "err", err)
	}
	return r, letter.Generate(r)
}

// Preview is one pass of the form loop: read, render, display, autosave.
// The saved snapshot is the normalized record.
func (s *Service) Preview(ctx context.Context, p ports.Presenter) (domain.Record, string, error) {
	raw, err := p.ReadRecord(ctx)
	if err != nil {
		return domain.Record{}, "", fmt.Errorf("read form: %w", err)
	}
	r, text := s.Render(raw)
	if err := p.Display(ctx, text); err != nil {
		return r, text, fmt.Errorf("display letter: %w", err)
	}
	s.state.Save(ctx, r)
	return r, text, nil
}

// Restore returns the record the form should start with: the share link
// payload if there is a fragment, otherwise the saved snapshot.
func (s *Service) Restore(ctx context.Context, fragment string) (domain.Record, snapshot.Source) {
	r, src := s.state.Load(ctx, fragment)
	if src != snapshot.SourceNone {
		s.log.Info("form state restored", "source", src.String(), "jenis", r.Type)
	}
	return r, src
}

// Reset clears the saved snapshot and returns a blank record that keeps the
// current language and selects the first letter type.
func (s *Service) Reset(ctx context.Context, lang domain.Lang) domain.Record {
	s.state.Clear(ctx)
	if lang == "" {
		lang = domain.DefaultLang
	}
	return domain.Record{Lang: lang, Type: domain.LetterTypes()[0].Value}
}

// Share returns base#payload for r.
func (s *Service) Share(r domain.Record, base string) (string, error) {
	return snapshot.ShareURL(base, letter.Normalize(r))
}

// ExportPDF writes text as a PDF. Blank text is ErrEmptyLetter.
func (s *Service) ExportPDF(ctx context.Context, text string, w io.Writer) error {
	if err := CheckText(text); err != nil {
		return err
	}
	if s.docs == nil {
		return errors.New("pdf export is not configured")
	}
	return s.docs.WriteDocument(ctx, text, w)
}

// Copy writes text to the clipboard without blocking the caller. done runs
// once the write finishes (nil error on success) and may be nil. Blank text
// is refused up front with ErrEmptyLetter.
func (s *Service) Copy(ctx context.Context, text string, done func(error)) error {
	if err := CheckText(text); err != nil {
		return err
	}
	if s.clip == nil {
		return errors.New("clipboard is not available")
	}
	go func() {
		err := s.clip.WriteText(ctx, text)
		if err != nil {
			s.log.Warn("clipboard write failed", "err", err)
		}
		if done != nil {
			done(err)
		}
	}()
	return nil
}

// CheckText is the precondition for copy, print and PDF export.
func CheckText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyLetter
	}
	return nil
}
