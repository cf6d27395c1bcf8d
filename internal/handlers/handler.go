package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/csg33k/surat-generator/internal/adapters/pdf"
	"github.com/csg33k/surat-generator/internal/app"
	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/snapshot"
	"github.com/csg33k/surat-generator/internal/templates"
)

type Handler struct {
	svc     *app.Service
	baseURL string
	lang    domain.Lang
	log     *slog.Logger
}

// New wires the HTTP surface. baseURL prefixes share links; lang is the
// language of a blank form.
func New(svc *app.Service, baseURL string, lang domain.Lang, logger *slog.Logger) *Handler {
	if lang == "" {
		lang = domain.DefaultLang
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, baseURL: baseURL, lang: lang, log: logger}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", h.index)
	mux.HandleFunc("GET /types", h.types)
	mux.HandleFunc("POST /state", h.state)
	mux.HandleFunc("POST /preview", h.preview)
	mux.HandleFunc("POST /share", h.share)
	mux.HandleFunc("POST /reset", h.reset)
	mux.HandleFunc("POST /pdf", h.exportPDF)
	mux.HandleFunc("POST /print", h.print)
	return mux
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Index())
}

func (h *Handler) types(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, domain.LetterTypes())
}

// state picks the starting record. The page posts its URL fragment because
// the fragment never reaches the server on GET.
func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	rec, src := h.svc.Restore(r.Context(), r.PostForm.Get("fragment"))
	if src == snapshot.SourceNone {
		rec = h.blank()
	}
	h.refresh(w, r, rec, true)
}

// preview handles every form change. ?full=1 re-renders the whole form
// (letter type switched, paragraph added or removed); otherwise only the
// preview pane is returned.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	rec, err := parseRecord(r)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	q := r.URL.Query()
	full := q.Get("full") != ""
	if q.Get("add") != "" {
		rec.ExtraParagraphs = append(rec.ExtraParagraphs, "")
	}
	if s := q.Get("drop"); s != "" {
		i, err := strconv.Atoi(s)
		if err != nil || i < 0 || i >= len(rec.ExtraParagraphs) {
			http.Error(w, "invalid paragraph index", 400)
			return
		}
		rec.ExtraParagraphs = append(rec.ExtraParagraphs[:i:i], rec.ExtraParagraphs[i+1:]...)
	}
	h.refresh(w, r, rec, full)
}

type shareResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	rec, err := parseRecord(r)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	link, err := h.svc.Share(rec, h.baseURL)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, shareResponse{URL: link, Message: app.MsgLinkCopied})
}

// reset clears the saved state and returns a blank form in the language
// that was selected.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	lang := domain.Lang(r.PostForm.Get("lang"))
	if lang == "" {
		lang = h.lang
	}
	h.refresh(w, r, h.svc.Reset(r.Context(), lang), true)
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	rec, err := parseRecord(r)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	_, text := h.svc.Render(rec)
	var buf bytes.Buffer
	if err := h.svc.ExportPDF(r.Context(), text, &buf); err != nil {
		if errors.Is(err, app.ErrEmptyLetter) {
			http.Error(w, app.MsgNothingToPDF, 400)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdf.FileName))
	w.Write(buf.Bytes())
}

func (h *Handler) print(w http.ResponseWriter, r *http.Request) {
	rec, err := parseRecord(r)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	_, text := h.svc.Render(rec)
	render(w, r, templates.Print(pdf.DocumentTitle, text))
}

// refresh runs one preview pass over rec and writes the whole form or just
// the preview pane. The form shows rec as typed; the saved snapshot is the
// normalized record.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request, rec domain.Record, full bool) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	p := &formPresenter{rec: rec, display: func(ctx context.Context, text string) error {
		if full {
			return templates.App(appView(rec, text)).Render(ctx, w)
		}
		return templates.Preview(text).Render(ctx, w)
	}}
	if _, _, err := h.svc.Preview(r.Context(), p); err != nil {
		h.log.Error("preview failed", "err", err)
		http.Error(w, err.Error(), 500)
	}
}

func (h *Handler) blank() domain.Record {
	return domain.Record{Lang: h.lang, Type: domain.LetterTypes()[0].Value}
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), 500)
	}
}
