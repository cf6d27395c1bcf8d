// Package pdf lays out rendered letter text on A4 pages.
// The geometry follows the browser export: points, 56pt margins, Times 12 at
// 16pt leading, lines wrapped to the content width, and a new page whenever
// the next line would start below the bottom margin.
package pdf

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// FileName is the download name used for exported letters.
const FileName = "surat-rasmi.pdf"

// DocumentTitle names the letter in PDF metadata and on the print page.
const DocumentTitle = "Surat Rasmi"

const (
	margin   = 56.0
	fontSize = 12.0
	leading  = 16.0
)

// ErrEmpty is returned when there is no text to put on a page.
var ErrEmpty = errors.New("pdf: nothing to export")

// Generator satisfies ports.DocumentWriter.
type Generator struct {
	// Title is written into the PDF metadata.
	Title string
}

func New() *Generator {
	return &Generator{Title: DocumentTitle}
}

// WriteDocument writes text as a PDF to w.
func (g *Generator) WriteDocument(ctx context.Context, text string, w io.Writer) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmpty
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return GeneratePDF(text, g.Title, w)
}

// GeneratePDF renders text on as many A4 pages as it needs.
func GeneratePDF(text, title string, w io.Writer) error {
	pdf := layout(text, title)
	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func layout(text, title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetTitle(title, true)
	pdf.SetCreator("surat-generator", true)
	pdf.SetFont("Times", "", fontSize)

	// Core fonts are cp1252; translate so accented names survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	maxWidth := pageW - margin*2

	pdf.AddPage()
	y := margin
	for _, line := range wrapLines(pdf, tr, text, maxWidth) {
		if y > pageH-margin {
			pdf.AddPage()
			y = margin
		}
		if line != "" {
			pdf.Text(margin, y, line)
		}
		y += leading
	}
	return pdf
}

// wrapLines splits text on newlines and wraps each paragraph to maxWidth.
// Blank lines are kept so the letter's spacing carries over. Lines are
// translated to the font's single-byte code page before wrapping, so the
// returned strings are cp1252 bytes ready for pdf.Text.
func wrapLines(pdf *fpdf.Fpdf, tr func(string) string, text string, maxWidth float64) []string {
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := tr(strings.TrimRight(raw, "\r"))
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		for _, wrapped := range pdf.SplitLines([]byte(line), maxWidth) {
			out = append(out, string(wrapped))
		}
	}
	return out
}
