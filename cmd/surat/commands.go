package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/csg33k/surat-generator/internal/adapters/pdf"
	"github.com/csg33k/surat-generator/internal/adapters/terminal"
	"github.com/csg33k/surat-generator/internal/app"
	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/letter"
	"github.com/csg33k/surat-generator/internal/snapshot"
)

func (c *cli) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("surat "+name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// ── render ────────────────────────────────────────────────────────────────────

func (c *cli) render(ctx context.Context, args []string) error {
	fs := c.flags("render")
	link := fs.String("link", "", "share link or fragment to read the letter from")
	strict := fs.Bool("strict", false, "fail on invalid letter type, language or dates")
	copyText := fs.Bool("copy", false, "also copy the letter to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rec, err := c.input(ctx, *link, fs.Args())
	if err != nil {
		return err
	}
	if *strict {
		if err := domain.Validate(letter.Normalize(rec)); err != nil {
			return err
		}
	}

	_, text, err := c.svc.Preview(ctx, &printPresenter{rec: rec, out: c.stdout})
	if err != nil {
		return err
	}
	if *copyText {
		return c.copy(ctx, text)
	}
	return nil
}

// copy waits for the clipboard write so the process does not exit under it.
func (c *cli) copy(ctx context.Context, text string) error {
	done := make(chan error, 1)
	if err := c.svc.Copy(ctx, text, func(err error) { done <- err }); err != nil {
		if errors.Is(err, app.ErrEmptyLetter) {
			return errors.New(app.MsgNothingToCopy)
		}
		return err
	}
	select {
	case err := <-done:
		if err != nil {
			return err
		}
		fmt.Fprintln(c.stderr, app.MsgCopied)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// printPresenter is a one-shot form: the record comes from a file, a link or
// the saved state, and the letter goes to out.
type printPresenter struct {
	rec domain.Record
	out io.Writer
}

func (p *printPresenter) ReadRecord(context.Context) (domain.Record, error) {
	return p.rec, nil
}

func (p *printPresenter) Display(_ context.Context, text string) error {
	_, err := fmt.Fprintln(p.out, text)
	return err
}

// ── pdf ───────────────────────────────────────────────────────────────────────

func (c *cli) pdf(ctx context.Context, args []string) error {
	fs := c.flags("pdf")
	link := fs.String("link", "", "share link or fragment to read the letter from")
	out := fs.String("o", pdf.FileName, "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rec, err := c.input(ctx, *link, fs.Args())
	if err != nil {
		return err
	}
	_, text := c.svc.Render(rec)
	if err := app.CheckText(text); err != nil {
		return errors.New(app.MsgNothingToPDF)
	}
	return c.writePDF(ctx, text, *out)
}

func (c *cli) writePDF(ctx context.Context, text, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.svc.ExportPDF(ctx, text, f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(c.stderr, "PDF written to %s\n", path)
	return nil
}

// ── share ─────────────────────────────────────────────────────────────────────

func (c *cli) share(ctx context.Context, args []string) error {
	fs := c.flags("share")
	link := fs.String("link", "", "share link or fragment to read the letter from")
	base := fs.String("base", "", "base URL of the form (default $BASE_URL)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rec, err := c.input(ctx, *link, fs.Args())
	if err != nil {
		return err
	}
	if *base == "" {
		*base = c.cfg.BaseURL
	}
	u, err := c.svc.Share(rec, *base)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, u)
	return nil
}

// ── interactive ───────────────────────────────────────────────────────────────

const (
	actionEdit  = "Ubah borang"
	actionCopy  = "Salin teks"
	actionPDF   = "Simpan PDF"
	actionShare = "Kongsi pautan"
	actionReset = "Reset"
	actionQuit  = "Keluar"
)

var actions = []string{actionEdit, actionCopy, actionPDF, actionShare, actionReset, actionQuit}

// interactive runs the form loop on the terminal: every pass reads the form,
// prints the letter and saves the state, then offers the export actions.
func (c *cli) interactive(ctx context.Context, args []string) error {
	fs := c.flags("interactive")
	link := fs.String("link", "", "start from a share link instead of the saved state")
	if err := fs.Parse(args); err != nil {
		return err
	}
	start, src := c.svc.Restore(ctx, fragment(*link))
	if src == snapshot.SourceNone {
		start = domain.Record{Lang: c.cfg.DefaultLang, Type: domain.LetterTypes()[0].Value}
	}
	form := terminal.NewPresenter(c.prompter, c.stdout, start)

	for {
		rec, text, err := c.svc.Preview(ctx, form)
		if errors.Is(err, terminal.ErrInterrupted) {
			return nil
		}
		if err != nil {
			return err
		}
	menu:
		for {
			i, err := c.prompter.Select(ctx, "Seterusnya", actions, 0)
			if errors.Is(err, terminal.ErrInterrupted) {
				return nil
			}
			if err != nil {
				return err
			}
			switch actions[i] {
			case actionEdit:
				break menu
			case actionCopy:
				if err := c.copy(ctx, text); err != nil {
					fmt.Fprintln(c.stderr, err)
				}
			case actionPDF:
				if err := app.CheckText(text); err != nil {
					fmt.Fprintln(c.stderr, app.MsgNothingToPDF)
					continue
				}
				if err := c.writePDF(ctx, text, pdf.FileName); err != nil {
					fmt.Fprintln(c.stderr, err)
				}
			case actionShare:
				u, err := c.svc.Share(rec, c.cfg.BaseURL)
				if err != nil {
					fmt.Fprintln(c.stderr, err)
					continue
				}
				fmt.Fprintln(c.stdout, u)
			case actionReset:
				ok, err := c.prompter.Confirm(ctx, app.MsgResetConfirm, false)
				if err != nil || !ok {
					continue
				}
				form = terminal.NewPresenter(c.prompter, c.stdout, c.svc.Reset(ctx, rec.Lang))
				break menu
			case actionQuit:
				return nil
			}
		}
	}
}

// ── types, status, reset ──────────────────────────────────────────────────────

func (c *cli) types(args []string) error {
	if err := c.flags("types").Parse(args); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "JENIS\tLABEL\tKONTEKS\tBAHASA")
	for _, t := range domain.LetterTypes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Value, t.Label, t.Context, t.Lang)
	}
	return tw.Flush()
}

func (c *cli) status(ctx context.Context, args []string) error {
	if err := c.flags("status").Parse(args); err != nil {
		return err
	}
	rec, ok := c.state.Restore(ctx)
	if !ok {
		fmt.Fprintln(c.stdout, "Tiada borang disimpan.")
		return nil
	}
	label := string(rec.Type)
	if info, found := domain.Lookup(rec.Type); found {
		label = info.Label
	}
	fmt.Fprintf(c.stdout, "Borang disimpan: %s", label)
	if name := strings.TrimSpace(rec.SenderName); name != "" {
		fmt.Fprintf(c.stdout, ", %s", name)
	}
	if c.lastWrite != nil {
		if at, found, err := c.lastWrite(ctx); err == nil && found {
			fmt.Fprintf(c.stdout, " (dikemas kini %s)", at.Local().Format(time.DateTime))
		}
	}
	fmt.Fprintln(c.stdout)
	return nil
}

func (c *cli) reset(ctx context.Context, args []string) error {
	fs := c.flags("reset")
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		ok, err := c.prompter.Confirm(ctx, app.MsgResetConfirm, false)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	c.svc.Reset(ctx, c.cfg.DefaultLang)
	fmt.Fprintln(c.stderr, "Borang dikosongkan.")
	return nil
}
