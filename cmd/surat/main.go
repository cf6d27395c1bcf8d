// Command surat renders the letter form's letters from the terminal: from a
// YAML or JSON letter file, a share link, the saved form state, or an
// interactive prompt session.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/csg33k/surat-generator/internal/adapters/clipboard"
	"github.com/csg33k/surat-generator/internal/adapters/memory"
	"github.com/csg33k/surat-generator/internal/adapters/pdf"
	sqliteadapter "github.com/csg33k/surat-generator/internal/adapters/sqlite"
	"github.com/csg33k/surat-generator/internal/adapters/terminal"
	"github.com/csg33k/surat-generator/internal/app"
	"github.com/csg33k/surat-generator/internal/config"
	"github.com/csg33k/surat-generator/internal/ports"
	"github.com/csg33k/surat-generator/internal/snapshot"
)

const usage = `usage: surat [-db path] [-ephemeral] [-v] <command> [flags] [letter-file]

commands:
  render       print the letter (-link, -strict, -copy)
  pdf          write the letter as a PDF (-o, -link)
  share        print a share link for the letter (-link)
  interactive  fill the form in the terminal
  types        list the letter types
  status       show the saved form state
  reset        clear the saved form state (-y)

A letter file is YAML or JSON using the form keys (jenis, namaPengirim, ...);
"-" reads it from stdin. Without a file or -link the saved form state is used.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := &cli{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		prompter: terminal.NewSurveyPrompter(),
		clip:     clipboard.New(),
	}
	if err := c.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		stop()
		log.Fatalf("surat: %v", err)
	}
}

type cli struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	prompter terminal.Prompter
	clip     ports.Clipboard

	cfg   config.Config
	log   *slog.Logger
	state *snapshot.Autosave
	svc   *app.Service
	// lastWrite is set when the state lives in SQLite.
	lastWrite func(ctx context.Context) (time.Time, bool, error)
}

func (c *cli) run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("surat", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { fmt.Fprint(c.stderr, usage) }
	dbPath := fs.String("db", "", "state database (default $DB_PATH)")
	ephemeral := fs.Bool("ephemeral", false, "keep form state in memory only")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return flag.ErrHelp
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	c.cfg = cfg

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	c.log = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	if cmd == "types" {
		return c.types(rest)
	}

	closeState, err := c.openState(*ephemeral)
	if err != nil {
		return err
	}
	defer closeState()

	switch cmd {
	case "render":
		return c.render(ctx, rest)
	case "pdf":
		return c.pdf(ctx, rest)
	case "share":
		return c.share(ctx, rest)
	case "interactive":
		return c.interactive(ctx, rest)
	case "status":
		return c.status(ctx, rest)
	case "reset":
		return c.reset(ctx, rest)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// openState wires the service to the SQLite state store, or to memory for
// -ephemeral runs.
func (c *cli) openState(ephemeral bool) (func(), error) {
	var store ports.StateStore
	closeFn := func() {}
	if ephemeral {
		store = memory.New()
	} else {
		repo, err := sqliteadapter.New(c.cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open state database: %w", err)
		}
		store = repo
		closeFn = func() { repo.Close() }
		c.lastWrite = func(ctx context.Context) (time.Time, bool, error) {
			return repo.UpdatedAt(ctx, c.state.Key())
		}
	}
	c.state = snapshot.NewAutosave(store, c.cfg.StateKey, c.log)
	c.svc = app.New(c.state, pdf.New(), c.clip, c.log)
	return closeFn, nil
}
