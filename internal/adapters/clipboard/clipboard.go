// Package clipboard writes text to the desktop clipboard through whichever
// copy tool the host has.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrUnavailable means none of the known copy tools is installed.
var ErrUnavailable = errors.New("clipboard: no copy tool found (pbcopy, wl-copy, xclip, xsel, clip.exe)")

// candidates are tried in order; the first one on PATH wins.
var candidates = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"clip.exe"},
}

type Clipboard struct {
	lookPath func(string) (string, error)
	command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func New() *Clipboard {
	return &Clipboard{lookPath: exec.LookPath, command: exec.CommandContext}
}

// WriteText pipes text into the first available copy tool.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	argv, err := c.tool()
	if err != nil {
		return err
	}
	cmd := c.command(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", argv[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (c *Clipboard) tool() ([]string, error) {
	for _, argv := range candidates {
		if _, err := c.lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, ErrUnavailable
}
