package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/snapshot"
)

var errNoLetter = errors.New("no letter: pass a letter file, -link, or fill the form with 'surat interactive' first")

// input picks the record for render, pdf and share: a share link, then a
// letter file, then the saved form state.
func (c *cli) input(ctx context.Context, link string, args []string) (domain.Record, error) {
	switch {
	case link != "":
		r, err := snapshot.DecodeLink(fragment(link))
		if err != nil {
			return domain.Record{}, fmt.Errorf("share link: %w", err)
		}
		return r, nil
	case len(args) > 0:
		return loadLetterFile(args[0], c.stdin)
	}
	r, ok := c.state.Restore(ctx)
	if !ok {
		return domain.Record{}, errNoLetter
	}
	return r, nil
}

// fragment accepts either a full share URL or just its payload.
func fragment(link string) string {
	if strings.Contains(link, "#") {
		return snapshot.FragmentOf(link)
	}
	return link
}

// loadLetterFile reads a YAML or JSON letter. "-" is stdin.
func loadLetterFile(path string, stdin io.Reader) (domain.Record, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Record{}, err
	}
	return parseLetter(data)
}

// parseLetter decodes a letter document. JSON is read by the YAML decoder as
// well; unknown keys are rejected so a typo does not silently drop a field.
func parseLetter(data []byte) (domain.Record, error) {
	var r domain.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Record{}, errors.New("letter file is empty")
		}
		return domain.Record{}, fmt.Errorf("parse letter: %w", err)
	}
	return r, nil
}
