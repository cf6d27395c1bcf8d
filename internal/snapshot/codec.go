// Package snapshot keeps a letter record outside the form: as a storage
// string in a key/value store and as a base64 payload in a share link's
// fragment. Both encodings carry the same flat JSON object, keyed by the form
// field names.
package snapshot

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/csg33k/surat-generator/internal/domain"
)

// ErrNoState means there was nothing usable to restore.
var ErrNoState = errors.New("snapshot: no saved state")

// Marshal encodes r as the storage string.
func Marshal(r domain.Record) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return string(b), nil
}

// Unmarshal decodes a storage string. Blank input and JSON null are
// ErrNoState; anything that is not a JSON object is wrapped ErrNoState too.
func Unmarshal(s string) (domain.Record, error) {
	var r domain.Record
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return r, ErrNoState
	}
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", ErrNoState, err)
	}
	return r, nil
}

// EncodeLink encodes r for a URL fragment: the storage string's UTF-8 bytes
// in standard base64, the same payload browsers produce with btoa.
func EncodeLink(r domain.Record) (string, error) {
	s, err := Marshal(r)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

// DecodeLink reverses EncodeLink. A leading '#' is ignored, and URL-safe or
// unpadded base64 are accepted as well since links get mangled on the way.
func DecodeLink(fragment string) (domain.Record, error) {
	fragment = strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if fragment == "" {
		return domain.Record{}, ErrNoState
	}
	if unescaped, err := url.PathUnescape(fragment); err == nil {
		fragment = unescaped
	}
	raw, err := decodeBase64(fragment)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", ErrNoState, err)
	}
	if !utf8.Valid(raw) {
		return domain.Record{}, fmt.Errorf("%w: payload is not UTF-8", ErrNoState)
	}
	return Unmarshal(string(raw))
}

// ShareURL builds base#payload. Any fragment already on base is replaced.
func ShareURL(base string, r domain.Record) (string, error) {
	payload, err := EncodeLink(r)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", base, err)
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String() + "#" + payload, nil
}

// FragmentOf returns the part of a share URL after '#', or "".
func FragmentOf(link string) string {
	_, frag, _ := strings.Cut(link, "#")
	return frag
}

func decodeBase64(s string) ([]byte, error) {
	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
