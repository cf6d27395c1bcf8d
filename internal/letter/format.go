package letter

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/csg33k/surat-generator/internal/domain"
)

const dateLayout = "2006-01-02"

var monthNames = map[domain.Lang][12]string{
	domain.LangMalay: {"Januari", "Februari", "Mac", "April", "Mei", "Jun",
		"Julai", "Ogos", "September", "Oktober", "November", "Disember"},
	domain.LangEnglish: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// parseDate reads a YYYY-MM-DD calendar date. The result is midnight UTC and
// only its Y/M/D parts are ever used, so no zone can shift it by a day.
func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders value as "<day> <Month> <year>", e.g. "1 Mac 2024".
// Any lang other than en uses the Malay month table. Empty or unparseable
// input gives "".
func FormatDate(value string, lang domain.Lang) string {
	t, ok := parseDate(value)
	if !ok {
		return ""
	}
	months, ok := monthNames[lang]
	if !ok {
		months = monthNames[domain.LangMalay]
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

const secondsPerDay = 24 * 60 * 60

// InclusiveDaySpan counts the calendar days from start to end, both ends
// included. Argument order does not matter. ok is false when either date is
// missing or unparseable.
func InclusiveDaySpan(start, end string) (days int, ok bool) {
	a, ok1 := parseDate(start)
	b, ok2 := parseDate(end)
	if !ok1 || !ok2 {
		return 0, false
	}
	d := (b.Unix() - a.Unix()) / secondsPerDay
	if d < 0 {
		d = -d
	}
	return int(d) + 1, true
}

var lower = cases.Lower(language.Und)

// TitleCase trims s, collapses whitespace runs to a single space, lowercases
// everything and upper-cases the first letter of each word. Leading
// punctuation is skipped, so "(ali" becomes "(Ali"; a word that starts with a
// digit is left as is. TitleCase is idempotent.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		rs := []rune(lower.String(w))
		for j, c := range rs {
			if unicode.IsLetter(c) {
				rs[j] = unicode.ToUpper(c)
				break
			}
			if !unicode.IsPunct(c) {
				break
			}
		}
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

// AddressBlock joins the non-empty lines with newlines.
func AddressBlock(lines ...string) string {
	kept := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}

// UpperTitle upper-cases a title line.
func UpperTitle(s string) string {
	return strings.ToUpper(s)
}

// NumberedParagraphs prefixes each paragraph with "1. ", "2. ", ... and joins
// them with newlines.
func NumberedParagraphs(paras []string) string {
	var b strings.Builder
	for i, p := range paras {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, p)
	}
	return b.String()
}

// joinNonEmpty joins the non-empty parts with sep ("43000 Kajang, Selangor").
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
