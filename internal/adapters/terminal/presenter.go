// Package terminal is the interactive command-line form. It asks for the
// fields the chosen letter type uses and prints the rendered letter.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/csg33k/surat-generator/internal/domain"
)

// Presenter satisfies ports.Presenter on a terminal. Answers from the
// previous round (or a restored snapshot) are offered as defaults.
type Presenter struct {
	prompt  Prompter
	out     io.Writer
	current domain.Record
}

func NewPresenter(p Prompter, out io.Writer, initial domain.Record) *Presenter {
	return &Presenter{prompt: p, out: out, current: initial}
}

type field struct {
	msg      string
	help     string
	value    *string
	validate func(string) error
}

var langOptions = []domain.Lang{domain.LangMalay, domain.LangEnglish}

// ReadRecord walks the user through the form.
func (p *Presenter) ReadRecord(ctx context.Context) (domain.Record, error) {
	r := p.current

	langIdx, err := p.prompt.Select(ctx, "Bahasa / Language",
		[]string{"Bahasa Melayu (my)", "English (en)"}, indexOf(langOptions, r.Lang))
	if err != nil {
		return domain.Record{}, err
	}
	r.Lang = langOptions[langIdx]

	types := domain.LetterTypes()
	labels := make([]string, len(types))
	def := 0
	for i, t := range types {
		labels[i] = t.Label
		if t.Value == r.Type {
			def = i
		}
	}
	typeIdx, err := p.prompt.Select(ctx, "Jenis surat", labels, def)
	if err != nil {
		return domain.Record{}, err
	}
	r.Type = types[typeIdx].Value

	fields := []field{
		{msg: "Tarikh surat (YYYY-MM-DD)", value: &r.IssueDate, validate: validDate},
		{msg: "Nama pengirim", value: &r.SenderName},
		{msg: "Telefon", value: &r.Phone},
		{msg: "Alamat pengirim", value: &r.SenderAddress},
		{msg: "Poskod & bandar", value: &r.SenderPostcodeCity},
		{msg: "Negeri", value: &r.SenderState},
	}
	switch types[typeIdx].Context {
	case domain.ContextSchool:
		fields = append(fields,
			field{msg: "Nama pelajar", value: &r.StudentName},
			field{msg: "Kelas", value: &r.Class},
			field{msg: "Hubungan dengan pelajar", value: &r.Relationship},
			field{msg: "Nama sekolah", value: &r.SchoolName},
			field{msg: "Alamat sekolah", value: &r.SchoolAddress},
			field{msg: "Poskod & bandar sekolah", value: &r.SchoolPostcodeCity},
			field{msg: "Negeri sekolah", value: &r.SchoolState},
		)
	case domain.ContextWork:
		fields = append(fields,
			field{msg: "Jawatan", value: &r.Position},
			field{msg: "Majikan", value: &r.Employer},
			field{msg: "Alamat majikan", value: &r.EmployerAddress},
			field{msg: "Poskod & bandar majikan", value: &r.EmployerPostcodeCity},
			field{msg: "Negeri majikan", value: &r.EmployerState},
			field{msg: "Jawatan penerima", help: "Kosongkan untuk Pengurus Sumber Manusia", value: &r.RecipientTitle},
		)
	}
	fields = append(fields,
		field{msg: "Tajuk (opsyenal)", help: "Kosongkan untuk tajuk lalai", value: &r.CustomTitle},
		field{msg: "Sebab", value: &r.Reason},
		field{msg: "Tarikh mula (YYYY-MM-DD)", value: &r.StartDate, validate: validDate},
		field{msg: "Tarikh akhir (YYYY-MM-DD)", value: &r.EndDate, validate: validDate},
	)

	for _, f := range fields {
		v, err := p.prompt.Input(ctx, f.msg, *f.value, f.help, f.validate)
		if err != nil {
			return domain.Record{}, err
		}
		*f.value = v
	}

	paras, err := p.readParagraphs(ctx, r.ExtraParagraphs)
	if err != nil {
		return domain.Record{}, err
	}
	r.ExtraParagraphs = paras

	p.current = r
	return r, nil
}

// readParagraphs optionally keeps the existing extra paragraphs, then reads
// new ones until an empty answer.
func (p *Presenter) readParagraphs(ctx context.Context, existing []string) ([]string, error) {
	var out []string
	if len(existing) > 0 {
		keep, err := p.prompt.Confirm(ctx, fmt.Sprintf("Kekalkan %d perenggan tambahan sedia ada?", len(existing)), true)
		if err != nil {
			return nil, err
		}
		if keep {
			out = append(out, existing...)
		}
	}
	for {
		v, err := p.prompt.Input(ctx, "Perenggan tambahan", "", "Kosongkan untuk tamat", nil)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(v) == "" {
			return out, nil
		}
		out = append(out, v)
	}
}

// Display prints the letter between rules.
func (p *Presenter) Display(_ context.Context, text string) error {
	rule := strings.Repeat("─", 60)
	_, err := fmt.Fprintf(p.out, "%s\n%s\n%s\n", rule, text, rule)
	return err
}

func validDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("tarikh %q tidak sah, guna YYYY-MM-DD", s)
	}
	return nil
}

func indexOf(langs []domain.Lang, l domain.Lang) int {
	for i, v := range langs {
		if v == l {
			return i
		}
	}
	return 0
}
