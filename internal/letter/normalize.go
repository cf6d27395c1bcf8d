package letter

import (
	"strings"

	"github.com/csg33k/surat-generator/internal/domain"
)

// Normalize applies the clean-up the form performs on raw input before a
// record is rendered or saved: names, states and job titles are title-cased,
// other free text is trimmed, blank extra paragraphs are dropped with order
// kept, and an empty language falls back to the default. Dates are only
// trimmed, never reformatted.
func Normalize(r domain.Record) domain.Record {
	if r.Lang == "" {
		r.Lang = domain.DefaultLang
	}
	r.Type = domain.LetterType(strings.TrimSpace(string(r.Type)))

	r.SenderName = TitleCase(r.SenderName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.SenderAddress = strings.TrimSpace(r.SenderAddress)
	r.SenderPostcodeCity = strings.TrimSpace(r.SenderPostcodeCity)
	r.SenderState = TitleCase(r.SenderState)

	r.StudentName = TitleCase(r.StudentName)
	r.Class = strings.TrimSpace(r.Class)
	r.Relationship = TitleCase(r.Relationship)
	r.SchoolName = TitleCase(r.SchoolName)
	r.SchoolAddress = strings.TrimSpace(r.SchoolAddress)
	r.SchoolPostcodeCity = strings.TrimSpace(r.SchoolPostcodeCity)
	r.SchoolState = TitleCase(r.SchoolState)

	r.Position = TitleCase(r.Position)
	r.Employer = TitleCase(r.Employer)
	r.EmployerAddress = strings.TrimSpace(r.EmployerAddress)
	r.EmployerPostcodeCity = strings.TrimSpace(r.EmployerPostcodeCity)
	r.EmployerState = TitleCase(r.EmployerState)
	r.RecipientTitle = TitleCase(r.RecipientTitle)

	r.IssueDate = strings.TrimSpace(r.IssueDate)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)
	r.CustomTitle = strings.TrimSpace(r.CustomTitle)
	r.Reason = strings.TrimSpace(r.Reason)
	r.ExtraParagraphs = CleanParagraphs(r.ExtraParagraphs)
	return r
}

// CleanParagraphs trims each paragraph and drops the blank ones.
func CleanParagraphs(paras []string) []string {
	out := make([]string, 0, len(paras))
	for _, p := range paras {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
