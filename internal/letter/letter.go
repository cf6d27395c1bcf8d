// Package letter turns a letter record into the plain-text body shown in the
// preview and handed to the PDF, print and clipboard exports.
//
// Every letter has the same shape: sender block, recipient block, date line,
// upper-cased title, numbered paragraphs, closing, sign-off and the sender's
// name, separated by blank lines. The five letter types differ only in the
// language used and what goes into each part.
package letter

import (
	"strings"

	"github.com/csg33k/surat-generator/internal/domain"
)

// Letter is one of SchoolAbsence, SickLeave, LeaveRequest, ResignationMY or
// ResignationEN. The set is closed; Resolve is the only constructor that
// dispatches on a record's type tag.
type Letter interface {
	Type() domain.LetterType
	sealed()
}

// SchoolAbsence asks a class teacher to excuse a pupil (tidakHadir).
type SchoolAbsence struct {
	Sender  domain.Sender
	School  domain.School
	Content domain.Content
}

// SickLeave notifies a class teacher of a pupil's medical leave (cutiSakit).
type SickLeave struct {
	Sender  domain.Sender
	School  domain.School
	Content domain.Content
}

// LeaveRequest asks an employer for leave (permohonanCuti).
type LeaveRequest struct {
	Sender  domain.Sender
	Work    domain.Work
	Content domain.Content
}

// ResignationMY is the Malay resignation letter (perletakanJawatan).
type ResignationMY struct {
	Sender  domain.Sender
	Work    domain.Work
	Content domain.Content
}

// ResignationEN is the English resignation letter (resignation).
type ResignationEN struct {
	Sender  domain.Sender
	Work    domain.Work
	Content domain.Content
}

func (SchoolAbsence) Type() domain.LetterType { return domain.TypeSchoolAbsence }
func (SickLeave) Type() domain.LetterType     { return domain.TypeSickLeave }
func (LeaveRequest) Type() domain.LetterType  { return domain.TypeLeaveRequest }
func (ResignationMY) Type() domain.LetterType { return domain.TypeResignationMY }
func (ResignationEN) Type() domain.LetterType { return domain.TypeResignationEN }

func (SchoolAbsence) sealed() {}
func (SickLeave) sealed()     {}
func (LeaveRequest) sealed()  {}
func (ResignationMY) sealed() {}
func (ResignationEN) sealed() {}

// Resolve picks the letter variant for r.Type. ok is false for a tag that is
// not in the registry.
func Resolve(r domain.Record) (l Letter, ok bool) {
	switch r.Type {
	case domain.TypeSchoolAbsence:
		return SchoolAbsence{r.Sender, r.School, r.Content}, true
	case domain.TypeSickLeave:
		return SickLeave{r.Sender, r.School, r.Content}, true
	case domain.TypeLeaveRequest:
		return LeaveRequest{r.Sender, r.Work, r.Content}, true
	case domain.TypeResignationMY:
		return ResignationMY{r.Sender, r.Work, r.Content}, true
	case domain.TypeResignationEN:
		return ResignationEN{r.Sender, r.Work, r.Content}, true
	}
	return nil, false
}

// Render formats l. A nil Letter renders as "".
func Render(l Letter) string {
	switch v := l.(type) {
	case SchoolAbsence:
		return v.page().String()
	case SickLeave:
		return v.page().String()
	case LeaveRequest:
		return v.page().String()
	case ResignationMY:
		return v.page().String()
	case ResignationEN:
		return v.page().String()
	default:
		return ""
	}
}

// Generate renders the letter selected by r.Type, or "" when the type is
// unknown. r is normalized first; Normalize is idempotent, so records that
// were already cleaned render the same.
func Generate(r domain.Record) string {
	l, ok := Resolve(Normalize(r))
	if !ok {
		return ""
	}
	return Render(l)
}

// page is the fixed skeleton every template fills in.
type page struct {
	sender     string
	recipient  string
	dateLine   string
	title      string
	paragraphs []string
	closing    string
	signOff    string
	name       string
}

func (p page) String() string {
	return strings.Join([]string{
		p.sender,
		"",
		p.recipient,
		"",
		p.dateLine,
		"",
		UpperTitle(p.title),
		"",
		NumberedParagraphs(p.paragraphs),
		"",
		p.closing,
		"",
		p.signOff,
		"",
		p.name,
	}, "\n")
}
