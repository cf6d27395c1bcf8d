package letter

import (
	"fmt"
	"strings"

	"github.com/csg33k/surat-generator/internal/domain"
)

const (
	closingMY = "Sekian, terima kasih."
	signOffMY = "Yang benar,"
	closingEN = "Thank you."
	signOffEN = "Sincerely,"

	recipientHR_MY = "Pengurus Sumber Manusia"
	recipientHR_EN = "Human Resources Manager"
)

// Default titles, used when the record has no custom title.
const (
	TitleSchoolAbsence = "Permohonan Tidak Hadir Ke Sekolah"
	TitleSickLeave     = "Makluman Cuti Sakit Pelajar"
	TitleLeaveRequest  = "Permohonan Cuti"
	TitleResignationMY = "Perletakan Jawatan"
	TitleResignationEN = "Resignation Letter"
)

func (l SchoolAbsence) page() page {
	c := l.Content
	return page{
		sender:    schoolSender(l.Sender),
		recipient: schoolRecipient(l.School),
		dateLine:  "Tarikh: " + FormatDate(c.IssueDate, domain.LangMalay),
		title:     orDefault(c.CustomTitle, TitleSchoolAbsence),
		paragraphs: withExtras(c,
			"Dengan hormatnya perkara di atas adalah dirujuk.",
			fmt.Sprintf("Ingin saya memaklumkan bahawa anak/waris saya, %s tidak dapat hadir ke sekolah pada %s atas sebab %s.",
				pupil(l.School), period(c), orDefault(c.Reason, "urusan keluarga")),
			"Sehubungan itu, saya memohon kebenaran pihak tuan/puan untuk ketidakhadiran tersebut.",
			"Kerjasama dan perhatian daripada pihak tuan/puan amat saya hargai.",
		),
		closing: closingMY,
		signOff: signOffMY,
		name:    l.Sender.SenderName,
	}
}

func (l SickLeave) page() page {
	c := l.Content
	return page{
		sender:    schoolSender(l.Sender),
		recipient: schoolRecipient(l.School),
		dateLine:  "Tarikh: " + FormatDate(c.IssueDate, domain.LangMalay),
		title:     orDefault(c.CustomTitle, TitleSickLeave),
		paragraphs: withExtras(c,
			fmt.Sprintf("Merujuk perkara di atas, dimaklumkan bahawa anak/waris saya, %s disahkan tidak sihat dan memerlukan rehat.",
				pupil(l.School)),
			fmt.Sprintf("Cuti sakit adalah pada %s. Rujukan: %s.",
				period(c), orDefault(c.Reason, "Sijil cuti sakit")),
			"Mohon jasa baik pihak tuan/puan untuk makluman rekod kehadiran.",
		),
		closing: closingMY,
		signOff: signOffMY,
		name:    l.Sender.SenderName,
	}
}

func (l LeaveRequest) page() page {
	c := l.Content
	return page{
		sender:    workSender(l.Sender, l.Work),
		recipient: workRecipient(l.Work, "Kepada:", recipientHR_MY),
		dateLine:  "Tarikh: " + FormatDate(c.IssueDate, domain.LangMalay),
		title:     orDefault(c.CustomTitle, TitleLeaveRequest),
		paragraphs: withExtras(c,
			fmt.Sprintf("Perkara di atas dirujuk. Saya dengan ini memohon cuti pada %s.", period(c)),
			fmt.Sprintf("Tujuan cuti: %s.", orDefault(c.Reason, "Urusan peribadi")),
			"Saya akan memastikan penyerahan tugas dan kelangsungan kerja berjalan lancar.",
		),
		closing: closingMY,
		signOff: signOffMY,
		name:    l.Sender.SenderName,
	}
}

func (l ResignationMY) page() page {
	c := l.Content
	effective := FormatDate(c.StartDate, domain.LangMalay)
	return page{
		sender:    workSender(l.Sender, l.Work),
		recipient: workRecipient(l.Work, "Kepada:", recipientHR_MY),
		dateLine:  "Tarikh: " + FormatDate(c.IssueDate, domain.LangMalay),
		title:     orDefault(c.CustomTitle, TitleResignationMY),
		paragraphs: withExtras(c,
			fmt.Sprintf("Dengan segala hormatnya dimaklumkan bahawa saya ingin meletakkan jawatan sebagai %s di %s berkuat kuasa pada %s.",
				orDefault(l.Work.Position, "pekerja"), orDefault(l.Work.Employer, "syarikat"), orDefault(effective, "tarikh notis")),
			fmt.Sprintf("Sebab ringkas: %s.", orDefault(c.Reason, "komitmen peribadi/kerjaya")),
			"Saya komited untuk membantu proses penyerahan tugas sepanjang tempoh notis.",
		),
		closing: closingMY,
		signOff: signOffMY,
		name:    l.Sender.SenderName,
	}
}

func (l ResignationEN) page() page {
	c := l.Content
	effective := FormatDate(c.StartDate, domain.LangEnglish)
	return page{
		sender:    workSender(l.Sender, l.Work),
		recipient: workRecipient(l.Work, "To:", recipientHR_EN),
		dateLine:  "Date: " + FormatDate(c.IssueDate, domain.LangEnglish),
		title:     orDefault(c.CustomTitle, TitleResignationEN),
		paragraphs: withExtras(c,
			fmt.Sprintf("With reference to the above, please accept this letter as formal notice of my resignation from the position of %s, effective %s.",
				orDefault(l.Work.Position, "staff"), orDefault(effective, "on notice")),
			fmt.Sprintf("Reason (brief): %s.", orDefault(c.Reason, "personal/career commitments")),
			"I will fully support handover to ensure a smooth transition during the notice period.",
		),
		closing: closingEN,
		signOff: signOffEN,
		name:    l.Sender.SenderName,
	}
}

func schoolSender(s domain.Sender) string {
	return AddressBlock(
		s.SenderName,
		s.SenderAddress,
		joinNonEmpty(", ", s.SenderPostcodeCity, s.SenderState),
		phoneLine(s.Phone),
	)
}

func workSender(s domain.Sender, w domain.Work) string {
	return AddressBlock(
		s.SenderName,
		w.Position,
		w.Employer,
		s.SenderAddress,
		joinNonEmpty(", ", s.SenderPostcodeCity, s.SenderState),
		phoneLine(s.Phone),
	)
}

func schoolRecipient(sc domain.School) string {
	return AddressBlock(
		"Kepada:",
		strings.TrimSpace("Guru Kelas "+sc.Class),
		sc.SchoolName,
		sc.SchoolAddress,
		joinNonEmpty(", ", sc.SchoolPostcodeCity, sc.SchoolState),
	)
}

func workRecipient(w domain.Work, heading, fallbackTitle string) string {
	return AddressBlock(
		heading,
		orDefault(w.RecipientTitle, fallbackTitle),
		w.Employer,
		w.EmployerAddress,
		joinNonEmpty(", ", w.EmployerPostcodeCity, w.EmployerState),
	)
}

// phoneLine keeps the "Tel:" label even when no number was given.
func phoneLine(phone string) string {
	return strings.TrimSpace("Tel: " + phone)
}

// pupil is "Ali Bin Abu (5A)", or just the name without a class.
func pupil(sc domain.School) string {
	if sc.Class == "" {
		return sc.StudentName
	}
	return sc.StudentName + " (" + sc.Class + ")"
}

// period is the Malay date range "1 Mac 2024 hingga 3 Mac 2024 (3 hari)".
// Missing parts are left out; a missing start date leaves the phrase empty
// at the front.
func period(c domain.Content) string {
	s := FormatDate(c.StartDate, domain.LangMalay)
	if end := FormatDate(c.EndDate, domain.LangMalay); end != "" {
		s += " hingga " + end
	}
	if days, ok := InclusiveDaySpan(c.StartDate, c.EndDate); ok {
		s += fmt.Sprintf(" (%d hari)", days)
	}
	return s
}

// withExtras appends the record's non-blank extra paragraphs to the
// template's own.
func withExtras(c domain.Content, own ...string) []string {
	out := make([]string, 0, len(own)+len(c.ExtraParagraphs))
	out = append(out, own...)
	for _, p := range c.ExtraParagraphs {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
