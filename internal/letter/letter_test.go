package letter_test

import (
	"strings"
	"testing"

	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/letter"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func schoolRecord(t domain.LetterType) domain.Record {
	return domain.Record{
		Lang: domain.LangMalay,
		Type: t,
		Sender: domain.Sender{
			SenderName:         "abu bin bakar",
			Phone:              "012-3456789",
			SenderAddress:      "No 1, Jalan Mawar",
			SenderPostcodeCity: "43000 Kajang",
			SenderState:        "selangor",
		},
		School: domain.School{
			StudentName:        "ali bin abu",
			Class:              "5A",
			Relationship:       "bapa",
			SchoolName:         "sk taman kajang",
			SchoolAddress:      "Jalan Sekolah",
			SchoolPostcodeCity: "43000 Kajang",
			SchoolState:        "selangor",
		},
		Content: domain.Content{
			IssueDate: "2024-02-28",
			Reason:    "demam",
			StartDate: "2024-03-01",
			EndDate:   "2024-03-03",
		},
	}
}

func workRecord(t domain.LetterType) domain.Record {
	return domain.Record{
		Lang: domain.LangMalay,
		Type: t,
		Sender: domain.Sender{
			SenderName:         "siti aminah",
			Phone:              "019-8765432",
			SenderAddress:      "No 9, Jalan Kenanga",
			SenderPostcodeCity: "50450 Kuala Lumpur",
			SenderState:        "wilayah persekutuan",
		},
		Work: domain.Work{
			Position:             "eksekutif akaun",
			Employer:             "syarikat maju sdn bhd",
			EmployerAddress:      "Menara Maju",
			EmployerPostcodeCity: "50450 Kuala Lumpur",
			EmployerState:        "wilayah persekutuan",
		},
		Content: domain.Content{
			IssueDate: "2024-05-01",
			StartDate: "2024-06-03",
			EndDate:   "2024-06-07",
		},
	}
}

// paragraphs returns the numbered lines of a rendered letter.
func paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) > 2 && line[0] >= '1' && line[0] <= '9' && strings.Contains(line[:3], ". ") {
			out = append(out, line)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestGenerate_SchoolAbsenceBody(t *testing.T) {
	got := letter.Generate(schoolRecord(domain.TypeSchoolAbsence))
	want := "Ali Bin Abu (5A) tidak dapat hadir ke sekolah pada 1 Mac 2024 hingga 3 Mac 2024 (3 hari) atas sebab demam."
	if !strings.Contains(got, want) {
		t.Fatalf("letter does not contain %q:\n%s", want, got)
	}
}

func TestGenerate_SchoolAbsenceFull(t *testing.T) {
	got := letter.Generate(schoolRecord(domain.TypeSchoolAbsence))
	want := strings.Join([]string{
		"Abu Bin Bakar",
		"No 1, Jalan Mawar",
		"43000 Kajang, Selangor",
		"Tel: 012-3456789",
		"",
		"Kepada:",
		"Guru Kelas 5A",
		"Sk Taman Kajang",
		"Jalan Sekolah",
		"43000 Kajang, Selangor",
		"",
		"Tarikh: 28 Februari 2024",
		"",
		"PERMOHONAN TIDAK HADIR KE SEKOLAH",
		"",
		"1. Dengan hormatnya perkara di atas adalah dirujuk.",
		"2. Ingin saya memaklumkan bahawa anak/waris saya, Ali Bin Abu (5A) tidak dapat hadir ke sekolah pada 1 Mac 2024 hingga 3 Mac 2024 (3 hari) atas sebab demam.",
		"3. Sehubungan itu, saya memohon kebenaran pihak tuan/puan untuk ketidakhadiran tersebut.",
		"4. Kerjasama dan perhatian daripada pihak tuan/puan amat saya hargai.",
		"",
		"Sekian, terima kasih.",
		"",
		"Yang benar,",
		"",
		"Abu Bin Bakar",
	}, "\n")
	if got != want {
		t.Errorf("letter mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestGenerate_UnknownType(t *testing.T) {
	for _, jenis := range []domain.LetterType{"", "suratCinta", "TIDAKHADIR"} {
		r := schoolRecord(jenis)
		if got := letter.Generate(r); got != "" {
			t.Errorf("Generate(jenis=%q) = %q, want empty", jenis, got)
		}
		if _, ok := letter.Resolve(r); ok {
			t.Errorf("Resolve(jenis=%q) ok=true, want false", jenis)
		}
	}
}

func TestResolve_EveryRegisteredType(t *testing.T) {
	for _, info := range domain.LetterTypes() {
		r := schoolRecord(info.Value)
		l, ok := letter.Resolve(r)
		if !ok {
			t.Fatalf("Resolve(%q) failed", info.Value)
		}
		if l.Type() != info.Value {
			t.Errorf("Resolve(%q).Type() = %q", info.Value, l.Type())
		}
	}
}

func TestRender_Nil(t *testing.T) {
	if got := letter.Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// Per-template details
// ---------------------------------------------------------------------------

func TestGenerate_DefaultTitles(t *testing.T) {
	tests := []struct {
		jenis domain.LetterType
		title string
	}{
		{domain.TypeSchoolAbsence, "PERMOHONAN TIDAK HADIR KE SEKOLAH"},
		{domain.TypeSickLeave, "MAKLUMAN CUTI SAKIT PELAJAR"},
		{domain.TypeLeaveRequest, "PERMOHONAN CUTI"},
		{domain.TypeResignationMY, "PERLETAKAN JAWATAN"},
		{domain.TypeResignationEN, "RESIGNATION LETTER"},
	}
	for _, tt := range tests {
		t.Run(string(tt.jenis), func(t *testing.T) {
			got := letter.Generate(workRecord(tt.jenis))
			if !strings.Contains(got, "\n\n"+tt.title+"\n\n") {
				t.Errorf("title %q not found:\n%s", tt.title, got)
			}
		})
	}
}

func TestGenerate_CustomTitleOverridesDefault(t *testing.T) {
	r := workRecord(domain.TypeLeaveRequest)
	r.CustomTitle = "Cuti Tahunan Jun"
	got := letter.Generate(r)
	if !strings.Contains(got, "\nCUTI TAHUNAN JUN\n") {
		t.Errorf("custom title missing:\n%s", got)
	}
	if strings.Contains(got, "PERMOHONAN CUTI\n") {
		t.Errorf("default title still present:\n%s", got)
	}
}

func TestGenerate_ReasonFallbacks(t *testing.T) {
	tests := []struct {
		jenis domain.LetterType
		want  string
	}{
		{domain.TypeSchoolAbsence, "atas sebab urusan keluarga."},
		{domain.TypeSickLeave, "Rujukan: Sijil cuti sakit."},
		{domain.TypeLeaveRequest, "Tujuan cuti: Urusan peribadi."},
		{domain.TypeResignationMY, "Sebab ringkas: komitmen peribadi/kerjaya."},
		{domain.TypeResignationEN, "Reason (brief): personal/career commitments."},
	}
	for _, tt := range tests {
		t.Run(string(tt.jenis), func(t *testing.T) {
			r := schoolRecord(tt.jenis)
			r.Reason = "   "
			if got := letter.Generate(r); !strings.Contains(got, tt.want) {
				t.Errorf("missing fallback %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestGenerate_SickLeave(t *testing.T) {
	got := letter.Generate(schoolRecord(domain.TypeSickLeave))
	for _, want := range []string{
		"1. Merujuk perkara di atas, dimaklumkan bahawa anak/waris saya, Ali Bin Abu (5A) disahkan tidak sihat dan memerlukan rehat.",
		"2. Cuti sakit adalah pada 1 Mac 2024 hingga 3 Mac 2024 (3 hari). Rujukan: demam.",
		"3. Mohon jasa baik pihak tuan/puan untuk makluman rekod kehadiran.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate_LeaveRequestBlocks(t *testing.T) {
	got := letter.Generate(workRecord(domain.TypeLeaveRequest))
	sender := "Siti Aminah\nEksekutif Akaun\nSyarikat Maju Sdn Bhd\nNo 9, Jalan Kenanga\n50450 Kuala Lumpur, Wilayah Persekutuan\nTel: 019-8765432"
	if !strings.HasPrefix(got, sender+"\n\n") {
		t.Errorf("sender block mismatch:\n%s", got)
	}
	recipient := "Kepada:\nPengurus Sumber Manusia\nSyarikat Maju Sdn Bhd\nMenara Maju\n50450 Kuala Lumpur, Wilayah Persekutuan"
	if !strings.Contains(got, "\n\n"+recipient+"\n\n") {
		t.Errorf("recipient block mismatch:\n%s", got)
	}
	if !strings.Contains(got, "1. Perkara di atas dirujuk. Saya dengan ini memohon cuti pada 3 Jun 2024 hingga 7 Jun 2024 (5 hari).") {
		t.Errorf("leave period paragraph mismatch:\n%s", got)
	}
}

func TestGenerate_RecipientTitle(t *testing.T) {
	r := workRecord(domain.TypeResignationEN)
	r.RecipientTitle = "chief executive officer"
	got := letter.Generate(r)
	if !strings.Contains(got, "To:\nChief Executive Officer\n") {
		t.Errorf("recipient title missing:\n%s", got)
	}
}

func TestGenerate_ResignationMY(t *testing.T) {
	got := letter.Generate(workRecord(domain.TypeResignationMY))
	want := "1. Dengan segala hormatnya dimaklumkan bahawa saya ingin meletakkan jawatan sebagai Eksekutif Akaun di Syarikat Maju Sdn Bhd berkuat kuasa pada 3 Jun 2024."
	if !strings.Contains(got, want) {
		t.Errorf("missing %q:\n%s", want, got)
	}
	if strings.Contains(got, "hari)") {
		t.Errorf("resignation must not show a day span:\n%s", got)
	}
}

func TestGenerate_ResignationEN(t *testing.T) {
	got := letter.Generate(workRecord(domain.TypeResignationEN))
	for _, want := range []string{
		"\nTo:\nHuman Resources Manager\n",
		"\nDate: 1 May 2024\n",
		"1. With reference to the above, please accept this letter as formal notice of my resignation from the position of Eksekutif Akaun, effective 3 June 2024.",
		"3. I will fully support handover to ensure a smooth transition during the notice period.",
		"\nThank you.\n\nSincerely,\n\nSiti Aminah",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate_ResignationDefaults(t *testing.T) {
	r := domain.Record{Type: domain.TypeResignationMY}
	got := letter.Generate(r)
	want := "sebagai pekerja di syarikat berkuat kuasa pada tarikh notis."
	if !strings.Contains(got, want) {
		t.Errorf("missing %q:\n%s", want, got)
	}

	r.Type = domain.TypeResignationEN
	got = letter.Generate(r)
	want = "from the position of staff, effective on notice."
	if !strings.Contains(got, want) {
		t.Errorf("missing %q:\n%s", want, got)
	}
}

// ---------------------------------------------------------------------------
// Blank input and extra paragraphs
// ---------------------------------------------------------------------------

func TestGenerate_BlankRecordRendersForEveryType(t *testing.T) {
	for _, info := range domain.LetterTypes() {
		t.Run(string(info.Value), func(t *testing.T) {
			got := letter.Generate(domain.Record{Type: info.Value})
			if got == "" {
				t.Fatal("blank record rendered empty")
			}
			if strings.Contains(got, "\n\n\n\n") {
				t.Errorf("blank address lines were rendered:\n%q", got)
			}
			if !strings.Contains(got, "Tel:") {
				t.Errorf("phone label missing:\n%s", got)
			}
		})
	}
}

func TestGenerate_BlankDatesDegradeInPlace(t *testing.T) {
	r := schoolRecord(domain.TypeSchoolAbsence)
	r.StartDate, r.EndDate, r.IssueDate = "", "", ""
	got := letter.Generate(r)
	if !strings.Contains(got, "tidak dapat hadir ke sekolah pada  atas sebab demam.") {
		t.Errorf("blank period should leave an empty phrase:\n%s", got)
	}
	if !strings.Contains(got, "\nTarikh: \n") {
		t.Errorf("blank issue date line mismatch:\n%q", got)
	}
}

func TestGenerate_StartOnlyHasNoSpan(t *testing.T) {
	r := schoolRecord(domain.TypeSchoolAbsence)
	r.EndDate = ""
	got := letter.Generate(r)
	if !strings.Contains(got, "pada 1 Mac 2024 atas sebab demam.") {
		t.Errorf("start-only period mismatch:\n%s", got)
	}
}

func TestGenerate_NoClassDropsParentheses(t *testing.T) {
	r := schoolRecord(domain.TypeSchoolAbsence)
	r.Class = ""
	got := letter.Generate(r)
	if !strings.Contains(got, "anak/waris saya, Ali Bin Abu tidak dapat") {
		t.Errorf("pupil without class mismatch:\n%s", got)
	}
	if !strings.Contains(got, "Kepada:\nGuru Kelas\n") {
		t.Errorf("recipient without class mismatch:\n%s", got)
	}
}

func TestGenerate_ExtraParagraphsContinueNumbering(t *testing.T) {
	r := workRecord(domain.TypeLeaveRequest)
	r.ExtraParagraphs = []string{"x", "  ", "y"}
	got := paragraphs(letter.Generate(r))
	if len(got) != 5 {
		t.Fatalf("got %d paragraphs, want 5: %q", len(got), got)
	}
	if got[3] != "4. x" || got[4] != "5. y" {
		t.Errorf("extra paragraphs = %q, %q; want \"4. x\", \"5. y\"", got[3], got[4])
	}
}

func TestGenerate_ExtraParagraphsAfterFourParagraphTemplate(t *testing.T) {
	r := schoolRecord(domain.TypeSchoolAbsence)
	r.ExtraParagraphs = []string{"Sila hubungi saya jika perlu."}
	got := paragraphs(letter.Generate(r))
	if last := got[len(got)-1]; last != "5. Sila hubungi saya jika perlu." {
		t.Errorf("last paragraph = %q", last)
	}
}

func TestGenerate_DoesNotMutateRecord(t *testing.T) {
	r := schoolRecord(domain.TypeSchoolAbsence)
	r.ExtraParagraphs = []string{" a ", ""}
	_ = letter.Generate(r)
	if r.StudentName != "ali bin abu" || len(r.ExtraParagraphs) != 2 || r.ExtraParagraphs[0] != " a " {
		t.Errorf("Generate modified its input: %+v", r)
	}
}
