package domain

// Lang selects month names and the language a letter is written in.
type Lang string

const (
	LangMalay   Lang = "my"
	LangEnglish Lang = "en"
)

const DefaultLang = LangMalay

// Sender holds the letter writer's identity block.
type Sender struct {
	SenderName         string `json:"namaPengirim" yaml:"namaPengirim"`
	Phone              string `json:"telefon" yaml:"telefon"`
	SenderAddress      string `json:"alamatPengirim" yaml:"alamatPengirim"`
	SenderPostcodeCity string `json:"poskodBandarPengirim" yaml:"poskodBandarPengirim"`
	SenderState        string `json:"negeriPengirim" yaml:"negeriPengirim"`
}

// School holds the fields shown when the letter type's context is ContextSchool.
type School struct {
	StudentName        string `json:"namaPelajar" yaml:"namaPelajar"`
	Class              string `json:"kelas" yaml:"kelas"`
	Relationship       string `json:"hubungan" yaml:"hubungan"`
	SchoolName         string `json:"namaSekolah" yaml:"namaSekolah"`
	SchoolAddress      string `json:"alamatSekolah" yaml:"alamatSekolah"`
	SchoolPostcodeCity string `json:"poskodBandarSekolah" yaml:"poskodBandarSekolah"`
	SchoolState        string `json:"negeriSekolah" yaml:"negeriSekolah"`
}

// Work holds the fields shown when the letter type's context is ContextWork.
type Work struct {
	Position             string `json:"jawatan" yaml:"jawatan"`
	Employer             string `json:"majikan" yaml:"majikan"`
	EmployerAddress      string `json:"alamatMajikan" yaml:"alamatMajikan"`
	EmployerPostcodeCity string `json:"poskodBandarMajikan" yaml:"poskodBandarMajikan"`
	EmployerState        string `json:"negeriMajikan" yaml:"negeriMajikan"`
	RecipientTitle       string `json:"penerimaJawatan" yaml:"penerimaJawatan"`
}

// Content is the body of the letter. Dates are kept as the YYYY-MM-DD strings
// the form produced so that a snapshot reproduces them exactly.
type Content struct {
	IssueDate       string   `json:"tarikh" yaml:"tarikh" validate:"omitempty,datetime=2006-01-02"`
	CustomTitle     string   `json:"tajukKustom" yaml:"tajukKustom"`
	Reason          string   `json:"sebab" yaml:"sebab"`
	StartDate       string   `json:"tarikhMula" yaml:"tarikhMula" validate:"omitempty,datetime=2006-01-02"`
	EndDate         string   `json:"tarikhAkhir" yaml:"tarikhAkhir" validate:"omitempty,datetime=2006-01-02"`
	ExtraParagraphs []string `json:"perengganTambahan" yaml:"perengganTambahan"`
}

// Record is every field of the letter form. The embedded groups are flattened
// in both the JSON and YAML encodings, so the wire keys match the form names.
type Record struct {
	Lang Lang       `json:"lang" yaml:"lang" validate:"omitempty,oneof=my en"`
	Type LetterType `json:"jenis" yaml:"jenis" validate:"omitempty,lettertype"`

	Sender  `yaml:",inline"`
	School  `yaml:",inline"`
	Work    `yaml:",inline"`
	Content `yaml:",inline"`
}

// Context returns the context class of the record's letter type, or "" when
// the type is not registered.
func (r Record) Context() Context {
	info, ok := Lookup(r.Type)
	if !ok {
		return ""
	}
	return info.Context
}
