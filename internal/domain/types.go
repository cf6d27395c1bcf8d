package domain

// LetterType is the tag that selects a template ("jenis" on the form).
type LetterType string

const (
	TypeSchoolAbsence LetterType = "tidakHadir"
	TypeSickLeave     LetterType = "cutiSakit"
	TypeLeaveRequest  LetterType = "permohonanCuti"
	TypeResignationMY LetterType = "perletakanJawatan"
	TypeResignationEN LetterType = "resignation"
)

// Context decides which optional field group the form collects.
type Context string

const (
	ContextSchool Context = "sekolah"
	ContextWork   Context = "kerja"
)

// LetterTypeInfo is one entry of the type selector.
type LetterTypeInfo struct {
	Value   LetterType `json:"value"`
	Label   string     `json:"label"`
	Context Context    `json:"context"`
	Lang    Lang       `json:"lang"`
}

var letterTypes = []LetterTypeInfo{
	{TypeSchoolAbsence, "Tidak Hadir Sekolah (BM)", ContextSchool, LangMalay},
	{TypeSickLeave, "Cuti Sakit (BM)", ContextSchool, LangMalay},
	{TypeLeaveRequest, "Permohonan Cuti (BM)", ContextWork, LangMalay},
	{TypeResignationMY, "Perletakan Jawatan (BM)", ContextWork, LangMalay},
	{TypeResignationEN, "Resignation Letter (EN)", ContextWork, LangEnglish},
}

// LetterTypes returns the registry in selector order. The first entry is the
// form's default selection.
func LetterTypes() []LetterTypeInfo {
	out := make([]LetterTypeInfo, len(letterTypes))
	copy(out, letterTypes)
	return out
}

// Lookup finds the registry entry for t.
func Lookup(t LetterType) (LetterTypeInfo, bool) {
	for _, info := range letterTypes {
		if info.Value == t {
			return info, true
		}
	}
	return LetterTypeInfo{}, false
}
