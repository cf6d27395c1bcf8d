package handlers

import (
	"context"
	"net/http"

	"github.com/csg33k/surat-generator/internal/app"
	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/templates"
)

// paragraphKey is the repeated form key of the extra paragraphs.
const paragraphKey = "perenggan[]"

type formField struct {
	name  string
	label string
	kind  string
	value func(*domain.Record) *string
}

type fieldGroup struct {
	title   string
	context domain.Context
	fields  []formField
}

// Form keys match the snapshot's JSON keys so a saved state maps straight
// back onto the inputs.
var fieldGroups = []fieldGroup{
	{title: "Pengirim", fields: []formField{
		{"namaPengirim", "Nama pengirim", "text", func(r *domain.Record) *string { return &r.SenderName }},
		{"telefon", "Telefon", "text", func(r *domain.Record) *string { return &r.Phone }},
		{"alamatPengirim", "Alamat", "textarea", func(r *domain.Record) *string { return &r.SenderAddress }},
		{"poskodBandarPengirim", "Poskod & bandar", "text", func(r *domain.Record) *string { return &r.SenderPostcodeCity }},
		{"negeriPengirim", "Negeri", "text", func(r *domain.Record) *string { return &r.SenderState }},
	}},
	{title: "Sekolah", context: domain.ContextSchool, fields: []formField{
		{"namaPelajar", "Nama pelajar", "text", func(r *domain.Record) *string { return &r.StudentName }},
		{"kelas", "Kelas", "text", func(r *domain.Record) *string { return &r.Class }},
		{"hubungan", "Hubungan dengan pelajar", "text", func(r *domain.Record) *string { return &r.Relationship }},
		{"namaSekolah", "Nama sekolah", "text", func(r *domain.Record) *string { return &r.SchoolName }},
		{"alamatSekolah", "Alamat sekolah", "textarea", func(r *domain.Record) *string { return &r.SchoolAddress }},
		{"poskodBandarSekolah", "Poskod & bandar", "text", func(r *domain.Record) *string { return &r.SchoolPostcodeCity }},
		{"negeriSekolah", "Negeri", "text", func(r *domain.Record) *string { return &r.SchoolState }},
	}},
	{title: "Kerja", context: domain.ContextWork, fields: []formField{
		{"jawatan", "Jawatan", "text", func(r *domain.Record) *string { return &r.Position }},
		{"majikan", "Majikan", "text", func(r *domain.Record) *string { return &r.Employer }},
		{"alamatMajikan", "Alamat majikan", "textarea", func(r *domain.Record) *string { return &r.EmployerAddress }},
		{"poskodBandarMajikan", "Poskod & bandar", "text", func(r *domain.Record) *string { return &r.EmployerPostcodeCity }},
		{"negeriMajikan", "Negeri", "text", func(r *domain.Record) *string { return &r.EmployerState }},
		{"penerimaJawatan", "Jawatan penerima", "text", func(r *domain.Record) *string { return &r.RecipientTitle }},
	}},
	{title: "Kandungan", fields: []formField{
		{"tarikh", "Tarikh surat", "date", func(r *domain.Record) *string { return &r.IssueDate }},
		{"tajukKustom", "Tajuk (opsyenal)", "text", func(r *domain.Record) *string { return &r.CustomTitle }},
		{"sebab", "Sebab", "textarea", func(r *domain.Record) *string { return &r.Reason }},
		{"tarikhMula", "Tarikh mula", "date", func(r *domain.Record) *string { return &r.StartDate }},
		{"tarikhAkhir", "Tarikh akhir", "date", func(r *domain.Record) *string { return &r.EndDate }},
	}},
}

// parseRecord reads the posted form. Values are taken as typed; trimming and
// title-casing happen when the letter is rendered.
func parseRecord(r *http.Request) (domain.Record, error) {
	if err := r.ParseForm(); err != nil {
		return domain.Record{}, err
	}
	rec := domain.Record{
		Lang: domain.Lang(r.PostForm.Get("lang")),
		Type: domain.LetterType(r.PostForm.Get("jenis")),
	}
	for _, g := range fieldGroups {
		for _, f := range g.fields {
			*f.value(&rec) = r.PostForm.Get(f.name)
		}
	}
	if paras := r.PostForm[paragraphKey]; len(paras) > 0 {
		rec.ExtraParagraphs = append([]string(nil), paras...)
	}
	return rec, nil
}

// formPresenter is the browser side of one preview pass: the posted form is
// the input and the response is the display.
type formPresenter struct {
	rec     domain.Record
	display func(ctx context.Context, text string) error
}

func (p *formPresenter) ReadRecord(context.Context) (domain.Record, error) {
	return p.rec, nil
}

func (p *formPresenter) Display(ctx context.Context, text string) error {
	if p.display == nil {
		return nil
	}
	return p.display(ctx, text)
}

// appView lays rec out for the form. The paragraph list always has at least
// one input.
func appView(rec domain.Record, text string) templates.AppView {
	v := templates.AppView{
		Langs: []templates.Option{
			{Value: string(domain.LangMalay), Label: "Bahasa Melayu", Selected: rec.Lang != domain.LangEnglish},
			{Value: string(domain.LangEnglish), Label: "English", Selected: rec.Lang == domain.LangEnglish},
		},
		Context:    string(rec.Context()),
		Paragraphs: rec.ExtraParagraphs,
		Text:       text,
		Messages: templates.Messages{
			NothingToCopy: app.MsgNothingToCopy,
			Copied:        app.MsgCopied,
			ResetConfirm:  app.MsgResetConfirm,
		},
	}
	types := domain.LetterTypes()
	if v.Context == "" {
		v.Context = string(types[0].Context)
	}
	for i, t := range types {
		selected := t.Value == rec.Type || (i == 0 && rec.Context() == "")
		v.Types = append(v.Types, templates.Option{Value: string(t.Value), Label: t.Label, Selected: selected})
	}
	for _, g := range fieldGroups {
		group := templates.Group{Title: g.title, Context: string(g.context)}
		for _, f := range g.fields {
			group.Fields = append(group.Fields, templates.Field{
				Name:  f.name,
				Label: f.label,
				Kind:  f.kind,
				Value: *f.value(&rec),
			})
		}
		v.Groups = append(v.Groups, group)
	}
	if len(v.Paragraphs) == 0 {
		v.Paragraphs = []string{""}
	}
	return v
}
