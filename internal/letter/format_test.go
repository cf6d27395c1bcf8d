package letter_test

import (
	"testing"

	"github.com/csg33k/surat-generator/internal/domain"
	"github.com/csg33k/surat-generator/internal/letter"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		lang  domain.Lang
		want  string
	}{
		{"malay", "2024-03-01", domain.LangMalay, "1 Mac 2024"},
		{"english", "2024-03-01", domain.LangEnglish, "1 March 2024"},
		{"malay august", "2023-08-31", domain.LangMalay, "31 Ogos 2023"},
		{"english december", "2025-12-25", domain.LangEnglish, "25 December 2025"},
		{"unknown lang uses malay", "2024-07-15", "fr", "15 Julai 2024"},
		{"first of january", "2024-01-01", domain.LangMalay, "1 Januari 2024"},
		{"leap day", "2024-02-29", domain.LangEnglish, "29 February 2024"},
		{"empty malay", "", domain.LangMalay, ""},
		{"empty english", "", domain.LangEnglish, ""},
		{"garbage", "not-a-date", domain.LangMalay, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := letter.FormatDate(tt.value, tt.lang); got != tt.want {
				t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.value, tt.lang, got, tt.want)
			}
		})
	}
}

// Every month must come out in its own table, never shifted by a zone offset.
func TestFormatDate_AllMonths(t *testing.T) {
	my := []string{"Januari", "Februari", "Mac", "April", "Mei", "Jun",
		"Julai", "Ogos", "September", "Oktober", "November", "Disember"}
	en := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	for i := range 12 {
		date := "2024-" + twoDigits(i+1) + "-01"
		if got, want := letter.FormatDate(date, domain.LangMalay), "1 "+my[i]+" 2024"; got != want {
			t.Errorf("my %s: got %q, want %q", date, got, want)
		}
		if got, want := letter.FormatDate(date, domain.LangEnglish), "1 "+en[i]+" 2024"; got != want {
			t.Errorf("en %s: got %q, want %q", date, got, want)
		}
	}
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return "1" + string(rune('0'+n-10))
}

func TestInclusiveDaySpan(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
		wantOK     bool
	}{
		{"five days", "2024-01-01", "2024-01-05", 5, true},
		{"swapped", "2024-01-05", "2024-01-01", 5, true},
		{"same day", "2024-03-01", "2024-03-01", 1, true},
		{"across month", "2024-02-28", "2024-03-01", 3, true},
		{"across dst change", "2024-03-09", "2024-03-11", 3, true},
		{"across year", "2023-12-31", "2024-01-01", 2, true},
		{"centuries apart", "1700-01-01", "2024-01-01", 118339, true},
		{"whole calendar", "9999-12-31", "0001-01-01", 3652059, true},
		{"missing start", "", "2024-01-05", 0, false},
		{"missing end", "2024-01-01", "", 0, false},
		{"both missing", "", "", 0, false},
		{"bad end", "2024-01-01", "soon", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := letter.InclusiveDaySpan(tt.start, tt.end)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("InclusiveDaySpan(%q, %q) = %d, %v; want %d, %v",
					tt.start, tt.end, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ali bin abu", "Ali Bin Abu"},
		{"  SITI   nurhaliza  ", "Siti Nurhaliza"},
		{"kuala\tlumpur\nwilayah", "Kuala Lumpur Wilayah"},
		{"ÉCOLE élémentaire", "École Élémentaire"},
		{"(ali) abu", "(Ali) Abu"},
		{"5a bestari", "5a Bestari"},
		{"nur-ain o'neil", "Nur-ain O'neil"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := letter.TitleCase(tt.in); got != tt.want {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	inputs := []string{
		"ali bin abu", "MUHAMMAD   ALI", "o'neil smith", "ßtraße weg",
		"İstanbul ılık", "ǆungla", "  -- dash  lead", "123 jalan 4/5", "",
		"Ünïcödé wörds hère", "ΣΊΣΥΦΟΣ όνομα",
	}
	for _, in := range inputs {
		once := letter.TitleCase(in)
		if twice := letter.TitleCase(once); twice != once {
			t.Errorf("TitleCase not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestAddressBlock(t *testing.T) {
	got := letter.AddressBlock("Ali", "", "No 1, Jalan 2", "", "43000 Kajang, Selangor")
	want := "Ali\nNo 1, Jalan 2\n43000 Kajang, Selangor"
	if got != want {
		t.Errorf("AddressBlock = %q, want %q", got, want)
	}
	if got := letter.AddressBlock("", ""); got != "" {
		t.Errorf("AddressBlock of blanks = %q, want empty", got)
	}
	if got := letter.AddressBlock(); got != "" {
		t.Errorf("AddressBlock() = %q, want empty", got)
	}
}

func TestUpperTitle(t *testing.T) {
	if got := letter.UpperTitle("Permohonan Cuti"); got != "PERMOHONAN CUTI" {
		t.Errorf("UpperTitle = %q", got)
	}
	if got := letter.UpperTitle(""); got != "" {
		t.Errorf("UpperTitle(\"\") = %q, want empty", got)
	}
}

func TestNumberedParagraphs(t *testing.T) {
	if got := letter.NumberedParagraphs([]string{"a", "b"}); got != "1. a\n2. b" {
		t.Errorf("NumberedParagraphs = %q", got)
	}
	if got := letter.NumberedParagraphs(nil); got != "" {
		t.Errorf("NumberedParagraphs(nil) = %q, want empty", got)
	}
}
