package tokenize

import (
	"testing"

	"github.com/baditaflorin/go_casefmt/internal/core/domain"
	"github.com/google/go-cmp/cmp"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []domain.Token
	}{
		{"empty", "", []domain.Token{}},
		{"blank", "   \t ", []domain.Token{}},
		{"single", "smith", []domain.Token{{Text: "smith"}}},
		{
			name: "collapses runs",
			in:   "  ACME   CORP.  ",
			want: []domain.Token{{Text: "ACME"}, {Text: "CORP.", Position: 1}},
		},
		{
			name: "punctuation stays attached",
			in:   "john (the brave)",
			want: []domain.Token{
				{Text: "john"},
				{Text: "(the", Position: 1},
				{Text: "brave)", Position: 2},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Words(tc.in)); diff != "" {
				t.Errorf("Words(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestAddressParts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "123 main st", []string{"123 main st"}},
		{"trims", " 123 main st ,  apt 4 ", []string{"123 main st", "apt 4"}},
		{"drops empty parts", "a,, ,b,", []string{"a", "b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, AddressParts(tc.in)); diff != "" {
				t.Errorf("AddressParts(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestCitySegments(t *testing.T) {
	sep := func(s string) Segment { return Segment{Text: s, Separator: true} }
	word := func(s string) Segment { return Segment{Text: s} }

	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{"empty", "", nil},
		{"no separators", "toronto", []Segment{word("toronto")}},
		{"hyphen", "ottawa-gatineau", []Segment{word("ottawa"), sep("-"), word("gatineau")}},
		{"space run", "  saint   john ", []Segment{word("saint"), sep(" "), word("john")}},
		{"apostrophe is not a boundary", "peggy's cove", []Segment{word("peggy's"), sep(" "), word("cove")}},
		{
			name: "mixed",
			in:   "saint-jean sur richelieu",
			want: []Segment{word("saint"), sep("-"), word("jean"), sep(" "), word("sur"), sep(" "), word("richelieu")},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, CitySegments(tc.in)); diff != "" {
				t.Errorf("CitySegments(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}
