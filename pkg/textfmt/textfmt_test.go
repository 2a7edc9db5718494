package textfmt_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aescanero/dago-node-drafter/pkg/textfmt"
)

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "even padding", text: "ab", width: 6, want: "  ab  "},
		{name: "odd padding extra on right", text: "abc", width: 6, want: " abc  "},
		{name: "exact width", text: "abcdef", width: 6, want: "abcdef"},
		{name: "longer than width", text: "abcdefgh", width: 6, want: "abcdefgh"},
		{name: "empty text", text: "", width: 4, want: "    "},
		{name: "multibyte counted as runes", text: "वकील", width: 8, want: "  वकील  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textfmt.Center(tt.text, tt.width); got != tt.want {
				t.Fatalf("Center(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestCenterDefaultWidth(t *testing.T) {
	got := textfmt.Center("VAKALATNAMA", 0)
	if n := utf8.RuneCountInString(got); n != textfmt.DefaultWidth {
		t.Fatalf("centered length = %d, want %d", n, textfmt.DefaultWidth)
	}
	if strings.TrimSpace(got) != "VAKALATNAMA" {
		t.Fatalf("centered text lost content: %q", got)
	}
}

func TestRule(t *testing.T) {
	if got := textfmt.Rule(5); got != "_____" {
		t.Fatalf("Rule(5) = %q", got)
	}
	if got := textfmt.Rule(-1); len(got) != textfmt.DefaultWidth || strings.Trim(got, "_") != "" {
		t.Fatalf("Rule(-1) = %q, want %d underscores", got, textfmt.DefaultWidth)
	}
}
