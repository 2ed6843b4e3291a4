package config

import (
	"strings"
	"testing"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Separator != ", " {
		t.Fatalf("default separator = %q, want %q", s.Separator, ", ")
	}
	if s.MaxResults != 0 || s.MinQuery != 0 || s.NoColor {
		t.Fatalf("unexpected non-zero defaults: %+v", s)
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
separator: " / "
max_results: 10
min_query: 2
no_color: true
glyphs:
  pointer: ">"
  checkmark: "*"
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Separator != " / " {
		t.Fatalf("separator = %q", s.Separator)
	}
	if s.MaxResults != 10 || s.MinQuery != 2 || !s.NoColor {
		t.Fatalf("limits not applied: %+v", s)
	}
	if s.Glyphs.Pointer != ">" || s.Glyphs.Checkmark != "*" {
		t.Fatalf("glyphs not applied: %+v", s.Glyphs)
	}
	if s.Glyphs.Checked != "" {
		t.Fatalf("unset glyph should stay empty, got %q", s.Glyphs.Checked)
	}
}

func TestParseEmptySeparatorFallsBack(t *testing.T) {
	s, err := Parse([]byte(`separator: ""`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Separator != ", " {
		t.Fatalf("separator = %q, want fallback", s.Separator)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("separator: [unclosed"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("unexpected error: %v", err)
	}
}
