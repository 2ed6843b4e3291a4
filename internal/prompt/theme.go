package prompt

import "github.com/selekt-cli/selekt/internal/terminal"

// Theme supplies every glyph and style the renderer uses. The engines never
// compute colors themselves; styling is applied through these hooks so a
// caller can swap in its own palette or disable color entirely.
type Theme struct {
	Pointer   string // marker on the highlighted row
	Checked   string // multi-select, selected
	Unchecked string // multi-select, not selected
	Checkmark string // commit line glyph

	Highlight func(string) string // prompt text, highlighted row
	Dim       func(string) string // hint lines, secondary text
	Accent    func(string) string // row marker
	Good      func(string) string // commit checkmark
	Bad       func(string) string // error lines
}

// DefaultTheme returns the standard ANSI palette.
func DefaultTheme() Theme {
	return Theme{
		Pointer:   "▸",
		Checked:   "[x]",
		Unchecked: "[ ]",
		Checkmark: "✓",
		Highlight: func(s string) string { return terminal.Bold + s + terminal.Reset },
		Dim:       func(s string) string { return terminal.Dim + s + terminal.Reset },
		Accent:    func(s string) string { return terminal.Cyan + s + terminal.Reset },
		Good:      func(s string) string { return terminal.Green + s + terminal.Reset },
		Bad:       func(s string) string { return terminal.Red + s + terminal.Reset },
	}
}

// PlainTheme returns a colorless theme for NO_COLOR environments. Glyphs
// stay, styles become identity.
func PlainTheme() Theme {
	id := func(s string) string { return s }
	t := DefaultTheme()
	t.Highlight, t.Dim, t.Accent, t.Good, t.Bad = id, id, id, id, id
	return t
}

func (t Theme) withDefaults() Theme {
	d := DefaultTheme()
	if t.Pointer == "" {
		t.Pointer = d.Pointer
	}
	if t.Checked == "" {
		t.Checked = d.Checked
	}
	if t.Unchecked == "" {
		t.Unchecked = d.Unchecked
	}
	if t.Checkmark == "" {
		t.Checkmark = d.Checkmark
	}
	if t.Highlight == nil {
		t.Highlight = d.Highlight
	}
	if t.Dim == nil {
		t.Dim = d.Dim
	}
	if t.Accent == nil {
		t.Accent = d.Accent
	}
	if t.Good == nil {
		t.Good = d.Good
	}
	if t.Bad == nil {
		t.Bad = d.Bad
	}
	return t
}
