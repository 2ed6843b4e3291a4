package prompt

import (
	"fmt"
	"io"
	"strings"
)

// listRow is one option line inside a frame.
type listRow struct {
	text     string
	checkbox bool // render a checked/unchecked glyph before the text
	checked  bool
}

// listView describes one complete frame of the interactive region.
type listView struct {
	label       string
	query       string // search variant: the query echoed after the label
	rows        []listRow
	highlighted int
	scroll      int // index of the first visible row
	visible     int // size of the scroll window
	hint        string
	errText     string // validation / status line, empty when absent
}

// renderer repaints the interactive region in place. It remembers how many
// lines the previous paint emitted so the next paint can erase exactly
// that region: it moves the cursor up by that count and clears downward
// before writing the new frame. Every line the renderer writes is
// \r\n-terminated; the count of those writes is what gets recorded, so
// erase and repaint can never drift apart.
type renderer struct {
	out       io.Writer
	theme     Theme
	lastLines int
}

func newRenderer(out io.Writer, theme Theme) *renderer {
	return &renderer{out: out, theme: theme.withDefaults()}
}

// clear erases the previously painted region and leaves the cursor at its
// top-left corner.
func (r *renderer) clear() {
	if r.lastLines > 0 {
		fmt.Fprintf(r.out, "\033[%dA", r.lastLines)
	}
	fmt.Fprint(r.out, "\r\033[J")
	r.lastLines = 0
}

// paint erases the previous frame and draws v, returning the number of
// lines written (which the next clear will erase).
func (r *renderer) paint(v listView) int {
	r.clear()
	lines := 0

	if v.query != "" {
		fmt.Fprintf(r.out, "%s %s\r\n", r.theme.Highlight(v.label), v.query)
	} else {
		fmt.Fprintf(r.out, "%s\r\n", r.theme.Highlight(v.label))
	}
	lines++

	end := v.scroll + v.visible
	if end > len(v.rows) {
		end = len(v.rows)
	}
	for i := v.scroll; i < end; i++ {
		fmt.Fprint(r.out, r.renderRow(v.rows[i], i == v.highlighted))
		lines++
	}

	if v.errText != "" {
		fmt.Fprintf(r.out, "  %s\r\n", r.theme.Bad(v.errText))
		lines++
	}
	if v.hint != "" {
		fmt.Fprintf(r.out, "  %s\r\n", r.theme.Dim(v.hint))
		lines++
	}

	r.lastLines = lines
	return lines
}

func (r *renderer) renderRow(row listRow, highlighted bool) string {
	var b strings.Builder
	if highlighted {
		b.WriteString("  " + r.theme.Accent(r.theme.Pointer) + " ")
	} else {
		b.WriteString("    ")
	}
	if row.checkbox {
		if row.checked {
			b.WriteString(r.theme.Checked + " ")
		} else {
			b.WriteString(r.theme.Unchecked + " ")
		}
	}
	if highlighted {
		b.WriteString(r.theme.Highlight(row.text))
	} else {
		b.WriteString(row.text)
	}
	b.WriteString("\r\n")
	return b.String()
}

// paintLine erases the previous frame and writes a single transient line
// (zero-result notices, fetch errors). The line is part of the region and
// is erased by the next paint.
func (r *renderer) paintLine(text string) int {
	r.clear()
	fmt.Fprintf(r.out, "  %s\r\n", r.theme.Bad(text))
	r.lastLines = 1
	return 1
}

// paintCommit erases the whole interactive region and writes the one
// persistent line that replaces it: checkmark, prompt text, answer.
func (r *renderer) paintCommit(label, answer string) {
	r.clear()
	fmt.Fprintf(r.out, "%s %s %s\r\n", r.theme.Good(r.theme.Checkmark), r.theme.Highlight(label), answer)
}
