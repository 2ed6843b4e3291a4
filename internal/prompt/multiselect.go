package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/selekt-cli/selekt/internal/terminal"
)

// MultiSelectConfig describes one multi-select invocation.
type MultiSelectConfig struct {
	Label   string
	Options []string

	// Defaults are the indices pre-selected when the prompt opens.
	// Out-of-range entries are ignored.
	Defaults []int

	// Separator joins the committed values on the final line.
	// Defaults to ", ".
	Separator string

	Theme Theme
}

// MultiSelect presents the options with toggleable checkboxes. Up/Down
// move the highlight without changing the selection; Space toggles the
// highlighted index; Enter commits. The result is the selected indices in
// ascending original-list order regardless of toggle order, and an empty
// selection is a valid commit.
func MultiSelect(t Terminal, cfg MultiSelectConfig) ([]int, error) {
	if len(cfg.Options) == 0 {
		return nil, fmt.Errorf("multi-select %q: no options", cfg.Label)
	}
	if err := t.EnterRaw(); err != nil {
		return nil, err
	}
	defer t.Restore()
	t.HideCursor()
	defer t.ShowCursor()

	n := len(cfg.Options)
	selected := make(map[int]bool, len(cfg.Defaults))
	for _, i := range cfg.Defaults {
		if i >= 0 && i < n {
			selected[i] = true
		}
	}

	highlighted := 0
	_, height := t.Size()
	win := newWindow(n, height)

	sep := cfg.Separator
	if sep == "" {
		sep = ", "
	}

	r := newRenderer(t.Out(), cfg.Theme)
	for {
		rows := make([]listRow, n)
		for i, opt := range cfg.Options {
			rows[i] = listRow{text: opt, checkbox: true, checked: selected[i]}
		}
		r.paint(listView{
			label:       cfg.Label,
			rows:        rows,
			highlighted: highlighted,
			scroll:      win.scroll,
			visible:     win.visible,
			hint:        navHint(n, win.visible, highlighted, "Space toggle  Enter confirm  q cancel"),
		})

		key, err := terminal.ReadKey(t.In())
		if err != nil {
			r.clear()
			return nil, err
		}

		switch key.Kind {
		case terminal.KeyUp:
			highlighted = (highlighted - 1 + n) % n
			win.follow(highlighted)
		case terminal.KeyDown:
			highlighted = (highlighted + 1) % n
			win.follow(highlighted)
		case terminal.KeySpace:
			selected[highlighted] = !selected[highlighted]
		case terminal.KeyEnter:
			indices := sortedIndices(selected)
			r.paintCommit(cfg.Label, commitText(cfg.Options, indices, sep))
			return indices, nil
		case terminal.KeyEscape, terminal.KeyInterrupt:
			r.clear()
			return nil, ErrCancelled
		case terminal.KeyChar:
			if key.Ch == 'q' {
				r.clear()
				return nil, ErrCancelled
			}
		}
	}
}

// sortedIndices flattens the selection set into ascending order.
func sortedIndices(selected map[int]bool) []int {
	indices := make([]int, 0, len(selected))
	for i, on := range selected {
		if on {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices
}

func commitText(options []string, indices []int, sep string) string {
	if len(indices) == 0 {
		return "None selected"
	}
	values := make([]string, len(indices))
	for i, idx := range indices {
		values[i] = options[idx]
	}
	return strings.Join(values, sep)
}
