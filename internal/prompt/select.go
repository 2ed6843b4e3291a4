package prompt

import (
	"fmt"

	"github.com/selekt-cli/selekt/internal/terminal"
)

// SelectConfig describes one single-select invocation.
type SelectConfig struct {
	Label   string
	Options []string

	// Default is the initially highlighted index. Clamping is the
	// caller's responsibility; the engine does not validate it.
	Default int

	Theme Theme
}

// Select presents the options and returns the index the user commits with
// Enter. Up/Down wrap around in both directions. The user can quit with
// q, Escape or Ctrl+C, which returns ErrCancelled. Every value in the
// list is a valid commit, so this variant has no validator hook.
func Select(t Terminal, cfg SelectConfig) (int, error) {
	if len(cfg.Options) == 0 {
		return 0, fmt.Errorf("select %q: no options", cfg.Label)
	}
	if err := t.EnterRaw(); err != nil {
		return 0, err
	}
	defer t.Restore()
	t.HideCursor()
	defer t.ShowCursor()

	n := len(cfg.Options)
	highlighted := cfg.Default
	_, height := t.Size()
	win := newWindow(n, height)
	win.follow(highlighted)

	rows := make([]listRow, n)
	for i, opt := range cfg.Options {
		rows[i] = listRow{text: opt}
	}

	r := newRenderer(t.Out(), cfg.Theme)
	for {
		r.paint(listView{
			label:       cfg.Label,
			rows:        rows,
			highlighted: highlighted,
			scroll:      win.scroll,
			visible:     win.visible,
			hint:        navHint(n, win.visible, highlighted, "Enter select  q cancel"),
		})

		key, err := terminal.ReadKey(t.In())
		if err != nil {
			r.clear()
			return 0, err
		}

		switch key.Kind {
		case terminal.KeyUp:
			highlighted = (highlighted - 1 + n) % n
			win.follow(highlighted)
		case terminal.KeyDown:
			highlighted = (highlighted + 1) % n
			win.follow(highlighted)
		case terminal.KeyEnter:
			r.paintCommit(cfg.Label, cfg.Options[highlighted])
			return highlighted, nil
		case terminal.KeyEscape, terminal.KeyInterrupt:
			r.clear()
			return 0, ErrCancelled
		case terminal.KeyChar:
			if key.Ch == 'q' {
				r.clear()
				return 0, ErrCancelled
			}
		}
	}
}
