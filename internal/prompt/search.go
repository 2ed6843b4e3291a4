package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/selekt-cli/selekt/internal/terminal"
)

// SearchConfig describes one search-select invocation.
type SearchConfig struct {
	Label  string
	Source Source

	// Validate rejects a chosen value with a user-facing error. A nil
	// return accepts. Rejections are handled by re-prompting and never
	// surface to the caller.
	Validate func(string) error

	// MinQuery treats shorter non-empty queries as yielding no results
	// instead of sending them to the source.
	MinQuery int

	// MaxResults truncates fetched result lists. 0 means unlimited.
	MaxResults int

	// Default is the initially highlighted index when a query yields
	// multiple results. Out-of-range values fall back to 0, since the
	// result list length varies per query.
	Default int

	Theme Theme
}

// Result is a committed search selection. Value is the primary result;
// Index is the position inside the result snapshot the commit happened
// against. For Dynamic sources that snapshot is transient, so the index
// is best-effort only and must not be reused across fetches.
type Result struct {
	Value string
	Index int
}

// errRestart signals the r command: discard the current results and
// return to the query phase.
var errRestart = errors.New("restart search")

// Search runs the query/navigate loop: read a query in cooked mode, fetch
// matching options, then dispatch on the result count. Zero results shows
// a notice and re-prompts. Exactly one result bypasses navigation and is
// validated directly; a validation failure there returns to the query
// phase. Multiple results enter arrow-key navigation where Enter commits
// (validation failures re-enter navigation, not the query phase), r
// starts a new search and q cancels with ErrCancelled.
//
// The fetch is blocking: no timeout, no cancellation of an in-flight
// provider call, and no key is read until it resolves. The ctx is handed
// to the source so providers can honor caller deadlines themselves.
func Search(ctx context.Context, t Terminal, cfg SearchConfig) (Result, error) {
	if cfg.Source == nil {
		return Result{}, fmt.Errorf("search %q: no source", cfg.Label)
	}
	theme := cfg.Theme.withDefaults()
	r := newRenderer(t.Out(), theme)

	for {
		query, err := readQuery(t, theme, cfg.Label)
		if err != nil {
			return Result{}, err
		}

		results, err := fetchResults(ctx, cfg, query)
		if err != nil {
			if werr := waitNotice(t, r, fmt.Sprintf("Search failed: %v — press any key", err)); werr != nil {
				return Result{}, werr
			}
			continue
		}
		if len(results) == 0 {
			if werr := waitNotice(t, r, fmt.Sprintf("No matches for %q — press any key", query)); werr != nil {
				return Result{}, werr
			}
			continue
		}

		if len(results) == 1 {
			value := results[0]
			if cfg.Validate != nil {
				if verr := cfg.Validate(value); verr != nil {
					if werr := waitNotice(t, r, validationText(verr)+" — press any key"); werr != nil {
						return Result{}, werr
					}
					continue
				}
			}
			r.paintCommit(cfg.Label, value)
			return Result{Value: value, Index: 0}, nil
		}

		idx, err := navigate(t, r, cfg, query, results)
		if errors.Is(err, errRestart) {
			continue
		}
		if err != nil {
			return Result{}, err
		}
		return Result{Value: results[idx], Index: idx}, nil
	}
}

// readQuery prints the query prompt and reads one line with echo on,
// looping until the line is non-empty. The echoed line is reclaimed
// afterwards so the renderer owns the region from the prompt's row.
func readQuery(t Terminal, theme Theme, label string) (string, error) {
	for {
		fmt.Fprintf(t.Out(), "%s %s ", theme.Highlight(label), theme.Dim("›"))
		line, err := t.ReadLine()
		if err != nil {
			return "", err
		}
		fmt.Fprint(t.Out(), "\033[1A\r\033[K")
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
}

func fetchResults(ctx context.Context, cfg SearchConfig, query string) ([]string, error) {
	if cfg.MinQuery > 0 && len(query) < cfg.MinQuery {
		return nil, nil
	}
	results, err := cfg.Source.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	if cfg.MaxResults > 0 && len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	return results, nil
}

// waitNotice paints a transient message, waits for any keypress, then
// erases the message again.
func waitNotice(t Terminal, r *renderer, msg string) error {
	r.paintLine(msg)
	if err := t.EnterRaw(); err != nil {
		return err
	}
	_, err := terminal.ReadKey(t.In())
	t.Restore()
	r.clear()
	return err
}

// navigate is the multi-result sub-state: the same wraparound list as
// single-select plus the r (new search) and q (cancel) commands.
func navigate(t Terminal, r *renderer, cfg SearchConfig, query string, results []string) (int, error) {
	if err := t.EnterRaw(); err != nil {
		return 0, err
	}
	defer t.Restore()
	t.HideCursor()
	defer t.ShowCursor()

	n := len(results)
	highlighted := cfg.Default
	if highlighted < 0 || highlighted >= n {
		highlighted = 0
	}
	_, height := t.Size()
	win := newWindow(n, height)
	win.follow(highlighted)

	rows := make([]listRow, n)
	for i, res := range results {
		rows[i] = listRow{text: res}
	}

	errText := ""
	for {
		r.paint(listView{
			label:       cfg.Label,
			query:       query,
			rows:        rows,
			highlighted: highlighted,
			scroll:      win.scroll,
			visible:     win.visible,
			errText:     errText,
			hint:        navHint(n, win.visible, highlighted, "Enter select  r new search  q cancel"),
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
			value := results[highlighted]
			if cfg.Validate != nil {
				if verr := cfg.Validate(value); verr != nil {
					errText = validationText(verr)
					continue
				}
			}
			r.paintCommit(cfg.Label, value)
			return highlighted, nil
		case terminal.KeyEscape, terminal.KeyInterrupt:
			r.clear()
			return 0, ErrCancelled
		case terminal.KeyChar:
			switch key.Ch {
			case 'r':
				r.clear()
				return 0, errRestart
			case 'q':
				r.clear()
				return 0, ErrCancelled
			}
		}
	}
}

func validationText(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
