package prompt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestMultiSelectToggleAndCommit(t *testing.T) {
	term := newTestTerm(keySpace, keyDown, keyDown, keySpace, keyEnter)

	indices, err := MultiSelect(term, MultiSelectConfig{
		Label:   "Select:",
		Options: []string{"A", "B", "C"},
		Theme:   PlainTheme(),
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if !reflect.DeepEqual(indices, []int{0, 2}) {
		t.Fatalf("got %v, want [0 2]", indices)
	}
	if !strings.Contains(term.output(), "✓ Select: A, C") {
		t.Fatalf("commit line missing:\n%s", term.output())
	}
	assertRestored(t, term)
}

func TestMultiSelectToggleTwiceIsIdentity(t *testing.T) {
	term := newTestTerm(keySpace, keySpace, keyDown, keySpace, keySpace, keyEnter)
	indices, err := MultiSelect(term, MultiSelectConfig{
		Label:   "Select:",
		Options: []string{"A", "B"},
		Theme:   PlainTheme(),
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if len(indices) != 0 {
		t.Fatalf("paired toggles must cancel out, got %v", indices)
	}
}

func TestMultiSelectCommitOrderIsAscendingNotToggleOrder(t *testing.T) {
	// Toggle C first, then A.
	term := newTestTerm(keyDown, keyDown, keySpace, keyUp, keyUp, keySpace, keyEnter)
	indices, err := MultiSelect(term, MultiSelectConfig{
		Label:   "Select:",
		Options: []string{"A", "B", "C"},
		Theme:   PlainTheme(),
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if !reflect.DeepEqual(indices, []int{0, 2}) {
		t.Fatalf("got %v, want ascending [0 2]", indices)
	}
}

func TestMultiSelectEmptyCommitIsValid(t *testing.T) {
	term := newTestTerm(keyEnter)
	indices, err := MultiSelect(term, MultiSelectConfig{
		Label:   "Select:",
		Options: []string{"A", "B"},
		Theme:   PlainTheme(),
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if len(indices) != 0 {
		t.Fatalf("got %v, want empty selection", indices)
	}
	if !strings.Contains(term.output(), "None selected") {
		t.Fatalf("empty commit must render \"None selected\":\n%s", term.output())
	}
}

func TestMultiSelectDefaultsPreSelected(t *testing.T) {
	term := newTestTerm(keyEnter)
	indices, err := MultiSelect(term, MultiSelectConfig{
		Label:    "Select:",
		Options:  []string{"A", "B", "C"},
		Defaults: []int{2, 0, 99, -1}, // out-of-range entries ignored
		Theme:    PlainTheme(),
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if !reflect.DeepEqual(indices, []int{0, 2}) {
		t.Fatalf("got %v, want [0 2]", indices)
	}
}

func TestMultiSelectArrowsDoNotChangeSelection(t *testing.T) {
	term := newTestTerm(keySpace, keyDown, keyUp, keyDown, keyEnter)
	indices, err := MultiSelect(term, MultiSelectConfig{
		Label:   "Select:",
		Options: []string{"A", "B"},
		Theme:   PlainTheme(),
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if !reflect.DeepEqual(indices, []int{0}) {
		t.Fatalf("got %v, want [0] (movement must not toggle)", indices)
	}
}

func TestMultiSelectCustomSeparator(t *testing.T) {
	term := newTestTerm(keySpace, keyDown, keySpace, keyEnter)
	_, err := MultiSelect(term, MultiSelectConfig{
		Label:     "Select:",
		Options:   []string{"A", "B"},
		Separator: " | ",
		Theme:     PlainTheme(),
	})
	if err != nil {
		t.Fatalf("MultiSelect: %v", err)
	}
	if !strings.Contains(term.output(), "A | B") {
		t.Fatalf("custom separator not applied:\n%s", term.output())
	}
}

func TestMultiSelectCancelRestoresTerminal(t *testing.T) {
	term := newTestTerm(keySpace, keyQ)
	_, err := MultiSelect(term, MultiSelectConfig{
		Label:   "Select:",
		Options: []string{"A", "B"},
		Theme:   PlainTheme(),
	})
	if !errors.Is(err, ErrCancelled) {
		t.Fatalf("got %v, want ErrCancelled", err)
	}
	assertRestored(t, term)
}
