package prompt

import (
	"errors"

	"github.com/selekt-cli/selekt/internal/terminal"
)

// ErrCancelled is returned when the user quits a prompt (q, Escape or
// Ctrl+C). It is the only abnormal return of the selection engines; all
// other failure modes are recovered internally by re-prompting.
var ErrCancelled = errors.New("selection cancelled")

// ErrNotATerminal is returned when no interactive terminal is available.
var ErrNotATerminal = terminal.ErrNotATerminal

// ValidationError carries the user-facing message shown when a chosen
// value is rejected. It never escapes the engine; it is displayed and the
// prompt retries.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
