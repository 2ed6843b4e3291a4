package prompt

import "io"

// Terminal is the session the engines run against. *terminal.Session is
// the production implementation; tests drive the engines with a scripted
// fake so key-sequence behavior is checked without a TTY.
//
// At most one prompt runs against a session at a time; the engines enter
// raw mode on it and defer restoration, so the terminal is reverted on
// every exit path including cancellation.
type Terminal interface {
	In() io.Reader
	Out() io.Writer
	EnterRaw() error
	Restore() error
	ReadLine() (string, error)
	Size() (width, height int)
	HideCursor()
	ShowCursor()
}
