package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotATerminal is returned when neither stdin nor /dev/tty is an
// interactive terminal. Interactive prompts have no non-TTY fallback.
var ErrNotATerminal = errors.New("not a terminal")

// Session owns the interactive terminal for the duration of one prompt.
// It tracks the saved terminal state so raw mode is always reverted, and
// holds the /dev/tty handle when stdin is occupied by piped data.
type Session struct {
	in      *os.File
	out     io.Writer
	fd      int
	saved   *term.State
	ownsTTY bool
}

// NewSession opens a terminal session. It reads from stdin when stdin is a
// TTY; when stdin is a pipe it falls back to /dev/tty so options can be
// piped in while the prompt stays interactive.
func NewSession() (*Session, error) {
	in := os.Stdin
	fd := int(in.Fd())
	owns := false

	if !term.IsTerminal(fd) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, ErrNotATerminal
		}
		if !term.IsTerminal(int(tty.Fd())) {
			tty.Close()
			return nil, ErrNotATerminal
		}
		in = tty
		fd = int(tty.Fd())
		owns = true
	}

	return &Session{in: in, out: os.Stdout, fd: fd, ownsTTY: owns}, nil
}

// In returns the terminal input stream.
func (s *Session) In() io.Reader { return s.in }

// Out returns the terminal output stream.
func (s *Session) Out() io.Writer { return s.out }

// EnterRaw disables line buffering and echo. Idempotent.
func (s *Session) EnterRaw() error {
	if s.saved != nil {
		return nil
	}
	saved, err := term.MakeRaw(s.fd)
	if err != nil {
		return fmt.Errorf("failed to set raw terminal mode: %w", err)
	}
	s.saved = saved
	return nil
}

// Restore reverts the terminal to the mode saved by EnterRaw. Idempotent;
// safe to defer alongside an explicit call on the success path.
func (s *Session) Restore() error {
	if s.saved == nil {
		return nil
	}
	err := term.Restore(s.fd, s.saved)
	s.saved = nil
	return err
}

// ReadLine reads one line in cooked mode (echo on, line-buffered). The
// terminal delivers at most one line per read in canonical mode, so a
// single read never consumes bytes belonging to the next prompt phase.
func (s *Session) ReadLine() (string, error) {
	buf := make([]byte, 4096)
	n, err := s.in.Read(buf)
	if err != nil && n == 0 {
		return "", err
	}
	return strings.TrimRight(string(buf[:n]), "\r\n"), nil
}

// Size returns the terminal dimensions, defaulting to 80x24 when the
// query fails.
func (s *Session) Size() (width, height int) {
	w, h, err := term.GetSize(s.fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// HideCursor hides the cursor while a prompt repaints in place.
func (s *Session) HideCursor() { fmt.Fprint(s.out, "\033[?25l") }

// ShowCursor makes the cursor visible again.
func (s *Session) ShowCursor() { fmt.Fprint(s.out, "\033[?25h") }

// Close restores the terminal unconditionally and releases the /dev/tty
// handle if the session opened one.
func (s *Session) Close() error {
	err := s.Restore()
	if s.ownsTTY {
		if cerr := s.in.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
