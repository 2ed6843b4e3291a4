package prompt

import (
	"io"
	"testing"
)

// Key byte sequences as a raw-mode terminal delivers them: one keystroke
// per read, arrows as a single three-byte read.
var (
	keyUp    = []byte{27, 91, 65}
	keyDown  = []byte{27, 91, 66}
	keyEnter = []byte{13}
	keySpace = []byte{32}
	keyEsc   = []byte{27}
	keyQ     = []byte{'q'}
	keyR     = []byte{'r'}
)

// keyScript delivers one scripted keystroke per Read call, mirroring how a
// raw-mode terminal hands bytes to the decoder.
type keyScript struct {
	chunks [][]byte
	next   int
}

func (k *keyScript) Read(p []byte) (int, error) {
	if k.next >= len(k.chunks) {
		return 0, io.EOF
	}
	n := copy(p, k.chunks[k.next])
	k.next++
	return n, nil
}

// testTerm is a scripted Terminal. It records raw-mode transitions so
// tests can assert the terminal is always restored, and captures all
// rendered output.
type testTerm struct {
	keys  keyScript
	lines []string // scripted cooked-mode line reads
	out   captureWriter

	raw      bool
	enters   int
	restores int
	reads    int // lines consumed via ReadLine
}

// captureWriter keeps everything written, for frame assertions.
type captureWriter struct {
	data []byte
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}

func newTestTerm(keys ...[]byte) *testTerm {
	return &testTerm{keys: keyScript{chunks: keys}}
}

func (t *testTerm) In() io.Reader  { return &t.keys }
func (t *testTerm) Out() io.Writer { return &t.out }

func (t *testTerm) EnterRaw() error {
	t.raw = true
	t.enters++
	return nil
}

func (t *testTerm) Restore() error {
	t.raw = false
	t.restores++
	return nil
}

func (t *testTerm) ReadLine() (string, error) {
	if t.reads >= len(t.lines) {
		return "", io.EOF
	}
	line := t.lines[t.reads]
	t.reads++
	return line, nil
}

func (t *testTerm) Size() (int, int) { return 80, 24 }
func (t *testTerm) HideCursor()      {}
func (t *testTerm) ShowCursor()      {}

func (t *testTerm) output() string { return string(t.out.data) }

func assertRestored(t *testing.T, term *testTerm) {
	t.Helper()
	if term.raw {
		t.Fatalf("terminal left in raw mode")
	}
	if term.enters == 0 {
		t.Fatalf("expected the engine to enter raw mode")
	}
	if term.restores < term.enters {
		t.Fatalf("raw mode entered %d times but restored %d times", term.enters, term.restores)
	}
}
