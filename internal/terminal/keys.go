package terminal

import "io"

// Key is one decoded logical key event.
type Key struct {
	Kind KeyKind
	Ch   byte // set only for KeyChar
}

// KeyKind enumerates the closed set of events the decoder can emit.
type KeyKind int

const (
	// KeyNone is emitted for bytes and escape sequences the decoder does
	// not recognize. Callers loop and read again.
	KeyNone KeyKind = iota
	KeyUp
	KeyDown
	KeyEnter
	KeySpace
	KeyEscape
	KeyInterrupt
	KeyChar
)

// ReadKey blocks until one key event can be decoded from r.
//
// Arrow keys arrive from a raw-mode terminal as a single three-byte read
// (27 91 65/66). A read that delivers only 27 is a bare Escape. An escape
// sequence that is neither Up nor Down is swallowed whole: the decoder
// emits KeyNone and the next read starts fresh, so a garbled sequence can
// never leave stray bytes queued as spurious events.
func ReadKey(r io.Reader) (Key, error) {
	buf := make([]byte, 3)
	n, err := r.Read(buf)
	if err != nil {
		return Key{}, err
	}
	if n == 0 {
		return Key{Kind: KeyNone}, nil
	}

	if buf[0] == 27 {
		if n == 1 {
			return Key{Kind: KeyEscape}, nil
		}
		if n == 3 && buf[1] == 91 {
			switch buf[2] {
			case 65:
				return Key{Kind: KeyUp}, nil
			case 66:
				return Key{Kind: KeyDown}, nil
			}
		}
		return Key{Kind: KeyNone}, nil
	}

	switch buf[0] {
	case 13, 10:
		return Key{Kind: KeyEnter}, nil
	case 32:
		return Key{Kind: KeySpace}, nil
	case 3:
		return Key{Kind: KeyInterrupt}, nil
	}

	if buf[0] > 32 && buf[0] < 127 {
		return Key{Kind: KeyChar, Ch: buf[0]}, nil
	}
	return Key{Kind: KeyNone}, nil
}
