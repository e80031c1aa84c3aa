package key

// Control byte values delivered by a raw-mode terminal.
const (
	byteEscape    = 0x1b
	byteEnter     = 0x0d
	byteBackspace = 0x7f
)

// Decode translates one raw input sequence into a key event. The
// input is the bytes read in a single tick: one byte for ordinary
// keys, or an ESC-prefixed sequence for arrows. An empty input means
// no key arrived and decodes to KeyNone.
//
// A lone ESC (or an unrecognized ESC sequence) decodes to KeyEscape.
func Decode(seq []byte) Event {
	if len(seq) == 0 {
		return Event{Key: KeyNone}
	}

	c := seq[0]
	switch {
	case c == byteEscape:
		return decodeEscape(seq[1:])
	case c == byteEnter:
		return Event{Key: KeyEnter}
	case c == byteBackspace:
		return Event{Key: KeyBackspace}
	case c < 0x20:
		// Ctrl-A..Ctrl-Z arrive as bytes 1..26.
		if c >= 1 && c <= 26 {
			return NewCtrlEvent(rune('a' + c - 1))
		}
		return Event{Key: KeyNone}
	default:
		return NewRuneEvent(rune(c))
	}
}

// decodeEscape handles the bytes following an ESC.
func decodeEscape(rest []byte) Event {
	if len(rest) >= 2 && rest[0] == '[' {
		switch rest[1] {
		case 'A':
			return Event{Key: KeyUp}
		case 'B':
			return Event{Key: KeyDown}
		case 'C':
			return Event{Key: KeyRight}
		case 'D':
			return Event{Key: KeyLeft}
		}
	}
	return Event{Key: KeyEscape}
}
