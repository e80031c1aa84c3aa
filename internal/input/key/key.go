package key

// Key identifies a keyboard key. Character keys use KeyRune with the
// character carried in Event.Rune.
type Key uint8

const (
	// KeyNone means no key arrived this tick.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyBackspace

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyCtrl is a control chord; Event.Rune holds the lowercase
	// letter (Ctrl-C carries 'c').
	KeyCtrl

	// KeyRune is a printable character key.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "BS"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrl:
		return "Ctrl"
	case KeyRune:
		return "Rune"
	default:
		return "Unknown"
	}
}

// Event is a single decoded key press.
type Event struct {
	Key  Key
	Rune rune
}

// NewRuneEvent creates an event for a printable character.
func NewRuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// NewCtrlEvent creates an event for a control chord on the given
// lowercase letter.
func NewCtrlEvent(r rune) Event {
	return Event{Key: KeyCtrl, Rune: r}
}

// IsRune returns true for printable character events.
func (e Event) IsRune() bool {
	return e.Key == KeyRune
}

// IsCtrl returns true if the event is the control chord on r.
func (e Event) IsCtrl(r rune) bool {
	return e.Key == KeyCtrl && e.Rune == r
}

// String returns a canonical representation such as "a", "C-d", "Esc".
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		return string(e.Rune)
	case KeyCtrl:
		return "C-" + string(e.Rune)
	default:
		return e.Key.String()
	}
}
