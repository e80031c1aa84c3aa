package mode

import (
	"github.com/dshills/minivi/internal/input/key"
)

// ViewMode is the navigation mode. Single-character commands execute
// immediately; the two-character commands `dd` and `gg` resolve
// through a one-byte pending prefix. A pending prefix followed by an
// unrecognized character is discarded silently.
type ViewMode struct {
	pending byte
}

// NewViewMode creates a view mode instance.
func NewViewMode() *ViewMode {
	return &ViewMode{}
}

// Name returns the mode identifier.
func (m *ViewMode) Name() string { return ModeView }

// DisplayName returns the status bar label.
func (m *ViewMode) DisplayName() string { return "VIEW" }

// Enter resets the pending prefix.
func (m *ViewMode) Enter() { m.pending = 0 }

// Exit clears the pending prefix.
func (m *ViewMode) Exit() { m.pending = 0 }

// Pending returns the unresolved prefix byte, or 0. Exposed for the
// automaton tests.
func (m *ViewMode) Pending() byte { return m.pending }

// Handle interprets one key event in view mode.
func (m *ViewMode) Handle(ev key.Event) *Action {
	switch ev.Key {
	case key.KeyEscape:
		m.pending = 0
		return nil
	case key.KeyUp:
		m.pending = 0
		return &Action{Kind: ActionMoveUp}
	case key.KeyDown:
		m.pending = 0
		return &Action{Kind: ActionMoveDown}
	case key.KeyLeft:
		m.pending = 0
		return &Action{Kind: ActionMoveLeft}
	case key.KeyRight:
		m.pending = 0
		return &Action{Kind: ActionMoveRight}
	case key.KeyCtrl:
		m.pending = 0
		switch ev.Rune {
		case 'd':
			return &Action{Kind: ActionPageDown}
		case 'u':
			return &Action{Kind: ActionPageUp}
		}
		return nil
	case key.KeyRune:
		return m.handleRune(byte(ev.Rune))
	default:
		return nil
	}
}

// handleRune runs the prefix automaton over printable characters.
func (m *ViewMode) handleRune(c byte) *Action {
	if m.pending != 0 {
		prefix := m.pending
		m.pending = 0
		switch {
		case prefix == 'd' && c == 'd':
			return &Action{Kind: ActionDeleteRow}
		case prefix == 'g' && c == 'g':
			return &Action{Kind: ActionBufferStart}
		}
		// Unrecognized continuation: discard, no error surfaced.
		return nil
	}

	switch c {
	case 'h':
		return &Action{Kind: ActionMoveLeft}
	case 'j':
		return &Action{Kind: ActionMoveDown}
	case 'k':
		return &Action{Kind: ActionMoveUp}
	case 'l':
		return &Action{Kind: ActionMoveRight}
	case '0':
		return &Action{Kind: ActionLineStart}
	case '$':
		return &Action{Kind: ActionLineEnd}
	case 'w':
		return &Action{Kind: ActionWordForward}
	case 'b':
		return &Action{Kind: ActionWordBackward}
	case 'G':
		return &Action{Kind: ActionBufferEnd}
	case 'x':
		return &Action{Kind: ActionDeleteForward}
	case 'X':
		return &Action{Kind: ActionDeleteBackward}
	case 'Z':
		return &Action{Kind: ActionSave}
	case 'i':
		return &Action{Kind: ActionEnterInsert, Open: OpenHere}
	case 'o':
		return &Action{Kind: ActionEnterInsert, Open: OpenBelow}
	case 'O':
		return &Action{Kind: ActionEnterInsert, Open: OpenAbove}
	case ':':
		return &Action{Kind: ActionEnterCommand}
	case 'd', 'g':
		m.pending = c
		return nil
	default:
		return nil
	}
}
