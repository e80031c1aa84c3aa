package mode

import (
	"github.com/dshills/minivi/internal/input/key"
)

// InsertMode inserts printable characters at the cursor. Escape and
// Ctrl-C return to view mode.
type InsertMode struct{}

// NewInsertMode creates an insert mode instance.
func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

// Name returns the mode identifier.
func (m *InsertMode) Name() string { return ModeInsert }

// DisplayName returns the status bar label.
func (m *InsertMode) DisplayName() string { return "INSERT" }

func (m *InsertMode) Enter() {}
func (m *InsertMode) Exit()  {}

// Handle interprets one key event in insert mode.
func (m *InsertMode) Handle(ev key.Event) *Action {
	switch ev.Key {
	case key.KeyEscape:
		return &Action{Kind: ActionEnterView}
	case key.KeyCtrl:
		if ev.Rune == 'c' {
			return &Action{Kind: ActionEnterView}
		}
		return nil
	case key.KeyEnter:
		return &Action{Kind: ActionNewline}
	case key.KeyBackspace:
		return &Action{Kind: ActionBackspace}
	case key.KeyUp:
		return &Action{Kind: ActionMoveUp}
	case key.KeyDown:
		return &Action{Kind: ActionMoveDown}
	case key.KeyLeft:
		return &Action{Kind: ActionMoveLeft}
	case key.KeyRight:
		return &Action{Kind: ActionMoveRight}
	case key.KeyRune:
		return &Action{Kind: ActionInsertRune, Rune: byte(ev.Rune)}
	default:
		return nil
	}
}
