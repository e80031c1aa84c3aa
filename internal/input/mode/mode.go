package mode

import (
	"github.com/dshills/minivi/internal/input/key"
)

// Standard mode names.
const (
	ModeView    = "view"
	ModeInsert  = "insert"
	ModeCommand = "command"
)

// Mode defines the interface for editor modes. Each mode determines
// how key events are interpreted.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "view").
	Name() string

	// DisplayName returns a human-readable name for the status bar.
	DisplayName() string

	// Enter is called when the mode becomes active.
	Enter()

	// Exit is called when the mode is left.
	Exit()

	// Handle interprets one key event and returns the resulting
	// action, or nil if the key was consumed without effect.
	Handle(ev key.Event) *Action
}

// ActionKind enumerates the commands a mode can request.
type ActionKind uint8

const (
	// Cursor motion.
	ActionMoveUp ActionKind = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionLineStart
	ActionLineEnd
	ActionWordForward
	ActionWordBackward
	ActionPageDown
	ActionPageUp
	ActionBufferStart
	ActionBufferEnd

	// Buffer mutation.
	ActionDeleteForward
	ActionDeleteBackward
	ActionDeleteRow
	ActionInsertRune
	ActionNewline
	ActionBackspace

	// Mode transitions. ActionEnterInsert carries an Open variant.
	ActionEnterView
	ActionEnterInsert
	ActionEnterCommand

	// File and lifecycle.
	ActionSave
	ActionQuit
	ActionNotice
)

// OpenVariant says where ActionEnterInsert positions the cursor.
type OpenVariant uint8

const (
	// OpenHere enters insert mode at the current position.
	OpenHere OpenVariant = iota
	// OpenBelow opens a new row below the cursor first.
	OpenBelow
	// OpenAbove opens a new row above the cursor first.
	OpenAbove
)

// Action is a single editor command produced by a mode. Only the
// fields relevant to the Kind are set.
type Action struct {
	Kind    ActionKind
	Rune    byte        // ActionInsertRune
	Open    OpenVariant // ActionEnterInsert
	Path    string      // ActionSave: explicit path, empty for the remembered filename
	Force   bool        // ActionQuit
	Message string      // ActionNotice
}
