package mode

import (
	"strings"

	"github.com/dshills/minivi/internal/input/key"
)

// CommandMode accumulates a colon-command line, echoed in the prompt
// after every keystroke. Enter dispatches the line; Escape, Ctrl-C,
// or Backspace on an empty line abort back to view mode with no side
// effect.
type CommandMode struct {
	line []byte
}

// NewCommandMode creates a command-line mode instance.
func NewCommandMode() *CommandMode {
	return &CommandMode{}
}

// Name returns the mode identifier.
func (m *CommandMode) Name() string { return ModeCommand }

// DisplayName returns the status bar label.
func (m *CommandMode) DisplayName() string { return "COMMAND" }

// Enter starts with an empty command line.
func (m *CommandMode) Enter() { m.line = m.line[:0] }

// Exit discards any partially typed command.
func (m *CommandMode) Exit() { m.line = m.line[:0] }

// Line returns the command typed so far, for prompt rendering.
func (m *CommandMode) Line() string { return string(m.line) }

// Handle interprets one key event in command-line mode.
func (m *CommandMode) Handle(ev key.Event) *Action {
	switch ev.Key {
	case key.KeyEscape:
		return &Action{Kind: ActionEnterView}
	case key.KeyCtrl:
		if ev.Rune == 'c' {
			return &Action{Kind: ActionEnterView}
		}
		return nil
	case key.KeyBackspace:
		if len(m.line) == 0 {
			return &Action{Kind: ActionEnterView}
		}
		m.line = m.line[:len(m.line)-1]
		return nil
	case key.KeyEnter:
		line := string(m.line)
		m.line = m.line[:0]
		return Dispatch(line)
	case key.KeyRune:
		m.line = append(m.line, byte(ev.Rune))
		return nil
	default:
		return nil
	}
}

// Dispatch resolves a typed command line into an action. Recognized
// forms: "w", "w <path>", "q", "q!". An empty line returns to view
// mode; anything else reports an undefined command.
func Dispatch(line string) *Action {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return &Action{Kind: ActionEnterView}
	case line == "w":
		return &Action{Kind: ActionSave}
	case strings.HasPrefix(line, "w "):
		return &Action{Kind: ActionSave, Path: strings.TrimSpace(line[2:])}
	case line == "q":
		return &Action{Kind: ActionQuit}
	case line == "q!":
		return &Action{Kind: ActionQuit, Force: true}
	default:
		return &Action{Kind: ActionNotice, Message: "undefined command: " + line}
	}
}
