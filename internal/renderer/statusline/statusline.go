// Package statusline formats the status bar, the transient message
// bar, and the command-line prompt.
package statusline

import (
	"fmt"
	"time"
)

// NoNamePlaceholder is shown when the buffer has no filename.
const NoNamePlaceholder = "[No Name]"

// DefaultMessageTimeout is how long a message stays visible.
const DefaultMessageTimeout = 3 * time.Second

// StatusLine holds the display state for the two bottom bars.
type StatusLine struct {
	mode      string
	filename  string
	modified  bool
	totalRows int
	line      int // 1-based
	col       int // 1-based

	message        string
	messageTime    time.Time
	messageTimeout time.Duration

	promptActive bool
	promptLine   string
}

// New creates a status line with the given message timeout. A zero
// timeout falls back to the default.
func New(messageTimeout time.Duration) *StatusLine {
	if messageTimeout <= 0 {
		messageTimeout = DefaultMessageTimeout
	}
	return &StatusLine{mode: "VIEW", messageTimeout: messageTimeout}
}

// SetMode updates the displayed mode name.
func (s *StatusLine) SetMode(mode string) { s.mode = mode }

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(name string) { s.filename = name }

// SetModified updates the dirty indicator.
func (s *StatusLine) SetModified(modified bool) { s.modified = modified }

// SetPosition updates the 1-based cursor position and row count.
func (s *StatusLine) SetPosition(line, col, totalRows int) {
	s.line = line
	s.col = col
	s.totalRows = totalRows
}

// SetMessage shows a transient message starting now.
func (s *StatusLine) SetMessage(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
	s.messageTime = time.Now()
}

// ShowPrompt displays the command prompt with the typed line.
func (s *StatusLine) ShowPrompt(line string) {
	s.promptActive = true
	s.promptLine = line
}

// Prompt returns the typed command line and whether the prompt is
// active. The renderer uses it to park the hardware cursor at the
// end of the prompt.
func (s *StatusLine) Prompt() (string, bool) {
	return s.promptLine, s.promptActive
}

// HidePrompt removes the command prompt.
func (s *StatusLine) HidePrompt() {
	s.promptActive = false
	s.promptLine = ""
}

// Status returns the status bar content padded or truncated to
// width. The caller wraps it in reverse video.
func (s *StatusLine) Status(width int) string {
	name := s.filename
	if name == "" {
		name = NoNamePlaceholder
	}
	if len(name) > 20 {
		name = name[:20]
	}
	dirty := ""
	if s.modified {
		dirty = " [+]"
	}

	left := fmt.Sprintf(" %s | %s - %d lines%s", s.mode, name, s.totalRows, dirty)
	right := fmt.Sprintf("%d:%d ", s.line, s.col)

	if len(left)+len(right) > width {
		if len(left) > width {
			left = left[:width]
		}
		return pad(left, width)
	}
	return left + pad("", width-len(left)-len(right)) + right
}

// MessageBar returns the bottom bar content for the given time: the
// command prompt while it is active, otherwise the transient message
// until it expires, otherwise blank.
func (s *StatusLine) MessageBar(width int, now time.Time) string {
	if s.promptActive {
		return clip(":"+s.promptLine, width)
	}
	if s.message != "" && now.Sub(s.messageTime) < s.messageTimeout {
		return clip(s.message, width)
	}
	return ""
}

func pad(text string, width int) string {
	for len(text) < width {
		text += " "
	}
	return text
}

func clip(text string, width int) string {
	if len(text) > width {
		return text[:width]
	}
	return text
}
