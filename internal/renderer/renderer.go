package renderer

import (
	"fmt"
	"time"

	"github.com/dshills/minivi/internal/engine/buffer"
	"github.com/dshills/minivi/internal/engine/cursor"
	"github.com/dshills/minivi/internal/renderer/backend"
	"github.com/dshills/minivi/internal/renderer/statusline"
	"github.com/dshills/minivi/internal/renderer/viewport"
)

// VT100 control sequences emitted by the renderer.
const (
	escHideCursor   = "\x1b[?25l"
	escShowCursor   = "\x1b[?25h"
	escCursorHome   = "\x1b[H"
	escEraseLine    = "\x1b[K"
	escReverseVideo = "\x1b[7m"
	escVideoReset   = "\x1b[m"
)

// DefaultPlaceholder is the glyph drawn on rows past the end of the
// buffer.
const DefaultPlaceholder = '~'

// FrameWriter receives one complete frame per call.
type FrameWriter interface {
	Write(frame []byte) error
}

// Renderer draws frames into an append buffer and flushes each one
// atomically to a FrameWriter.
type Renderer struct {
	out         FrameWriter
	frame       *backend.Buffer
	status      *statusline.StatusLine
	placeholder byte
	now         func() time.Time
}

// New creates a renderer writing to out. The status line is shared
// with the application, which updates its state before each frame.
func New(out FrameWriter, status *statusline.StatusLine, placeholder byte) *Renderer {
	if placeholder == 0 {
		placeholder = DefaultPlaceholder
	}
	return &Renderer{
		out:         out,
		frame:       backend.NewBuffer(),
		status:      status,
		placeholder: placeholder,
		now:         time.Now,
	}
}

// Render composes and flushes one frame. The viewport must already
// be scrolled so the cursor is visible.
func (r *Renderer) Render(buf *buffer.Buffer, c cursor.Cursor, vp *viewport.Viewport) error {
	r.frame.Reset()
	r.frame.AppendString(escHideCursor)
	r.frame.AppendString(escCursorHome)

	r.drawRows(buf, vp)
	r.drawStatusBar(vp.Cols)
	r.drawMessageBar(vp.Cols)
	r.placeCursor(c, vp)

	r.frame.AppendString(escShowCursor)
	return r.out.Write(r.frame.Bytes())
}

// drawRows renders the visible slice of every text row. Rows past
// the buffer end get the placeholder glyph rather than blank lines.
func (r *Renderer) drawRows(buf *buffer.Buffer, vp *viewport.Viewport) {
	for y := 0; y < vp.Rows; y++ {
		fileRow := y + vp.RowOffset
		if fileRow >= buf.NumRows() {
			r.frame.AppendByte(r.placeholder)
		} else {
			row := buf.RowText(fileRow)
			if vp.ColOffset < len(row) {
				visible := row[vp.ColOffset:]
				if len(visible) > vp.Cols {
					visible = visible[:vp.Cols]
				}
				r.frame.AppendString(visible)
			}
		}
		r.frame.AppendString(escEraseLine)
		r.frame.AppendString("\r\n")
	}
}

func (r *Renderer) drawStatusBar(width int) {
	r.frame.AppendString(escReverseVideo)
	r.frame.AppendString(r.status.Status(width))
	r.frame.AppendString(escVideoReset)
	r.frame.AppendString("\r\n")
}

func (r *Renderer) drawMessageBar(width int) {
	r.frame.AppendString(r.status.MessageBar(width, r.now()))
	r.frame.AppendString(escEraseLine)
}

// placeCursor repositions the hardware cursor: at the end of the
// command prompt while it is active, otherwise at the cursor's screen
// coordinates inside the text area.
func (r *Renderer) placeCursor(c cursor.Cursor, vp *viewport.Viewport) {
	if line, active := r.status.Prompt(); active {
		r.frame.AppendString(fmt.Sprintf("\x1b[%d;%dH", vp.Rows+2, len(line)+2))
		return
	}
	row, col := vp.ScreenPosition(c)
	r.frame.AppendString(fmt.Sprintf("\x1b[%d;%dH", row, col))
}
