// Package viewport tracks the rectangular window of the buffer that
// is currently rendered, and the scroll offsets that keep the cursor
// visible inside it.
package viewport

import (
	"github.com/dshills/minivi/internal/engine/cursor"
)

// Viewport maps buffer coordinates to screen coordinates. RowOffset
// and ColOffset are the buffer coordinates of the top-left visible
// cell; Rows and Cols are the size of the text area in cells.
type Viewport struct {
	RowOffset int
	ColOffset int
	Rows      int
	Cols      int
}

// New creates a viewport of the given text-area size. Dimensions are
// clamped to a minimum of 1 to keep the scroll math free of
// underflow.
func New(rows, cols int) *Viewport {
	v := &Viewport{}
	v.Resize(rows, cols)
	return v
}

// Resize updates the viewport dimensions, clamped to a minimum of 1.
func (v *Viewport) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	v.Rows = rows
	v.Cols = cols
}

// Scroll adjusts the offsets so the cursor lies inside the visible
// window. After Scroll the cursor line is in [RowOffset,
// RowOffset+Rows) and the cursor column is in [ColOffset,
// ColOffset+Cols).
func (v *Viewport) Scroll(c cursor.Cursor) {
	if c.Line < v.RowOffset {
		v.RowOffset = c.Line
	}
	if c.Line >= v.RowOffset+v.Rows {
		v.RowOffset = c.Line - v.Rows + 1
	}
	if c.Col < v.ColOffset {
		v.ColOffset = c.Col
	}
	if c.Col >= v.ColOffset+v.Cols {
		v.ColOffset = c.Col - v.Cols + 1
	}
}

// Contains reports whether the cursor is inside the visible window.
func (v *Viewport) Contains(c cursor.Cursor) bool {
	return c.Line >= v.RowOffset && c.Line < v.RowOffset+v.Rows &&
		c.Col >= v.ColOffset && c.Col < v.ColOffset+v.Cols
}

// ScreenPosition converts a buffer position to 1-based screen
// coordinates relative to the text area origin.
func (v *Viewport) ScreenPosition(c cursor.Cursor) (row, col int) {
	return c.Line - v.RowOffset + 1, c.Col - v.ColOffset + 1
}
