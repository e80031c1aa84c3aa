package cursor

import (
	"github.com/dshills/minivi/internal/engine/buffer"
)

// Direction identifies a relative cursor movement.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Cursor is a logical (line, column) position into a buffer. Column
// may equal the row length, meaning "after the last character"; that
// position is where insert mode appends.
type Cursor struct {
	Line int
	Col  int
}

// Clamp bounds the cursor to a valid position in buf: line into
// [0, max(NumRows-1, 0)] and column into [0, RowLen(line)].
func (c *Cursor) Clamp(buf *buffer.Buffer) {
	maxLine := buf.NumRows() - 1
	if maxLine < 0 {
		maxLine = 0
	}
	if c.Line < 0 {
		c.Line = 0
	}
	if c.Line > maxLine {
		c.Line = maxLine
	}
	if c.Col < 0 {
		c.Col = 0
	}
	if rowLen := buf.RowLen(c.Line); c.Col > rowLen {
		c.Col = rowLen
	}
}

// Move shifts the cursor one step in the given direction. Movement
// stops at row boundaries; there is no wrap onto adjacent lines.
// Vertical moves keep the column where possible and clamp otherwise.
func (c *Cursor) Move(dir Direction, buf *buffer.Buffer) {
	switch dir {
	case Up:
		if c.Line > 0 {
			c.Line--
		}
	case Down:
		if c.Line < buf.NumRows()-1 {
			c.Line++
		}
	case Left:
		if c.Col > 0 {
			c.Col--
		}
	case Right:
		if c.Col < buf.RowLen(c.Line) {
			c.Col++
		}
	}
	c.Clamp(buf)
}

// LineStart jumps to column 0.
func (c *Cursor) LineStart() {
	c.Col = 0
}

// LineEnd jumps to the last character of the current row.
func (c *Cursor) LineEnd(buf *buffer.Buffer) {
	c.Col = buf.RowLen(c.Line) - 1
	if c.Col < 0 {
		c.Col = 0
	}
}

// PageMove jumps the cursor line by delta rows, clamped to the
// buffer bounds. The column is clamped to the destination row.
func (c *Cursor) PageMove(delta int, buf *buffer.Buffer) {
	c.Line += delta
	c.Clamp(buf)
}

// JumpStart moves to the first line of the buffer, column 0.
func (c *Cursor) JumpStart() {
	c.Line = 0
	c.Col = 0
}

// JumpEnd moves to the last line of the buffer, column 0.
func (c *Cursor) JumpEnd(buf *buffer.Buffer) {
	c.Line = buf.NumRows() - 1
	if c.Line < 0 {
		c.Line = 0
	}
	c.Col = 0
	c.Clamp(buf)
}
