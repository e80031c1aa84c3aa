package cursor

import (
	"github.com/dshills/minivi/internal/engine/buffer"
)

// charClass buckets a byte for word motion. Space is a pure
// separator; the ASCII range 33-46 forms a punctuation class distinct
// from everything else, so `w` stops between "foo" and ",," the way
// vi does for simple lines.
type charClass uint8

const (
	classSpace charClass = iota
	classPunct
	classWord
)

func classOf(ch byte) charClass {
	switch {
	case ch == ' ':
		return classSpace
	case ch >= 33 && ch <= 46:
		return classPunct
	default:
		return classWord
	}
}

// WordForward advances the cursor to the start of the next token on
// the current row. Word motion never crosses row boundaries and never
// moves backward; at the last token it lands on the final character
// of the row.
func (c *Cursor) WordForward(buf *buffer.Buffer) {
	row := buf.RowText(c.Line)
	if len(row) == 0 {
		c.Col = 0
		return
	}
	// Past the last character there is nothing left to advance to.
	if c.Col >= len(row) {
		return
	}
	i := c.Col

	cls := classOf(row[i])
	for i < len(row) && classOf(row[i]) == cls && cls != classSpace {
		i++
	}
	for i < len(row) && classOf(row[i]) == classSpace {
		i++
	}

	if i >= len(row) {
		i = len(row) - 1
	}
	c.Col = i
}

// WordBackward moves the cursor to the start of the previous token on
// the current row, or to the start of the current token when the
// cursor sits inside one.
func (c *Cursor) WordBackward(buf *buffer.Buffer) {
	row := buf.RowText(c.Line)
	if len(row) == 0 || c.Col <= 0 {
		c.Col = 0
		return
	}
	i := c.Col
	if i > len(row) {
		i = len(row)
	}
	i--

	for i > 0 && classOf(row[i]) == classSpace {
		i--
	}
	cls := classOf(row[i])
	for i > 0 && classOf(row[i-1]) == cls && cls != classSpace {
		i--
	}
	c.Col = i
}
