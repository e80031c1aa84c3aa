package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Buffer is an ordered sequence of rows plus a dirty counter.
// All row indices passed to Buffer methods are clamped or rejected
// defensively; out-of-range structural requests are silent no-ops.
//
// Buffer is not safe for concurrent use. The editor core is strictly
// single-threaded, so no locking is needed or provided.
type Buffer struct {
	rows     []*Row
	dirty    int
	filename string
}

// New creates an empty buffer with no rows and no filename.
func New() *Buffer {
	return &Buffer{}
}

// NumRows returns the number of rows in the buffer.
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// RowLen returns the length of the row at line, or 0 if line is out
// of range.
func (b *Buffer) RowLen(line int) int {
	if line < 0 || line >= len(b.rows) {
		return 0
	}
	return b.rows[line].Len()
}

// RowText returns the text of the row at line, or the empty string if
// line is out of range.
func (b *Buffer) RowText(line int) string {
	if line < 0 || line >= len(b.rows) {
		return ""
	}
	return b.rows[line].Text()
}

// Rows returns the text of every row in order.
func (b *Buffer) Rows() []string {
	out := make([]string, len(b.rows))
	for i, r := range b.rows {
		out[i] = r.Text()
	}
	return out
}

// Dirty returns the number of modifications since the last load or
// successful save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

// IsModified reports whether the buffer has unsaved changes.
func (b *Buffer) IsModified() bool {
	return b.dirty > 0
}

// Filename returns the path the buffer was loaded from or last saved
// to, or the empty string.
func (b *Buffer) Filename() string {
	return b.filename
}

// SetFilename sets the buffer's remembered filename.
func (b *Buffer) SetFilename(name string) {
	b.filename = name
}

// InsertRow inserts a row with the given content at index at,
// shifting later rows down. at is clamped to [0, NumRows].
func (b *Buffer) InsertRow(at int, content string) {
	if at < 0 {
		at = 0
	}
	if at > len(b.rows) {
		at = len(b.rows)
	}
	row := newRow([]byte(content))
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row
	b.dirty++
}

// DeleteRow removes the row at index at, shifting later rows up.
// Out-of-range indices are ignored.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	b.dirty++
}

// InsertChar inserts ch at (line, col). Inserting at line == NumRows
// first appends an empty row, so typing at the end-of-buffer sentinel
// grows the buffer. col is clamped to the row's current length.
func (b *Buffer) InsertChar(line, col int, ch byte) {
	if line < 0 {
		line = 0
	}
	if line > len(b.rows) {
		line = len(b.rows)
	}
	if line == len(b.rows) {
		b.rows = append(b.rows, newRow(nil))
	}
	b.rows[line].insertChar(col, ch)
	b.dirty++
}

// DeleteChar deletes backward from (line, col). With col > 0 it
// removes the character before col. At col == 0 on any line but the
// first, it appends the line's content onto the previous row and
// deletes the line, joining the two. At the very start of the buffer
// it does nothing.
func (b *Buffer) DeleteChar(line, col int) {
	if line < 0 || line >= len(b.rows) {
		return
	}
	row := b.rows[line]
	switch {
	case col > 0:
		if col > row.Len() {
			col = row.Len()
		}
		row.deleteChar(col - 1)
		b.dirty++
	case line > 0:
		b.rows[line-1].appendBytes(row.chars)
		b.rows = append(b.rows[:line], b.rows[line+1:]...)
		b.dirty++
	}
}

// DeleteCharAt deletes the character at (line, col), the forward
// variant used by `x`. Out-of-range positions are ignored.
func (b *Buffer) DeleteCharAt(line, col int) {
	if line < 0 || line >= len(b.rows) {
		return
	}
	row := b.rows[line]
	if col < 0 || col >= row.Len() {
		return
	}
	row.deleteChar(col)
	b.dirty++
}

// InsertNewline splits the row at (line, col). At col == 0 an empty
// row is inserted before line (the row keeps its content); otherwise
// the row is split into [0,col) and [col,end), with the tail becoming
// a new row after it.
func (b *Buffer) InsertNewline(line, col int) {
	if line < 0 {
		line = 0
	}
	if line >= len(b.rows) {
		b.InsertRow(len(b.rows), "")
		return
	}
	if col <= 0 {
		b.InsertRow(line, "")
		return
	}
	tail := b.rows[line].truncate(col)
	b.InsertRow(line+1, string(tail))
}

// Serialize returns the buffer content as the persisted file format:
// every row followed by exactly one newline, including the last.
func (b *Buffer) Serialize() []byte {
	var out bytes.Buffer
	for _, row := range b.rows {
		out.Write(row.chars)
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// Load replaces the buffer's rows with the lines read from r, with
// line terminators stripped. The dirty counter resets to zero.
func (b *Buffer) Load(r io.Reader) error {
	var rows []*Row
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		rows = append(rows, newRow([]byte(line)))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading lines: %w", err)
	}
	b.rows = rows
	b.dirty = 0
	return nil
}

// LoadFile loads path into the buffer and remembers it as the
// buffer's filename.
func (b *Buffer) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := b.Load(f); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	b.filename = path
	return nil
}

// SaveFile writes the serialized buffer to path. An empty path falls
// back to the buffer's remembered filename; if neither exists the
// save fails with ErrNoFilename and nothing is written. On success
// the path becomes the buffer's filename and dirty resets to zero.
func (b *Buffer) SaveFile(path string) error {
	if path == "" {
		path = b.filename
	}
	if path == "" {
		return ErrNoFilename
	}
	if err := os.WriteFile(path, b.Serialize(), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	b.filename = path
	b.dirty = 0
	return nil
}
