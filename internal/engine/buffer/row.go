package buffer

// Row is one line of text stored as a growable byte sequence.
// A Row never contains a line terminator.
type Row struct {
	chars []byte
}

// newRow creates a row owning a copy of content.
func newRow(content []byte) *Row {
	chars := make([]byte, len(content))
	copy(chars, content)
	return &Row{chars: chars}
}

// Len returns the number of characters in the row.
func (r *Row) Len() int {
	return len(r.chars)
}

// Text returns the row content as a string.
func (r *Row) Text() string {
	return string(r.chars)
}

// insertChar inserts ch at position at, clamping at to [0, Len].
func (r *Row) insertChar(at int, ch byte) {
	if at < 0 || at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[at+1:], r.chars[at:])
	r.chars[at] = ch
}

// deleteChar removes the character at position at.
// Out-of-range positions are ignored.
func (r *Row) deleteChar(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
}

// appendBytes appends content to the end of the row.
func (r *Row) appendBytes(content []byte) {
	r.chars = append(r.chars, content...)
}

// truncate cuts the row at position at and returns a copy of the tail.
func (r *Row) truncate(at int) []byte {
	if at < 0 {
		at = 0
	}
	if at > len(r.chars) {
		at = len(r.chars)
	}
	tail := make([]byte, len(r.chars)-at)
	copy(tail, r.chars[at:])
	r.chars = r.chars[:at]
	return tail
}
