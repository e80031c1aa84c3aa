package backend

// Buffer accumulates one frame's output bytes so the frame reaches
// the terminal in a single write. One Buffer is filled and flushed
// per frame; Reset keeps the storage for reuse.
type Buffer struct {
	data []byte
}

// NewBuffer creates an append buffer with some initial capacity.
func NewBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, 4096)}
}

// Append adds raw bytes to the frame.
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString adds a string to the frame.
func (b *Buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// AppendByte adds a single byte to the frame.
func (b *Buffer) AppendByte(c byte) {
	b.data = append(b.data, c)
}

// Bytes returns the accumulated frame.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the accumulated length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Reset discards the contents, keeping capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
