// Package cursor implements the logical cursor over a text buffer:
// relative movement, row-local word motion, and the clamping that
// keeps the cursor position consistent with the buffer after every
// edit.
package cursor
