// Package backend owns the terminal boundary: raw-mode setup and
// restore, the keystroke read with timeout, window-size queries, and
// the append buffer that makes each rendered frame a single atomic
// write.
package backend
