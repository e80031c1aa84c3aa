// Package renderer composes one complete frame per cycle: the
// visible buffer rows, the inverted status bar, the message bar or
// command prompt, and the hardware cursor placement. The frame is
// accumulated in an append buffer and flushed in a single write so no
// partial output is ever observable.
package renderer
