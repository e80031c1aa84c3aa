// Package mode implements the modal keystroke state machine. Each
// Mode interprets key events for one editing context (view, insert,
// command-line) and produces Actions, a tagged command representation
// consumed by the application layer. Modes never touch the buffer or
// cursor directly; the dispatch that applies an Action lives above
// them.
package mode
