// Package key defines the key event model and decodes the raw byte
// sequences a terminal delivers in raw mode into events: plain runes,
// control characters, and the small set of VT100 escape sequences the
// editor understands.
package key
