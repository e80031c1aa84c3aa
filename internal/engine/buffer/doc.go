// Package buffer implements the line-based text buffer at the core of
// the editor. A Buffer owns an ordered sequence of Rows and tracks a
// dirty counter recording unsaved modifications.
//
// Rows are owned exclusively by their Buffer. Structural mutations
// (row insert/delete, splits, joins) invalidate any previously
// resolved row; callers must re-resolve rows by index afterwards and
// never cache a row across a mutation.
package buffer
