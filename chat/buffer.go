// Package chat scans console text for words, quoted strings and URLs.
package chat

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by buffer reads outside the buffer.
var ErrOutOfRange = errors.New("position out of range")

// TextBuffer is a read-only view of console text addressed by character.
type TextBuffer interface {
	// CharAt returns the character at pos.
	CharAt(pos int) (rune, error)

	// Text returns the characters from start to end, both inclusive.
	// end == start-1 yields the empty string.
	Text(start, end int) (string, error)

	// CharCount returns the number of characters in the buffer.
	CharCount() int
}

// RuneBuffer is a TextBuffer backed by a rune slice.
type RuneBuffer struct {
	runes []rune
}

// NewRuneBuffer creates a buffer holding text.
func NewRuneBuffer(text string) *RuneBuffer {
	return &RuneBuffer{runes: []rune(text)}
}

// CharAt returns the character at pos.
func (b *RuneBuffer) CharAt(pos int) (rune, error) {
	if pos < 0 || pos >= len(b.runes) {
		return 0, fmt.Errorf("char at %d of %d: %w", pos, len(b.runes), ErrOutOfRange)
	}
	return b.runes[pos], nil
}

// Text returns the inclusive range [start, end].
func (b *RuneBuffer) Text(start, end int) (string, error) {
	if start < 0 || end >= len(b.runes) || end < start-1 {
		return "", fmt.Errorf("text %d..%d of %d: %w", start, end, len(b.runes), ErrOutOfRange)
	}
	return string(b.runes[start : end+1]), nil
}

// CharCount returns the number of characters in the buffer.
func (b *RuneBuffer) CharCount() int {
	return len(b.runes)
}

// Append adds text to the end of the buffer.
func (b *RuneBuffer) Append(text string) {
	b.runes = append(b.runes, []rune(text)...)
}

// TrimFront drops the first n characters and returns how many were dropped.
func (b *RuneBuffer) TrimFront(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(b.runes) {
		n = len(b.runes)
	}
	b.runes = append(b.runes[:0], b.runes[n:]...)
	return n
}

// Reset empties the buffer.
func (b *RuneBuffer) Reset() {
	b.runes = b.runes[:0]
}

// Runes exposes the underlying characters. Callers must not modify them.
func (b *RuneBuffer) Runes() []rune {
	return b.runes
}

// String returns the buffer contents.
func (b *RuneBuffer) String() string {
	return string(b.runes)
}
