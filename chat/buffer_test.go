package chat

import (
	"errors"
	"testing"
)

func TestRuneBufferReads(t *testing.T) {
	buf := NewRuneBuffer("e4 ♞f6")

	if buf.CharCount() != 6 {
		t.Fatalf("CharCount = %d, want 6", buf.CharCount())
	}
	if c, err := buf.CharAt(3); err != nil || c != '♞' {
		t.Errorf("CharAt(3) = %q, %v, want %q", c, err, '♞')
	}
	if _, err := buf.CharAt(6); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("CharAt(6) error = %v, want ErrOutOfRange", err)
	}
	if _, err := buf.CharAt(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("CharAt(-1) error = %v, want ErrOutOfRange", err)
	}

	if s, err := buf.Text(3, 5); err != nil || s != "♞f6" {
		t.Errorf("Text(3, 5) = %q, %v, want %q", s, err, "♞f6")
	}
	if s, err := buf.Text(2, 1); err != nil || s != "" {
		t.Errorf("Text(2, 1) = %q, %v, want empty", s, err)
	}
	if _, err := buf.Text(4, 1); err == nil {
		t.Error("Text(4, 1) returned no error")
	}
	if _, err := buf.Text(0, 6); err == nil {
		t.Error("Text(0, 6) returned no error")
	}
}

func TestRuneBufferEdits(t *testing.T) {
	buf := NewRuneBuffer("abc")
	buf.Append("def")
	if buf.String() != "abcdef" {
		t.Errorf("String = %q, want %q", buf.String(), "abcdef")
	}

	if n := buf.TrimFront(2); n != 2 || buf.String() != "cdef" {
		t.Errorf("TrimFront(2) = %d, %q, want 2, %q", n, buf.String(), "cdef")
	}
	if n := buf.TrimFront(10); n != 4 || buf.CharCount() != 0 {
		t.Errorf("TrimFront(10) = %d, count %d, want 4, 0", n, buf.CharCount())
	}
	if n := buf.TrimFront(-1); n != 0 {
		t.Errorf("TrimFront(-1) = %d, want 0", n)
	}

	buf.Append("x")
	buf.Reset()
	if buf.CharCount() != 0 {
		t.Errorf("CharCount after Reset = %d, want 0", buf.CharCount())
	}
}
